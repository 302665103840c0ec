package analysis

import (
	"reflect"
	"strings"
	"testing"

	"github.com/amishk599/prepkit/internal/model"
)

func containsItem(items []string, substr string) bool {
	for _, item := range items {
		if strings.Contains(item, substr) {
			return true
		}
	}
	return false
}

func TestGenerateChecklistAlwaysFourRounds(t *testing.T) {
	for _, skills := range []model.ExtractedSkills{
		nil,
		{},
		ExtractSkills("React, Node.js, SQL, Docker, AWS, DSA, OOP, Java, Python, JUnit"),
	} {
		checklist := GenerateChecklist(skills)
		if len(checklist) != 4 {
			t.Fatalf("got %d rounds, want 4 (skills=%v)", len(checklist), skills)
		}
	}
}

func TestGenerateChecklistEmptyExtractionHasOnlyBaseItems(t *testing.T) {
	checklist := GenerateChecklist(model.ExtractedSkills{})

	wantLens := []int{5, 5, 3, 7}
	for i, round := range checklist {
		if len(round.Items) != wantLens[i] {
			t.Errorf("%s has %d items, want %d base items", round.Round, len(round.Items), wantLens[i])
		}
	}
}

func TestGenerateChecklistConditionalItems(t *testing.T) {
	skills := ExtractSkills("React and Node.js developer, strong SQL, solid DSA fundamentals.")
	checklist := GenerateChecklist(skills)

	round2, round3 := checklist[1], checklist[2]

	if !containsItem(round2.Items, "advanced DSA") {
		t.Error("round 2 missing advanced DSA items for DSA match")
	}
	for _, want := range []string{"React-specific", "Node.js event loop", "complex SQL queries"} {
		if !containsItem(round3.Items, want) {
			t.Errorf("round 3 missing %q item", want)
		}
	}
	if containsItem(round3.Items, "MongoDB") {
		t.Error("round 3 has MongoDB item without a MongoDB match")
	}
}

func TestGenerateChecklistLanguagesDeepDive(t *testing.T) {
	skills := ExtractSkills("We want Java and Python engineers.")
	round3 := GenerateChecklist(skills)[2]

	if !containsItem(round3.Items, "Deep-dive into Java, Python") {
		t.Errorf("round 3 missing language deep-dive, items: %v", round3.Items)
	}
}

func TestGenerateChecklistRound4Unconditional(t *testing.T) {
	empty := GenerateChecklist(model.ExtractedSkills{})[3]
	full := GenerateChecklist(ExtractSkills("React SQL AWS Docker Java JUnit DSA"))[3]
	if !reflect.DeepEqual(empty.Items, full.Items) {
		t.Error("round 4 must not depend on extraction")
	}
}

func TestGenerateChecklistDeterministic(t *testing.T) {
	skills := ExtractSkills("React, Node.js, GraphQL, PostgreSQL, Kubernetes, Selenium")
	first := GenerateChecklist(skills)
	second := GenerateChecklist(skills)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical extraction produced different checklists")
	}
}
