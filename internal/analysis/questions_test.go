package analysis

import (
	"reflect"
	"testing"

	"github.com/amishk599/prepkit/internal/model"
	"github.com/amishk599/prepkit/internal/taxonomy"
)

func assertNoDuplicates(t *testing.T, questions []string) {
	t.Helper()
	seen := make(map[string]bool)
	for _, q := range questions {
		if seen[q] {
			t.Errorf("duplicate question %q", q)
		}
		seen[q] = true
	}
}

func TestGenerateQuestionsCapAndUniqueness(t *testing.T) {
	// A broad extraction: far more than 10 bank questions available.
	skills := ExtractSkills("DSA OOP DBMS Networks Java Python React SQL Docker AWS")

	questions := GenerateQuestions(skills)
	if len(questions) != 10 {
		t.Fatalf("got %d questions, want 10", len(questions))
	}
	assertNoDuplicates(t, questions)
}

func TestGenerateQuestionsBankOrder(t *testing.T) {
	skills := ExtractSkills("Strong DSA required.")
	questions := GenerateQuestions(skills)

	// DSA bank first, in bank order, then the generic pool tops up to 10.
	if questions[0] != "How would you optimize search in sorted data?" {
		t.Errorf("first question = %q, want first DSA bank question", questions[0])
	}
	if questions[4] != "Tell me about a challenging project you worked on." {
		t.Errorf("question 5 = %q, want first generic question", questions[4])
	}
	if len(questions) != 9 {
		t.Errorf("got %d questions, want 9 (4 DSA + 5 generic)", len(questions))
	}
}

func TestGenerateQuestionsEmptyExtractionUsesGenericPool(t *testing.T) {
	questions := GenerateQuestions(model.ExtractedSkills{})
	if !reflect.DeepEqual(questions, genericQuestions) {
		t.Errorf("got %v, want the generic pool", questions)
	}
}

func TestGenerateQuestionsUnbankedKeywordContributesNothing(t *testing.T) {
	// MySQL and Redis are taxonomy keywords with no bank entries.
	skills := ExtractSkills("MySQL and Redis experience.")
	questions := GenerateQuestions(skills)
	if !reflect.DeepEqual(questions, genericQuestions) {
		t.Errorf("got %v, want only generic questions", questions)
	}
}

func TestGenerateQuestionsDeterministic(t *testing.T) {
	skills := ExtractSkills("React, Node.js, SQL, Kubernetes")
	if !reflect.DeepEqual(GenerateQuestions(skills), GenerateQuestions(skills)) {
		t.Error("identical extraction produced different questions")
	}
}

// Every bank keyword must exist in the taxonomy, or its questions could
// never be selected.
func TestQuestionBankKeysAreTaxonomyKeywords(t *testing.T) {
	known := make(map[string]bool)
	for _, c := range taxonomy.Categories {
		for _, kw := range c.Keywords {
			known[kw] = true
		}
	}
	for kw := range questionBank {
		if !known[kw] {
			t.Errorf("question bank keyword %q is not in the taxonomy", kw)
		}
	}
}
