package analysis

import (
	"reflect"
	"testing"

	"github.com/amishk599/prepkit/internal/taxonomy"
)

func TestExtractSkillsWordBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		keyword string
		want    bool
	}{
		{
			name:    "Go does not match inside Golang",
			text:    "We are a Golang shop.",
			keyword: "Go",
			want:    false,
		},
		{
			name:    "Go matches as a standalone word",
			text:    "I use Go daily in production.",
			keyword: "Go",
			want:    true,
		},
		{
			name:    "matching is case-insensitive",
			text:    "experience with REACT and node.js required",
			keyword: "React",
			want:    true,
		},
		{
			name:    "dotted keyword matches literally",
			text:    "experience with REACT and node.js required",
			keyword: "Node.js",
			want:    true,
		},
		{
			name:    "SQL does not match inside PostgreSQL",
			text:    "we run postgresql in production",
			keyword: "SQL",
			want:    false,
		},
		{
			name:    "C++ matches with its symbols",
			text:    "strong C++ fundamentals expected",
			keyword: "C++",
			want:    true,
		},
		{
			name:    "C does not match inside C++",
			text:    "strong C++ fundamentals expected",
			keyword: "C",
			want:    false,
		},
		{
			name:    "C# matches at end of text",
			text:    "backend services in C#",
			keyword: "C#",
			want:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skills := ExtractSkills(tt.text)
			if got := hasKeyword(skills, tt.keyword); got != tt.want {
				t.Errorf("hasKeyword(%q) in %q = %v, want %v", tt.keyword, tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractSkillsCategoryMembership(t *testing.T) {
	skills := ExtractSkills("Looking for React and Node.js engineers comfortable with SQL.")

	want := map[string][]string{
		taxonomy.KeyWeb:  {"React", "Node.js"},
		taxonomy.KeyData: {"SQL"},
	}
	for key, keywords := range want {
		if !reflect.DeepEqual(skills[key], keywords) {
			t.Errorf("skills[%q] = %v, want %v", key, skills[key], keywords)
		}
	}

	// Categories with zero matches must be absent, not empty.
	if _, ok := skills[taxonomy.KeyTesting]; ok {
		t.Error("expected testing category to be absent with no matches")
	}
}

func TestExtractSkillsKeywordOrderFollowsTaxonomy(t *testing.T) {
	// Text mentions Node.js before React; output must follow taxonomy order.
	skills := ExtractSkills("Node.js first, React second.")

	want := []string{"React", "Node.js"}
	if !reflect.DeepEqual(skills[taxonomy.KeyWeb], want) {
		t.Errorf("web keywords = %v, want taxonomy order %v", skills[taxonomy.KeyWeb], want)
	}
}

func TestExtractSkillsDeterministic(t *testing.T) {
	text := "Java, Python, Docker, Kubernetes, AWS, React, SQL, JUnit."
	first := ExtractSkills(text)
	second := ExtractSkills(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-running extraction changed the result: %v vs %v", first, second)
	}
}

func TestExtractSkillsEmptyText(t *testing.T) {
	if skills := ExtractSkills(""); len(skills) != 0 {
		t.Errorf("expected no matches for empty text, got %v", skills)
	}
}
