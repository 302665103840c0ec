package analysis

import (
	"strings"
	"testing"

	"github.com/amishk599/prepkit/internal/model"
)

func skillsWithCategories(n int) model.ExtractedSkills {
	keys := []string{"coreCS", "languages", "web", "data", "cloud", "testing"}
	skills := make(model.ExtractedSkills)
	for i := 0; i < n; i++ {
		skills[keys[i]] = []string{"x"}
	}
	return skills
}

func TestReadinessScore(t *testing.T) {
	longJD := strings.Repeat("a", 900)

	tests := []struct {
		name       string
		categories int
		company    string
		role       string
		jdText     string
		want       int
	}{
		{
			name:   "floor with nothing matched",
			jdText: "short",
			want:   35,
		},
		{
			name:       "category bonus capped at 30",
			categories: 6,
			jdText:     "short",
			want:       65,
		},
		{
			name:       "worked example: two categories, both labels, long text",
			categories: 2,
			company:    "Acme",
			role:       "SDE-1",
			jdText:     longJD,
			want:       75,
		},
		{
			name:       "whitespace-only labels earn no bonus",
			categories: 1,
			company:    "   ",
			role:       "\t",
			jdText:     "short",
			want:       40,
		},
		{
			name:    "length bonus requires more than 800 characters",
			company: "Acme",
			jdText:  strings.Repeat("a", 800),
			want:    45,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skills := skillsWithCategories(tt.categories)
			got := ReadinessScore(skills, tt.company, tt.role, tt.jdText)
			if got != tt.want {
				t.Errorf("ReadinessScore = %d, want %d", got, tt.want)
			}
			// Determinism: same inputs, same score.
			if again := ReadinessScore(skills, tt.company, tt.role, tt.jdText); again != got {
				t.Errorf("second call returned %d, first returned %d", again, got)
			}
		})
	}
}

func TestReadinessScoreBounds(t *testing.T) {
	score := ReadinessScore(skillsWithCategories(6), "Acme", "SDE", strings.Repeat("a", 5000))
	if score < 0 || score > 100 {
		t.Errorf("score %d out of [0,100]", score)
	}
}

func TestLiveScore(t *testing.T) {
	conf := func(know, practice int) map[string]model.Confidence {
		m := make(map[string]model.Confidence)
		for i := 0; i < know; i++ {
			m[string(rune('a'+i))] = model.ConfidenceKnow
		}
		for i := 0; i < practice; i++ {
			m[string(rune('A'+i))] = model.ConfidencePractice
		}
		return m
	}

	tests := []struct {
		name     string
		base     int
		know     int
		practice int
		want     int
	}{
		{name: "empty map keeps base", base: 50, want: 50},
		{name: "know adds two each", base: 50, know: 3, want: 56},
		{name: "practice subtracts two each", base: 50, practice: 4, want: 42},
		{name: "mixed fold", base: 75, know: 2, practice: 2, want: 75},
		{name: "clamped at 100", base: 99, know: 5, want: 100},
		{name: "clamped at 0", base: 3, practice: 5, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LiveScore(tt.base, conf(tt.know, tt.practice)); got != tt.want {
				t.Errorf("LiveScore(%d, %d know/%d practice) = %d, want %d", tt.base, tt.know, tt.practice, got, tt.want)
			}
		})
	}
}

// Toggling one keyword from practice to know must raise the fold by 4: its
// -2 contribution flips to +2.
func TestLiveScoreToggleDelta(t *testing.T) {
	conf := map[string]model.Confidence{
		"React":   model.ConfidencePractice,
		"Node.js": model.ConfidencePractice,
		"SQL":     model.ConfidencePractice,
	}
	before := LiveScore(75, conf)
	conf["React"] = model.ConfidenceKnow
	after := LiveScore(75, conf)
	if after-before != 4 {
		t.Errorf("toggle delta = %d, want 4", after-before)
	}
}

// Repeated toggles of the same keyword converge: the fold is over current
// state, not a delta history.
func TestLiveScoreToggleConvergence(t *testing.T) {
	conf := map[string]model.Confidence{"React": model.ConfidencePractice}
	want := LiveScore(60, conf)

	for i := 0; i < 7; i++ {
		conf["React"] = model.ConfidenceKnow
		LiveScore(60, conf)
		conf["React"] = model.ConfidencePractice
	}
	if got := LiveScore(60, conf); got != want {
		t.Errorf("after toggle churn LiveScore = %d, want %d", got, want)
	}
}
