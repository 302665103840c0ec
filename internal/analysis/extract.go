// Package analysis is the deterministic engine: keyword extraction, the
// readiness score, the derived checklist/plan/question artifacts, and the
// orchestrator that composes them into a persisted entry. Everything here
// is a pure function of its inputs, with no I/O and no clock except the
// one injected into the orchestrator.
package analysis

import (
	"regexp"
	"strings"

	"github.com/amishk599/prepkit/internal/model"
	"github.com/amishk599/prepkit/internal/taxonomy"
)

// Explicit boundary classes instead of \b: a trailing \b never matches
// after "C++" or "C#" because + and # are not word characters. The right
// class also excludes + and # so "C" does not match inside either.
const (
	boundaryLeft  = `(?:^|[^a-z0-9_])`
	boundaryRight = `(?:$|[^a-z0-9_+#])`
)

// keywordPatterns holds one compiled boundary-guarded pattern per taxonomy
// keyword. Compiled once; the taxonomy is immutable at runtime.
var keywordPatterns = buildPatterns()

func buildPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp)
	for _, c := range taxonomy.Categories {
		for _, kw := range c.Keywords {
			patterns[kw] = regexp.MustCompile(`(?i)` + boundaryLeft + regexp.QuoteMeta(kw) + boundaryRight)
		}
	}
	return patterns
}

// ExtractSkills scans jdText against the taxonomy and returns the matched
// keywords per category. Matching is case-insensitive with word-boundary
// semantics, so "Go" matches "I use Go daily" but not "Golang". Only
// categories with at least one match appear in the result; keyword order
// within a category follows the taxonomy, not the text.
func ExtractSkills(jdText string) model.ExtractedSkills {
	text := strings.ToLower(jdText)
	result := make(model.ExtractedSkills)

	for _, c := range taxonomy.Categories {
		var matched []string
		for _, kw := range c.Keywords {
			if keywordPatterns[kw].MatchString(text) {
				matched = append(matched, kw)
			}
		}
		if len(matched) > 0 {
			result[c.Key] = matched
		}
	}

	return result
}

// hasCategory reports whether the category key has at least one match.
func hasCategory(skills model.ExtractedSkills, key string) bool {
	return len(skills[key]) > 0
}

// hasKeyword reports whether the keyword was matched in any category.
// Comparison is case-insensitive.
func hasKeyword(skills model.ExtractedSkills, keyword string) bool {
	for _, kw := range taxonomy.MatchedKeywords(skills) {
		if strings.EqualFold(kw, keyword) {
			return true
		}
	}
	return false
}
