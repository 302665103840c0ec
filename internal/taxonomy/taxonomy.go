// Package taxonomy holds the fixed category → keyword table that skill
// extraction runs against. The table is data, not behavior: category and
// keyword order is significant because every derived artifact (checklist,
// plan, questions) iterates it in declaration order to stay deterministic.
package taxonomy

import "github.com/amishk599/prepkit/internal/model"

// Category is one row of the skill table.
type Category struct {
	Key      string // standardized storage key, e.g. "coreCS"
	Label    string // display label, e.g. "Core CS"
	Keywords []string
}

// Standardized category keys.
const (
	KeyCoreCS    = "coreCS"
	KeyLanguages = "languages"
	KeyWeb       = "web"
	KeyData      = "data"
	KeyCloud     = "cloud"
	KeyTesting   = "testing"
	KeyOther     = "other"
)

// Categories is the extraction taxonomy, in traversal order. "other" carries
// no keywords of its own; it exists as a bucket for legacy records whose
// category labels no longer map to anything.
var Categories = []Category{
	{Key: KeyCoreCS, Label: "Core CS", Keywords: []string{"DSA", "OOP", "DBMS", "OS", "Networks"}},
	{Key: KeyLanguages, Label: "Languages", Keywords: []string{"Java", "Python", "JavaScript", "TypeScript", "C", "C++", "C#", "Go"}},
	{Key: KeyWeb, Label: "Web", Keywords: []string{"React", "Next.js", "Node.js", "Express", "REST", "GraphQL"}},
	{Key: KeyData, Label: "Data", Keywords: []string{"SQL", "MongoDB", "PostgreSQL", "MySQL", "Redis"}},
	{Key: KeyCloud, Label: "Cloud/DevOps", Keywords: []string{"AWS", "Azure", "GCP", "Docker", "Kubernetes", "CI/CD", "Linux"}},
	{Key: KeyTesting, Label: "Testing", Keywords: []string{"Selenium", "Cypress", "Playwright", "JUnit", "PyTest"}},
	{Key: KeyOther, Label: "Other", Keywords: nil},
}

// legacyLabels maps pre-standardization category labels to current keys.
var legacyLabels = map[string]string{
	"Core CS":      KeyCoreCS,
	"Languages":    KeyLanguages,
	"Web":          KeyWeb,
	"Data":         KeyData,
	"Cloud/DevOps": KeyCloud,
	"Testing":      KeyTesting,
	"Other":        KeyOther,
}

// Keys returns all standardized category keys in traversal order.
func Keys() []string {
	keys := make([]string, len(Categories))
	for i, c := range Categories {
		keys[i] = c.Key
	}
	return keys
}

// LabelFor returns the display label for a standardized key, or the key
// itself if it is not part of the taxonomy.
func LabelFor(key string) string {
	for _, c := range Categories {
		if c.Key == key {
			return c.Label
		}
	}
	return key
}

// KeyForLegacyLabel maps a legacy free-form category label to its
// standardized key. The second return is false for unknown labels.
func KeyForLegacyLabel(label string) (string, bool) {
	key, ok := legacyLabels[label]
	return key, ok
}

// Normalize returns a copy of skills that carries every standardized
// category key, with an empty (non-nil) slice for categories without
// matches. The persisted schema requires all keys to be present.
func Normalize(skills model.ExtractedSkills) model.ExtractedSkills {
	out := make(model.ExtractedSkills, len(Categories))
	for _, c := range Categories {
		matched := skills[c.Key]
		cp := make([]string, 0, len(matched))
		cp = append(cp, matched...)
		out[c.Key] = cp
	}
	return out
}

// MatchedKeywords flattens skills into a single keyword list in taxonomy
// traversal order.
func MatchedKeywords(skills model.ExtractedSkills) []string {
	var all []string
	for _, c := range Categories {
		all = append(all, skills[c.Key]...)
	}
	return all
}
