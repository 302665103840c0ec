package analysis

import "github.com/amishk599/prepkit/internal/model"

// rule is one conditional row of a checklist round or plan day: if any of
// the listed categories or keywords was matched, the row's items are
// appended. Rows are evaluated top to bottom so the output order is fixed
// by the table itself. A row with a dynamic builder contributes whatever
// the builder returns for the current extraction.
type rule struct {
	anyCategory []string
	anyKeyword  []string
	items       []string
	dynamic     func(skills model.ExtractedSkills) []string
}

func (r rule) matches(skills model.ExtractedSkills) bool {
	for _, key := range r.anyCategory {
		if hasCategory(skills, key) {
			return true
		}
	}
	for _, kw := range r.anyKeyword {
		if hasKeyword(skills, kw) {
			return true
		}
	}
	return false
}

// applyRules appends every matching row's items to base, in table order.
func applyRules(base []string, rules []rule, skills model.ExtractedSkills) []string {
	items := make([]string, 0, len(base))
	items = append(items, base...)
	for _, r := range rules {
		if !r.matches(skills) {
			continue
		}
		items = append(items, r.items...)
		if r.dynamic != nil {
			items = append(items, r.dynamic(skills)...)
		}
	}
	return items
}
