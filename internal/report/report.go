// Package report renders entries as plain text. Formatters here are pure
// string builders over entry fields; they carry no decision logic.
package report

import (
	"fmt"
	"strings"

	"github.com/amishk599/prepkit/internal/model"
	"github.com/amishk599/prepkit/internal/taxonomy"
)

// PlanText renders the 7-day plan.
func PlanText(plan []model.DayPlan) string {
	var b strings.Builder
	b.WriteString("7-DAY PREPARATION PLAN\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	for _, day := range plan {
		fmt.Fprintf(&b, "%s - %s\n", day.Day, day.Label)
		b.WriteString(strings.Repeat("-", 30) + "\n")
		for i, task := range day.Tasks {
			fmt.Fprintf(&b, "%d. %s\n", i+1, task)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// ChecklistText renders the 4-round checklist.
func ChecklistText(checklist []model.ChecklistRound) string {
	var b strings.Builder
	b.WriteString("ROUND-WISE PREPARATION CHECKLIST\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	for _, round := range checklist {
		fmt.Fprintf(&b, "%s: %s\n", round.Round, round.Title)
		b.WriteString(strings.Repeat("-", 40) + "\n")
		for i, item := range round.Items {
			fmt.Fprintf(&b, "%d. %s\n", i+1, item)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// QuestionsText renders the selected interview questions.
func QuestionsText(questions []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d LIKELY INTERVIEW QUESTIONS\n", len(questions))
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	for i, q := range questions {
		fmt.Fprintf(&b, "%d. %s\n\n", i+1, q)
	}

	return b.String()
}

// CompleteReport renders the composite readiness report: header, extracted
// skills by category, then checklist, plan and questions.
func CompleteReport(entry model.Entry) string {
	var b strings.Builder
	b.WriteString("PLACEMENT READINESS REPORT\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "Company: %s\n", orUnspecified(entry.Company))
	fmt.Fprintf(&b, "Role: %s\n", orUnspecified(entry.Role))
	fmt.Fprintf(&b, "Date: %s\n", entry.CreatedAt.Format("Jan 2, 2006 15:04"))
	fmt.Fprintf(&b, "Readiness Score: %d\n\n", entry.FinalScore)

	if hasSkills(entry.ExtractedSkills) {
		b.WriteString("KEY SKILLS EXTRACTED\n")
		b.WriteString(strings.Repeat("-", 30) + "\n")
		for _, c := range taxonomy.Categories {
			matched := entry.ExtractedSkills[c.Key]
			if len(matched) == 0 {
				continue
			}
			fmt.Fprintf(&b, "%s: %s\n", c.Label, strings.Join(matched, ", "))
		}
		b.WriteString("\n")
	}

	b.WriteString(ChecklistText(entry.Checklist))
	b.WriteString(PlanText(entry.Plan))
	b.WriteString(QuestionsText(entry.Questions))

	return b.String()
}

func orUnspecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

func hasSkills(skills model.ExtractedSkills) bool {
	for _, matched := range skills {
		if len(matched) > 0 {
			return true
		}
	}
	return false
}
