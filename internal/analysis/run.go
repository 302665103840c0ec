package analysis

import (
	"time"

	"github.com/google/uuid"

	"github.com/amishk599/prepkit/internal/model"
	"github.com/amishk599/prepkit/internal/taxonomy"
)

// Runner composes extraction, scoring and artifact generation into one
// entry. The clock and id generator are injectable so construction is
// reproducible in tests; everything else is pure.
type Runner struct {
	now   func() time.Time
	newID func() string
}

// NewRunner returns a Runner using the wall clock and random UUIDs.
func NewRunner() *Runner {
	return &Runner{now: time.Now, newID: uuid.NewString}
}

// NewRunnerAt returns a Runner with a fixed clock and id source.
func NewRunnerAt(now func() time.Time, newID func() string) *Runner {
	return &Runner{now: now, newID: newID}
}

// Run is the sole entry-construction path. It trusts upstream validation
// and has no failure mode: any sanitized input yields a complete entry with
// finalScore == baseScore and every matched keyword seeded to "practice".
func (r *Runner) Run(s Submission) model.Entry {
	skills := ExtractSkills(s.JDText)

	confidence := make(map[string]model.Confidence)
	for _, kw := range taxonomy.MatchedKeywords(skills) {
		confidence[kw] = model.ConfidencePractice
	}

	score := ReadinessScore(skills, s.Company, s.Role, s.JDText)
	now := r.now().UTC()

	return model.Entry{
		ID:                 r.newID(),
		CreatedAt:          now,
		UpdatedAt:          now,
		Company:            s.Company,
		Role:               s.Role,
		JDText:             s.JDText,
		ExtractedSkills:    taxonomy.Normalize(skills),
		Checklist:          GenerateChecklist(skills),
		Plan:               GeneratePlan(skills),
		Questions:          GenerateQuestions(skills),
		BaseScore:          score,
		FinalScore:         score,
		SkillConfidenceMap: confidence,
	}
}
