package analysis

import "strings"

// Input limits. The 200-character floor is a soft threshold: the engine
// still runs below it, but callers are expected to warn that results will
// be shallow.
const (
	MinJDLength    = 200
	MaxJDLength    = 10000
	MaxLabelLength = 100
)

// Submission is the raw user input: free-text job description plus two
// optional labels.
type Submission struct {
	Company string
	Role    string
	JDText  string
}

// ValidationResult carries human-readable problems with a submission.
// Errors block analysis; warnings do not.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// OK reports whether the submission can be analyzed.
func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// Validate checks a submission and returns message lists instead of an
// error: no input problem is fatal to the process.
func Validate(s Submission) ValidationResult {
	var result ValidationResult

	jd := strings.TrimSpace(s.JDText)
	switch {
	case jd == "":
		result.Errors = append(result.Errors, "job description is required")
	case len(jd) > MaxJDLength:
		result.Errors = append(result.Errors, "job description is too long, limit is 10,000 characters")
	case len(jd) < MinJDLength:
		result.Warnings = append(result.Warnings, "job description is short; paste the full JD for deeper output")
	}

	if len(strings.TrimSpace(s.Company)) > MaxLabelLength {
		result.Errors = append(result.Errors, "company name is too long, limit is 100 characters")
	}
	if len(strings.TrimSpace(s.Role)) > MaxLabelLength {
		result.Errors = append(result.Errors, "role is too long, limit is 100 characters")
	}

	return result
}

// Sanitize trims all fields and caps them at their limits. Run becomes
// total over sanitized input.
func Sanitize(s Submission) Submission {
	return Submission{
		Company: capString(strings.TrimSpace(s.Company), MaxLabelLength),
		Role:    capString(strings.TrimSpace(s.Role), MaxLabelLength),
		JDText:  capString(strings.TrimSpace(s.JDText), MaxJDLength),
	}
}

func capString(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
