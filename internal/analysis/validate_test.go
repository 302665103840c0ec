package analysis

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	longJD := strings.Repeat("x", 500)

	tests := []struct {
		name         string
		s            Submission
		wantErrors   int
		wantWarnings int
	}{
		{
			name:       "empty job description is required",
			s:          Submission{JDText: "   "},
			wantErrors: 1,
		},
		{
			name:         "short job description warns but passes",
			s:            Submission{JDText: "short JD"},
			wantErrors:   0,
			wantWarnings: 1,
		},
		{
			name:       "over-length job description",
			s:          Submission{JDText: strings.Repeat("x", MaxJDLength+1)},
			wantErrors: 1,
		},
		{
			name:       "over-length labels",
			s:          Submission{JDText: longJD, Company: strings.Repeat("c", 101), Role: strings.Repeat("r", 101)},
			wantErrors: 2,
		},
		{
			name: "clean submission",
			s:    Submission{JDText: longJD, Company: "Acme", Role: "SDE-1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.s)
			if len(result.Errors) != tt.wantErrors {
				t.Errorf("errors = %v, want %d", result.Errors, tt.wantErrors)
			}
			if len(result.Warnings) != tt.wantWarnings {
				t.Errorf("warnings = %v, want %d", result.Warnings, tt.wantWarnings)
			}
			if result.OK() != (tt.wantErrors == 0) {
				t.Errorf("OK() = %v with %d errors", result.OK(), tt.wantErrors)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	s := Sanitize(Submission{
		Company: "  " + strings.Repeat("c", 150),
		Role:    " SDE-1 ",
		JDText:  " " + strings.Repeat("j", MaxJDLength+500) + " ",
	})

	if len(s.Company) != MaxLabelLength {
		t.Errorf("company length = %d, want %d", len(s.Company), MaxLabelLength)
	}
	if s.Role != "SDE-1" {
		t.Errorf("role = %q, want trimmed %q", s.Role, "SDE-1")
	}
	if len(s.JDText) != MaxJDLength {
		t.Errorf("jd length = %d, want %d", len(s.JDText), MaxJDLength)
	}
}
