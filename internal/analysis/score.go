package analysis

import (
	"strings"

	"github.com/amishk599/prepkit/internal/model"
)

const (
	scoreBase            = 35
	scorePerCategory     = 5
	scoreCategoryCap     = 30
	scoreCompanyBonus    = 10
	scoreRoleBonus       = 10
	scoreLongJDBonus     = 10
	longJDThreshold      = 800
	confidenceAdjustment = 2
)

// ReadinessScore computes the base 0–100 score from extraction breadth and
// input metadata. Identical inputs always yield the identical score.
func ReadinessScore(skills model.ExtractedSkills, company, role, jdText string) int {
	score := scoreBase

	categories := 0
	for _, matched := range skills {
		if len(matched) > 0 {
			categories++
		}
	}
	score += min(categories*scorePerCategory, scoreCategoryCap)

	if strings.TrimSpace(company) != "" {
		score += scoreCompanyBonus
	}
	if strings.TrimSpace(role) != "" {
		score += scoreRoleBonus
	}
	if len(jdText) > longJDThreshold {
		score += scoreLongJDBonus
	}

	return clampScore(score)
}

// LiveScore folds the current confidence map over the base score: +2 per
// keyword marked "know", -2 per keyword marked "practice", clamped to
// [0,100]. The fold is order-independent, so repeated toggles of the same
// keyword converge regardless of intermediate states.
func LiveScore(baseScore int, confidence map[string]model.Confidence) int {
	adjustment := 0
	for _, c := range confidence {
		if c == model.ConfidenceKnow {
			adjustment += confidenceAdjustment
		} else {
			adjustment -= confidenceAdjustment
		}
	}
	return clampScore(baseScore + adjustment)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
