package store

import (
	"encoding/json"
	"time"

	"github.com/amishk599/prepkit/internal/model"
	"github.com/amishk599/prepkit/internal/taxonomy"
)

// legacyEntryV0 is the pre-standardization record shape: a single
// readinessScore instead of base/final, no updatedAt, and extractedSkills
// keyed by free-form category labels ("Core CS", "Cloud/DevOps", ...).
type legacyEntryV0 struct {
	ID                 string                      `json:"id"`
	CreatedAt          string                      `json:"createdAt"`
	Company            string                      `json:"company"`
	Role               string                      `json:"role"`
	JDText             string                      `json:"jdText"`
	ExtractedSkills    map[string][]string         `json:"extractedSkills"`
	Checklist          []model.ChecklistRound      `json:"checklist"`
	Plan               []model.DayPlan             `json:"plan"`
	Questions          []string                    `json:"questions"`
	ReadinessScore     *int                        `json:"readinessScore"`
	SkillConfidenceMap map[string]model.Confidence `json:"skillConfidenceMap"`
}

// schemaVersionOf probes a raw element: v1 records carry the full
// baseScore/finalScore/updatedAt set, anything else is treated as v0.
func schemaVersionOf(raw json.RawMessage) int {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return 0
	}
	_, hasBase := probe["baseScore"]
	_, hasFinal := probe["finalScore"]
	_, hasUpdated := probe["updatedAt"]
	if hasBase && hasFinal && hasUpdated {
		return 1
	}
	return 0
}

// MigrateLegacyEntries upgrades every v0 record in place and reports how
// many were migrated. Running it on already-current storage is a no-op.
// Elements that are neither current nor recoverably legacy are left
// byte-for-byte untouched; a failed read or write leaves prior storage
// unchanged rather than producing a half-migrated collection.
func (h *History) MigrateLegacyEntries() (int, error) {
	raw, err := h.readRaw()
	if err != nil {
		return 0, err
	}

	migrated := 0
	for i, item := range raw {
		if schemaVersionOf(item) == 1 {
			continue
		}

		entry, ok := migrateV0(item)
		if !ok {
			h.logger.Warn("skipping unrecoverable legacy entry", "index", i)
			continue
		}

		data, err := json.Marshal(entry)
		if err != nil {
			h.logger.Warn("skipping legacy entry that failed to re-serialize", "index", i, "error", err)
			continue
		}
		raw[i] = data
		migrated++
	}

	if migrated == 0 {
		return 0, nil
	}
	if err := h.writeRaw(raw); err != nil {
		return 0, err
	}
	h.logger.Info("migrated legacy history entries", "count", migrated)
	return migrated, nil
}

// migrateV0 is the total mapping from a recoverable v0 record to the
// current schema. It backfills baseScore and finalScore from the legacy
// readinessScore, updatedAt from createdAt, remaps legacy category labels
// to standardized keys, and routes unmapped categories into the "other"
// bucket rather than dropping their keywords.
func migrateV0(raw json.RawMessage) (model.Entry, bool) {
	var legacy legacyEntryV0
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return model.Entry{}, false
	}
	if legacy.ID == "" || legacy.ReadinessScore == nil {
		return model.Entry{}, false
	}
	createdAt, err := parseLegacyTime(legacy.CreatedAt)
	if err != nil {
		return model.Entry{}, false
	}

	skills := make(model.ExtractedSkills)
	for label, keywords := range legacy.ExtractedSkills {
		key, ok := taxonomy.KeyForLegacyLabel(label)
		if !ok {
			key = taxonomy.KeyOther
		}
		skills[key] = append(skills[key], keywords...)
	}
	skills = taxonomy.Normalize(skills)

	score := *legacy.ReadinessScore
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	confidence := make(map[string]model.Confidence)
	for _, kw := range taxonomy.MatchedKeywords(skills) {
		confidence[kw] = model.ConfidencePractice
	}
	for kw, c := range legacy.SkillConfidenceMap {
		if _, ok := confidence[kw]; ok && c.Valid() {
			confidence[kw] = c
		}
	}

	return model.Entry{
		ID:                 legacy.ID,
		CreatedAt:          createdAt,
		UpdatedAt:          createdAt,
		Company:            legacy.Company,
		Role:               legacy.Role,
		JDText:             legacy.JDText,
		ExtractedSkills:    skills,
		Checklist:          legacy.Checklist,
		Plan:               legacy.Plan,
		Questions:          legacy.Questions,
		BaseScore:          score,
		FinalScore:         score,
		SkillConfidenceMap: confidence,
	}, true
}

// parseLegacyTime accepts the timestamp shapes legacy writers produced.
func parseLegacyTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
