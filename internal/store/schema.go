package store

import (
	"encoding/json"
	"fmt"

	"github.com/amishk599/prepkit/internal/model"
	"github.com/amishk599/prepkit/internal/taxonomy"
)

// requiredFields is the current (v1) entry field set. skillConfidenceMap is
// deliberately absent: older current-schema writers omitted it and the
// history layer tolerates that.
var requiredFields = []string{
	"id", "createdAt", "company", "role", "jdText",
	"extractedSkills", "checklist", "plan", "questions",
	"baseScore", "finalScore", "updatedAt",
}

// decodeEntry validates one raw history element against the current schema
// and decodes it. Any single failing check rejects the whole element.
func decodeEntry(raw json.RawMessage) (model.Entry, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return model.Entry{}, fmt.Errorf("entry is not an object: %w", err)
	}

	for _, field := range requiredFields {
		if _, ok := probe[field]; !ok {
			return model.Entry{}, fmt.Errorf("missing required field %q", field)
		}
	}

	var skills map[string]json.RawMessage
	if err := json.Unmarshal(probe["extractedSkills"], &skills); err != nil {
		return model.Entry{}, fmt.Errorf("extractedSkills is not an object: %w", err)
	}
	for _, key := range taxonomy.Keys() {
		rawList, ok := skills[key]
		if !ok {
			return model.Entry{}, fmt.Errorf("extractedSkills missing category %q", key)
		}
		var list []string
		if err := json.Unmarshal(rawList, &list); err != nil {
			return model.Entry{}, fmt.Errorf("extractedSkills category %q is not a list: %w", key, err)
		}
	}

	var entry model.Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return model.Entry{}, fmt.Errorf("decoding entry: %w", err)
	}

	if entry.BaseScore < 0 || entry.BaseScore > 100 {
		return model.Entry{}, fmt.Errorf("baseScore %d out of range", entry.BaseScore)
	}
	if entry.FinalScore < 0 || entry.FinalScore > 100 {
		return model.Entry{}, fmt.Errorf("finalScore %d out of range", entry.FinalScore)
	}
	if entry.CreatedAt.IsZero() || entry.UpdatedAt.IsZero() {
		return model.Entry{}, fmt.Errorf("invalid timestamps")
	}

	return entry, nil
}
