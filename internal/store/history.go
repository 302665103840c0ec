// Package store persists the analysis history: a single JSON array of
// entries under one durable key, reached through the model.KV port. The
// history layer validates everything it materializes, drops (but does not
// erase) elements that fail schema checks, and upgrades legacy-schema
// records in place.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/amishk599/prepkit/internal/analysis"
	"github.com/amishk599/prepkit/internal/model"
)

// historyKey is the single durable key the serialized collection lives
// under. The value predates this implementation; changing it would orphan
// existing histories.
const historyKey = "placement-prep-history"

// History is the validated, newest-first analysis history.
type History struct {
	kv     model.KV
	logger *slog.Logger
	now    func() time.Time
}

// NewHistory returns a History over the given storage port.
func NewHistory(kv model.KV, logger *slog.Logger) *History {
	return &History{kv: kv, logger: logger, now: time.Now}
}

// readRaw loads the serialized collection without validating elements.
// Missing or unparsable data degrades to an empty collection; only backend
// failures surface as errors.
func (h *History) readRaw() ([]json.RawMessage, error) {
	data, ok, err := h.kv.Get(historyKey)
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		h.logger.Warn("history payload is not a JSON array, treating as empty", "error", err)
		return nil, nil
	}
	return items, nil
}

func (h *History) writeRaw(items []json.RawMessage) error {
	if items == nil {
		items = []json.RawMessage{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("serializing history: %w", err)
	}
	if err := h.kv.Set(historyKey, data); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}

// History returns the validated view, newest first. Elements failing schema
// validation are dropped from the view with a logged warning; they stay in
// durable storage until the collection is next rewritten.
func (h *History) History() ([]model.Entry, error) {
	raw, err := h.readRaw()
	if err != nil {
		return nil, err
	}

	entries := make([]model.Entry, 0, len(raw))
	for i, item := range raw {
		entry, err := decodeEntry(item)
		if err != nil {
			h.logger.Warn("dropping invalid history entry", "index", i, "error", err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Save prepends entry to the history and rewrites the collection. Raw
// elements that fail validation are carried through untouched.
func (h *History) Save(entry model.Entry) error {
	raw, err := h.readRaw()
	if err != nil {
		return err
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("serializing entry: %w", err)
	}

	items := make([]json.RawMessage, 0, len(raw)+1)
	items = append(items, data)
	items = append(items, raw...)
	return h.writeRaw(items)
}

// ByID returns the entry with the given id from the validated view.
func (h *History) ByID(id string) (model.Entry, error) {
	entries, err := h.History()
	if err != nil {
		return model.Entry{}, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Entry{}, model.ErrEntryNotFound
}

// Latest returns the newest entry in the validated view, if any.
func (h *History) Latest() (model.Entry, bool, error) {
	entries, err := h.History()
	if err != nil {
		return model.Entry{}, false, err
	}
	if len(entries) == 0 {
		return model.Entry{}, false, nil
	}
	return entries[0], true, nil
}

// DeleteEntry removes the entry with the given id and rewrites the
// collection. Elements that do not decode are left in place.
func (h *History) DeleteEntry(id string) error {
	raw, err := h.readRaw()
	if err != nil {
		return err
	}

	removed := false
	kept := make([]json.RawMessage, 0, len(raw))
	for _, item := range raw {
		var probe struct {
			ID string `json:"id"`
		}
		if json.Unmarshal(item, &probe) == nil && probe.ID == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return model.ErrEntryNotFound
	}
	return h.writeRaw(kept)
}

// UpdateSkillConfidence reclassifies one extracted keyword, refreshes
// updatedAt, recomputes the live score from the full confidence map, and
// rewrites the collection. Returns the updated entry.
func (h *History) UpdateSkillConfidence(id, keyword string, confidence model.Confidence) (model.Entry, error) {
	if !confidence.Valid() {
		return model.Entry{}, model.ErrBadConfidence
	}
	return h.mutate(id, func(entry *model.Entry) error {
		if _, ok := entry.SkillConfidenceMap[keyword]; !ok {
			return fmt.Errorf("%q: %w", keyword, model.ErrUnknownSkill)
		}
		entry.SkillConfidenceMap[keyword] = confidence
		entry.FinalScore = analysis.LiveScore(entry.BaseScore, entry.SkillConfidenceMap)
		return nil
	})
}

// UpdateReadinessScore sets finalScore (clamped to [0,100]), refreshes
// updatedAt, and rewrites the collection.
func (h *History) UpdateReadinessScore(id string, score int) (model.Entry, error) {
	return h.mutate(id, func(entry *model.Entry) error {
		switch {
		case score < 0:
			entry.FinalScore = 0
		case score > 100:
			entry.FinalScore = 100
		default:
			entry.FinalScore = score
		}
		return nil
	})
}

// mutate applies fn to the entry with the given id and rewrites the
// collection, leaving every other raw element byte-for-byte untouched.
func (h *History) mutate(id string, fn func(entry *model.Entry) error) (model.Entry, error) {
	raw, err := h.readRaw()
	if err != nil {
		return model.Entry{}, err
	}

	for i, item := range raw {
		entry, err := decodeEntry(item)
		if err != nil || entry.ID != id {
			continue
		}

		if err := fn(&entry); err != nil {
			return model.Entry{}, err
		}
		entry.UpdatedAt = h.now().UTC()

		data, err := json.Marshal(entry)
		if err != nil {
			return model.Entry{}, fmt.Errorf("serializing entry: %w", err)
		}
		raw[i] = data
		if err := h.writeRaw(raw); err != nil {
			return model.Entry{}, err
		}
		return entry, nil
	}

	return model.Entry{}, model.ErrEntryNotFound
}
