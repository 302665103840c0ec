package model

import "time"

// Confidence is a per-keyword self-assessment.
type Confidence string

const (
	ConfidenceKnow     Confidence = "know"
	ConfidencePractice Confidence = "practice"
)

// Valid reports whether c is one of the two accepted confidence values.
func (c Confidence) Valid() bool {
	return c == ConfidenceKnow || c == ConfidencePractice
}

// ExtractedSkills maps a taxonomy category key to the keywords matched in
// that category. Keyword order follows the taxonomy, not the input text.
type ExtractedSkills map[string][]string

// ChecklistRound is one round of the 4-round preparation checklist.
type ChecklistRound struct {
	Round string   `json:"round"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// DayPlan is one day of the 7-day study plan.
type DayPlan struct {
	Day   string   `json:"day"`
	Label string   `json:"label"`
	Tasks []string `json:"tasks"`
}

// Entry is one persisted analysis. Everything except FinalScore,
// SkillConfidenceMap and UpdatedAt is immutable after creation.
type Entry struct {
	ID                 string                `json:"id"`
	CreatedAt          time.Time             `json:"createdAt"`
	UpdatedAt          time.Time             `json:"updatedAt"`
	Company            string                `json:"company"`
	Role               string                `json:"role"`
	JDText             string                `json:"jdText"`
	ExtractedSkills    ExtractedSkills       `json:"extractedSkills"`
	Checklist          []ChecklistRound      `json:"checklist"`
	Plan               []DayPlan             `json:"plan"`
	Questions          []string              `json:"questions"`
	BaseScore          int                   `json:"baseScore"`
	FinalScore         int                   `json:"finalScore"`
	SkillConfidenceMap map[string]Confidence `json:"skillConfidenceMap"`
}

// KV is the durable key-value port the history store is built on. Set must
// replace the whole value for a key; atomicity of a single Set is a
// property of the backend, not of this layer.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// HistoryStore is the validated, newest-first analysis history.
type HistoryStore interface {
	History() ([]Entry, error)
	Save(entry Entry) error
	ByID(id string) (Entry, error)
	Latest() (Entry, bool, error)
	DeleteEntry(id string) error
	UpdateSkillConfidence(id, keyword string, confidence Confidence) (Entry, error)
	UpdateReadinessScore(id string, score int) (Entry, error)
	MigrateLegacyEntries() (int, error)
}
