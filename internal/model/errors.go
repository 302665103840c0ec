package model

import "errors"

// ErrEntryNotFound is returned by lookups and mutations for an unknown id.
var ErrEntryNotFound = errors.New("entry not found")

// ErrUnknownSkill is returned when a confidence update names a keyword that
// was never extracted for the entry.
var ErrUnknownSkill = errors.New("skill not present in entry")

// ErrBadConfidence is returned for a confidence value other than
// "know" or "practice".
var ErrBadConfidence = errors.New(`confidence must be "know" or "practice"`)
