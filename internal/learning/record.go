package learning

import "time"

// Record is the append-only learning entry captured for every processed
// turn. Records are never mutated and expire after the store's retention
// window.
type Record struct {
	Timestamp time.Time       `json:"timestamp"`
	SessionID string          `json:"session_id"`
	Input     string          `json:"input"` // lowercased user utterance
	Response  string          `json:"response"`
	Extracted map[string]bool `json:"extracted"` // field name -> was extracted this turn
	Topics    []string        `json:"topics,omitempty"`
	Intent    string          `json:"intent"`
	Sentiment string          `json:"sentiment"`
}

// AnyExtracted reports whether at least one entity field was extracted.
func (r Record) AnyExtracted() bool {
	for _, ok := range r.Extracted {
		if ok {
			return true
		}
	}
	return false
}
