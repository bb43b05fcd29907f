// Package schema has configs, models and shared types for all parts of rubric.
package schema

// CheckStatus is the outcome of a single rubric check.
type CheckStatus string

// Check statuses. NA is reserved for bonus checks that did not trigger.
const (
	StatusPass CheckStatus = "PASS"
	StatusWarn CheckStatus = "WARN"
	StatusFail CheckStatus = "FAIL"
	StatusNA   CheckStatus = "N/A"
)

// Verdict is the final categorical outcome for a scored record.
type Verdict string

// Verdicts, from best to worst.
const (
	VerdictPass    Verdict = "pass"
	VerdictPartial Verdict = "partial"
	VerdictFail    Verdict = "fail"
)

// RecordKind distinguishes the two scoring pipelines.
type RecordKind string

// Record kinds accepted by the batch driver and HTTP API.
const (
	ControlKind      RecordKind = "control"
	EvidenceTaskKind RecordKind = "et"
)

// ControlInput is a governance control record. All fields are free text and
// may be empty; the engine treats absent text as the empty string.
type ControlInput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Guidance    string `json:"guidance"`
	Framework   string `json:"framework,omitempty"`
}

// EvidenceTaskInput describes what evidence to collect and how.
type EvidenceTaskInput struct {
	WhatToCollect string `json:"what_to_collect"`
	HowToCollect  string `json:"how_to_collect"`
}

// CheckResult is the outcome of one atomic rubric check.
type CheckResult struct {
	ID         string      `json:"id"`     // Stable namespaced identifier, e.g. "desc.word_count"
	Label      string      `json:"label"`  // Human-readable name
	Points     int         `json:"points"` // Awarded points, 0 <= Points <= Max
	Max        int         `json:"max"`    // Maximum attainable points; the check's weight within its dimension
	Status     CheckStatus `json:"status"`
	Notes      string      `json:"notes,omitempty"`      // First violation, when any
	Violations []string    `json:"violations,omitempty"` // Deduplicated, in detection order
	Bonus      bool        `json:"bonus,omitempty"`      // Bonus points add after normalization
}

// DimensionResult groups check results under a named, weighted scoring dimension.
type DimensionResult struct {
	Key    string        `json:"key"`
	Label  string        `json:"label"`
	Score  int           `json:"score"`  // Normalized 0-100
	Max    int           `json:"max"`    // Always 100 post-normalization
	Weight float64       `json:"weight"` // Share of the total score; weights sum to 1.0 per pipeline
	Checks []CheckResult `json:"checks"`
}

// Total is the weighted combination of all dimension scores.
type Total struct {
	Score     int                `json:"score"`
	Max       int                `json:"max"`
	Formula   string             `json:"formula"`
	Weights   map[string]float64 `json:"weights"`
	GatedFail bool               `json:"gated_fail"`
}

// Message is a display line derived from a FAIL or WARN check.
type Message struct {
	Level CheckStatus `json:"level"`
	Text  string      `json:"text"`
}

// ScoreResponse is the engine's full output for one scored record.
// All entities are created fresh per scoring call; there is no cross-call state.
type ScoreResponse struct {
	Version     string                     `json:"version"`
	Verdict     Verdict                    `json:"verdict"`
	Total       Total                      `json:"total"`
	Dimensions  map[string]DimensionResult `json:"dimensions"`
	Messages    []Message                  `json:"messages"`
	Suggestions []string                   `json:"suggestions"`
}

// BatchItemStatus is the per-row outcome of a batch run.
type BatchItemStatus string

// Batch item statuses.
const (
	BatchSuccess BatchItemStatus = "success"
	BatchError   BatchItemStatus = "error"
)

// BatchItem is one scored (or errored) row from a batch run.
type BatchItem struct {
	ID     string          `json:"id"`
	Kind   RecordKind      `json:"type"`
	Status BatchItemStatus `json:"status"`
	Score  int             `json:"score"`
	Result *ScoreResponse  `json:"score_details,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// BatchSummary aggregates a batch run. AvgScore covers successful rows only.
type BatchSummary struct {
	Total     int     `json:"total"`
	Processed int     `json:"processed"`
	Errors    int     `json:"errors"`
	AvgScore  float64 `json:"avgScore"`
}

// BatchResult is the full outcome of a batch run, items in input order.
type BatchResult struct {
	Items   []BatchItem  `json:"items"`
	Summary BatchSummary `json:"summary"`
}
