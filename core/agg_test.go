package core

import (
	"testing"

	"github.com/quartzsec/rubric/schema"
	"github.com/stretchr/testify/assert"
)

func check(id string, points, max int, status schema.CheckStatus) schema.CheckResult {
	return schema.CheckResult{ID: id, Points: points, Max: max, Status: status}
}

func TestAggregateDimension(t *testing.T) {
	tests := []struct {
		name   string
		checks []schema.CheckResult
		score  int
	}{
		{
			name:   "perfect checks",
			checks: []schema.CheckResult{check("a", 20, 20, schema.StatusPass), check("b", 30, 30, schema.StatusPass)},
			score:  100,
		},
		{
			name:   "half credit rounds",
			checks: []schema.CheckResult{check("a", 1, 3, schema.StatusWarn)}, // 33.33 rounds down
			score:  33,
		},
		{
			name:   "no checks",
			checks: nil,
			score:  0,
		},
		{
			name: "bonus outside denominator", // 50/50 base plus 5 bonus, clamped
			checks: []schema.CheckResult{
				check("a", 50, 50, schema.StatusPass),
				{ID: "b", Points: 5, Max: 5, Status: schema.StatusPass, Bonus: true},
			},
			score: 100,
		},
		{
			name: "bonus lifts imperfect base", // 45/50 = 90, plus 5 bonus
			checks: []schema.CheckResult{
				check("a", 45, 50, schema.StatusWarn),
				{ID: "b", Points: 5, Max: 5, Status: schema.StatusPass, Bonus: true},
			},
			score: 95,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dim := aggregateDimension("k", "Label", 0.5, tt.checks)
			assert.Equal(t, tt.score, dim.Score)
			assert.Equal(t, 100, dim.Max)
			assert.Equal(t, 0.5, dim.Weight)
		})
	}
}

func TestWeightedTotal(t *testing.T) {
	dims := []schema.DimensionResult{
		{Score: 100, Weight: 0.15},
		{Score: 100, Weight: 0.15},
		{Score: 50, Weight: 0.30},
		{Score: 0, Weight: 0.40},
	}
	assert.Equal(t, 45, weightedTotal(dims)) // 15 + 15 + 15 + 0
}

func TestHasCriticalFailure(t *testing.T) {
	tests := []struct {
		name  string
		dims  []schema.DimensionResult
		gated bool
	}{
		{
			name:  "fail at cutoff gates",
			dims:  []schema.DimensionResult{{Checks: []schema.CheckResult{check("a", 0, 15, schema.StatusFail)}}},
			gated: true,
		},
		{
			name:  "fail below cutoff does not",
			dims:  []schema.DimensionResult{{Checks: []schema.CheckResult{check("a", 0, 14, schema.StatusFail)}}},
			gated: false,
		},
		{
			name:  "warn never gates",
			dims:  []schema.DimensionResult{{Checks: []schema.CheckResult{check("a", 10, 50, schema.StatusWarn)}}},
			gated: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.gated, hasCriticalFailure(tt.dims, schema.DefaultGateMaxCutoff))
		})
	}
}

func TestResolveVerdict(t *testing.T) {
	p := &schema.PipelineRubric{PassThreshold: 80, FailThreshold: 60}
	tests := []struct {
		name    string
		total   int
		gated   bool
		verdict schema.Verdict
	}{
		{"at pass threshold", 80, false, schema.VerdictPass},
		{"between thresholds", 79, false, schema.VerdictPartial},
		{"at fail threshold", 60, false, schema.VerdictPartial},
		{"below fail threshold", 59, false, schema.VerdictFail},
		{"gated overrides total", 100, true, schema.VerdictFail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.verdict, resolveVerdict(tt.total, tt.gated, p))
		})
	}
}

func TestBuildMessages(t *testing.T) {
	dims := []schema.DimensionResult{
		{Checks: []schema.CheckResult{
			{Status: schema.StatusFail, Notes: "broken"},
			{Status: schema.StatusWarn, Notes: "shaky"},
			{Status: schema.StatusPass, Notes: "fine"},    // passing notes stay out
			{Status: schema.StatusFail, Notes: ""},        // empty notes stay out
		}},
	}
	msgs := buildMessages(dims, 10)
	assert.Equal(t, []schema.Message{
		{Level: schema.StatusFail, Text: "broken"},
		{Level: schema.StatusWarn, Text: "shaky"},
	}, msgs)

	capped := buildMessages(dims, 1)
	assert.Len(t, capped, 1)
	assert.Equal(t, "broken", capped[0].Text)
}

func TestBuildSuggestionsDedupesAndCaps(t *testing.T) {
	dims := []schema.DimensionResult{
		{Checks: []schema.CheckResult{
			{Violations: []string{"fix a", "fix b"}},
			{Violations: []string{"fix a", "fix c", ""}},
		}},
	}
	out := buildSuggestions(dims, 8)
	assert.Equal(t, []string{"fix a", "fix b", "fix c"}, out)

	capped := buildSuggestions(dims, 2)
	assert.Equal(t, []string{"fix a", "fix b"}, capped)
}
