package core

import (
	"fmt"
	"testing"

	"github.com/quartzsec/rubric/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectRecordKind(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		kind    schema.RecordKind
	}{
		{"snake case control id", []string{"control_id", "name"}, schema.ControlKind},
		{"camel case control id", []string{"controlId", "name"}, schema.ControlKind},
		{"spaced control id", []string{"Control ID", "Name"}, schema.ControlKind},
		{"task headers", []string{"id", "what to collect", "how to collect"}, schema.EvidenceTaskKind},
		{"no headers", nil, schema.EvidenceTaskKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, DetectRecordKind(tt.headers))
		})
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Control ID", "controlId"},
		{"control_id", "controlId"},
		{"what-to-collect", "whatToCollect"},
		{"Name", "name"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeKey(tt.in), "normalizeKey(%q)", tt.in)
	}
}

func TestRowID(t *testing.T) {
	assert.Equal(t, "CTL-1", rowID(map[string]string{"id": "CTL-1"}, 0))
	assert.Equal(t, "GDPR.1.1", rowID(map[string]string{"controlId": "GDPR.1.1"}, 3))
	assert.Equal(t, "item-5", rowID(map[string]string{}, 4)) // fallback is 1-based
}

func TestScoreBatchIsolatesPanics(t *testing.T) {
	origControl, origET := scoreControlFn, scoreEvidenceTaskFn
	defer func() {
		scoreControlFn, scoreEvidenceTaskFn = origControl, origET
	}()

	calls := 0
	scoreEvidenceTaskFn = func(in schema.EvidenceTaskInput, r *schema.Rubric) schema.ScoreResponse {
		calls++
		if calls == 5 {
			panic("check blew up")
		}
		return schema.ScoreResponse{
			Verdict: schema.VerdictPass,
			Total:   schema.Total{Score: 80, Max: 100},
		}
	}

	rows := make([]map[string]string, 10)
	for i := range rows {
		rows[i] = map[string]string{"what to collect": fmt.Sprintf("outcome %d", i)}
	}

	var progress []int
	res := ScoreBatch(rows, schema.EvidenceTaskKind, nil, func(current, total int) {
		progress = append(progress, current)
		assert.Equal(t, 10, total)
	})

	assert.Equal(t, 10, res.Summary.Total)
	assert.Equal(t, 10, res.Summary.Processed)
	assert.Equal(t, 1, res.Summary.Errors)
	assert.Equal(t, 80.0, res.Summary.AvgScore) // average over successes only

	require.Len(t, res.Items, 10)
	failed := res.Items[4]
	assert.Equal(t, schema.BatchError, failed.Status)
	assert.Contains(t, failed.Error, "scoring failed")
	assert.Nil(t, failed.Result)

	ok := res.Items[0]
	assert.Equal(t, schema.BatchSuccess, ok.Status)
	assert.Equal(t, 80, ok.Score)
	require.NotNil(t, ok.Result)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, progress)
}

func TestScoreBatchEmpty(t *testing.T) {
	res := ScoreBatch(nil, schema.ControlKind, nil, nil)
	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.Summary.Total)
	assert.Equal(t, 0.0, res.Summary.AvgScore)
}

func TestScoreBatchControls(t *testing.T) {
	rows := []map[string]string{
		{
			"Control ID":  "PCI.3.4",
			"Name":        "Encrypt stored card data",
			"Description": "Stored cardholder data is encrypted at rest using strong cryptography across every storage location in scope.",
			"Guidance":    "Encryption of stored data limits the impact of storage compromise.\n1. Identify storage locations.\n2. Apply encryption.\n3. Verify key management.",
		},
	}
	res := ScoreBatch(rows, schema.ControlKind, nil, nil)

	require.Len(t, res.Items, 1)
	item := res.Items[0]
	assert.Equal(t, "PCI.3.4", item.ID)
	assert.Equal(t, schema.ControlKind, item.Kind)
	assert.Equal(t, schema.BatchSuccess, item.Status)
	require.NotNil(t, item.Result)
	assert.Equal(t, item.Result.Total.Score, item.Score)
}
