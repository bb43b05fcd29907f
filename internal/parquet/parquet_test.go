package parquet

import (
	"testing"

	"github.com/quartzsec/rubric/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertBatchItems(t *testing.T) {
	items := []schema.BatchItem{
		{
			ID:     "PCI.3.4",
			Kind:   schema.ControlKind,
			Status: schema.BatchSuccess,
			Score:  88,
			Result: &schema.ScoreResponse{
				Verdict: schema.VerdictPass,
				Total:   schema.Total{Score: 88, GatedFail: false},
			},
		},
		{
			ID:     "item-2",
			Kind:   schema.ControlKind,
			Status: schema.BatchError,
			Error:  "scoring failed: boom",
		},
	}

	records := ConvertBatchItems(items)
	require.Len(t, records, 2)

	ok := records[0]
	assert.Equal(t, "PCI.3.4", ok.ID)
	assert.Equal(t, "control", ok.Kind)
	assert.Equal(t, "success", ok.Status)
	assert.Equal(t, int32(88), ok.Score)
	require.NotNil(t, ok.Verdict)
	assert.Equal(t, "pass", *ok.Verdict)
	assert.Nil(t, ok.Error)

	failed := records[1]
	assert.Nil(t, failed.Verdict) // error rows carry no verdict
	assert.Equal(t, int32(0), failed.Score)
	require.NotNil(t, failed.Error)
	assert.Equal(t, "scoring failed: boom", *failed.Error)
}

func TestConvertBatchItemsEmpty(t *testing.T) {
	assert.Empty(t, ConvertBatchItems(nil))
}
