// Package parquet exports batch scoring results to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/quartzsec/rubric/schema"
)

// BatchItemRecord is the flat per-record row written to Parquet.
type BatchItemRecord struct {
	// ID identifies the scored record within the batch
	ID string `parquet:"id,snappy"`

	// Kind is the record type, control or et
	Kind string `parquet:"kind,snappy"`

	// Status is success or error
	Status string `parquet:"status,snappy"`

	// Score is the weighted total for successful rows
	Score int32 `parquet:"score,snappy"`

	// Verdict is pass, partial, or fail (nullable for error rows)
	Verdict *string `parquet:"verdict,optional,snappy"`

	// GatedFail is true when a critical failure forced the verdict
	GatedFail bool `parquet:"gated_fail,snappy"`

	// Error holds the row failure message (nullable)
	Error *string `parquet:"error,optional,snappy"`
}

// ConvertBatchItems flattens batch items into Parquet rows.
func ConvertBatchItems(items []schema.BatchItem) []BatchItemRecord {
	records := make([]BatchItemRecord, len(items))
	for i, item := range items {
		rec := BatchItemRecord{
			ID:     item.ID,
			Kind:   string(item.Kind),
			Status: string(item.Status),
			Score:  int32(item.Score),
		}
		if item.Result != nil {
			verdict := string(item.Result.Verdict)
			rec.Verdict = &verdict
			rec.GatedFail = item.Result.Total.GatedFail
		}
		if item.Error != "" {
			errText := item.Error
			rec.Error = &errText
		}
		records[i] = rec
	}
	return records
}

// WriteBatchItemsParquet writes batch item rows to a Parquet file. The schema
// is derived from the BatchItemRecord struct tags.
func WriteBatchItemsParquet(data []BatchItemRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[BatchItemRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}
