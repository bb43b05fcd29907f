// Package outwriter has output and writer logic for scoring results.
package outwriter

import (
	"fmt"
	"io"
	"os"

	"github.com/quartzsec/rubric/internal/contract"
	"github.com/quartzsec/rubric/internal/parquet"
	"github.com/quartzsec/rubric/schema"
)

// OutWriter provides a unified interface for all output operations.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteScore prints a single scoring result using the configured output format.
func (ow *OutWriter) WriteScore(resp *schema.ScoreResponse, cfg *contract.Config) error {
	return WriteScoreResult(resp, cfg)
}

// WriteBatch prints batch scoring results using the configured output format.
func (ow *OutWriter) WriteBatch(result *schema.BatchResult, cfg *contract.Config) error {
	return WriteBatchResults(result, cfg)
}

// WriteScoreResult dispatches a single result based on the configured format.
// Parquet is a batch-only format; single results fall back to JSON.
func WriteScoreResult(resp *schema.ScoreResponse, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut, schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, resp)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreCSV(w, resp)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreTable(resp, cfg, w)
		}, "Wrote table")
	}
}

// WriteBatchResults dispatches batch results based on the configured format.
func WriteBatchResults(result *schema.BatchResult, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBatchCSV(w, result, cfg)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		records := parquet.ConvertBatchItems(result.Items)
		if err := parquet.WriteBatchItemsParquet(records, cfg.OutputFile); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote parquet to %s\n", cfg.OutputFile)
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBatchTable(result, cfg, w)
		}, "Wrote table")
	}
}
