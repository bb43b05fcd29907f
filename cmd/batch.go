package cmd

import (
	"fmt"
	"os"

	"github.com/quartzsec/rubric/core"
	"github.com/quartzsec/rubric/internal/batchio"
	"github.com/quartzsec/rubric/internal/contract"
	"github.com/quartzsec/rubric/internal/outwriter"
	"github.com/spf13/cobra"
)

// batchCmd scores every row of a CSV file.
var batchCmd = &cobra.Command{
	Use:   "batch <input.csv>",
	Short: "Score every record of a CSV file.",
	Long: `Score each row of a CSV file and print per-row results plus a summary.

The record kind is detected from the column headers: a control ID column in
any common spelling (control_id, controlId, Control ID) marks the file as
controls, anything else scores as evidence tasks. Use --kind to override.

A row that fails to score is reported as an error and never aborts the rest
of the batch.

Examples:
  # Score a control inventory and print a table
  rubric batch controls.csv

  # Force evidence task scoring and export JSON
  rubric batch tasks.csv --kind et --output json --output-file results.json

  # Export flat per-row results to parquet
  rubric batch controls.csv --output parquet --output-file results.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		headers, rows, err := batchio.ReadFile(cfg.InputFile)
		if err != nil {
			contract.LogFatal("Cannot read batch input", err)
		}

		kind := cfg.Kind
		if !cfg.KindSet {
			kind = core.DetectRecordKind(headers)
		}

		progress := func(current, total int) {
			fmt.Fprintf(os.Stderr, "\rScoring %d/%d", current, total)
			if current == total {
				fmt.Fprintln(os.Stderr)
			}
		}

		result := core.ScoreBatch(rows, kind, cfg.Rubric, progress)
		if err := outwriter.NewOutWriter().WriteBatch(&result, cfg); err != nil {
			contract.LogFatal("Cannot write batch results", err)
		}
		if result.Summary.Errors > 0 {
			contract.LogWarn("Batch completed with errors", fmt.Errorf("%d row(s) failed to score", result.Summary.Errors))
			os.Exit(1)
		}
	},
}
