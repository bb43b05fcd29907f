package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/quartzsec/rubric/internal/contract"
	"github.com/quartzsec/rubric/schema"
)

func itemVerdict(item schema.BatchItem) string {
	if item.Result == nil {
		return "N/A"
	}
	return string(item.Result.Verdict)
}

// writeBatchTable generates and writes the human-readable batch summary table.
func writeBatchTable(result *schema.BatchResult, cfg *contract.Config, writer io.Writer) error {
	fmtFloat := createFloatFormatter(cfg.Precision)
	table := tablewriter.NewWriter(writer)

	headers := []string{"Rank", "ID", "Kind", "Status", "Score", "Verdict"}
	hasErrors := result.Summary.Errors > 0
	if hasErrors {
		headers = append(headers, "Error")
	}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxText := GetMaxTableTextWidth(cfg)
	var data [][]string
	for i, item := range result.Items {
		verdict := itemVerdict(item)
		if cfg.UseColors && item.Result != nil {
			verdict = schema.ColorVerdict(item.Result.Verdict)
		}
		row := []string{
			strconv.Itoa(i + 1),
			item.ID,
			strings.ToUpper(string(item.Kind)),
			strings.ToUpper(string(item.Status)),
			strconv.Itoa(item.Score),
			verdict,
		}
		if hasErrors {
			row = append(row, contract.TruncateText(item.Error, maxText))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	s := result.Summary
	fmt.Fprintf(writer, "\nProcessed %d of %d, %d error(s), average score %s\n",
		s.Processed, s.Total, s.Errors, fmtFloat(s.AvgScore))
	return nil
}

// writeBatchCSV writes one row per batch item plus a trailing summary row.
func writeBatchCSV(w io.Writer, result *schema.BatchResult, cfg *contract.Config) error {
	fmtFloat := createFloatFormatter(cfg.Precision)
	header := []string{"id", "type", "status", "score", "verdict", "gated_fail", "error"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, item := range result.Items {
			gated := "false"
			if item.Result != nil && item.Result.Total.GatedFail {
				gated = "true"
			}
			row := []string{
				item.ID,
				string(item.Kind),
				string(item.Status),
				strconv.Itoa(item.Score),
				itemVerdict(item),
				gated,
				item.Error,
			}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		summary := []string{
			"summary",
			"",
			fmt.Sprintf("%d error(s)", result.Summary.Errors),
			fmtFloat(result.Summary.AvgScore),
			"",
			"",
			"",
		}
		if err := csvWriter.Write(summary); err != nil {
			return fmt.Errorf("failed to write CSV summary: %w", err)
		}
		return nil
	})
}
