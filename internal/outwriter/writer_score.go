package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/quartzsec/rubric/internal/contract"
	"github.com/quartzsec/rubric/schema"
)

// dimensionOrder returns a stable display order for a result's dimensions.
// Control and evidence task results carry disjoint dimension keys, so probing
// for "what" is enough to pick the right sequence.
func dimensionOrder(resp *schema.ScoreResponse) []string {
	if _, ok := resp.Dimensions[schema.DimWhat]; ok {
		return []string{schema.DimWhat, schema.DimHow, schema.DimCohesion, schema.DimClarity}
	}
	return []string{schema.DimIDQuality, schema.DimNameQuality, schema.DimDescriptionQuality, schema.DimGuidanceQuality}
}

// writeScoreTable generates and writes the human-readable result for one record.
func writeScoreTable(resp *schema.ScoreResponse, cfg *contract.Config, writer io.Writer) error {
	verdict := string(resp.Verdict)
	if cfg.UseColors {
		verdict = schema.ColorVerdict(resp.Verdict)
	}
	fmt.Fprintf(writer, "Verdict: %s  Total: %d/%d\n", verdict, resp.Total.Score, resp.Total.Max)
	if resp.Total.GatedFail {
		fmt.Fprintln(writer, "Gated: a critical check failed")
	}
	fmt.Fprintf(writer, "Formula: %s\n\n", resp.Total.Formula)

	table := tablewriter.NewWriter(writer)

	headers := []string{"Dimension", "Score", "Max", "Weight"}
	if cfg.Detail {
		headers = append(headers, "Check", "Points", "Status", "Notes")
	}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxText := GetMaxTableTextWidth(cfg)
	var data [][]string
	for _, key := range dimensionOrder(resp) {
		d, ok := resp.Dimensions[key]
		if !ok {
			continue
		}
		row := []string{
			d.Label,
			strconv.Itoa(d.Score),
			strconv.Itoa(d.Max),
			fmt.Sprintf("%.2f", d.Weight),
		}
		if !cfg.Detail {
			data = append(data, row)
			continue
		}
		for i, c := range d.Checks {
			checkRow := row
			if i > 0 {
				checkRow = []string{"", "", "", ""}
			}
			status := string(c.Status)
			if cfg.UseColors {
				status = schema.ColorStatus(c.Status)
			}
			checkRow = append(checkRow,
				c.Label,
				fmt.Sprintf("%d/%d", c.Points, c.Max),
				status,
				contract.TruncateText(c.Notes, maxText),
			)
			data = append(data, checkRow)
		}
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(resp.Messages) > 0 {
		fmt.Fprintln(writer)
		for _, m := range resp.Messages {
			level := string(m.Level)
			if cfg.UseColors {
				level = schema.ColorStatus(m.Level)
			}
			fmt.Fprintf(writer, "[%s] %s\n", level, m.Text)
		}
	}
	if len(resp.Suggestions) > 0 {
		fmt.Fprintln(writer)
		for _, s := range resp.Suggestions {
			fmt.Fprintf(writer, "- %s\n", s)
		}
	}
	return nil
}

// writeScoreCSV writes one row per check for a single result.
func writeScoreCSV(w io.Writer, resp *schema.ScoreResponse) error {
	header := []string{"dimension", "check", "points", "max", "status", "notes"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, key := range dimensionOrder(resp) {
			d, ok := resp.Dimensions[key]
			if !ok {
				continue
			}
			for _, c := range d.Checks {
				row := []string{
					d.Label,
					c.Label,
					strconv.Itoa(c.Points),
					strconv.Itoa(c.Max),
					string(c.Status),
					c.Notes,
				}
				if err := csvWriter.Write(row); err != nil {
					return fmt.Errorf("failed to write CSV row: %w", err)
				}
			}
		}
		return nil
	})
}
