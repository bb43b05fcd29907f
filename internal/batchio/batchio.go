// Package batchio reads batch input files into rows for scoring.
package batchio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ReadRows parses CSV content into a header slice and one string map per
// record, keyed by the original header text. Short rows are padded so a
// ragged trailing column never drops a field.
func ReadRows(r io.Reader) ([]string, []map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("no data found in file")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header row: %w", err)
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read row %d: %w", len(rows)+2, err)
		}

		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = record[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("no data found in file")
	}
	return headers, rows, nil
}

// ReadFile opens a CSV file and parses it with ReadRows.
func ReadFile(path string) ([]string, []map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return ReadRows(file)
}
