package core

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/quartzsec/rubric/schema"
)

// DetectRecordKind inspects column headers and decides whether the rows hold
// control records or evidence task records. A control ID column in any common
// spelling marks the batch as controls; everything else scores as tasks.
func DetectRecordKind(headers []string) schema.RecordKind {
	for _, h := range headers {
		if normalizeKey(h) == "controlId" {
			return schema.ControlKind
		}
	}
	return schema.EvidenceTaskKind
}

// normalizeKey converts a column header to lowerCamel form so that
// "Control ID", "control_id" and "controlId" all address the same field.
func normalizeKey(key string) string {
	var b strings.Builder
	upperNext := false
	for i, r := range strings.ToLower(key) {
		switch {
		case r == ' ' || r == '_' || r == '-':
			upperNext = true
		case upperNext:
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		case i == 0:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func normalizeRow(row map[string]string) map[string]string {
	normalized := make(map[string]string, len(row))
	for k, v := range row {
		normalized[normalizeKey(k)] = v
	}
	return normalized
}

func firstValue(row map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := row[k]; v != "" {
			return v
		}
	}
	return ""
}

func controlFromRow(row map[string]string) schema.ControlInput {
	return schema.ControlInput{
		ID:          firstValue(row, "controlId", "id"),
		Name:        firstValue(row, "controlName", "name", "title"),
		Description: firstValue(row, "description", "controlDescription"),
		Guidance:    firstValue(row, "guidance"),
	}
}

func evidenceTaskFromRow(row map[string]string) schema.EvidenceTaskInput {
	return schema.EvidenceTaskInput{
		WhatToCollect: firstValue(row, "whatToCollect"),
		HowToCollect:  firstValue(row, "howToCollect"),
	}
}

func rowID(row map[string]string, index int) string {
	if id := firstValue(row, "id", "controlId", "etId"); id != "" {
		return id
	}
	return fmt.Sprintf("item-%d", index+1)
}

// Scoring entry points behind vars so tests can inject a failing pipeline.
var (
	scoreControlFn      = ScoreControl
	scoreEvidenceTaskFn = ScoreEvidenceTask
)

// scoreRow isolates a single row so that a panic in a check function fails
// that row instead of the whole batch.
func scoreRow(row map[string]string, kind schema.RecordKind, r *schema.Rubric) (result *schema.ScoreResponse, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			err = fmt.Errorf("scoring failed: %v", rec)
		}
	}()

	var resp schema.ScoreResponse
	switch kind {
	case schema.ControlKind:
		resp = scoreControlFn(controlFromRow(row), r)
	default:
		resp = scoreEvidenceTaskFn(evidenceTaskFromRow(row), r)
	}
	return &resp, nil
}

// ScoreBatch scores every row sequentially and reports per-row outcomes plus
// a summary. Row errors never abort the batch; the average covers successful
// rows only. onProgress, when non-nil, fires after each row.
func ScoreBatch(rows []map[string]string, kind schema.RecordKind, r *schema.Rubric, onProgress func(current, total int)) schema.BatchResult {
	if r == nil {
		r = schema.DefaultRubric()
	}

	items := make([]schema.BatchItem, 0, len(rows))
	errors := 0
	totalScore := 0

	for i, raw := range rows {
		row := normalizeRow(raw)
		item := schema.BatchItem{
			ID:   rowID(row, i),
			Kind: kind,
		}

		result, err := scoreRow(row, kind, r)
		if err != nil {
			item.Status = schema.BatchError
			item.Error = err.Error()
			errors++
		} else {
			item.Status = schema.BatchSuccess
			item.Score = result.Total.Score
			item.Result = result
			totalScore += result.Total.Score
		}
		items = append(items, item)

		if onProgress != nil {
			onProgress(i+1, len(rows))
		}
	}

	successes := len(rows) - errors
	avg := 0.0
	if successes > 0 {
		avg = float64(totalScore) / float64(successes)
	}

	return schema.BatchResult{
		Items: items,
		Summary: schema.BatchSummary{
			Total:     len(rows),
			Processed: len(rows),
			Errors:    errors,
			AvgScore:  avg,
		},
	}
}
