package core

import (
	"fmt"
	"math"
	"strings"

	"github.com/quartzsec/rubric/schema"
)

// aggregateDimension normalizes a group of checks to a 0-100 dimension score.
// Bonus checks are excluded from the denominator and added after
// normalization, so a dimension can exceed its nominal base before the final
// clamp at 100.
func aggregateDimension(key, label string, weight float64, checks []schema.CheckResult) schema.DimensionResult {
	var denom, base, bonus int
	for _, c := range checks {
		if c.Bonus {
			bonus += c.Points
		} else {
			denom += c.Max
			base += c.Points
		}
	}
	if denom == 0 {
		denom = 1
	}

	normalized := float64(base) / float64(denom) * 100
	score := int(math.Round(normalized)) + bonus
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return schema.DimensionResult{
		Key:    key,
		Label:  label,
		Score:  score,
		Max:    100,
		Weight: weight,
		Checks: checks,
	}
}

// weightedTotal combines dimension scores into one 0-100 total.
func weightedTotal(dims []schema.DimensionResult) int {
	var sum float64
	for _, d := range dims {
		sum += float64(d.Score) * d.Weight
	}
	return int(math.Round(sum))
}

// hasCriticalFailure reports whether any check across all dimensions failed
// with a max at or above the gate cutoff. One such failure forces the verdict
// to fail regardless of the numeric total.
func hasCriticalFailure(dims []schema.DimensionResult, cutoff int) bool {
	for _, d := range dims {
		for _, c := range d.Checks {
			if c.Status == schema.StatusFail && c.Max >= cutoff {
				return true
			}
		}
	}
	return false
}

// resolveVerdict maps a total score to a verdict using the pipeline's
// thresholds. Gated records always fail.
func resolveVerdict(total int, gated bool, p *schema.PipelineRubric) schema.Verdict {
	switch {
	case gated:
		return schema.VerdictFail
	case total >= p.PassThreshold:
		return schema.VerdictPass
	case total < p.FailThreshold:
		return schema.VerdictFail
	default:
		return schema.VerdictPartial
	}
}

// buildMessages flattens FAIL and WARN check notes into display messages,
// capped at limit. Dimension order is fixed by the caller.
func buildMessages(dims []schema.DimensionResult, limit int) []schema.Message {
	msgs := make([]schema.Message, 0, limit)
	for _, d := range dims {
		for _, c := range d.Checks {
			if c.Notes == "" {
				continue
			}
			if c.Status == schema.StatusFail || c.Status == schema.StatusWarn {
				msgs = append(msgs, schema.Message{Level: c.Status, Text: c.Notes})
			}
		}
	}
	if len(msgs) > limit {
		msgs = msgs[:limit]
	}
	return msgs
}

// buildSuggestions flattens all violations across dimensions, deduplicated by
// exact string equality in first-seen order, capped at limit.
func buildSuggestions(dims []schema.DimensionResult, limit int) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, limit)
	for _, d := range dims {
		for _, c := range d.Checks {
			for _, v := range c.Violations {
				if v == "" {
					continue
				}
				if _, ok := seen[v]; ok {
					continue
				}
				seen[v] = struct{}{}
				out = append(out, v)
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// formulaTokens maps dimension keys to their short names in the human-readable
// weight formula.
var formulaTokens = map[string]string{
	schema.DimIDQuality:          "ID",
	schema.DimNameQuality:        "NAME",
	schema.DimDescriptionQuality: "DESC",
	schema.DimGuidanceQuality:    "GUIDANCE",
	schema.DimWhat:               "WHAT",
	schema.DimHow:                "HOW",
	schema.DimCohesion:           "COH",
	schema.DimClarity:            "CLARITY",
}

// formulaFor renders the pipeline's weight expression, e.g.
// "TOTAL = 0.15*ID + 0.15*NAME + 0.30*DESC + 0.40*GUIDANCE".
func formulaFor(p *schema.PipelineRubric) string {
	parts := make([]string, 0, len(p.DimensionOrder))
	for _, key := range p.DimensionOrder {
		token := formulaTokens[key]
		if token == "" {
			token = strings.ToUpper(key)
		}
		parts = append(parts, fmt.Sprintf("%.2f*%s", p.Weights[key], token))
	}
	return "TOTAL = " + strings.Join(parts, " + ")
}

// assembleResponse derives the total, verdict, messages and suggestions for a
// finished pipeline run. dims must be in the pipeline's fixed dimension order.
func assembleResponse(p *schema.PipelineRubric, r *schema.Rubric, dims []schema.DimensionResult) schema.ScoreResponse {
	total := weightedTotal(dims)
	gated := hasCriticalFailure(dims, r.GateMaxCutoff)

	weights := make(map[string]float64, len(dims))
	dimensions := make(map[string]schema.DimensionResult, len(dims))
	for _, d := range dims {
		weights[d.Key] = d.Weight
		dimensions[d.Key] = d
	}

	return schema.ScoreResponse{
		Version: p.Version,
		Verdict: resolveVerdict(total, gated, p),
		Total: schema.Total{
			Score:     total,
			Max:       100,
			Formula:   formulaFor(p),
			Weights:   weights,
			GatedFail: gated,
		},
		Dimensions:  dimensions,
		Messages:    buildMessages(dims, r.MessageCap),
		Suggestions: buildSuggestions(dims, r.SuggestionCap),
	}
}
