// Package core implements the rule-based scoring engine for governance
// artifacts: deterministic pattern checks aggregated into weighted dimension
// scores, a critical-failure gate, and a verdict. Scoring is a pure,
// synchronous function of its inputs; the engine holds no state between calls
// and is safe for concurrent use.
package core

import (
	"fmt"
	"strings"

	"github.com/quartzsec/rubric/schema"
)

// ScoreControl runs the full control pipeline against one record.
// A nil rubric scores with the canonical defaults.
func ScoreControl(in schema.ControlInput, r *schema.Rubric) schema.ScoreResponse {
	if r == nil {
		r = schema.DefaultRubric()
	}
	p := &r.Control

	id := strings.TrimSpace(in.ID)
	name := strings.TrimSpace(in.Name)
	desc := strings.TrimSpace(in.Description)
	guid := strings.TrimSpace(in.Guidance)

	dims := []schema.DimensionResult{
		aggregateDimension(schema.DimIDQuality, p.Label(schema.DimIDQuality), p.Weights[schema.DimIDQuality], []schema.CheckResult{
			evalIDStructured(id),
			evalIDLength(id),
			evalIDUniqueness(id),
		}),
		aggregateDimension(schema.DimNameQuality, p.Label(schema.DimNameQuality), p.Weights[schema.DimNameQuality], []schema.CheckResult{
			evalNameConcise(name),
			evalNameActionOriented(name),
			evalNamePurposeClarity(name),
			evalNameRoleNeutral(name),
		}),
		aggregateDimension(schema.DimDescriptionQuality, p.Label(schema.DimDescriptionQuality), p.Weights[schema.DimDescriptionQuality], []schema.CheckResult{
			evalDescPresentTense(desc),
			evalDescPassiveVoice(desc),
			evalDescNoModalVerbs(desc),
			evalDescSingleObjective(desc),
			evalDescNoSteps(desc),
			evalDescWordCount(desc),
			evalDescStandaloneClarity(desc),
		}),
		aggregateDimension(schema.DimGuidanceQuality, p.Label(schema.DimGuidanceQuality), p.Weights[schema.DimGuidanceQuality], []schema.CheckResult{
			evalGuidancePreamble(guid),
			evalGuidanceStructuredSteps(guid),
			evalGuidanceActionable(guid),
			evalGuidancePresentActive(guid),
			evalGuidanceTechAgnostic(guid),
			evalGuidanceRoleNeutral(guid),
			evalGuidanceNoJargon(guid),
		}),
	}

	return assembleResponse(p, r, dims)
}

// checkResult assembles a CheckResult from deduplicated violations, clamping
// points to [0, max]. Notes carries the first violation.
func checkResult(id, label string, points, max int, status schema.CheckStatus, violations []string) schema.CheckResult {
	if points < 0 {
		points = 0
	}
	if points > max {
		points = max
	}
	v := dedupe(violations)
	notes := ""
	if len(v) > 0 {
		notes = v[0]
	}
	return schema.CheckResult{
		ID:         id,
		Label:      label,
		Points:     points,
		Max:        max,
		Status:     status,
		Notes:      notes,
		Violations: v,
	}
}

// evalIDStructured rewards IDs in a structured prefix.section.number format.
func evalIDStructured(id string) schema.CheckResult {
	const (
		maxPts     = 20
		partialPts = 12
	)
	if strings.Contains(id, ".") {
		return checkResult("id.structured", "Structured format (prefix.section.number)", maxPts, maxPts, schema.StatusPass, nil)
	}
	return checkResult("id.structured", "Structured format (prefix.section.number)", partialPts, maxPts, schema.StatusWarn,
		[]string{"Use structured format with separator (e.g., GDPR.1.1 or NIST.AC.1)"})
}

// evalIDLength bounds the ID to a displayable length. Empty IDs score zero.
func evalIDLength(id string) schema.CheckResult {
	const (
		maxPts      = 15
		tooLongPts  = 8
		maxIDLength = 24
		warnFloor   = 10
	)
	length := len(id)
	points := maxPts
	var violations []string
	switch {
	case length == 0:
		points = 0
		violations = append(violations, "ID cannot be empty")
	case length > maxIDLength:
		points = tooLongPts
		violations = append(violations, fmt.Sprintf("ID too long (%d chars). Keep under %d characters.", length, maxIDLength))
	}

	status := schema.StatusFail
	if points == maxPts {
		status = schema.StatusPass
	} else if points >= warnFloor {
		status = schema.StatusWarn
	}
	return checkResult("id.length", "Appropriate length", points, maxPts, status, violations)
}

// evalIDUniqueness is a stub: true uniqueness needs a registry lookup, so a
// non-empty ID gets full points with an explanatory note.
func evalIDUniqueness(id string) schema.CheckResult {
	const maxPts = 15
	res := schema.CheckResult{
		ID:    "id.uniqueness",
		Label: "Uniqueness (assumed within framework)",
		Max:   maxPts,
	}
	if strings.TrimSpace(id) != "" {
		res.Points = maxPts
		res.Status = schema.StatusPass
		res.Notes = "Uniqueness validation requires registry check"
	} else {
		res.Status = schema.StatusFail
		res.Notes = "ID is empty"
	}
	return res
}
