package core

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/quartzsec/rubric/schema"
)

// Guidance step count bounds.
const (
	guidanceStepsMin = 2
	guidanceStepsMax = 8
)

// preambleOf returns the guidance text before the first list marker line, or
// the first 400 characters when no list follows.
func preambleOf(guidance string) string {
	if loc := reListAfterNewline.FindStringIndex(guidance); loc != nil {
		return strings.TrimSpace(guidance[:loc[0]])
	}
	return strings.TrimSpace(truncateRunes(guidance, 400))
}

// evalGuidancePreamble requires 2-3 sentences of context before the step
// list: what the control achieves and why it matters. Guidance that opens
// directly with a list or a directive verb has no preamble at all and scores
// zero.
func evalGuidancePreamble(guidance string) schema.CheckResult {
	const (
		maxPts       = 30
		briefDed     = 12
		objectiveDed = 10
		rationaleDed = 8
		minWords     = 15
		warnFloor    = 20
	)
	label := "Preamble (what + why)"

	lines := nonEmptyLines(guidance)
	if len(lines) == 0 {
		res := checkResult("guid.preamble", label, 0, maxPts, schema.StatusFail,
			[]string{"Add guidance with a preamble explaining objective and rationale"})
		res.Notes = "Guidance is empty"
		return res
	}

	firstLine := lines[0]
	if reListLineStart.MatchString(firstLine) || reGuidDirectiveStart.MatchString(firstLine) {
		return checkResult("guid.preamble", label, 0, maxPts, schema.StatusFail,
			[]string{"No preamble found. Begin with 2-3 sentences explaining what this control achieves and why it matters before listing steps."})
	}

	preamble := preambleOf(guidance)
	points := maxPts
	var violations []string
	if words := wordCount(preamble); words < minWords {
		points -= briefDed
		violations = append(violations, fmt.Sprintf("Preamble too brief (%d words). Provide at least 2-3 sentences (%d+ words) explaining the control's purpose.", words, minWords))
	}
	if !reObjectiveLanguage.MatchString(preamble) {
		points -= objectiveDed
		violations = append(violations, "Preamble must state the objective (what this control achieves)")
	}
	if !reRationaleLanguage.MatchString(preamble) {
		points -= rationaleDed
		violations = append(violations, "Preamble must explain rationale (why this control matters)")
	}

	status := schema.StatusFail
	if points == maxPts {
		status = schema.StatusPass
	} else if points >= warnFloor {
		status = schema.StatusWarn
	}
	return checkResult("guid.preamble", label, points, maxPts, status, violations)
}

// evalGuidanceStructuredSteps wants a list of actionable steps within bounds.
func evalGuidanceStructuredSteps(guidance string) schema.CheckResult {
	const (
		maxPts        = 30
		unformattedDed = 15
		tooFewDed     = 10
		tooManyDed    = 8
		warnFloor     = 18
	)
	steps := extractSteps(guidance)
	points := maxPts
	var violations []string
	if !looksStructured(guidance) {
		points -= unformattedDed
		violations = append(violations, "Format steps as a numbered or bulleted list (e.g., 1. Step one; 2. Step two)")
	}
	switch {
	case len(steps) < guidanceStepsMin:
		points -= tooFewDed
		violations = append(violations, fmt.Sprintf("Too few steps (%d). Provide %d-%d actionable steps.", len(steps), guidanceStepsMin, guidanceStepsMax))
	case len(steps) > guidanceStepsMax:
		points -= tooManyDed
		violations = append(violations, fmt.Sprintf("Too many steps (%d). Consolidate to %d-%d key steps.", len(steps), guidanceStepsMin, guidanceStepsMax))
	}

	status := schema.StatusFail
	if points == maxPts {
		status = schema.StatusPass
	} else if points >= warnFloor {
		status = schema.StatusWarn
	}
	return checkResult("guid.structured_steps", fmt.Sprintf("Structured steps (%d-%d)", guidanceStepsMin, guidanceStepsMax), points, maxPts, status, violations)
}

// stepIsActionable checks whether a step opens with an imperative: a
// capitalized word of three or more characters that is not a modal or article.
func stepIsActionable(step string) bool {
	stepText := strings.TrimSpace(reStepMarkerPrefix.ReplaceAllString(step, ""))
	fields := strings.Fields(stepText)
	if len(fields) == 0 {
		return false
	}
	first := fields[0]
	return reCapitalizedWord.MatchString(first) && !reModalOrArticleWord.MatchString(first) && len(first) >= 3
}

// evalGuidanceActionable scores the ratio of steps that begin with an action
// verb. With fewer than two steps it falls back to overall action-verb
// density.
func evalGuidanceActionable(guidance string) schema.CheckResult {
	const (
		maxPts    = 20
		fewVerbsPts = 10
		warnFloor = 14
	)
	label := "Steps are actionable"

	steps := extractSteps(guidance)
	if len(steps) >= 2 {
		actionable := 0
		for _, step := range steps {
			if stepIsActionable(step) {
				actionable++
			}
		}
		ratio := float64(actionable) / float64(len(steps))
		points := int(math.Round(maxPts * ratio))
		var violations []string
		if ratio < 1.0 {
			violations = append(violations, fmt.Sprintf("%d step(s) don't start with action verbs. Begin with: implement, configure, review, monitor, etc.", len(steps)-actionable))
		}

		status := schema.StatusFail
		if points == maxPts {
			status = schema.StatusPass
		} else if points >= warnFloor {
			status = schema.StatusWarn
		}
		return checkResult("guid.actionable", label, points, maxPts, status, violations)
	}

	verbCount := len(reGuidActionVerbs.FindAllString(guidance, -1))
	points := maxPts
	var violations []string
	switch {
	case verbCount == 0:
		points = 0
		violations = append(violations, "No action verbs found. Use actionable language (implement, configure, review, monitor, etc.)")
	case verbCount < 2:
		points = fewVerbsPts
		violations = append(violations, "Too few actionable instructions. Provide at least 2-3 action-oriented steps.")
	}

	status := schema.StatusFail
	if points == maxPts {
		status = schema.StatusPass
	} else if points >= warnFloor {
		status = schema.StatusWarn
	}
	return checkResult("guid.actionable", label, points, maxPts, status, violations)
}

// evalGuidancePresentActive wants imperative, present-tense, active steps.
func evalGuidancePresentActive(guidance string) schema.CheckResult {
	const (
		maxPts       = 20
		noImperDed   = 10
		pastDed      = 8
		passiveDed   = 7
		warnFloor    = 12
	)
	points := maxPts
	var violations []string
	if !rePresentImperative.MatchString(guidance) {
		points -= noImperDed
		violations = append(violations, "Use present tense action verbs (e.g., 'Configure...', 'Review...', 'Monitor...')")
	}
	if rePastTenseVerbs.MatchString(guidance) {
		points -= pastDed
		violations = append(violations, "Avoid past tense (e.g., 'configured'). Use present tense imperatives (e.g., 'Configure')")
	}
	if reGuidPassiveSteps.MatchString(guidance) {
		points -= passiveDed
		violations = append(violations, "Use active voice for steps (e.g., 'Review access logs' not 'Access logs are reviewed')")
	}

	status := schema.StatusFail
	if points == maxPts {
		status = schema.StatusPass
	} else if points >= warnFloor {
		status = schema.StatusWarn
	}
	return checkResult("guid.present_active", "Present tense + active voice", points, maxPts, status, violations)
}

// evalGuidanceTechAgnostic flags named vendors or products; guidance should
// survive a tooling change.
func evalGuidanceTechAgnostic(guidance string) schema.CheckResult {
	const (
		maxPts    = 20
		vendorPts = 10
	)
	matches := reVendorNames.FindAllString(guidance, -1)
	if len(matches) == 0 {
		return checkResult("guid.tech_agnostic", "Technology-agnostic", maxPts, maxPts, schema.StatusPass, nil)
	}

	seen := make(map[string]struct{})
	var unique []string
	for _, m := range matches {
		lower := strings.ToLower(m)
		if _, ok := seen[lower]; !ok {
			seen[lower] = struct{}{}
			unique = append(unique, lower)
		}
	}
	sort.Strings(unique)
	return checkResult("guid.tech_agnostic", "Technology-agnostic", vendorPts, maxPts, schema.StatusWarn,
		[]string{fmt.Sprintf("Remove vendor/tool names (found %d: %q). Use generic terms (e.g., \"identity management system\" not \"Okta\")", len(matches), strings.Join(unique, ", "))})
}

// evalGuidanceRoleNeutral flags role or department references in guidance.
func evalGuidanceRoleNeutral(guidance string) schema.CheckResult {
	const (
		maxPts  = 20
		rolePts = 10
	)
	if reRoleSpecific.MatchString(guidance) {
		return checkResult("guid.role_neutral", "Role-neutral", rolePts, maxPts, schema.StatusWarn,
			[]string{"Avoid role-specific references (e.g., 'security team'). Keep guidance applicable across organizational structures."})
	}
	return checkResult("guid.role_neutral", "Role-neutral", maxPts, maxPts, schema.StatusPass, nil)
}

// evalGuidanceNoJargon flags corporate jargon in favor of plain language.
func evalGuidanceNoJargon(guidance string) schema.CheckResult {
	const (
		maxPts    = 20
		jargonPts = 12
	)
	if m := reJargonWords.FindString(guidance); m != "" {
		return checkResult("guid.no_jargon", "Plain language (no jargon)", jargonPts, maxPts, schema.StatusWarn,
			[]string{fmt.Sprintf("Replace jargon %q with plain language", m)})
	}
	return checkResult("guid.no_jargon", "Plain language (no jargon)", maxPts, maxPts, schema.StatusPass, nil)
}
