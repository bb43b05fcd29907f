package core

import (
	"fmt"
	"strings"

	"github.com/quartzsec/rubric/schema"
)

// evalWhatSingleFocus penalizes multi-sentence, chained, or broad-scope
// "what" statements; one task verifies one outcome.
func evalWhatSingleFocus(what string) schema.CheckResult {
	const (
		maxPts       = 15
		sentenceDed  = 3
		chainDed     = 2
		broadDed     = 6
		passFloor    = 14
		warnFloor    = 11
	)
	points := maxPts
	var violations []string
	if sentenceCount(what) > 1 {
		points -= sentenceDed
		violations = append(violations, "Multiple sentences reduce single-focus clarity.")
	}
	if reHeavyChain.MatchString(what) {
		points -= chainDed
		violations = append(violations, "Chained conjunctions reduce single-focus clarity.")
	}
	if reBroadScope.MatchString(what) {
		points -= broadDed
		violations = append(violations, "Scope is too broad for a single task (e.g., 'all applications').")
	}

	status := schema.StatusFail
	if points >= passFloor {
		status = schema.StatusPass
	} else if points >= warnFloor {
		status = schema.StatusWarn
	}
	if points == maxPts {
		violations = nil
	}
	return checkResult("what.single_focus", "Single focus", points, maxPts, status, violations)
}

// evalWhatOutcomePhrasing requires the standard "Provide evidence..." prefix
// and a measurable outcome rather than a directive or an "ensure" clause.
func evalWhatOutcomePhrasing(what string) schema.CheckResult {
	const (
		maxPts      = 25
		outcomeDed  = 5
		ensureDed   = 5
		directiveDed = 5
		acronymDed  = 5
		prefixDed   = 4
		passFloor   = 23
		warnFloor   = 18
	)
	standardPrefix := reStandardPrefix.MatchString(what)

	points := maxPts
	var violations []string
	if !reWhatOutcomeLike.MatchString(what) {
		points -= outcomeDed
		violations = append(violations, "Phrase should be outcome-focused (state/result). Example: 'Access reviews are completed and approved.'")
	}
	if reEnsureWord.MatchString(what) {
		points -= ensureDed
		violations = append(violations, "Avoid 'ensure'—rewrite as a measurable outcome.")
	}
	if !standardPrefix && reWhatDirectiveStart.MatchString(what) {
		points -= directiveDed
		violations = append(violations, "Avoid directives in 'What'. Use a result/state (outcome) wording.")
	}
	if reAcronymsNeedExpansion.MatchString(what) {
		points -= acronymDed
		violations = append(violations, "Undefined acronym used. Spell out first mention (e.g., 'Disaster Recovery (DR)').")
	}
	if !standardPrefix {
		points -= prefixDed
		violations = append(violations, "Start 'What' with 'Provide evidence to show …' or 'Provide evidence that …' per the standard.")
	}

	status := schema.StatusFail
	if points >= passFloor {
		status = schema.StatusPass
	} else if points >= warnFloor {
		status = schema.StatusWarn
	}
	return checkResult("what.outcome_phrasing", "Outcome based phrasing", points, maxPts, status, violations)
}

// evalWhatConcise keeps the outcome statement to one or two short lines.
func evalWhatConcise(what string) schema.CheckResult {
	const (
		maxPts    = 15
		longDed   = 4
		looseDed  = 2
		longLen   = 220
		looseLen  = 160
		passFloor = 14
		warnFloor = 11
	)
	length := len(strings.TrimSpace(what))
	points := maxPts
	var violations []string
	switch {
	case length > longLen:
		points -= longDed
		violations = append(violations, "Too long—aim for ~1-2 short lines.")
	case length > looseLen:
		points -= looseDed
		violations = append(violations, "Could be tighter—remove filler words.")
	}

	status := schema.StatusFail
	if points >= passFloor {
		status = schema.StatusPass
	} else if points >= warnFloor {
		status = schema.StatusWarn
	}
	return checkResult("what.concise", "Concise", points, maxPts, status, violations)
}

// evalWhatNoArtifactLeakage flags artifact demands in the outcome statement;
// artifacts belong in "how to collect". The standard prefix is stripped first
// so its own "provide" does not count as a collection directive.
func evalWhatNoArtifactLeakage(what string) schema.CheckResult {
	const (
		maxPts     = 15
		leakagePts = 10
	)
	text := what
	if reStandardPrefix.MatchString(what) {
		text = reStandardPrefixStrip.ReplaceAllString(what, "")
	}

	directive := reCollectionVerbs.MatchString(text) || reStructureMarker.MatchString(text) || reOneOrMoreOf.MatchString(text)
	if directive && reArtifactNouns.MatchString(text) {
		return checkResult("what.no_artifact_leakage", "Artifact leakage (none)", leakagePts, maxPts, schema.StatusFail,
			[]string{"Move artifacts to 'How to Collect'. 'What' should only state the outcome."})
	}
	return checkResult("what.no_artifact_leakage", "Artifact leakage (none)", maxPts, maxPts, schema.StatusPass, nil)
}

// evalWhatRoleAwareScope flags cross-department scope mixing.
func evalWhatRoleAwareScope(what string) schema.CheckResult {
	const (
		maxPts   = 15
		crossPts = 11
	)
	// 11 of 15 sits below the WARN floor, so cross-department scope is a
	// hard failure and trips the critical gate.
	if reCrossDept.MatchString(what) {
		return checkResult("what.role_aware_scope", "Role-aware scope (no cross-department mixing)", crossPts, maxPts, schema.StatusFail,
			[]string{"Avoid cross-department scope in 'What'. Keep a single role/ownership context."})
	}
	return checkResult("what.role_aware_scope", "Role-aware scope (no cross-department mixing)", maxPts, maxPts, schema.StatusPass, nil)
}

// evalWhatTechAgnostic flags vendor names in the outcome statement.
func evalWhatTechAgnostic(what string) schema.CheckResult {
	const (
		maxPts    = 15
		vendorPts = 12
	)
	if vendor := reEtVendorWords.FindString(what); vendor != "" {
		return checkResult("what.tech_agnostic", "Technology-agnostic", vendorPts, maxPts, schema.StatusWarn,
			[]string{fmt.Sprintf("Names a vendor/tool (%q). Use technology-agnostic phrasing.", vendor)})
	}
	return checkResult("what.tech_agnostic", "Technology-agnostic", maxPts, maxPts, schema.StatusPass, nil)
}
