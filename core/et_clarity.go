package core

import (
	"fmt"

	"github.com/quartzsec/rubric/schema"
)

// The clarity checks run over both fields joined together; a vague term in
// either field reads just as poorly to a reviewer.

// evalPlainLanguage flags vague qualifiers, slang, and unexpanded acronyms.
func evalPlainLanguage(text string) schema.CheckResult {
	const (
		maxPts     = 35
		vagueDed   = 4
		slangDed   = 2
		acronymDed = 2
		passFloor  = 33
		warnFloor  = 26
	)
	points := maxPts
	var violations []string
	if vague := reVagueWords.FindString(text); vague != "" {
		points -= vagueDed
		violations = append(violations, fmt.Sprintf("Replace vague term %q with measurable criteria.", vague))
	}
	if slang := reSlangWords.FindString(text); slang != "" {
		points -= slangDed
		violations = append(violations, fmt.Sprintf("Use \"applications\" instead of slang %q.", slang))
	}
	if reAcronymsNeedExpansion.MatchString(text) {
		points -= acronymDed
		violations = append(violations, `Spell out first mention (e.g., "Disaster Recovery (DR)").`)
	}

	status := schema.StatusFail
	if points >= passFloor {
		status = schema.StatusPass
	} else if points >= warnFloor {
		status = schema.StatusWarn
	}
	return checkResult("clarity.plain_language", "Plain language & no vague terms", points, maxPts, status, violations)
}

// evalNoJargon flags corporate filler words.
func evalNoJargon(text string) schema.CheckResult {
	const (
		maxPts   = 30
		jargPts  = 27
	)
	if jarg := reEtJargonWords.FindString(text); jarg != "" {
		return checkResult("clarity.no_jargon", "No unnecessary jargon", jargPts, maxPts, schema.StatusWarn,
			[]string{fmt.Sprintf("Replace jargon %q with plain wording.", jarg)})
	}
	return checkResult("clarity.no_jargon", "No unnecessary jargon", maxPts, maxPts, schema.StatusPass, nil)
}

// evalGrammarReadability flags run-on sentences of thirty words or more.
func evalGrammarReadability(text string) schema.CheckResult {
	const (
		maxPts  = 35
		longPts = 32
	)
	if reLongSentence.MatchString(text) {
		return checkResult("clarity.grammar_style", "Grammar / readability", longPts, maxPts, schema.StatusWarn,
			[]string{"Split long sentence(s) to improve readability."})
	}
	return checkResult("clarity.grammar_style", "Grammar / readability", maxPts, maxPts, schema.StatusPass, nil)
}
