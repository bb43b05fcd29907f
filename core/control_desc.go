package core

import (
	"fmt"
	"regexp"

	"github.com/quartzsec/rubric/schema"
)

// evalDescPresentTense wants requirements stated as always applicable.
func evalDescPresentTense(desc string) schema.CheckResult {
	const (
		maxPts        = 25
		noPresentDed  = 10
		futureDed     = 8
		warnFloor     = 15
	)
	points := maxPts
	var violations []string
	if !rePresentTense.MatchString(desc) {
		points -= noPresentDed
		violations = append(violations, "Use present tense to convey the requirement is always applicable (e.g., 'is configured', 'are reviewed')")
	}
	if reFutureTense.MatchString(desc) {
		points -= futureDed
		violations = append(violations, "Avoid future tense ('will be'). Use present tense ('is').")
	}

	status := schema.StatusFail
	if points == maxPts {
		status = schema.StatusPass
	} else if points >= warnFloor {
		status = schema.StatusWarn
	}
	return checkResult("desc.present_tense", "Present tense", points, maxPts, status, violations)
}

// evalDescPassiveVoice prefers passive constructions: they state the condition
// without naming who performs it.
func evalDescPassiveVoice(desc string) schema.CheckResult {
	const (
		maxPts       = 25
		noPassiveDed = 8
		directiveDed = 10
		warnFloor    = 15
	)
	points := maxPts
	var violations []string
	if !rePassiveVoice.MatchString(desc) {
		points -= noPassiveDed
		violations = append(violations, "Prefer passive voice for role-neutrality (e.g., 'Data is encrypted' not 'IT encrypts data')")
	}
	if reDirectiveVerbs.MatchString(desc) || reRoleSpecific.MatchString(desc) {
		points -= directiveDed
		violations = append(violations, "Avoid active voice directives. State the condition/outcome, not who performs it.")
	}

	status := schema.StatusFail
	if points == maxPts {
		status = schema.StatusPass
	} else if points >= warnFloor {
		status = schema.StatusWarn
	}
	return checkResult("desc.passive_voice", "Passive voice (role-neutral)", points, maxPts, status, violations)
}

// evalDescNoModalVerbs hard-fails on any modal verb; requirements are stated
// definitively, not aspirationally.
func evalDescNoModalVerbs(desc string) schema.CheckResult {
	const maxPts = 25
	if reModalVerbs.MatchString(desc) {
		return checkResult("desc.no_modal_verbs", "No modal verbs (should/must/shall/ensure)", 0, maxPts, schema.StatusFail,
			[]string{"Remove modal verbs (should/could/may/must/ensure). State the requirement definitively in present tense."})
	}
	return checkResult("desc.no_modal_verbs", "No modal verbs (should/must/shall/ensure)", maxPts, maxPts, schema.StatusPass, nil)
}

// evalDescSingleObjective counts distinct outcome statements and conjunction
// chains rather than raw sentences.
func evalDescSingleObjective(desc string) schema.CheckResult {
	const (
		maxPts          = 20
		outcomesDed     = 10
		andDed          = 5
		orDed           = 5
		maxOutcomes     = 2
		andChainMinimum = 3
		warnFloor       = 12
	)
	outcomes := reOutcomeStatement.FindAllString(desc, -1)
	points := maxPts
	var violations []string
	if len(outcomes) > maxOutcomes {
		points -= outcomesDed
		violations = append(violations, fmt.Sprintf("Multiple outcomes detected (%d different states/results). Focus on one outcome per control.", len(outcomes)))
	}
	if len(reAndWord.FindAllString(desc, -1)) >= andChainMinimum {
		points -= andDed
		violations = append(violations, "Too many 'and' conjunctions. Consider if this is actually multiple controls.")
	}
	if reOrWord.MatchString(desc) {
		points -= orDed
		violations = append(violations, "'Or' clauses suggest ambiguity. Choose one clear objective.")
	}

	status := schema.StatusFail
	if points == maxPts {
		status = schema.StatusPass
	} else if points >= warnFloor {
		status = schema.StatusWarn
	}
	return checkResult("desc.single_objective", "Single objective", points, maxPts, status, violations)
}

// evalDescNoSteps hard-fails when the description embeds implementation
// steps; those belong in guidance.
func evalDescNoSteps(desc string) schema.CheckResult {
	const maxPts = 25
	hasSteps := reListMarkerAnywhere.MatchString(desc) || reImplementationWords.MatchString(desc)
	if hasSteps {
		return checkResult("desc.no_steps", "No implementation steps", 0, maxPts, schema.StatusFail,
			[]string{"Description contains implementation steps. Move steps to Guidance section. Description should only state the outcome/requirement."})
	}
	return checkResult("desc.no_steps", "No implementation steps", maxPts, maxPts, schema.StatusPass, nil)
}

// evalDescWordCount keeps descriptions within readable bounds.
func evalDescWordCount(desc string) schema.CheckResult {
	const (
		maxPts    = 20
		minWords  = 15
		maxWords  = 45
		briefDed  = 10
		verboseDed = 8
		warnFloor = 12
	)
	words := wordCount(desc)
	points := maxPts
	var violations []string
	switch {
	case words < minWords:
		points -= briefDed
		violations = append(violations, fmt.Sprintf("Too brief (%d words). Add clarity. Aim for %d-%d words.", words, minWords, maxWords))
	case words > maxWords:
		points -= verboseDed
		violations = append(violations, fmt.Sprintf("Too verbose (%d words). Be concise. Aim for %d-%d words.", words, minWords, maxWords))
	}

	status := schema.StatusFail
	if points == maxPts {
		status = schema.StatusPass
	} else if points >= warnFloor {
		status = schema.StatusWarn
	}
	return checkResult("desc.word_count", fmt.Sprintf("Word count (%d-%d)", minWords, maxWords), points, maxPts, status, violations)
}

// evalDescStandaloneClarity flags vague qualifiers and acronyms that are not
// expanded anywhere nearby, in either direction.
func evalDescStandaloneClarity(desc string) schema.CheckResult {
	const (
		maxPts     = 20
		vagueDed   = 8
		acronymDed = 5
		warnFloor  = 12
	)
	points := maxPts
	var violations []string
	if reVagueQualifiers.MatchString(desc) {
		points -= vagueDed
		violations = append(violations, "Avoid vague qualifiers (appropriate/adequate). Be specific about requirements.")
	}
	if acronym := firstUnexpandedAcronym(desc); acronym != "" {
		points -= acronymDed
		violations = append(violations, fmt.Sprintf("Expand acronym on first use: %q → \"Full Term (%s)\"", acronym, acronym))
	}

	status := schema.StatusFail
	if points == maxPts {
		status = schema.StatusPass
	} else if points >= warnFloor {
		status = schema.StatusWarn
	}
	return checkResult("desc.standalone_clarity", "Standalone clarity", points, maxPts, status, violations)
}

// firstUnexpandedAcronym returns the first all-caps acronym that is neither
// followed by a parenthesized expansion ("DPO (Data Protection Officer)") nor
// itself parenthesized after the expansion ("Data Protection Officer (DPO)").
func firstUnexpandedAcronym(text string) string {
	for _, acronym := range reAcronym.FindAllString(text, -1) {
		quoted := regexp.QuoteMeta(acronym)
		expandedAfter := regexp.MustCompile(`\b` + quoted + `\b\s*\([^)]+\)`)
		expandedBefore := regexp.MustCompile(`\([^)]*\b` + quoted + `\b[^)]*\)`)
		if !expandedAfter.MatchString(text) && !expandedBefore.MatchString(text) {
			return acronym
		}
	}
	return ""
}
