package core

import (
	"fmt"
	"strings"

	"github.com/quartzsec/rubric/schema"
)

// conceptConflicts are concept pairs that cannot both be true of the same
// evidence: the first term appearing in "what" with the second in "how"
// signals the two fields describe different things.
var conceptConflicts = []struct {
	what, how   string
	explanation string
}{
	{"centrally-administered", "shared", "'centrally-administered' vs 'shared' are different password management approaches"},
	{"individual", "shared", "'individual' vs 'shared' are opposite concepts"},
	{"anonymization", "identified", "'anonymization' vs 'identified' are opposite concepts"},
}

// timesLookCompatible compares the first time token of each text. Missing
// tokens on either side count as compatible.
func timesLookCompatible(a, b string) bool {
	ma := reTimeToken.FindString(a)
	mb := reTimeToken.FindString(b)
	if ma == "" || mb == "" {
		return true
	}
	return strings.EqualFold(ma, mb)
}

// conceptsOf collects the management and identity concept words of a text,
// lowercased and deduped.
func conceptsOf(text string) []string {
	lower := strings.ToLower(text)
	var concepts []string
	concepts = append(concepts, reAdminConcepts.FindAllString(lower, -1)...)
	concepts = append(concepts, reIdentityConcepts.FindAllString(lower, -1)...)
	return dedupe(concepts)
}

func anyConceptContains(concepts []string, needle string) bool {
	for _, c := range concepts {
		if strings.Contains(strings.ToLower(c), needle) {
			return true
		}
	}
	return false
}

// evalWhatHowAlignment verifies that the collection instructions actually
// support the stated outcome: the timeframes agree, the "how" references the
// key concepts of the "what", and no concept pair conflicts.
func evalWhatHowAlignment(what, how string) schema.CheckResult {
	const (
		maxPts      = 50
		timeDed     = 6
		severeDed   = 25
		weakDed     = 15
		conflictDed = 20
		weakRatio   = 0.5
		passFloor   = 45
		warnFloor   = 30
	)
	points := maxPts
	var violations []string

	whatHasTime := reRelativeTime.MatchString(what) || reExplicitDate.MatchString(what)
	howHasTime := reRelativeTime.MatchString(how) || reExplicitDate.MatchString(how)
	if whatHasTime && howHasTime && !timesLookCompatible(what, how) {
		points -= timeDed
		violations = append(violations, "Timeframe in 'What' and 'How' do not match.")
	}

	keyTerms := extractKeyTerms(what)
	if len(keyTerms) > 0 {
		howLower := strings.ToLower(how)
		var unmatched []string
		matched := 0
		for _, term := range keyTerms {
			if termMatches(howLower, term) {
				matched++
			} else {
				unmatched = append(unmatched, term)
			}
		}
		ratio := float64(matched) / float64(len(keyTerms))
		if len(unmatched) > 2 {
			unmatched = unmatched[:2]
		}
		missing := strings.Join(unmatched, ", ")
		if ratio == 0 {
			points -= severeDed
			violations = append(violations, fmt.Sprintf("Severe mismatch: 'How' doesn't reference any key concepts from 'What'. Expected references to: %s.", missing))
		} else if ratio < weakRatio {
			points -= weakDed
			violations = append(violations, fmt.Sprintf("Weak alignment: 'How' only partially references 'What' concepts. Consider adding context for: %s.", missing))
		}
	}

	whatConcepts := conceptsOf(what)
	howConcepts := conceptsOf(how)
	for _, conflict := range conceptConflicts {
		if anyConceptContains(whatConcepts, conflict.what) && anyConceptContains(howConcepts, conflict.how) {
			points -= conflictDed
			violations = append(violations, fmt.Sprintf("Conceptual conflict: %s.", conflict.explanation))
			break
		}
	}

	status := schema.StatusFail
	if points >= passFloor {
		status = schema.StatusPass
	} else if points >= warnFloor {
		status = schema.StatusWarn
	}
	return checkResult("coh.what_how_alignment", "What ↔ How alignment (artifacts support the outcome)", points, maxPts, status, violations)
}

// evalSystemTimeApprovalConsistency gently nudges collection instructions
// toward naming the source system, a timeframe, and approval artifacts. The
// deductions are small; these are hints, not requirements.
func evalSystemTimeApprovalConsistency(how string) schema.CheckResult {
	const (
		maxPts      = 50
		systemDed   = 3
		timeDed     = 4
		approvalDed = 1
		passFloor   = 46
		warnFloor   = 40
	)
	points := maxPts
	var violations []string
	if !reSystemRef.MatchString(how) {
		points -= systemDed
		violations = append(violations, "Consider referencing the system/application/tool where applicable (e.g., 'password management system', 'firewall logs').")
	}
	hasTimeRef := reRelativeTime.MatchString(how) || reExplicitDate.MatchString(how) || reCurrencyIndicators.MatchString(how)
	if !hasTimeRef {
		// A cadence phrase counts unless it only appears inside a framework
		// clause reference.
		if DetectCadence(how) != "" && !CadenceSuppressed(how) {
			hasTimeRef = true
		}
	}
	if !hasTimeRef {
		points -= timeDed
		violations = append(violations, "Add timeframe, currency indicator, or date for verifiability (e.g., 'last 30 days', 'current settings', 'dated 2025-03-01').")
	}
	if !reApprovalArtifact.MatchString(how) {
		points -= approvalDed
		violations = append(violations, "Optional: Consider including approval/sign-off artifacts if relevant (e.g., 'approval records', 'signed attestation').")
	}

	status := schema.StatusFail
	if points >= passFloor {
		status = schema.StatusPass
	} else if points >= warnFloor {
		status = schema.StatusWarn
	}
	return checkResult("coh.owner_system_time_overlap", "System/Time/Approval consistency", points, maxPts, status, violations)
}
