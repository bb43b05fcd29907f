package core

import (
	"fmt"

	"github.com/quartzsec/rubric/schema"
)

// evalNameConcise keeps control names short enough to scan in a register.
func evalNameConcise(name string) schema.CheckResult {
	const (
		maxPts     = 25
		verbosePts = 15
		maxWords   = 12
		warnFloor  = 15
	)
	words := wordCount(name)
	points := maxPts
	var violations []string
	switch {
	case words == 0:
		points = 0
		violations = append(violations, "Name cannot be empty")
	case words > maxWords:
		points = verbosePts
		violations = append(violations, fmt.Sprintf("Too verbose (%d words). Keep under %d words.", words, maxWords))
	}

	status := schema.StatusFail
	if points == maxPts {
		status = schema.StatusPass
	} else if points >= warnFloor {
		status = schema.StatusWarn
	}
	return checkResult("name.concise", fmt.Sprintf("Concise (≤%d words)", maxWords), points, maxPts, status, violations)
}

// evalNameActionOriented deducts for names that lack action-oriented language
// or lean on vague filler terms.
func evalNameActionOriented(name string) schema.CheckResult {
	const (
		maxPts         = 25
		noActionDeduct = 8
		vagueDeduct    = 5
		warnFloor      = 18
	)
	points := maxPts
	var violations []string
	if !reActionWords.MatchString(name) {
		points -= noActionDeduct
		violations = append(violations, "Use action-oriented or specific language (e.g., 'Protection of...', 'Access Review Process')")
	}
	if reVagueNameTerms.MatchString(name) {
		points -= vagueDeduct
		violations = append(violations, "Avoid vague terms. Be specific about what the control addresses.")
	}

	status := schema.StatusFail
	if points == maxPts {
		status = schema.StatusPass
	} else if points >= warnFloor {
		status = schema.StatusWarn
	}
	return checkResult("name.action_oriented", "Action-oriented or specific language", points, maxPts, status, violations)
}

// evalNamePurposeClarity flags names too short or too generic to stand alone.
func evalNamePurposeClarity(name string) schema.CheckResult {
	const (
		maxPts       = 25
		shortDeduct  = 10
		genericDeduct = 10
		warnFloor    = 18
	)
	points := maxPts
	var violations []string
	if wordCount(name) < 2 {
		points -= shortDeduct
		violations = append(violations, "Name too short. Add context about the control's purpose.")
	}
	if reGenericName.MatchString(name) {
		points -= genericDeduct
		violations = append(violations, "Name too generic. Specify what aspect is being controlled.")
	}

	status := schema.StatusFail
	if points == maxPts {
		status = schema.StatusPass
	} else if points >= warnFloor {
		status = schema.StatusWarn
	}
	return checkResult("name.purpose_clarity", "Purpose clarity", points, maxPts, status, violations)
}

// evalNameRoleNeutral flags role or department references in the name.
func evalNameRoleNeutral(name string) schema.CheckResult {
	const (
		maxPts  = 25
		rolePts = 15
	)
	if reRoleSpecific.MatchString(name) {
		return checkResult("name.role_neutral", "Role-neutral", rolePts, maxPts, schema.StatusWarn,
			[]string{"Avoid role-specific references in the name to ensure applicability across organizational structures"})
	}
	return checkResult("name.role_neutral", "Role-neutral", maxPts, maxPts, schema.StatusPass, nil)
}
