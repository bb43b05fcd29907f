package core

import (
	"fmt"

	"github.com/quartzsec/rubric/schema"
)

// evalHowTangibleArtifacts is the heavyweight "how" check: collection
// instructions must name tangible artifacts, use collection verbs, and make
// the evidence verifiable. Time-sensitive artifacts need a timeframe or date;
// point-in-time artifacts need a currency indicator, timeframe, or date.
func evalHowTangibleArtifacts(how string) schema.CheckResult {
	const (
		maxPts       = 50
		artifactDed  = 20
		directiveDed = 10
		verifyDed    = 6
		passFloor    = 45
		warnFloor    = 35
	)
	hasArtifacts := reArtifactNouns.MatchString(how) || MatchesAnyArtifact(how, nil)
	hasDirective := reCollectionVerbs.MatchString(how) || reStructureMarker.MatchString(how) || reOneOrMoreOf.MatchString(how)

	hasTimeframe := reRelativeTime.MatchString(how)
	hasDate := reExplicitDate.MatchString(how)
	hasCurrency := reCurrencyIndicators.MatchString(how)

	verifiable := true
	reason := ""
	if reTimeSensitiveArtifacts.MatchString(how) && !hasTimeframe && !hasDate {
		verifiable = false
		reason = "time-sensitive artifacts (logs, reports, tickets, records, exports) need timeframes (e.g., 'last 30 days', 'for the audit period') or explicit dates"
	}
	if rePointInTimeArtifacts.MatchString(how) && !hasCurrency && !hasDate && !hasTimeframe {
		verifiable = false
		reason = "point-in-time artifacts (screenshots, diagrams, configs) need currency indicators (e.g., 'current settings', 'existing architecture', 'running configuration') or explicit dates"
	}

	points := maxPts
	var violations []string
	if !hasArtifacts {
		points -= artifactDed
		violations = append(violations, "(-20) List tangible artifacts (diagram, export, log, ticket, record, screenshot, etc.).")
	}
	if !hasDirective {
		points -= directiveDed
		violations = append(violations, "(-10) Use collection verbs (attach, provide, maintain, export, link).")
	}
	if !verifiable {
		points -= verifyDed
		violations = append(violations, fmt.Sprintf("(-6) Add verifiability: %s.", reason))
	}

	status := schema.StatusFail
	if points >= passFloor {
		status = schema.StatusPass
	} else if points >= warnFloor {
		status = schema.StatusWarn
	}
	return checkResult("how.tangible_artifacts", "Tangible Artifacts", points, maxPts, status, violations)
}

// evalHowRoleNeutral hard-fails role references paired with a directive modal
// ("Security team must ..."). Role references alone get a steep warning.
func evalHowRoleNeutral(how string) schema.CheckResult {
	const (
		maxPts  = 10
		warnPts = 3
	)
	roleDirected := reHowRoleDirected.MatchString(how)
	if roleDirected && reRoleDirectiveModal.MatchString(how) {
		return checkResult("how.role_neutral", "Role-neutral wording", 0, maxPts, schema.StatusFail,
			[]string{"CRITICAL: Contains role-specific language. Remove all role references (e.g., 'Security team must'). Focus on artifacts, not who provides them."})
	}
	if roleDirected {
		return checkResult("how.role_neutral", "Role-neutral wording", warnPts, maxPts, schema.StatusWarn,
			[]string{"Contains role references. Use role-neutral wording (e.g., 'approval records' instead of 'approved by Security Manager')."})
	}
	return checkResult("how.role_neutral", "Role-neutral wording", maxPts, maxPts, schema.StatusPass, nil)
}

// evalHowStructureBonus awards bonus points for a bulleted or numbered
// artifact list. Bonus checks stay out of the dimension denominator.
func evalHowStructureBonus(how string) schema.CheckResult {
	const bonusPts = 5
	points := 0
	status := schema.StatusNA
	if reStructureMarker.MatchString(how) {
		points = bonusPts
		status = schema.StatusPass
	}
	return schema.CheckResult{
		ID:     "how.structure_bonus",
		Label:  "Structure (bonus)",
		Points: points,
		Max:    bonusPts,
		Status: status,
		Bonus:  true,
	}
}

// evalHowTechAgnostic flags vendor names in collection methods.
func evalHowTechAgnostic(how string) schema.CheckResult {
	const (
		maxPts    = 15
		vendorPts = 12
	)
	if vendor := reEtVendorWords.FindString(how); vendor != "" {
		return checkResult("how.tech_agnostic", "Technology-agnostic", vendorPts, maxPts, schema.StatusWarn,
			[]string{fmt.Sprintf("Names a vendor/tool (%q). Use technology-agnostic collection methods.", vendor)})
	}
	return checkResult("how.tech_agnostic", "Technology-agnostic", maxPts, maxPts, schema.StatusPass, nil)
}

// evalHowFrameworkAgnostic flags framework clause references.
func evalHowFrameworkAgnostic(how string) schema.CheckResult {
	const (
		maxPts = 5
		tiePts = 3
	)
	if reFrameworkTieIn.MatchString(how) {
		return checkResult("how.framework_agnostic", "Keep it framework-agnostic", tiePts, maxPts, schema.StatusWarn,
			[]string{"Keep it framework-agnostic—remove clause names/numbers from 'How'."})
	}
	return checkResult("how.framework_agnostic", "Keep it framework-agnostic", maxPts, maxPts, schema.StatusPass, nil)
}

// evalHowNoImplSteps flags implementation verbs; collection instructions
// describe artifacts, not how to build the control.
func evalHowNoImplSteps(how string) schema.CheckResult {
	const (
		maxPts  = 5
		implPts = 2
	)
	if reHowImplSteps.MatchString(how) {
		return checkResult("how.no_impl_steps", "No implementation steps (belongs in control guidance)", implPts, maxPts, schema.StatusWarn,
			[]string{"Avoid implementation steps in 'How'. Put steps in control guidance instead."})
	}
	return checkResult("how.no_impl_steps", "No implementation steps (belongs in control guidance)", maxPts, maxPts, schema.StatusPass, nil)
}
