package core

import (
	"github.com/quartzsec/rubric/schema"
)

// ScoreEvidenceTask runs the full evidence task pipeline against one record.
// A nil rubric scores with the canonical defaults.
func ScoreEvidenceTask(in schema.EvidenceTaskInput, r *schema.Rubric) schema.ScoreResponse {
	if r == nil {
		r = schema.DefaultRubric()
	}
	p := &r.EvidenceTask

	what := in.WhatToCollect
	how := in.HowToCollect
	both := what + "\n\n" + how

	dims := []schema.DimensionResult{
		aggregateDimension(schema.DimWhat, p.Label(schema.DimWhat), p.Weights[schema.DimWhat], []schema.CheckResult{
			evalWhatSingleFocus(what),
			evalWhatOutcomePhrasing(what),
			evalWhatConcise(what),
			evalWhatNoArtifactLeakage(what),
			evalWhatRoleAwareScope(what),
			evalWhatTechAgnostic(what),
		}),
		aggregateDimension(schema.DimHow, p.Label(schema.DimHow), p.Weights[schema.DimHow], []schema.CheckResult{
			evalHowTangibleArtifacts(how),
			evalHowRoleNeutral(how),
			evalHowStructureBonus(how),
			evalHowTechAgnostic(how),
			evalHowFrameworkAgnostic(how),
			evalHowNoImplSteps(how),
		}),
		aggregateDimension(schema.DimCohesion, p.Label(schema.DimCohesion), p.Weights[schema.DimCohesion], []schema.CheckResult{
			evalWhatHowAlignment(what, how),
			evalSystemTimeApprovalConsistency(how),
		}),
		aggregateDimension(schema.DimClarity, p.Label(schema.DimClarity), p.Weights[schema.DimClarity], []schema.CheckResult{
			evalPlainLanguage(both),
			evalNoJargon(both),
			evalGrammarReadability(both),
		}),
	}

	return assembleResponse(p, r, dims)
}
