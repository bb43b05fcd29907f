package core

import (
	"strings"
	"testing"

	"github.com/quartzsec/rubric/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreEvidenceTaskWellFormed(t *testing.T) {
	in := schema.EvidenceTaskInput{
		WhatToCollect: "Provide evidence to show access reviews are completed and approved.",
		HowToCollect:  "Maintain the following: a) Access review report (last 30 days); b) Approval records for the reviews.",
	}
	resp := ScoreEvidenceTask(in, nil)

	assert.Equal(t, "v1.2", resp.Version)
	assert.Equal(t, schema.VerdictPass, resp.Verdict)
	assert.False(t, resp.Total.GatedFail)
	assert.Len(t, resp.Dimensions, 4)

	phrasing := findCheck(t, resp, schema.DimWhat, "what.outcome_phrasing")
	assert.Equal(t, schema.StatusPass, phrasing.Status)
	assert.Equal(t, 25, phrasing.Points)

	tangible := findCheck(t, resp, schema.DimHow, "how.tangible_artifacts")
	assert.Equal(t, schema.StatusPass, tangible.Status)
	assert.Equal(t, 50, tangible.Points)

	alignment := findCheck(t, resp, schema.DimCohesion, "coh.what_how_alignment")
	assert.Equal(t, schema.StatusPass, alignment.Status)
}

func TestScoreEvidenceTaskEmptyInput(t *testing.T) {
	resp := ScoreEvidenceTask(schema.EvidenceTaskInput{}, nil)

	assert.Equal(t, schema.VerdictFail, resp.Verdict)
	assert.LessOrEqual(t, len(resp.Messages), schema.DefaultMessageCap)
	assert.LessOrEqual(t, len(resp.Suggestions), schema.DefaultSuggestionCap)
}

func TestEvalWhatOutcomePhrasing(t *testing.T) {
	tests := []struct {
		name       string
		what       string
		status     schema.CheckStatus
		points     int
	}{
		{
			name:   "standard prefix with outcome",
			what:   "Provide evidence to show backups are completed daily.",
			status: schema.StatusPass,
			points: 25,
		},
		{
			name:   "missing prefix", // -4 prefix only, phrasing is outcome-like
			what:   "Backups are completed daily.",
			status: schema.StatusWarn,
			points: 21,
		},
		{
			name:   "ensure clause", // -5 ensure, still has prefix and outcome
			what:   "Provide evidence to show the team ensures backups are completed.",
			status: schema.StatusWarn,
			points: 20,
		},
		{
			name:   "undefined acronym", // -5 acronym
			what:   "Provide evidence to show DR tests are completed annually.",
			status: schema.StatusWarn,
			points: 20,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := evalWhatOutcomePhrasing(tt.what)
			assert.Equal(t, tt.points, res.Points)
			assert.Equal(t, tt.status, res.Status)
		})
	}
}

func TestEvalWhatRoleAwareScopeGates(t *testing.T) {
	res := evalWhatRoleAwareScope("Provide evidence to show HR and Engineering access reviews are completed.")
	assert.Equal(t, schema.StatusFail, res.Status)
	assert.GreaterOrEqual(t, res.Max, schema.DefaultGateMaxCutoff)
}

func TestEvalWhatNoArtifactLeakage(t *testing.T) {
	// The standard prefix's own "provide" does not count as a directive.
	clean := evalWhatNoArtifactLeakage("Provide evidence to show access reviews are completed.")
	assert.Equal(t, schema.StatusPass, clean.Status)

	leaky := evalWhatNoArtifactLeakage("Provide evidence to show access reviews are completed. Attach the access review report.")
	assert.Equal(t, schema.StatusFail, leaky.Status)
	assert.Equal(t, 10, leaky.Points)
}

func TestEvalHowTangibleArtifacts(t *testing.T) {
	tests := []struct {
		name   string
		how    string
		status schema.CheckStatus
		points int
	}{
		{
			name:   "artifacts, verbs, timeframe",
			how:    "Provide the access review report for the last 30 days.",
			status: schema.StatusPass,
			points: 50,
		},
		{
			name:   "no artifacts or verbs", // -20 artifacts, -10 verbs
			how:    "Someone looks at things sometimes.",
			status: schema.StatusFail,
			points: 20,
		},
		{
			name:   "time-sensitive artifact without timeframe", // -6 verifiability
			how:    "Provide the audit log.",
			status: schema.StatusWarn,
			points: 44,
		},
		{
			name:   "point-in-time artifact with currency indicator",
			how:    "Attach a screenshot of the current settings.",
			status: schema.StatusPass,
			points: 50,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := evalHowTangibleArtifacts(tt.how)
			assert.Equal(t, tt.points, res.Points)
			assert.Equal(t, tt.status, res.Status)
		})
	}
}

func TestEvalHowRoleNeutral(t *testing.T) {
	hard := evalHowRoleNeutral("Security team must export the logs.")
	assert.Equal(t, schema.StatusFail, hard.Status)
	assert.Equal(t, 0, hard.Points)
	require.NotEmpty(t, hard.Violations)
	assert.Contains(t, hard.Violations[0], "CRITICAL")

	soft := evalHowRoleNeutral("Provide records approved by the Security Manager.")
	assert.Equal(t, schema.StatusWarn, soft.Status)
	assert.Equal(t, 3, soft.Points)

	clean := evalHowRoleNeutral("Provide the approval records.")
	assert.Equal(t, schema.StatusPass, clean.Status)
	assert.Equal(t, 10, clean.Points)
}

func TestEvalHowStructureBonus(t *testing.T) {
	listed := evalHowStructureBonus("Provide the following:\n- Access review report\n- Approval records")
	assert.True(t, listed.Bonus)
	assert.Equal(t, 5, listed.Points)
	assert.Equal(t, schema.StatusPass, listed.Status)

	flat := evalHowStructureBonus("Provide the access review report.")
	assert.True(t, flat.Bonus)
	assert.Equal(t, 0, flat.Points)
	assert.Equal(t, schema.StatusNA, flat.Status)
}

func TestStructureBonusLiftsDimension(t *testing.T) {
	// Bonus points land after normalization, so a bulleted list can push a
	// clean "how" dimension above its check-sum ratio (clamped at 100).
	in := schema.EvidenceTaskInput{
		WhatToCollect: "Provide evidence to show access reviews are completed and approved.",
		HowToCollect:  "Maintain the following for the last 30 days:\n- Access review report\n- Approval records for the reviews",
	}
	resp := ScoreEvidenceTask(in, nil)
	how := resp.Dimensions[schema.DimHow]
	assert.Equal(t, 100, how.Score)
}

func TestEvalWhatHowAlignment(t *testing.T) {
	aligned := evalWhatHowAlignment(
		"Provide evidence to show access reviews are completed and approved.",
		"Maintain the access review report and approval records.",
	)
	assert.Equal(t, schema.StatusPass, aligned.Status)

	mismatched := evalWhatHowAlignment(
		"Provide evidence to show access reviews are completed and approved.",
		"Attach the firewall configuration export.",
	)
	assert.Equal(t, schema.StatusFail, mismatched.Status)
	require.NotEmpty(t, mismatched.Violations)
	assert.Contains(t, mismatched.Violations[0], "Severe mismatch")
}

func TestEvalWhatHowAlignmentConceptConflict(t *testing.T) {
	res := evalWhatHowAlignment(
		"Provide evidence to show centrally-administered password management is in place.",
		"Attach the shared password vault export.",
	)
	assert.Equal(t, schema.StatusFail, res.Status)
	joined := strings.Join(res.Violations, " ")
	assert.Contains(t, joined, "Conceptual conflict")
	assert.Contains(t, joined, "password management approaches")
}

func TestEvalPlainLanguage(t *testing.T) {
	clean := evalPlainLanguage("Provide evidence to show access reviews are completed.")
	assert.Equal(t, schema.StatusPass, clean.Status)
	assert.Equal(t, 35, clean.Points)

	vague := evalPlainLanguage("Provide appropriate evidence of adequate reviews.")
	assert.Equal(t, schema.StatusWarn, vague.Status)
	assert.Less(t, vague.Points, 35)
}

func TestEvalNoJargon(t *testing.T) {
	res := evalNoJargon("Leverage best-of-breed tooling to synergize the reviews.")
	assert.Equal(t, schema.StatusWarn, res.Status)
	assert.Equal(t, 27, res.Points)
}
