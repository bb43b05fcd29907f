package contract

import (
	"testing"

	"github.com/quartzsec/rubric/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Output:    "text",
		Color:     "yes",
		Precision: 1,
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.InputFileStr = "records.csv"

	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, "records.csv", cfg.InputFile)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, DefaultHTTPAddr, cfg.HTTPAddr)
	assert.True(t, cfg.UseColors)
	assert.False(t, cfg.KindSet)
	require.NotNil(t, cfg.Rubric)
	assert.NoError(t, cfg.Rubric.Validate())
}

func TestProcessAndValidateRejectsBadInputs(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *ConfigRawInput)
		wantErr string
	}{
		{
			name:    "bad output mode",
			mutate:  func(in *ConfigRawInput) { in.Output = "xml" },
			wantErr: "invalid output format",
		},
		{
			name:    "bad color flag",
			mutate:  func(in *ConfigRawInput) { in.Color = "maybe" },
			wantErr: "invalid --color",
		},
		{
			name:    "precision out of range",
			mutate:  func(in *ConfigRawInput) { in.Precision = 3 },
			wantErr: "precision must be between",
		},
		{
			name:    "bad record kind",
			mutate:  func(in *ConfigRawInput) { in.Kind = "policy" },
			wantErr: "invalid record kind",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			err := ProcessAndValidate(&Config{}, input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProcessAndValidateKindFlag(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.Kind = "ET" // flag values are lowercased before parsing

	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.True(t, cfg.KindSet)
	assert.Equal(t, schema.EvidenceTaskKind, cfg.Kind)
}

func TestBuildRubricWeightOverrides(t *testing.T) {
	input := validInput()
	input.Weights.Control = &PipelineWeightsRaw{
		IDQuality:       floatPtr(0.10),
		NameQuality:     floatPtr(0.20),
		// description and guidance keep their defaults 0.30/0.40
	}

	r, err := BuildRubric(input)
	require.NoError(t, err)
	assert.Equal(t, 0.10, r.Control.Weights[schema.DimIDQuality])
	assert.Equal(t, 0.20, r.Control.Weights[schema.DimNameQuality])
	assert.Equal(t, 0.30, r.Control.Weights[schema.DimDescriptionQuality])

	// Control overrides never leak into the task pipeline.
	assert.Equal(t, 0.35, r.EvidenceTask.Weights[schema.DimWhat])
}

func TestBuildRubricRejectsBadWeightSum(t *testing.T) {
	input := validInput()
	input.Weights.ET = &PipelineWeightsRaw{What: floatPtr(0.9)}

	_, err := BuildRubric(input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weights sum")
}

func TestBuildRubricThresholdOverrides(t *testing.T) {
	input := validInput()
	input.Thresholds.ControlPass = intPtr(85)
	input.Thresholds.ETFail = intPtr(50)

	r, err := BuildRubric(input)
	require.NoError(t, err)
	assert.Equal(t, 85, r.Control.PassThreshold)
	assert.Equal(t, 60, r.Control.FailThreshold)
	assert.Equal(t, 50, r.EvidenceTask.FailThreshold)
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"yes", true, false},
		{"true", true, false},
		{"1", true, false},
		{"no", false, false},
		{"false", false, false},
		{"0", false, false},
		{"maybe", false, true},
		{"", false, true},
	}
	for _, tt := range tests {
		got, err := ParseBoolString(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseBoolString(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseBoolString(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseBoolString(%q)", tt.in)
	}
}
