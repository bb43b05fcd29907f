package contract

import (
	"fmt"
	"strings"

	"github.com/quartzsec/rubric/schema"
)

// Default values for configuration.
const (
	DefaultHTTPAddr  = ":8080"
	DefaultPrecision = 1
)

// PipelineWeightsRaw holds custom dimension weights for a single pipeline.
// Only fields present in the config file override the defaults, so every
// field is an optional float64 pointer.
type PipelineWeightsRaw struct {
	IDQuality          *float64 `mapstructure:"id_quality"`
	NameQuality        *float64 `mapstructure:"name_quality"`
	DescriptionQuality *float64 `mapstructure:"description_quality"`
	GuidanceQuality    *float64 `mapstructure:"guidance_quality"`
	What               *float64 `mapstructure:"what"`
	How                *float64 `mapstructure:"how"`
	Cohesion           *float64 `mapstructure:"cohesion"`
	Clarity            *float64 `mapstructure:"clarity"`
}

// WeightsRawInput holds all custom weight definitions from the YAML config file.
type WeightsRawInput struct {
	Control *PipelineWeightsRaw `mapstructure:"control"`
	ET      *PipelineWeightsRaw `mapstructure:"et"`
}

// ThresholdsRawInput holds verdict threshold overrides from the YAML config file.
type ThresholdsRawInput struct {
	ControlPass *int `mapstructure:"control_pass"`
	ControlFail *int `mapstructure:"control_fail"`
	ETPass      *int `mapstructure:"et_pass"`
	ETFail      *int `mapstructure:"et_fail"`
}

// Config holds the runtime configuration for scoring commands.
// This struct remains the "final, validated" config.
type Config struct {
	InputFile  string
	OutputFile string
	Output     schema.OutputMode
	Kind       schema.RecordKind
	KindSet    bool // true when the kind came from a flag rather than detection
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool
	HTTPAddr   string
	Detail     bool // Print per-check rows under each scored record

	// Rubric is the merged scoring configuration: defaults plus any
	// weight/threshold overrides from the config file.
	Rubric *schema.Rubric
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputFileStr string

	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Kind       string `mapstructure:"kind"`
	Precision  int    `mapstructure:"precision"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`
	Addr       string `mapstructure:"addr"`
	Detail     bool   `mapstructure:"detail"`

	// --- Custom weights from config file ---
	Weights WeightsRawInput `mapstructure:"weights"`

	// --- Verdict thresholds from config file ---
	Thresholds ThresholdsRawInput `mapstructure:"thresholds"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	rubric, err := BuildRubric(input)
	if err != nil {
		return err
	}
	cfg.Rubric = rubric
	return nil
}

// validateSimpleInputs processes and validates all non-rubric fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.InputFile = input.InputFileStr
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.HTTPAddr = input.Addr
	cfg.Detail = input.Detail
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = DefaultHTTPAddr
	}

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Precision < 0 || input.Precision > 2 {
		return fmt.Errorf("precision must be between 0 and 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	if input.Kind != "" {
		kind, ok := schema.ParseRecordKind(strings.ToLower(input.Kind))
		if !ok {
			return fmt.Errorf("invalid record kind '%s'. must be control or et", input.Kind)
		}
		cfg.Kind = kind
		cfg.KindSet = true
	}

	return nil
}

// BuildRubric merges weight and threshold overrides from the config file over
// the default rubric and validates the result.
func BuildRubric(input *ConfigRawInput) (*schema.Rubric, error) {
	r := schema.DefaultRubric()

	applyWeights(r.Control.Weights, input.Weights.Control)
	applyWeights(r.EvidenceTask.Weights, input.Weights.ET)

	if t := input.Thresholds.ControlPass; t != nil {
		r.Control.PassThreshold = *t
	}
	if t := input.Thresholds.ControlFail; t != nil {
		r.Control.FailThreshold = *t
	}
	if t := input.Thresholds.ETPass; t != nil {
		r.EvidenceTask.PassThreshold = *t
	}
	if t := input.Thresholds.ETFail; t != nil {
		r.EvidenceTask.FailThreshold = *t
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func applyWeights(weights map[string]float64, raw *PipelineWeightsRaw) {
	if raw == nil {
		return
	}
	overrides := map[string]*float64{
		schema.DimIDQuality:          raw.IDQuality,
		schema.DimNameQuality:        raw.NameQuality,
		schema.DimDescriptionQuality: raw.DescriptionQuality,
		schema.DimGuidanceQuality:    raw.GuidanceQuality,
		schema.DimWhat:               raw.What,
		schema.DimHow:                raw.How,
		schema.DimCohesion:           raw.Cohesion,
		schema.DimClarity:            raw.Clarity,
	}
	for key, v := range overrides {
		if v == nil {
			continue
		}
		if _, ok := weights[key]; ok {
			weights[key] = *v
		}
	}
}
