package schema

import (
	"fmt"
	"math"
)

// Dimension keys for the control pipeline.
const (
	DimIDQuality          = "id_quality"
	DimNameQuality        = "name_quality"
	DimDescriptionQuality = "description_quality"
	DimGuidanceQuality    = "guidance_quality"
)

// Dimension keys for the evidence task pipeline.
const (
	DimWhat     = "what"
	DimHow      = "how"
	DimCohesion = "cohesion"
	DimClarity  = "clarity"
)

// Default caps and gate cutoff shared by both pipelines.
const (
	DefaultMessageCap    = 10
	DefaultSuggestionCap = 8
	DefaultGateMaxCutoff = 15
)

// WeightSumTolerance is the allowed rounding slack when validating that a
// pipeline's dimension weights sum to 1.0.
const WeightSumTolerance = 0.001

// PipelineRubric holds the tunable scoring parameters for one pipeline.
type PipelineRubric struct {
	Version        string             `mapstructure:"version"`
	Weights        map[string]float64 `mapstructure:"weights"`
	PassThreshold  int                `mapstructure:"pass"` // total >= PassThreshold => pass
	FailThreshold  int                `mapstructure:"fail"` // total < FailThreshold => fail
	DimensionOrder []string           `mapstructure:"-"`    // Fixed iteration order for messages/suggestions
	Labels         map[string]string  `mapstructure:"labels"`
}

// Rubric is the full scoring configuration, passed explicitly into the scoring
// entry points so thresholds and weights are testable per call without
// process-wide state.
type Rubric struct {
	Control       PipelineRubric `mapstructure:"control"`
	EvidenceTask  PipelineRubric `mapstructure:"et"`
	GateMaxCutoff int            `mapstructure:"gate_max_cutoff"` // A FAIL check with Max >= cutoff forces the verdict to fail
	MessageCap    int            `mapstructure:"message_cap"`
	SuggestionCap int            `mapstructure:"suggestion_cap"`
}

// DefaultRubric returns the canonical rubric: control weights
// 0.15/0.15/0.30/0.40 with pass>=80 and fail<60, evidence task weights
// 0.35/0.35/0.15/0.15 with pass>=90 and fail<60.
func DefaultRubric() *Rubric {
	return &Rubric{
		Control: PipelineRubric{
			Version: "v1",
			Weights: map[string]float64{
				DimIDQuality:          0.15,
				DimNameQuality:        0.15,
				DimDescriptionQuality: 0.30,
				DimGuidanceQuality:    0.40,
			},
			PassThreshold:  80,
			FailThreshold:  60,
			DimensionOrder: []string{DimIDQuality, DimNameQuality, DimDescriptionQuality, DimGuidanceQuality},
			Labels: map[string]string{
				DimIDQuality:          "Control ID Quality",
				DimNameQuality:        "Control Name Quality",
				DimDescriptionQuality: "Description Quality",
				DimGuidanceQuality:    "Guidance Quality",
			},
		},
		EvidenceTask: PipelineRubric{
			Version: "v1.2",
			Weights: map[string]float64{
				DimWhat:     0.35,
				DimHow:      0.35,
				DimCohesion: 0.15,
				DimClarity:  0.15,
			},
			PassThreshold:  90,
			FailThreshold:  60,
			DimensionOrder: []string{DimWhat, DimHow, DimCohesion, DimClarity},
			Labels: map[string]string{
				DimWhat:     "What to Collect",
				DimHow:      "How to Collect (artifacts)",
				DimCohesion: "Cohesion",
				DimClarity:  "Clarity & Readability",
			},
		},
		GateMaxCutoff: DefaultGateMaxCutoff,
		MessageCap:    DefaultMessageCap,
		SuggestionCap: DefaultSuggestionCap,
	}
}

// Validate checks the structural invariants of the rubric: weights cover every
// dimension in the pipeline order and sum to 1.0 within tolerance, and
// thresholds are ordered sanely.
func (r *Rubric) Validate() error {
	if err := r.Control.validate("control"); err != nil {
		return err
	}
	if err := r.EvidenceTask.validate("et"); err != nil {
		return err
	}
	if r.GateMaxCutoff < 0 {
		return fmt.Errorf("gate_max_cutoff must be non-negative, got %d", r.GateMaxCutoff)
	}
	if r.MessageCap <= 0 || r.SuggestionCap <= 0 {
		return fmt.Errorf("message_cap and suggestion_cap must be positive")
	}
	return nil
}

func (p *PipelineRubric) validate(name string) error {
	var sum float64
	for _, key := range p.DimensionOrder {
		w, ok := p.Weights[key]
		if !ok {
			return fmt.Errorf("%s rubric: missing weight for dimension %q", name, key)
		}
		if w < 0 || w > 1 {
			return fmt.Errorf("%s rubric: weight for %q out of [0,1]: %v", name, key, w)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > WeightSumTolerance {
		return fmt.Errorf("%s rubric: dimension weights sum to %.4f, want 1.0", name, sum)
	}
	if p.PassThreshold < p.FailThreshold {
		return fmt.Errorf("%s rubric: pass threshold %d below fail threshold %d", name, p.PassThreshold, p.FailThreshold)
	}
	return nil
}

// Label returns the display label for a dimension key, falling back to the key.
func (p *PipelineRubric) Label(key string) string {
	if l, ok := p.Labels[key]; ok && l != "" {
		return l
	}
	return key
}
