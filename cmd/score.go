package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/quartzsec/rubric/core"
	"github.com/quartzsec/rubric/internal/contract"
	"github.com/quartzsec/rubric/internal/outwriter"
	"github.com/quartzsec/rubric/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// scoreCmd groups the single-record scoring commands.
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single record.",
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// scoreControlCmd scores one control record.
var scoreControlCmd = &cobra.Command{
	Use:   "control [input.json]",
	Short: "Score a control record.",
	Long: `Score a single governance control against the writing rubric.

The record comes either from a JSON file (positional argument) or from the
--id/--name/--description/--guidance flags.

Examples:
  # Score from flags
  rubric score control --id GDPR.1.1 --name "Access reviews" \
    --description "User access is reviewed quarterly." \
    --guidance "Access reviews verify least privilege..."

  # Score from a JSON file and print the full check breakdown
  rubric score control control.json --detail

  # Export machine-readable output
  rubric score control control.json --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		in := schema.ControlInput{
			ID:          viper.GetString("id"),
			Name:        viper.GetString("name"),
			Description: viper.GetString("description"),
			Guidance:    viper.GetString("guidance"),
		}
		if cfg.InputFile != "" {
			if err := readJSONInput(cfg.InputFile, &in); err != nil {
				contract.LogFatal("Cannot read control input", err)
			}
		}
		resp := core.ScoreControl(in, cfg.Rubric)
		if err := outwriter.NewOutWriter().WriteScore(&resp, cfg); err != nil {
			contract.LogFatal("Cannot write score result", err)
		}
		exitOnFail(resp.Verdict)
	},
}

// scoreETCmd scores one evidence task record.
var scoreETCmd = &cobra.Command{
	Use:   "et [input.json]",
	Short: "Score an evidence task record.",
	Long: `Score a single evidence collection task against the writing rubric.

The record comes either from a JSON file (positional argument) or from the
--what/--how flags.

Examples:
  # Score from flags
  rubric score et \
    --what "Provide evidence to show access reviews are completed and approved." \
    --how "Maintain the access review report (last 30 days) and approval records."

  # Score from a JSON file
  rubric score et task.json --detail`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		in := schema.EvidenceTaskInput{
			WhatToCollect: viper.GetString("what"),
			HowToCollect:  viper.GetString("how"),
		}
		if cfg.InputFile != "" {
			if err := readJSONInput(cfg.InputFile, &in); err != nil {
				contract.LogFatal("Cannot read evidence task input", err)
			}
		}
		resp := core.ScoreEvidenceTask(in, cfg.Rubric)
		if err := outwriter.NewOutWriter().WriteScore(&resp, cfg); err != nil {
			contract.LogFatal("Cannot write score result", err)
		}
		exitOnFail(resp.Verdict)
	},
}

// readJSONInput decodes a single JSON record from a file.
func readJSONInput(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	return nil
}

// exitOnFail makes failing verdicts visible to shell pipelines and CI.
func exitOnFail(v schema.Verdict) {
	if v == schema.VerdictFail {
		os.Exit(1)
	}
}
