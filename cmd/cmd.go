// Package cmd defines the command-line interface for rubric.
package cmd

import (
	"github.com/quartzsec/rubric/internal/contract"
	"github.com/quartzsec/rubric/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the score subcommands to the parent score command
	scoreCmd.AddCommand(scoreControlCmd)
	scoreCmd.AddCommand(scoreETCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Bool("detail", false, "Print per-check rows under each scored record")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of scoreControlCmd to Viper
	scoreControlCmd.Flags().String("id", "", "Control ID")
	scoreControlCmd.Flags().String("name", "", "Control name")
	scoreControlCmd.Flags().String("description", "", "Control description")
	scoreControlCmd.Flags().String("guidance", "", "Control guidance")
	if err := viper.BindPFlags(scoreControlCmd.Flags()); err != nil {
		contract.LogFatal("Error binding score control flags", err)
	}

	// Bind all flags of scoreETCmd to Viper
	scoreETCmd.Flags().String("what", "", "What to collect")
	scoreETCmd.Flags().String("how", "", "How to collect")
	if err := viper.BindPFlags(scoreETCmd.Flags()); err != nil {
		contract.LogFatal("Error binding score et flags", err)
	}

	// Bind all flags of batchCmd to Viper
	batchCmd.Flags().String("kind", "", "Record kind: control or et (default: detect from headers)")
	if err := viper.BindPFlags(batchCmd.Flags()); err != nil {
		contract.LogFatal("Error binding batch flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("addr", contract.DefaultHTTPAddr, "Listen address for the HTTP server")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}
}
