// Package commands implements the CLI commands for pretext.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/pretext/internal/logger"
	"github.com/jmylchreest/pretext/pkg/reader"
)

var rootCmd = &cobra.Command{
	Use:   "pretext",
	Short: "Converts documents into pretraining text records",
	Long: `Pretext runs dataset readers that turn documents into plain-text
records for LLM pretraining pipelines.

Each reader is a subcommand. Records carry the extracted text plus a
metadata map with the source file, serialized as JSON, JSONL or YAML.

Examples:
  # Extract the body text of every HTML file in a directory
  pretext from-html -i "pages/*.html" -o corpus.jsonl

  # Join text fragments with newlines, reading paths from a list file
  pretext from-html -I pages.list -s "\n" -f jsonl`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{
			Debug: viper.GetBool("debug"),
			Quiet: viper.GetBool("quiet"),
			JSON:  viper.GetBool("log_json"),
		})
	},
}

var readersCmd = &cobra.Command{
	Use:   "readers",
	Short: "List the available dataset readers",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range reader.Available() {
			r, err := reader.New(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", name, r.Description())
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(readersCmd)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.pretext.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")
	rootCmd.PersistentFlags().Bool("log-json", false, "log as JSON")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("log_json", rootCmd.PersistentFlags().Lookup("log-json"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".pretext")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("PRETEXT")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
