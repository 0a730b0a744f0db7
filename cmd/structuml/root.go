package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CoderByBlood/structuml/pkg/logger"
)

var (
	logLevel string
	log      *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "structuml",
	Short: "Generate PlantUML sequence diagrams from a Structurizr workspace",
	Long: `structuml converts the dynamic views of a Structurizr workspace
document into PlantUML sequence diagrams, one .puml file per dynamic view
whose key ends in "-Sequence".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logger.New(logLevel)
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		log = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
