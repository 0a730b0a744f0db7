package main

import (
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CoderByBlood/structuml/internal/generator"
	"github.com/CoderByBlood/structuml/internal/watch"
	"github.com/CoderByBlood/structuml/internal/workspace"
)

var (
	workspacePath string
	outputDir     string
	watchMode     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render sequence diagrams for every qualifying dynamic view",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&workspacePath, "workspace", "w", "", "path to the workspace JSON document")
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "diagrams", "directory for the generated .puml files")
	generateCmd.Flags().BoolVar(&watchMode, "watch", false, "regenerate whenever the workspace file changes")
	generateCmd.MarkFlagRequired("workspace")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	gen := generator.New(log)

	if err := generateOnce(gen); err != nil {
		return err
	}
	if !watchMode {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := watch.New(workspacePath, func() {
		if err := generateOnce(gen); err != nil {
			log.Error("regeneration failed", zap.Error(err))
		}
	}, log)

	return w.Run(ctx)
}

func generateOnce(gen *generator.Generator) error {
	ws, err := workspace.Load(workspacePath)
	if err != nil {
		return err
	}

	diagrams := gen.Generate(ws)
	if err := gen.WriteAll(diagrams, outputDir); err != nil {
		return err
	}

	success := color.New(color.FgGreen)
	for _, d := range diagrams {
		success.Printf("wrote %s\n", filepath.Join(outputDir, d.Filename))
	}
	return nil
}
