// Package generator orchestrates diagram production for a whole workspace.
package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/CoderByBlood/structuml/internal/index"
	"github.com/CoderByBlood/structuml/internal/sequence"
	"github.com/CoderByBlood/structuml/internal/workspace"
	"github.com/CoderByBlood/structuml/pkg/metrics"
)

const (
	// SequenceSuffix marks the dynamic views that qualify for diagram
	// generation; all other dynamic views are ignored.
	SequenceSuffix = "-Sequence"

	// FilePrefix and FileExt frame the view key in the output filename.
	FilePrefix = "UML-"
	FileExt    = ".puml"
)

// Diagram is one rendered document.
type Diagram struct {
	Key      string `json:"key"`
	Filename string `json:"filename"`
	Source   string `json:"source"`
}

// Generator renders sequence diagrams from a workspace's dynamic views.
type Generator struct {
	logger *zap.Logger
}

// New creates a generator.
func New(log *zap.Logger) *Generator {
	return &Generator{logger: log}
}

// Generate builds the model index once, then projects and renders every
// dynamic view whose key ends in SequenceSuffix. Views are processed
// independently and in declaration order. A workspace with no dynamic
// views yields an empty result, not an error.
func (g *Generator) Generate(ws *workspace.Workspace) []Diagram {
	idx := index.Build(&ws.Model)

	views := ws.Views.DynamicViews
	if len(views) == 0 {
		g.logger.Info("no dynamic views found in workspace")
		return nil
	}

	var diagrams []Diagram
	for i := range views {
		view := &views[i]
		if !strings.HasSuffix(view.Key, SequenceSuffix) {
			continue
		}

		start := time.Now()
		proj := sequence.Project(view, idx, g.logger)

		title := view.Name
		if title == "" {
			title = view.Key
		}
		src := sequence.Render(title, proj, idx)

		metrics.RecordDiagram(view.Key, time.Since(start).Seconds(), len(proj.Participants))
		g.logger.Info("rendered sequence diagram",
			zap.String("view", view.Key),
			zap.Int("participants", len(proj.Participants)),
			zap.Int("messages", len(proj.Messages)),
		)

		diagrams = append(diagrams, Diagram{
			Key:      view.Key,
			Filename: FilePrefix + view.Key + FileExt,
			Source:   src,
		})
	}
	return diagrams
}

// WriteAll writes each diagram into outDir, creating the directory if
// needed. One file per view; distinct keys give distinct filenames, so
// writes never overlap.
func (g *Generator) WriteAll(diagrams []Diagram, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, d := range diagrams {
		path := filepath.Join(outDir, d.Filename)
		if err := os.WriteFile(path, []byte(d.Source), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", d.Filename, err)
		}
		g.logger.Info("wrote diagram", zap.String("path", path))
	}
	return nil
}
