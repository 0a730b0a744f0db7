// Package handler provides HTTP handlers for the render API.
package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/CoderByBlood/structuml/internal/generator"
	"github.com/CoderByBlood/structuml/internal/workspace"
	"github.com/CoderByBlood/structuml/pkg/metrics"
)

// DiagramHandler renders sequence diagrams from a posted workspace.
type DiagramHandler struct {
	generator *generator.Generator
	logger    *zap.Logger
}

// NewDiagramHandler creates a new diagram handler.
func NewDiagramHandler(gen *generator.Generator, log *zap.Logger) *DiagramHandler {
	return &DiagramHandler{
		generator: gen,
		logger:    log,
	}
}

// RenderResponse is the response for a render request.
type RenderResponse struct {
	Diagrams []generator.Diagram `json:"diagrams"`
	Count    int                 `json:"count"`
}

// Render handles POST /api/v1/diagrams
func (h *DiagramHandler) Render(w http.ResponseWriter, r *http.Request) {
	ws, err := workspace.Parse(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "workspace document too large")
			return
		}
		metrics.RecordParseError()
		h.logger.Debug("workspace parse failed", zap.Error(err))
		writeError(w, http.StatusBadRequest, "invalid workspace document")
		return
	}

	diagrams := h.generator.Generate(ws)

	writeJSON(w, http.StatusOK, RenderResponse{
		Diagrams: diagrams,
		Count:    len(diagrams),
	})
}
