// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "structuml_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "structuml_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// DiagramsRenderedTotal tracks rendered sequence diagrams.
	DiagramsRenderedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "structuml_diagrams_rendered_total",
			Help: "Total sequence diagrams rendered",
		},
		[]string{"view"},
	)

	// RenderDuration tracks per-view render duration.
	RenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "structuml_render_duration_seconds",
			Help:    "Sequence diagram render duration in seconds",
			Buckets: []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1},
		},
		[]string{"view"},
	)

	// DiagramParticipants tracks participants per rendered diagram.
	DiagramParticipants = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "structuml_diagram_participants",
			Help:    "Participants per rendered diagram",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 34},
		},
	)

	// WorkspaceParseErrorsTotal tracks workspace documents that failed to parse.
	WorkspaceParseErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "structuml_workspace_parse_errors_total",
			Help: "Total workspace documents that failed to parse",
		},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordDiagram records metrics for one rendered diagram.
func RecordDiagram(view string, duration float64, participants int) {
	DiagramsRenderedTotal.WithLabelValues(view).Inc()
	RenderDuration.WithLabelValues(view).Observe(duration)
	DiagramParticipants.Observe(float64(participants))
}

// RecordParseError records a workspace document that failed to parse.
func RecordParseError() {
	WorkspaceParseErrorsTotal.Inc()
}
