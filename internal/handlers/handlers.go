package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vangoframework/clsx/internal/config"
	"github.com/vangoframework/clsx/internal/metrics"
	"github.com/vangoframework/clsx/pkg/clsx"
)

const tracerName = "github.com/vangoframework/clsx/internal/handlers"

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	config  *config.Config
	metrics *metrics.Metrics
	tracer  trace.Tracer
	logger  *slog.Logger
}

// New creates a new Handlers instance. Spans go to the global tracer
// provider, which is a no-op unless the binary installs one.
func New(cfg *config.Config, m *metrics.Metrics, logger *slog.Logger) *Handlers {
	return &Handlers{
		config:  cfg,
		metrics: m,
		tracer:  otel.Tracer(tracerName),
		logger:  logger,
	}
}

// resolve runs the resolver inside a span and records the outcome.
func (h *Handlers) resolve(ctx context.Context, args []clsx.Arg) (string, bool) {
	_, span := h.tracer.Start(ctx, "clsx.Resolve", trace.WithAttributes(
		attribute.Int("clsx.args", len(args)),
	))
	defer span.End()

	class, present := clsx.Resolve(args...)
	span.SetAttributes(attribute.Bool("clsx.present", present))
	h.metrics.ObserveResolution(class, present)
	return class, present
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
