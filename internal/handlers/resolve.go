package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/vangoframework/clsx/internal/argsource"
	"github.com/vangoframework/clsx/internal/middleware"
	"github.com/vangoframework/clsx/pkg/clsx"
)

type resolveResponse struct {
	Class   string `json:"class"`
	Present bool   `json:"present"`
}

// Resolve handles POST /resolve. The body is a JSON or YAML argument list,
// chosen by Content-Type.
func (h *Handlers) Resolve(w http.ResponseWriter, r *http.Request) {
	format, err := argsource.FormatFromContentType(r.Header.Get("Content-Type"))
	if err != nil {
		writeError(w, http.StatusUnsupportedMediaType, err.Error())
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.config.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	args, err := argsource.Decode(body, format)
	if err != nil {
		h.logger.Debug("invalid resolve body",
			"error", err,
			"format", format,
			"request_id", middleware.GetRequestID(r.Context()),
		)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	class, present := h.resolve(r.Context(), args)
	writeJSON(w, http.StatusOK, resolveResponse{Class: class, Present: present})
}

// ResolveQuery handles GET /resolve?class=a&class=b. Every value is one
// string argument.
func (h *Handlers) ResolveQuery(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()["class"]
	args := make([]clsx.Arg, len(values))
	for i, v := range values {
		args[i] = clsx.Str(v)
	}

	class, present := h.resolve(r.Context(), args)
	writeJSON(w, http.StatusOK, resolveResponse{Class: class, Present: present})
}

// Health handles GET /health.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}
