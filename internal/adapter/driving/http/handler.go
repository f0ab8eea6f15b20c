// Package httphandler implements the JSON API driving adapter.
package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ericfisherdev/widgetpanel/internal/application"
	"github.com/ericfisherdev/widgetpanel/internal/domain/model"
	"github.com/ericfisherdev/widgetpanel/internal/domain/port/driven"
)

// VisitorHeader carries the preference scope for API callers.
const VisitorHeader = "X-Visitor-ID"

const (
	maxVisitorIDLen = 128
	maxBodyBytes    = 1 << 20
)

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	prefStore driven.PreferenceStore
	logger    *slog.Logger
}

// NewHandler creates a Handler. prefStore may be nil, in which case colors
// are never read from or written to storage.
func NewHandler(prefStore driven.PreferenceStore, logger *slog.Logger) *Handler {
	return &Handler{
		prefStore: prefStore,
		logger:    logger,
	}
}

// RegisterAPIRoutes registers all JSON API routes on the provided mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/health", h.Health)
	mux.HandleFunc("POST /api/v1/read-time", h.EstimateReadTime)
	mux.HandleFunc("GET /api/v1/color", h.GetColor)
	mux.HandleFunc("PUT /api/v1/color", h.SetColor)
}

// Health reports that the server is up.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// EstimateReadTime returns the word count and reading time of the posted text.
func (h *Handler) EstimateReadTime(w http.ResponseWriter, r *http.Request) {
	var req ReadTimeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	widget := application.NewReadTimeWidget(h.logger)
	widget.SetText(req.Text)
	est := widget.Estimate()

	writeJSON(w, http.StatusOK, ReadTimeResponse{
		WordCount: est.WordCount,
		ReadTime:  est.ReadTime,
	})
}

// GetColor returns the stored color for the caller's visitor ID, or the
// default color when there is none.
func (h *Handler) GetColor(w http.ResponseWriter, r *http.Request) {
	scope, ok := visitorScope(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid visitor id")
		return
	}

	store := h.storeFor(scope)
	widget := application.NewColorWidget(h.logger)
	widget.Initialize(r.Context(), store, scope)

	writeJSON(w, http.StatusOK, toColorResponse(widget, store != nil))
}

// SetColor stores a new color for the caller's visitor ID. Without a visitor
// ID the color is validated and echoed back but not stored.
func (h *Handler) SetColor(w http.ResponseWriter, r *http.Request) {
	scope, ok := visitorScope(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid visitor id")
		return
	}

	var req SetColorRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	color, err := model.NormalizeColor(req.Color)
	if err != nil {
		writeError(w, http.StatusBadRequest, "color must be of the form #RRGGBB")
		return
	}

	store := h.storeFor(scope)
	widget := application.NewColorWidget(h.logger)
	if err := widget.SetColor(r.Context(), store, scope, color); err != nil {
		h.logger.Error("failed to persist color", "scope", scope, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toColorResponse(widget, store != nil))
}

// storeFor returns the preference store for scope, or nil when the caller
// has no scope or persistence is disabled.
func (h *Handler) storeFor(scope string) driven.PreferenceStore {
	if scope == "" || h.prefStore == nil {
		return nil
	}
	return h.prefStore
}

// visitorScope extracts the visitor ID header. A missing header yields an
// empty scope; an oversized one is rejected.
func visitorScope(r *http.Request) (string, bool) {
	scope := strings.TrimSpace(r.Header.Get(VisitorHeader))
	if len(scope) > maxVisitorIDLen {
		return "", false
	}
	return scope, true
}

func toColorResponse(widget *application.ColorWidget, persistent bool) ColorResponse {
	return ColorResponse{
		Color:      widget.Color(),
		Style:      widget.Style(),
		Persistent: persistent,
	}
}
