// Package web implements the HTML GUI driving adapter using templ components.
package web

import (
	"log/slog"
	"net/http"

	"github.com/ericfisherdev/widgetpanel/internal/adapter/driving/web/templates/pages"
	"github.com/ericfisherdev/widgetpanel/internal/application"
	"github.com/ericfisherdev/widgetpanel/internal/domain/model"
	"github.com/ericfisherdev/widgetpanel/internal/domain/port/driven"
)

const maxFormBytes = 1 << 20

const invalidColorMessage = "Choose a color in #RRGGBB form."

// Handler is the web GUI driving adapter that serves HTML via templ components.
type Handler struct {
	prefStore     driven.PreferenceStore
	secureCookies bool
	logger        *slog.Logger
}

// NewHandler creates a Handler. prefStore may be nil, in which case colors
// only live for the duration of a request.
func NewHandler(prefStore driven.PreferenceStore, secureCookies bool, logger *slog.Logger) *Handler {
	return &Handler{
		prefStore:     prefStore,
		secureCookies: secureCookies,
		logger:        logger,
	}
}

// ColorPage renders the color widget with the visitor's stored color.
func (h *Handler) ColorPage(w http.ResponseWriter, r *http.Request) {
	csrf := h.csrfToken(w, r)
	scope, known := h.ensureVisitor(w, r)

	// A visitor without a cookie has nothing stored yet.
	var store driven.PreferenceStore
	if known {
		store = h.prefStore
	}

	widget := application.NewColorWidget(h.logger)
	widget.Initialize(r.Context(), store, scope)

	m := toColorViewModel(widget, h.prefStore != nil, csrf)
	renderPage(w, r, http.StatusOK, nil, pages.ColorPage(toLayoutViewModel("Color", colorPath, csrf), m))
}

// SubmitColor stores the posted color for the visitor.
func (h *Handler) SubmitColor(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	if !validateCSRF(r) {
		http.Error(w, "invalid csrf token", http.StatusForbidden)
		return
	}

	csrf := h.csrfToken(w, r)
	scope, _ := h.ensureVisitor(w, r)
	ctx := r.Context()

	widget := application.NewColorWidget(h.logger)
	widget.Initialize(ctx, h.prefStore, scope)

	color, err := model.NormalizeColor(r.FormValue("color"))
	if err != nil {
		m := toColorViewModel(widget, h.prefStore != nil, csrf)
		m.Error = invalidColorMessage
		renderPage(w, r, http.StatusBadRequest,
			pages.ColorDisplay(m),
			pages.ColorPage(toLayoutViewModel("Color", colorPath, csrf), m))
		return
	}

	if err := widget.SetColor(ctx, h.prefStore, scope, color); err != nil {
		h.logger.Error("failed to persist color", "scope", scope, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if !IsHTMXRequest(r) {
		http.Redirect(w, r, colorPath, http.StatusSeeOther)
		return
	}

	renderPage(w, r, http.StatusOK, pages.ColorDisplay(toColorViewModel(widget, h.prefStore != nil, csrf)), nil)
}

// ReadTimePage renders the read-time widget with an empty draft.
func (h *Handler) ReadTimePage(w http.ResponseWriter, r *http.Request) {
	csrf := h.csrfToken(w, r)
	widget := application.NewReadTimeWidget(h.logger)

	m := toReadTimeViewModel(widget, csrf)
	renderPage(w, r, http.StatusOK, nil, pages.ReadTimePage(toLayoutViewModel("Read time", readTimePath, csrf), m))
}

// SubmitReadTime estimates the posted draft. Live requests get only the
// stats fragment.
func (h *Handler) SubmitReadTime(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	if !validateCSRF(r) {
		http.Error(w, "invalid csrf token", http.StatusForbidden)
		return
	}

	csrf := h.csrfToken(w, r)
	widget := application.NewReadTimeWidget(h.logger)
	widget.SetText(r.FormValue("text"))

	m := toReadTimeViewModel(widget, csrf)
	renderPage(w, r, http.StatusOK,
		pages.ReadTimeStats(m),
		pages.ReadTimePage(toLayoutViewModel("Read time", readTimePath, csrf), m))
}
