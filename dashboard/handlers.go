package dashboard

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// panel is the content of one figure on the page.
type panel struct {
	Src   template.URL
	Alt   string
	Error string
}

type pageData struct {
	Controls  Controls
	Signals   string
	Telescope panel
	Cycle     panel
	Smoothed  panel
}

// Handlers serves the page, the charts and the JSON api.
type Handlers struct {
	dash   *Dashboard
	logger *slog.Logger
}

// NewHandlers creates handlers backed by dash.
func NewHandlers(dash *Dashboard, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{dash: dash, logger: logger}
}

// Index renders the dashboard page with the default controls.
func (h *Handlers) Index(w http.ResponseWriter, _ *http.Request) {
	controls := h.dash.Controls()

	signals, err := json.Marshal(defaultSignals(controls))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := pageData{
		Controls: controls,
		Signals:  string(signals),
		Cycle: panel{
			Src: template.URL("/charts/cycle.png?" + cycleQuery(controls.DefaultCycleParams())),
			Alt: "Sunspot cycle overlay",
		},
		Smoothed: panel{
			Src: template.URL("/charts/smoothed.png?" + smoothingQuery(controls.DefaultSmoothingParams())),
			Alt: "Monthly average sunspots",
		},
	}
	if url, err := h.dash.TelescopeURL(controls.DefaultTelescope); err != nil {
		data.Telescope = panel{Error: err.Error()}
	} else {
		data.Telescope = panel{Src: template.URL(url), Alt: controls.DefaultTelescope}
	}

	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, "index", data); err != nil {
		h.logger.Error("failed to render page", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// SmoothedChart renders the smoothed panel as a PNG.
func (h *Handlers) SmoothedChart(w http.ResponseWriter, r *http.Request) {
	params, err := smoothingFromQuery(r.URL.Query(), h.dash.Controls())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	view, err := h.dash.Smoothed(params)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	h.writePNG(w, r, func(buf *bytes.Buffer) error { return RenderSmoothed(buf, view) })
}

// CycleChart renders the overlay panel as a PNG.
func (h *Handlers) CycleChart(w http.ResponseWriter, r *http.Request) {
	params, err := cycleFromQuery(r.URL.Query(), h.dash.Controls())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	view, err := h.dash.Overlay(params)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	h.writePNG(w, r, func(buf *bytes.Buffer) error { return RenderCycle(buf, view) })
}

func (h *Handlers) writePNG(w http.ResponseWriter, r *http.Request, draw func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := draw(&buf); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = buf.WriteTo(w)
}

// SmoothedJSON returns the smoothed panel data.
func (h *Handlers) SmoothedJSON(w http.ResponseWriter, r *http.Request) {
	params, err := smoothingFromQuery(r.URL.Query(), h.dash.Controls())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	view, err := h.dash.Smoothed(params)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// CycleJSON returns the overlay panel data.
func (h *Handlers) CycleJSON(w http.ResponseWriter, r *http.Request) {
	params, err := cycleFromQuery(r.URL.Query(), h.dash.Controls())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	view, err := h.dash.Overlay(params)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// TelescopesJSON lists the live image feeds, or resolves one with ?telescope=.
func (h *Handlers) TelescopesJSON(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get(paramTelescope)
	if name == "" {
		writeJSON(w, http.StatusOK, Telescopes())
		return
	}
	url, err := h.dash.TelescopeURL(name)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, Telescope{Name: name, URL: url})
}

// ControlsJSON returns the page inputs with their ranges and defaults.
func (h *Handlers) ControlsJSON(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.dash.Controls())
}

// Health reports liveness and the number of loaded rows.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"rows":   h.dash.Series().Len(),
	})
}
