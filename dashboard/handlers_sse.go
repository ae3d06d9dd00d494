package dashboard

import (
	"bytes"
	"encoding/base64"
	"html/template"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

func renderPanel(name string, p panel) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, p); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func pngDataURL(draw func(*bytes.Buffer) error) (template.URL, error) {
	var buf bytes.Buffer
	if err := draw(&buf); err != nil {
		return "", err
	}
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())), nil
}

// patchPanel replaces a figure on the page. Errors are shown in place of
// the chart and echoed to the browser console.
func (h *Handlers) patchPanel(sse *datastar.ServerSentEventGenerator, name string, p panel, err error) {
	if err != nil {
		p = panel{Error: err.Error()}
		_ = sse.ConsoleError(err)
	}
	html, renderErr := renderPanel(name, p)
	if renderErr != nil {
		h.logger.Error("failed to render panel", "panel", name, "error", renderErr)
		_ = sse.ConsoleError(renderErr)
		return
	}
	if patchErr := sse.PatchElements(html); patchErr != nil {
		h.logger.Debug("failed to patch panel", "panel", name, "error", patchErr)
	}
}

// TelescopeSSE swaps the live sun image for the selected telescope.
func (h *Handlers) TelescopeSSE(w http.ResponseWriter, r *http.Request) {
	// Read signals BEFORE creating SSE (SSE consumes the request body)
	var signals PageSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	sse := datastar.NewSSE(w, r)

	url, err := h.dash.TelescopeURL(signals.Telescope)
	h.patchPanel(sse, "telescope-panel", panel{Src: template.URL(url), Alt: signals.Telescope}, err)
}

// CycleSSE redraws the overlay panel for the selected cycle length.
func (h *Handlers) CycleSSE(w http.ResponseWriter, r *http.Request) {
	var signals PageSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	sse := datastar.NewSSE(w, r)

	view, err := h.dash.Overlay(signals.Cycle())
	var p panel
	if err == nil {
		p.Alt = "Sunspot cycle overlay"
		p.Src, err = pngDataURL(func(buf *bytes.Buffer) error { return RenderCycle(buf, view) })
	}
	h.patchPanel(sse, "cycle-panel", p, err)
}

// SmoothedSSE redraws the smoothed panel for the selected years and window.
func (h *Handlers) SmoothedSSE(w http.ResponseWriter, r *http.Request) {
	var signals PageSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	sse := datastar.NewSSE(w, r)

	var (
		view *SmoothedView
		p    panel
	)
	params, err := signals.Smoothing()
	if err == nil {
		view, err = h.dash.Smoothed(params)
	}
	if err == nil {
		p.Alt = "Monthly average sunspots"
		p.Src, err = pngDataURL(func(buf *bytes.Buffer) error { return RenderSmoothed(buf, view) })
	}
	h.patchPanel(sse, "smoothed-panel", p, err)
}
