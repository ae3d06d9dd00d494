package dashboard

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gosunspot/internal/testutil"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := NewServer(ServerConfig{
		Dashboard: newTestDashboard(t),
		Port:      0,
		Logger:    testutil.NewTestLogger(t),
	})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) (*http.Response, string) {
	t.Helper()
	resp, err := ts.Client().Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func sse(t *testing.T, ts *httptest.Server, path string, signals string) string {
	t.Helper()
	resp, body := get(t, ts, path+"?datastar="+url.QueryEscape(signals))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")
	return body
}

func TestIndex(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts, "/")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, "data-signals=")
	assert.Contains(t, body, "@get('/sse/smoothed')")
	assert.Contains(t, body, `id="smoothed-panel"`)
	assert.Contains(t, body, `id="cycle-panel"`)
	assert.Contains(t, body, "eit_171/1024/latest.jpg")
	assert.Contains(t, body, "/charts/smoothed.png?max_year=2020")
	assert.Contains(t, body, "/charts/cycle.png?cycle_length=11")
	for _, name := range TelescopeNames() {
		assert.Contains(t, body, ">"+name+"<")
	}
}

func TestCharts(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"smoothed defaults", "/charts/smoothed.png", http.StatusOK},
		{"smoothed custom", "/charts/smoothed.png?min_year=1900&max_year=1990&window=5", http.StatusOK},
		{"smoothed min year above range", "/charts/smoothed.png?min_year=2000", http.StatusBadRequest},
		{"smoothed max year below range", "/charts/smoothed.png?max_year=1900", http.StatusBadRequest},
		{"smoothed window out of range", "/charts/smoothed.png?window=4", http.StatusBadRequest},
		{"smoothed fractional year", "/charts/smoothed.png?min_year=1950.5", http.StatusBadRequest},
		{"cycle defaults", "/charts/cycle.png", http.StatusOK},
		{"cycle custom", "/charts/cycle.png?cycle_length=9.3", http.StatusOK},
		{"cycle not a number", "/charts/cycle.png?cycle_length=abc", http.StatusBadRequest},
		{"cycle out of range", "/charts/cycle.png?cycle_length=20", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, ts, tt.path)
			require.Equal(t, tt.status, resp.StatusCode, body)
			if tt.status == http.StatusOK {
				assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
				assert.True(t, strings.HasPrefix(body, "\x89PNG"))
			} else {
				assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
			}
		})
	}
}

func TestSmoothedJSON(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts, "/api/smoothed?min_year=1950&max_year=1959&window=5")
	require.Equal(t, http.StatusOK, resp.StatusCode, body)

	var view SmoothedView
	require.NoError(t, json.Unmarshal([]byte(body), &view))
	assert.Equal(t, SmoothingParams{MinYear: 1950, MaxYear: 1959, Window: 5}, view.Params)
	assert.Len(t, view.Raw, 120)
	assert.Len(t, view.Smoothed, 120)

	resp, body = get(t, ts, "/api/smoothed?min_year=2000")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp errorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &errResp))
	assert.Contains(t, errResp.Error, "min_year")
}

func TestCycleJSON(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts, "/api/cycle?cycle_length=11")
	require.Equal(t, http.StatusOK, resp.StatusCode, body)

	var view CycleView
	require.NoError(t, json.Unmarshal([]byte(body), &view))
	assert.Equal(t, 11.0, view.Params.CycleLength)
	assert.Len(t, view.Profile, ProfileBins)

	resp, body = get(t, ts, "/api/cycle?cycle_length=8")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp errorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &errResp))
	assert.Equal(t, http.StatusBadRequest, errResp.Status)
	assert.Contains(t, errResp.Error, "cycle_length")
}

func TestTelescopesJSON(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts, "/api/telescopes")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var all []Telescope
	require.NoError(t, json.Unmarshal([]byte(body), &all))
	assert.Equal(t, Telescopes(), all)

	resp, body = get(t, ts, "/api/telescopes?telescope="+url.QueryEscape("LASCO C2"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var one Telescope
	require.NoError(t, json.Unmarshal([]byte(body), &one))
	assert.Equal(t, "https://soho.nascom.nasa.gov/data/realtime/c2/1024/latest.jpg", one.URL)

	resp, _ = get(t, ts, "/api/telescopes?telescope=Hubble")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestControlsJSON(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts, "/api/controls")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var c Controls
	require.NoError(t, json.Unmarshal([]byte(body), &c))
	assert.Equal(t, DefaultControls(), c)
}

func TestHealthAndMetrics(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts, "/healthz")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","rows":996}`, body)

	get(t, ts, "/api/cycle")
	resp, body = get(t, ts, "/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "sunspots_panel_recompute_total")
	assert.Contains(t, body, "sunspots_panel_recompute_duration_seconds")
}

func TestTelescopeSSE(t *testing.T) {
	ts := newTestServer(t)

	body := sse(t, ts, "/sse/telescope", `{"telescope":"LASCO C3"}`)
	assert.Contains(t, body, "datastar-patch-elements")
	assert.Contains(t, body, "telescope-panel")
	assert.Contains(t, body, "c3/1024/latest.jpg")

	body = sse(t, ts, "/sse/telescope", `{"telescope":"Hubble"}`)
	assert.Contains(t, body, "unknown telescope")
}

func TestCycleSSE(t *testing.T) {
	ts := newTestServer(t)

	body := sse(t, ts, "/sse/cycle", `{"cycleLength":11.2}`)
	assert.Contains(t, body, "datastar-patch-elements")
	assert.Contains(t, body, "cycle-panel")
	assert.Contains(t, body, "data:image/png;base64,")

	body = sse(t, ts, "/sse/cycle", `{"cycleLength":"14"}`)
	assert.Contains(t, body, "must be between 9 and 13")
	assert.NotContains(t, body, "data:image/png")
}

func TestSmoothedSSE(t *testing.T) {
	ts := newTestServer(t)

	body := sse(t, ts, "/sse/smoothed", `{"minYear":"1950","maxYear":2020,"window":10}`)
	assert.Contains(t, body, "datastar-patch-elements")
	assert.Contains(t, body, "smoothed-panel")
	assert.Contains(t, body, "data:image/png;base64,")

	body = sse(t, ts, "/sse/smoothed", `{"minYear":1950,"maxYear":2020,"window":3}`)
	assert.Contains(t, body, "must be between 5 and 10")

	body = sse(t, ts, "/sse/smoothed", `{"minYear":1950,"maxYear":2020,"window":7.5}`)
	assert.Contains(t, body, "must be a whole number")
}
