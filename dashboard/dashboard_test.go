package dashboard

import (
	"bytes"
	"errors"
	"net/http"
	"testing"

	prom "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gosunspot/internal/testutil"
	"github.com/sartorproj/gosunspot/timeseries"
	"github.com/sartorproj/gosunspot/transform"
)

func newTestDashboard(t *testing.T) *Dashboard {
	t.Helper()
	return New(testutil.SampleSeries(t, 1940, 2022), testutil.NewTestLogger(t))
}

func TestDefaultControls(t *testing.T) {
	c := DefaultControls()

	assert.Len(t, c.Telescopes, 8)
	assert.Equal(t, "EIT 171", c.DefaultTelescope)
	assert.Equal(t, Control{Name: "cycle_length", Label: "Cycle Length (years)", Min: 9, Max: 13, Step: 0.1, Default: 11}, c.CycleLength)
	assert.Equal(t, 1749.0, c.MinYear.Min)
	assert.Equal(t, 1950.0, c.MinYear.Default)
	assert.Equal(t, 2022.0, c.MaxYear.Max)
	assert.Equal(t, 2020.0, c.MaxYear.Default)
	assert.Equal(t, SmoothingParams{MinYear: 1950, MaxYear: 2020, Window: 10}, c.DefaultSmoothingParams())
	assert.Equal(t, CycleParams{CycleLength: 11}, c.DefaultCycleParams())
}

func TestControlCheck(t *testing.T) {
	c := DefaultControls()

	tests := []struct {
		name    string
		control Control
		value   float64
		wantErr bool
	}{
		{"window lower bound", c.Window, 5, false},
		{"window upper bound", c.Window, 10, false},
		{"window below range", c.Window, 4, true},
		{"window fractional", c.Window, 7.5, true},
		{"cycle length fractional", c.CycleLength, 10.7, false},
		{"cycle length above range", c.CycleLength, 13.1, true},
		{"min year first record", c.MinYear, 1749, false},
		{"max year past range", c.MaxYear, 2023, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.control.Check(tt.value)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.control.Name, verr.Field)
		})
	}
}

func TestSmoothed(t *testing.T) {
	dash := newTestDashboard(t)
	params := SmoothingParams{MinYear: 1950, MaxYear: 2020, Window: 10}

	view, err := dash.Smoothed(params)
	require.NoError(t, err)

	assert.Equal(t, params, view.Params)
	assert.Len(t, view.Raw, 71*12)
	assert.Len(t, view.Smoothed, len(view.Raw))

	filtered := dash.Series().FilterByRange(timeseries.Year, timeseries.Between(1950, 2020))
	ma, err := transform.MovingAverage(filtered, timeseries.SunspotCount, 10)
	require.NoError(t, err)

	for i, p := range view.Smoothed {
		assert.Equal(t, filtered.At(i).FractionalDate, p.X)
		assert.Equal(t, ma.Synthetic[i], p.Y)
		assert.Equal(t, filtered.At(i).SunspotCount, view.Raw[i].Y)
	}
	assert.GreaterOrEqual(t, view.Raw[0].X, 1950.0)
	assert.Less(t, view.Raw[len(view.Raw)-1].X, 2021.0)
}

func TestSmoothed_InvalidParams(t *testing.T) {
	dash := newTestDashboard(t)

	_, err := dash.Smoothed(SmoothingParams{MinYear: 1950, MaxYear: 2020, Window: 11})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "window", verr.Field)
	assert.Equal(t, http.StatusBadRequest, StatusCode(err))
}

func TestSmoothed_NoRowsInRange(t *testing.T) {
	dash := New(testutil.SampleSeries(t, 1749, 1760), nil)

	_, err := dash.Smoothed(dash.Controls().DefaultSmoothingParams())

	var derr *transform.DivisionError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, http.StatusUnprocessableEntity, StatusCode(err))
}

func TestOverlay(t *testing.T) {
	dash := newTestDashboard(t)

	view, err := dash.Overlay(CycleParams{CycleLength: 10.5})
	require.NoError(t, err)

	require.Len(t, view.Points, dash.Series().Len())
	for i, p := range view.Points {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, 10.5)
		assert.Equal(t, dash.Series().At(i).SunspotCount, p.Y)
	}

	require.Len(t, view.Profile, ProfileBins)
	total := 0
	for _, b := range view.Profile {
		total += b.Count
	}
	assert.Equal(t, dash.Series().Len(), total)
}

func TestOverlay_InvalidLength(t *testing.T) {
	dash := newTestDashboard(t)

	_, err := dash.Overlay(CycleParams{CycleLength: 0})
	assert.Equal(t, http.StatusBadRequest, StatusCode(err))
}

func TestTelescopeURL(t *testing.T) {
	dash := newTestDashboard(t)

	url, err := dash.TelescopeURL("SDO/HMI Magnetogram")
	require.NoError(t, err)
	assert.Equal(t, "https://soho.nascom.nasa.gov/data/realtime/hmi_mag/1024/latest.jpg", url)

	for _, name := range TelescopeNames() {
		url, err := dash.TelescopeURL(name)
		require.NoError(t, err, name)
		assert.Contains(t, url, "/1024/latest.jpg")
	}

	_, err = dash.TelescopeURL("Hubble")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "telescope", verr.Field)
}

func TestRecomputeMetrics(t *testing.T) {
	dash := newTestDashboard(t)

	okBefore := prom.ToFloat64(RecomputeTotal.WithLabelValues(panelCycle, "ok"))
	errBefore := prom.ToFloat64(RecomputeTotal.WithLabelValues(panelCycle, "error"))

	_, err := dash.Overlay(CycleParams{CycleLength: 11})
	require.NoError(t, err)
	_, err = dash.Overlay(CycleParams{CycleLength: 42})
	require.Error(t, err)

	assert.Equal(t, okBefore+1, prom.ToFloat64(RecomputeTotal.WithLabelValues(panelCycle, "ok")))
	assert.Equal(t, errBefore+1, prom.ToFloat64(RecomputeTotal.WithLabelValues(panelCycle, "error")))
	assert.Positive(t, prom.CollectAndCount(RecomputeDuration))
}

func TestRenderCharts(t *testing.T) {
	dash := newTestDashboard(t)

	smoothed, err := dash.Smoothed(dash.Controls().DefaultSmoothingParams())
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, RenderSmoothed(&buf, smoothed))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	overlay, err := dash.Overlay(dash.Controls().DefaultCycleParams())
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, RenderCycle(&buf, overlay))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestRenderTooFewPoints(t *testing.T) {
	var buf bytes.Buffer
	err := RenderSmoothed(&buf, &SmoothedView{Raw: []transform.Point{{X: 2000, Y: 1}}})

	var cerr *ChartError
	require.ErrorAs(t, err, &cerr)
	assert.True(t, errors.Is(err, ErrNotEnoughPoints))
	assert.Equal(t, http.StatusUnprocessableEntity, StatusCode(err))
	assert.Zero(t, buf.Len())
}
