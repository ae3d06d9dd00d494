package dashboard

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/sartorproj/gosunspot/timeseries"
	"github.com/sartorproj/gosunspot/transform"
)

// ProfileBins is the number of bins of the mean cycle profile.
const ProfileBins = 44

// Dashboard answers panel requests over one loaded series.
// It holds no mutable state and is safe for concurrent use.
type Dashboard struct {
	series   *timeseries.Series
	controls Controls
	logger   *slog.Logger
}

// New creates a Dashboard over series.
func New(series *timeseries.Series, logger *slog.Logger) *Dashboard {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dashboard{
		series:   series,
		controls: DefaultControls(),
		logger:   logger,
	}
}

// Controls returns the page inputs.
func (d *Dashboard) Controls() Controls {
	return d.controls
}

// Series returns the loaded series.
func (d *Dashboard) Series() *timeseries.Series {
	return d.series
}

// SmoothedView is the data behind the smoothed panel.
type SmoothedView struct {
	Params   SmoothingParams   `json:"params"`
	Raw      []transform.Point `json:"raw"`
	Smoothed []transform.Point `json:"smoothed"`
}

// Smoothed filters the series to the requested years and smooths the
// sunspot count with the requested window.
func (d *Dashboard) Smoothed(p SmoothingParams) (view *SmoothedView, err error) {
	defer d.observe(panelSmoothed, time.Now(), &err)

	if err := d.controls.ValidateSmoothing(p); err != nil {
		return nil, err
	}

	filtered := d.series.FilterByRange(timeseries.Year, timeseries.Between(float64(p.MinYear), float64(p.MaxYear)))
	ma, err := transform.MovingAverage(filtered, timeseries.SunspotCount, p.Window)
	if err != nil {
		return nil, fmt.Errorf("smoothing %d-%d: %w", p.MinYear, p.MaxYear, err)
	}

	raw := make([]transform.Point, filtered.Len())
	for i := range raw {
		o := filtered.At(i)
		raw[i] = transform.Point{X: o.FractionalDate, Y: o.SunspotCount}
	}

	d.logger.Debug("smoothed panel computed",
		"min_year", p.MinYear, "max_year", p.MaxYear, "window", p.Window, "rows", filtered.Len())

	return &SmoothedView{
		Params:   p,
		Raw:      raw,
		Smoothed: ma.Against(timeseries.FractionalDate),
	}, nil
}

// CycleView is the data behind the cycle overlay panel.
type CycleView struct {
	Params  CycleParams            `json:"params"`
	Points  []transform.Point      `json:"points"`
	Profile []transform.ProfileBin `json:"profile"`
}

// Overlay folds the whole series onto the requested cycle length.
func (d *Dashboard) Overlay(p CycleParams) (view *CycleView, err error) {
	defer d.observe(panelCycle, time.Now(), &err)

	if err := d.controls.ValidateCycle(p); err != nil {
		return nil, err
	}

	folded, err := transform.CycleFold(d.series, p.CycleLength)
	if err != nil {
		return nil, err
	}
	profile, err := transform.CycleProfile(folded, timeseries.SunspotCount, p.CycleLength, ProfileBins)
	if err != nil {
		return nil, err
	}

	d.logger.Debug("cycle panel computed", "cycle_length", p.CycleLength, "rows", folded.Len())

	return &CycleView{
		Params:  p,
		Points:  folded.Scatter(timeseries.SunspotCount),
		Profile: profile,
	}, nil
}

// TelescopeURL returns the live image for a telescope feed.
func (d *Dashboard) TelescopeURL(name string) (url string, err error) {
	defer d.observe(panelTelescope, time.Now(), &err)
	return telescopeURL(name)
}

func (d *Dashboard) observe(panel string, start time.Time, err *error) {
	RecomputeDuration.WithLabelValues(panel).Observe(time.Since(start).Seconds())
	RecomputeTotal.WithLabelValues(panel, statusLabel(*err)).Inc()
	if *err != nil {
		d.logger.Warn("panel recompute failed", "panel", panel, "error", *err)
	}
}
