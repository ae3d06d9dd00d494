// Package transform derives chartable series from a sunspot Series.
//
// Every function is pure: it reads an immutable *timeseries.Series and
// returns a new DerivedSeries carrying one synthetic value per row. Nothing is
// cached between calls.
//
// # Moving Average
//
//	smoothed, err := transform.MovingAverage(series, timeseries.SunspotCount, 10)
//	points := smoothed.Against(timeseries.FractionalDate)
//
// The window is centered but deliberately asymmetric at the edges: the first
// row never contributes as a left sample, the last row never contributes as a
// right sample, and interior rows count themselves twice. A series with fewer
// than two rows yields a *DivisionError.
//
// # Cycle Overlay
//
//	folded, err := transform.CycleFold(series, 11.0)
//	points := folded.Scatter(timeseries.SunspotCount)
//	profile, err := transform.CycleProfile(folded, timeseries.SunspotCount, 11.0, 44)
//
// CycleFold maps each fractional date to date mod cycleLength in
// [0, cycleLength). CycleProfile averages a column within equal slices of
// the cycle to draw the mean cycle shape over the scatter.
package transform
