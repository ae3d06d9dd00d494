// Package gosunspot provides an interactive dashboard over the monthly sunspot record.
//
// gosunspot loads the SILSO monthly mean total sunspot number file and derives
// two views from it: a moving average of the monthly count over a chosen
// range of years, and the record folded onto a chosen solar cycle length so
// that successive cycles overlay each other.
//
// # Packages
//
//   - timeseries: load the semicolon file, filter rows by a column range, column statistics
//   - transform: asymmetric moving average, cycle fold and mean cycle profile
//   - stats: autocorrelation, Ljung-Box test and cycle length estimation
//   - dashboard: page controls, PNG charts, HTTP and SSE handlers, metrics
//
// # Quick Start
//
// Smooth the record since 1950:
//
//	series, _ := timeseries.Load("SN_m_tot_V2.0.csv", timeseries.DefaultCSVOptions())
//	recent := series.FilterByRange(timeseries.Year, timeseries.Between(1950, 2020))
//	ma, err := transform.MovingAverage(recent, timeseries.SunspotCount, 10)
//
// Overlay every cycle on an 11-year period:
//
//	folded, err := transform.CycleFold(series, 11)
//	points := folded.Scatter(timeseries.SunspotCount)
//
// Serve the dashboard:
//
//	sunspots serve --data SN_m_tot_V2.0.csv --port 8050
//
// # Data
//
// The input is the SILSO "SN_m_tot_V2.0.csv" file: seven semicolon separated
// fields per line (year, month, fractional date, mean sunspot count, standard
// deviation, number of observations, definitive marker) with no header.
// A count of -1 marks a missing value and is carried through unchanged.
package gosunspot
