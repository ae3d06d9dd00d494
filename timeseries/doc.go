// Package timeseries provides the sunspot Series and its loading and filtering utilities.
//
// A Series is loaded once from the SILSO monthly mean total sunspot number
// file and never modified afterwards. Filtering and slicing always return a
// new Series, so a loaded Series can be shared freely between callers.
//
// # Loading
//
// The source file is semicolon-delimited with no header and seven columns:
// year, month, fractional date, sunspot count, standard deviation,
// observation count and the definitive/provisional marker.
//
//	series, err := timeseries.Load("SN_m_tot_V2.0.csv", nil)
//	if err != nil {
//	    var perr *timeseries.ParseError
//	    if errors.As(err, &perr) {
//	        log.Fatalf("bad row at line %d", perr.Line)
//	    }
//	}
//
// Missing months are encoded by the provider as negative sunspot counts.
// They are loaded as-is.
//
// # Filtering
//
// Keep the rows whose column lies within an inclusive range:
//
//	modern := series.FilterByRange(timeseries.Year, timeseries.Between(1950, 2020))
//	recent := series.FilterByRange(timeseries.Year, timeseries.AtLeast(2000))
//
// Either bound may be omitted. An inverted range yields an empty Series.
//
// # Column Statistics
//
//	mean := series.Mean(timeseries.SunspotCount)
//	std := series.Std(timeseries.SunspotCount)
//	peak := series.Max(timeseries.SunspotCount)
package timeseries
