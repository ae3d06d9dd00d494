// Package stats provides autocorrelation analysis for sunspot series.
//
// # Autocorrelation Functions
//
//	acf := stats.ACF(series, timeseries.SunspotCount, 240)
//
//	// ACF with confidence bounds
//	res := stats.ACFWithConfidence(series, timeseries.SunspotCount, 240)
//	significant := stats.SignificantLags(res.Values, res.ConfBounds)
//
// # Ljung-Box Test
//
//	res := stats.LjungBox(series, timeseries.SunspotCount, 24)
//	if res.PValue < 0.05 {
//	    // the record is not white noise
//	}
//
// # Cycle Length
//
// The solar cycle shows up as the strongest autocorrelation peak of the
// monthly record between roughly 9 and 13 years:
//
//	est, err := stats.EstimateCycle(series, 9, 13)
//	fmt.Printf("cycle ~ %.2f years (r=%.2f)\n", est.Years, est.Correlation)
//
// The estimate is a good starting value for the cycle-length slider of the
// overlay chart.
package stats
