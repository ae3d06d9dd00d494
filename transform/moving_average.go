package transform

import (
	"github.com/sartorproj/gosunspot/timeseries"
)

// MovingAverage smooths column c with a centered window.
//
// For row i and every offset j in [0, window), row i-j is a sample when
// i-j > 0 and row i+j is a sample when i+j < n-1. Row 0 is therefore never a
// left sample, the last row is never a right sample, and interior rows count
// themselves twice at j = 0. The value is sum/count.
//
// A series of length 0 or 1, or a window below 1, leaves some row without
// samples and yields a *DivisionError.
func MovingAverage(s *timeseries.Series, c timeseries.Column, window int) (*DerivedSeries, error) {
	n := s.Len()
	if n <= 1 {
		return nil, &DivisionError{Row: -1, Length: n, Window: window}
	}

	values := s.Values(c)
	smoothed := make([]float64, n)

	for i := 0; i < n; i++ {
		total := 0.0
		count := 0
		for j := 0; j < window; j++ {
			if i-j > 0 {
				total += values[i-j]
				count++
			}
			if i+j < n-1 {
				total += values[i+j]
				count++
			}
		}
		if count == 0 {
			return nil, &DivisionError{Row: i, Length: n, Window: window}
		}
		smoothed[i] = total / float64(count)
	}

	return &DerivedSeries{
		Base:      s,
		Name:      c.String() + "_ma",
		Synthetic: smoothed,
	}, nil
}
