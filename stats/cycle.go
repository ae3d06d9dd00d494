package stats

import (
	"errors"
	"math"

	"github.com/sartorproj/gosunspot/timeseries"
)

// SamplesPerYear is the cadence of the monthly sunspot record.
const SamplesPerYear = 12

// ErrInsufficientData is returned when a series is too short or flat to estimate a cycle.
var ErrInsufficientData = errors.New("not enough variation in the series to estimate a cycle")

// ErrInvalidSearchRange is returned when the cycle search bounds are empty.
var ErrInvalidSearchRange = errors.New("cycle search range is empty")

// CycleEstimate is the dominant cycle length found by EstimateCycle.
type CycleEstimate struct {
	Years       float64 `json:"years"`
	Lag         int     `json:"lag"`         // Lag in samples
	Correlation float64 `json:"correlation"` // ACF value at Lag
}

// EstimateCycle finds the cycle length, in years, between minYears and
// maxYears at which the monthly sunspot count is most autocorrelated.
func EstimateCycle(series *timeseries.Series, minYears, maxYears float64) (*CycleEstimate, error) {
	minLag := int(math.Ceil(minYears * SamplesPerYear))
	maxLag := int(math.Floor(maxYears * SamplesPerYear))
	if minLag < 1 {
		minLag = 1
	}
	if minLag > maxLag {
		return nil, ErrInvalidSearchRange
	}
	if series.Len() <= maxLag {
		return nil, ErrInsufficientData
	}

	values := ACF(series, timeseries.SunspotCount, maxLag)
	if values == nil {
		return nil, ErrInsufficientData
	}

	best := minLag
	for lag := minLag + 1; lag <= maxLag; lag++ {
		if values[lag] > values[best] {
			best = lag
		}
	}

	return &CycleEstimate{
		Years:       float64(best) / SamplesPerYear,
		Lag:         best,
		Correlation: values[best],
	}, nil
}
