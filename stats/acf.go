package stats

import (
	"math"

	"github.com/sartorproj/gosunspot/timeseries"
)

// ACF calculates the Autocorrelation Function of column c.
// Returns ACF values for lags 0 to maxLag, or nil when the column is constant.
func ACF(series *timeseries.Series, c timeseries.Column, maxLag int) []float64 {
	return acf(series.Values(c), maxLag)
}

func acf(values []float64, maxLag int) []float64 {
	n := len(values)
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)

	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}

	if variance == 0 {
		return nil
	}

	result := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (values[i] - mean) * (values[i-k] - mean)
		}
		result[k] = sum / variance
	}

	return result
}

// ACFResult represents the result of ACF analysis.
type ACFResult struct {
	Lags       []int     `json:"lags"`
	Values     []float64 `json:"values"`
	ConfBounds float64   `json:"conf_bounds"` // 95% confidence bounds (±1.96/sqrt(n))
}

// ACFWithConfidence calculates ACF with confidence bounds.
func ACFWithConfidence(series *timeseries.Series, c timeseries.Column, maxLag int) *ACFResult {
	values := ACF(series, c, maxLag)
	if values == nil {
		return nil
	}

	lags := make([]int, len(values))
	for i := range lags {
		lags[i] = i
	}

	return &ACFResult{
		Lags:       lags,
		Values:     values,
		ConfBounds: 1.96 / math.Sqrt(float64(series.Len())),
	}
}

// SignificantLags returns the lags where ACF values exceed confidence bounds.
func SignificantLags(values []float64, confBound float64) []int {
	var significant []int
	for i := 1; i < len(values); i++ { // Skip lag 0
		if math.Abs(values[i]) > confBound {
			significant = append(significant, i)
		}
	}
	return significant
}
