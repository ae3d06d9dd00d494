package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/sartorproj/gosunspot/timeseries"
)

// cyclic builds a monthly series whose count follows a sine wave with the given period in years.
func cyclic(years int, periodYears float64) *timeseries.Series {
	n := years * SamplesPerYear
	obs := make([]timeseries.Observation, n)
	for i := 0; i < n; i++ {
		date := 1749 + float64(i)/SamplesPerYear + 1.0/24
		obs[i] = timeseries.Observation{
			Year:           1749 + i/SamplesPerYear,
			Month:          i%SamplesPerYear + 1,
			FractionalDate: date,
			SunspotCount:   80 + 70*math.Sin(2*math.Pi*float64(i)/(periodYears*SamplesPerYear)),
		}
	}
	return timeseries.New(obs)
}

func counts(values ...float64) *timeseries.Series {
	obs := make([]timeseries.Observation, len(values))
	for i, v := range values {
		obs[i] = timeseries.Observation{SunspotCount: v}
	}
	return timeseries.New(obs)
}

func TestACF(t *testing.T) {
	// Create a simple AR(1) process
	n := 100
	phi := 0.8
	values := make([]float64, n)
	values[0] = 0
	for i := 1; i < n; i++ {
		values[i] = phi*values[i-1] + (float64(i%10)-5)/10
	}

	acf := ACF(counts(values...), timeseries.SunspotCount, 10)

	if acf == nil {
		t.Fatal("ACF returned nil")
	}

	// ACF at lag 0 should be 1
	if math.Abs(acf[0]-1.0) > 1e-10 {
		t.Errorf("ACF at lag 0 should be 1, got %f", acf[0])
	}

	if len(acf) != 11 {
		t.Errorf("Expected 11 lags, got %d", len(acf))
	}
}

func TestACFConstantSeries(t *testing.T) {
	if acf := ACF(counts(5, 5, 5, 5), timeseries.SunspotCount, 2); acf != nil {
		t.Errorf("Expected nil ACF for constant series, got %v", acf)
	}
}

func TestACFMaxLagClamped(t *testing.T) {
	acf := ACF(counts(1, 2, 3), timeseries.SunspotCount, 10)
	if len(acf) != 3 {
		t.Errorf("Expected maxLag clamped to n-1, got %d values", len(acf))
	}
}

func TestACFWithConfidence(t *testing.T) {
	series := cyclic(50, 11)
	res := ACFWithConfidence(series, timeseries.SunspotCount, 24)

	if res == nil {
		t.Fatal("ACFWithConfidence returned nil")
	}

	expectedBound := 1.96 / math.Sqrt(float64(series.Len()))
	if math.Abs(res.ConfBounds-expectedBound) > 1e-10 {
		t.Errorf("Expected bound %f, got %f", expectedBound, res.ConfBounds)
	}
	if len(res.Lags) != len(res.Values) || res.Lags[24] != 24 {
		t.Errorf("Lags not aligned with values: %v", res.Lags)
	}
}

func TestSignificantLags(t *testing.T) {
	values := []float64{1.0, 0.5, 0.1, -0.4, 0.05}
	got := SignificantLags(values, 0.2)

	expected := []int{1, 3}
	if len(got) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Expected %v, got %v", expected, got)
		}
	}
}

func TestEstimateCycle(t *testing.T) {
	tests := []struct {
		name   string
		period float64
	}{
		{"solar", 11},
		{"short", 9.5},
		{"long", 12.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est, err := EstimateCycle(cyclic(300, tt.period), 9, 13)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if math.Abs(est.Years-tt.period) > 1.0/SamplesPerYear {
				t.Errorf("Expected cycle near %.2f years, got %.3f", tt.period, est.Years)
			}
			if est.Correlation < 0.9 {
				t.Errorf("Expected strong correlation at the peak, got %f", est.Correlation)
			}
			t.Logf("estimated %.3f years at lag %d (r=%.3f)", est.Years, est.Lag, est.Correlation)
		})
	}
}

func TestEstimateCycleErrors(t *testing.T) {
	if _, err := EstimateCycle(cyclic(10, 11), 9, 13); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("Expected ErrInsufficientData for short series, got %v", err)
	}
	if _, err := EstimateCycle(cyclic(100, 11), 13, 9); !errors.Is(err, ErrInvalidSearchRange) {
		t.Errorf("Expected ErrInvalidSearchRange, got %v", err)
	}

	flat := make([]float64, 200)
	if _, err := EstimateCycle(counts(flat...), 9, 13); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("Expected ErrInsufficientData for flat series, got %v", err)
	}
}

func TestChiSquaredSurvival(t *testing.T) {
	tests := []struct {
		x        float64
		k        int
		expected float64
		tol      float64
	}{
		{2, 2, math.Exp(-1), 1e-10},  // k=2 is exponential with mean 2
		{10, 2, math.Exp(-5), 1e-10}, // upper tail branch
		{3.841, 1, 0.05, 1e-3},       // 95th percentile, 1 dof
		{18.307, 10, 0.05, 1e-3},     // 95th percentile, 10 dof
		{0, 5, 1, 0},
	}

	for _, tt := range tests {
		got := chiSquaredSurvival(tt.x, tt.k)
		if math.Abs(got-tt.expected) > tt.tol {
			t.Errorf("chiSquaredSurvival(%v, %d) = %v, expected %v", tt.x, tt.k, got, tt.expected)
		}
	}
}

func TestLjungBox(t *testing.T) {
	res := LjungBox(cyclic(50, 11), timeseries.SunspotCount, 24)
	if res == nil {
		t.Fatal("LjungBox returned nil")
	}
	if res.Lags != 24 {
		t.Errorf("Expected 24 lags, got %d", res.Lags)
	}
	if res.PValue > 0.01 {
		t.Errorf("Expected a cyclic record to reject white noise, p=%f", res.PValue)
	}
	t.Logf("Q=%.1f p=%.3g", res.Statistic, res.PValue)

	if LjungBox(counts(1, 2, 3), timeseries.SunspotCount, 2) != nil {
		t.Error("Expected nil for fewer than 10 rows")
	}
}
