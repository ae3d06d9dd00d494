package stats

import (
	"math"

	"github.com/sartorproj/gosunspot/timeseries"
)

// LjungBoxResult represents the result of a Ljung-Box test.
type LjungBoxResult struct {
	Statistic float64 `json:"statistic"`
	PValue    float64 `json:"p_value"`
	Lags      int     `json:"lags"`
}

// LjungBox tests column c for autocorrelation up to the given lag.
// The null hypothesis is that the column is white noise; a p-value below
// 0.05 means the record carries significant autocorrelation.
// Returns nil for fewer than 10 rows or a constant column.
func LjungBox(series *timeseries.Series, c timeseries.Column, lags int) *LjungBoxResult {
	n := series.Len()
	if n < 10 || lags < 1 {
		return nil
	}
	if lags >= n {
		lags = n - 1
	}

	acf := ACF(series, c, lags)
	if acf == nil {
		return nil
	}

	q := 0.0
	for k := 1; k <= lags; k++ {
		q += (acf[k] * acf[k]) / float64(n-k)
	}
	q *= float64(n) * float64(n+2)

	return &LjungBoxResult{
		Statistic: q,
		PValue:    chiSquaredSurvival(q, lags),
		Lags:      lags,
	}
}

// chiSquaredSurvival returns P(X > x) for a chi-squared variable with k degrees of freedom.
func chiSquaredSurvival(x float64, k int) float64 {
	if x <= 0 {
		return 1
	}
	return 1 - regularizedGammaP(float64(k)/2, x/2)
}

// regularizedGammaP is the lower incomplete gamma function divided by Γ(a).
func regularizedGammaP(a, x float64) float64 {
	if x <= 0 || a <= 0 {
		return 0
	}
	lg, _ := math.Lgamma(a)
	prefix := math.Exp(-x + a*math.Log(x) - lg)

	if x < a+1 {
		return prefix * gammaSeries(a, x)
	}
	return 1 - prefix*gammaContinuedFraction(a, x)
}

const (
	gammaMaxIter = 500
	gammaEps     = 1e-14
	gammaTiny    = 1e-300
)

func gammaSeries(a, x float64) float64 {
	ap := a
	sum := 1.0 / a
	del := sum
	for n := 1; n < gammaMaxIter; n++ {
		ap++
		del *= x / ap
		sum += del
		if math.Abs(del) < math.Abs(sum)*gammaEps {
			break
		}
	}
	return sum
}

// gammaContinuedFraction evaluates the upper tail by the modified Lentz method.
func gammaContinuedFraction(a, x float64) float64 {
	b := x + 1 - a
	c := 1.0 / gammaTiny
	d := 1.0 / b
	h := d
	for i := 1; i < gammaMaxIter; i++ {
		an := -float64(i) * (float64(i) - a)
		b += 2
		d = an*d + b
		if math.Abs(d) < gammaTiny {
			d = gammaTiny
		}
		c = b + an/c
		if math.Abs(c) < gammaTiny {
			c = gammaTiny
		}
		d = 1.0 / d
		del := d * c
		h *= del
		if math.Abs(del-1) < gammaEps {
			break
		}
	}
	return h
}
