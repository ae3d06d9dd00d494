package transform

import (
	"errors"
	"math"

	"github.com/sartorproj/gosunspot/timeseries"
)

// CycleFold maps every row's fractional date onto [0, cycleLength) so that
// successive cycles overlay each other.
func CycleFold(s *timeseries.Series, cycleLength float64) (*DerivedSeries, error) {
	if !(cycleLength > 0) || math.IsInf(cycleLength, 1) {
		return nil, ErrInvalidCycleLength
	}

	folded := make([]float64, s.Len())
	for i := range folded {
		folded[i] = floorMod(s.At(i).FractionalDate, cycleLength)
	}

	return &DerivedSeries{
		Base:      s,
		Name:      "cycle_year",
		Synthetic: folded,
	}, nil
}

// floorMod is the remainder with the sign of m, kept strictly below m.
func floorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	// r+m can round up to m for tiny negative remainders.
	if r >= m {
		r = 0
	}
	return r
}

// ProfileBin is the mean of a column over one slice of the cycle.
type ProfileBin struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

// Center returns the midpoint of the bin.
func (b ProfileBin) Center() float64 {
	return (b.Start + b.End) / 2
}

// ErrInvalidBins is returned by CycleProfile for a non-positive bin count.
var ErrInvalidBins = errors.New("profile needs at least one bin")

// CycleProfile averages column y of a folded series within equal-width bins of the cycle.
// Bins without rows have a zero Count and a zero Mean.
func CycleProfile(folded *DerivedSeries, y timeseries.Column, cycleLength float64, bins int) ([]ProfileBin, error) {
	if bins < 1 {
		return nil, ErrInvalidBins
	}
	if !(cycleLength > 0) || math.IsInf(cycleLength, 1) {
		return nil, ErrInvalidCycleLength
	}

	width := cycleLength / float64(bins)
	profile := make([]ProfileBin, bins)
	for i := range profile {
		profile[i].Start = float64(i) * width
		profile[i].End = float64(i+1) * width
	}

	for i, x := range folded.Synthetic {
		idx := int(x / width)
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		profile[idx].Mean += folded.Base.At(i).Value(y)
		profile[idx].Count++
	}

	for i := range profile {
		if profile[i].Count > 0 {
			profile[i].Mean /= float64(profile[i].Count)
		}
	}

	return profile, nil
}
