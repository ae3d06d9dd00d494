// Package timeseries provides the monthly sunspot series and its range views.
package timeseries

import (
	"math"
	"sort"
)

// Series is an ordered, immutable sequence of observations.
// Rows are expected in non-decreasing FractionalDate order without duplicates;
// the order of the source is kept as-is.
type Series struct {
	obs  []Observation
	Name string
}

// New creates a series from observations. The slice is copied.
func New(obs []Observation) *Series {
	own := make([]Observation, len(obs))
	copy(own, obs)
	return &Series{obs: own}
}

// Len returns the number of observations.
func (s *Series) Len() int {
	return len(s.obs)
}

// At returns the i-th observation.
func (s *Series) At(i int) Observation {
	return s.obs[i]
}

// Observations returns a copy of all observations.
func (s *Series) Observations() []Observation {
	out := make([]Observation, len(s.obs))
	copy(out, s.obs)
	return out
}

// Values extracts one numeric column.
func (s *Series) Values(c Column) []float64 {
	values := make([]float64, len(s.obs))
	for i, o := range s.obs {
		values[i] = o.Value(c)
	}
	return values
}

// Range bounds a filter. A nil bound is unbounded on that side.
type Range struct {
	Min *float64
	Max *float64
}

// AtLeast returns a range bounded below only.
func AtLeast(min float64) Range {
	return Range{Min: &min}
}

// AtMost returns a range bounded above only.
func AtMost(max float64) Range {
	return Range{Max: &max}
}

// Between returns an inclusive range on both sides.
func Between(min, max float64) Range {
	return Range{Min: &min, Max: &max}
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	if r.Min != nil && !(v >= *r.Min) {
		return false
	}
	if r.Max != nil && !(v <= *r.Max) {
		return false
	}
	return true
}

// FilterByRange returns the rows whose column value lies within r, in their original order.
// An inverted range (Min > Max) matches nothing and yields an empty series.
func (s *Series) FilterByRange(c Column, r Range) *Series {
	kept := make([]Observation, 0, len(s.obs))
	for _, o := range s.obs {
		if r.Contains(o.Value(c)) {
			kept = append(kept, o)
		}
	}
	return &Series{obs: kept, Name: s.Name}
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.obs) {
		end = len(s.obs)
	}
	if start >= end {
		return &Series{obs: []Observation{}, Name: s.Name}
	}
	out := New(s.obs[start:end])
	out.Name = s.Name
	return out
}

// Mean calculates the arithmetic mean of a column.
func (s *Series) Mean(c Column) float64 {
	if len(s.obs) == 0 {
		return 0
	}
	sum := 0.0
	for _, o := range s.obs {
		sum += o.Value(c)
	}
	return sum / float64(len(s.obs))
}

// Variance calculates the sample variance of a column.
func (s *Series) Variance(c Column) float64 {
	if len(s.obs) < 2 {
		return 0
	}
	mean := s.Mean(c)
	sumSq := 0.0
	for _, o := range s.obs {
		diff := o.Value(c) - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(s.obs)-1)
}

// Std calculates the standard deviation of a column.
func (s *Series) Std(c Column) float64 {
	return math.Sqrt(s.Variance(c))
}

// Min returns the minimum value of a column.
func (s *Series) Min(c Column) float64 {
	if len(s.obs) == 0 {
		return math.NaN()
	}
	min := s.obs[0].Value(c)
	for _, o := range s.obs[1:] {
		if v := o.Value(c); v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value of a column.
func (s *Series) Max(c Column) float64 {
	if len(s.obs) == 0 {
		return math.NaN()
	}
	max := s.obs[0].Value(c)
	for _, o := range s.obs[1:] {
		if v := o.Value(c); v > max {
			max = v
		}
	}
	return max
}

// Median returns the median value of a column.
func (s *Series) Median(c Column) float64 {
	if len(s.obs) == 0 {
		return math.NaN()
	}
	sorted := s.Values(c)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}
