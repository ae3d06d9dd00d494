// Package transform derives chartable series from a sunspot Series.
package transform

import (
	"errors"
	"fmt"

	"github.com/sartorproj/gosunspot/timeseries"
)

// DerivedSeries is a Series extended with one synthetic value per row.
// It belongs to the caller that requested it.
type DerivedSeries struct {
	Base      *timeseries.Series
	Name      string
	Synthetic []float64
}

// Len returns the number of rows.
func (d *DerivedSeries) Len() int {
	return len(d.Synthetic)
}

// Point is one row of a derived series projected onto two axes.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Against pairs each synthetic value with a column of the base row.
// With x set to FractionalDate this yields a smoothed time series; the
// synthetic value is the y axis.
func (d *DerivedSeries) Against(x timeseries.Column) []Point {
	points := make([]Point, len(d.Synthetic))
	for i, v := range d.Synthetic {
		points[i] = Point{X: d.Base.At(i).Value(x), Y: v}
	}
	return points
}

// Scatter pairs each synthetic value, used as the x axis, with a column of the base row.
func (d *DerivedSeries) Scatter(y timeseries.Column) []Point {
	points := make([]Point, len(d.Synthetic))
	for i, v := range d.Synthetic {
		points[i] = Point{X: v, Y: d.Base.At(i).Value(y)}
	}
	return points
}

// DivisionError is returned when a row of a moving average has no samples.
type DivisionError struct {
	Row    int // Row whose sample count was zero, -1 when the series is too short
	Length int
	Window int
}

func (e *DivisionError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("moving average: division by zero: series of length %d", e.Length)
	}
	return fmt.Sprintf("moving average: division by zero at row %d (length %d, window %d)", e.Row, e.Length, e.Window)
}

// ErrInvalidCycleLength is returned for a cycle length that is not a positive finite number.
var ErrInvalidCycleLength = errors.New("cycle length must be a positive finite number")
