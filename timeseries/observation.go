package timeseries

import (
	"fmt"
	"strings"
)

// Marker is the definitive/provisional code of an observation.
// The code is kept exactly as it appears in the source file.
type Marker string

const (
	Definitive  Marker = "1"
	Provisional Marker = "0"
)

// IsDefinitive reports whether the value has been finalized by the data provider.
func (m Marker) IsDefinitive() bool {
	return m == Definitive
}

// String returns a human readable label for the marker.
func (m Marker) String() string {
	switch m {
	case Definitive:
		return "definitive"
	case Provisional:
		return "provisional"
	default:
		return string(m)
	}
}

// Observation is one month of the sunspot record.
type Observation struct {
	Year              int     // Calendar year
	Month             int     // Month of year, 1-12
	FractionalDate    float64 // Year plus fractional month offset (middle of month)
	SunspotCount      float64 // Monthly mean total sunspot number; negative means no data
	StandardDeviation float64 // Standard deviation of the daily input values
	ObservationCount  int     // Number of observations used for the monthly mean
	Marker            Marker  // Definitive/provisional marker
}

// Column identifies a numeric field of an Observation.
type Column int

const (
	Year Column = iota
	Month
	FractionalDate
	SunspotCount
	StandardDeviation
	ObservationCount
)

var columnNames = [...]string{
	Year:              "year",
	Month:             "month",
	FractionalDate:    "fractionalDate",
	SunspotCount:      "sunspotCount",
	StandardDeviation: "standardDeviation",
	ObservationCount:  "observationCount",
}

// Columns returns all numeric columns in source-file order.
func Columns() []Column {
	return []Column{Year, Month, FractionalDate, SunspotCount, StandardDeviation, ObservationCount}
}

// String returns the column name used by ParseColumn.
func (c Column) String() string {
	if c < 0 || int(c) >= len(columnNames) {
		return fmt.Sprintf("Column(%d)", int(c))
	}
	return columnNames[c]
}

// UnknownColumnError is returned by ParseColumn for names that do not match a numeric column.
type UnknownColumnError struct {
	Name string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column %q", e.Name)
}

// ParseColumn resolves a column by name, ignoring case.
func ParseColumn(name string) (Column, error) {
	for i, n := range columnNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Column(i), nil
		}
	}
	return 0, &UnknownColumnError{Name: name}
}

// Value returns the numeric value of column c.
func (o Observation) Value(c Column) float64 {
	switch c {
	case Year:
		return float64(o.Year)
	case Month:
		return float64(o.Month)
	case FractionalDate:
		return o.FractionalDate
	case SunspotCount:
		return o.SunspotCount
	case StandardDeviation:
		return o.StandardDeviation
	case ObservationCount:
		return float64(o.ObservationCount)
	}
	panic(fmt.Sprintf("timeseries: invalid column %d", int(c)))
}
