package dashboard

import (
	"fmt"
	"math"
	"strconv"
)

// Control describes one numeric input of the page.
type Control struct {
	Name    string  `json:"name"`
	Label   string  `json:"label"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

// Integral reports whether the control only accepts whole numbers.
func (c Control) Integral() bool {
	return c.Step == math.Trunc(c.Step) && c.Step >= 1
}

// Check validates v against the control's bounds.
func (c Control) Check(v float64) error {
	if math.IsNaN(v) || v < c.Min || v > c.Max {
		return &ValidationError{
			Field:  c.Name,
			Value:  strconv.FormatFloat(v, 'g', -1, 64),
			Reason: fmt.Sprintf("must be between %g and %g", c.Min, c.Max),
		}
	}
	if c.Integral() && v != math.Trunc(v) {
		return &ValidationError{
			Field:  c.Name,
			Value:  strconv.FormatFloat(v, 'g', -1, 64),
			Reason: "must be a whole number",
		}
	}
	return nil
}

// Controls is the full set of page inputs with their ranges and defaults.
type Controls struct {
	Telescopes       []string `json:"telescopes"`
	DefaultTelescope string   `json:"default_telescope"`
	CycleLength      Control  `json:"cycle_length"`
	MinYear          Control  `json:"min_year"`
	MaxYear          Control  `json:"max_year"`
	Window           Control  `json:"window"`
}

// DefaultControls returns the inputs of the sunspot page.
func DefaultControls() Controls {
	return Controls{
		Telescopes:       TelescopeNames(),
		DefaultTelescope: DefaultTelescope,
		CycleLength: Control{
			Name: "cycle_length", Label: "Cycle Length (years)",
			Min: 9, Max: 13, Step: 0.1, Default: 11,
		},
		MinYear: Control{
			Name: "min_year", Label: "Earliest Year to Include",
			Min: 1749, Max: 1950, Step: 1, Default: 1950,
		},
		MaxYear: Control{
			Name: "max_year", Label: "Latest Year to Include",
			Min: 1951, Max: 2022, Step: 1, Default: 2020,
		},
		Window: Control{
			Name: "window", Label: "Window for the Moving Average",
			Min: 5, Max: 10, Step: 1, Default: 10,
		},
	}
}

// SmoothingParams selects the year range and window of the smoothed panel.
type SmoothingParams struct {
	MinYear int `json:"min_year"`
	MaxYear int `json:"max_year"`
	Window  int `json:"window"`
}

// CycleParams selects the cycle length of the overlay panel.
type CycleParams struct {
	CycleLength float64 `json:"cycle_length"`
}

// DefaultSmoothingParams returns the initial smoothed panel parameters.
func (c Controls) DefaultSmoothingParams() SmoothingParams {
	return SmoothingParams{
		MinYear: int(c.MinYear.Default),
		MaxYear: int(c.MaxYear.Default),
		Window:  int(c.Window.Default),
	}
}

// DefaultCycleParams returns the initial overlay panel parameters.
func (c Controls) DefaultCycleParams() CycleParams {
	return CycleParams{CycleLength: c.CycleLength.Default}
}

// ValidateSmoothing checks p against the year and window controls.
func (c Controls) ValidateSmoothing(p SmoothingParams) error {
	if err := c.MinYear.Check(float64(p.MinYear)); err != nil {
		return err
	}
	if err := c.MaxYear.Check(float64(p.MaxYear)); err != nil {
		return err
	}
	return c.Window.Check(float64(p.Window))
}

// ValidateCycle checks p against the cycle length control.
func (c Controls) ValidateCycle(p CycleParams) error {
	return c.CycleLength.Check(p.CycleLength)
}

// ValidationError reports a page input outside its control's domain.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}
