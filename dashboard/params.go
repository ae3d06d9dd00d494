package dashboard

import (
	"encoding/json"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names of the chart and api endpoints.
const (
	paramMinYear     = "min_year"
	paramMaxYear     = "max_year"
	paramWindow      = "window"
	paramCycleLength = "cycle_length"
	paramTelescope   = "telescope"
)

func queryFloat(q url.Values, key string, def float64) (float64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ValidationError{Field: key, Value: raw, Reason: "not a number"}
	}
	return v, nil
}

func queryInt(q url.Values, key string, def int) (int, error) {
	v, err := queryFloat(q, key, float64(def))
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{Field: key, Value: q.Get(key), Reason: "must be a whole number"}
	}
	return int(v), nil
}

// smoothingFromQuery reads smoothed panel parameters, falling back to the defaults.
func smoothingFromQuery(q url.Values, c Controls) (SmoothingParams, error) {
	p := c.DefaultSmoothingParams()
	var err error
	if p.MinYear, err = queryInt(q, paramMinYear, p.MinYear); err != nil {
		return p, err
	}
	if p.MaxYear, err = queryInt(q, paramMaxYear, p.MaxYear); err != nil {
		return p, err
	}
	if p.Window, err = queryInt(q, paramWindow, p.Window); err != nil {
		return p, err
	}
	return p, nil
}

func cycleFromQuery(q url.Values, c Controls) (CycleParams, error) {
	p := c.DefaultCycleParams()
	var err error
	p.CycleLength, err = queryFloat(q, paramCycleLength, p.CycleLength)
	return p, err
}

// smoothingQuery encodes p for the chart endpoint.
func smoothingQuery(p SmoothingParams) string {
	q := url.Values{}
	q.Set(paramMinYear, strconv.Itoa(p.MinYear))
	q.Set(paramMaxYear, strconv.Itoa(p.MaxYear))
	q.Set(paramWindow, strconv.Itoa(p.Window))
	return q.Encode()
}

func cycleQuery(p CycleParams) string {
	q := url.Values{}
	q.Set(paramCycleLength, strconv.FormatFloat(p.CycleLength, 'g', -1, 64))
	return q.Encode()
}

// signalNumber accepts a JSON number or a numeric string, since bound
// inputs may report their value as text.
type signalNumber float64

func (n *signalNumber) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = signalNumber(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return &ValidationError{Field: "signal", Value: s, Reason: "not a number"}
	}
	*n = signalNumber(f)
	return nil
}

// PageSignals is the client state sent by the page with every SSE request.
type PageSignals struct {
	Telescope   string       `json:"telescope"`
	CycleLength signalNumber `json:"cycleLength"`
	MinYear     signalNumber `json:"minYear"`
	MaxYear     signalNumber `json:"maxYear"`
	Window      signalNumber `json:"window"`
}

// defaultSignals is the initial client state.
func defaultSignals(c Controls) PageSignals {
	return PageSignals{
		Telescope:   c.DefaultTelescope,
		CycleLength: signalNumber(c.CycleLength.Default),
		MinYear:     signalNumber(c.MinYear.Default),
		MaxYear:     signalNumber(c.MaxYear.Default),
		Window:      signalNumber(c.Window.Default),
	}
}

func wholeSignal(field string, v signalNumber) (int, error) {
	f := float64(v)
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, &ValidationError{Field: field, Value: strconv.FormatFloat(f, 'g', -1, 64), Reason: "must be a whole number"}
	}
	return int(f), nil
}

// Smoothing converts the signals to smoothed panel parameters.
func (s PageSignals) Smoothing() (SmoothingParams, error) {
	var (
		p   SmoothingParams
		err error
	)
	if p.MinYear, err = wholeSignal(paramMinYear, s.MinYear); err != nil {
		return p, err
	}
	if p.MaxYear, err = wholeSignal(paramMaxYear, s.MaxYear); err != nil {
		return p, err
	}
	if p.Window, err = wholeSignal(paramWindow, s.Window); err != nil {
		return p, err
	}
	return p, nil
}

// Cycle converts the signals to overlay panel parameters.
func (s PageSignals) Cycle() CycleParams {
	return CycleParams{CycleLength: float64(s.CycleLength)}
}
