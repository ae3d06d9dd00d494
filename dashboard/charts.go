package dashboard

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/sartorproj/gosunspot/transform"
)

// Chart dimensions in pixels.
const (
	ChartWidth  = 1024
	ChartHeight = 480
)

// ErrNotEnoughPoints is returned when a panel has fewer than two points to draw.
var ErrNotEnoughPoints = errors.New("at least two points are needed to draw a chart")

// ChartError is returned when a panel cannot be rendered.
type ChartError struct {
	Panel string
	Err   error
}

func (e *ChartError) Error() string {
	return fmt.Sprintf("render %s chart: %v", e.Panel, e.Err)
}

func (e *ChartError) Unwrap() error {
	return e.Err
}

var (
	rawColor     = drawing.ColorFromHex("636EFA")
	smoothColor  = drawing.ColorFromHex("FFD700")
	scatterColor = drawing.ColorFromHex("636EFA")
	profileColor = drawing.ColorFromHex("EF553B")
)

func yearFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return ""
}

func split(points []transform.Point) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}

// RenderSmoothed draws the monthly average and its moving average as a PNG.
func RenderSmoothed(w io.Writer, view *SmoothedView) error {
	if len(view.Raw) < 2 {
		return &ChartError{Panel: panelSmoothed, Err: ErrNotEnoughPoints}
	}

	rawX, rawY := split(view.Raw)
	maX, maY := split(view.Smoothed)

	ch := chart.Chart{
		Title:      "Monthly Average Sunspots",
		Width:      ChartWidth,
		Height:     ChartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: "Year", ValueFormatter: yearFormatter},
		YAxis:      chart.YAxis{Name: "Average Monthly Sunspots"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Monthly Average",
				XValues: rawX,
				YValues: rawY,
				Style:   chart.Style{StrokeColor: rawColor, StrokeWidth: 1},
			},
			chart.ContinuousSeries{
				Name:    "Moving Average",
				XValues: maX,
				YValues: maY,
				Style:   chart.Style{StrokeColor: smoothColor, StrokeWidth: 2},
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return render(w, panelSmoothed, ch)
}

// RenderCycle draws the sunspot count against cycle year as a PNG scatter,
// with the mean profile drawn over it.
func RenderCycle(w io.Writer, view *CycleView) error {
	if len(view.Points) < 2 {
		return &ChartError{Panel: panelCycle, Err: ErrNotEnoughPoints}
	}

	xs, ys := split(view.Points)
	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "Sunspots",
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    2,
				DotColor:    scatterColor,
			},
		},
	}

	var px, py []float64
	for _, b := range view.Profile {
		if b.Count == 0 {
			continue
		}
		px = append(px, b.Center())
		py = append(py, b.Mean)
	}
	if len(px) >= 2 {
		series = append(series, chart.ContinuousSeries{
			Name:    "Mean Profile",
			XValues: px,
			YValues: py,
			Style:   chart.Style{StrokeColor: profileColor, StrokeWidth: 2},
		})
	}

	ch := chart.Chart{
		Title:      "Sunspot Cycle: " + strconv.FormatFloat(view.Params.CycleLength, 'g', -1, 64),
		Width:      ChartWidth,
		Height:     ChartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: "Year"},
		YAxis:      chart.YAxis{Name: "Number of Sunspots"},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return render(w, panelCycle, ch)
}

// render buffers the PNG so a failed render writes nothing.
func render(w io.Writer, panel string, ch chart.Chart) error {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return &ChartError{Panel: panel, Err: err}
	}
	_, err := buf.WriteTo(w)
	return err
}
