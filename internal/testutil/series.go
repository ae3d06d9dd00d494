package testutil

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/sartorproj/gosunspot/timeseries"
)

// SampleSeries returns a monthly series from firstYear through lastYear whose
// sunspot count follows an 11-year sine wave between 10 and 150.
func SampleSeries(t testing.TB, firstYear, lastYear int) *timeseries.Series {
	t.Helper()

	var obs []timeseries.Observation
	i := 0
	for year := firstYear; year <= lastYear; year++ {
		for month := 1; month <= 12; month++ {
			date := float64(year) + (float64(month)-0.5)/12
			obs = append(obs, timeseries.Observation{
				Year:              year,
				Month:             month,
				FractionalDate:    math.Round(date*1000) / 1000,
				SunspotCount:      math.Round((80+70*math.Sin(2*math.Pi*float64(i)/132))*10) / 10,
				StandardDeviation: 5,
				ObservationCount:  30,
				Marker:            timeseries.Definitive,
			})
			i++
		}
	}

	series := timeseries.New(obs)
	series.Name = "sunspots"
	return series
}

// WriteSeriesFile saves series to a semicolon file in a temp dir and returns its path.
func WriteSeriesFile(t testing.TB, series *timeseries.Series) string {
	t.Helper()

	var buf bytes.Buffer
	if err := timeseries.SaveCSV(&buf, series); err != nil {
		t.Fatalf("save series: %v", err)
	}

	path := filepath.Join(t.TempDir(), "SN_m_tot_V2.0.csv")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("write series: %v", err)
	}
	return path
}
