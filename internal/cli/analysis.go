package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sartorproj/gosunspot/internal/logging"
	"github.com/sartorproj/gosunspot/stats"
	"github.com/sartorproj/gosunspot/timeseries"
	"github.com/sartorproj/gosunspot/transform"
)

// CycleOptions holds options for the cycle command.
type CycleOptions struct {
	MinYears float64
	MaxYears float64
}

func newCycleCommand() *cobra.Command {
	opts := &CycleOptions{}

	cmd := &cobra.Command{
		Use:   "cycle",
		Short: "Estimate the solar cycle length",
		Long: `Estimate the solar cycle length as the lag, between --min-years and
--max-years, at which the monthly sunspot count is most autocorrelated.`,
		Example: `  sunspots cycle
  sunspots cycle --min-years 8 --max-years 14 -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCycle(cmd, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.MinYears, "min-years", 9, "Shortest cycle to consider")
	cmd.Flags().Float64Var(&opts.MaxYears, "max-years", 13, "Longest cycle to consider")

	return cmd
}

func runCycle(cmd *cobra.Command, opts *CycleOptions) error {
	series, err := loadSeries(cmd.Context())
	if err != nil {
		return err
	}

	est, err := stats.EstimateCycle(series, opts.MinYears, opts.MaxYears)
	if err != nil {
		return fmt.Errorf("cycle estimate: %w", err)
	}

	r := getRenderer(cmd)
	if r.JSON() {
		return r.writeJSON(est)
	}
	r.writeTable(
		"Estimated solar cycle",
		table.Row{"Years", "Lag (months)", "Autocorrelation"},
		[]table.Row{{num(est.Years, 2), est.Lag, num(est.Correlation, 3)}},
		nil,
	)
	return nil
}

// errEmptySeries is returned by commands that need at least one observation.
var errEmptySeries = errors.New("no observations in the sunspot file")

// ColumnSummary holds descriptive statistics of one column.
type ColumnSummary struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

func summarize(series *timeseries.Series) []ColumnSummary {
	columns := timeseries.Columns()
	out := make([]ColumnSummary, len(columns))
	for i, c := range columns {
		out[i] = ColumnSummary{
			Column: c.String(),
			Count:  series.Len(),
			Mean:   series.Mean(c),
			Std:    series.Std(c),
			Min:    series.Min(c),
			Median: series.Median(c),
			Max:    series.Max(c),
		}
	}
	return out
}

func provisionalRows(series *timeseries.Series) int {
	n := 0
	for i := 0; i < series.Len(); i++ {
		if !series.At(i).Marker.IsDefinitive() {
			n++
		}
	}
	return n
}

func newSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Per-column statistics of the sunspot file",
		RunE:  runSummary,
	}
}

func runSummary(cmd *cobra.Command, _ []string) error {
	series, err := loadSeries(cmd.Context())
	if err != nil {
		return err
	}

	if series.Len() == 0 {
		return errEmptySeries
	}
	summary := summarize(series)

	r := getRenderer(cmd)
	if r.JSON() {
		return r.writeJSON(summary)
	}

	rows := make([]table.Row, len(summary))
	for i, s := range summary {
		rows[i] = table.Row{s.Column, s.Count, num(s.Mean, 3), num(s.Std, 3), num(s.Min, 3), num(s.Median, 3), num(s.Max, 3)}
	}
	r.writeTable(
		series.Name,
		table.Row{"Column", "Count", "Mean", "Std", "Min", "Median", "Max"},
		rows,
		table.Row{"Provisional", provisionalRows(series), "", "", "", "", ""},
	)
	return nil
}

// Lags used by the report command.
const (
	ReportACFLags      = 240
	ReportLjungBoxLags = 24
)

// Report holds the analysis exported by the report command.
type Report struct {
	Name            string                 `json:"name"`
	NObs            int                    `json:"n_obs"`
	FirstDate       float64                `json:"first_date"`
	LastDate        float64                `json:"last_date"`
	Provisional     int                    `json:"provisional"`
	Summary         []ColumnSummary        `json:"summary"`
	ACF             *stats.ACFResult       `json:"acf,omitempty"`
	SignificantLags []int                  `json:"significant_lags,omitempty"`
	LjungBox        *stats.LjungBoxResult  `json:"ljung_box,omitempty"`
	Cycle           *stats.CycleEstimate   `json:"cycle,omitempty"`
	Profile         []transform.ProfileBin `json:"profile,omitempty"`
	Warnings        []string               `json:"warnings,omitempty"`
}

// ReportOptions holds options for the report command.
type ReportOptions struct {
	Out  string
	Bins int
}

func newReportCommand() *cobra.Command {
	opts := &ReportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export a JSON analysis report",
		Long: `Export per-column statistics, the autocorrelation of the monthly
count, the estimated cycle length and the mean cycle profile as JSON.`,
		Example: `  sunspots report --out sunspot_report.json
  sunspots report --out - | jq .cycle`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Out, "out", "sunspot_report.json", "Output file, - for stdout")
	cmd.Flags().IntVar(&opts.Bins, "bins", 44, "Bins of the mean cycle profile")

	return cmd
}

// buildReport runs every analysis that the series supports. Analyses that
// fail are recorded as warnings instead of aborting the report.
func buildReport(series *timeseries.Series, bins int) *Report {
	report := &Report{
		Name:        series.Name,
		NObs:        series.Len(),
		Provisional: provisionalRows(series),
		Summary:     summarize(series),
	}
	if series.Len() > 0 {
		report.FirstDate = series.At(0).FractionalDate
		report.LastDate = series.At(series.Len() - 1).FractionalDate
	}

	report.ACF = stats.ACFWithConfidence(series, timeseries.SunspotCount, ReportACFLags)
	if report.ACF != nil {
		report.SignificantLags = stats.SignificantLags(report.ACF.Values, report.ACF.ConfBounds)
	} else {
		report.Warnings = append(report.Warnings, "autocorrelation: sunspot count is constant")
	}
	report.LjungBox = stats.LjungBox(series, timeseries.SunspotCount, ReportLjungBoxLags)

	est, err := stats.EstimateCycle(series, 9, 13)
	if err != nil {
		report.Warnings = append(report.Warnings, "cycle: "+err.Error())
		return report
	}
	report.Cycle = est

	folded, err := transform.CycleFold(series, est.Years)
	if err == nil {
		report.Profile, err = transform.CycleProfile(folded, timeseries.SunspotCount, est.Years, bins)
	}
	if err != nil {
		report.Warnings = append(report.Warnings, "profile: "+err.Error())
	}
	return report
}

func runReport(cmd *cobra.Command, opts *ReportOptions) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	series, err := loadSeries(ctx)
	if err != nil {
		return err
	}

	if series.Len() == 0 {
		return errEmptySeries
	}
	report := buildReport(series, opts.Bins)
	for _, w := range report.Warnings {
		logger.Warn("report incomplete", "detail", w)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if opts.Out == "-" {
		_, err = cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(opts.Out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported report on %d observations to %s\n", report.NObs, opts.Out)
	return nil
}
