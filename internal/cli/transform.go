package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sartorproj/gosunspot/internal/logging"
	"github.com/sartorproj/gosunspot/timeseries"
	"github.com/sartorproj/gosunspot/transform"
)

// SmoothOptions holds options for the smooth command.
type SmoothOptions struct {
	Window  int
	MinYear int
	MaxYear int
	Export  string
}

// SmoothedRow is one row of the smooth command output.
type SmoothedRow struct {
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	Date          float64 `json:"date"`
	Sunspots      float64 `json:"sunspots"`
	MovingAverage float64 `json:"moving_average"`
}

func newSmoothCommand() *cobra.Command {
	opts := &SmoothOptions{}

	cmd := &cobra.Command{
		Use:   "smooth",
		Short: "Moving average of the monthly sunspot count",
		Long: `Filter the record to a year range and smooth the sunspot count.

For row i and every offset j in [0, window), row i-j is a sample when
i-j > 0 and row i+j is a sample when i+j < n-1, where n is the number of
rows in the range. The first row is therefore never a left sample, the last
row is never a right sample, and interior rows count themselves twice at
j = 0. Each smoothed value is the mean of its samples.`,
		Example: `  # Dashboard defaults
  sunspots smooth --window 10 --min-year 1950 --max-year 2020

  # Save the filtered rows for another tool
  sunspots smooth --min-year 2000 --max-year 2010 --export recent.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSmooth(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Window, "window", 10, "Moving average window")
	cmd.Flags().IntVar(&opts.MinYear, "min-year", 1950, "Earliest year to include")
	cmd.Flags().IntVar(&opts.MaxYear, "max-year", 2020, "Latest year to include")
	cmd.Flags().StringVar(&opts.Export, "export", "", "Write the filtered rows to this file in the input format")

	return cmd
}

func runSmooth(cmd *cobra.Command, opts *SmoothOptions) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	series, err := loadSeries(ctx)
	if err != nil {
		return err
	}

	filtered := series.FilterByRange(timeseries.Year, timeseries.Between(float64(opts.MinYear), float64(opts.MaxYear)))
	logger.Debug("filtered series", "min_year", opts.MinYear, "max_year", opts.MaxYear, "rows", filtered.Len())

	if opts.Export != "" {
		if err := exportSeries(opts.Export, filtered); err != nil {
			return err
		}
		logger.Info("exported filtered rows", "path", opts.Export, "rows", filtered.Len())
	}

	ma, err := transform.MovingAverage(filtered, timeseries.SunspotCount, opts.Window)
	if err != nil {
		return err
	}

	rows := make([]SmoothedRow, ma.Len())
	for i, v := range ma.Synthetic {
		o := filtered.At(i)
		rows[i] = SmoothedRow{
			Year:          o.Year,
			Month:         o.Month,
			Date:          o.FractionalDate,
			Sunspots:      o.SunspotCount,
			MovingAverage: v,
		}
	}

	r := getRenderer(cmd)
	if r.JSON() {
		return r.writeJSON(rows)
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row{row.Year, row.Month, date(row.Date), num(row.Sunspots, 1), num(row.MovingAverage, 2)}
	}
	r.writeTable(
		fmt.Sprintf("Moving average, window %d, %d-%d", opts.Window, opts.MinYear, opts.MaxYear),
		table.Row{"Year", "Month", "Date", "Sunspots", "Moving Average"},
		tableRows,
		table.Row{"", "", "Rows", len(rows), ""},
	)
	return nil
}

func exportSeries(path string, series *timeseries.Series) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	if err := timeseries.SaveCSV(f, series); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// FoldOptions holds options for the fold command.
type FoldOptions struct {
	Length float64
	Bins   int
}

// FoldedRow is one row of the fold command output.
type FoldedRow struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	Date      float64 `json:"date"`
	Sunspots  float64 `json:"sunspots"`
	CycleYear float64 `json:"cycle_year"`
}

func newFoldCommand() *cobra.Command {
	opts := &FoldOptions{}

	cmd := &cobra.Command{
		Use:   "fold",
		Short: "Fold the record onto one solar cycle",
		Long: `Map every fractional date onto [0, length) so successive cycles
overlay each other. With --bins, print the mean sunspot count per slice of
the cycle instead of every row.`,
		Example: `  sunspots fold --length 11
  sunspots fold --length 10.8 --bins 22 -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFold(cmd, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.Length, "length", 11, "Cycle length in years")
	cmd.Flags().IntVar(&opts.Bins, "bins", 0, "Print a mean profile with this many bins")

	return cmd
}

func runFold(cmd *cobra.Command, opts *FoldOptions) error {
	series, err := loadSeries(cmd.Context())
	if err != nil {
		return err
	}

	folded, err := transform.CycleFold(series, opts.Length)
	if err != nil {
		return err
	}

	r := getRenderer(cmd)

	if opts.Bins > 0 {
		profile, err := transform.CycleProfile(folded, timeseries.SunspotCount, opts.Length, opts.Bins)
		if err != nil {
			return err
		}
		if r.JSON() {
			return r.writeJSON(profile)
		}
		tableRows := make([]table.Row, len(profile))
		for i, b := range profile {
			tableRows[i] = table.Row{num(b.Start, 2), num(b.End, 2), b.Count, num(b.Mean, 1)}
		}
		r.writeTable(
			fmt.Sprintf("Mean cycle profile, length %g", opts.Length),
			table.Row{"From", "To", "Rows", "Mean Sunspots"},
			tableRows,
			nil,
		)
		return nil
	}

	rows := make([]FoldedRow, folded.Len())
	for i, v := range folded.Synthetic {
		o := series.At(i)
		rows[i] = FoldedRow{
			Year:      o.Year,
			Month:     o.Month,
			Date:      o.FractionalDate,
			Sunspots:  o.SunspotCount,
			CycleYear: v,
		}
	}

	if r.JSON() {
		return r.writeJSON(rows)
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row{row.Year, row.Month, date(row.Date), num(row.Sunspots, 1), num(row.CycleYear, 3)}
	}
	r.writeTable(
		fmt.Sprintf("Sunspot Cycle: %g", opts.Length),
		table.Row{"Year", "Month", "Date", "Sunspots", "Cycle Year"},
		tableRows,
		table.Row{"", "", "Rows", len(rows), ""},
	)
	return nil
}
