package timeseries

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// FieldCount is the number of fields in one row of the monthly sunspot file.
const FieldCount = 7

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	Delimiter rune   // Field delimiter (default: ';')
	HasHeader bool   // Whether the first row is a header (default: false)
	SkipRows  int    // Number of rows to skip at start
	Name      string // Name given to the loaded series
}

// DefaultCSVOptions returns options matching the SILSO monthly mean total sunspot file.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		Delimiter: ';',
		HasHeader: false,
		Name:      "sunspots",
	}
}

// ParseError reports a malformed row. Loading stops at the first one.
type ParseError struct {
	Line   int    // 1-based line in the input, 0 if unknown
	Column string // Offending column, empty for row-level problems
	Value  string // Offending raw value
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Column != "":
		return fmt.Sprintf("line %d: column %s: invalid value %q: %v", e.Line, e.Column, e.Value, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	default:
		return e.Err.Error()
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var (
	// ErrFieldCount is wrapped by ParseError when a row has the wrong number of fields.
	ErrFieldCount = errors.New("wrong number of fields")
	// ErrNonFinite is wrapped by ParseError for NaN or infinite values.
	// Missing counts are written as -1 in the file, never as NaN.
	ErrNonFinite = errors.New("value is not finite")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Load loads the sunspot series from a file.
func Load(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadFromReader(file, opts)
}

// LoadFromReader loads the sunspot series from an io.Reader.
// Any malformed row aborts the load; no partial series is returned.
func LoadFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // counted below so the error carries our type

	skip := opts.SkipRows
	if opts.HasHeader {
		skip++
	}
	for i := 0; i < skip; i++ {
		if _, err := reader.Read(); err != nil {
			if err == io.EOF {
				break
			}
			return nil, wrapReadError(err)
		}
	}

	var obs []Observation
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapReadError(err)
		}

		line, _ := reader.FieldPos(0)
		o, err := parseRecord(record, line)
		if err != nil {
			return nil, err
		}
		obs = append(obs, o)
	}

	return &Series{obs: obs, Name: opts.Name}, nil
}

func wrapReadError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Line: csvErr.Line, Err: csvErr.Err}
	}
	return err
}

func parseRecord(record []string, line int) (Observation, error) {
	if len(record) != FieldCount {
		return Observation{}, &ParseError{
			Line: line,
			Err:  fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(record), FieldCount),
		}
	}

	p := fieldParser{record: record, line: line}
	o := Observation{
		Year:              p.parseInt(0, Year),
		Month:             p.parseInt(1, Month),
		FractionalDate:    p.parseFloat(2, FractionalDate),
		SunspotCount:      p.parseFloat(3, SunspotCount),
		StandardDeviation: p.parseFloat(4, StandardDeviation),
		ObservationCount:  p.parseInt(5, ObservationCount),
		Marker:            Marker(strings.TrimSpace(record[6])),
	}
	if p.err != nil {
		return Observation{}, p.err
	}
	return o, nil
}

// fieldParser keeps the first conversion error of a record.
type fieldParser struct {
	record []string
	line   int
	err    error
}

func (p *fieldParser) parseInt(idx int, c Column) int {
	if p.err != nil {
		return 0
	}
	raw := strings.TrimSpace(p.record[idx])
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.err = &ParseError{Line: p.line, Column: c.String(), Value: raw, Err: err}
	}
	return v
}

func (p *fieldParser) parseFloat(idx int, c Column) float64 {
	if p.err != nil {
		return 0
	}
	raw := strings.TrimSpace(p.record[idx])
	v, err := strconv.ParseFloat(raw, 64)
	if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
		err = ErrNonFinite
	}
	if err != nil {
		p.err = &ParseError{Line: p.line, Column: c.String(), Value: raw, Err: err}
	}
	return v
}

// SaveCSV writes a series in the same headerless semicolon format it is loaded from.
// Values keep the SILSO precision unless they carry more digits, in which case
// they are written in full.
func SaveCSV(w io.Writer, series *Series) error {
	writer := bufio.NewWriter(w)

	for _, o := range series.obs {
		fields := []string{
			strconv.Itoa(o.Year),
			fmt.Sprintf("%02d", o.Month),
			formatFloat(o.FractionalDate, 3),
			formatFloat(o.SunspotCount, 1),
			formatFloat(o.StandardDeviation, 1),
			strconv.Itoa(o.ObservationCount),
			string(o.Marker),
		}
		if _, err := writer.WriteString(strings.Join(fields, ";") + "\n"); err != nil {
			return err
		}
	}

	return writer.Flush()
}

// formatFloat writes v with prec decimals when that loses nothing.
func formatFloat(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if parsed, err := strconv.ParseFloat(s, 64); err == nil && parsed == v {
		return s
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
