package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// renderer writes command results as a table or as JSON.
type renderer struct {
	w      io.Writer
	format string
}

func newRenderer(w io.Writer, format string) *renderer {
	if format != FormatJSON {
		format = FormatTable
	}
	return &renderer{w: w, format: format}
}

// JSON reports whether results are written as JSON.
func (r *renderer) JSON() bool {
	return r.format == FormatJSON
}

func (r *renderer) writeJSON(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *renderer) writeTable(title string, header table.Row, rows []table.Row, footer table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleLight)
	if title != "" {
		t.SetTitle(title)
	}
	t.AppendHeader(header)
	t.AppendRows(rows)
	if footer != nil {
		t.AppendFooter(footer)
	}
	t.Render()
}

// num formats a float for table cells.
func num(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func date(v float64) string {
	return fmt.Sprintf("%.3f", v)
}
