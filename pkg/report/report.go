package report

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// SampleDelimiter joins the sampled values of one column into a single
// display string.
const SampleDelimiter = ", "

// Header is the fixed output column order used by every exporter.
var Header = []string{"table", "column", "type", "nullable", "samples"}

// Row describes one (table, column) pair of the analyzed schema.
type Row struct {
	Table    string
	Column   string
	Type     string
	Nullable string
	Samples  string
}

// Report is the ordered result of a schema analysis: one Row per column,
// in table order, then ordinal column position within each table.
type Report struct {
	Rows []Row
}

// Append adds a row to the end of the report.
func (r *Report) Append(row Row) {
	r.Rows = append(r.Rows, row)
}

// Len returns the number of rows in the report.
func (r *Report) Len() int {
	return len(r.Rows)
}

// JoinSamples renders sampled values as a single delimited string.
// An empty sample set yields an empty string.
func JoinSamples(values []string) string {
	return strings.Join(values, SampleDelimiter)
}

// String renders the report as an aligned text table for console display.
func (r *Report) String() string {
	var buf strings.Builder
	w := tabwriter.NewWriter(&buf, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(Header, "\t"))
	for _, row := range r.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			row.Table, row.Column, row.Type, row.Nullable, row.Samples)
	}
	w.Flush()
	return buf.String()
}
