// Package export serializes a finished analysis report to disk. Exporters
// overwrite their destination unconditionally and are only invoked after a
// run has fully succeeded.
package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/gerhard-ee/schemascan/pkg/report"
)

// utf8BOM makes the UTF-8 CSV open correctly in spreadsheet applications.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ToCSV writes the report to path as UTF-8 CSV with a byte-order mark.
func ToCSV(rep *report.Report, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %v", err)
	}
	defer file.Close()

	if _, err := file.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write byte-order mark: %v", err)
	}

	w := csv.NewWriter(file)
	if err := w.Write(report.Header); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}
	for _, row := range rep.Rows {
		record := []string{row.Table, row.Column, row.Type, row.Nullable, row.Samples}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %v", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %v", err)
	}
	return nil
}
