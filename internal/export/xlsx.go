package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/gerhard-ee/schemascan/pkg/report"
)

const sheetName = "Schema Analysis"

// ToXLSX writes the report to path as a single-sheet workbook.
func ToXLSX(rep *report.Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %v", err)
	}

	header := make([]interface{}, len(report.Header))
	for i, h := range report.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}

	for i, row := range rep.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to locate row cell: %v", err)
		}
		values := []interface{}{row.Table, row.Column, row.Type, row.Nullable, row.Samples}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row: %v", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %v", err)
	}
	return nil
}
