package compare

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Compare"

// WriteXLSX renders the table as a workbook: a header row of trip names and
// one row per attribute. An empty table yields a sheet with the header only.
func WriteXLSX(t Table) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(exportSheet); err != nil {
		return nil, "", fmt.Errorf("compare.WriteXLSX: create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", fmt.Errorf("compare.WriteXLSX: drop default sheet: %w", err)
	}
	if index, err := f.GetSheetIndex(exportSheet); err == nil {
		f.SetActiveSheet(index)
	}

	header := []any{"Attribute"}
	for _, c := range t.Columns {
		header = append(header, c.Name)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, "", fmt.Errorf("compare.WriteXLSX: header: %w", err)
	}

	for i, row := range t.Rows {
		cells := []any{row.Label}
		for _, v := range row.Values {
			cells = append(cells, v)
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(exportSheet, cell, &cells); err != nil {
			return nil, "", fmt.Errorf("compare.WriteXLSX: row %s: %w", row.Key, err)
		}
	}

	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	last, _ := excelize.CoordinatesToCellName(len(t.Columns)+1, 1)
	_ = f.SetCellStyle(exportSheet, "A1", last, style)
	_ = f.SetColWidth(exportSheet, "A", "A", 18)
	if len(t.Columns) > 0 {
		lastCol, _ := excelize.ColumnNumberToName(len(t.Columns) + 1)
		_ = f.SetColWidth(exportSheet, "B", lastCol, 28)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("compare.WriteXLSX: write: %w", err)
	}
	return buf.Bytes(), exportFilename(t), nil
}

func exportFilename(t Table) string {
	ids := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		ids = append(ids, c.TripID)
	}
	if len(ids) == 0 {
		return "trip-compare.xlsx"
	}
	return "trip-compare-" + strings.Join(ids, "-") + ".xlsx"
}
