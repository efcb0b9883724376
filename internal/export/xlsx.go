package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"claimguard/internal/domain"
)

const sheetName = "Claims Register"

// WriteXLSX renders the claims register as an XLSX workbook and writes it to w.
func WriteXLSX(w io.Writer, rows []domain.ClaimRegisterRow) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	for col, name := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell %d: %w", col, err)
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("writing header %q: %w", name, err)
		}
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(columns), 1)
	if err := f.SetCellStyle(sheetName, "A1", lastCol, headerStyle); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	for i := range rows {
		if err := writeXLSXRow(f, i+2, &rows[i]); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeXLSXRow(f *excelize.File, rowNum int, row *domain.ClaimRegisterRow) error {
	values := []interface{}{
		row.ClaimNumber,
		string(row.Peril),
		string(row.Status),
		row.Address,
		row.County,
		xlsxDate(row.IncidentDate),
		row.DocumentCount,
		row.AvgConfidence,
		row.CreatedAt.Format(time.RFC3339),
	}
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return fmt.Errorf("cell (%d,%d): %w", col, rowNum, err)
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return fmt.Errorf("writing cell %s: %w", cell, err)
		}
	}
	return nil
}

func xlsxDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
