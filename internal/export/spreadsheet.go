package export

import (
	"io"

	"adminconsole/internal/listing"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Spreadsheet writes a single-sheet xlsx workbook with a bold header row.
type Spreadsheet struct{}

func (Spreadsheet) Encode(w io.Writer, title string, t listing.Table) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := sheetName(title)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return errors.Wrap(err, "rename sheet")
	}

	if err := setRow(f, sheet, 1, t.Headers); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "header style")
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return errors.Wrap(err, "apply header style")
	}

	for i, row := range t.Rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "write workbook")
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.Wrapf(err, "row %d", row)
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return errors.Wrapf(f.SetSheetRow(sheet, cell, &cells), "write row %d", row)
}

// sheetName keeps title within excel's 31 character limit.
func sheetName(title string) string {
	if title == "" {
		return "Sheet1"
	}
	r := []rune(title)
	if len(r) > 31 {
		r = r[:31]
	}
	return string(r)
}
