package employee

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
)

// LoadEmployee reads the named worksheet from an Excel workbook and
// returns the validated record. The sheet is read as two columns, label
// then value; rows with a blank label are dropped and a duplicated label
// keeps its last occurrence. Any resolution or validation failure is
// reported once, wrapped with the sheet identity, and yields no record.
func LoadEmployee(path, sheet string) (*Employee, error) {
	raw, err := readLabelValueRows(path, sheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}

	fields, err := ResolveFields(raw)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}

	e := NewEmployee(fields)
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	return e, nil
}

// readLabelValueRows builds the raw label→value mapping from the first
// two columns of the sheet.
func readLabelValueRows(path, sheet string) (map[string]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xls") {
		return readLegacyRows(path, sheet)
	}
	return readWorkbookRows(path, sheet)
}

// readWorkbookRows handles .xlsx/.xlsm workbooks. Cells are read raw so
// native date cells surface as Excel serials for ParseDate.
func readWorkbookRows(path, sheet string) (map[string]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	raw := make(map[string]string, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		label := strings.ToLower(strings.TrimSpace(row[0]))
		if label == "" {
			continue
		}
		var value string
		if len(row) > 1 {
			value = row[1]
		}
		raw[label] = value
	}
	return raw, nil
}

// readLegacyRows handles .xls (BIFF) workbooks via xlsReader.
func readLegacyRows(path, sheet string) (map[string]string, error) {
	wb, err := xls.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}

	for i := 0; i < wb.GetNumberSheets(); i++ {
		sh, err := wb.GetSheet(i)
		if err != nil || sh.GetName() != sheet {
			continue
		}

		raw := make(map[string]string)
		for rowIdx := 0; rowIdx < sh.GetNumberRows(); rowIdx++ {
			row, err := sh.GetRow(rowIdx)
			if err != nil || row == nil {
				continue
			}
			cols := row.GetCols()
			if len(cols) == 0 {
				continue
			}
			label := strings.ToLower(strings.TrimSpace(cols[0].GetString()))
			if label == "" {
				continue
			}
			var value string
			if len(cols) > 1 {
				value = cols[1].GetString()
			}
			raw[label] = value
		}
		return raw, nil
	}
	return nil, fmt.Errorf("worksheet not found")
}
