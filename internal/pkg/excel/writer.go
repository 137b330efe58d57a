package excel

import (
	"bytes"
	"fmt"

	"github.com/tealeg/xlsx"
)

// Sheet is one tabular sheet of an export workbook.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

// WriteWorkbook renders the sheets into a single xlsx workbook.
func WriteWorkbook(sheets []Sheet) ([]byte, error) {
	file := xlsx.NewFile()

	for _, s := range sheets {
		sheet, err := file.AddSheet(s.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to add sheet %q: %w", s.Name, err)
		}

		headerRow := sheet.AddRow()
		for _, h := range s.Header {
			headerRow.AddCell().Value = h
		}

		for _, values := range s.Rows {
			row := sheet.AddRow()
			for _, v := range values {
				row.AddCell().Value = v
			}
		}
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
