package excel

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/scg-heim/heim-backend-go/internal/domain/roster"
)

// CellKind tags what a cell held in the source workbook.
type CellKind int

const (
	KindEmpty CellKind = iota
	KindText
	KindNumber
	KindTime
)

// Cell is one decoded cell. Text always carries the raw string form; Number
// is set for KindNumber, Time for KindTime.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Time   time.Time
}

// Row maps a raw column header to the cell under it.
type Row map[string]Cell

// Decode reads the first sheet of an xlsx workbook into rows keyed by the
// header row. Cells are read raw, so date cells arrive as their serial
// numbers. An empty workbook decodes to zero rows; an unreadable byte
// stream wraps roster.ErrDecode.
func Decode(data []byte) ([]Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", roster.ErrDecode, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	raw, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", roster.ErrDecode, err)
	}
	if len(raw) < 2 {
		return nil, nil
	}

	headers := raw[0]
	rows := make([]Row, 0, len(raw)-1)
	for _, line := range raw[1:] {
		row := make(Row, len(headers))
		empty := true
		for i, header := range headers {
			if strings.TrimSpace(header) == "" {
				continue
			}
			var value string
			if i < len(line) {
				value = line[i]
			}
			cell := parseCell(value)
			if cell.Kind != KindEmpty {
				empty = false
			}
			row[header] = cell
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func parseCell(value string) Cell {
	if strings.TrimSpace(value) == "" {
		return Cell{Kind: KindEmpty}
	}
	if n, err := strconv.ParseFloat(value, 64); err == nil {
		return Cell{Kind: KindNumber, Text: value, Number: n}
	}
	return Cell{Kind: KindText, Text: value}
}
