package fetcher

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/leadwerk/outreach-cli/internal/model"
)

// XLSXOptions configures the XLSX lead list parser.
type XLSXOptions struct {
	SheetIndex int    // default 0
	SheetName  string // if set, overrides SheetIndex
	SkipRows   int    // extra rows to skip between header and data
}

// ReadXLSX reads a lead list from an XLSX file. The first kept row is the
// header; every following non-empty row becomes a model.Row pairing each
// cell with its header. Rows wider than the header keep a synthesized
// header for the overflow cells.
func ReadXLSX(path string, opts XLSXOptions) ([]string, []model.Row, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "fetcher: open xlsx %s", path)
	}

	sheet, err := getSheet(f, opts)
	if err != nil {
		return nil, nil, err
	}

	var headers []string
	var rows []model.Row
	for i, row := range sheet.Rows {
		if i < opts.SkipRows {
			continue
		}
		cells := rowToStrings(row)
		if headers == nil {
			headers = cells
			if len(headers) == 0 {
				return nil, nil, eris.Errorf("fetcher: %s has an empty header row", path)
			}
			continue
		}
		if r := pairRow(headers, cells); r != nil {
			rows = append(rows, r)
		}
	}

	// An empty sheet yields no leads, not an error.
	if headers == nil {
		zap.L().Warn("fetcher: sheet has no rows", zap.String("path", path))
	}
	return headers, rows, nil
}

func getSheet(f *xlsx.File, opts XLSXOptions) (*xlsx.Sheet, error) {
	if opts.SheetName != "" {
		sheet, ok := f.Sheet[opts.SheetName]
		if !ok {
			return nil, eris.Errorf("fetcher: sheet %q not found", opts.SheetName)
		}
		return sheet, nil
	}

	if opts.SheetIndex >= len(f.Sheets) {
		return nil, eris.Errorf("fetcher: sheet index %d out of range (file has %d sheets)", opts.SheetIndex, len(f.Sheets))
	}
	return f.Sheets[opts.SheetIndex], nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}
