// Package fetcher parses lead lists from XLSX and CSV files into header
// and row form.
package fetcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/leadwerk/outreach-cli/internal/model"
)

// Options bundles the per-format reader settings.
type Options struct {
	XLSX XLSXOptions
	CSV  CSVOptions
}

// ReadLeads reads a lead list, picking the parser from the file extension.
func ReadLeads(path string, opts Options) ([]string, []model.Row, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return ReadXLSX(path, opts.XLSX)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, eris.Wrapf(err, "fetcher: open csv %s", path)
		}
		defer f.Close()
		headers, rows, err := ReadCSV(f, opts.CSV)
		if err != nil {
			return nil, nil, eris.Wrapf(err, "fetcher: read csv %s", path)
		}
		return headers, rows, nil
	default:
		return nil, nil, eris.Errorf("fetcher: unsupported lead list format %q", filepath.Ext(path))
	}
}

// pairRow zips one data row with the header row. Empty rows yield nil.
// Overflow cells get positional headers so no source data is dropped.
func pairRow(headers, cells []string) model.Row {
	empty := true
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			empty = false
			break
		}
	}
	if empty {
		return nil
	}

	row := make(model.Row, 0, len(cells))
	for j, c := range cells {
		header := fmt.Sprintf("column_%d", j+1)
		if j < len(headers) && strings.TrimSpace(headers[j]) != "" {
			header = headers[j]
		}
		row = append(row, model.Cell{Header: header, Value: c})
	}
	return row
}
