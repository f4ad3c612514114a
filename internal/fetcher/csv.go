package fetcher

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/leadwerk/outreach-cli/internal/model"
)

// CSVOptions configures the CSV lead list parser.
type CSVOptions struct {
	Delimiter  rune // default ','
	Comment    rune // comment character (0 = none)
	LazyQuotes bool
	TrimSpace  bool
}

// ReadCSV reads a lead list from r. The first record is the header; every
// following non-empty record becomes a model.Row.
func ReadCSV(r io.Reader, opts CSVOptions) ([]string, []model.Row, error) {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	if opts.Comment != 0 {
		reader.Comment = opts.Comment
	}
	reader.LazyQuotes = opts.LazyQuotes
	reader.FieldsPerRecord = -1 // allow variable fields

	var headers []string
	var rows []model.Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, eris.Wrap(err, "fetcher: read csv row")
		}

		if opts.TrimSpace {
			for i, field := range record {
				record[i] = strings.TrimSpace(field)
			}
		}

		if headers == nil {
			headers = record
			continue
		}
		if row := pairRow(headers, record); row != nil {
			rows = append(rows, row)
		}
	}

	if headers == nil {
		zap.L().Warn("fetcher: csv input has no rows")
	}
	return headers, rows, nil
}
