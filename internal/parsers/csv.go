package parsers

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVParser flattens each row into a "column: value, column: value" line,
// grounded on csv_parser.py's parse_into_text, which builds one such line
// per row against the header. Using the stdlib encoding/csv reader rather
// than a dependency, since no CSV library appears in the retrieval pack.
type CSVParser struct{}

func (CSVParser) Parse(_ context.Context, r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return Result{}, nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("read csv header: %w", err)
	}

	var b strings.Builder
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("read csv row: %w", err)
		}

		var fields []string
		for i, val := range record {
			col := fmt.Sprintf("col%d", i)
			if i < len(header) {
				col = header[i]
			}
			fields = append(fields, fmt.Sprintf("%s: %s", col, val))
		}
		b.WriteString(strings.Join(fields, ", "))
		b.WriteString("\n")
	}

	return Result{Text: strings.TrimSpace(b.String())}, nil
}

var _ Parser = CSVParser{}
