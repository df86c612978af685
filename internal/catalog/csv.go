package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoHeader is returned when the input has no header row.
var ErrNoHeader = errors.New("csv: missing header row")

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "\uFEFF"

// ReadCSV reads a headered CSV into raw rows. Header names go through
// NormalizeColumn. Short rows leave trailing columns absent; extra cells
// beyond the header are ignored.
func ReadCSV(r io.Reader) ([]RawRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = NormalizeColumn(h)
	}

	var rows []RawRow
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		row := make(RawRow, len(cols))
		for i, v := range rec {
			if i >= len(cols) {
				break
			}
			row[cols[i]] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadFile reads and normalizes a CSV file.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return Normalize(rows), nil
}
