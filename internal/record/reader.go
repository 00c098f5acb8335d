package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"sjr-generator/internal/common"
)

// Delimiter is the field separator used by Scimago CSV exports.
const Delimiter = ';'

var (
	// ErrHeaderMissing reports an input file without a header row.
	ErrHeaderMissing = errors.New("csv header row is missing")
	// ErrColumnMissing reports a header without a required column.
	ErrColumnMissing = errors.New("csv header missing required column")
)

// Row maps column names from the header to the raw field values of one row.
type Row map[string]string

// Reader is a forward-only row sequence over a single CSV file.
type Reader struct {
	file   *os.File
	csv    *csv.Reader
	header []string
}

// Open opens the file at path and validates that the header row contains
// every required column name (exact, case-sensitive match). The returned
// Reader holds the file handle until Close is called.
func Open(path string, required ...string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv file %s: %w", path, err)
	}

	cr := csv.NewReader(file)
	cr.Comma = Delimiter
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		file.Close()

		if errors.Is(err, io.EOF) {
			return nil, ErrHeaderMissing
		}

		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	var missing []string

	for _, name := range required {
		if !slices.Contains(header, name) {
			missing = append(missing, name)
		}
	}

	if !common.IsEmpty(missing) {
		file.Close()

		return nil, fmt.Errorf("%w: %s", ErrColumnMissing, strings.Join(missing, ", "))
	}

	return &Reader{file: file, csv: cr, header: header}, nil
}

// Header returns the column names in file order.
func (r *Reader) Header() []string {
	return r.header
}

// Read returns the next row keyed by column name, or io.EOF after the
// last row. Short rows are padded with empty strings; extra fields
// beyond the header are ignored.
func (r *Reader) Read() (Row, error) {
	fields, err := r.csv.Read()
	if err != nil {
		return nil, err
	}

	row := make(Row, len(r.header))
	for i, name := range r.header {
		if i < len(fields) {
			row[name] = fields[i]
		} else {
			row[name] = ""
		}
	}

	return row, nil
}

// Close releases the underlying file handle.
func (r *Reader) Close() error {
	return r.file.Close()
}
