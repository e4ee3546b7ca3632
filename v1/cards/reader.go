package cards

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultChunkSize is the number of rows read per chunk during ingestion.
const DefaultChunkSize = 200

// Reader streams header-addressed rows from a cards CSV export.
type Reader struct {
	csv    *csv.Reader
	header []string
	line   int
}

// NewReader reads the header line of r.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cards: csv is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("cards: read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	return &Reader{csv: cr, header: header, line: 1}, nil
}

// Header returns the column names.
func (r *Reader) Header() []string {
	return r.header
}

// Next returns the next row, or io.EOF after the last one.
func (r *Reader) Next() (Row, error) {
	record, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("cards: read line %d: %w", r.line+1, err)
	}
	r.line++

	row := make(Row, len(r.header))
	for i, column := range r.header {
		if i < len(record) {
			row[column] = record[i]
		}
	}
	return row, nil
}

// ReadChunk returns up to n rows. The final chunk may be shorter; after it,
// ReadChunk returns (nil, io.EOF).
func (r *Reader) ReadChunk(n int) ([]Row, error) {
	if n <= 0 {
		n = DefaultChunkSize
	}
	rows := make([]Row, 0, n)
	for len(rows) < n {
		row, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, io.EOF
	}
	return rows, nil
}
