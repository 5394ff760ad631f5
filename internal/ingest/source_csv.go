package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// Source supplies raw rows one by one. Iterate reads the whole source,
// passing each row to fn; fn's error aborts the scan and is returned as-is.
type Source interface {
	Iterate(fn func(RawRecord) error) error
}

// CSVSource adapts a comma-separated, quoted-field-aware stream. The first
// row is the column header and is skipped.
type CSVSource struct {
	r io.Reader
}

func NewCSVSource(r io.Reader) *CSVSource {
	return &CSVSource{r: r}
}

func (s *CSVSource) Iterate(fn func(RawRecord) error) error {
	r := csv.NewReader(s.r)
	r.ReuseRecord = true
	// Ragged rows are handled below instead of failing the whole file.
	r.FieldsPerRecord = -1

	first := true
	for {
		cols, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read csv row: %w", err)
		}

		if first {
			first = false
			continue
		}

		if len(cols) < columnsPerRecord {
			// One bad row must not drop the rest of the dataset.
			continue
		}

		if err := fn(rawFromColumns(cols[:columnsPerRecord])); err != nil {
			return err
		}
	}
}

// CSVFileSource is a CSVSource that opens its file on each Iterate, making
// the scan restartable.
type CSVFileSource struct {
	path string
}

func NewCSVFileSource(path string) *CSVFileSource {
	return &CSVFileSource{path: path}
}

func (s *CSVFileSource) Iterate(fn func(RawRecord) error) error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", s.path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	return NewCSVSource(f).Iterate(fn)
}
