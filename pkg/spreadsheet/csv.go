package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"os"
)

type csvCodec struct{}

// NewCSV returns a codec for comma separated files.
func NewCSV() Codec {
	return csvCodec{}
}

func (csvCodec) Read(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv %s: %w", path, err)
	}

	return rows, nil
}

func (csvCodec) Write(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv %s: %w", path, err)
	}

	return f.Close()
}
