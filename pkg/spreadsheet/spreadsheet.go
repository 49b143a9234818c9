// Package spreadsheet reads and writes whole tables of string cells to a
// single file. The format is chosen from the file extension.
package spreadsheet

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Codec reads and rewrites an entire table. The first row is the header.
type Codec interface {
	Read(path string) ([][]string, error)
	Write(path string, rows [][]string) error
}

// ForPath returns the codec matching the extension of path.
func ForPath(path string) (Codec, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		return NewXLSX(DefaultSheet), nil
	case ".csv":
		return NewCSV(), nil
	default:
		return nil, fmt.Errorf("unsupported spreadsheet extension %q", ext)
	}
}
