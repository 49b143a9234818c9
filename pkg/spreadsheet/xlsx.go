package spreadsheet

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the sheet a new workbook is written to.
const DefaultSheet = "Sheet1"

var (
	// ErrCellTooLong is returned for a cell longer than a workbook cell
	// can hold. excelize would otherwise cut the text silently.
	ErrCellTooLong = fmt.Errorf("cell longer than %d characters", excelize.TotalCellChars)
	// ErrCellInvalidChar is returned for a cell holding a character XML
	// cannot carry. excelize would otherwise replace it.
	ErrCellInvalidChar = errors.New("cell contains a character not allowed in a workbook")
)

type xlsxCodec struct {
	sheet string
}

// NewXLSX returns a codec for Excel workbooks. Reads use the first sheet of
// the workbook; writes always go to sheet.
func NewXLSX(sheet string) Codec {
	return &xlsxCodec{sheet: sheet}
}

func (c *xlsxCodec) Read(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheets[0], path, err)
	}

	return rows, nil
}

// Write refuses rows that the workbook could not store verbatim; the file is
// left untouched in that case.
func (c *xlsxCodec) Write(path string, rows [][]string) error {
	for i, row := range rows {
		for j, v := range row {
			if err := checkCell(v); err != nil {
				return fmt.Errorf("row %d column %d: %w", i+1, j+1, err)
			}
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if c.sheet != DefaultSheet {
		if err := f.SetSheetName(DefaultSheet, c.sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell name for row %d: %w", i+1, err)
		}

		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}

		if err := f.SetSheetRow(c.sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}

	return nil
}

func checkCell(v string) error {
	if utf8.RuneCountInString(v) > excelize.TotalCellChars {
		return ErrCellTooLong
	}
	for _, r := range v {
		if !isXMLChar(r) {
			return fmt.Errorf("%w: %U", ErrCellInvalidChar, r)
		}
	}
	return nil
}

// isXMLChar follows the Char production of XML 1.0.
func isXMLChar(r rune) bool {
	switch {
	case r == 0x09 || r == 0x0A || r == 0x0D:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}
