package workbook

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

var (
	ErrUnreadableWorkbook = errors.New("unreadable workbook")
	ErrNoWorksheet        = errors.New("workbook has no worksheets")
)

// Load opens an .xlsx stream and returns the cell text of its first worksheet.
// Trailing empty cells are not returned, so rows may be shorter than the header row.
func Load(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableWorkbook, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoWorksheet
	}

	// Raw values keep long numeric creator IDs out of scientific notation.
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", ErrUnreadableWorkbook, sheets[0], err)
	}
	return rows, nil
}

// LoadSheet is Load followed by Read.
func LoadSheet(r io.Reader, opts Options) (Sheet, error) {
	rows, err := Load(r)
	if err != nil {
		return Sheet{}, err
	}
	return Read(rows, opts), nil
}
