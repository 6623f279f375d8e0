// Package spreadsheet reads the first worksheet of an .xls or .xlsx workbook into
// header-keyed rows.
package spreadsheet

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/xls-import-go/internal/pkg/validator"
	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
	ErrNoWorksheet       = errors.New("no worksheet found")
)

// Row maps a header cell to the text of the cell below it. Empty cells are absent.
type Row map[string]string

type Format int

const (
	FormatUnknown Format = iota
	FormatXLS
	FormatXLSX
)

const (
	ContentTypeXLS  = "application/vnd.ms-excel"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	zipMagic = []byte{'P', 'K', 0x03, 0x04}
)

// DetectFormat sniffs the container signature, falling back to the file extension
// and then the declared content type.
func DetectFormat(data []byte, filename, contentType string) Format {
	switch {
	case bytes.HasPrefix(data, oleMagic):
		return FormatXLS
	case bytes.HasPrefix(data, zipMagic):
		return FormatXLSX
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xls":
		return FormatXLS
	case ".xlsx", ".xlsm":
		return FormatXLSX
	}

	switch contentType {
	case ContentTypeXLS:
		return FormatXLS
	case ContentTypeXLSX:
		return FormatXLSX
	}
	return FormatUnknown
}

// Read parses the first worksheet of the workbook in data. The first non-blank row
// supplies the keys; blank rows after it are skipped.
func Read(data []byte, filename, contentType string) ([]Row, error) {
	var (
		grid [][]string
		err  error
	)

	switch DetectFormat(data, filename, contentType) {
	case FormatXLS:
		grid, err = readXLS(data)
	case FormatXLSX:
		grid, err = readXLSX(data)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}

	return toRows(grid), nil
}

func readXLSX(data []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrNoWorksheet
	}

	// Raw values keep dates as serial numbers instead of locale formatted text.
	rows, err := file.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	return rows, nil
}

func readXLS(data []byte) (grid [][]string, err error) {
	// The legacy decoder panics on some malformed streams.
	defer func() {
		if r := recover(); r != nil {
			grid, err = nil, fmt.Errorf("open xls: %v", r)
		}
	}()

	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}
	if workbook == nil {
		return nil, errors.New("open xls: no workbook stream")
	}
	if workbook.NumSheets() == 0 {
		return nil, ErrNoWorksheet
	}

	sheet := workbook.GetSheet(0)
	if sheet == nil {
		return nil, ErrNoWorksheet
	}

	grid = make([][]string, 0, int(sheet.MaxRow)+1)
	width := 0
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheetRow(sheet, i)
		if row == nil {
			grid = append(grid, nil)
			continue
		}

		// LastCol comes from the ROW record and is zero for rows written without one.
		width = max(width, row.LastCol())
		cells := make([]string, 0, width+1)
		for j := 0; j <= width; j++ {
			if j < row.FirstCol() {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, row.Col(j))
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

// sheetRow returns nil for rows the sheet has no record of.
func sheetRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

func toRows(grid [][]string) []Row {
	headerAt := -1
	for i, cells := range grid {
		if !blank(cells) {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return nil
	}

	headers := headerKeys(grid[headerAt])

	rows := make([]Row, 0, len(grid)-headerAt-1)
	for _, cells := range grid[headerAt+1:] {
		if blank(cells) {
			continue
		}

		row := make(Row, len(cells))
		for j, value := range cells {
			if value == "" || j >= len(headers) {
				continue
			}
			row[headers[j]] = value
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows
}

// headerKeys names empty headers __EMPTY and suffixes repeated ones with _1, _2...
func headerKeys(cells []string) []string {
	keys := make([]string, len(cells))
	seen := make(map[string]int, len(cells))
	for j, cell := range cells {
		key := strings.TrimSpace(cell)
		if key == "" {
			key = "__EMPTY"
		}
		if n, ok := seen[key]; ok {
			seen[key] = n + 1
			key = key + "_" + strconv.Itoa(n+1)
		} else {
			seen[key] = 0
		}
		keys[j] = key
	}
	return keys
}

func blank(cells []string) bool {
	for _, c := range cells {
		if !validator.IsEmpty(c) {
			return false
		}
	}
	return true
}
