// Package parser reads chart data back from workbooks and chart parts.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/efp"
	"github.com/xuri/excelize/v2"
)

// ErrInvalidRange indicates a formula that is not a single sheet range.
var ErrInvalidRange = errors.New("invalid range formula")

// ReadRange returns the cell values of a range formula such as
// Sheet1!$B$2:$B$6, row by row. Empty cells are nil. Values are read
// without their number formats, so dates come back as serial numbers.
func ReadRange(f *excelize.File, formula string) ([]any, error) {
	sheet, first, last, err := splitRange(formula)
	if err != nil {
		return nil, err
	}
	col1, row1, err := excelize.CellNameToCoordinates(first)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidRange, formula, err)
	}
	col2, row2, err := excelize.CellNameToCoordinates(last)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidRange, formula, err)
	}
	if col1 > col2 {
		col1, col2 = col2, col1
	}
	if row1 > row2 {
		row1, row2 = row2, row1
	}

	values := make([]any, 0, (row2-row1+1)*(col2-col1+1))
	for row := row1; row <= row2; row++ {
		for col := col1; col <= col2; col++ {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			v, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
			if err != nil {
				return nil, fmt.Errorf("read %s!%s: %w", sheet, cell, err)
			}
			values = append(values, parseValue(v))
		}
	}
	return values, nil
}

// splitRange splits a range formula into its unquoted sheet name and the
// first and last cell names without absolute markers.
func splitRange(formula string) (sheet, first, last string, err error) {
	formula = strings.TrimPrefix(strings.TrimSpace(formula), "=")
	p := efp.ExcelParser()
	tokens := p.Parse("=" + formula)
	if len(tokens) != 1 || tokens[0].TType != efp.TokenTypeOperand || tokens[0].TSubType != efp.TokenSubTypeRange {
		return "", "", "", fmt.Errorf("%w: %q", ErrInvalidRange, formula)
	}

	ref := tokens[0].TValue
	i := strings.LastIndex(ref, "!")
	if i <= 0 {
		return "", "", "", fmt.Errorf("%w: %q has no sheet name", ErrInvalidRange, formula)
	}
	sheet = ref[:i]
	if len(sheet) >= 2 && strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}

	cells := strings.ReplaceAll(ref[i+1:], "$", "")
	first, last, _ = strings.Cut(cells, ":")
	if last == "" {
		last = first
	}
	return sheet, first, last, nil
}

// parseValue converts a cell string into int64, float64 or string.
// Empty cells are nil.
func parseValue(s string) any {
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
