package chart

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// dataID identifies an entry of the chart data cache.
type dataID int

// noData marks a reference without a cache entry.
const noData dataID = -1

// cacheEntry holds the cached literal data of one range formula.
type cacheEntry struct {
	formula string
	data    []any
}

// dataCache is the append-only table of cached data keyed by formula.
type dataCache struct {
	ids     map[string]dataID
	entries []cacheEntry
}

func newDataCache() *dataCache {
	return &dataCache{ids: make(map[string]dataID)}
}

// id returns the cache id of formula, creating the entry on first use. Data
// supplied for an existing entry without data backfills it.
func (c *dataCache) id(formula string, data []any) dataID {
	formula = trimFormula(formula)
	if formula == "" {
		return noData
	}
	if id, ok := c.ids[formula]; ok {
		if data != nil && c.entries[id].data == nil {
			c.entries[id].data = data
		}
		return id
	}
	id := dataID(len(c.entries))
	c.entries = append(c.entries, cacheEntry{formula: formula, data: data})
	c.ids[formula] = id
	return id
}

func trimFormula(formula string) string {
	return strings.TrimPrefix(formula, "=")
}

// lookup returns the data cached under id. An id that was never assigned is
// a defect in the caller and is reported as ErrUnknownDataID.
func (c *dataCache) lookup(id dataID) ([]any, error) {
	if id < 0 || int(id) >= len(c.entries) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDataID, id)
	}
	return c.entries[id].data, nil
}

// Range is a zero-based cell range on a worksheet.
type Range struct {
	Sheet    string `yaml:"sheet"`
	FirstRow int    `yaml:"first_row"`
	FirstCol int    `yaml:"first_col"`
	LastRow  int    `yaml:"last_row"`
	LastCol  int    `yaml:"last_col"`
}

var plainSheetName = regexp.MustCompile(`^\w+$`)

// QuoteSheetName quotes a sheet name for use in a formula when required.
func QuoteSheetName(name string) string {
	if plainSheetName.MatchString(name) {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// Formula returns the absolute range formula, e.g. Sheet1!$A$1:$A$5.
func (r Range) Formula() (string, error) {
	first, err := excelize.CoordinatesToCellName(r.FirstCol+1, r.FirstRow+1, true)
	if err != nil {
		return "", err
	}
	last, err := excelize.CoordinatesToCellName(r.LastCol+1, r.LastRow+1, true)
	if err != nil {
		return "", err
	}
	cells := first
	if first != last {
		cells = first + ":" + last
	}
	return QuoteSheetName(r.Sheet) + "!" + cells, nil
}

// Ref references chart data either as a formula string or as a Range.
type Ref struct {
	Formula string
	Range   *Range
}

// F returns a Ref for a range formula such as "=Sheet1!$B$2:$B$5".
func F(formula string) Ref {
	return Ref{Formula: formula}
}

// R returns a Ref for a zero-based range.
func R(sheet string, firstRow, firstCol, lastRow, lastCol int) Ref {
	return Ref{Range: &Range{
		Sheet:    sheet,
		FirstRow: firstRow,
		FirstCol: firstCol,
		LastRow:  lastRow,
		LastCol:  lastCol,
	}}
}

// IsZero reports whether the reference is unset.
func (r Ref) IsZero() bool {
	return r.Formula == "" && r.Range == nil
}

// Resolve returns the formula of the reference without the leading "=".
func (r Ref) Resolve() (string, error) {
	if r.Range != nil {
		return r.Range.Formula()
	}
	return trimFormula(r.Formula), nil
}

// UnmarshalYAML accepts a formula string, a [sheet, first_row, first_col,
// last_row, last_col] list or a range mapping.
func (r *Ref) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		r.Formula = node.Value
		return nil
	case yaml.MappingNode:
		var rng Range
		if err := node.Decode(&rng); err != nil {
			return err
		}
		r.Range = &rng
		return nil
	case yaml.SequenceNode:
		if len(node.Content) != 5 {
			return fmt.Errorf("line %d: range list needs 5 items, got %d", node.Line, len(node.Content))
		}
		coords := make([]int, 4)
		for i, n := range node.Content[1:] {
			v, err := strconv.Atoi(n.Value)
			if err != nil {
				return fmt.Errorf("line %d: invalid range coordinate %q", n.Line, n.Value)
			}
			coords[i] = v
		}
		*r = R(node.Content[0].Value, coords[0], coords[1], coords[2], coords[3])
		return nil
	}
	return fmt.Errorf("line %d: unsupported reference", node.Line)
}

// dataType classifies cached data by its first non-empty value.
func dataType(data []any) string {
	for _, v := range data {
		switch t := v.(type) {
		case nil:
			continue
		case string:
			if _, err := strconv.ParseFloat(t, 64); err != nil {
				return "str"
			}
			return "num"
		default:
			return "num"
		}
	}
	return "none"
}

// numText formats a cached value for c:numCache. Non-numeric values are 0.
func numText(v any) string {
	switch t := v.(type) {
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case string:
		if _, err := strconv.ParseFloat(t, 64); err == nil {
			return t
		}
	}
	return "0"
}

// strText formats a cached value for c:strCache.
func strText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	}
	return numText(v)
}
