package chart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDataCacheID(t *testing.T) {
	c := newDataCache()

	assert.Equal(t, noData, c.id("", nil))
	assert.Equal(t, noData, c.id("=", []any{1}))

	a := c.id("=Sheet1!$A$1:$A$3", nil)
	b := c.id("Sheet1!$B$1:$B$3", []any{1, 2, 3})
	assert.Equal(t, dataID(0), a)
	assert.Equal(t, dataID(1), b)
	assert.Equal(t, a, c.id("Sheet1!$A$1:$A$3", nil))

	// Data for a known formula fills an empty entry but never replaces data.
	assert.Equal(t, a, c.id("Sheet1!$A$1:$A$3", []any{"x"}))
	assert.Equal(t, b, c.id("Sheet1!$B$1:$B$3", []any{9}))

	data, err := c.lookup(a)
	require.NoError(t, err)
	assert.Equal(t, []any{"x"}, data)
	data, err = c.lookup(b)
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3}, data)

	_, err = c.lookup(2)
	assert.True(t, errors.Is(err, ErrUnknownDataID))
	_, err = c.lookup(noData)
	assert.True(t, errors.Is(err, ErrUnknownDataID))
}

func TestRangeFormula(t *testing.T) {
	tests := []struct {
		rng      Range
		expected string
	}{
		{Range{Sheet: "Sheet1", FirstRow: 1, FirstCol: 0, LastRow: 5, LastCol: 0}, "Sheet1!$A$2:$A$6"},
		{Range{Sheet: "Sheet1", FirstRow: 0, FirstCol: 27, LastRow: 0, LastCol: 27}, "Sheet1!$AB$1"},
		{Range{Sheet: "Sales Data", LastRow: 2, LastCol: 1}, "'Sales Data'!$A$1:$B$3"},
		{Range{Sheet: "Bob's", LastRow: 1}, "'Bob''s'!$A$1:$A$2"},
	}

	for _, tt := range tests {
		got, err := tt.rng.Formula()
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got)
	}

	_, err := Range{Sheet: "Sheet1", FirstRow: -1}.Formula()
	assert.Error(t, err)
}

func TestQuoteSheetName(t *testing.T) {
	assert.Equal(t, "Sheet1", QuoteSheetName("Sheet1"))
	assert.Equal(t, "'My Sheet'", QuoteSheetName("My Sheet"))
	assert.Equal(t, "'Q1-2024'", QuoteSheetName("Q1-2024"))
}

func TestRefResolve(t *testing.T) {
	f, err := F("=Sheet1!$A$1:$A$5").Resolve()
	require.NoError(t, err)
	assert.Equal(t, "Sheet1!$A$1:$A$5", f)

	f, err = R("Data", 0, 1, 9, 1).Resolve()
	require.NoError(t, err)
	assert.Equal(t, "Data!$B$1:$B$10", f)

	assert.True(t, Ref{}.IsZero())
	assert.False(t, F("x").IsZero())
}

func TestRefYAML(t *testing.T) {
	var doc struct {
		Formula Ref `yaml:"formula"`
		List    Ref `yaml:"list"`
		Mapping Ref `yaml:"mapping"`
	}
	input := `
formula: =Sheet1!$A$1:$A$5
list: [Sheet1, 1, 0, 5, 0]
mapping:
  sheet: Other
  first_row: 0
  first_col: 2
  last_row: 3
  last_col: 2
`
	require.NoError(t, yaml.Unmarshal([]byte(input), &doc))

	assert.Equal(t, F("=Sheet1!$A$1:$A$5"), doc.Formula)
	assert.Equal(t, R("Sheet1", 1, 0, 5, 0), doc.List)
	f, err := doc.Mapping.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "Other!$C$1:$C$4", f)

	var bad struct {
		Ref Ref `yaml:"ref"`
	}
	assert.Error(t, yaml.Unmarshal([]byte("ref: [Sheet1, 1, 0]"), &bad))
	assert.Error(t, yaml.Unmarshal([]byte("ref: [Sheet1, a, 0, 5, 0]"), &bad))
}

func TestDataType(t *testing.T) {
	tests := []struct {
		name     string
		data     []any
		expected string
	}{
		{"empty", nil, "none"},
		{"all nil", []any{nil, nil}, "none"},
		{"numbers", []any{1, 2.5}, "num"},
		{"numeric strings", []any{"1", "2"}, "num"},
		{"text", []any{"Jan", "Feb"}, "str"},
		{"first non-nil decides", []any{nil, "Jan", 3}, "str"},
		{"number before text", []any{1, "Feb"}, "num"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dataType(tt.data))
		})
	}
}

func TestCacheText(t *testing.T) {
	assert.Equal(t, "3", numText(3))
	assert.Equal(t, "2.5", numText(2.5))
	assert.Equal(t, "1e-07", numText("1e-07"))
	assert.Equal(t, "0", numText("n/a"))
	assert.Equal(t, "0", numText(true))

	assert.Equal(t, "Jan", strText("Jan"))
	assert.Equal(t, "42", strText(int64(42)))
	assert.Equal(t, "", strText(nil))
}
