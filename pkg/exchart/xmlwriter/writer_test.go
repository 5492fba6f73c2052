package xmlwriter

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterTokens(t *testing.T) {
	var buf bytes.Buffer
	x := New(&buf)

	x.Declaration()
	x.Start("c:chartSpace", A("xmlns:c", "urn:c"))
	x.Empty("c:lang", A("val", "en-US"))
	x.Data("c:f", "Sheet1!$A$1:$A$5")
	x.Empty("c:layout")
	x.End("c:chartSpace")
	require.NoError(t, x.Flush())

	expected := Declaration +
		`<c:chartSpace xmlns:c="urn:c"><c:lang val="en-US"/><c:f>Sheet1!$A$1:$A$5</c:f><c:layout/></c:chartSpace>`
	assert.Equal(t, expected, buf.String())
}

func TestWriterEscaping(t *testing.T) {
	var buf bytes.Buffer
	x := New(&buf)

	x.Empty("a:t", A("val", `a<b & "c"`))
	x.Data("c:v", `Q1 & <Q2> "x"`)
	require.NoError(t, x.Flush())

	assert.Equal(t, `<a:t val="a&lt;b &amp; &quot;c&quot;"/><c:v>Q1 &amp; &lt;Q2&gt; "x"</c:v>`, buf.String())
}

func TestAttrFormatting(t *testing.T) {
	tests := []struct {
		value    any
		expected string
	}{
		{"r", "r"},
		{42, "42"},
		{int64(50010001), "50010001"},
		{0.75, "0.75"},
		{100.0, "100"},
		{-5.5, "-5.5"},
		{true, "1"},
		{false, "0"},
	}

	for _, tt := range tests {
		result := A("val", tt.value)
		if result.Value != tt.expected {
			t.Errorf("A(%v) = %q, expected %q", tt.value, result.Value, tt.expected)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriterStickyError(t *testing.T) {
	x := New(failingWriter{})
	x.Start("c:chartSpace")
	x.End("c:chartSpace")

	err := x.Flush()
	require.Error(t, err)
	assert.Equal(t, "disk full", err.Error())
	assert.Equal(t, err, x.Flush())
}
