package chart

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/exchart-go/pkg/exchart/xmlwriter"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestChart(t *testing.T, typ Type, subtype string) *Chart {
	t.Helper()
	c, err := New(Options{Type: typ, Subtype: subtype, Logger: quietLogger()})
	require.NoError(t, err)
	return c
}

func render(t *testing.T, c *Chart) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Write(&buf))
	return buf.String()
}

// element returns the first <tag ...>...</tag> of doc, or "" if absent.
// Elements of the same tag must not nest.
func element(doc, tag string) string {
	start := strings.Index(doc, "<"+tag+">")
	if start < 0 {
		start = strings.Index(doc, "<"+tag+" ")
	}
	if start < 0 {
		return ""
	}
	closing := "</" + tag + ">"
	end := strings.Index(doc[start:], closing)
	if end < 0 {
		return ""
	}
	return doc[start : start+end+len(closing)]
}

func ptr[T any](v T) *T {
	return &v
}

func TestWriteColumnChart(t *testing.T) {
	c := newTestChart(t, TypeColumn, "")
	_, err := c.AddSeries(SeriesOptions{Values: F("=Sheet1!$A$1:$A$5")})
	require.NoError(t, err)

	expected := xmlwriter.Declaration +
		`<c:chartSpace xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">` +
		`<c:lang val="en-US"/>` +
		`<c:chart>` +
		`<c:plotArea><c:layout/>` +
		`<c:barChart><c:barDir val="col"/><c:grouping val="clustered"/>` +
		`<c:ser><c:idx val="0"/><c:order val="0"/><c:val><c:numRef><c:f>Sheet1!$A$1:$A$5</c:f></c:numRef></c:val></c:ser>` +
		`<c:axId val="50010001"/><c:axId val="50010002"/></c:barChart>` +
		`<c:catAx><c:axId val="50010001"/><c:scaling><c:orientation val="minMax"/></c:scaling><c:axPos val="b"/>` +
		`<c:tickLblPos val="nextTo"/><c:crossAx val="50010002"/><c:crosses val="autoZero"/>` +
		`<c:auto val="1"/><c:lblAlgn val="ctr"/><c:lblOffset val="100"/></c:catAx>` +
		`<c:valAx><c:axId val="50010002"/><c:scaling><c:orientation val="minMax"/></c:scaling><c:axPos val="l"/>` +
		`<c:majorGridlines/><c:numFmt formatCode="General" sourceLinked="1"/><c:tickLblPos val="nextTo"/>` +
		`<c:crossAx val="50010001"/><c:crosses val="autoZero"/><c:crossBetween val="between"/></c:valAx>` +
		`</c:plotArea>` +
		`<c:legend><c:legendPos val="r"/><c:layout/></c:legend><c:plotVisOnly val="1"/>` +
		`</c:chart></c:chartSpace>`

	assert.Equal(t, expected, render(t, c))
}

func TestWriteIsRepeatable(t *testing.T) {
	c := newTestChart(t, TypeLine, "")
	_, err := c.AddSeries(SeriesOptions{Values: F("=Sheet1!$A$1:$A$5")})
	require.NoError(t, err)
	_, err = c.AddSeries(SeriesOptions{Values: F("=Sheet1!$B$1:$B$5")})
	require.NoError(t, err)

	first := render(t, c)
	second := render(t, c)
	assert.Equal(t, first, second)
	assert.Contains(t, second, `<c:idx val="1"/><c:order val="1"/>`)
	assert.NotContains(t, second, `<c:idx val="2"/>`)
}

func TestNewUnknownType(t *testing.T) {
	_, err := New(Options{Type: "gantt", Logger: quietLogger()})
	assert.True(t, errors.Is(err, ErrUnknownType))
}

func TestSetStyle(t *testing.T) {
	tests := []struct {
		id       int
		expected int
		element  string
	}{
		{2, 2, ""},
		{10, 10, `<c:style val="10"/>`},
		{42, 42, `<c:style val="42"/>`},
		{50, 2, ""},
		{-1, 2, ""},
	}

	for _, tt := range tests {
		c := newTestChart(t, TypeColumn, "")
		_, err := c.AddSeries(SeriesOptions{Values: F("=Sheet1!$A$1:$A$5")})
		require.NoError(t, err)
		c.SetStyle(tt.id)

		assert.Equal(t, tt.expected, c.StyleID(), "SetStyle(%d)", tt.id)
		doc := render(t, c)
		if tt.element == "" {
			assert.NotContains(t, doc, "<c:style", "SetStyle(%d)", tt.id)
		} else {
			assert.Contains(t, doc, `<c:lang val="en-US"/>`+tt.element, "SetStyle(%d)", tt.id)
		}
	}
}

func TestChartFrameOptions(t *testing.T) {
	c := newTestChart(t, TypeColumn, "")
	_, err := c.AddSeries(SeriesOptions{Values: F("=Sheet1!$A$1:$A$5")})
	require.NoError(t, err)
	c.Protect()
	c.ShowBlanksAs("span")
	c.ShowHiddenData()
	c.SetEmbedded(true)
	c.SetChartArea(AreaOptions{Fill: &FillOptions{Color: "yellow"}})
	c.SetPlotArea(AreaOptions{Border: &LineOptions{None: true}})

	doc := render(t, c)
	assert.Contains(t, doc, `<c:lang val="en-US"/><c:protection/><c:chart>`)
	assert.NotContains(t, doc, "<c:plotVisOnly")
	assert.Contains(t, doc, `</c:legend><c:dispBlanksAs val="span"/></c:chart>`)
	assert.Contains(t, doc, `<c:spPr><a:ln><a:noFill/></a:ln></c:spPr></c:plotArea>`)
	assert.Contains(t, doc, `</c:chart><c:spPr><a:solidFill><a:srgbClr val="FFFF00"/></a:solidFill></c:spPr>`+
		`<c:printSettings><c:headerFooter/>`+
		`<c:pageMargins b="0.75" l="0.7" r="0.7" t="0.75" header="0.3" footer="0.3"/>`+
		`<c:pageSetup/></c:printSettings></c:chartSpace>`)
}

func TestShowBlanksAsUnknown(t *testing.T) {
	var logs bytes.Buffer
	c, err := New(Options{Type: TypeColumn, Logger: slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))})
	require.NoError(t, err)
	c.ShowBlanksAs("zero")
	c.ShowBlanksAs("dots")
	assert.Equal(t, "zero", c.showBlanks)
	assert.Contains(t, logs.String(), "level=DEBUG msg=\"unknown show blanks option\"")
}

func TestSetLegend(t *testing.T) {
	tests := []struct {
		position string
		expected string
	}{
		{"", `<c:legend><c:legendPos val="r"/><c:layout/></c:legend>`},
		{"left", `<c:legend><c:legendPos val="l"/><c:layout/></c:legend>`},
		{"bottom", `<c:legend><c:legendPos val="b"/><c:layout/></c:legend>`},
		{"overlay_sideways", `<c:legend><c:legendPos val="r"/><c:layout/></c:legend>`},
		{"none", ""},
	}

	for _, tt := range tests {
		c := newTestChart(t, TypePie, "")
		_, err := c.AddSeries(SeriesOptions{Values: F("=Sheet1!$A$1:$A$5")})
		require.NoError(t, err)
		c.SetLegend(LegendOptions{Position: tt.position})

		assert.Equal(t, tt.expected, element(render(t, c), "c:legend"), "SetLegend(%q)", tt.position)
	}
}

func TestChartTitle(t *testing.T) {
	t.Run("rich", func(t *testing.T) {
		c := newTestChart(t, TypeColumn, "")
		c.SetTitle(TitleOptions{Name: "Sales"})

		expected := `<c:title><c:tx><c:rich><a:bodyPr/><a:lstStyle/><a:p><a:pPr><a:defRPr/></a:pPr>` +
			`<a:r><a:rPr lang="en-US"/><a:t>Sales</a:t></a:r></a:p></c:rich></c:tx><c:layout/></c:title>`
		assert.Equal(t, expected, element(render(t, c), "c:title"))
	})

	t.Run("formula wins over name", func(t *testing.T) {
		c := newTestChart(t, TypeColumn, "")
		c.SetTitle(TitleOptions{Name: "Ignored", NameFormula: F("=Sheet1!$A$1"), Data: []any{"Sales"}})

		expected := `<c:title><c:tx><c:strRef><c:f>Sheet1!$A$1</c:f>` +
			`<c:strCache><c:ptCount val="1"/><c:pt idx="0"><c:v>Sales</c:v></c:pt></c:strCache></c:strRef></c:tx>` +
			`<c:layout/><c:txPr><a:bodyPr/><a:lstStyle/><a:p><a:pPr><a:defRPr/></a:pPr>` +
			`<a:endParaRPr lang="en-US"/></a:p></c:txPr></c:title>`
		assert.Equal(t, expected, element(render(t, c), "c:title"))
	})

	t.Run("name starting with equals is a formula", func(t *testing.T) {
		c := newTestChart(t, TypeColumn, "")
		c.SetTitle(TitleOptions{Name: "=Sheet1!$B$1"})
		assert.Contains(t, render(t, c), `<c:title><c:tx><c:strRef><c:f>Sheet1!$B$1</c:f></c:strRef></c:tx>`)
	})

	t.Run("font", func(t *testing.T) {
		c := newTestChart(t, TypeColumn, "")
		c.SetTitle(TitleOptions{Name: "Sales", NameFont: &FontOptions{
			Name: "Arial", Size: 12, Bold: ptr(true), Italic: ptr(false), Color: "red",
		}})

		doc := render(t, c)
		assert.Contains(t, doc, `<a:pPr><a:defRPr sz="1200" b="1" i="0" baseline="0">`+
			`<a:solidFill><a:srgbClr val="FF0000"/></a:solidFill><a:latin typeface="Arial"/></a:defRPr></a:pPr>`)
		assert.Contains(t, doc, `<a:rPr lang="en-US" sz="1200" b="1" i="0" baseline="0">`+
			`<a:solidFill><a:srgbClr val="FF0000"/></a:solidFill><a:latin typeface="Arial"/></a:rPr>`)
	})

	t.Run("none", func(t *testing.T) {
		c := newTestChart(t, TypeColumn, "")
		c.SetTitle(TitleOptions{None: true})
		assert.Contains(t, render(t, c), `<c:chart><c:autoTitleDeleted val="1"/><c:plotArea>`)
	})
}

func TestLanguage(t *testing.T) {
	c, err := New(Options{Type: TypeColumn, Lang: "ja-JP", Logger: quietLogger()})
	require.NoError(t, err)
	c.SetTitle(TitleOptions{Name: "売上"})

	doc := render(t, c)
	assert.Contains(t, doc, `<c:lang val="ja-JP"/>`)
	assert.Contains(t, doc, `<a:rPr lang="ja-JP"/><a:t>売上</a:t>`)

	c, err = New(Options{Type: TypeColumn, Lang: "not a tag!", Logger: quietLogger()})
	require.NoError(t, err)
	assert.Contains(t, render(t, c), `<c:lang val="en-US"/>`)
}

func TestDataTable(t *testing.T) {
	c := newTestChart(t, TypeColumn, "")
	_, err := c.AddSeries(SeriesOptions{Values: F("=Sheet1!$A$1:$A$5")})
	require.NoError(t, err)
	c.SetTable(DataTableOptions{Vertical: ptr(false), ShowKeys: true})

	doc := render(t, c)
	assert.Contains(t, doc, `</c:valAx><c:dTable><c:showHorzBorder val="1"/><c:showOutline val="1"/>`+
		`<c:showKeys val="1"/></c:dTable></c:plotArea>`)
}

func TestSizeAndOffset(t *testing.T) {
	c := newTestChart(t, TypeColumn, "")
	cx, cy := c.Extent()
	assert.Equal(t, int64(480*9525), cx)
	assert.Equal(t, int64(288*9525), cy)

	c.SetSize(SizeOptions{Width: 720, XScale: 1.5, YScale: 2, XOffset: 10, YOffset: 5})
	cx, cy = c.Extent()
	assert.Equal(t, int64(1080*9525), cx)
	assert.Equal(t, int64(576*9525), cy)
	x, y := c.Offset()
	assert.Equal(t, 10, x)
	assert.Equal(t, 5, y)
}

func TestWriteErrors(t *testing.T) {
	t.Run("stream failure", func(t *testing.T) {
		c := newTestChart(t, TypeColumn, "")
		_, err := c.AddSeries(SeriesOptions{Values: F("=Sheet1!$A$1:$A$5")})
		require.NoError(t, err)

		errBroken := errors.New("broken pipe")
		err = c.Write(failingWriter{err: errBroken})
		assert.ErrorIs(t, err, errBroken)
	})

	t.Run("unknown data id", func(t *testing.T) {
		c := newTestChart(t, TypeColumn, "")
		s, err := c.AddSeries(SeriesOptions{Values: F("=Sheet1!$A$1:$A$5")})
		require.NoError(t, err)
		s.valID = 42

		var buf bytes.Buffer
		err = c.Write(&buf)
		assert.ErrorIs(t, err, ErrUnknownDataID)
		assert.Zero(t, buf.Len())
	})
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func TestFormulasAndSetData(t *testing.T) {
	c := newTestChart(t, TypeColumn, "")
	_, err := c.AddSeries(SeriesOptions{
		Values:         F("=Sheet1!$B$1:$B$2"),
		Categories:     F("=Sheet1!$A$1:$A$2"),
		CategoriesData: []any{"x", "y"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Sheet1!$B$1:$B$2"}, c.Formulas())
	assert.True(t, c.SetData("=Sheet1!$B$1:$B$2", []any{3, 4}))
	assert.False(t, c.SetData("Sheet1!$C$1", []any{1}))
	assert.Empty(t, c.Formulas())

	assert.Contains(t, render(t, c), `<c:val><c:numRef><c:f>Sheet1!$B$1:$B$2</c:f><c:numCache>`+
		`<c:formatCode>General</c:formatCode><c:ptCount val="2"/>`+
		`<c:pt idx="0"><c:v>3</c:v></c:pt><c:pt idx="1"><c:v>4</c:v></c:pt></c:numCache></c:numRef></c:val>`)
}
