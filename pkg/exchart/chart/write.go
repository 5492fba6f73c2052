package chart

import (
	"io"

	"github.com/ukaji3/exchart-go/pkg/exchart/xmlwriter"
)

const (
	nsChart         = "http://schemas.openxmlformats.org/drawingml/2006/chart"
	nsDrawing       = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// chartWriter emits one chart part. It keeps the first cache lookup error;
// the XML writer keeps the first stream error.
type chartWriter struct {
	*Chart
	x   *xmlwriter.Writer
	err error
}

// Write writes the chart part to w. A stream failure leaves the output
// incomplete; the caller owns discarding it.
func (c *Chart) Write(w io.Writer) error {
	c.seriesIndex = 0
	cw := &chartWriter{Chart: c, x: xmlwriter.New(w)}
	cw.writeChartSpace()
	if cw.err != nil {
		return cw.err
	}
	return cw.x.Flush()
}

func val(v any) xmlwriter.Attr {
	return xmlwriter.A("val", v)
}

func (w *chartWriter) start(tag string, attrs ...xmlwriter.Attr) {
	w.x.Start(tag, attrs...)
}

func (w *chartWriter) empty(tag string, attrs ...xmlwriter.Attr) {
	w.x.Empty(tag, attrs...)
}

func (w *chartWriter) text(tag, s string) {
	w.x.Data(tag, s)
}

func (w *chartWriter) end(tag string) {
	w.x.End(tag)
}

// cached returns the cache data of id, recording unknown ids.
func (w *chartWriter) cached(id dataID) []any {
	if id == noData {
		return nil
	}
	data, err := w.cache.lookup(id)
	if err != nil && w.err == nil {
		w.err = err
	}
	return data
}

func (w *chartWriter) writeChartSpace() {
	w.x.Declaration()
	w.start("c:chartSpace",
		xmlwriter.A("xmlns:c", nsChart),
		xmlwriter.A("xmlns:a", nsDrawing),
		xmlwriter.A("xmlns:r", nsRelationships),
	)
	w.empty("c:lang", val(w.lang))
	if w.styleID != DefaultStyleID {
		w.empty("c:style", val(w.styleID))
	}
	if w.protected {
		w.empty("c:protection")
	}
	w.writeChart()
	w.writeSpPr(w.chartArea)
	if w.embedded {
		w.writePrintSettings()
	}
	w.end("c:chartSpace")
}

func (w *chartWriter) writeChart() {
	w.start("c:chart")
	switch {
	case w.title.formula != "":
		w.writeTitleFormula(w.title.formula, w.title.dataID, false, w.title.font)
	case w.title.name != "":
		w.writeTitleRich(w.title.name, false, w.title.font)
	case w.title.none:
		w.empty("c:autoTitleDeleted", val(1))
	}
	w.writePlotArea()
	w.writeLegend()
	if !w.showHiddenData {
		w.empty("c:plotVisOnly", val(1))
	}
	if w.showBlanks != "gap" {
		w.empty("c:dispBlanksAs", val(w.showBlanks))
	}
	w.end("c:chart")
}

func (w *chartWriter) writePlotArea() {
	w.start("c:plotArea")
	w.empty("c:layout")
	w.info.plot.writePlotGroup(w, true)
	w.info.plot.writePlotGroup(w, false)
	if w.info.hasAxes {
		x, y := w.xAxis, w.yAxis
		if w.info.swapAxes {
			x, y = y, x
		}
		w.writeXSideAxis(x, y, w.axisIDs)
		w.writeValAxis(x, y, w.axisIDs)
		w.writeValAxis(w.x2Axis, w.y2Axis, w.axis2IDs)
		w.writeXSideAxis(w.x2Axis, w.y2Axis, w.axis2IDs)
		w.writeDataTable()
	}
	w.writeSpPr(w.plotArea)
	w.end("c:plotArea")
}

// writeAxisIDs mints the ids of an axis pair on first use and writes them.
func (w *chartWriter) writeAxisIDs(primary bool) {
	ids := &w.axisIDs
	if !primary {
		ids = &w.axis2IDs
	}
	if len(*ids) == 0 {
		base := 50000000 + (w.id+1)*10000
		count := 1 + len(w.axisIDs) + len(w.axis2IDs)
		*ids = []int{base + count, base + count + 1}
	}
	w.empty("c:axId", val((*ids)[0]))
	w.empty("c:axId", val((*ids)[1]))
}

func (w *chartWriter) grouping(g string) {
	w.empty("c:grouping", val(g))
}

func (w *chartWriter) writeLegend() {
	if w.legend.position == "" {
		return
	}
	w.start("c:legend")
	w.empty("c:legendPos", val(w.legend.position))
	// TODO: write c:legendEntry for legend.deleteSeries and c:overlay once
	// entry indexes are mapped to the written series order.
	w.empty("c:layout")
	w.end("c:legend")
}

func (w *chartWriter) writeDataTable() {
	t := w.table
	if t == nil {
		return
	}
	w.start("c:dTable")
	if t.Horizontal {
		w.empty("c:showHorzBorder", val(1))
	}
	if t.Vertical {
		w.empty("c:showVertBorder", val(1))
	}
	if t.Outline {
		w.empty("c:showOutline", val(1))
	}
	if t.ShowKeys {
		w.empty("c:showKeys", val(1))
	}
	w.end("c:dTable")
}

func (w *chartWriter) writePrintSettings() {
	w.start("c:printSettings")
	w.empty("c:headerFooter")
	w.empty("c:pageMargins",
		xmlwriter.A("b", 0.75),
		xmlwriter.A("l", 0.7),
		xmlwriter.A("r", 0.7),
		xmlwriter.A("t", 0.75),
		xmlwriter.A("header", 0.3),
		xmlwriter.A("footer", 0.3),
	)
	w.empty("c:pageSetup")
	w.end("c:printSettings")
}

func (w *chartWriter) writeLines(tag string, s *Shape) {
	if s == nil {
		return
	}
	if !s.Line.Defined {
		w.empty(tag)
		return
	}
	w.start(tag)
	w.writeSpPr(*s)
	w.end(tag)
}

func (w *chartWriter) writeDropLines() {
	w.writeLines("c:dropLines", w.dropLines)
}

func (w *chartWriter) writeHiLowLines() {
	w.writeLines("c:hiLowLines", w.hiLowLines)
}

func (w *chartWriter) writeUpDownBars() {
	if w.upDown == nil {
		return
	}
	w.start("c:upDownBars")
	w.empty("c:gapWidth", val(150))
	w.writeBars("c:upBars", w.upDown.up)
	w.writeBars("c:downBars", w.upDown.down)
	w.end("c:upDownBars")
}

func (w *chartWriter) writeBars(tag string, s Shape) {
	if !s.defined() {
		w.empty(tag)
		return
	}
	w.start(tag)
	w.writeSpPr(s)
	w.end(tag)
}
