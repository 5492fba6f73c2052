package chart

import "github.com/ukaji3/exchart-go/pkg/exchart/xmlwriter"

func (w *chartWriter) writeSeries(series []*Series) {
	for _, s := range series {
		w.writeSer(s)
	}
}

// writeSer writes one c:ser. idx and order follow the write order.
func (w *chartWriter) writeSer(s *Series) {
	index := w.seriesIndex
	w.seriesIndex++
	layout := w.info.layout

	w.start("c:ser")
	w.empty("c:idx", val(index))
	w.empty("c:order", val(index))
	w.writeSeriesName(s)
	w.writeSpPr(s.Shape)
	if layout.marker {
		w.writeMarker(s.Marker)
	}
	if layout.invertIfNegative && s.InvertIfNegative {
		w.empty("c:invertIfNegative", val(1))
	}
	w.writePoints(s.Points)
	w.writeDataLabels(s.Labels)
	if layout.trendline {
		w.writeTrendline(s.Trendline)
	}
	if layout.errorBars {
		w.writeErrBars("x", s.XErrorBars)
		w.writeErrBars("y", s.YErrorBars)
	}
	w.writeCat(s)
	w.writeVal(s)
	if layout.smooth {
		w.empty("c:smooth", val(1))
	}
	w.end("c:ser")
}

func (w *chartWriter) writeSeriesName(s *Series) {
	switch {
	case s.NameFormula != "":
		w.start("c:tx")
		w.writeStrRef(s.NameFormula, w.cached(s.nameID))
		w.end("c:tx")
	case s.Name != "":
		w.start("c:tx")
		w.text("c:v", s.Name)
		w.end("c:tx")
	}
}

func (w *chartWriter) writePoints(points []Point) {
	for i, p := range points {
		if !p.Defined {
			continue
		}
		w.start("c:dPt")
		w.empty("c:idx", val(i))
		w.writeSpPr(p.Shape)
		w.end("c:dPt")
	}
}

func (w *chartWriter) writeDataLabels(d DataLabels) {
	if !d.Defined {
		return
	}
	w.start("c:dLbls")
	if d.Position != "" {
		w.empty("c:dLblPos", val(d.Position))
	}
	if d.Value {
		w.empty("c:showVal", val(1))
	}
	if d.Category {
		w.empty("c:showCatName", val(1))
	}
	if d.SeriesName {
		w.empty("c:showSerName", val(1))
	}
	if d.Percentage {
		w.empty("c:showPercent", val(1))
	}
	if d.LeaderLines {
		w.empty("c:showLeaderLines", val(1))
	}
	w.end("c:dLbls")
}

func (w *chartWriter) writeTrendline(t Trendline) {
	if !t.Defined {
		return
	}
	w.start("c:trendline")
	if t.Name != "" {
		w.text("c:name", t.Name)
	}
	w.writeSpPr(t.Shape)
	w.empty("c:trendlineType", val(t.Type))
	switch t.Type {
	case "poly":
		w.empty("c:order", val(t.Order))
	case "movingAvg":
		w.empty("c:period", val(t.Period))
	}
	if t.Forward != 0 {
		w.empty("c:forward", val(t.Forward))
	}
	if t.Backward != 0 {
		w.empty("c:backward", val(t.Backward))
	}
	w.end("c:trendline")
}

func (w *chartWriter) writeErrBars(dir string, e ErrorBars) {
	if !e.Defined {
		return
	}
	w.start("c:errBars")
	w.empty("c:errDir", val(dir))
	w.empty("c:errBarType", val(e.Direction))
	w.empty("c:errValType", val(e.Type))
	if !e.EndCap {
		w.empty("c:noEndCap", val(1))
	}
	// Standard error is computed by Excel.
	if e.Type != "stdErr" {
		w.empty("c:val", val(e.Value))
	}
	w.writeSpPr(e.Shape)
	w.end("c:errBars")
}

// writeCat writes the category reference and records whether the
// categories carry a number format.
func (w *chartWriter) writeCat(s *Series) {
	if s.Categories == "" {
		return
	}
	data := w.cached(s.catID)
	tag := w.info.layout.catTag
	w.start(tag)
	if dataType(data) == "str" {
		w.catHasNumFmt = false
		w.writeStrRef(s.Categories, data)
	} else {
		w.catHasNumFmt = true
		w.writeNumRef(s.Categories, data)
	}
	w.end(tag)
}

// writeVal writes the value reference. Values are always numeric.
func (w *chartWriter) writeVal(s *Series) {
	tag := w.info.layout.valTag
	w.start(tag)
	w.writeNumRef(s.Values, w.cached(s.valID))
	w.end(tag)
}

func (w *chartWriter) writeNumRef(formula string, data []any) {
	w.start("c:numRef")
	w.text("c:f", formula)
	if len(data) > 0 {
		w.writeNumCache(data)
	}
	w.end("c:numRef")
}

func (w *chartWriter) writeStrRef(formula string, data []any) {
	w.start("c:strRef")
	w.text("c:f", formula)
	if len(data) > 0 {
		w.writeStrCache(data)
	}
	w.end("c:strRef")
}

func (w *chartWriter) writeNumCache(data []any) {
	w.start("c:numCache")
	w.text("c:formatCode", "General")
	w.empty("c:ptCount", val(len(data)))
	for i, v := range data {
		if v == nil {
			continue
		}
		w.writePt(i, numText(v))
	}
	w.end("c:numCache")
}

func (w *chartWriter) writeStrCache(data []any) {
	w.start("c:strCache")
	w.empty("c:ptCount", val(len(data)))
	for i, v := range data {
		if v == nil {
			continue
		}
		w.writePt(i, strText(v))
	}
	w.end("c:strCache")
}

func (w *chartWriter) writePt(i int, v string) {
	w.start("c:pt", xmlwriter.A("idx", i))
	w.text("c:v", v)
	w.end("c:pt")
}
