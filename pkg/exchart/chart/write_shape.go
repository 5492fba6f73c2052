package chart

import "github.com/ukaji3/exchart-go/pkg/exchart/xmlwriter"

// writeSpPr writes c:spPr for a shape with any formatting set.
func (w *chartWriter) writeSpPr(s Shape) {
	if !s.defined() {
		return
	}
	w.start("c:spPr")
	if s.Fill.Defined {
		if s.Fill.None {
			w.empty("a:noFill")
		} else {
			w.writeSolidFill(s.Fill.Color)
		}
	}
	if s.Line.Defined {
		w.writeLine(s.Line)
	}
	w.end("c:spPr")
}

func (w *chartWriter) writeLine(l Line) {
	var attrs []xmlwriter.Attr
	if l.Width > 0 {
		attrs = append(attrs, xmlwriter.A("w", l.Width))
	}
	w.start("a:ln", attrs...)
	if l.None {
		w.empty("a:noFill")
	} else if l.Color != "" {
		w.writeSolidFill(l.Color)
	}
	if l.DashType != "" {
		w.empty("a:prstDash", val(l.DashType))
	}
	w.end("a:ln")
}

func (w *chartWriter) writeSolidFill(color string) {
	w.start("a:solidFill")
	if color != "" {
		w.empty("a:srgbClr", val(color))
	}
	w.end("a:solidFill")
}

func (w *chartWriter) writeMarker(m Marker) {
	if !m.Defined || m.Automatic {
		return
	}
	w.start("c:marker")
	if m.Type != "" {
		w.empty("c:symbol", val(m.Type))
	}
	if m.Size > 0 {
		w.empty("c:size", val(m.Size))
	}
	w.writeSpPr(m.Shape)
	w.end("c:marker")
}

func (w *chartWriter) writeGridlines(tag string, g Gridlines) {
	if !g.Visible {
		return
	}
	if !g.Line.Defined {
		w.empty(tag)
		return
	}
	w.start(tag)
	w.writeSpPr(Shape{Line: g.Line})
	w.end(tag)
}
