package chart

import "github.com/ukaji3/exchart-go/pkg/exchart/xmlwriter"

// writeTitleRich writes a title holding literal text.
func (w *chartWriter) writeTitleRich(text string, horiz bool, font Font) {
	w.start("c:title")
	w.start("c:tx")
	w.start("c:rich")
	w.writeBodyPr(horiz)
	w.empty("a:lstStyle")
	w.start("a:p")
	w.start("a:pPr")
	w.writeRunProps("a:defRPr", nil, font)
	w.end("a:pPr")
	w.start("a:r")
	w.writeRunProps("a:rPr", []xmlwriter.Attr{xmlwriter.A("lang", w.lang)}, font)
	w.text("a:t", text)
	w.end("a:r")
	w.end("a:p")
	w.end("c:rich")
	w.end("c:tx")
	w.empty("c:layout")
	w.end("c:title")
}

// writeTitleFormula writes a title linked to a cell.
func (w *chartWriter) writeTitleFormula(formula string, id dataID, horiz bool, font Font) {
	w.start("c:title")
	w.start("c:tx")
	w.writeStrRef(formula, w.cached(id))
	w.end("c:tx")
	w.empty("c:layout")
	w.start("c:txPr")
	w.writeBodyPr(horiz)
	w.empty("a:lstStyle")
	w.writeParagraph(font)
	w.end("c:txPr")
	w.end("c:title")
}

// writeAxisFont writes the c:txPr of the axis number labels.
func (w *chartWriter) writeAxisFont(font Font) {
	if !font.Defined {
		return
	}
	w.start("c:txPr")
	w.empty("a:bodyPr")
	w.empty("a:lstStyle")
	w.writeParagraph(font)
	w.end("c:txPr")
}

func (w *chartWriter) writeParagraph(font Font) {
	w.start("a:p")
	w.start("a:pPr")
	w.writeRunProps("a:defRPr", nil, font)
	w.end("a:pPr")
	w.empty("a:endParaRPr", xmlwriter.A("lang", w.lang))
	w.end("a:p")
}

// writeBodyPr writes a:bodyPr, rotated for vertical axis titles.
func (w *chartWriter) writeBodyPr(horiz bool) {
	if !horiz {
		w.empty("a:bodyPr")
		return
	}
	w.empty("a:bodyPr", xmlwriter.A("rot", -5400000), xmlwriter.A("vert", "horz"))
}

// writeRunProps writes a:defRPr or a:rPr. Style attributes go on the
// element; colour and typeface are children.
func (w *chartWriter) writeRunProps(tag string, lead []xmlwriter.Attr, font Font) {
	attrs := append(lead, fontStyleAttrs(font)...)
	latin := fontLatinAttrs(font)
	if font.Color == "" && len(latin) == 0 {
		w.empty(tag, attrs...)
		return
	}
	w.start(tag, attrs...)
	if font.Color != "" {
		w.writeSolidFill(font.Color)
	}
	if len(latin) > 0 {
		w.empty("a:latin", latin...)
	}
	w.end(tag)
}

func fontStyleAttrs(f Font) []xmlwriter.Attr {
	if !f.Defined {
		return nil
	}
	var attrs []xmlwriter.Attr
	if f.Size > 0 {
		attrs = append(attrs, xmlwriter.A("sz", f.Size))
	}
	if f.Bold != nil {
		attrs = append(attrs, xmlwriter.A("b", *f.Bold))
	}
	if f.Italic != nil {
		attrs = append(attrs, xmlwriter.A("i", *f.Italic))
	}
	if f.Underline {
		attrs = append(attrs, xmlwriter.A("u", "sng"))
	}
	if f.Strikeout {
		attrs = append(attrs, xmlwriter.A("strike", "sngStrike"))
	}
	if f.Baseline != -1 {
		attrs = append(attrs, xmlwriter.A("baseline", f.Baseline))
	}
	return attrs
}

func fontLatinAttrs(f Font) []xmlwriter.Attr {
	if !f.Defined {
		return nil
	}
	var attrs []xmlwriter.Attr
	if f.Name != "" {
		attrs = append(attrs, xmlwriter.A("typeface", f.Name))
	}
	if f.PitchFamily != nil {
		attrs = append(attrs, xmlwriter.A("pitchFamily", *f.PitchFamily))
	}
	if f.Charset != nil {
		attrs = append(attrs, xmlwriter.A("charset", *f.Charset))
	}
	return attrs
}
