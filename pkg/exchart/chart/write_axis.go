package chart

import "github.com/ukaji3/exchart-go/pkg/exchart/xmlwriter"

// writeXSideAxis writes the x axis of a pair as c:catAx, c:dateAx or, for
// scatter charts, c:valAx. Pairs without ids are not written.
func (w *chartWriter) writeXSideAxis(x, y *Axis, ids []int) {
	if len(ids) < 2 {
		return
	}
	switch x.Kind {
	case ValueAxis:
		w.start("c:valAx")
		w.writeAxisHead(x, y, ids[0], ids[1], w.info.catPosition, w.info.horizCat)
		w.writeCrossing(y.Crossing)
		w.empty("c:crossBetween", val(w.info.crossBetween))
		w.writeUnits(x)
		w.end("c:valAx")
	case DateAxis:
		w.start("c:dateAx")
		w.writeAxisHead(x, y, ids[0], ids[1], w.info.catPosition, false)
		if w.info.showCrosses || x.Visible {
			w.writeCrossing(y.Crossing)
		}
		w.empty("c:auto", val(1))
		w.empty("c:lblOffset", val(100))
		if x.MajorUnit != nil {
			w.empty("c:majorUnit", val(*x.MajorUnit))
			w.empty("c:majorTimeUnit", val(timeUnitOrDays(x.MajorUnitType)))
		}
		if x.MinorUnit != nil {
			w.empty("c:minorUnit", val(*x.MinorUnit))
			w.empty("c:minorTimeUnit", val(timeUnitOrDays(x.MinorUnitType)))
		}
		w.end("c:dateAx")
	default:
		w.start("c:catAx")
		w.writeAxisHead(x, y, ids[0], ids[1], w.info.catPosition, w.info.horizCat)
		// The category axis crossing is set on the value axis.
		if w.info.showCrosses || x.Visible {
			w.writeCrossing(y.Crossing)
		}
		w.empty("c:auto", val(1))
		w.empty("c:lblAlgn", val("ctr"))
		w.empty("c:lblOffset", val(100))
		w.end("c:catAx")
	}
}

// writeValAxis writes the y axis of a pair as c:valAx.
func (w *chartWriter) writeValAxis(x, y *Axis, ids []int) {
	if len(ids) < 2 {
		return
	}
	w.start("c:valAx")
	w.writeAxisHead(y, x, ids[1], ids[0], w.info.valPosition, w.info.horizVal)
	w.writeCrossing(x.Crossing)
	w.empty("c:crossBetween", val(w.info.crossBetween))
	w.writeUnits(y)
	w.end("c:valAx")
}

// writeAxisHead writes the children every axis kind shares, from c:axId
// to c:crossAx.
func (w *chartWriter) writeAxisHead(a, other *Axis, id, crossID int, position string, horiz bool) {
	w.empty("c:axId", val(id))
	w.writeScaling(a)
	if !a.Visible {
		w.empty("c:delete", val(1))
	}
	if a.Position != "" {
		position = a.Position
	}
	w.empty("c:axPos", val(flipPosition(position, other.Reverse)))
	w.writeGridlines("c:majorGridlines", a.MajorGridlines)
	w.writeGridlines("c:minorGridlines", a.MinorGridlines)
	switch {
	case a.NameFormula != "":
		w.writeTitleFormula(a.NameFormula, a.nameID, horiz, a.NameFont)
	case a.Name != "":
		w.writeTitleRich(a.Name, horiz, a.NameFont)
	}
	w.writeNumFmt(a)
	if a.MajorTickMark != "" {
		w.empty("c:majorTickMark", val(a.MajorTickMark))
	}
	labelPos := a.LabelPosition
	if labelPos == "" {
		labelPos = "nextTo"
	}
	w.empty("c:tickLblPos", val(labelPos))
	w.writeSpPr(a.Shape)
	w.writeAxisFont(a.NumFont)
	w.empty("c:crossAx", val(crossID))
}

// writeScaling writes c:scaling. Category axes only carry the orientation.
func (w *chartWriter) writeScaling(a *Axis) {
	w.start("c:scaling")
	ranged := a.Kind != CategoryAxis
	if ranged && a.LogBase != nil {
		w.empty("c:logBase", val(*a.LogBase))
	}
	orientation := "minMax"
	if a.Reverse {
		orientation = "maxMin"
	}
	w.empty("c:orientation", val(orientation))
	if ranged && a.Max != nil {
		w.empty("c:max", val(*a.Max))
	}
	if ranged && a.Min != nil {
		w.empty("c:min", val(*a.Min))
	}
	w.end("c:scaling")
}

// flipPosition mirrors an axis position when the crossing axis is reversed.
func flipPosition(pos string, reverse bool) string {
	if !reverse {
		return pos
	}
	switch pos {
	case "l":
		return "r"
	case "r":
		return "l"
	case "b":
		return "t"
	case "t":
		return "b"
	}
	return pos
}

// writeNumFmt writes c:numFmt. A non-default format is not source linked
// unless forced. Category axes skip the element for text categories.
func (w *chartWriter) writeNumFmt(a *Axis) {
	isDefault := a.NumFormat == a.defaultNumFormat
	if a.Kind == CategoryAxis && isDefault && !w.catHasNumFmt {
		return
	}
	w.empty("c:numFmt",
		xmlwriter.A("formatCode", a.NumFormat),
		xmlwriter.A("sourceLinked", isDefault || a.NumFormatLinked),
	)
}

func (w *chartWriter) writeCrossing(c Crossing) {
	switch c.Mode {
	case CrossAt:
		w.empty("c:crossesAt", val(c.Value))
	case CrossMax:
		w.empty("c:crosses", val("max"))
	case CrossMin:
		w.empty("c:crosses", val("min"))
	default:
		w.empty("c:crosses", val("autoZero"))
	}
}

func (w *chartWriter) writeUnits(a *Axis) {
	if a.MajorUnit != nil {
		w.empty("c:majorUnit", val(*a.MajorUnit))
	}
	if a.MinorUnit != nil {
		w.empty("c:minorUnit", val(*a.MinorUnit))
	}
}

func timeUnitOrDays(unit string) string {
	if unit == "" {
		return "days"
	}
	return unit
}
