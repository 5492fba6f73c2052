package chart

import (
	"fmt"
	"log/slog"
)

// Type is a chart type name.
type Type string

// Chart types.
const (
	TypeArea     Type = "area"
	TypeBar      Type = "bar"
	TypeColumn   Type = "column"
	TypeLine     Type = "line"
	TypePie      Type = "pie"
	TypeDoughnut Type = "doughnut"
	TypeRadar    Type = "radar"
	TypeScatter  Type = "scatter"
	TypeStock    Type = "stock"
)

// Subtypes lists the accepted subtypes per chart type. The first entry is
// the default.
var Subtypes = map[Type][]string{
	TypeArea:     {"standard", "stacked", "percent_stacked"},
	TypeBar:      {"clustered", "stacked", "percent_stacked"},
	TypeColumn:   {"clustered", "stacked", "percent_stacked"},
	TypeLine:     {"standard"},
	TypePie:      {""},
	TypeDoughnut: {""},
	TypeRadar:    {"marker", "with_markers", "filled"},
	TypeScatter:  {"marker_only", "straight_with_markers", "straight", "smooth_with_markers", "smooth"},
	TypeStock:    {""},
}

// groupings maps subtypes to c:grouping values.
var groupings = map[string]string{
	"standard":        "standard",
	"clustered":       "clustered",
	"stacked":         "stacked",
	"percent_stacked": "percentStacked",
}

// plotGroup writes the chart type element (c:barChart, c:lineChart, ...)
// for the series on the primary or the secondary axes.
type plotGroup interface {
	writePlotGroup(w *chartWriter, primary bool)
}

// seriesLayout lists the c:ser children a plot group allows.
type seriesLayout struct {
	marker           bool
	invertIfNegative bool
	trendline        bool
	errorBars        bool
	catTag           string
	valTag           string
	smooth           bool
}

var (
	defaultLayout = seriesLayout{marker: true, trendline: true, errorBars: true, catTag: "c:cat", valTag: "c:val"}
	barLayout     = seriesLayout{invertIfNegative: true, trendline: true, errorBars: true, catTag: "c:cat", valTag: "c:val"}
	areaLayout    = seriesLayout{trendline: true, errorBars: true, catTag: "c:cat", valTag: "c:val"}
	pieLayout     = seriesLayout{catTag: "c:cat", valTag: "c:val"}
	radarLayout   = seriesLayout{marker: true, catTag: "c:cat", valTag: "c:val"}
	scatterLayout = seriesLayout{marker: true, trendline: true, errorBars: true, catTag: "c:xVal", valTag: "c:yVal"}
)

// typeInfo holds everything that differs between chart types.
type typeInfo struct {
	plot    plotGroup
	subtype string
	layout  seriesLayout

	requiresCategory bool
	defaultMarker    *Marker
	seriesDefaults   func(*Series)

	hasAxes bool
	// swapAxes makes the x axis the value axis of the primary pair (bar).
	swapAxes     bool
	categoryKind AxisKind
	catPosition  string
	valPosition  string
	horizCat     bool
	horizVal     bool
	showCrosses  bool
	crossBetween string

	valueNumFormat    string
	valueTickMark     string
	categoryGridlines bool

	hiLowLines bool
}

func newTypeInfo(t Type, subtype string, l *slog.Logger) (typeInfo, error) {
	subtypes, ok := Subtypes[t]
	if !ok {
		return typeInfo{}, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	if subtype == "" {
		subtype = subtypes[0]
	} else if !contains(subtypes, subtype) {
		l.Warn("unknown chart subtype, using default",
			slog.String("type", string(t)), slog.String("subtype", subtype))
		subtype = subtypes[0]
	}

	info := typeInfo{
		subtype:      subtype,
		layout:       defaultLayout,
		hasAxes:      true,
		categoryKind: CategoryAxis,
		catPosition:  "b",
		valPosition:  "l",
		horizVal:     true,
		showCrosses:  true,
		crossBetween: "between",
	}
	if subtype == "percent_stacked" {
		info.valueNumFormat = "0%"
	}

	switch t {
	case TypeArea:
		info.plot = areaPlot{grouping: groupings[subtype]}
		info.layout = areaLayout
		info.crossBetween = "midCat"
	case TypeBar, TypeColumn:
		p := barPlot{dir: "col", grouping: groupings[subtype], stacked: subtype != "clustered"}
		info.layout = barLayout
		if t == TypeBar {
			p.dir = "bar"
			info.swapAxes = true
			info.catPosition = "l"
			info.valPosition = "b"
			info.horizCat = true
			info.horizVal = false
			info.showCrosses = false
		}
		info.plot = p
	case TypeLine:
		info.plot = linePlot{}
	case TypePie, TypeDoughnut:
		info.plot = piePlot{doughnut: t == TypeDoughnut}
		info.layout = pieLayout
		info.hasAxes = false
	case TypeRadar:
		style := "marker"
		if subtype == "filled" {
			style = "filled"
		}
		info.plot = radarPlot{style: style}
		info.layout = radarLayout
		info.categoryGridlines = true
		info.valueTickMark = "cross"
		if subtype == "marker" {
			info.defaultMarker = &Marker{Defined: true, Type: "none"}
		}
	case TypeScatter:
		style := "lineMarker"
		smooth := subtype == "smooth" || subtype == "smooth_with_markers"
		if smooth {
			style = "smoothMarker"
		}
		info.plot = scatterPlot{style: style}
		info.layout = scatterLayout
		info.layout.smooth = smooth
		info.requiresCategory = true
		info.categoryKind = ValueAxis
		info.crossBetween = "midCat"
		switch subtype {
		case "straight", "smooth":
			info.defaultMarker = &Marker{Defined: true, Type: "none"}
		case "marker_only":
			info.seriesDefaults = hideLine
		}
	case TypeStock:
		info.plot = stockPlot{}
		info.categoryKind = DateAxis
		info.hiLowLines = true
		info.defaultMarker = &Marker{Defined: true, Type: "none"}
		info.seriesDefaults = hideLine
	}
	return info, nil
}

// hideLine gives a series without line formatting a hidden 2.25pt line.
func hideLine(s *Series) {
	if !s.Line.Defined {
		s.Line = Line{Defined: true, None: true, Width: lineWidth(2.25)}
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

type areaPlot struct {
	grouping string
}

func (p areaPlot) writePlotGroup(w *chartWriter, primary bool) {
	series := w.groupSeries(primary)
	if len(series) == 0 {
		return
	}
	w.start("c:areaChart")
	w.grouping(p.grouping)
	w.writeSeries(series)
	w.writeDropLines()
	w.writeAxisIDs(primary)
	w.end("c:areaChart")
}

type barPlot struct {
	dir      string
	grouping string
	stacked  bool
}

func (p barPlot) writePlotGroup(w *chartWriter, primary bool) {
	series := w.groupSeries(primary)
	if len(series) == 0 {
		return
	}
	group := 0
	if !primary {
		group = 1
	}
	w.start("c:barChart")
	w.empty("c:barDir", val(p.dir))
	w.grouping(p.grouping)
	w.writeSeries(series)
	if gap := w.gap[group]; gap != nil {
		w.empty("c:gapWidth", val(*gap))
	}
	overlap := w.overlap[group]
	if overlap == nil && p.stacked {
		full := 100
		overlap = &full
	}
	if overlap != nil {
		w.empty("c:overlap", val(*overlap))
	}
	w.writeAxisIDs(primary)
	w.end("c:barChart")
}

type linePlot struct{}

func (linePlot) writePlotGroup(w *chartWriter, primary bool) {
	series := w.groupSeries(primary)
	if len(series) == 0 {
		return
	}
	w.start("c:lineChart")
	w.grouping("standard")
	w.writeSeries(series)
	w.writeDropLines()
	w.writeHiLowLines()
	w.writeUpDownBars()
	w.empty("c:marker", val(1))
	w.writeAxisIDs(primary)
	w.end("c:lineChart")
}

type piePlot struct {
	doughnut bool
}

func (p piePlot) writePlotGroup(w *chartWriter, primary bool) {
	if !primary {
		return
	}
	tag := "c:pieChart"
	if p.doughnut {
		tag = "c:doughnutChart"
	}
	w.start(tag)
	w.empty("c:varyColors", val(1))
	w.writeSeries(w.series)
	w.empty("c:firstSliceAng", val(0))
	if p.doughnut {
		w.empty("c:holeSize", val(50))
	}
	w.end(tag)
}

type radarPlot struct {
	style string
}

func (p radarPlot) writePlotGroup(w *chartWriter, primary bool) {
	series := w.groupSeries(primary)
	if len(series) == 0 {
		return
	}
	w.start("c:radarChart")
	w.empty("c:radarStyle", val(p.style))
	w.writeSeries(series)
	w.writeAxisIDs(primary)
	w.end("c:radarChart")
}

type scatterPlot struct {
	style string
}

func (p scatterPlot) writePlotGroup(w *chartWriter, primary bool) {
	series := w.groupSeries(primary)
	if len(series) == 0 {
		return
	}
	w.start("c:scatterChart")
	w.empty("c:scatterStyle", val(p.style))
	w.writeSeries(series)
	w.writeAxisIDs(primary)
	w.end("c:scatterChart")
}

type stockPlot struct{}

func (stockPlot) writePlotGroup(w *chartWriter, primary bool) {
	series := w.groupSeries(primary)
	if len(series) == 0 {
		return
	}
	w.start("c:stockChart")
	w.writeSeries(series)
	w.writeDropLines()
	w.writeHiLowLines()
	w.writeUpDownBars()
	w.writeAxisIDs(primary)
	w.end("c:stockChart")
}
