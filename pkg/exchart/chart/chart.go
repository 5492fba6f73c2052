// Package chart builds OOXML chart parts (xl/charts/chartN.xml) from an
// in-memory chart description.
package chart

import (
	"log/slog"

	"golang.org/x/text/language"
)

// Default chart settings.
const (
	DefaultStyleID = 2
	DefaultWidth   = 480
	DefaultHeight  = 288
	DefaultLang    = "en-US"
)

// Options configures a new Chart.
type Options struct {
	// Type is the chart type (area, bar, column, line, pie, doughnut, radar, scatter, stock).
	Type Type
	// Subtype refines the type, e.g. stacked or percent_stacked.
	Subtype string
	// ID is the zero-based index of the chart in its workbook. It seeds axis ids.
	ID int
	// Embedded marks a chart drawn on a worksheet rather than a chartsheet.
	Embedded bool
	// Lang is the chart language tag. Defaults to en-US.
	Lang string
	// Logger receives user input warnings. Defaults to slog.Default().
	Logger *slog.Logger
}

// TitleOptions configures the chart title.
type TitleOptions struct {
	Name        string       `yaml:"name"`
	NameFormula Ref          `yaml:"name_formula"`
	Data        []any        `yaml:"data"`
	NameFont    *FontOptions `yaml:"name_font"`
	// None hides the automatic title Excel shows for single series charts.
	None bool `yaml:"none"`
}

// LegendOptions configures the chart legend.
type LegendOptions struct {
	Position string `yaml:"position"`
	// DeleteSeries lists series indexes to hide from the legend.
	DeleteSeries []int `yaml:"delete_series"`
}

// SizeOptions sets the chart dimensions in pixels, scale and offset.
type SizeOptions struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	XScale  float64 `yaml:"x_scale"`
	YScale  float64 `yaml:"y_scale"`
	XOffset int     `yaml:"x_offset"`
	YOffset int     `yaml:"y_offset"`
}

// DataTableOptions configures the data table below the plot area. Borders
// and outline default to shown.
type DataTableOptions struct {
	Horizontal *bool `yaml:"horizontal"`
	Vertical   *bool `yaml:"vertical"`
	Outline    *bool `yaml:"outline"`
	ShowKeys   bool  `yaml:"show_keys"`
}

// UpDownBarsOptions formats the up and down bars of line and stock charts.
type UpDownBarsOptions struct {
	Up   *AreaOptions `yaml:"up"`
	Down *AreaOptions `yaml:"down"`
}

// ChartLinesOptions formats drop lines and high-low lines.
type ChartLinesOptions struct {
	Line *LineOptions `yaml:"line"`
}

// DataTable is a resolved data table record.
type DataTable struct {
	Horizontal bool
	Vertical   bool
	Outline    bool
	ShowKeys   bool
}

type title struct {
	name    string
	formula string
	dataID  dataID
	font    Font
	none    bool
}

type legend struct {
	position     string
	deleteSeries []int
}

type upDownBars struct {
	up   Shape
	down Shape
}

// Chart is one chart part. It owns its series, axes and data cache; a Chart
// must not be shared between goroutines while it is being built or written.
type Chart struct {
	l    *slog.Logger
	r    resolver
	kind Type
	info typeInfo

	id        int
	embedded  bool
	lang      string
	styleID   int
	protected bool

	width, height    int
	xScale, yScale   float64
	xOffset, yOffset int

	series      []*Series
	cache       *dataCache
	seriesIndex int

	title          title
	legend         legend
	showHiddenData bool
	showBlanks     string
	chartArea      Shape
	plotArea       Shape

	xAxis, yAxis, x2Axis, y2Axis *Axis
	axisIDs, axis2IDs            []int
	catHasNumFmt                 bool

	gap, overlap [2]*int
	upDown       *upDownBars
	dropLines    *Shape
	hiLowLines   *Shape
	table        *DataTable
}

// New creates a chart of the given type.
func New(opts Options) (*Chart, error) {
	l := opts.Logger
	if l == nil {
		l = slog.Default().With(slog.String("module", "chart"))
	}
	info, err := newTypeInfo(opts.Type, opts.Subtype, l)
	if err != nil {
		return nil, err
	}
	c := &Chart{
		l:          l,
		r:          resolver{l: l},
		kind:       opts.Type,
		info:       info,
		id:         opts.ID,
		embedded:   opts.Embedded,
		lang:       resolveLang(opts.Lang, l),
		styleID:    DefaultStyleID,
		width:      DefaultWidth,
		height:     DefaultHeight,
		xScale:     1,
		yScale:     1,
		cache:      newDataCache(),
		legend:     legend{position: "r"},
		showBlanks: "gap",
		title:      title{dataID: noData},
	}
	if info.hiLowLines {
		c.hiLowLines = &Shape{}
	}
	c.SetXAxis(AxisOptions{})
	c.SetYAxis(AxisOptions{})
	c.SetX2Axis(AxisOptions{})
	c.SetY2Axis(AxisOptions{})
	return c, nil
}

func resolveLang(lang string, l *slog.Logger) string {
	if lang == "" {
		return DefaultLang
	}
	tag, err := language.Parse(lang)
	if err != nil {
		l.Warn("invalid chart language, using default", slog.String("lang", lang))
		return DefaultLang
	}
	return tag.String()
}

// Type returns the chart type.
func (c *Chart) Type() Type {
	return c.kind
}

// Series returns the chart series in plot order.
func (c *Chart) Series() []*Series {
	return c.series
}

// StyleID returns the resolved built-in style id.
func (c *Chart) StyleID() int {
	return c.styleID
}

// SetEmbedded marks the chart as drawn on a worksheet.
func (c *Chart) SetEmbedded(embedded bool) {
	c.embedded = embedded
}

// SetTitle sets the chart title. A formula takes precedence over a name.
func (c *Chart) SetTitle(o TitleOptions) {
	name, formula := c.processNames(o.Name, o.NameFormula)
	c.title = title{
		name:    name,
		formula: formula,
		dataID:  c.cache.id(formula, o.Data),
		font:    c.r.font(o.NameFont),
		none:    o.None,
	}
}

var legendPositions = map[string]string{
	"right":  "r",
	"left":   "l",
	"top":    "t",
	"bottom": "b",
	"none":   "",
}

// SetLegend sets the legend position. Unknown positions keep the default.
func (c *Chart) SetLegend(o LegendOptions) {
	if o.Position != "" {
		pos, ok := legendPositions[o.Position]
		if !ok {
			c.l.Debug("unknown legend position ignored", slog.String("position", o.Position))
			pos = "r"
		}
		c.legend.position = pos
	}
	c.legend.deleteSeries = o.DeleteSeries
}

// SetPlotArea formats the plot area.
func (c *Chart) SetPlotArea(o AreaOptions) {
	c.plotArea = c.r.area(&o)
}

// SetChartArea formats the chart area.
func (c *Chart) SetChartArea(o AreaOptions) {
	c.chartArea = c.r.area(&o)
}

// SetStyle sets one of the 42 built-in Excel chart styles. Out of range ids
// fall back to the default style 2.
func (c *Chart) SetStyle(id int) {
	if id < 0 || id > 42 {
		c.l.Debug("chart style out of range, using default", slog.Int("style", id))
		id = DefaultStyleID
	}
	c.styleID = id
}

// Protect marks the chart as protected.
func (c *Chart) Protect() {
	c.protected = true
}

// ShowBlanksAs sets how empty cells are plotted: gap, zero or span.
func (c *Chart) ShowBlanksAs(option string) {
	switch option {
	case "":
	case "gap", "zero", "span":
		c.showBlanks = option
	default:
		c.l.Debug("unknown show blanks option", slog.String("option", option))
	}
}

// ShowHiddenData plots data in hidden rows and columns.
func (c *Chart) ShowHiddenData() {
	c.showHiddenData = true
}

// SetSize sets the chart dimensions. Zero values keep the current setting.
func (c *Chart) SetSize(o SizeOptions) {
	if o.Width > 0 {
		c.width = o.Width
	}
	if o.Height > 0 {
		c.height = o.Height
	}
	if o.XScale > 0 {
		c.xScale = o.XScale
	}
	if o.YScale > 0 {
		c.yScale = o.YScale
	}
	c.xOffset = o.XOffset
	c.yOffset = o.YOffset
}

// Extent returns the scaled chart size in EMU.
func (c *Chart) Extent() (cx, cy int64) {
	return PixelsToEMU(float64(c.width) * c.xScale), PixelsToEMU(float64(c.height) * c.yScale)
}

// Offset returns the chart offset in pixels within its anchor cell.
func (c *Chart) Offset() (x, y int) {
	return c.xOffset, c.yOffset
}

// SetTable adds a data table to the plot area.
func (c *Chart) SetTable(o DataTableOptions) {
	c.table = &DataTable{
		Horizontal: o.Horizontal == nil || *o.Horizontal,
		Vertical:   o.Vertical == nil || *o.Vertical,
		Outline:    o.Outline == nil || *o.Outline,
		ShowKeys:   o.ShowKeys,
	}
}

// SetUpDownBars adds up/down bars to line and stock charts.
func (c *Chart) SetUpDownBars(o UpDownBarsOptions) {
	c.upDown = &upDownBars{up: c.r.area(o.Up), down: c.r.area(o.Down)}
}

// SetDropLines adds drop lines to line and area charts.
func (c *Chart) SetDropLines(o ChartLinesOptions) {
	c.dropLines = &Shape{Line: c.r.line(o.Line)}
}

// SetHighLowLines adds high-low lines to line and stock charts.
func (c *Chart) SetHighLowLines(o ChartLinesOptions) {
	c.hiLowLines = &Shape{Line: c.r.line(o.Line)}
}

// Formulas returns the cached formulas that have no data yet.
func (c *Chart) Formulas() []string {
	var formulas []string
	for _, e := range c.cache.entries {
		if e.data == nil {
			formulas = append(formulas, e.formula)
		}
	}
	return formulas
}

// SetData backfills the cached data of a formula already referenced by the
// chart. It reports whether the formula is known.
func (c *Chart) SetData(formula string, data []any) bool {
	id, ok := c.cache.ids[trimFormula(formula)]
	if !ok {
		return false
	}
	if c.cache.entries[id].data == nil {
		c.cache.entries[id].data = data
	}
	return true
}
