package chart

import (
	"log/slog"
	"math"
	"strings"
)

// LineOptions configures a line or border.
type LineOptions struct {
	None     bool    `yaml:"none"`
	Color    string  `yaml:"color"`
	Width    float64 `yaml:"width"`
	DashType string  `yaml:"dash_type"`
}

// FillOptions configures a solid area fill.
type FillOptions struct {
	None  bool   `yaml:"none"`
	Color string `yaml:"color"`
}

// MarkerOptions configures series markers.
type MarkerOptions struct {
	Type   string       `yaml:"type"`
	Size   int          `yaml:"size"`
	Line   *LineOptions `yaml:"line"`
	Border *LineOptions `yaml:"border"`
	Fill   *FillOptions `yaml:"fill"`
}

// FontOptions configures title and axis label fonts. Size is in points.
type FontOptions struct {
	Name        string  `yaml:"name"`
	Size        float64 `yaml:"size"`
	Bold        *bool   `yaml:"bold"`
	Italic      *bool   `yaml:"italic"`
	Underline   bool    `yaml:"underline"`
	Strikeout   bool    `yaml:"strikeout"`
	Color       string  `yaml:"color"`
	PitchFamily *int    `yaml:"pitch_family"`
	Charset     *int    `yaml:"charset"`
	// Baseline is a superscript/subscript offset; -1 suppresses the attribute.
	Baseline int `yaml:"baseline"`
}

// TrendlineOptions configures a series trendline.
type TrendlineOptions struct {
	Type     string       `yaml:"type"`
	Name     string       `yaml:"name"`
	Order    int          `yaml:"order"`
	Period   int          `yaml:"period"`
	Forward  float64      `yaml:"forward"`
	Backward float64      `yaml:"backward"`
	Line     *LineOptions `yaml:"line"`
	Border   *LineOptions `yaml:"border"`
	Fill     *FillOptions `yaml:"fill"`
}

// ErrorBarsOptions configures x or y error bars.
type ErrorBarsOptions struct {
	Type      string       `yaml:"type"`
	Value     *float64     `yaml:"value"`
	EndStyle  *int         `yaml:"end_style"`
	Direction string       `yaml:"direction"`
	Line      *LineOptions `yaml:"line"`
	Border    *LineOptions `yaml:"border"`
	Fill      *FillOptions `yaml:"fill"`
}

// DataLabelsOptions configures series data labels.
type DataLabelsOptions struct {
	Value       bool   `yaml:"value"`
	Category    bool   `yaml:"category"`
	SeriesName  bool   `yaml:"series_name"`
	Percentage  bool   `yaml:"percentage"`
	LeaderLines bool   `yaml:"leader_lines"`
	Position    string `yaml:"position"`
}

// PointOptions overrides the formatting of a single data point.
type PointOptions struct {
	Line   *LineOptions `yaml:"line"`
	Border *LineOptions `yaml:"border"`
	Fill   *FillOptions `yaml:"fill"`
}

// AreaOptions formats the chart area or the plot area.
type AreaOptions struct {
	Line   *LineOptions `yaml:"line"`
	Border *LineOptions `yaml:"border"`
	Fill   *FillOptions `yaml:"fill"`
}

// Line is a resolved line record. Width is in EMU.
type Line struct {
	Defined  bool
	None     bool
	Color    string
	Width    int
	DashType string
}

// Fill is a resolved fill record.
type Fill struct {
	Defined bool
	None    bool
	Color   string
}

// Shape pairs the line and fill records written in a c:spPr element.
type Shape struct {
	Line Line
	Fill Fill
}

func (s Shape) defined() bool {
	return s.Line.Defined || s.Fill.Defined
}

// Marker is a resolved marker record.
type Marker struct {
	Defined   bool
	Automatic bool
	Type      string
	Size      int
	Shape
}

// Font is a resolved font record. Size is in hundredths of a point.
type Font struct {
	Defined     bool
	Name        string
	Size        int
	Bold        *bool
	Italic      *bool
	Underline   bool
	Strikeout   bool
	Color       string
	PitchFamily *int
	Charset     *int
	Baseline    int
}

// Trendline is a resolved trendline record.
type Trendline struct {
	Defined  bool
	Type     string
	Name     string
	Order    int
	Period   int
	Forward  float64
	Backward float64
	Shape
}

// ErrorBars is a resolved error bars record.
type ErrorBars struct {
	Defined   bool
	Type      string
	Value     float64
	EndCap    bool
	Direction string
	Shape
}

// DataLabels is a resolved data labels record.
type DataLabels struct {
	Defined     bool
	Position    string
	Value       bool
	Category    bool
	SeriesName  bool
	Percentage  bool
	LeaderLines bool
}

// Point is a resolved per-point override.
type Point struct {
	Defined bool
	Shape
}

// DashTypeMap maps option dash names to DrawingML preset dashes.
var DashTypeMap = map[string]string{
	"solid":               "solid",
	"round_dot":           "sysDot",
	"square_dot":          "sysDash",
	"dash":                "dash",
	"dash_dot":            "dashDot",
	"long_dash":           "lgDash",
	"long_dash_dot":       "lgDashDot",
	"long_dash_dot_dot":   "lgDashDotDot",
	"dot":                 "dot",
	"system_dash_dot":     "sysDashDot",
	"system_dash_dot_dot": "sysDashDotDot",
}

// MarkerTypeMap maps option marker names to c:symbol values.
var MarkerTypeMap = map[string]string{
	"automatic":  "automatic",
	"none":       "none",
	"square":     "square",
	"diamond":    "diamond",
	"triangle":   "triangle",
	"x":          "x",
	"star":       "star",
	"dot":        "dot",
	"short_dash": "dash",
	"dash":       "dash",
	"long_dash":  "dash",
	"circle":     "circle",
	"plus":       "plus",
	"picture":    "picture",
}

// TrendlineTypeMap maps option trendline names to c:trendlineType values.
var TrendlineTypeMap = map[string]string{
	"exponential":    "exp",
	"linear":         "linear",
	"log":            "log",
	"moving_average": "movingAvg",
	"polynomial":     "poly",
	"power":          "power",
}

// ErrorBarTypeMap maps option error bar names to c:errValType values.
var ErrorBarTypeMap = map[string]string{
	"fixed":              "fixedVal",
	"percentage":         "percentage",
	"standard_deviation": "stdDev",
	"standard_error":     "stdErr",
}

// LabelPositionMap maps option data label positions to c:dLblPos values.
var LabelPositionMap = map[string]string{
	"center":      "ctr",
	"right":       "r",
	"left":        "l",
	"top":         "t",
	"above":       "t",
	"bottom":      "b",
	"below":       "b",
	"inside_base": "inBase",
	"inside_end":  "inEnd",
	"outside_end": "outEnd",
	"best_fit":    "bestFit",
}

// namedColors are the colour names accepted in place of #RRGGBB.
var namedColors = map[string]string{
	"black":   "000000",
	"blue":    "0000FF",
	"brown":   "800000",
	"cyan":    "00FFFF",
	"gray":    "808080",
	"green":   "008000",
	"lime":    "00FF00",
	"magenta": "FF00FF",
	"navy":    "000080",
	"orange":  "FF6600",
	"pink":    "FF00FF",
	"purple":  "800080",
	"red":     "FF0000",
	"silver":  "C0C0C0",
	"white":   "FFFFFF",
	"yellow":  "FFFF00",
}

// resolver converts option structs into property records, reporting bad
// option values to the chart logger.
type resolver struct {
	l *slog.Logger
}

func resolveColor(color string) string {
	if color == "" {
		return ""
	}
	if rgb, ok := namedColors[strings.ToLower(color)]; ok {
		return rgb
	}
	return strings.ToUpper(strings.TrimPrefix(color, "#"))
}

// lineWidth rounds a point width to the nearest 0.25pt and converts it to EMU.
func lineWidth(points float64) int {
	points = math.Floor((points+0.125)*4) / 4
	return int(0.5 + 12700*points)
}

func (r resolver) line(o *LineOptions) Line {
	if o == nil || (*o == LineOptions{}) {
		return Line{}
	}
	line := Line{
		Defined: true,
		None:    o.None,
		Color:   resolveColor(o.Color),
	}
	if o.Width > 0 {
		line.Width = lineWidth(o.Width)
	}
	if o.DashType != "" {
		dash, ok := DashTypeMap[o.DashType]
		if !ok {
			r.l.Warn("unknown line dash type", slog.String("dash_type", o.DashType))
			return Line{}
		}
		line.DashType = dash
	}
	return line
}

// border resolves a line, letting border take precedence over line.
func (r resolver) border(line, border *LineOptions) Line {
	if border != nil {
		return r.line(border)
	}
	return r.line(line)
}

func (r resolver) fill(o *FillOptions) Fill {
	if o == nil || (*o == FillOptions{}) {
		return Fill{}
	}
	return Fill{
		Defined: true,
		None:    o.None,
		Color:   resolveColor(o.Color),
	}
}

func (r resolver) area(o *AreaOptions) Shape {
	if o == nil {
		return Shape{}
	}
	return Shape{Line: r.border(o.Line, o.Border), Fill: r.fill(o.Fill)}
}

// marker resolves marker options. No options means an automatic marker.
func (r resolver) marker(o *MarkerOptions) Marker {
	if o == nil {
		return Marker{Automatic: true}
	}
	m := Marker{
		Defined: true,
		Size:    o.Size,
		Shape:   Shape{Line: r.border(o.Line, o.Border), Fill: r.fill(o.Fill)},
	}
	if o.Type != "" {
		symbol, ok := MarkerTypeMap[o.Type]
		if !ok {
			r.l.Warn("unknown marker type", slog.String("type", o.Type))
			return Marker{Automatic: true}
		}
		if symbol == "automatic" {
			m.Automatic = true
		} else {
			m.Type = symbol
		}
	}
	if m.Type == "" && m.Size == 0 && !m.Shape.defined() {
		m.Automatic = true
	}
	return m
}

func (r resolver) font(o *FontOptions) Font {
	if o == nil || o.empty() {
		return Font{}
	}
	return Font{
		Defined:     true,
		Name:        o.Name,
		Size:        int(o.Size * 100),
		Bold:        o.Bold,
		Italic:      o.Italic,
		Underline:   o.Underline,
		Strikeout:   o.Strikeout,
		Color:       resolveColor(o.Color),
		PitchFamily: o.PitchFamily,
		Charset:     o.Charset,
		Baseline:    o.Baseline,
	}
}

func (o *FontOptions) empty() bool {
	return o.Name == "" && o.Size == 0 && o.Bold == nil && o.Italic == nil &&
		!o.Underline && !o.Strikeout && o.Color == "" &&
		o.PitchFamily == nil && o.Charset == nil && o.Baseline == 0
}

func (r resolver) trendline(o *TrendlineOptions) Trendline {
	if o == nil {
		return Trendline{}
	}
	kind, ok := TrendlineTypeMap[o.Type]
	if !ok {
		r.l.Warn("unknown trendline type", slog.String("type", o.Type))
		return Trendline{}
	}
	t := Trendline{
		Defined:  true,
		Type:     kind,
		Name:     o.Name,
		Order:    o.Order,
		Period:   o.Period,
		Forward:  o.Forward,
		Backward: o.Backward,
		Shape:    Shape{Line: r.border(o.Line, o.Border), Fill: r.fill(o.Fill)},
	}
	if t.Order < 2 {
		t.Order = 2
	}
	if t.Period < 2 {
		t.Period = 2
	}
	return t
}

func (r resolver) errorBars(o *ErrorBarsOptions) ErrorBars {
	if o == nil || *o == (ErrorBarsOptions{}) {
		return ErrorBars{}
	}
	e := ErrorBars{
		Defined:   true,
		Type:      "fixedVal",
		Value:     1,
		EndCap:    true,
		Direction: "both",
		Shape:     Shape{Line: r.border(o.Line, o.Border), Fill: r.fill(o.Fill)},
	}
	if o.Type != "" {
		kind, ok := ErrorBarTypeMap[o.Type]
		if !ok {
			r.l.Warn("unknown error bar type", slog.String("type", o.Type))
			return ErrorBars{}
		}
		e.Type = kind
	}
	if o.Value != nil {
		e.Value = *o.Value
	}
	if o.EndStyle != nil {
		e.EndCap = *o.EndStyle != 0
	}
	switch o.Direction {
	case "", "both":
	case "plus", "minus":
		e.Direction = o.Direction
	default:
		r.l.Warn("unknown error bar direction", slog.String("direction", o.Direction))
	}
	return e
}

func (r resolver) labels(o *DataLabelsOptions) DataLabels {
	if o == nil || (*o == DataLabelsOptions{}) {
		return DataLabels{}
	}
	d := DataLabels{
		Defined:     true,
		Value:       o.Value,
		Category:    o.Category,
		SeriesName:  o.SeriesName,
		Percentage:  o.Percentage,
		LeaderLines: o.LeaderLines,
	}
	if o.Position != "" {
		pos, ok := LabelPositionMap[o.Position]
		if !ok {
			r.l.Warn("unknown data label position", slog.String("position", o.Position))
		} else {
			d.Position = pos
		}
	}
	return d
}

// points resolves per-point overrides; nil entries keep the series default.
func (r resolver) points(opts []*PointOptions) []Point {
	if len(opts) == 0 {
		return nil
	}
	points := make([]Point, len(opts))
	for i, o := range opts {
		if o == nil {
			continue
		}
		shape := Shape{Line: r.border(o.Line, o.Border), Fill: r.fill(o.Fill)}
		points[i] = Point{Defined: shape.defined(), Shape: shape}
	}
	return points
}
