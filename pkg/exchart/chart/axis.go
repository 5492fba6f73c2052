package chart

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"dario.cat/mergo"
	"github.com/tiendc/go-deepcopy"
	"github.com/xuri/nfp"
	"gopkg.in/yaml.v3"
)

// AxisKind is the OOXML axis element an axis is written as.
type AxisKind int

const (
	CategoryAxis AxisKind = iota
	ValueAxis
	DateAxis
)

func (k AxisKind) String() string {
	switch k {
	case ValueAxis:
		return "value"
	case DateAxis:
		return "date"
	}
	return "category"
}

// CrossMode selects where the opposing axis crosses.
type CrossMode int

const (
	// CrossAuto crosses at zero (autoZero).
	CrossAuto CrossMode = iota
	CrossMax
	CrossMin
	// CrossAt crosses at Crossing.Value.
	CrossAt
)

// Crossing is the point where the opposing axis crosses this one.
type Crossing struct {
	Mode  CrossMode
	Value float64
}

// UnmarshalYAML accepts "auto", "max", "min" or a number.
func (c *Crossing) UnmarshalYAML(node *yaml.Node) error {
	switch strings.ToLower(node.Value) {
	case "", "auto", "autozero":
		*c = Crossing{Mode: CrossAuto}
	case "max":
		*c = Crossing{Mode: CrossMax}
	case "min":
		*c = Crossing{Mode: CrossMin}
	default:
		v, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return fmt.Errorf("line %d: invalid axis crossing %q", node.Line, node.Value)
		}
		*c = Crossing{Mode: CrossAt, Value: v}
	}
	return nil
}

// GridlineOptions configures major or minor gridlines.
type GridlineOptions struct {
	Visible bool         `yaml:"visible"`
	Line    *LineOptions `yaml:"line"`
}

// AxisOptions configures one axis. Unset fields take the axis defaults.
type AxisOptions struct {
	Name        string       `yaml:"name"`
	NameFormula Ref          `yaml:"name_formula"`
	NameData    []any        `yaml:"name_data"`
	NameFont    *FontOptions `yaml:"name_font"`
	NumFont     *FontOptions `yaml:"num_font"`

	Visible *bool `yaml:"visible"`
	Reverse bool  `yaml:"reverse"`
	// DateAxis writes a category axis as a date axis.
	DateAxis bool `yaml:"date_axis"`

	Min     *float64 `yaml:"min"`
	Max     *float64 `yaml:"max"`
	LogBase *float64 `yaml:"log_base"`

	// MajorUnit and MinorUnit are automatic when nil; an explicit 0 is written.
	MajorUnit     *float64 `yaml:"major_unit"`
	MinorUnit     *float64 `yaml:"minor_unit"`
	MajorUnitType string   `yaml:"major_unit_type"`
	MinorUnitType string   `yaml:"minor_unit_type"`

	Crossing      *Crossing `yaml:"crossing"`
	Position      string    `yaml:"position"`
	LabelPosition string    `yaml:"label_position"`
	MajorTickMark string    `yaml:"major_tick_mark"`

	NumFormat       string `yaml:"num_format"`
	NumFormatLinked bool   `yaml:"num_format_linked"`

	MajorGridlines *GridlineOptions `yaml:"major_gridlines"`
	MinorGridlines *GridlineOptions `yaml:"minor_gridlines"`

	Line   *LineOptions `yaml:"line"`
	Border *LineOptions `yaml:"border"`
	Fill   *FillOptions `yaml:"fill"`
}

// Gridlines is a resolved gridlines record.
type Gridlines struct {
	Visible bool
	Line    Line
}

// Axis is a resolved axis.
type Axis struct {
	Kind        AxisKind
	Name        string
	NameFormula string
	nameID      dataID
	NameFont    Font
	NumFont     Font

	Visible bool
	Reverse bool

	Min, Max, LogBase    *float64
	MajorUnit, MinorUnit *float64
	MajorUnitType        string
	MinorUnitType        string

	Crossing      Crossing
	Position      string
	LabelPosition string
	MajorTickMark string

	NumFormat        string
	NumFormatLinked  bool
	defaultNumFormat string

	MajorGridlines Gridlines
	MinorGridlines Gridlines
	Shape
}

// LabelPositionOptions maps axis label positions to c:tickLblPos values.
var LabelPositionOptions = map[string]string{
	"next_to": "nextTo",
	"high":    "high",
	"low":     "low",
	"none":    "none",
}

// TickMarkOptions maps tick mark styles to c:majorTickMark values.
var TickMarkOptions = map[string]string{
	"none":    "none",
	"inside":  "in",
	"outside": "out",
	"cross":   "cross",
}

// TimeUnitOptions lists the accepted date axis time units.
var TimeUnitOptions = map[string]string{
	"days":   "days",
	"months": "months",
	"years":  "years",
}

type axisRole int

const (
	roleX axisRole = iota
	roleY
	roleX2
	roleY2
)

func (r axisRole) String() string {
	return [...]string{"x", "y", "x2", "y2"}[r]
}

// SetXAxis configures the primary x axis.
func (c *Chart) SetXAxis(o AxisOptions) {
	c.xAxis = c.convertAxis(roleX, o)
}

// SetYAxis configures the primary y axis.
func (c *Chart) SetYAxis(o AxisOptions) {
	c.yAxis = c.convertAxis(roleY, o)
}

// SetX2Axis configures the secondary x axis.
func (c *Chart) SetX2Axis(o AxisOptions) {
	c.x2Axis = c.convertAxis(roleX2, o)
}

// SetY2Axis configures the secondary y axis.
func (c *Chart) SetY2Axis(o AxisOptions) {
	c.y2Axis = c.convertAxis(roleY2, o)
}

// axisDefaults returns the defaults merged under the user options of an axis.
func (c *Chart) axisDefaults(role axisRole, kind AxisKind) AxisOptions {
	d := AxisOptions{NumFormat: "General"}
	if kind == DateAxis {
		d.NumFormat = "dd/mm/yyyy"
	}
	switch role {
	case roleX, roleY:
		valueSide := (role == roleY) != c.info.swapAxes
		if valueSide {
			d.MajorGridlines = &GridlineOptions{Visible: true}
			if c.info.valueNumFormat != "" {
				d.NumFormat = c.info.valueNumFormat
			}
			d.MajorTickMark = c.info.valueTickMark
		} else if c.info.categoryGridlines {
			d.MajorGridlines = &GridlineOptions{Visible: true}
		}
	case roleX2:
		hidden := false
		d.Visible = &hidden
		d.LabelPosition = "none"
		d.Crossing = &Crossing{Mode: CrossMax}
	case roleY2:
		d.Position = "right"
	}
	return d
}

// axisKind returns the element kind an axis role is written as.
func (c *Chart) axisKind(role axisRole, o AxisOptions) AxisKind {
	categorySide := role == roleX || role == roleX2
	if role == roleX || role == roleY {
		categorySide = categorySide != c.info.swapAxes
	}
	if !categorySide {
		return ValueAxis
	}
	if o.DateAxis {
		return DateAxis
	}
	return c.info.categoryKind
}

// convertAxis merges user options over the axis defaults and resolves them.
func (c *Chart) convertAxis(role axisRole, in AxisOptions) *Axis {
	var o AxisOptions
	if err := deepcopy.Copy(&o, &in); err != nil {
		c.l.Warn("copy axis options", slog.String("axis", role.String()), slog.String("error", err.Error()))
		o = in
	}
	kind := c.axisKind(role, o)
	defaults := c.axisDefaults(role, kind)
	if err := mergo.Merge(&o, defaults, mergo.WithoutDereference); err != nil {
		c.l.Warn("merge axis defaults", slog.String("axis", role.String()), slog.String("error", err.Error()))
	}

	name, formula := c.processNames(o.Name, o.NameFormula)
	a := &Axis{
		Kind:             kind,
		Name:             name,
		NameFormula:      formula,
		nameID:           c.cache.id(formula, o.NameData),
		NameFont:         c.r.font(o.NameFont),
		NumFont:          c.r.font(o.NumFont),
		Visible:          o.Visible == nil || *o.Visible,
		Reverse:          o.Reverse,
		Min:              o.Min,
		Max:              o.Max,
		LogBase:          o.LogBase,
		MajorUnit:        o.MajorUnit,
		MinorUnit:        o.MinorUnit,
		NumFormat:        o.NumFormat,
		NumFormatLinked:  o.NumFormatLinked,
		defaultNumFormat: defaults.NumFormat,
		Shape:            Shape{Line: c.r.border(o.Line, o.Border), Fill: c.r.fill(o.Fill)},
	}
	if o.Crossing != nil {
		a.Crossing = *o.Crossing
	}
	if o.Position != "" {
		a.Position = strings.ToLower(o.Position)[:1]
	}
	if role == roleY2 && c.info.swapAxes && a.Position == "r" {
		a.Position = "t"
	}
	if o.LabelPosition != "" {
		if pos, ok := LabelPositionOptions[o.LabelPosition]; ok {
			a.LabelPosition = pos
		} else {
			c.l.Warn("unknown axis label position", slog.String("axis", role.String()), slog.String("position", o.LabelPosition))
		}
	}
	if o.MajorTickMark != "" {
		if mark, ok := TickMarkOptions[o.MajorTickMark]; ok {
			a.MajorTickMark = mark
		} else {
			c.l.Warn("unknown axis tick mark", slog.String("axis", role.String()), slog.String("tick_mark", o.MajorTickMark))
		}
	}
	a.MajorUnitType = c.timeUnit(role, o.MajorUnitType)
	a.MinorUnitType = c.timeUnit(role, o.MinorUnitType)
	a.MajorGridlines = c.gridlines(o.MajorGridlines)
	a.MinorGridlines = c.gridlines(o.MinorGridlines)

	if kind == DateAxis && a.NumFormat != defaults.NumFormat && !isDateFormat(a.NumFormat) {
		c.l.Warn("date axis number format has no date fields",
			slog.String("axis", role.String()), slog.String("num_format", a.NumFormat))
	}
	return a
}

func (c *Chart) timeUnit(role axisRole, unit string) string {
	if unit == "" {
		return ""
	}
	if v, ok := TimeUnitOptions[unit]; ok {
		return v
	}
	c.l.Warn("unknown date axis time unit", slog.String("axis", role.String()), slog.String("unit", unit))
	return ""
}

func (c *Chart) gridlines(o *GridlineOptions) Gridlines {
	if o == nil || !o.Visible {
		return Gridlines{}
	}
	return Gridlines{Visible: true, Line: c.r.line(o.Line)}
}

// isDateFormat reports whether a number format code contains date or time fields.
func isDateFormat(code string) bool {
	p := nfp.NumberFormatParser()
	for _, section := range p.Parse(code) {
		for _, token := range section.Items {
			if token.TType == nfp.TokenTypeDateTimes || token.TType == nfp.TokenTypeElapsedDateTimes {
				return true
			}
		}
	}
	return false
}
