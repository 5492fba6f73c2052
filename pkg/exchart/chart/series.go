package chart

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/tiendc/go-deepcopy"
)

// SeriesOptions describes one data series.
type SeriesOptions struct {
	// Values is the required values range.
	Values Ref `yaml:"values"`
	// Categories is the optional categories range.
	Categories Ref `yaml:"categories"`
	// Name is a literal series name, or a formula when it starts with "=".
	Name string `yaml:"name"`
	// NameFormula references the cell holding the series name.
	NameFormula Ref `yaml:"name_formula"`

	ValuesData     []any `yaml:"values_data"`
	CategoriesData []any `yaml:"categories_data"`
	NameData       []any `yaml:"name_data"`

	Line             *LineOptions       `yaml:"line"`
	Border           *LineOptions       `yaml:"border"`
	Fill             *FillOptions       `yaml:"fill"`
	Marker           *MarkerOptions     `yaml:"marker"`
	Trendline        *TrendlineOptions  `yaml:"trendline"`
	XErrorBars       *ErrorBarsOptions  `yaml:"x_error_bars"`
	YErrorBars       *ErrorBarsOptions  `yaml:"y_error_bars"`
	Points           []*PointOptions    `yaml:"points"`
	DataLabels       *DataLabelsOptions `yaml:"data_labels"`
	InvertIfNegative bool               `yaml:"invert_if_negative"`

	// Gap and Overlap apply to the bar plot group of the series' axes.
	Gap     *int `yaml:"gap"`
	Overlap *int `yaml:"overlap"`

	X2Axis bool `yaml:"x2_axis"`
	Y2Axis bool `yaml:"y2_axis"`
}

// Series is a resolved data series.
type Series struct {
	Values      string
	Categories  string
	Name        string
	NameFormula string

	valID  dataID
	catID  dataID
	nameID dataID

	Shape
	Marker           Marker
	Trendline        Trendline
	Points           []Point
	Labels           DataLabels
	InvertIfNegative bool
	XErrorBars       ErrorBars
	YErrorBars       ErrorBars

	X2Axis bool
	Y2Axis bool
}

// AddSeries adds a data series. A series without values is not added: the
// problem is logged as a warning and ErrMissingValues is returned.
func (c *Chart) AddSeries(in SeriesOptions) (*Series, error) {
	var o SeriesOptions
	if err := deepcopy.Copy(&o, &in); err != nil {
		return nil, fmt.Errorf("copy series options: %w", err)
	}

	values, err := o.Values.Resolve()
	if err != nil || values == "" {
		c.l.Warn("must specify values in series", slog.Int("series", len(c.series)))
		return nil, ErrMissingValues
	}
	if c.info.requiresCategory && o.Categories.IsZero() {
		c.l.Warn("must specify categories in series for this chart type",
			slog.String("type", string(c.kind)), slog.Int("series", len(c.series)))
	}
	categories, err := o.Categories.Resolve()
	if err != nil {
		c.l.Warn("invalid categories range ignored", slog.String("error", err.Error()))
		categories = ""
	}

	name, nameFormula := c.processNames(o.Name, o.NameFormula)

	s := &Series{
		Values:           values,
		Categories:       categories,
		Name:             name,
		NameFormula:      nameFormula,
		catID:            c.cache.id(categories, o.CategoriesData),
		valID:            c.cache.id(values, o.ValuesData),
		nameID:           c.cache.id(nameFormula, o.NameData),
		Shape:            Shape{Line: c.r.border(o.Line, o.Border), Fill: c.r.fill(o.Fill)},
		Marker:           c.r.marker(o.Marker),
		Trendline:        c.r.trendline(o.Trendline),
		Points:           c.r.points(o.Points),
		Labels:           c.r.labels(o.DataLabels),
		InvertIfNegative: o.InvertIfNegative,
		XErrorBars:       c.r.errorBars(o.XErrorBars),
		YErrorBars:       c.r.errorBars(o.YErrorBars),
		X2Axis:           o.X2Axis,
		Y2Axis:           o.Y2Axis,
	}
	if !s.Marker.Defined && c.info.defaultMarker != nil {
		s.Marker = *c.info.defaultMarker
	}
	if c.info.seriesDefaults != nil {
		c.info.seriesDefaults(s)
	}

	group := 0
	if s.Y2Axis {
		group = 1
	}
	if o.Gap != nil {
		c.gap[group] = o.Gap
	}
	if o.Overlap != nil {
		c.overlap[group] = o.Overlap
	}

	c.series = append(c.series, s)
	return s, nil
}

// processNames splits a name into literal and formula parts. An explicit
// formula reference wins over a name; a name starting with "=" is a formula.
func (c *Chart) processNames(name string, formula Ref) (string, string) {
	if !formula.IsZero() {
		f, err := formula.Resolve()
		if err != nil {
			c.l.Warn("invalid name range ignored", slog.String("error", err.Error()))
		} else if f != "" {
			return name, f
		}
	}
	if strings.HasPrefix(name, "=") {
		return "", trimFormula(name)
	}
	return name, ""
}

// groupSeries returns the series plotted on the primary or secondary axes.
func (c *Chart) groupSeries(primary bool) []*Series {
	var out []*Series
	for _, s := range c.series {
		if s.Y2Axis != primary {
			out = append(out, s)
		}
	}
	return out
}
