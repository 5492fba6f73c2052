// Package models defines the chart description documents read by exchart
// and the summaries it reports.
package models

import "github.com/ukaji3/exchart-go/pkg/exchart/chart"

// Document is a chart description file holding one or more charts.
type Document struct {
	// Workbook is an optional xlsx file used to fill missing cached data.
	Workbook string `yaml:"workbook"`
	// Charts lists the charts to render, in chart number order.
	Charts []ChartSpec `yaml:"charts"`
}

// ChartSpec describes one chart part.
type ChartSpec struct {
	// Name is used for output file names and error reports.
	Name    string     `yaml:"name"`
	Type    chart.Type `yaml:"type"`
	Subtype string     `yaml:"subtype"`
	Lang    string     `yaml:"lang"`
	// Style is a built-in chart style id, 1 to 42.
	Style    *int `yaml:"style"`
	Embedded bool `yaml:"embedded"`
	Protect  bool `yaml:"protect"`

	ShowBlanksAs   string `yaml:"show_blanks_as"`
	ShowHiddenData bool   `yaml:"show_hidden_data"`

	Title        *chart.TitleOptions      `yaml:"title"`
	Legend       *chart.LegendOptions     `yaml:"legend"`
	Size         *chart.SizeOptions       `yaml:"size"`
	ChartArea    *chart.AreaOptions       `yaml:"chart_area"`
	PlotArea     *chart.AreaOptions       `yaml:"plot_area"`
	Table        *chart.DataTableOptions  `yaml:"table"`
	UpDownBars   *chart.UpDownBarsOptions `yaml:"up_down_bars"`
	DropLines    *chart.ChartLinesOptions `yaml:"drop_lines"`
	HighLowLines *chart.ChartLinesOptions `yaml:"high_low_lines"`

	XAxis  *chart.AxisOptions `yaml:"x_axis"`
	YAxis  *chart.AxisOptions `yaml:"y_axis"`
	X2Axis *chart.AxisOptions `yaml:"x2_axis"`
	Y2Axis *chart.AxisOptions `yaml:"y2_axis"`

	Series []chart.SeriesOptions `yaml:"series"`
}
