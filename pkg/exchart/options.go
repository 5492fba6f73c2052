// Package exchart renders OOXML chart parts from YAML chart descriptions.
package exchart

import (
	"log/slog"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// Options configures rendering.
type Options struct {
	// Workbook is an xlsx file holding the data the chart formulas refer to.
	Workbook string
	// Backfill fills cached data missing from the description from Workbook.
	// If nil, defaults to true when Workbook is set.
	Backfill *bool
	// Embedded marks every chart as drawn on a worksheet.
	// If nil, each chart description decides.
	Embedded *bool
	// Concurrency limits the charts RenderAll renders at once. 0 means no limit.
	Concurrency int
	// Logger receives warnings about the chart descriptions. Each chart logs
	// through it with module and chart attributes. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns default rendering options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldBackfill returns whether cached data is read from the workbook.
func (o Options) ShouldBackfill() bool {
	if o.Backfill != nil {
		return *o.Backfill && o.Workbook != ""
	}
	return o.Workbook != ""
}

// ShouldEmbed returns whether a chart is written with print settings for
// a worksheet drawing.
func (o Options) ShouldEmbed(spec models.ChartSpec) bool {
	if o.Embedded != nil {
		return *o.Embedded
	}
	return spec.Embedded
}

// logger returns the logger of one chart, tagged like the chart package's
// own default.
func (o Options) logger(name string) *slog.Logger {
	l := o.Logger
	if l == nil {
		l = slog.Default()
	}
	return l.With(slog.String("module", "chart"), slog.String("chart", name))
}
