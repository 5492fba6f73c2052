package exchart

import (
	"errors"
	"fmt"

	"github.com/ukaji3/exchart-go/pkg/exchart/chart"
	"github.com/ukaji3/exchart-go/pkg/exchart/parser"
)

// ErrFileNotFound indicates an input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidSpec indicates a chart description that cannot be decoded.
var ErrInvalidSpec = errors.New("invalid chart description")

// Errors of the chart and parser packages that a render can return.
var (
	ErrUnknownType   = chart.ErrUnknownType
	ErrUnknownDataID = chart.ErrUnknownDataID
	ErrInvalidRange  = parser.ErrInvalidRange
)

// BackfillError reports a chart formula whose data could not be read from
// the workbook.
type BackfillError struct {
	Formula string
	Err     error
}

func (e *BackfillError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Formula, e.Err)
}

func (e *BackfillError) Unwrap() error {
	return e.Err
}

// RenderError wraps a failure with the chart and the render step it
// happened in: "build", "series N", "backfill" or "write".
type RenderError struct {
	Chart     string
	Component string
	Err       error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error in chart %q (%s): %v", e.Chart, e.Component, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(chartName, component string, err error) *RenderError {
	return &RenderError{
		Chart:     chartName,
		Component: component,
		Err:       err,
	}
}
