package exchart

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/exchart-go/pkg/exchart/chart"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
	"github.com/ukaji3/exchart-go/pkg/exchart/parser"
)

// LoadDocument reads a YAML chart description file.
func LoadDocument(path string) (*models.Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	return ParseDocument(data)
}

// ParseDocument decodes a YAML chart description.
func ParseDocument(data []byte) (*models.Document, error) {
	var doc models.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	if len(doc.Charts) == 0 {
		return nil, fmt.Errorf("%w: no charts", ErrInvalidSpec)
	}
	return &doc, nil
}

// ChartName returns the name of the id-th chart, defaulting to chartN.
func ChartName(spec models.ChartSpec, id int) string {
	if spec.Name != "" {
		return spec.Name
	}
	return fmt.Sprintf("chart%d", id+1)
}

// Build creates the chart described by spec. id is the zero-based index of
// the chart in its workbook. Series without values are skipped with a
// warning.
func Build(spec models.ChartSpec, id int, opts Options) (*chart.Chart, error) {
	name := ChartName(spec, id)
	c, err := chart.New(chart.Options{
		Type:     spec.Type,
		Subtype:  spec.Subtype,
		ID:       id,
		Embedded: opts.ShouldEmbed(spec),
		Lang:     spec.Lang,
		Logger:   opts.logger(name),
	})
	if err != nil {
		return nil, NewRenderError(name, "build", err)
	}

	if spec.Style != nil {
		c.SetStyle(*spec.Style)
	}
	if spec.Protect {
		c.Protect()
	}
	c.ShowBlanksAs(spec.ShowBlanksAs)
	if spec.ShowHiddenData {
		c.ShowHiddenData()
	}
	if spec.Title != nil {
		c.SetTitle(*spec.Title)
	}
	if spec.Legend != nil {
		c.SetLegend(*spec.Legend)
	}
	if spec.Size != nil {
		c.SetSize(*spec.Size)
	}
	if spec.ChartArea != nil {
		c.SetChartArea(*spec.ChartArea)
	}
	if spec.PlotArea != nil {
		c.SetPlotArea(*spec.PlotArea)
	}
	if spec.Table != nil {
		c.SetTable(*spec.Table)
	}
	if spec.UpDownBars != nil {
		c.SetUpDownBars(*spec.UpDownBars)
	}
	if spec.DropLines != nil {
		c.SetDropLines(*spec.DropLines)
	}
	if spec.HighLowLines != nil {
		c.SetHighLowLines(*spec.HighLowLines)
	}

	if spec.XAxis != nil {
		c.SetXAxis(*spec.XAxis)
	}
	if spec.YAxis != nil {
		c.SetYAxis(*spec.YAxis)
	}
	if spec.X2Axis != nil {
		c.SetX2Axis(*spec.X2Axis)
	}
	if spec.Y2Axis != nil {
		c.SetY2Axis(*spec.Y2Axis)
	}

	for i, s := range spec.Series {
		_, err := c.AddSeries(s)
		if errors.Is(err, chart.ErrMissingValues) {
			continue
		}
		if err != nil {
			return nil, NewRenderError(name, fmt.Sprintf("series %d", i), err)
		}
	}
	return c, nil
}

// Backfill reads the data of every chart formula without cached data from
// wb. Failures are returned as *BackfillError.
func Backfill(c *chart.Chart, wb *excelize.File) error {
	for _, formula := range c.Formulas() {
		data, err := parser.ReadRange(wb, formula)
		if err != nil {
			return &BackfillError{Formula: formula, Err: err}
		}
		c.SetData(formula, data)
	}
	return nil
}

// Render builds the id-th chart of a workbook and returns its XML part.
func Render(spec models.ChartSpec, id int, opts Options) ([]byte, error) {
	wb, err := openWorkbook(opts)
	if err != nil {
		return nil, err
	}
	if wb != nil {
		defer wb.Close()
	}
	return render(spec, id, wb, opts)
}

// RenderAll renders the charts of doc concurrently and returns the parts in
// chart order. The first failure cancels the charts not yet started.
func RenderAll(ctx context.Context, doc *models.Document, opts Options) ([][]byte, error) {
	if opts.Workbook == "" {
		opts.Workbook = doc.Workbook
	}
	wb, err := openWorkbook(opts)
	if err != nil {
		return nil, err
	}
	if wb != nil {
		defer wb.Close()
	}

	parts := make([][]byte, len(doc.Charts))
	g, ctx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}
	for i, spec := range doc.Charts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			part, err := render(spec, i, wb, opts)
			if err != nil {
				return err
			}
			parts[i] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return parts, nil
}

func render(spec models.ChartSpec, id int, wb *excelize.File, opts Options) ([]byte, error) {
	c, err := Build(spec, id, opts)
	if err != nil {
		return nil, err
	}
	if wb != nil {
		if err := Backfill(c, wb); err != nil {
			return nil, NewRenderError(ChartName(spec, id), "backfill", err)
		}
	}
	var buf bytes.Buffer
	if err := c.Write(&buf); err != nil {
		return nil, NewRenderError(ChartName(spec, id), "write", err)
	}
	return buf.Bytes(), nil
}

func openWorkbook(opts Options) (*excelize.File, error) {
	if !opts.ShouldBackfill() {
		return nil, nil
	}
	if _, err := os.Stat(opts.Workbook); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, opts.Workbook)
	}
	wb, err := excelize.OpenFile(opts.Workbook)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return wb, nil
}
