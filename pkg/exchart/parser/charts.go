package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ukaji3/exchart-go/pkg/exchart/chart"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// ErrNotChartPart indicates XML without a c:chartSpace root.
var ErrNotChartPart = errors.New("not a chart part")

// PlotGroupTypes maps OOXML plot group elements to chart type names.
var PlotGroupTypes = map[string]string{
	"areaChart":     string(chart.TypeArea),
	"area3DChart":   "area3D",
	"barChart":      string(chart.TypeBar),
	"bar3DChart":    "bar3D",
	"lineChart":     string(chart.TypeLine),
	"line3DChart":   "line3D",
	"pieChart":      string(chart.TypePie),
	"pie3DChart":    "pie3D",
	"doughnutChart": string(chart.TypeDoughnut),
	"radarChart":    string(chart.TypeRadar),
	"scatterChart":  string(chart.TypeScatter),
	"stockChart":    string(chart.TypeStock),
	"bubbleChart":   "bubble",
	"surfaceChart":  "surface",
	"ofPieChart":    "ofPie",
}

var axisKinds = map[string]string{
	"catAx":  chart.CategoryAxis.String(),
	"valAx":  chart.ValueAxis.String(),
	"dateAx": chart.DateAxis.String(),
	"serAx":  "series",
}

// ParseChartFile summarises a chart part file, or every chart part of an
// xlsx package.
func ParseChartFile(name string) ([]models.Chart, error) {
	if strings.EqualFold(filepath.Ext(name), ".xlsx") {
		return parsePackageCharts(name)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	c, err := ParseChartXML(filepath.Base(name), data)
	if err != nil {
		return nil, err
	}
	return []models.Chart{*c}, nil
}

func parsePackageCharts(name string) ([]models.Chart, error) {
	r, err := zip.OpenReader(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var parts []*zip.File
	for _, f := range r.File {
		if ok, _ := path.Match("xl/charts/chart*.xml", f.Name); ok {
			parts = append(parts, f)
		}
	}
	sort.Slice(parts, func(i, j int) bool {
		return partNumber(parts[i].Name) < partNumber(parts[j].Name)
	})

	charts := make([]models.Chart, 0, len(parts))
	for _, f := range parts {
		data, err := readZipFile(f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.Name, err)
		}
		c, err := ParseChartXML(f.Name, data)
		if err != nil {
			return nil, err
		}
		charts = append(charts, *c)
	}
	return charts, nil
}

// partNumber returns N of xl/charts/chartN.xml.
func partNumber(name string) int {
	base := strings.TrimSuffix(path.Base(name), ".xml")
	n, _ := strconv.Atoi(strings.TrimPrefix(base, "chart"))
	return n
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// ParseChartXML summarises a chart part.
func ParseChartXML(name string, data []byte) (*models.Chart, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	c := &models.Chart{Name: name, Style: chart.DefaultStyleID}
	var groups []plotGroup
	found := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "chartSpace":
			found = true
		case "lang":
			c.Lang = attr(se, "val")
		case "style":
			if v, err := strconv.Atoi(attr(se, "val")); err == nil {
				c.Style = v
			}
		case "chart":
			groups = parseChart(decoder, c)
		}
	}
	if !found {
		return nil, fmt.Errorf("%s: %w", name, ErrNotChartPart)
	}

	// Groups on another axis pair than the first one are secondary.
	for i, g := range groups {
		secondary := i > 0 && len(g.axisIDs) > 0 && len(groups[0].axisIDs) > 0 && g.axisIDs[0] != groups[0].axisIDs[0]
		c.Types = append(c.Types, g.kind)
		for _, s := range g.series {
			s.Secondary = secondary
			c.Series = append(c.Series, s)
		}
	}
	return c, nil
}

type plotGroup struct {
	kind    string
	series  []models.ChartSeries
	axisIDs []int
}

// parseChart parses the c:chart element.
func parseChart(decoder *xml.Decoder, c *models.Chart) []plotGroup {
	var groups []plotGroup
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				c.Title, c.TitleRange = parseText(decoder)
				depth--
			case "plotArea":
				groups = parsePlotArea(decoder, c)
				depth--
			case "legendPos":
				c.Legend = attr(t, "val")
			}
		case xml.EndElement:
			depth--
		}
	}

	return groups
}

// parseText returns the text and range of a title or series name. Rich
// text runs are joined; a cached value is used when there is no rich text.
func parseText(decoder *xml.Decoder) (text, formula string) {
	var cached string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "t":
				s, _ := readElementText(decoder)
				text += s
				depth--
			case "f":
				s, _ := readElementText(decoder)
				formula = strings.TrimSpace(s)
				depth--
			case "v":
				s, _ := readElementText(decoder)
				if cached == "" {
					cached = s
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	if text == "" {
		text = cached
	}
	return strings.TrimSpace(text), formula
}

func parsePlotArea(decoder *xml.Decoder, c *models.Chart) []plotGroup {
	var groups []plotGroup
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if kind, ok := PlotGroupTypes[t.Name.Local]; ok {
				groups = append(groups, parsePlotGroup(decoder, kind))
				depth--
			} else if kind, ok := axisKinds[t.Name.Local]; ok {
				c.Axes = append(c.Axes, parseAxis(decoder, kind))
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return groups
}

func parsePlotGroup(decoder *xml.Decoder, kind string) plotGroup {
	g := plotGroup{kind: kind}
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "barDir":
				if attr(t, "val") == "col" {
					g.kind = string(chart.TypeColumn)
				}
			case "ser":
				g.series = append(g.series, parseSeries(decoder))
				depth--
			case "axId":
				if id, err := strconv.Atoi(attr(t, "val")); err == nil {
					g.axisIDs = append(g.axisIDs, id)
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	return g
}

func parseSeries(decoder *xml.Decoder) models.ChartSeries {
	var s models.ChartSeries
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "tx":
				s.Name, s.NameRange = parseText(decoder)
				depth--
			case "cat", "xVal":
				if f, _ := parseReference(decoder); f != "" {
					s.CategoriesRange = f
				}
				depth--
			case "val", "yVal":
				// c:errBars has its own c:val child.
				if f, points := parseReference(decoder); f != "" {
					s.ValuesRange, s.Points = f, points
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return s
}

// parseReference returns the range formula and the cached point count of
// a c:cat or c:val element.
func parseReference(decoder *xml.Decoder) (formula string, points int) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "f":
				s, _ := readElementText(decoder)
				formula = strings.TrimSpace(s)
				depth--
			case "ptCount":
				points, _ = strconv.Atoi(attr(t, "val"))
			}
		case xml.EndElement:
			depth--
		}
	}

	return formula, points
}

func parseAxis(decoder *xml.Decoder, kind string) models.ChartAxis {
	a := models.ChartAxis{Kind: kind}
	var min, max *float64
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "axId":
				a.ID, _ = strconv.Atoi(attr(t, "val"))
			case "crossAx":
				a.CrossID, _ = strconv.Atoi(attr(t, "val"))
			case "axPos":
				a.Position = attr(t, "val")
			case "delete":
				a.Deleted = attr(t, "val") == "1"
			case "numFmt":
				a.NumFormat = attr(t, "formatCode")
			case "min":
				if v, err := strconv.ParseFloat(attr(t, "val"), 64); err == nil {
					min = &v
				}
			case "max":
				if v, err := strconv.ParseFloat(attr(t, "val"), 64); err == nil {
					max = &v
				}
			case "title":
				a.Title, _ = parseText(decoder)
				depth--
			case "txPr":
				// Label fonts carry no summary data.
				_ = decoder.Skip()
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	if min != nil && max != nil {
		a.Range = []float64{*min, *max}
	}
	return a
}

func attr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// readElementText returns the character data up to the end of the current
// element.
func readElementText(decoder *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return sb.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return sb.String(), nil
}
