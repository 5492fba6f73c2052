package models

// ChartSeries summarises one c:ser of a chart part.
type ChartSeries struct {
	// Name is the literal or cached series name.
	Name string `json:"name,omitempty"`
	// NameRange is the range reference for the series name.
	NameRange string `json:"name_range,omitempty"`
	// CategoriesRange is the c:cat or c:xVal reference.
	CategoriesRange string `json:"categories_range,omitempty"`
	// ValuesRange is the c:val or c:yVal reference.
	ValuesRange string `json:"values_range,omitempty"`
	// Points is the cached point count of the values.
	Points int `json:"points"`
	// Secondary is true for series plotted on the secondary axes.
	Secondary bool `json:"secondary,omitempty"`
}

// ChartAxis summarises one axis of a chart part.
type ChartAxis struct {
	// Kind is category, value or date.
	Kind     string `json:"kind"`
	ID       int    `json:"id"`
	CrossID  int    `json:"cross_id"`
	Position string `json:"position"`
	Deleted  bool   `json:"deleted,omitempty"`
	Title    string `json:"title,omitempty"`
	// Range is [min, max] when both bounds are set.
	Range     []float64 `json:"range,omitempty"`
	NumFormat string    `json:"num_format,omitempty"`
}

// Chart summarises a chart part.
type Chart struct {
	// Name is the part name, e.g. xl/charts/chart1.xml.
	Name string `json:"name"`
	// Types lists the plot group types in plot area order (e.g. Bar, Line).
	Types []string `json:"types"`
	// Title is the chart title text or cached title.
	Title      string `json:"title,omitempty"`
	TitleRange string `json:"title_range,omitempty"`
	Style      int    `json:"style"`
	Lang       string `json:"lang,omitempty"`
	// Legend is the legend position, empty without a legend.
	Legend string        `json:"legend,omitempty"`
	Series []ChartSeries `json:"series"`
	Axes   []ChartAxis   `json:"axes,omitempty"`
}
