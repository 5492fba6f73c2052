package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

func TestChartsToJSON(t *testing.T) {
	charts := []models.Chart{{
		Name:   "chart1.xml",
		Types:  []string{"line"},
		Style:  2,
		Series: []models.ChartSeries{{ValuesRange: "Sheet1!$A$1:$A$3", Points: 3}},
	}}

	data, err := ChartsToJSON(charts, false)
	require.NoError(t, err)
	assert.Equal(t,
		`[{"name":"chart1.xml","types":["line"],"style":2,"series":[{"values_range":"Sheet1!$A$1:$A$3","points":3}]}]`,
		string(data))

	pretty, err := ChartsToJSON(charts, true)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pretty), "[\n  {\n    \"name\": \"chart1.xml\","))
	assert.JSONEq(t, string(data), string(pretty))
}

func TestChartsToJSONEmpty(t *testing.T) {
	data, err := ChartsToJSON(nil, false)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
