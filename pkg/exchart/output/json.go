// Package output serialises chart summaries.
package output

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ToJSON serialises v, indented with two spaces when pretty is set.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ChartsToJSON serialises chart summaries as a JSON array.
func ChartsToJSON(charts []models.Chart, pretty bool) ([]byte, error) {
	if charts == nil {
		charts = []models.Chart{}
	}
	return ToJSON(charts, pretty)
}
