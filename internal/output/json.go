package output

import (
	"github.com/goccy/go-json"

	"github.com/lifeplan/lifeplan-simulator/internal/domain"
)

// JSONFormatter serializes the projection as pretty-printed JSON, one object
// per year in ascending order.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(data domain.CashFlowData) ([]byte, error) {
	years := data.Years()
	rows := make([]domain.CashFlowYear, 0, len(years))
	for _, year := range years {
		rows = append(rows, data[year])
	}
	return json.MarshalIndent(rows, "", "  ")
}
