package output

import (
	"encoding/json"

	"github.com/LipeHeitz/pricing-k2/internal/domain"
)

// JSONFormatter serializes the full simulation report as pretty-printed
// JSON, full precision, no locale formatting.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
