package forecast

import (
	"encoding/json"
	"fmt"

	"aeris-weather/models"
)

// Decode parses a provider payload against the strict schema. Shape
// mismatches are reported as SchemaError so that consumers never render a
// half-populated forecast.
func Decode(payload models.ForecastResponse) (*Forecast, error) {
	var f Forecast
	if err := json.Unmarshal(payload, &f); err != nil {
		return nil, models.NewSchemaError(fmt.Sprintf("malformed forecast payload: %v", err), err)
	}

	if f.Location.Name == "" {
		return nil, models.NewSchemaError("forecast payload is missing location.name", nil)
	}
	if f.Forecast == nil || f.Forecast.ForecastDays == nil {
		return nil, models.NewSchemaError("forecast payload is missing forecast.forecastday", nil)
	}
	for i, day := range f.Forecast.ForecastDays {
		if day.Date == "" {
			return nil, models.NewSchemaError(fmt.Sprintf("forecast.forecastday[%d] is missing date", i), nil)
		}
	}

	return &f, nil
}
