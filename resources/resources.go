package resources

import (
	"embed"
	"encoding/json"
	"fmt"
)

const FORECAST_RESPONSE_RESOURCE = "forecast_response.json"
const LOCATION_NOT_FOUND_RESOURCE = "location_not_found_response.json"

//go:embed *.json
var files embed.FS

// Read returns the raw bytes of an embedded resource file.
func Read(name string) ([]byte, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource %q: %w", name, err)
	}
	return data, nil
}

// ForecastResponse returns the recorded 3-day Lahore forecast payload.
func ForecastResponse() (json.RawMessage, error) {
	return Read(FORECAST_RESPONSE_RESOURCE)
}
