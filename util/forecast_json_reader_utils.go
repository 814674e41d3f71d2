package util

import (
	"encoding/json"
	"fmt"
	"os"

	"aeris-weather/models"
)

// ReadForecastResponseFromJSON loads a recorded provider payload from disk
// without altering it.
func ReadForecastResponseFromJSON(filePath string) (models.ForecastResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("file %q does not contain valid JSON", filePath)
	}
	return models.ForecastResponse(data), nil
}
