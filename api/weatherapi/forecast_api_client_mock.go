package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"

	"aeris-weather/models"
	"aeris-weather/resources"
	"aeris-weather/util"
)

// ForecastApiClientMock serves a recorded forecast for every valid request.
// Without a fixture path it uses the embedded 3-day Lahore recording. Longer
// recordings are cut to the requested horizon. Shorter ones are served whole.
type ForecastApiClientMock struct {
	fixturePath string
}

// NewForecastApiClientMock creates a new instance of ForecastApiClientMock
func NewForecastApiClientMock() *ForecastApiClientMock {
	return &ForecastApiClientMock{}
}

// NewForecastApiClientMockFromFile serves the payload recorded at path.
func NewForecastApiClientMockFromFile(path string) *ForecastApiClientMock {
	return &ForecastApiClientMock{fixturePath: path}
}

func (c *ForecastApiClientMock) FetchForecast(ctx context.Context, req models.ForecastRequest) (models.ForecastResponse, error) {
	_, days, err := ResolveRequest(req)
	if err != nil {
		return nil, err
	}

	var payload models.ForecastResponse
	if c.fixturePath != "" {
		payload, err = util.ReadForecastResponseFromJSON(c.fixturePath)
	} else {
		payload, err = resources.ForecastResponse()
	}
	if err != nil {
		return nil, models.NewTransportError("could not read recorded forecast response", err)
	}
	return limitForecastDays(payload, days)
}

// limitForecastDays keeps the first days entries of forecast.forecastday.
// Payloads that already fit are returned untouched.
func limitForecastDays(payload models.ForecastResponse, days int) (models.ForecastResponse, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(payload, &root); err != nil {
		return nil, models.NewSchemaError(fmt.Sprintf("malformed recorded forecast: %v", err), err)
	}
	var section map[string]json.RawMessage
	if err := json.Unmarshal(root["forecast"], &section); err != nil || section == nil {
		return payload, nil
	}
	var forecastDays []json.RawMessage
	if err := json.Unmarshal(section["forecastday"], &forecastDays); err != nil || len(forecastDays) <= days {
		return payload, nil
	}

	var err error
	if section["forecastday"], err = json.Marshal(forecastDays[:days]); err != nil {
		return nil, fmt.Errorf("failed to trim recorded forecast: %w", err)
	}
	if root["forecast"], err = json.Marshal(section); err != nil {
		return nil, fmt.Errorf("failed to trim recorded forecast: %w", err)
	}
	trimmed, err := json.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("failed to trim recorded forecast: %w", err)
	}
	return models.ForecastResponse(trimmed), nil
}

var _ ForecastAPI = (*ForecastApiClientMock)(nil)
