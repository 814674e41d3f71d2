package weatherapi

import (
	"context"

	"aeris-weather/models"
)

// ForecastAPI defines the interface for fetching forecasts from the weather provider
type ForecastAPI interface {
	FetchForecast(ctx context.Context, req models.ForecastRequest) (models.ForecastResponse, error)
}
