package weatherapi

import (
	"strings"

	"aeris-weather/config"
	"aeris-weather/models"
)

const (
	MSG_QUERY_REQUIRED     = "Query parameter is required"
	MSG_DAYS_OUT_OF_RANGE  = "Days must be between 1 and 10"
	MSG_MISSING_API_CONFIG = "Missing API configuration"
)

// ResolveRequest validates req and returns the trimmed query and the
// effective forecast horizon.
func ResolveRequest(req models.ForecastRequest) (string, int, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return "", 0, models.NewInvalidArgument(MSG_QUERY_REQUIRED)
	}

	days := config.DEFAULT_FORECAST_DAYS
	if req.Days != nil {
		days = *req.Days
		if days < config.MIN_FORECAST_DAYS || days > config.MAX_FORECAST_DAYS {
			return "", 0, models.NewInvalidArgument(MSG_DAYS_OUT_OF_RANGE)
		}
	}

	return query, days, nil
}
