package weatherapi

import (
	"context"
	"fmt"

	"aeris-weather/models"

	"golang.org/x/time/rate"
)

// RateLimitedForecastAPI wraps a ForecastAPI with a token bucket so the
// provider quota is respected. It waits for a token, it never retries.
type RateLimitedForecastAPI struct {
	api     ForecastAPI
	limiter *rate.Limiter
}

// NewRateLimitedForecastAPI creates a rate limited forecast source.
// rps is the maximum requests per second allowed and can be fractional.
func NewRateLimitedForecastAPI(api ForecastAPI, rps float64, burst int) *RateLimitedForecastAPI {
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedForecastAPI{
		api:     api,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// FetchForecast waits for limiter permission and forwards to the wrapped API.
// Invalid requests are rejected before they consume a token.
func (r *RateLimitedForecastAPI) FetchForecast(ctx context.Context, req models.ForecastRequest) (models.ForecastResponse, error) {
	if _, _, err := ResolveRequest(req); err != nil {
		return nil, err
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return nil, models.NewTransportError(fmt.Sprintf("rate limit wait canceled: %v", err), err)
	}

	return r.api.FetchForecast(ctx, req)
}

var _ ForecastAPI = (*RateLimitedForecastAPI)(nil)
