package weatherapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"aeris-weather/api"
	"aeris-weather/config"
	"aeris-weather/logger"
	"aeris-weather/metrics"
	"aeris-weather/models"
)

const FORECAST_ENDPOINT = "/forecast.json"

const (
	HEADER_RAPID_API_KEY  = "x-rapidapi-key"
	HEADER_RAPID_API_HOST = "x-rapidapi-host"
)

// ForecastApiClient embeds the common HTTPClient
type ForecastApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	host            string
	apiKey          string
}

// NewForecastApiClient creates a new instance of ForecastApiClient
func NewForecastApiClient(httpClient *api.HTTPClient) *ForecastApiClient {
	return &ForecastApiClient{
		HTTPClient: httpClient,
	}
}

// NewForecastApiClientFromConfig builds a client for https://<host> unless a
// base URL override is configured.
func NewForecastApiClientFromConfig(cfg config.ProviderConfig) *ForecastApiClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://" + cfg.Host
	}
	client := NewForecastApiClient(api.NewHTTPClientWithTimeout(baseURL, cfg.Timeout))
	client.SetCredentials(cfg.Host, cfg.APIKey)
	return client
}

// SetCredentials sets the RapidAPI host and key sent with every call.
func (c *ForecastApiClient) SetCredentials(host, apiKey string) {
	c.host = host
	c.apiKey = apiKey
}

// FetchForecast validates req, performs a single GET against the provider
// and returns its JSON body untouched.
func (c *ForecastApiClient) FetchForecast(ctx context.Context, req models.ForecastRequest) (models.ForecastResponse, error) {
	query, days, err := ResolveRequest(req)
	if err != nil {
		return nil, err
	}

	if c.host == "" || c.apiKey == "" {
		return nil, models.NewConfigurationError(MSG_MISSING_API_CONFIG)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("days", strconv.Itoa(days))

	headers := map[string]string{
		HEADER_RAPID_API_KEY:  c.apiKey,
		HEADER_RAPID_API_HOST: c.host,
	}

	log := logger.For("ForecastApiClient")
	start := time.Now()
	body, err := c.Do(ctx, http.MethodGet, FORECAST_ENDPOINT, params, headers, nil)
	metrics.ProviderLatency.WithLabelValues(FORECAST_ENDPOINT).Observe(time.Since(start).Seconds())

	if err != nil {
		clientErr := classifyError(err)
		metrics.ProviderCallsTotal.WithLabelValues(FORECAST_ENDPOINT, clientErr.Kind.String()).Inc()
		log.Warn().Err(err).Str("query", query).Int("days", days).Msg("forecast request failed")
		return nil, clientErr
	}

	if !json.Valid(body) {
		metrics.ProviderCallsTotal.WithLabelValues(FORECAST_ENDPOINT, models.SchemaError.String()).Inc()
		return nil, models.NewSchemaError("provider returned a non-JSON body", nil)
	}

	metrics.ProviderCallsTotal.WithLabelValues(FORECAST_ENDPOINT, "ok").Inc()
	log.Debug().Str("query", query).Int("days", days).Dur("elapsed", time.Since(start)).Msg("forecast fetched")
	return models.ForecastResponse(body), nil
}

func classifyError(err error) *models.ClientError {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		return models.NewProviderError(providerMessage(statusErr), statusErr.StatusCode)
	}
	return models.NewTransportError(err.Error(), err)
}

// providerMessage prefers WeatherAPI's {"error": {"message"}} and then the
// RapidAPI gateway's {"message"}.
func providerMessage(statusErr *api.StatusError) string {
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(statusErr.Body, &body); err == nil {
		if body.Error.Message != "" {
			return body.Error.Message
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return fmt.Sprintf("Request failed with status code %d", statusErr.StatusCode)
}

// Ensure ForecastApiClient implements the ForecastAPI interface
var _ ForecastAPI = (*ForecastApiClient)(nil)
