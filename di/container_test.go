package di

import (
	"context"
	"testing"

	"aeris-weather/api/weatherapi"
	"aeris-weather/config"
	"aeris-weather/db"
	"aeris-weather/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func devConfig() *config.Config {
	return &config.Config{
		Env:    "dev",
		Server: config.ServerConfig{Port: config.DEFAULT_SERVER_PORT},
		Cache:  config.CacheConfig{TTL: config.DEFAULT_FORECAST_CACHE_TTL},
	}
}

func TestNewContainer_Dev(t *testing.T) {
	c, err := NewContainer(devConfig())
	require.NoError(t, err)
	defer c.Close()

	assert.IsType(t, &db.MockRedisClient{}, c.RedisClient)
	assert.IsType(t, &weatherapi.ForecastApiClientMock{}, c.ForecastAPI)
	assert.NotNil(t, c.WeatherHttpServer)

	payload, err := c.ForecastService.GetForecast(context.Background(), models.ForecastRequest{Query: "Lahore"})
	require.NoError(t, err)
	assert.NotEmpty(t, payload)

	query, err := c.LocationService.CurrentQuery(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "31.5497,74.3436", query)
}
