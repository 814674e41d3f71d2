package redis

import (
	"errors"
	"fmt"
	"time"

	"aeris-weather/db"
	"aeris-weather/models"
)

// FORECAST_KEY_FORMAT caches one provider payload per (query, days) pair.
const FORECAST_KEY_FORMAT = "forecast_v1:%s_%d"
const FORECAST_KEY_PATTERN = "forecast_v1:*"

// RedisForecastDAO handles cached forecast payloads using Redis.
type RedisForecastDAO struct {
	client db.RedisClient
	ttl    time.Duration
}

// NewRedisForecastDAO initializes a RedisForecastDAO with the Redis client.
func NewRedisForecastDAO(client db.RedisClient, ttl time.Duration) *RedisForecastDAO {
	return &RedisForecastDAO{client: client, ttl: ttl}
}

// ForecastKey builds the cache key for an already resolved query and horizon.
func ForecastKey(query string, days int) string {
	return fmt.Sprintf(FORECAST_KEY_FORMAT, query, days)
}

// GetForecast returns the cached payload, or found=false when there is none.
func (dao *RedisForecastDAO) GetForecast(query string, days int) (models.ForecastResponse, bool, error) {
	data, err := dao.client.Get(ForecastKey(query, days))
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("[RedisForecastDAO] failed to get forecast %s/%d: %w", query, days, err)
	}
	return models.ForecastResponse(data), true, nil
}

// SetForecast stores the payload exactly as received from the provider.
func (dao *RedisForecastDAO) SetForecast(query string, days int, payload models.ForecastResponse) error {
	if err := dao.client.Set(ForecastKey(query, days), string(payload), dao.ttl); err != nil {
		return fmt.Errorf("[RedisForecastDAO] failed to set forecast %s/%d: %w", query, days, err)
	}
	return nil
}

// DeleteForecast drops one cached payload.
func (dao *RedisForecastDAO) DeleteForecast(query string, days int) error {
	if err := dao.client.Del(ForecastKey(query, days)); err != nil {
		return fmt.Errorf("[RedisForecastDAO] failed to delete forecast %s/%d: %w", query, days, err)
	}
	return nil
}

// DeleteAllForecasts drops every cached payload and returns how many were removed.
func (dao *RedisForecastDAO) DeleteAllForecasts() (int, error) {
	keys, err := dao.client.Keys(FORECAST_KEY_PATTERN)
	if err != nil {
		return 0, fmt.Errorf("[RedisForecastDAO] failed to list forecasts: %w", err)
	}
	if err := dao.client.Del(keys...); err != nil {
		return 0, fmt.Errorf("[RedisForecastDAO] failed to delete forecasts: %w", err)
	}
	return len(keys), nil
}
