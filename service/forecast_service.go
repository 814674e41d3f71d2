package services

import (
	"context"
	"fmt"
	"sync"

	"aeris-weather/api/weatherapi"
	"aeris-weather/dao/redis"
	"aeris-weather/logger"
	"aeris-weather/metrics"
	"aeris-weather/models"
	"aeris-weather/models/forecast"
	"aeris-weather/util"

	"golang.org/x/sync/singleflight"
)

// ForecastService serves forecasts from the cache when possible and shares a
// single provider call between concurrent identical requests.
type ForecastService struct {
	forecastDao *redis.RedisForecastDAO
	forecastApi weatherapi.ForecastAPI
	group       singleflight.Group

	// A fetch keeps its cache entry only if neither its key generation nor
	// the global epoch moved while it was in flight.
	mu          sync.Mutex
	generations map[string]uint64
	epoch       uint64
}

type cacheGeneration struct {
	epoch uint64
	gen   uint64
}

// NewForecastService constructs a new ForecastService with Redis dependency injection.
func NewForecastService(
	forecastDao *redis.RedisForecastDAO,
	forecastApi weatherapi.ForecastAPI) *ForecastService {

	return &ForecastService{
		forecastDao: forecastDao,
		forecastApi: forecastApi,
		generations: make(map[string]uint64),
	}
}

// GetForecast returns the provider payload for req. Invalid requests fail
// before the cache or the provider is touched, and failures are never cached.
func (fs *ForecastService) GetForecast(ctx context.Context, req models.ForecastRequest) (models.ForecastResponse, error) {
	query, days, err := weatherapi.ResolveRequest(req)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, models.NewTransportError(fmt.Sprintf("forecast request canceled: %v", err), err)
	}

	log := logger.For("ForecastService")
	key := redis.ForecastKey(query, days)

	payload, found, err := fs.forecastDao.GetForecast(query, days)
	switch {
	case err != nil:
		metrics.ForecastCacheLookups.WithLabelValues("error").Inc()
		log.Warn().Err(err).Str("key", key).Msg("cache lookup failed, fetching from provider")
	case found:
		metrics.ForecastCacheLookups.WithLabelValues("hit").Inc()
		log.Debug().Str("key", key).Msg("cache hit")
		return payload, nil
	default:
		metrics.ForecastCacheLookups.WithLabelValues("miss").Inc()
	}

	snapshot := fs.snapshot(key)
	flightKey := fmt.Sprintf("%s#%d.%d", key, snapshot.epoch, snapshot.gen)

	// The shared call outlives any single caller; each caller still stops
	// waiting as soon as its own context is done.
	sharedCtx := context.WithoutCancel(ctx)
	ch := fs.group.DoChan(flightKey, func() (interface{}, error) {
		payload, err := fs.forecastApi.FetchForecast(sharedCtx, models.ForecastRequest{Query: query, Days: models.Days(days)})
		if err != nil {
			return nil, err
		}
		fs.store(query, days, snapshot, payload)
		return payload, nil
	})

	select {
	case <-ctx.Done():
		return nil, models.NewTransportError(fmt.Sprintf("forecast request canceled: %v", ctx.Err()), ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			log.Debug().Str("key", key).Msg("joined in-flight provider call")
		}
		return res.Val.(models.ForecastResponse), nil
	}
}

// GetDecodedForecast returns the forecast for req parsed against the strict schema.
func (fs *ForecastService) GetDecodedForecast(ctx context.Context, req models.ForecastRequest) (*forecast.Forecast, error) {
	payload, err := fs.GetForecast(ctx, req)
	if err != nil {
		return nil, err
	}
	return forecast.Decode(payload)
}

// GetForecastSummary returns the decoded forecast annotated for display.
func (fs *ForecastService) GetForecastSummary(ctx context.Context, req models.ForecastRequest) (*util.ForecastSummary, error) {
	f, err := fs.GetDecodedForecast(ctx, req)
	if err != nil {
		return nil, err
	}
	return util.BuildForecastSummary(f), nil
}

// Invalidate drops the cached forecast for one query and horizon. Fetches
// already in flight for that pair will not repopulate the cache.
func (fs *ForecastService) Invalidate(query string, days *int) error {
	resolvedQuery, resolvedDays, err := weatherapi.ResolveRequest(models.ForecastRequest{Query: query, Days: days})
	if err != nil {
		return err
	}

	key := redis.ForecastKey(resolvedQuery, resolvedDays)
	fs.mu.Lock()
	fs.generations[key]++
	fs.mu.Unlock()

	if err := fs.forecastDao.DeleteForecast(resolvedQuery, resolvedDays); err != nil {
		return fmt.Errorf("[ForecastService] failed to invalidate %s: %w", key, err)
	}
	log := logger.For("ForecastService")
	log.Info().Str("key", key).Msg("forecast invalidated")
	return nil
}

// InvalidateAll drops every cached forecast and returns how many entries were removed.
func (fs *ForecastService) InvalidateAll() (int, error) {
	fs.mu.Lock()
	fs.epoch++
	fs.generations = make(map[string]uint64)
	fs.mu.Unlock()

	removed, err := fs.forecastDao.DeleteAllForecasts()
	if err != nil {
		return 0, fmt.Errorf("[ForecastService] failed to invalidate forecasts: %w", err)
	}
	log := logger.For("ForecastService")
	log.Info().Int("removed", removed).Msg("all forecasts invalidated")
	return removed, nil
}

func (fs *ForecastService) snapshot(key string) cacheGeneration {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return cacheGeneration{epoch: fs.epoch, gen: fs.generations[key]}
}

func (fs *ForecastService) current(key string, snapshot cacheGeneration) bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.epoch == snapshot.epoch && fs.generations[key] == snapshot.gen
}

// store writes outside the lock and undoes the write when an invalidation
// landed while it was in progress.
func (fs *ForecastService) store(query string, days int, snapshot cacheGeneration, payload models.ForecastResponse) {
	key := redis.ForecastKey(query, days)
	log := logger.For("ForecastService")

	if !fs.current(key, snapshot) {
		log.Debug().Str("key", key).Msg("skipping cache write for invalidated fetch")
		return
	}
	if err := fs.forecastDao.SetForecast(query, days, payload); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to cache forecast")
		return
	}
	if fs.current(key, snapshot) {
		return
	}

	log.Debug().Str("key", key).Msg("invalidated during cache write, removing entry")
	if err := fs.forecastDao.DeleteForecast(query, days); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to remove invalidated forecast")
	}
}
