package di

import (
	"context"
	"fmt"

	"aeris-weather/api"
	"aeris-weather/api/geolocation"
	"aeris-weather/api/weatherapi"
	"aeris-weather/config"
	"aeris-weather/dao/redis"
	"aeris-weather/db"
	"aeris-weather/logger"
	"aeris-weather/server"
	"aeris-weather/server/handlers"
	services "aeris-weather/service"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Coordinates served by the fixed locator outside prod; they match the
// recorded forecast fixture.
const (
	DEV_LOCATION_LAT = 31.5497
	DEV_LOCATION_LON = 74.3436
)

// Container holds all application dependencies.
type Container struct {
	Config            *config.Config
	RedisClient       db.RedisClient
	RedisForecastDao  *redis.RedisForecastDAO
	ForecastAPI       weatherapi.ForecastAPI
	ForecastService   *services.ForecastService
	Locator           geolocation.Locator
	LocationService   *services.LocationService
	ForecastHandler   *handlers.ForecastHandler
	LocationHandler   *handlers.LocationHandler
	MuxRouter         *mux.Router
	Router            *server.Router
	WeatherHttpServer *server.WeatherHttpServer

	closers []func() error
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	log := logger.For("Container")
	log.Info().Str("env", cfg.Env).Msg("initializing container")
	ctx := context.Background()
	c := &Container{Config: cfg}

	// Initialize Redis client
	if cfg.IsProd() {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		redisClient := db.NewGoRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			redisClient.Close()
			return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.Address, err)
		}
		c.RedisClient = redisClient
		c.closers = append(c.closers, redisClient.Close)
	} else {
		log.Info().Msg("using in-memory redis")
		c.RedisClient = db.NewMockRedisClient()
	}

	c.RedisForecastDao = redis.NewRedisForecastDAO(c.RedisClient, cfg.Cache.TTL)

	// Initialize forecast provider
	if cfg.IsProd() {
		log.Info().Str("host", cfg.Provider.Host).Msg("using prod forecast api")
		var forecastApi weatherapi.ForecastAPI = weatherapi.NewForecastApiClientFromConfig(cfg.Provider)
		if cfg.Provider.RateLimitRPS > 0 {
			forecastApi = weatherapi.NewRateLimitedForecastAPI(forecastApi, cfg.Provider.RateLimitRPS, cfg.Provider.RateLimitBurst)
		}
		c.ForecastAPI = forecastApi
	} else if cfg.Provider.FixturePath != "" {
		log.Info().Str("fixture", cfg.Provider.FixturePath).Msg("using recorded forecast api")
		c.ForecastAPI = weatherapi.NewForecastApiClientMockFromFile(cfg.Provider.FixturePath)
	} else {
		log.Info().Msg("using mock forecast api")
		c.ForecastAPI = weatherapi.NewForecastApiClientMock()
	}

	// Initialize geolocation
	if cfg.IsProd() {
		c.Locator = geolocation.NewIPLocator(api.NewHTTPClientWithTimeout(cfg.Geolocation.Endpoint, cfg.Provider.Timeout))
	} else {
		c.Locator = geolocation.NewFixedLocator(DEV_LOCATION_LAT, DEV_LOCATION_LON)
	}

	// Initialize service layer
	c.ForecastService = services.NewForecastService(c.RedisForecastDao, c.ForecastAPI)
	c.LocationService = services.NewLocationService(c.Locator)

	// Initialize handlers
	c.ForecastHandler = handlers.NewForecastHandler(c.ForecastService)
	c.LocationHandler = handlers.NewLocationHandler(c.LocationService)

	// Initialize routing and the HTTP server
	c.MuxRouter = mux.NewRouter()
	c.Router = server.NewRouter(c.ForecastHandler, c.LocationHandler, c.MuxRouter)
	c.WeatherHttpServer = server.NewWeatherHttpServer(c.Router, c.MuxRouter, cfg.Server.Port)

	return c, nil
}

// Close releases external connections held by the container.
func (c *Container) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
