package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Server config
const DEFAULT_SERVER_PORT = 8080
const SERVER_SHUTDOWN_TIMEOUT = 5 * time.Second

// Redis Config
const DEFAULT_REDIS_ADDRESS = "redis:6379"
const DEFAULT_REDIS_PASSWORD = ""
const DEFAULT_REDIS_DB = 0

// Weather provider (WeatherAPI.com through RapidAPI)
const DEFAULT_PROVIDER_TIMEOUT = 10 * time.Second
const DEFAULT_FORECAST_DAYS = 3
const MIN_FORECAST_DAYS = 1
const MAX_FORECAST_DAYS = 10

// Forecast cache
const DEFAULT_FORECAST_CACHE_TTL = 5 * time.Minute

// Geolocation
const DEFAULT_GEOLOCATION_ENDPOINT = "http://ip-api.com/json"

const ENV_PREFIX = "AERIS"
const DEFAULT_ENV_FILE = ".env"

type Config struct {
	Env         string            `mapstructure:"env"`
	Server      ServerConfig      `mapstructure:"server"`
	Provider    ProviderConfig    `mapstructure:"provider"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Cache       CacheConfig       `mapstructure:"cache"`
	Geolocation GeolocationConfig `mapstructure:"geolocation"`
	Logger      LoggerConfig      `mapstructure:"logger"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// ProviderConfig holds the forecast provider settings. Host and APIKey are
// deliberately not validated at load time: a missing value is reported as a
// configuration error by the forecast client on first use.
type ProviderConfig struct {
	Host           string        `mapstructure:"host"`
	APIKey         string        `mapstructure:"api_key"`
	BaseURL        string        `mapstructure:"base_url"`
	Timeout        time.Duration `mapstructure:"timeout"`
	RateLimitRPS   float64       `mapstructure:"rate_limit_rps"`
	RateLimitBurst int           `mapstructure:"rate_limit_burst"`
	// FixturePath replaces the embedded recording served outside prod.
	FixturePath string `mapstructure:"fixture_path"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type GeolocationConfig struct {
	Endpoint string `mapstructure:"endpoint"`
}

type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from defaults, an optional .env file, an optional
// config file and the environment, in increasing order of precedence.
func Load(configPath, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %q: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The RapidAPI variable names predate the AERIS_ prefix and are still honoured.
	if err := v.BindEnv("provider.host", ENV_PREFIX+"_PROVIDER_HOST", "RAPID_API_HOST"); err != nil {
		return nil, fmt.Errorf("failed to bind provider host: %w", err)
	}
	if err := v.BindEnv("provider.api_key", ENV_PREFIX+"_PROVIDER_API_KEY", "RAPID_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind provider api key: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "prod")
	v.SetDefault("server.port", DEFAULT_SERVER_PORT)
	v.SetDefault("provider.host", "")
	v.SetDefault("provider.api_key", "")
	v.SetDefault("provider.base_url", "")
	v.SetDefault("provider.timeout", DEFAULT_PROVIDER_TIMEOUT)
	v.SetDefault("provider.rate_limit_rps", 0.0)
	v.SetDefault("provider.rate_limit_burst", 1)
	v.SetDefault("provider.fixture_path", "")
	v.SetDefault("redis.address", DEFAULT_REDIS_ADDRESS)
	v.SetDefault("redis.password", DEFAULT_REDIS_PASSWORD)
	v.SetDefault("redis.db", DEFAULT_REDIS_DB)
	v.SetDefault("cache.ttl", DEFAULT_FORECAST_CACHE_TTL)
	v.SetDefault("geolocation.endpoint", DEFAULT_GEOLOCATION_ENDPOINT)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
}

func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}
	if cfg.Provider.Timeout <= 0 {
		return fmt.Errorf("provider timeout must be positive")
	}
	if cfg.Provider.RateLimitRPS < 0 {
		return fmt.Errorf("rate_limit_rps cannot be negative")
	}
	if cfg.Cache.TTL < 0 {
		return fmt.Errorf("cache ttl cannot be negative")
	}
	return nil
}

// IsProd reports whether real external dependencies should be wired.
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}
