package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderOverpass = "overpass"
	ProviderAPI      = "api"
)

type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Places    PlacesConfig
	Overpass  OverpassConfig
	Nominatim NominatimConfig
	PlacesAPI PlacesAPIConfig
	Log       LogConfig
	Worker    WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	PlacesTTL  time.Duration
	GeocodeTTL time.Duration
}

// PlacesConfig - выбор провайдера точек и параметры поиска по умолчанию.
// Провайдер выбирается один раз при старте, не per-request.
type PlacesConfig struct {
	Provider      string
	DefaultLat    float64
	DefaultLng    float64
	DefaultRadius float64
}

type OverpassConfig struct {
	URL            string
	QueryTimeout   int
	RequestTimeout time.Duration
}

type NominatimConfig struct {
	URL            string
	UserAgent      string
	RequestTimeout time.Duration
}

type PlacesAPIConfig struct {
	URL            string
	RequestTimeout time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			PlacesTTL:  time.Duration(viper.GetInt("PLACES_CACHE_TTL")) * time.Second,
			GeocodeTTL: time.Duration(viper.GetInt("GEOCODE_CACHE_TTL")) * time.Second,
		},
		Places: PlacesConfig{
			Provider:      viper.GetString("PLACES_PROVIDER"),
			DefaultLat:    viper.GetFloat64("DEFAULT_LAT"),
			DefaultLng:    viper.GetFloat64("DEFAULT_LNG"),
			DefaultRadius: viper.GetFloat64("DEFAULT_RADIUS"),
		},
		Overpass: OverpassConfig{
			URL:            viper.GetString("OVERPASS_URL"),
			QueryTimeout:   viper.GetInt("OVERPASS_QUERY_TIMEOUT"),
			RequestTimeout: time.Duration(viper.GetInt("OVERPASS_REQUEST_TIMEOUT")) * time.Second,
		},
		Nominatim: NominatimConfig{
			URL:            viper.GetString("NOMINATIM_URL"),
			UserAgent:      viper.GetString("NOMINATIM_USER_AGENT"),
			RequestTimeout: time.Duration(viper.GetInt("NOMINATIM_REQUEST_TIMEOUT")) * time.Second,
		},
		PlacesAPI: PlacesAPIConfig{
			URL:            viper.GetString("PLACES_API_URL"),
			RequestTimeout: time.Duration(viper.GetInt("PLACES_API_REQUEST_TIMEOUT")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:       viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup: viper.GetString("WORKER_CONSUMER_GROUP"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5001
	}
	if cfg.Places.Provider == "" {
		cfg.Places.Provider = ProviderOverpass
	}
	if cfg.Places.Provider != ProviderOverpass && cfg.Places.Provider != ProviderAPI {
		return nil, fmt.Errorf("unknown places provider: %q", cfg.Places.Provider)
	}
	if cfg.Places.DefaultLat == 0 && cfg.Places.DefaultLng == 0 {
		// Times Square - центр поиска по умолчанию
		cfg.Places.DefaultLat = 40.7589
		cfg.Places.DefaultLng = -73.9851
	}
	if cfg.Places.DefaultRadius == 0 {
		cfg.Places.DefaultRadius = 0.05
	}
	if cfg.Overpass.URL == "" {
		cfg.Overpass.URL = "http://overpass-api.de/api/interpreter"
	}
	if cfg.Overpass.QueryTimeout == 0 {
		cfg.Overpass.QueryTimeout = 25
	}
	if cfg.Overpass.RequestTimeout == 0 {
		cfg.Overpass.RequestTimeout = 30 * time.Second
	}
	if cfg.Nominatim.URL == "" {
		cfg.Nominatim.URL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Nominatim.UserAgent == "" {
		cfg.Nominatim.UserAgent = "PizzaHuntService/1.0"
	}
	if cfg.Nominatim.RequestTimeout == 0 {
		cfg.Nominatim.RequestTimeout = 10 * time.Second
	}
	if cfg.PlacesAPI.RequestTimeout == 0 {
		cfg.PlacesAPI.RequestTimeout = 30 * time.Second
	}
	if cfg.Cache.PlacesTTL == 0 {
		cfg.Cache.PlacesTTL = 10 * time.Minute
	}
	if cfg.Cache.GeocodeTTL == 0 {
		cfg.Cache.GeocodeTTL = 24 * time.Hour
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "pizza-warmup-workers"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
