package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Ranking Config
	// Точность geohash: 7 символов — ячейка примерно 153x153 метра
	GeohashPrecision int `env:"GEOHASH_PRECISION" envDefault:"7"`
	// Резервные веса, когда у муниципалитета нет собственных настроек
	DefaultNeighborhoodVoteWeight float64 `env:"DEFAULT_NEIGHBORHOOD_VOTE_WEIGHT" envDefault:"2.0"`
	DefaultGlobalVoteWeight       float64 `env:"DEFAULT_GLOBAL_VOTE_WEIGHT" envDefault:"1.0"`
	DefaultDecayConstantDays      float64 `env:"DEFAULT_DECAY_CONSTANT_DAYS" envDefault:"30"`
	// Максимальный радиус поиска "рядом", метров
	NearbyMaxRadiusMeters float64 `env:"NEARBY_MAX_RADIUS_METERS" envDefault:"10000"`

	// Cache Config
	IncidentCacheTTL     time.Duration `env:"INCIDENT_CACHE_TTL" envDefault:"5m"`
	NeighborhoodCacheTTL time.Duration `env:"NEIGHBORHOOD_CACHE_TTL" envDefault:"5m"`
	SettingsCacheTTL     time.Duration `env:"SETTINGS_CACHE_TTL" envDefault:"10m"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:                   os.Getenv("DATABASE_URL"),
		HTTPPort:                      getEnv("HTTP_PORT", "8080"),
		LogLevel:                      getEnv("LOG_LEVEL", "info"),
		RedisAddr:                     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:                     os.Getenv("REDIS_PASSWORD"),
		RedisDB:                       getEnvAsInt("REDIS_DB", 0),
		WebhookURL:                    os.Getenv("WEBHOOK_URL"),
		WebhookSecret:                 os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:                getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:             getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:              getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		GeohashPrecision:              getEnvAsInt("GEOHASH_PRECISION", 7),
		DefaultNeighborhoodVoteWeight: getEnvAsFloat("DEFAULT_NEIGHBORHOOD_VOTE_WEIGHT", 2.0),
		DefaultGlobalVoteWeight:       getEnvAsFloat("DEFAULT_GLOBAL_VOTE_WEIGHT", 1.0),
		DefaultDecayConstantDays:      getEnvAsFloat("DEFAULT_DECAY_CONSTANT_DAYS", 30),
		NearbyMaxRadiusMeters:         getEnvAsFloat("NEARBY_MAX_RADIUS_METERS", 10000),
		IncidentCacheTTL:              getEnvAsDuration("INCIDENT_CACHE_TTL", 5*time.Minute),
		NeighborhoodCacheTTL:          getEnvAsDuration("NEIGHBORHOOD_CACHE_TTL", 5*time.Minute),
		SettingsCacheTTL:              getEnvAsDuration("SETTINGS_CACHE_TTL", 10*time.Minute),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
