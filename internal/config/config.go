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
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Файловый лог с ротацией, пустое значение - stdout
	LogFile       string `env:"LOG_FILE"`
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"10"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`

	// Storage Config
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"sqlite"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"field_sync.db"`
	DatabaseURL   string `env:"DATABASE_URL"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Remote API Config
	APIBaseURL string        `env:"API_BASE_URL"`
	APIToken   string        `env:"API_TOKEN"`
	APITimeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`

	// Geocode Config
	GeocodeTimeout time.Duration `env:"GEOCODE_TIMEOUT" envDefault:"15s"`
	GeocodeRegion  string        `env:"GEOCODE_REGION" envDefault:"Pernambuco, Brazil"`

	// Upload Config
	UploadBaseURL   string        `env:"UPLOAD_BASE_URL" envDefault:"https://api.cloudinary.com/v1_1"`
	UploadCloudName string        `env:"UPLOAD_CLOUD_NAME"`
	UploadPreset    string        `env:"UPLOAD_PRESET"`
	UploadTimeout   time.Duration `env:"UPLOAD_TIMEOUT" envDefault:"60s"`

	// Sync Config
	SyncInterval time.Duration `env:"SYNC_INTERVAL" envDefault:"20s"`
	SyncYield    time.Duration `env:"SYNC_YIELD" envDefault:"50ms"`
	SyncUserID   int64         `env:"SYNC_USER_ID"`

	// Network Probe Config
	NetworkProbeURL      string        `env:"NETWORK_PROBE_URL"`
	NetworkProbeInterval time.Duration `env:"NETWORK_PROBE_INTERVAL" envDefault:"10s"`
	NetworkProbeTimeout  time.Duration `env:"NETWORK_PROBE_TIMEOUT" envDefault:"3s"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

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
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFile:              os.Getenv("LOG_FILE"),
		LogMaxSizeMB:         getEnvAsInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups:        getEnvAsInt("LOG_MAX_BACKUPS", 3),
		StorageDriver:        strings.ToLower(getEnv("STORAGE_DRIVER", "sqlite")),
		SQLitePath:           getEnv("SQLITE_PATH", "field_sync.db"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:            os.Getenv("REDIS_PASSWORD"),
		RedisDB:              getEnvAsInt("REDIS_DB", 0),
		APIBaseURL:           strings.TrimRight(os.Getenv("API_BASE_URL"), "/"),
		APIToken:             os.Getenv("API_TOKEN"),
		APITimeout:           getEnvAsDuration("API_TIMEOUT", 30*time.Second),
		GeocodeTimeout:       getEnvAsDuration("GEOCODE_TIMEOUT", 15*time.Second),
		GeocodeRegion:        getEnv("GEOCODE_REGION", "Pernambuco, Brazil"),
		UploadBaseURL:        strings.TrimRight(getEnv("UPLOAD_BASE_URL", "https://api.cloudinary.com/v1_1"), "/"),
		UploadCloudName:      os.Getenv("UPLOAD_CLOUD_NAME"),
		UploadPreset:         os.Getenv("UPLOAD_PRESET"),
		UploadTimeout:        getEnvAsDuration("UPLOAD_TIMEOUT", 60*time.Second),
		SyncInterval:         getEnvAsDuration("SYNC_INTERVAL", 20*time.Second),
		SyncYield:            getEnvAsDuration("SYNC_YIELD", 50*time.Millisecond),
		SyncUserID:           getEnvAsInt64("SYNC_USER_ID", 0),
		NetworkProbeURL:      os.Getenv("NETWORK_PROBE_URL"),
		NetworkProbeInterval: getEnvAsDuration("NETWORK_PROBE_INTERVAL", 10*time.Second),
		NetworkProbeTimeout:  getEnvAsDuration("NETWORK_PROBE_TIMEOUT", 3*time.Second),
		WebhookURL:           os.Getenv("WEBHOOK_URL"),
		WebhookSecret:        os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:       getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:    getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:     getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.NetworkProbeURL == "" && cfg.APIBaseURL != "" {
		cfg.NetworkProbeURL = cfg.APIBaseURL + "/system/health"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры и согласованность драйвера хранилища
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL environment variable is required")
	}

	switch c.StorageDriver {
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for sqlite storage")
		}
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required for postgres storage")
		}
	case "redis", "memory":
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	if c.SyncInterval <= 0 {
		return fmt.Errorf("SYNC_INTERVAL must be positive")
	}
	return nil
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

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
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
