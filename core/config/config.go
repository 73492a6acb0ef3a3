package config

import (
	"path/filepath"
	"strings"
	"time"
)

// Config holds all application configuration in a structured way.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Flickr   FlickrConfig
	Security SecurityConfig
}

type AppConfig struct {
	Version            string
	Port               string
	Debug              bool
	Environment        string
	BasePath           string
	TrustedProxies     []string
	CorsAllowedOrigins []string
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string // File path for SQLite, DB name for Postgres

	ValkeyAddress   string
	ValkeyPassword  string
	ValkeyDB        int
	ValkeyKeyPrefix string
}

type FlickrConfig struct {
	APIURL  string
	APIKey  string
	Timeout time.Duration
	// FeedTTL and PhotoTTL control how long normalized responses live in the
	// cache.
	FeedTTL  time.Duration
	PhotoTTL time.Duration
}

type SecurityConfig struct {
	JWTSecret string
}

// Global provides access to the loaded configuration.
var Global *Config

// LoadConfig loads configuration from environment variables or defaults.
func LoadConfig() (*Config, error) {
	debug := getEnvBool("APP_DEBUG", false)

	corsOrigins := []string{"http://localhost:3000", "http://localhost:5173"}
	if v := getEnv("APP_CORS_ALLOWED_ORIGINS", ""); v != "" {
		corsOrigins = strings.Split(v, ",")
	}

	appCfg := AppConfig{
		Version:            "v1.2.0",
		Port:               getEnv("APP_PORT", "3000"),
		Debug:              debug,
		Environment:        getEnv("APP_ENV", "development"),
		BasePath:           getEnv("APP_BASE_PATH", ""),
		CorsAllowedOrigins: corsOrigins,
	}
	if v := getEnv("APP_TRUSTED_PROXIES", ""); v != "" {
		appCfg.TrustedProxies = strings.Split(v, ",")
	}

	dbCfg := DatabaseConfig{
		Driver:          getEnv("DB_DRIVER", "sqlite"),
		Name:            getEnv("DB_NAME", filepath.Join("storages", "app.db")),
		Host:            getEnv("DB_HOST", "localhost"),
		Port:            getEnvInt("DB_PORT", 5432),
		User:            getEnv("DB_USER", "postgres"),
		Password:        getEnv("DB_PASSWORD", ""),
		ValkeyAddress:   getEnv("VALKEY_ADDRESS", "localhost:6379"),
		ValkeyPassword:  getEnv("VALKEY_PASSWORD", ""),
		ValkeyDB:        getEnvInt("VALKEY_DB", 0),
		ValkeyKeyPrefix: getEnv("VALKEY_KEY_PREFIX", "photofeed:"),
	}

	flickrCfg := FlickrConfig{
		APIURL:   getEnv("FLICKR_API_URL", "https://api.flickr.com/services/rest"),
		APIKey:   getEnv("FLICKR_API_KEY", ""),
		Timeout:  time.Duration(getEnvInt("FLICKR_TIMEOUT_SECONDS", 15)) * time.Second,
		FeedTTL:  time.Duration(getEnvInt("FEED_CACHE_TTL_SECONDS", 600)) * time.Second,
		PhotoTTL: time.Duration(getEnvInt("PHOTO_CACHE_TTL_SECONDS", 600)) * time.Second,
	}

	cfg := &Config{
		App:      appCfg,
		Database: dbCfg,
		Flickr:   flickrCfg,
		Security: SecurityConfig{
			JWTSecret: getEnv("APP_JWT_SECRET", "changeme_please_change_me_in_prod_12345"),
		},
	}

	Global = cfg
	return cfg, nil
}
