package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Session   SessionConfig
	Log       LogConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port string
}

type DatabaseConfig struct {
	// URL is a Postgres connection string. Empty means the local SQLite file.
	URL        string
	SQLitePath string
}

type SessionConfig struct {
	Secret string
	Name   string
}

type LogConfig struct {
	Level  string
	Format string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

const sqliteScheme = "sqlite://"

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "customer-intake")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("SQLITE_PATH", "data.db")
	viper.SetDefault("SECRET_KEY", "change_this_in_prod")
	viper.SetDefault("SESSION_NAME", "intake_session")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "console")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{})
	viper.SetDefault("CORS_ALLOWED_METHODS", []string{})
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 30)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name: viper.GetString("APP_NAME"),
			Env:  viper.GetString("APP_ENV"),
			Port: viper.GetString("PORT"),
		},
		Database: DatabaseConfig{
			URL:        strings.TrimSpace(viper.GetString("DATABASE_URL")),
			SQLitePath: viper.GetString("SQLITE_PATH"),
		},
		Session: SessionConfig{
			Secret: viper.GetString("SECRET_KEY"),
			Name:   viper.GetString("SESSION_NAME"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

// UseSQLite reports whether records live in a local SQLite file
func (c *DatabaseConfig) UseSQLite() bool {
	return c.URL == "" || strings.HasPrefix(c.URL, sqliteScheme)
}

// SQLiteFile returns the SQLite file to open when UseSQLite is true
func (c *DatabaseConfig) SQLiteFile() string {
	if strings.HasPrefix(c.URL, sqliteScheme) {
		return strings.TrimPrefix(c.URL, sqliteScheme)
	}
	return c.SQLitePath
}

// IsProduction reports whether the service runs in production mode
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
