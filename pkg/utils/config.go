package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	TMDB      TMDBConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
	Catalog   CatalogConfig
}

type AppConfig struct {
	Name           string
	Port           string
	Debug          bool
	LogPath        string
	AllowedOrigins []string
	TrustProxy     bool
}

type DatabaseConfig struct {
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	MaxConns    int32
	AutoMigrate bool
}

type TMDBConfig struct {
	APIKey   string
	BaseURL  string
	Language string
	Timeout  time.Duration
}

type SessionConfig struct {
	ExpiryHours int
}

type RateLimitConfig struct {
	PerMinute int
}

type CatalogConfig struct {
	MaxConcurrency int
}

// LoadConfig reads .env when present and lets environment variables override it.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "movie-catalog")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("TRUST_PROXY", false)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_AUTO_MIGRATE", true)
	viper.SetDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	viper.SetDefault("TMDB_LANGUAGE", "pt-BR")
	viper.SetDefault("TMDB_TIMEOUT_SECONDS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	viper.SetDefault("CATALOG_MAX_CONCURRENCY", 8)

	if err := viper.ReadInConfig(); err != nil {
		// .env is optional, plain environment variables are enough
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:           viper.GetString("APP_NAME"),
			Port:           viper.GetString("PORT"),
			Debug:          viper.GetBool("DEBUG"),
			LogPath:        viper.GetString("LOG_PATH"),
			AllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
			TrustProxy:     viper.GetBool("TRUST_PROXY"),
		},
		Database: DatabaseConfig{
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetString("DB_PORT"),
			Name:        viper.GetString("DB_NAME"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASS"),
			MaxConns:    viper.GetInt32("DB_MAX_CONNS"),
			AutoMigrate: viper.GetBool("DB_AUTO_MIGRATE"),
		},
		TMDB: TMDBConfig{
			APIKey:   strings.TrimSpace(viper.GetString("TMDB_KEY")),
			BaseURL:  viper.GetString("TMDB_BASE_URL"),
			Language: viper.GetString("TMDB_LANGUAGE"),
			Timeout:  time.Duration(viper.GetInt("TMDB_TIMEOUT_SECONDS")) * time.Second,
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		RateLimit: RateLimitConfig{
			PerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Catalog: CatalogConfig{
			MaxConcurrency: viper.GetInt("CATALOG_MAX_CONCURRENCY"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks required values and normalizes the TMDB locale.
func (c *Config) Validate() error {
	if c.TMDB.APIKey == "" {
		return errors.New("TMDB_KEY must be set")
	}

	lang, err := NormalizeLanguage(c.TMDB.Language)
	if err != nil {
		return fmt.Errorf("invalid TMDB_LANGUAGE %q: %w", c.TMDB.Language, err)
	}
	c.TMDB.Language = lang

	if c.TMDB.Timeout <= 0 {
		c.TMDB.Timeout = 10 * time.Second
	}
	if c.Session.ExpiryHours <= 0 {
		c.Session.ExpiryHours = 24
	}
	if c.Catalog.MaxConcurrency <= 0 {
		c.Catalog.MaxConcurrency = 1
	}

	return nil
}

// NormalizeLanguage parses a BCP-47 tag and returns its canonical form ("pt-br" -> "pt-BR").
func NormalizeLanguage(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "en-US", nil
	}

	tag, err := language.Parse(value)
	if err != nil {
		return "", err
	}

	return tag.String(), nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
