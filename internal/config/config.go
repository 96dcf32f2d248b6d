package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Provider exposes configuration values to the rest of the application.
// Packages depend on this interface rather than on *Config so tests can
// supply their own values.
type Provider interface {
	GetDBURL() string
	GetDBNs() string
	GetDBDb() string
	GetDBUser() string
	GetDBPass() string
	GetDBQueryTimeout() time.Duration
	GetDBExecuteTimeout() time.Duration

	GetServerAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetMediaDir() string

	GetSiteTitle() string
	GetSiteDescription() string
}

// Config holds all configuration for the application.
type Config struct {
	DBUrl            string
	DBNs             string
	DBDb             string
	DBUser           string
	DBPass           string
	DBQueryTimeout   time.Duration
	DBExecuteTimeout time.Duration

	ServerAddr    string
	AppBaseURL    string
	SessionSecret string
	MediaDir      string

	SiteTitle       string
	SiteDescription string
}

var _ Provider = (*Config)(nil)

// ErrMissingDatabase is returned when the SurrealDB connection settings are incomplete.
var ErrMissingDatabase = errors.New("required environment variables SURREAL_URL, SURREAL_NS, or SURREAL_DB are not set")

const (
	defaultServerAddr      = ":8080"
	defaultAppBaseURL      = "http://localhost:8080"
	defaultMediaDir        = "data/media"
	defaultSiteTitle       = "Courseboard"
	defaultSiteDescription = "Create, share and follow online courses."
	defaultQueryTimeout    = 5 * time.Second
	defaultExecuteTimeout  = 10 * time.Second
)

// New loads a .env file when one exists and then reads the configuration
// from environment variables.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		DBUrl:            os.Getenv("SURREAL_URL"),
		DBUser:           os.Getenv("SURREAL_USER"),
		DBPass:           os.Getenv("SURREAL_PASS"),
		DBNs:             os.Getenv("SURREAL_NS"),
		DBDb:             os.Getenv("SURREAL_DB"),
		DBQueryTimeout:   durationEnv("DB_QUERY_TIMEOUT", defaultQueryTimeout),
		DBExecuteTimeout: durationEnv("DB_EXECUTE_TIMEOUT", defaultExecuteTimeout),

		ServerAddr:    stringEnv("SERVER_ADDR", defaultServerAddr),
		AppBaseURL:    stringEnv("APP_BASE_URL", defaultAppBaseURL),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		MediaDir:      stringEnv("MEDIA_DIR", defaultMediaDir),

		SiteTitle:       stringEnv("SITE_TITLE", defaultSiteTitle),
		SiteDescription: stringEnv("SITE_DESCRIPTION", defaultSiteDescription),
	}

	if cfg.DBUrl == "" || cfg.DBNs == "" || cfg.DBDb == "" {
		return nil, ErrMissingDatabase
	}

	if cfg.SessionSecret == "" {
		log.Println("SESSION_SECRET is not set, using an insecure development secret")
		cfg.SessionSecret = "courseboard-dev-secret"
	}

	return cfg, nil
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// durationEnv accepts Go duration strings ("3s") or a plain number of seconds.
func durationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Printf("Invalid value %q for %s, using default %s", v, key, fallback)
	return fallback
}

func (c *Config) GetDBURL() string { return c.DBUrl }
func (c *Config) GetDBNs() string { return c.DBNs }
func (c *Config) GetDBDb() string { return c.DBDb }
func (c *Config) GetDBUser() string { return c.DBUser }
func (c *Config) GetDBPass() string { return c.DBPass }
func (c *Config) GetDBQueryTimeout() time.Duration { return c.DBQueryTimeout }
func (c *Config) GetDBExecuteTimeout() time.Duration { return c.DBExecuteTimeout }
func (c *Config) GetServerAddr() string { return c.ServerAddr }
func (c *Config) GetAppBaseURL() string { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetMediaDir() string { return c.MediaDir }
func (c *Config) GetSiteTitle() string { return c.SiteTitle }
func (c *Config) GetSiteDescription() string { return c.SiteDescription }
