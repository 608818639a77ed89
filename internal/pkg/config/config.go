package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets, DB connection)
// - default: Values common across all environments (timeouts, limits, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	DB      DBConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	Auth    AuthConfig
	Booking BookingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// StorageConfig selects the store adapter set. "jsonfile" mirrors the flat
// JSON documents external tooling reads directly; "memory" is for tests and
// throwaway runs.
type StorageConfig struct {
	Driver  string `envconfig:"STORAGE_DRIVER" default:"postgres"`
	DataDir string `envconfig:"STORAGE_DATA_DIR" default:"./data"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"scheduler"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"scheduler"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

// RedisConfig backs the conversation-state store. An empty address falls
// back to the in-memory session store.
type RedisConfig struct {
	Addr       string        `envconfig:"REDIS_ADDR" default:""`
	Password   string        `envconfig:"REDIS_PASSWORD" default:""`
	DB         int           `envconfig:"REDIS_DB" default:"0"`
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"24h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PATCH,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// AuthConfig covers the whole auth story on purpose: callers present a
// bearer token minted elsewhere; the engine only verifies it.
type AuthConfig struct {
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`
}

type BookingConfig struct {
	// DefaultLimit caps availability responses when the caller sends none.
	DefaultLimit int `envconfig:"AVAILABILITY_DEFAULT_LIMIT" default:"8"`
	// AlternativesLimit caps the fresh alternatives returned with a rejection.
	AlternativesLimit int `envconfig:"BOOKING_ALTERNATIVES_LIMIT" default:"10"`
	// RateLimitPerSecond / RateLimitBurst throttle each client IP.
	RateLimitPerSecond float64 `envconfig:"RATE_LIMIT_PER_SECOND" default:"10"`
	RateLimitBurst     int     `envconfig:"RATE_LIMIT_BURST" default:"20"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server:  ServerConfig{Port: "8889"},
		Storage: StorageConfig{Driver: "memory"},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Auth: AuthConfig{JWTSecret: "test-secret"},
		Booking: BookingConfig{
			DefaultLimit:       8,
			AlternativesLimit:  10,
			RateLimitPerSecond: 100,
			RateLimitBurst:     100,
		},
	}
}
