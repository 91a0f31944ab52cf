package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// DriverMySQL selects the MySQL GORM dialector.
	DriverMySQL = "mysql"
	// DriverPostgres selects the Postgres GORM dialector.
	DriverPostgres = "postgres"

	envProduction = "production"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	AppEnv      string
	DBDriver    string
	DatabaseURL string
	AutoMigrate bool
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	CacheTTL    time.Duration
	JWTSecret   string
	TokenTTL    time.Duration
	BcryptCost  int
	CORSOrigin  string
	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
// JWT_SECRET has no default; Validate rejects a config without it.
func Load() *Config {
	return &Config{
		ServerPort:  getEnv("PORT", getEnv("SERVER_PORT", "3000")),
		AppEnv:      getEnv("APP_ENV", getEnv("NODE_ENV", "development")),
		DBDriver:    getEnv("DB_DRIVER", DriverMySQL),
		DatabaseURL: getEnv("DATABASE_URL", getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/deafso?charset=utf8mb4&parseTime=True&loc=Local")),
		AutoMigrate: getEnvBool("DB_AUTO_MIGRATE", true),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		CacheTTL:    getEnvDuration("CACHE_TTL", 5*time.Minute),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenTTL:    getEnvDuration("JWT_EXPIRES_IN", 24*time.Hour),
		BcryptCost:  getEnvInt("BCRYPT_COST", 12),
		CORSOrigin:  getEnv("CORS_ORIGIN", "http://localhost:5173"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}
}

// Validate reports configuration that would make the server unusable.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if c.DBDriver != DriverMySQL && c.DBDriver != DriverPostgres {
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("JWT_EXPIRES_IN must be positive, got %s", c.TokenTTL)
	}
	return nil
}

// IsProduction reports whether error details must be hidden from clients.
func (c *Config) IsProduction() bool {
	return c.AppEnv == envProduction
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

// getEnvDuration accepts Go durations ("24h") or a bare number of seconds.
func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(v); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}
