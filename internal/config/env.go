package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
)

type Env struct {
	AppAddr  string `env:"APP_ADDR" envDefault:":8080"`
	GinMode  string `env:"GIN_MODE"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DBHost            string        `env:"DB_HOST" envDefault:"127.0.0.1"`
	DBPort            int           `env:"DB_PORT" envDefault:"3306"`
	DBUser            string        `env:"DB_USER" envDefault:"root"`
	DBPassword        string        `env:"DB_PASSWORD"`
	DBName            string        `env:"DB_NAME" envDefault:"tripmarket"`
	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"25"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"10m"`
	DBConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	DBConnectTimeout  time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"1m"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret          string   `env:"JWT_SECRET"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173"`

	TripCacheTTL   time.Duration `env:"TRIP_CACHE_TTL" envDefault:"5m"`
	CompareListTTL time.Duration `env:"COMPARE_LIST_TTL" envDefault:"720h"`

	// When set, a lead cannot be created while a MULTI category is unselected.
	LeadsRequireCompleteSelection bool `env:"LEADS_REQUIRE_COMPLETE_SELECTION" envDefault:"false"`
}

func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("config.LoadEnv: %w", err)
	}
	e.GinMode = strings.TrimSpace(e.GinMode)
	if e.GinMode == "release" && strings.TrimSpace(e.JWTSecret) == "" {
		return Env{}, fmt.Errorf("config.LoadEnv: JWT_SECRET is required in release mode")
	}
	return e, nil
}

// DSN builds the MySQL data source name.
func (e Env) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s",
		e.DBUser, e.DBPassword, e.DBHost, e.DBPort, e.DBName)
}

var current Env

// SetCurrent stores the loaded env for handlers that need runtime settings.
func SetCurrent(e Env) { current = e }

// Current returns the env stored by SetCurrent.
func Current() Env { return current }
