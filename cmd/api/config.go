package main

import (
	"log/slog"
	"time"

	"github.com/fastprodman/pockettrader/internal/config"
)

type apiConfig struct {
	Port            uint16        `env:"APP_PORT" default:"8080"`
	LogLevel        slog.Level    `env:"APP_LOG_LEVEL" default:"INFO"`
	ShutdownTimeout time.Duration `env:"APP_SHUTDOWN_TIMEOUT" default:"10s"`
	UserCacheSize   int           `env:"USER_CACHE_SIZE" default:"1024"`

	Postgres  config.PostgresConfig
	RateLimit config.RateLimitConfig
	Match     config.MatchConfig
}
