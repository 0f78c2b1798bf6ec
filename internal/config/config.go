package config

import "time"

type PostgresConfig struct {
	DSN             string        `env:"PG_DSN"`
	MaxOpenConns    int           `env:"PG_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `env:"PG_MAX_IDLE_CONNS" default:"10"`
	ConnMaxIdleTime time.Duration `env:"PG_CONN_MAX_IDLE_TIME" default:"5m"`
	ConnMaxLifetime time.Duration `env:"PG_CONN_MAX_LIFETIME" default:"30m"`
}

// RateLimitConfig bounds mutating requests per client IP.
type RateLimitConfig struct {
	RPS   float64 `env:"RATE_LIMIT_RPS" default:"20"`
	Burst int     `env:"RATE_LIMIT_BURST" default:"50"`
}

type MatchConfig struct {
	SameRarity bool `env:"MATCH_SAME_RARITY" default:"false"`
}
