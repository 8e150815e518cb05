package internal

import (
	"strings"
	"time"
)

// Config is populated from the environment via go-env. Connection pool
// knobs map straight onto the redis client options.
type Config struct {
	RedisAddr     string `env:"REDIS_ADDR,required=true"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB,default=0"`

	PoolSize           int           `env:"REDIS_POOL_SIZE,default=10"`
	MinIdleConns       int           `env:"REDIS_MIN_IDLE_CONNS,default=2"`
	PoolTimeout        time.Duration `env:"REDIS_POOL_TIMEOUT,default=4s"`
	IdleTimeout        time.Duration `env:"REDIS_IDLE_TIMEOUT,default=5m"`
	IdleCheckFrequency time.Duration `env:"REDIS_IDLE_CHECK_FREQUENCY,default=1m"`

	// MessageTTL of zero keeps the repository default of thirty days.
	MessageTTL time.Duration `env:"MESSAGE_TTL"`

	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
	Host           string `env:"HOST,default=localhost"`
	Port           int    `env:"PORT,default=8080"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS,default=*"`
}

// Origins splits the comma-separated ALLOWED_ORIGINS value.
func (c Config) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
