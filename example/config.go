package main

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/localize/pkg/langtag"
	"github.com/dmitrymomot/localize/pkg/logger"
	"github.com/dmitrymomot/localize/pkg/resolver"
)

// Config is read from the environment.
type Config struct {
	Address         string               `env:"ADDRESS" envDefault:":8080"`
	RedisURL        string               `env:"REDIS_URL"`
	Specificity     resolver.Specificity `env:"LOCALIZE_SPECIFICITY" envDefault:"most-recent"`
	Supported       []langtag.Tag        `env:"LOCALIZE_SUPPORTED" envDefault:"en,fr,de,pl"`
	CacheSize       int                  `env:"LOCALIZE_CACHE_SIZE" envDefault:"4096"`
	CacheTTL        time.Duration        `env:"LOCALIZE_CACHE_TTL" envDefault:"1h"`
	ShutdownTimeout time.Duration        `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	Sentry          logger.SentryConfig
}

func loadConfig() (Config, error) {
	return env.ParseAs[Config]()
}
