// Package config loads the agent's configuration from environment
// variables, with a .env file as the development convenience.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Version is the agent's reported client version, stamped onto analytics
// events as extension_version.
const Version = "1.0.0"

type Config struct {
	// Backend
	BackendURL string `env:"CODEMENTOR_API_URL" envDefault:"http://localhost:8000"`

	// Storage. An empty redis address falls back to the in-memory store.
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Browser
	Headless bool   `env:"AGENT_HEADLESS" envDefault:"true"`
	StartURL string `env:"AGENT_START_URL" envDefault:"https://leetcode.com/problems/two-sum/"`

	// Timings
	SelectorWaitMs int `env:"AGENT_SELECTOR_WAIT_MS" envDefault:"3000"`
	PollIntervalMs int `env:"AGENT_POLL_INTERVAL_MS" envDefault:"500"`
	SettleDelayMs  int `env:"AGENT_SETTLE_DELAY_MS" envDefault:"1000"`
	HintDelayMs    int `env:"AGENT_HINT_DELAY_MS" envDefault:"1500"`
	KeepaliveSecs  int `env:"AGENT_KEEPALIVE_SECS" envDefault:"20"`
}

func Load() (Config, error) {
	// missing .env is fine, the environment may carry everything
	godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("cannot parse agent config, %w", err)
	}
	return cfg, nil
}

func (c Config) SelectorWait() time.Duration {
	return time.Duration(c.SelectorWaitMs) * time.Millisecond
}

func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

func (c Config) SettleDelay() time.Duration {
	return time.Duration(c.SettleDelayMs) * time.Millisecond
}

func (c Config) HintDelay() time.Duration {
	return time.Duration(c.HintDelayMs) * time.Millisecond
}

func (c Config) KeepaliveInterval() time.Duration {
	return time.Duration(c.KeepaliveSecs) * time.Second
}
