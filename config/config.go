package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/hollowmere/cardbound/parameter"
)

// Config is the runtime simulation configuration, overridable from the
// environment. Defaults come from the parameter package
type Config struct {
	// TickInterval is the fixed simulation step
	TickInterval time.Duration `env:"CARDBOUND_TICK_INTERVAL"`

	// AIInterval is the slow enemy decision cadence
	AIInterval time.Duration `env:"CARDBOUND_AI_INTERVAL"`

	// Arena bounds in simulation units
	ArenaWidth  float64 `env:"CARDBOUND_ARENA_WIDTH"`
	ArenaHeight float64 `env:"CARDBOUND_ARENA_HEIGHT"`

	// PlayerImmortal enables the damage-immunity override for the session
	// player (suppresses all health mutation)
	PlayerImmortal bool `env:"CARDBOUND_PLAYER_IMMORTAL"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		TickInterval: parameter.TickInterval,
		AIInterval:   parameter.AIDecisionInterval,
		ArenaWidth:   parameter.DefaultArenaWidth,
		ArenaHeight:  parameter.DefaultArenaHeight,
	}
}

// Load returns the default configuration with environment overrides applied
func Load() (Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if cfg.TickInterval <= 0 {
		return cfg, fmt.Errorf("config: tick interval must be positive, got %v", cfg.TickInterval)
	}
	if cfg.AIInterval < cfg.TickInterval {
		return cfg, fmt.Errorf("config: AI interval %v below tick interval %v", cfg.AIInterval, cfg.TickInterval)
	}
	return cfg, nil
}
