package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	Game   GameConfig   `yaml:"game"`
}

// ServerConfig configures the WebSocket listener.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// RedisConfig configures the stats store.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GameConfig configures table rules and timeouts.
type GameConfig struct {
	Players     int    `yaml:"players"`      // 3, 4 or 5
	Variant     string `yaml:"variant"`      // calledAce / jackOfDiamonds / alone
	NoPick      string `yaml:"no_pick"`      // leaster / forcedPick
	Cracking    bool   `yaml:"cracking"`
	Blitzing    bool   `yaml:"blitzing"`
	TurnTimeout int    `yaml:"turn_timeout"` // seconds per decision
	RoomTimeout int    `yaml:"room_timeout"` // minutes an idle room survives
}

// TurnTimeoutDuration is the per-decision timeout.
func (c *GameConfig) TurnTimeoutDuration() time.Duration {
	return time.Duration(c.TurnTimeout) * time.Second
}

// RoomTimeoutDuration is how long an idle room survives.
func (c *GameConfig) RoomTimeoutDuration() time.Duration {
	return time.Duration(c.RoomTimeout) * time.Minute
}

// Load reads a YAML config file, filling in defaults for absent keys.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 1832
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Game.Players == 0 {
		cfg.Game.Players = 5
	}
	if cfg.Game.Variant == "" {
		cfg.Game.Variant = "calledAce"
	}
	if cfg.Game.NoPick == "" {
		cfg.Game.NoPick = "leaster"
	}
	if cfg.Game.TurnTimeout == 0 {
		cfg.Game.TurnTimeout = 30
	}
	if cfg.Game.RoomTimeout == 0 {
		cfg.Game.RoomTimeout = 10
	}
}
