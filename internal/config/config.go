package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config is the full configuration surface. Defaults make a zero-config
// start runnable; a TOML file and a few environment variables override.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Render  RenderConfig  `toml:"render"`
	Session SessionConfig `toml:"session"`
	Upload  UploadConfig  `toml:"upload"`
}

type ServerConfig struct {
	Port string `toml:"port" validate:"required"`
}

type RenderConfig struct {
	// ChromeTimeout bounds one browser print; rendering is latency-heavy
	// but synchronous.
	ChromeTimeoutSeconds int `toml:"chrome_timeout_seconds" validate:"gte=1"`
	// FontPath optionally overrides the embedded PDF font with a TTF file.
	FontPath string `toml:"font_path"`
}

type SessionConfig struct {
	TTLMinutes int    `toml:"ttl_minutes" validate:"gte=1"`
	SweepSpec  string `toml:"sweep_spec" validate:"required"`
}

type UploadConfig struct {
	MaxBytes int64 `toml:"max_bytes" validate:"gt=0"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{Port: "8080"},
		Render: RenderConfig{ChromeTimeoutSeconds: 30},
		Session: SessionConfig{
			TTLMinutes: 120,
			SweepSpec:  "@every 10m",
		},
		Upload: UploadConfig{MaxBytes: 8 << 20},
	}
}

// Load reads the optional .env file, then CONFIG_FILE (TOML) when set, then
// environment overrides, and validates the result.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else {
		// Missing .env is fine; configuration may come from the environment.
		_ = godotenv.Load()
	}

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("FONT_PATH"); v != "" {
		cfg.Render.FontPath = v
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) ChromeTimeout() time.Duration {
	return time.Duration(c.Render.ChromeTimeoutSeconds) * time.Second
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLMinutes) * time.Minute
}
