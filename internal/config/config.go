package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ServerConfig is the aocd node configuration.
type ServerConfig struct {
	Name        string   `toml:"name"`
	Addr        string   `toml:"addr"`
	CorsOrigins []string `toml:"cors_origins"`
	InputDir    string   `toml:"input_dir"`
	Year        int      `toml:"year"`
	Concurrency int      `toml:"concurrency"`
	// MaxInputBytes bounds request bodies on the solve endpoints.
	MaxInputBytes int64 `toml:"max_input_bytes"`
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Name:          "aocd",
		Addr:          ":9300",
		InputDir:      "local/inputs",
		Year:          2023,
		MaxInputBytes: 1 << 20,
	}
}

func LoadServerConfig(path string) (ServerConfig, error) {
	var cfg ServerConfig
	if err := loadToml(path, &cfg); err != nil {
		return ServerConfig{}, err
	}
	cfg = withServerDefaults(cfg)
	if err := ValidateServerConfig(cfg); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

func withServerDefaults(cfg ServerConfig) ServerConfig {
	def := DefaultServerConfig()
	if cfg.Name == "" {
		cfg.Name = def.Name
	}
	if cfg.Addr == "" {
		cfg.Addr = def.Addr
	}
	if cfg.InputDir == "" {
		cfg.InputDir = def.InputDir
	}
	if cfg.Year == 0 {
		cfg.Year = def.Year
	}
	if cfg.MaxInputBytes == 0 {
		cfg.MaxInputBytes = def.MaxInputBytes
	}
	return cfg
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateServerConfig(cfg ServerConfig) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("server config missing name")
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("server config missing addr")
	}
	if cfg.Year < 2015 {
		return fmt.Errorf("server config year %d predates advent of code", cfg.Year)
	}
	if cfg.Concurrency < 0 {
		return fmt.Errorf("server config concurrency must be >= 0")
	}
	if cfg.MaxInputBytes < 0 {
		return fmt.Errorf("server config max_input_bytes must be >= 0")
	}
	for i, origin := range cfg.CorsOrigins {
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("cors_origins[%d] is empty", i)
		}
	}
	return nil
}
