package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Pointer  PointerConfig     `toml:"pointer"`
	Commands map[string]string `toml:"commands"`
	Exec     ExecConfig        `toml:"exec"`
	Web      WebConfig         `toml:"web"`
	Tray     TrayConfig        `toml:"tray"`
	History  HistoryConfig     `toml:"history"`
}

type PointerConfig struct {
	PollIntervalMs int     `toml:"poll_interval_ms"`
	BandFraction   float64 `toml:"band_fraction"`
}

type ExecConfig struct {
	Blocking bool `toml:"blocking"`
	DelayMs  int  `toml:"delay_ms"`
}

type WebConfig struct {
	Enabled bool `toml:"enabled"`
	Port    int  `toml:"port"`
}

type TrayConfig struct {
	Enabled bool `toml:"enabled"`
}

type HistoryConfig struct {
	Enabled bool `toml:"enabled"`
}

// Default configuration
func defaultConfig() *Config {
	return &Config{
		Pointer: PointerConfig{
			PollIntervalMs: 10,
			BandFraction:   0.25,
		},
		Commands: map[string]string{},
		Exec: ExecConfig{
			Blocking: true,
			DelayMs:  0,
		},
		Web: WebConfig{
			Enabled: false,
			Port:    9876,
		},
		Tray: TrayConfig{
			Enabled: false,
		},
		History: HistoryConfig{
			Enabled: true,
		},
	}
}

// Dir returns the hotedge configuration directory, creating it if needed.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}

	dir := filepath.Join(base, "hotedge")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return dir, nil
}

// Path returns the path to the configuration file
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load loads the configuration from the TOML file
// If the file doesn't exist, it creates it with default values
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		return nil, err
	}

	// If config doesn't exist, create it with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := defaultConfig()
		if err := save(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	// Load existing config
	cfg := defaultConfig()
	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration back to the TOML file.
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	return save(configPath, c)
}

// save writes the configuration to the TOML file
func save(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}
