package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const configFile = "tabla/config.json"

// FileConfig is the on-disk config file shape, looked up via the XDG
// config search path (typically ~/.config/tabla/config.json).
type FileConfig struct {
	ServerURL         string `json:"server_url,omitempty"`
	DefaultVariant    string `json:"default_variant,omitempty"`
	DefaultDifficulty string `json:"default_difficulty,omitempty"`
}

// Config holds CLI configuration
type Config struct {
	ServerURL         string
	Output            string
	Verbose           bool
	DefaultVariant    string
	DefaultDifficulty string
}

// DefaultConfig returns a Config seeded from the environment. ServerURL is
// left empty here so the config file can fill it; the root command falls
// back to localhost after loading.
func DefaultConfig() *Config {
	return &Config{
		ServerURL: os.Getenv("TABLA_SERVER"),
		Output:    getEnvOrDefault("TABLA_OUTPUT", "text"),
	}
}

// LoadFile overlays values from the XDG config file. Flags and environment
// variables win, so only unset fields are filled in. A missing file is fine.
func (c *Config) LoadFile() error {
	path, err := xdg.SearchConfigFile(configFile)
	if err != nil {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fc FileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if c.ServerURL == "" {
		c.ServerURL = fc.ServerURL
	}
	if c.DefaultVariant == "" {
		c.DefaultVariant = fc.DefaultVariant
	}
	if c.DefaultDifficulty == "" {
		c.DefaultDifficulty = fc.DefaultDifficulty
	}
	return nil
}

// SaveFile writes the current settings to the XDG config file, creating
// the directory if needed.
func (c *Config) SaveFile() (string, error) {
	path, err := xdg.ConfigFile(configFile)
	if err != nil {
		return "", err
	}

	fc := FileConfig{
		ServerURL:         c.ServerURL,
		DefaultVariant:    c.DefaultVariant,
		DefaultDifficulty: c.DefaultDifficulty,
	}
	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", err
	}
	return path, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
