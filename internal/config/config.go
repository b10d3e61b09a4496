package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI   UIConfig            `mapstructure:"ui"`
	Keys map[string][]string `mapstructure:"keys"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DefaultTab   string `mapstructure:"default_tab"`
	DefaultModel string `mapstructure:"default_model"`
	DateFormat   string `mapstructure:"date_format"`
}

// Load reads configuration from file and env. Env var overrides use prefix AGENTMESH_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("ui.default_tab", "dashboard")
	v.SetDefault("ui.default_model", "sonnet-4")
	v.SetDefault("ui.date_format", "2006-01-02")
	v.SetDefault("keys", map[string][]string{})

	v.SetConfigType("toml")

	cfgPath := os.Getenv("AGENTMESH_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "agentmesh"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("AGENTMESH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the settings view for non-sensitive preferences.
func Save(cfg Config) error {
	path := os.Getenv("AGENTMESH_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "agentmesh", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.default_tab", cfg.UI.DefaultTab)
	v.Set("ui.default_model", cfg.UI.DefaultModel)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("keys", cfg.Keys)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
