package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all user-tunable settings. Everything has a default so
// the app runs with no config file at all.
type Config struct {
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Lists     ListsConfig     `mapstructure:"lists"`
	Audio     AudioConfig     `mapstructure:"audio"`
	Log       LogConfig       `mapstructure:"log"`
}

type TelemetryConfig struct {
	// Endpoint is the analytics sink. The placeholder default disables
	// network sends; events are then logged locally only.
	Endpoint    string `mapstructure:"endpoint"`
	IPLookupURL string `mapstructure:"ip_lookup_url"`
	Referrer    string `mapstructure:"referrer"`
}

type ListsConfig struct {
	// Default names the fallback word list for unknown selections.
	Default string `mapstructure:"default"`
	// Dir holds extra user word lists as JSON documents.
	Dir string `mapstructure:"dir"`
}

type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load reads the config file at path, or the default location when
// path is empty. A missing file is fine; defaults apply. Every key is
// overridable through VOCABDRILL_-prefixed environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()

	configDir, err := defaultConfigDir()
	if err != nil {
		return nil, err
	}

	v.SetDefault("telemetry.endpoint", "https://YOUR_ANALYTICS_ENDPOINT.example/exec")
	v.SetDefault("telemetry.ip_lookup_url", "https://api.ipify.org?format=json")
	v.SetDefault("telemetry.referrer", "")
	v.SetDefault("lists.default", "isee-core")
	v.SetDefault("lists.dir", filepath.Join(configDir, "lists"))
	v.SetDefault("audio.enabled", true)
	v.SetDefault("log.file", filepath.Join(configDir, "vocabdrill.log"))
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("VOCABDRILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// defaultConfigDir resolves $XDG_CONFIG_HOME/vocabdrill with the usual
// ~/.config fallback.
func defaultConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "vocabdrill"), nil
}
