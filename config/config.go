/*
Package config manages the TOML configuration of the pyphen command.

	[hyphenation]
	dictionaries = "/usr/share/hyphen"
	lang = "en_US"
	left = 2
	right = 2
	hyphen = "-"
	cache_words = 0
	backend = "map"

	[wrap]
	width = 72

	[log]
	level = "warn"

Keys missing from the file keep their default values.
*/
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/npillmayer/pyphen"
)

// Config holds the entire config structure
type Config struct {
	Hyphenation HyphenationConfig `toml:"hyphenation"`
	Wrap        WrapConfig        `toml:"wrap"`
	Log         LogConfig         `toml:"log"`
}

// HyphenationConfig holds dictionary and hyphenator options.
type HyphenationConfig struct {
	Dictionaries string `toml:"dictionaries"` // directory to scan for dictionary files
	Lang         string `toml:"lang"`
	Left         int    `toml:"left"`
	Right        int    `toml:"right"`
	Hyphen       string `toml:"hyphen"`
	CacheWords   int    `toml:"cache_words"` // 0 means unbounded
	Backend      string `toml:"backend"`
}

// WrapConfig holds text filling options.
type WrapConfig struct {
	Width int `toml:"width"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Hyphenation: HyphenationConfig{
			Dictionaries: "dictionaries",
			Lang:         "en_US",
			Left:         pyphen.DefaultLeft,
			Right:        pyphen.DefaultRight,
			Hyphen:       "-",
			Backend:      pyphen.BackendMap.String(),
		},
		Wrap: WrapConfig{
			Width: 72,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// LoadConfig loads from a TOML file, starting from the defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	md, err := toml.DecodeFile(configPath, config)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", configPath, err)
	}
	for _, key := range md.Undecoded() {
		log.Warnf("Unknown config key %q in %s", key.String(), configPath)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", configPath, err)
	}
	return config, nil
}

// LoadConfigWithPriority loads the config file at configPath if it exists,
// and falls back to the builtin defaults otherwise.
func LoadConfigWithPriority(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		log.Debugf("No config file at %s, using builtin defaults", configPath)
		return DefaultConfig(), nil
	}
	return LoadConfig(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) (err error) {
	f, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return toml.NewEncoder(f).Encode(config)
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	h := c.Hyphenation
	if h.Left < 0 || h.Right < 0 {
		return fmt.Errorf("left and right must not be negative, have %d and %d", h.Left, h.Right)
	}
	if h.CacheWords < 0 {
		return fmt.Errorf("cache_words must not be negative, have %d", h.CacheWords)
	}
	if _, err := pyphen.ParseBackend(h.Backend); err != nil {
		return err
	}
	if c.Wrap.Width < 0 {
		return fmt.Errorf("wrap width must not be negative, have %d", c.Wrap.Width)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// Options returns the dictionary compilation options for this config.
func (c *Config) Options() []pyphen.Option {
	backend, _ := pyphen.ParseBackend(c.Hyphenation.Backend)
	opts := []pyphen.Option{pyphen.WithBackend(backend)}
	if c.Hyphenation.CacheWords > 0 {
		opts = append(opts, pyphen.WithCacheSize(c.Hyphenation.CacheWords))
	}
	return opts
}
