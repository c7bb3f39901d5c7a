// Package config loads raindrop settings from flags, environment and an
// optional YAML or JSON file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the config file base name searched for in the current
// directory and then the home directory.
const FileName = ".raindrop"

// EnvPrefix prefixes environment overrides, e.g. RAINDROP_ENDPOINT.
const EnvPrefix = "RAINDROP"

// Config holds the resolved settings.
type Config struct {
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	Locale   string `yaml:"locale" mapstructure:"locale"`
	Hint     bool   `yaml:"hint" mapstructure:"hint"`
	Debug    bool   `yaml:"debug" mapstructure:"debug"`
	LogFile  string `yaml:"log-file" mapstructure:"log-file"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Endpoint: "http://localhost:5001/api/translate",
		Locale:   "en",
		Hint:     true,
		LogFile:  filepath.Join(os.TempDir(), "raindrop.log"),
	}
}

// SetDefaults registers Default() with viper.
func SetDefaults() {
	d := Default()
	viper.SetDefault("endpoint", d.Endpoint)
	viper.SetDefault("locale", d.Locale)
	viper.SetDefault("hint", d.Hint)
	viper.SetDefault("debug", d.Debug)
	viper.SetDefault("log-file", d.LogFile)
}

// Init sets defaults and environment overrides, then loads configFile, or
// the first .raindrop.{yml,yaml,json} found in the working directory or
// home directory. A missing file is not an error.
func Init(configFile string) error {
	SetDefaults()
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if configFile != "" {
		return LoadFile(configFile)
	}

	path, ok := findConfig()
	if !ok {
		return nil
	}
	return LoadFile(path)
}

func findConfig() (string, bool) {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	for _, dir := range dirs {
		for _, ext := range []string{".yml", ".yaml", ".json"} {
			p := filepath.Join(dir, FileName+ext)
			if st, err := os.Stat(p); err == nil && !st.IsDir() {
				return p, true
			}
		}
	}
	return "", false
}

// LoadFile reads path into viper after expanding ${env://...} references.
func LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	content := string(raw)
	if HasEnvRefs(content) {
		content, err = ExpandEnv(content)
		if err != nil {
			return fmt.Errorf("error reading config file '%s': %w", path, err)
		}
	}

	configType := "yaml"
	if strings.HasSuffix(path, ".json") {
		configType = "json"
	}
	viper.SetConfigType(configType)
	if err := viper.ReadConfig(strings.NewReader(content)); err != nil {
		return fmt.Errorf("error parsing config file '%s': %w", path, err)
	}
	return nil
}

// Load returns the settings currently resolved by viper.
func Load() (Config, error) {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if c.Endpoint == "" {
		return Config{}, errors.New("endpoint must not be empty")
	}
	return c, nil
}

// ErrExists is returned by WriteDefault when the target already exists.
var ErrExists = errors.New("config file already exists")

// WriteDefault writes the default settings as YAML to path. An existing file
// is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s", ErrExists, path)
	}

	out, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("encode default config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
