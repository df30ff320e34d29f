// Package config loads, saves and defaults the tool configuration.
package config

import (
	"os"
	"path"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/inkmath/inkmath/ink"
)

// Environment variables overriding the file configuration.
const (
	EnvModel     = "INKMATH_MODEL"
	EnvRemoteURL = "INKMATH_REMOTE_URL"
	EnvRemoteKey = "INKMATH_REMOTE_APPLICATIONKEY"
	EnvRemoteMAC = "INKMATH_REMOTE_HMAC"
)

// Config is the on-disk configuration.
type Config struct {
	ModelPath   string `yaml:"modelPath,omitempty"`
	DatasetPath string `yaml:"datasetPath,omitempty"`
	GridSize    int    `yaml:"gridSize"`

	// Remote classifier endpoint, used instead of the local model when
	// set.
	RemoteURL  string `yaml:"remoteUrl,omitempty"`
	RemoteKey  string `yaml:"remoteKey,omitempty"`
	RemoteHMAC string `yaml:"remoteHmac,omitempty"`

	// Render options for PNG and PDF output.
	PenWidth     float64 `yaml:"penWidth"`
	RenderMargin int     `yaml:"renderMargin"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		GridSize:     ink.GridSize,
		PenWidth:     2,
		RenderMargin: 20,
	}
}

// Dir returns the configuration directory, created if needed. Falls back
// to a dot directory in the home directory when the user config dir is
// unavailable.
func Dir() (string, error) {
	confdir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		folder := path.Join(home, ".inkmath")
		if err := os.MkdirAll(folder, 0700); err != nil {
			return "", err
		}
		return folder, nil
	}
	folder := path.Join(confdir, "inkmath")
	if err := os.MkdirAll(folder, 0700); err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		folder := path.Join(home, ".inkmath")
		if err := os.MkdirAll(folder, 0700); err != nil {
			return "", err
		}
		return folder, nil
	}
	return folder, nil
}

// Path returns the configuration file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return path.Join(dir, "config.yml"), nil
}

// Load reads the configuration file, fills unset fields with defaults and
// applies environment overrides. A missing file yields the defaults.
func Load() (Config, error) {
	p, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(p)
}

// LoadFrom reads a configuration from an explicit path.
func LoadFrom(p string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(p); err != nil {
		applyEnv(&cfg)
		return cfg, nil
	}

	b, err := os.ReadFile(p)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrap(err, "parse config")
	}

	if cfg.GridSize <= 0 {
		cfg.GridSize = ink.GridSize
	}
	if cfg.PenWidth <= 0 {
		cfg.PenWidth = Default().PenWidth
	}
	if cfg.RenderMargin <= 0 {
		cfg.RenderMargin = Default().RenderMargin
	}

	applyEnv(&cfg)
	return cfg, nil
}

// Save writes the configuration to the default location.
func Save(cfg Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	return SaveTo(p, cfg)
}

// SaveTo writes the configuration to an explicit path.
func SaveTo(p string, cfg Config) error {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	if err := os.WriteFile(p, b, 0644); err != nil {
		return errors.Wrap(err, "write config")
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvModel); v != "" {
		cfg.ModelPath = v
	}
	if v := os.Getenv(EnvRemoteURL); v != "" {
		cfg.RemoteURL = v
	}
	if v := os.Getenv(EnvRemoteKey); v != "" {
		cfg.RemoteKey = v
	}
	if v := os.Getenv(EnvRemoteMAC); v != "" {
		cfg.RemoteHMAC = v
	}
}

// ModelFile resolves the model path, defaulting to model.gz in the
// configuration directory.
func (c Config) ModelFile() (string, error) {
	if c.ModelPath != "" {
		return c.ModelPath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return path.Join(dir, "model.gz"), nil
}

// DatasetFile resolves the dataset path, defaulting to dataset.gz in the
// configuration directory.
func (c Config) DatasetFile() (string, error) {
	if c.DatasetPath != "" {
		return c.DatasetPath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return path.Join(dir, "dataset.gz"), nil
}
