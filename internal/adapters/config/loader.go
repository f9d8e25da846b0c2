// Package config provides the configuration loader for appinfo.
package config

import (
	"os"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"go.trai.ch/appinfo/internal/core/domain"
	"go.trai.ch/appinfo/internal/core/ports"
)

// DefaultFilename is the config file looked up in the working directory when
// no explicit path is given.
const DefaultFilename = "appinfo.yaml"

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "APPINFO_CONFIG"

// Backend names accepted in the config file.
const (
	BackendHost     = "host"
	BackendManifest = "manifest"
)

// Config represents the structure of the appinfo.yaml configuration file.
type Config struct {
	// Backend selects the metadata backend, "host" or "manifest".
	Backend string `yaml:"backend"`
	// Manifest configures the manifest backend.
	Manifest ManifestConfig `yaml:"manifest"`
	// Progress enables the progress telemetry recorder.
	Progress bool `yaml:"progress"`
}

// ManifestConfig configures where the manifest backend finds its document.
type ManifestConfig struct {
	// URL is the base location of a served manifest.
	URL string `yaml:"url"`
	// Path is a local manifest file path.
	Path string `yaml:"path"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{Backend: BackendHost}
}

// Loader reads the application configuration from disk.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader instance.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration from path. A missing file is not an error:
// the defaults are returned so the application works without any config.
func (l *Loader) Load(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		l.logger.Info("no config file found, using defaults")
		return Default(), nil
	}
	return cfg, nil
}

// Load reads a configuration file from the given path.
// Returns nil, nil when the file does not exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	if cfg.Backend == "" {
		cfg.Backend = BackendHost
	}
	switch cfg.Backend {
	case BackendHost, BackendManifest:
	default:
		return nil, zerr.With(domain.ErrUnknownBackend, "backend", cfg.Backend)
	}

	return &cfg, nil
}

// Path returns the config file location, honoring the APPINFO_CONFIG
// environment variable.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultFilename
}
