// Package config loads and finalizes service configuration from TOML
// files, environment-specific overlays, and environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/draftforge/draftforge/pkg/blob"
	"github.com/draftforge/draftforge/pkg/vault"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvDraftForgeEnv             = "DRAFTFORGE_ENV"
	EnvDraftForgeShutdownTimeout = "DRAFTFORGE_SHUTDOWN_TIMEOUT"
	EnvDraftForgeVersion         = "DRAFTFORGE_VERSION"
)

var vaultEnv = &vault.Env{
	Root: "DRAFTFORGE_VAULT_ROOT",
}

var blobEnv = &blob.Env{
	Enabled:          "DRAFTFORGE_EXPORT_ENABLED",
	ContainerName:    "DRAFTFORGE_EXPORT_CONTAINER_NAME",
	ConnectionString: "DRAFTFORGE_EXPORT_CONNECTION_STRING",
	UploadWorkers:    "DRAFTFORGE_EXPORT_UPLOAD_WORKERS",
}

// Config is the root configuration for the DraftForge service.
type Config struct {
	Server          ServerConfig    `toml:"server"`
	Vault           vault.Config    `toml:"vault"`
	Export          blob.Config     `toml:"export"`
	Generator       GeneratorConfig `toml:"generator"`
	API             APIConfig       `toml:"api"`
	ShutdownTimeout string          `toml:"shutdown_timeout"`
	Version         string          `toml:"version"`
}

// Env returns the DRAFTFORGE_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvDraftForgeEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Vault.Merge(&overlay.Vault)
	c.Export.Merge(&overlay.Export)
	c.Generator.Merge(&overlay.Generator)
	c.API.Merge(&overlay.API)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Vault.Finalize(vaultEnv); err != nil {
		return fmt.Errorf("vault: %w", err)
	}
	if err := c.Export.Finalize(blobEnv); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := c.Generator.Finalize(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvDraftForgeShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvDraftForgeVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvDraftForgeEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
