// Package config loads varpad settings: embedded defaults, an optional user
// file merged over them, and VARPAD_* environment overrides.
package config

import (
	_ "embed"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gitlab.com/tozd/go/errors"

	"github.com/iw2rmb/varpad/catalog"
)

//go:embed data/default_config.toml
var defaultConfigTOML string

const envPrefix = "VARPAD"

var ErrNoVariables = errors.Base("no variables configured")

type Config struct {
	Text      string          `mapstructure:"text"`
	Editor    Editor          `mapstructure:"editor"`
	Variables catalog.Catalog `mapstructure:"variables"`
}

type Editor struct {
	Heading    string `mapstructure:"heading"`
	TextHeight int    `mapstructure:"text_height"`
}

// Manager handles configuration loading.
type Manager struct {
	v   *viper.Viper
	fs  afero.Fs
	cfg *Config
}

// NewManager returns a Manager reading files from fs. A nil fs means the OS
// filesystem.
func NewManager(fs afero.Fs) *Manager {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	v := viper.New()
	v.SetFs(fs)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Manager{v: v, fs: fs, cfg: &Config{}}
}

// Load merges the file at path (TOML, YAML or JSON, by extension) over the
// embedded defaults. An empty path loads only defaults and environment.
func (m *Manager) Load(path string) error {
	defaults := viper.New()
	defaults.SetConfigType("toml")
	if err := defaults.ReadConfig(strings.NewReader(defaultConfigTOML)); err != nil {
		return errors.Errorf("failed to load embedded defaults: %w", err)
	}
	if err := m.v.MergeConfigMap(defaults.AllSettings()); err != nil {
		return errors.Errorf("failed to apply embedded defaults: %w", err)
	}

	if path != "" {
		ok, err := afero.Exists(m.fs, path)
		if err != nil {
			return errors.Errorf("config %s: %w", path, err)
		}
		if !ok {
			return errors.Errorf("config %s: file does not exist", path)
		}
		m.v.SetConfigFile(path)
		if err := m.v.MergeInConfig(); err != nil {
			return errors.Errorf("config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := m.v.Unmarshal(cfg); err != nil {
		return errors.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	m.cfg = cfg
	return nil
}

// Config returns the last successfully loaded configuration.
func (m *Manager) Config() *Config { return m.cfg }

// ConfigFileUsed returns the merged user file, or "" for defaults only.
func (m *Manager) ConfigFileUsed() string { return m.v.ConfigFileUsed() }

// Validate checks the catalog and editor settings.
func (c *Config) Validate() error {
	if len(c.Variables) == 0 {
		return errors.WithStack(ErrNoVariables)
	}
	if err := c.Variables.Validate(); err != nil {
		return errors.Errorf("invalid variables: %w", err)
	}
	if c.Editor.TextHeight < 0 {
		return errors.Errorf("editor.text_height must not be negative, got %d", c.Editor.TextHeight)
	}
	return nil
}
