package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/vitestarter/vitestarter/pkg/errors"
	"github.com/vitestarter/vitestarter/pkg/logging"
)

const (
	// AppName names the user config directory
	AppName = "vitestarter"
	// ProjectFile is the per-project config file name
	ProjectFile = ".vitestarter.toml"
	// EnvPrefix prefixes every environment override
	EnvPrefix = "VITESTARTER_"
)

// Config is the resolved configuration
type Config struct {
	Manifest ManifestConfig `koanf:"manifest" toml:"manifest"`
	Install  InstallConfig  `koanf:"install" toml:"install"`
	Output   OutputConfig   `koanf:"output" toml:"output"`
}

// ManifestConfig locates the project manifest
type ManifestConfig struct {
	File string `koanf:"file" toml:"file"`
}

// InstallConfig describes the package manager invocation
type InstallConfig struct {
	Enabled bool     `koanf:"enabled" toml:"enabled"`
	Command string   `koanf:"command" toml:"command"`
	Args    []string `koanf:"args" toml:"args"`
}

// OutputConfig controls terminal rendering
type OutputConfig struct {
	Format string `koanf:"format" toml:"format"`
}

// Load resolves the configuration for a project directory
func Load(projectDir string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	for _, path := range []string{UserConfigPath(), filepath.Join(projectDir, ProjectFile)} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	envK := koanf.New(".")
	err := envK.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}
	if err := k.Load(confmap.Provider(envK.All(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to merge env vars")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("manifest", cfg.Manifest.File).
		Bool("install", cfg.Install.Enabled).
		Str("command", cfg.Install.Command).
		Msg("Configuration loaded")

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Manifest.File == "" {
		return errors.New(errors.ErrConfigLoad, "manifest.file must not be empty")
	}
	if c.Install.Enabled && c.Install.Command == "" {
		return errors.New(errors.ErrConfigLoad, "install.command must not be empty")
	}
	return nil
}

// ManifestPath returns the manifest location for a project directory
func (c *Config) ManifestPath(projectDir string) string {
	if filepath.IsAbs(c.Manifest.File) {
		return c.Manifest.File
	}
	return filepath.Join(projectDir, c.Manifest.File)
}

// UserConfigPath returns the per-user config file location.
// XDG_CONFIG_HOME wins when set, otherwise the xdg default is used.
func UserConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, AppName, "config.toml")
}

// TOML renders the resolved configuration as a config file
func (c *Config) TOML() ([]byte, error) {
	data, err := gotoml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return data, nil
}

// String renders the config for debug output
func (c *Config) String() string {
	return fmt.Sprintf("manifest=%s install=%t command=%s %s format=%s",
		c.Manifest.File, c.Install.Enabled, c.Install.Command,
		strings.Join(c.Install.Args, " "), c.Output.Format)
}
