package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/ThomasCrouzet/kompose/internal/lint"
	"github.com/ThomasCrouzet/kompose/internal/util"
	"github.com/ThomasCrouzet/kompose/internal/workspace"
)

const (
	// FileName is the config file name without extension.
	FileName = "kompose"
	// EnvPrefix prefixes environment overrides, e.g. KOMPOSE_HOST.
	EnvPrefix = "KOMPOSE"

	DefaultWorkspace = "~/workspace/homelab"
	DefaultHost      = "nas"
	DefaultNetwork   = "reverse-proxy"
	DefaultLogTail   = 100
	DefaultLogLevel  = "warn"
)

type Config struct {
	Workspace   string           `mapstructure:"workspace"`
	Host        string           `mapstructure:"host"`
	ComposeFile string           `mapstructure:"compose_file"`
	Network     string           `mapstructure:"network"`
	LogLevel    string           `mapstructure:"log_level"`
	NoColor     bool             `mapstructure:"no_color"`
	Logs        Logs             `mapstructure:"logs"`
	Lint        lint.Conventions `mapstructure:"lint"`
}

type Logs struct {
	Tail int `mapstructure:"tail"`
}

// SetDefaults registers every top-level key so environment overrides are
// picked up by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("workspace", DefaultWorkspace)
	v.SetDefault("host", DefaultHost)
	v.SetDefault("compose_file", workspace.DefaultComposeFile)
	v.SetDefault("network", DefaultNetwork)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("no_color", false)
	v.SetDefault("logs.tail", DefaultLogTail)
}

// Setup points v at the config file and environment. An empty file falls
// back to kompose.yml in the working directory or the user config dir.
func Setup(v *viper.Viper, file string) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, FileName))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
}

// Load decodes the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom decodes v into a Config. Lint conventions left empty are filled
// in by the lint engine.
func LoadFrom(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Workspace:   DefaultWorkspace,
		Host:        DefaultHost,
		ComposeFile: workspace.DefaultComposeFile,
		Network:     DefaultNetwork,
		LogLevel:    DefaultLogLevel,
	}
	cfg.Logs.Tail = DefaultLogTail

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	cfg.Workspace = util.ExpandPath(cfg.Workspace)
	if cfg.Logs.Tail <= 0 {
		cfg.Logs.Tail = DefaultLogTail
	}
	return cfg, nil
}

// NewWorkspace returns the workspace described by the config.
func (c *Config) NewWorkspace() *workspace.Workspace {
	return workspace.New(c.Workspace, c.Host, c.ComposeFile)
}
