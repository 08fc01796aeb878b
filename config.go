package vibeeq

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

const (
	DefaultDaemon         = "easyeffects"
	DefaultPackageManager = "pacman"
	DefaultPluginPackage  = "lsp-plugins"

	defaultPresetDir       = "~/.config/easyeffects/output"
	defaultSharedPresetDir = "~/.local/share/easyeffects/output"
	configRelPath          = ".config/vibeeq/config.yaml"
)

// Config holds user settings, read from a YAML file
type Config struct {
	PresetDir        string   `yaml:"preset_dir"`
	SharedPresetDirs []string `yaml:"shared_preset_dirs"`
	Daemon           string   `yaml:"daemon"`
	PackageManager   string   `yaml:"package_manager"`
	PluginPackage    string   `yaml:"plugin_package"`
	ShowWindow       *bool    `yaml:"show_window,omitempty"`
}

// DefaultConfig returns the built-in settings
func DefaultConfig() *Config {
	show := true
	return &Config{
		PresetDir:        defaultPresetDir,
		SharedPresetDirs: []string{defaultSharedPresetDir},
		Daemon:           DefaultDaemon,
		PackageManager:   DefaultPackageManager,
		PluginPackage:    DefaultPluginPackage,
		ShowWindow:       &show,
	}
}

// DefaultConfigPath returns <home>/.config/vibeeq/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configRelPath), nil
}

// LoadConfig reads the config file at path. An empty path means the default
// location; a missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path: %w", err)
		}
		path = p
	}
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

func (c *Config) fillDefaults() {
	d := DefaultConfig()
	if c.PresetDir == "" {
		c.PresetDir = d.PresetDir
	}
	if c.Daemon == "" {
		c.Daemon = d.Daemon
	}
	if c.PackageManager == "" {
		c.PackageManager = d.PackageManager
	}
	if c.PluginPackage == "" {
		c.PluginPackage = d.PluginPackage
	}
	if c.ShowWindow == nil {
		c.ShowWindow = d.ShowWindow
	}
}

// ShouldShowWindow reports whether the daemon window is raised after a load
func (c *Config) ShouldShowWindow() bool {
	return c.ShowWindow == nil || *c.ShowWindow
}

// Store builds the preset store for the configured directories
func (c *Config) Store() (*Store, error) {
	dir, err := expandHome(c.PresetDir)
	if err != nil {
		return nil, err
	}
	shared := make([]string, 0, len(c.SharedPresetDirs))
	for _, d := range c.SharedPresetDirs {
		p, err := expandHome(d)
		if err != nil {
			return nil, err
		}
		shared = append(shared, p)
	}
	return NewStore(dir, shared...), nil
}

func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}
