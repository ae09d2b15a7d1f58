package config

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/MrWheatley/hud-manager/errors"
	"github.com/MrWheatley/hud-manager/pkg/paths"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the hud-manager configuration file.
const ConfigFileName = "hudmanager.yml"

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// Config holds the hud-manager configuration loaded from hudmanager.yml.
// Tool-specific sections (e.g. "logging") are captured in Extensions and
// decoded on demand with UnmarshalExtension.
type Config struct {
	// CustomDir overrides executable-derived content root resolution.
	CustomDir string `yaml:"custom_dir"`

	// Theme selects the TUI color theme ("kanagawa", "gruvbox", "terminal").
	Theme string `yaml:"theme"`

	// Extensions captures any top-level sections not declared above.
	Extensions map[string]interface{} `yaml:",inline"`
}

// Load reads and parses a hud-manager configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes parses configuration data, expanding ${VAR} references
// against the environment first.
func LoadFromBytes(data []byte) (*Config, error) {
	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config file")
	}

	return &cfg, nil
}

// LoadDefault loads the configuration from the XDG config directory.
// A missing file is not an error; defaults apply.
func LoadDefault() (*Config, error) {
	dir := paths.ConfigDir()
	if dir == "" {
		return &Config{}, nil
	}
	return Load(filepath.Join(dir, ConfigFileName))
}

// UnmarshalExtension decodes a captured extension section into out.
// A missing section leaves out untouched.
func (c *Config) UnmarshalExtension(key string, out interface{}) error {
	raw, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	data, err := yaml.Marshal(raw)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to re-encode extension").
			WithDetail("extension", key)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to decode extension").
			WithDetail("extension", key)
	}

	return nil
}

// expandEnvVars replaces ${VAR} references with their environment values.
// Unset variables expand to the empty string.
func expandEnvVars(s string) string {
	return envVarRegex.ReplaceAllStringFunc(s, func(match string) string {
		name := envVarRegex.FindStringSubmatch(match)[1]
		return os.Getenv(name)
	})
}
