package config

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/life.yaml
var defaultYAML []byte

// LocalPath is the project-relative config location checked after the user
// config directory.
const LocalPath = "configs/life.yaml"

// Load reads the run configuration.
// Search order: customPath -> ~/.lifebuf/config.yaml -> ./configs/life.yaml -> embedded default.
// Only an explicit customPath turns read or parse failures into errors.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", customPath)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, errors.Wrapf(err, "parse config %s", customPath)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(LocalPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultConfig so omitted fields keep their
// defaults.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lifebuf", filename)
}
