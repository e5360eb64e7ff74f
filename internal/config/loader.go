package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-local config location.
const LocalPath = "configs/gensprites.yaml"

// Load loads the export configuration.
// Search order: customPath -> ./configs/gensprites.yaml -> embedded default.
// Files are layered over the embedded defaults, so they may set only the
// keys they change.
func Load(customPath string) (ExportConfig, error) {
	cfg, err := embedded()
	if err != nil {
		return cfg, err
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try local configs directory
	if data, err := os.ReadFile(LocalPath); err == nil {
		local := cfg
		if err := yaml.Unmarshal(data, &local); err == nil {
			return local, local.Validate()
		}
	}

	return cfg, nil
}

func embedded() (ExportConfig, error) {
	var cfg ExportConfig
	if err := yaml.Unmarshal(defaultExportYAML, &cfg); err != nil {
		return DefaultExportConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}
