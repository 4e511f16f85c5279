package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "shooter.yaml"

// Load loads the shooter configuration.
// Search order: customPath -> ~/.shooter/configs/shooter.yaml ->
// ./configs/shooter.yaml -> embedded default.
// Files are decoded over the defaults, so partial files are fine.
func Load(customPath string) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()

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

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultShooterConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultShooterYAML, &cfg); err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shooter", "configs", filename)
}

// Overrides are command-line values that take precedence over the file.
// Zero values leave the file's setting alone.
type Overrides struct {
	TickRate int
	Sheet    string
}

// Apply copies non-zero overrides into the config.
func (o Overrides) Apply(cfg *ShooterConfig) {
	if o.TickRate > 0 {
		cfg.Timing.TickRate = o.TickRate
	}
	if o.Sheet != "" {
		cfg.Assets.Sheet = o.Sheet
	}
}
