package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultSettingsYAML []byte

// FileSettings is the on-disk settings file.
type FileSettings struct {
	Window struct {
		Scale float64 `yaml:"scale"`
	} `yaml:"window"`
	TickRate  int    `yaml:"tick_rate"`
	ImagesDir string `yaml:"images_dir"`
	Debug     struct {
		SkipMenu        bool `yaml:"skip_menu"`
		ShowTargets     bool `yaml:"show_targets"`
		ShowLeads       bool `yaml:"show_leads"`
		ShowPeers       bool `yaml:"show_peers"`
		ShowShootTarget bool `yaml:"show_shoot_target"`
		ShowBodies      bool `yaml:"show_bodies"`
	} `yaml:"debug"`
}

// LoadSettings loads the settings file.
// Search order: customPath -> ~/.substitute-soccer/config.yaml -> ./configs/config.yaml -> embedded default
func LoadSettings(customPath string) (FileSettings, error) {
	var s FileSettings

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return s, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return s.withDefaults(), nil
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &s); err == nil {
				return s.withDefaults(), nil
			}
		}
	}

	if data, err := os.ReadFile("configs/config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &s); err == nil {
			return s.withDefaults(), nil
		}
	}

	if err := yaml.Unmarshal(defaultSettingsYAML, &s); err != nil {
		return FileSettings{}.withDefaults(), nil
	}
	return s.withDefaults(), nil
}

func (s FileSettings) withDefaults() FileSettings {
	if s.Window.Scale <= 0 {
		s.Window.Scale = 1
	}
	if s.TickRate <= 0 {
		s.TickRate = 60
	}
	return s
}

// Apply copies the settings into the global configuration.
func (s FileSettings) Apply() {
	C.Scale = s.Window.Scale
	Match.TickRate = s.TickRate
	Debug.SkipMenu = s.Debug.SkipMenu
	Debug.ShowTargets = s.Debug.ShowTargets
	Debug.ShowLeads = s.Debug.ShowLeads
	Debug.ShowPeers = s.Debug.ShowPeers
	Debug.ShowShootTarget = s.Debug.ShowShootTarget
	Debug.ShowBodies = s.Debug.ShowBodies
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".substitute-soccer", filename)
}
