package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in every search location.
const ConfigFile = "sunskim.yaml"

// LoadSunskim loads the Sun Skimmer configuration.
// Search order: customPath -> ~/.sunskim/configs/sunskim.yaml -> ./configs/sunskim.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides the keys it sets.
func LoadSunskim(customPath string) (SunskimConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SunskimConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSunskim(data)
		if err != nil {
			return SunskimConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseSunskim(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := parseSunskim(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseSunskim(defaultSunskimYAML)
	if err != nil {
		return DefaultSunskimConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseSunskim decodes YAML over the hardcoded defaults and validates the result.
func parseSunskim(data []byte) (SunskimConfig, error) {
	cfg := DefaultSunskimConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sunskim", "configs", filename)
}

// ApplySunskimPreset modifies the config based on a difficulty preset.
func ApplySunskimPreset(cfg *SunskimConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Validate rejects tables the simulation cannot run.
func (c *SunskimConfig) Validate() error {
	p := c.Player
	switch {
	case c.Sun.Radius < 0:
		return fmt.Errorf("sun.radius must be >= 0, got %v", c.Sun.Radius)
	case p.MinRadius <= 0:
		return fmt.Errorf("player.min_radius must be > 0, got %v", p.MinRadius)
	case p.MaxRadius <= p.MinRadius:
		return fmt.Errorf("player.max_radius (%v) must exceed min_radius (%v)", p.MaxRadius, p.MinRadius)
	case p.AngularSpeed <= 0:
		return fmt.Errorf("player.angular_speed must be > 0, got %v", p.AngularSpeed)
	}

	switch c.Control.Engage {
	case EngageInward, EngageOutward:
	default:
		return fmt.Errorf("control.engage: unknown direction %q", c.Control.Engage)
	}

	switch c.Resources.Mode {
	case ModeShield, ModeHeat:
	default:
		return fmt.Errorf("resources.mode: unknown mode %q", c.Resources.Mode)
	}
	if c.Resources.Power.RateMin > c.Resources.Power.RateMax {
		return fmt.Errorf("resources.power: rate_min (%v) > rate_max (%v)",
			c.Resources.Power.RateMin, c.Resources.Power.RateMax)
	}
	if c.Resources.Reserve.HotZoneScale <= 0 {
		return fmt.Errorf("resources.reserve.hot_zone_scale must be > 0, got %v", c.Resources.Reserve.HotZoneScale)
	}

	o := c.Obstacles
	switch {
	case o.SpawnMin <= 0:
		return fmt.Errorf("obstacles.spawn_min must be > 0, got %v", o.SpawnMin)
	case o.SpawnMin > o.SpawnMax:
		return fmt.Errorf("obstacles: spawn_min (%v) > spawn_max (%v)", o.SpawnMin, o.SpawnMax)
	case o.CountMin < 1:
		return fmt.Errorf("obstacles.count_min must be >= 1, got %d", o.CountMin)
	case o.CountMin > o.CountMax:
		return fmt.Errorf("obstacles: count_min (%d) > count_max (%d)", o.CountMin, o.CountMax)
	case o.DriftMin > o.DriftMax:
		return fmt.Errorf("obstacles: drift_min (%v) > drift_max (%v)", o.DriftMin, o.DriftMax)
	}

	if c.Barriers.FirstOffset > c.Barriers.LastOffset {
		return fmt.Errorf("barriers: first_offset (%d) > last_offset (%d)",
			c.Barriers.FirstOffset, c.Barriers.LastOffset)
	}

	names := [...]string{"idle", "building_up", "during", "after"}
	for i, name := range names {
		ph := c.Nova.Phases.Phase(i)
		if ph.Duration <= 0 {
			return fmt.Errorf("nova.phases.%s.duration must be > 0, got %v", name, ph.Duration)
		}
		switch ph.Control {
		case ControlPlayer, ControlOutward, ControlInward:
		default:
			return fmt.Errorf("nova.phases.%s.control: unknown control %q", name, ph.Control)
		}
		if ph.OrbitMultiplier <= 0 {
			return fmt.Errorf("nova.phases.%s.orbit_multiplier must be > 0, got %v", name, ph.OrbitMultiplier)
		}
	}

	switch c.Difficulty.Progression.Type {
	case ProgressionScore, ProgressionTime, ProgressionNone:
	default:
		return fmt.Errorf("difficulty.progression.type: unknown type %q", c.Difficulty.Progression.Type)
	}
	return nil
}
