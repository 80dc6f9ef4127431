package config

import (
	_ "embed"
)

//go:embed defaults/sunskim.yaml
var defaultSunskimYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultSunskimYAML))
	copy(out, defaultSunskimYAML)
	return out
}

// DefaultSunskimConfig returns the default Sun Skimmer configuration.
// It mirrors defaults/sunskim.yaml.
func DefaultSunskimConfig() SunskimConfig {
	return SunskimConfig{
		Sun: SunConfig{Radius: 500},
		Player: PlayerConfig{
			StartRadius:          50,
			MinRadius:            0.5,
			MaxRadius:            800,
			AngularSpeed:         0.5,
			TightOrbitRadius:     1.0,
			TightOrbitMultiplier: 1.5,
			SteerAngle:           0.35,
			HitRadius:            10,
		},
		Control: ControlConfig{
			Engage:            EngageInward,
			AccelScale:        2.0,
			RadiusChangeSpeed: 150,
		},
		Resources: ResourcesConfig{
			Mode: ModeShield,
			Power: PowerCurve{
				Slope:     -0.05,
				Intercept: 10,
				RateMin:   -3,
				RateMax:   10,
			},
			Reserve: ReserveCurve{
				Knee:            55,
				LinearSlope:     -0.3,
				LinearIntercept: 23,
				HotZoneK:        2,
				HotZoneScale:    0.005,
				RateLimit:       10,
			},
			Shield: ReserveLimits{Start: 100, Lethal: 0.1, Alarm: 25},
			Heat:   ReserveLimits{Start: 0, Lethal: 99.9, Alarm: 75},
		},
		Collision: CollisionConfig{
			PowerReset:  true,
			PowerCost:   25,
			ReserveCost: 30,
		},
		Obstacles: ObstaclesConfig{
			Enabled:     true,
			SpawnMin:    0.4,
			SpawnMax:    0.6,
			CountMin:    1,
			CountMax:    3,
			Jitter:      0.15,
			BandMin:     20,
			BandMaxFrac: 0.35,
			HitRadius:   7,
		},
		Barriers: BarriersConfig{
			Enabled:     true,
			FirstOffset: 2,
			LastOffset:  15,
			Spacing:     0.3,
			Margin:      80,
			HitRadius:   58,
		},
		Nova: NovaConfig{
			Enabled: true,
			Phases: PhaseTable{
				Idle:       PhaseConfig{Duration: 30, Control: ControlPlayer, Spawn: true, Score: true, OrbitMultiplier: 1},
				BuildingUp: PhaseConfig{Duration: 6, Control: ControlOutward, Spawn: true, OrbitMultiplier: 1},
				During:     PhaseConfig{Duration: 10, Control: ControlPlayer, OrbitMultiplier: 2},
				After:      PhaseConfig{Duration: 4, Control: ControlInward, OrbitMultiplier: 1},
			},
		},
		Score: ScoreConfig{
			Rate:         10,
			MultiplierAt: 99,
		},
		Palette: PaletteConfig{
			Background:     "#0b0b1e",
			Player:         "#ffffff",
			SunOuter:       "#ff8c1a",
			SunInner:       "#ffd27a",
			WarnBackground: "#ffffff",
			WarnPlayer:     "#ff3030",
			WarnSun:        "#ffffff",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionTime,
				MaxAt: 300,
			},
			Scaling: ScalingConfig{
				SpawnReduction: 0.4,
				ExtraObstacles: 2,
			},
		},
	}
}
