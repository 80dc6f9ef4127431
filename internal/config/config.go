// Package config provides YAML-based game configuration loading and
// difficulty management for Sun Skimmer.
package config

// Resource modes select what the second resource bar means.
const (
	ModeShield = "shield" // Falls near the sun; empty shield ends the run
	ModeHeat   = "heat"   // Rises near the sun; full heat ends the run
)

// Engage directions for the thrust control.
const (
	EngageInward  = "inward"
	EngageOutward = "outward"
)

// Per-phase control overrides.
const (
	ControlPlayer  = "player"
	ControlOutward = "outward"
	ControlInward  = "inward"
)

// SunskimConfig contains all tunables for one Sun Skimmer session.
type SunskimConfig struct {
	Sun        SunConfig        `yaml:"sun"`
	Player     PlayerConfig     `yaml:"player"`
	Control    ControlConfig    `yaml:"control"`
	Resources  ResourcesConfig  `yaml:"resources"`
	Collision  CollisionConfig  `yaml:"collision"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles"`
	Barriers   BarriersConfig   `yaml:"barriers"`
	Nova       NovaConfig       `yaml:"nova"`
	Score      ScoreConfig      `yaml:"score"`
	Palette    PaletteConfig    `yaml:"palette"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SunConfig defines the central body.
type SunConfig struct {
	Radius float64 `yaml:"radius"` // World units; fixed for the session
}

// PlayerConfig defines orbit geometry and motion.
type PlayerConfig struct {
	StartRadius          float64 `yaml:"start_radius"`           // Distance from the sun's edge at spawn
	MinRadius            float64 `yaml:"min_radius"`             // Radial floor clamp
	MaxRadius            float64 `yaml:"max_radius"`             // Radial ceiling clamp
	AngularSpeed         float64 `yaml:"angular_speed"`          // Radians per second
	TightOrbitRadius     float64 `yaml:"tight_orbit_radius"`     // At or below this the orbit speeds up
	TightOrbitMultiplier float64 `yaml:"tight_orbit_multiplier"` // Angular speed factor in a tight orbit
	SteerAngle           float64 `yaml:"steer_angle"`            // Facing offset at full input delta (radians)
	HitRadius            float64 `yaml:"hit_radius"`             // Collision circle radius
}

// ControlConfig defines the input-to-radius controller.
type ControlConfig struct {
	Engage            string  `yaml:"engage"`              // "inward" or "outward"
	AccelScale        float64 `yaml:"accel_scale"`         // Input delta change per second
	RadiusChangeSpeed float64 `yaml:"radius_change_speed"` // Radial units per second at full delta
}

// ResourcesConfig defines the power and reserve (heat/shield) curves.
type ResourcesConfig struct {
	Mode    string        `yaml:"mode"` // "shield" or "heat"
	Power   PowerCurve    `yaml:"power"`
	Reserve ReserveCurve  `yaml:"reserve"`
	Shield  ReserveLimits `yaml:"shield"`
	Heat    ReserveLimits `yaml:"heat"`
}

// PowerCurve is a clamped linear rate in orbital radius.
type PowerCurve struct {
	Slope     float64 `yaml:"slope"`
	Intercept float64 `yaml:"intercept"`
	RateMin   float64 `yaml:"rate_min"`
	RateMax   float64 `yaml:"rate_max"`
	Start     float64 `yaml:"start"`
}

// ReserveCurve is the heat rate as a function of radius: linear beyond the
// knee, reciprocal inside it. Shield mode uses its negation.
type ReserveCurve struct {
	Knee            float64 `yaml:"knee"`
	LinearSlope     float64 `yaml:"linear_slope"`
	LinearIntercept float64 `yaml:"linear_intercept"`
	HotZoneK        float64 `yaml:"hot_zone_k"`
	HotZoneScale    float64 `yaml:"hot_zone_scale"`
	RateLimit       float64 `yaml:"rate_limit"`
}

// ReserveLimits defines the thresholds of one reserve mode.
type ReserveLimits struct {
	Start  float64 `yaml:"start"`
	Lethal float64 `yaml:"lethal"` // Crossing this ends the run
	Alarm  float64 `yaml:"alarm"`  // Crossing this starts the alarm
}

// CollisionConfig defines the penalty for hitting an asteroid.
type CollisionConfig struct {
	PowerReset  bool    `yaml:"power_reset"`  // Drop power to zero on hit
	PowerCost   float64 `yaml:"power_cost"`   // Used when power_reset is false
	ReserveCost float64 `yaml:"reserve_cost"` // Shield lost or heat gained per hit
}

// ObstaclesConfig defines the asteroid spawner.
type ObstaclesConfig struct {
	Enabled     bool    `yaml:"enabled"`
	SpawnMin    float64 `yaml:"spawn_min"` // Seconds between spawn waves (lower bound)
	SpawnMax    float64 `yaml:"spawn_max"`
	CountMin    int     `yaml:"count_min"` // Asteroids per wave
	CountMax    int     `yaml:"count_max"`
	Jitter      float64 `yaml:"jitter"`        // Max angular offset from the spawn line (radians)
	BandMin     float64 `yaml:"band_min"`      // Spawn radius lower bound
	BandMaxFrac float64 `yaml:"band_max_frac"` // Spawn radius upper bound as a fraction of max_radius
	DriftMin    float64 `yaml:"drift_min"`     // Radial drift speed range (units/s)
	DriftMax    float64 `yaml:"drift_max"`
	HitRadius   float64 `yaml:"hit_radius"`
}

// BarriersConfig defines the transit hazards spawned for the During phase.
type BarriersConfig struct {
	Enabled     bool    `yaml:"enabled"`
	FirstOffset int     `yaml:"first_offset"` // First barrier at theta + first_offset*spacing
	LastOffset  int     `yaml:"last_offset"`
	Spacing     float64 `yaml:"spacing"` // Radians between barriers
	Margin      float64 `yaml:"margin"`  // Barriers stay below max_radius - margin
	HitRadius   float64 `yaml:"hit_radius"`
}

// NovaConfig defines the supernova cycle.
type NovaConfig struct {
	Enabled bool       `yaml:"enabled"`
	Phases  PhaseTable `yaml:"phases"`
}

// PhaseTable holds the per-phase settings in cycle order.
type PhaseTable struct {
	Idle       PhaseConfig `yaml:"idle"`
	BuildingUp PhaseConfig `yaml:"building_up"`
	During     PhaseConfig `yaml:"during"`
	After      PhaseConfig `yaml:"after"`
}

// PhaseConfig defines one nova phase.
type PhaseConfig struct {
	Duration        float64 `yaml:"duration"`         // Seconds
	Control         string  `yaml:"control"`          // "player", "outward" or "inward"
	Spawn           bool    `yaml:"spawn"`            // Asteroids keep spawning
	Score           bool    `yaml:"score"`            // Score and multiplier accumulate
	OrbitMultiplier float64 `yaml:"orbit_multiplier"` // Angular speed factor
}

// ScoreConfig defines score accumulation.
type ScoreConfig struct {
	Rate         float64 `yaml:"rate"`          // Points per second at full power and 1x
	MultiplierAt float64 `yaml:"multiplier_at"` // Power that triggers a multiplier step
}

// PaletteConfig holds the normal and warning colors as "#rrggbb".
type PaletteConfig struct {
	Background     string `yaml:"background"`
	Player         string `yaml:"player"`
	SunOuter       string `yaml:"sun_outer"`
	SunInner       string `yaml:"sun_inner"`
	WarnBackground string `yaml:"warn_background"`
	WarnPlayer     string `yaml:"warn_player"`
	WarnSun        string `yaml:"warn_sun"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // Score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnReduction float64 `yaml:"spawn_reduction"` // Fraction of the spawn interval removed at max
	ExtraObstacles int     `yaml:"extra_obstacles"` // Added to count_max at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset converts a flag value to a preset. Empty input returns "".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// Reserve returns the threshold set for the configured resource mode.
func (c *SunskimConfig) Reserve() ReserveLimits {
	if c.Resources.Mode == ModeHeat {
		return c.Resources.Heat
	}
	return c.Resources.Shield
}

// Phase returns the settings for the phase at index i in cycle order
// (0 idle, 1 building up, 2 during, 3 after).
func (t PhaseTable) Phase(i int) PhaseConfig {
	switch i {
	case 1:
		return t.BuildingUp
	case 2:
		return t.During
	case 3:
		return t.After
	default:
		return t.Idle
	}
}
