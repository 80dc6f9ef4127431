package config

// Progression types accepted in difficulty.progression.type.
const (
	ProgressionScore = "score"
	ProgressionTime  = "time"
	ProgressionNone  = "none"
)

// DifficultyRamp maps a run's progress onto a level in [0, 1] and scales
// spawner parameters by it. The zero value never ramps and sits at level 0.
type DifficultyRamp struct {
	active  bool
	kind    string
	maxAt   float64
	start   float64
	shorten float64 // fraction of the spawn interval removed at level 1
	extra   int     // obstacles added to the wave ceiling at level 1
}

// NewDifficultyRamp builds a ramp from cfg, clamping out-of-range values.
func NewDifficultyRamp(cfg DifficultyConfig) DifficultyRamp {
	maxAt := cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1
	}
	return DifficultyRamp{
		active:  cfg.Enabled && (cfg.Progression.Type == ProgressionScore || cfg.Progression.Type == ProgressionTime),
		kind:    cfg.Progression.Type,
		maxAt:   maxAt,
		start:   unit(cfg.InitialLevel),
		shorten: min(unit(cfg.Scaling.SpawnReduction), 0.9),
		extra:   max(cfg.Scaling.ExtraObstacles, 0),
	}
}

// Active reports whether the level moves during a run.
func (r DifficultyRamp) Active() bool {
	return r.active
}

// Level rises linearly from the initial level to 1 as score or elapsed
// seconds approach progression.max_at.
func (r DifficultyRamp) Level(score, elapsed float64) float64 {
	if !r.active {
		return r.start
	}
	progress := elapsed
	if r.kind == ProgressionScore {
		progress = score
	}
	return r.start + unit(progress/r.maxAt)*(1-r.start)
}

// SpawnInterval shortens base by up to the configured reduction.
func (r DifficultyRamp) SpawnInterval(base, score, elapsed float64) float64 {
	return base * (1 - r.Level(score, elapsed)*r.shorten)
}

// WaveCeiling raises the largest wave size by up to the configured extra.
func (r DifficultyRamp) WaveCeiling(base int, score, elapsed float64) int {
	return base + int(r.Level(score, elapsed)*float64(r.extra))
}

func unit(v float64) float64 {
	return min(max(v, 0), 1)
}
