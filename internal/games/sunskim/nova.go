package sunskim

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/sunskim/internal/config"
	"github.com/vovakirdan/sunskim/internal/core"
)

// Phase is a stage of the supernova cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseBuildingUp
	PhaseDuring
	PhaseAfter
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseBuildingUp:
		return "building_up"
	case PhaseDuring:
		return "during"
	case PhaseAfter:
		return "after"
	default:
		return "unknown"
	}
}

// Next returns the phase that follows p in the cycle.
func (p Phase) Next() Phase {
	return (p + 1) % 4
}

// Nova runs the supernova phase machine. Exactly one phase is active and
// its countdown starts fresh on every entry.
type Nova struct {
	table     config.PhaseTable
	enabled   bool
	phase     Phase
	remaining float64
}

// NewNova creates a phase machine in Idle.
func NewNova(cfg config.NovaConfig) *Nova {
	n := &Nova{table: cfg.Phases, enabled: cfg.Enabled}
	n.Reset()
	return n
}

// Reset returns to the start of Idle.
func (n *Nova) Reset() {
	n.phase = PhaseIdle
	n.remaining = n.table.Idle.Duration
}

// Phase returns the active phase.
func (n *Nova) Phase() Phase {
	return n.phase
}

// Remaining returns the seconds left in the active phase.
func (n *Nova) Remaining() float64 {
	return n.remaining
}

// Settings returns the configuration of the active phase.
func (n *Nova) Settings() config.PhaseConfig {
	return n.table.Phase(int(n.phase))
}

// FractionRemaining returns the share of the active phase still to run,
// from 1 at entry down to 0.
func (n *Nova) FractionRemaining() float64 {
	d := n.Settings().Duration
	if d <= 0 {
		return 0
	}
	return core.ClampF(n.remaining/d, 0, 1)
}

// Tick counts down the active phase and returns every phase entered, in
// order. Overshoot carries into the next phase so the cycle keeps the same
// wall time at any tick rate.
func (n *Nova) Tick(dt float64) []Phase {
	if !n.enabled || dt <= 0 {
		return nil
	}
	var entered []Phase
	n.remaining -= dt
	for n.remaining <= 0 {
		n.phase = n.phase.Next()
		d := n.Settings().Duration
		if d <= 0 {
			d = dt // Degenerate table; advance one phase per tick
		}
		n.remaining += d
		entered = append(entered, n.phase)
	}
	return entered
}

// Warmth is how far the palette has moved towards its warning colors,
// from 0 (normal) to 1 (full flash).
func (n *Nova) Warmth() float64 {
	f := n.FractionRemaining()
	switch n.phase {
	case PhaseBuildingUp:
		return core.ClampF(1-2*f, 0, 1)
	case PhaseDuring:
		return 1
	case PhaseAfter:
		return f
	default:
		return 0
	}
}

// Palette holds the colors the renderer should use this tick.
type Palette struct {
	Background core.Color
	Player     core.Color
	SunOuter   core.Color
	SunInner   core.Color
}

// BlendPalette mixes the normal palette towards the warning palette by t.
func BlendPalette(cfg config.PaletteConfig, t float64) Palette {
	t = core.ClampF(t, 0, 1)
	return Palette{
		Background: blendHex(cfg.Background, cfg.WarnBackground, t),
		Player:     blendHex(cfg.Player, cfg.WarnPlayer, t),
		SunOuter:   blendHex(cfg.SunOuter, cfg.WarnSun, t),
		SunInner:   blendHex(cfg.SunInner, cfg.WarnSun, t),
	}
}

// blendHex blends two "#rrggbb" colors. An unparsable endpoint yields the
// other one unchanged.
func blendHex(from, to string, t float64) core.Color {
	a, errA := colorful.Hex(from)
	b, errB := colorful.Hex(to)
	switch {
	case errA != nil && errB != nil:
		return core.ColorDefault
	case errA != nil:
		return core.Color(to)
	case errB != nil:
		return core.Color(from)
	}
	return core.Color(a.BlendRgb(b, t).Clamped().Hex())
}
