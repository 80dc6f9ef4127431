package sunskim

import (
	"github.com/vovakirdan/sunskim/internal/config"
	"github.com/vovakirdan/sunskim/internal/core"
)

// Controller maps the engage input to radial motion.
type Controller struct {
	cfg       config.ControlConfig
	minRadius float64
	maxRadius float64
}

// NewController creates a controller clamped to the player's radius limits.
func NewController(cfg config.ControlConfig, player config.PlayerConfig) Controller {
	return Controller{
		cfg:       cfg,
		minRadius: player.MinRadius,
		maxRadius: player.MaxRadius,
	}
}

// engageSign is the delta direction while the input is held.
func (c Controller) engageSign() float64 {
	if c.cfg.Engage == config.EngageOutward {
		return 1
	}
	return -1
}

// NextDelta returns the input delta after one tick. A phase override other
// than ControlPlayer pins the delta regardless of input.
func (c Controller) NextDelta(delta float64, engaged bool, override string, dt float64) float64 {
	switch override {
	case config.ControlOutward:
		return 1
	case config.ControlInward:
		return -1
	}
	step := c.cfg.AccelScale * dt
	if engaged {
		delta += c.engageSign() * step
	} else {
		delta -= c.engageSign() * step
	}
	return core.ClampF(delta, -1, 1)
}

// NextRadius returns the radius after moving at delta for dt seconds.
func (c Controller) NextRadius(r, delta, dt float64) float64 {
	return core.ClampF(r+delta*dt*c.cfg.RadiusChangeSpeed, c.minRadius, c.maxRadius)
}

// Update applies one controller tick to the player.
func (c Controller) Update(p *Player, engaged bool, override string, dt float64) {
	p.InputDelta = c.NextDelta(p.InputDelta, engaged, override, dt)
	p.Radius = c.NextRadius(p.Radius, p.InputDelta, dt)
}
