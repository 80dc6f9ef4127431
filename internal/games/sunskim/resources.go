package sunskim

import (
	"github.com/vovakirdan/sunskim/internal/config"
	"github.com/vovakirdan/sunskim/internal/core"
)

// Resource bounds shared by power and reserve.
const (
	ResourceMin = 0.0
	ResourceMax = 100.0
)

// Resources integrates power and the reserve (heat or shield) and tracks
// the reserve alarm.
type Resources struct {
	cfg    config.ResourcesConfig
	limits config.ReserveLimits
	heat   bool
	alarm  bool
}

// NewResources creates the resource model for the configured mode.
func NewResources(cfg config.ResourcesConfig) *Resources {
	r := &Resources{cfg: cfg, heat: cfg.Mode == config.ModeHeat}
	if r.heat {
		r.limits = cfg.Heat
	} else {
		r.limits = cfg.Shield
	}
	return r
}

// Tag names the reserve for HUDs and records.
func (r *Resources) Tag() string {
	if r.heat {
		return config.ModeHeat
	}
	return config.ModeShield
}

// StartReserve is the reserve value at session start.
func (r *Resources) StartReserve() float64 {
	return core.ClampF(r.limits.Start, ResourceMin, ResourceMax)
}

// PowerRate returns the power change per second at radius rad.
func PowerRate(rad float64, c config.PowerCurve) float64 {
	return core.ClampF(c.Slope*rad+c.Intercept, c.RateMin, c.RateMax)
}

// HeatRate returns the heat change per second at radius rad: linear above
// the knee, reciprocal below it.
func HeatRate(rad float64, c config.ReserveCurve) float64 {
	var rate float64
	switch {
	case rad > c.Knee:
		rate = c.LinearSlope*rad + c.LinearIntercept
	case rad <= 0:
		rate = c.RateLimit
	default:
		rate = c.HotZoneK / (c.HotZoneScale * rad)
	}
	return core.ClampF(rate, -c.RateLimit, c.RateLimit)
}

// ReserveRate returns the reserve change per second for the active mode.
func (r *Resources) ReserveRate(rad float64) float64 {
	rate := HeatRate(rad, r.cfg.Reserve)
	if r.heat {
		return rate
	}
	return -rate
}

// Integrate advances power and reserve by dt seconds at the player's radius.
func (r *Resources) Integrate(p *Player, dt float64) {
	p.Power = core.ClampF(p.Power+PowerRate(p.Radius, r.cfg.Power)*dt, ResourceMin, ResourceMax)
	p.Reserve = core.ClampF(p.Reserve+r.ReserveRate(p.Radius)*dt, ResourceMin, ResourceMax)
}

// Hit applies the collision penalty.
func (r *Resources) Hit(p *Player, c config.CollisionConfig) {
	if c.PowerReset {
		p.Power = 0
	} else {
		p.Power = core.ClampF(p.Power-c.PowerCost, ResourceMin, ResourceMax)
	}
	if r.heat {
		p.Reserve = core.ClampF(p.Reserve+c.ReserveCost, ResourceMin, ResourceMax)
	} else {
		p.Reserve = core.ClampF(p.Reserve-c.ReserveCost, ResourceMin, ResourceMax)
	}
}

// Lethal reports whether the reserve has crossed its terminal threshold.
func (r *Resources) Lethal(reserve float64) bool {
	if r.heat {
		return reserve > r.limits.Lethal
	}
	return reserve < r.limits.Lethal
}

// inAlarmBand reports whether the reserve is in its danger band.
func (r *Resources) inAlarmBand(reserve float64) bool {
	if r.heat {
		return reserve > r.limits.Alarm
	}
	return reserve < r.limits.Alarm
}

// UpdateAlarm latches the alarm state and reports a transition. It returns
// changed=false while the state holds, so callers emit one event per crossing.
func (r *Resources) UpdateAlarm(reserve float64) (on, changed bool) {
	band := r.inAlarmBand(reserve)
	if band == r.alarm {
		return r.alarm, false
	}
	r.alarm = band
	return band, true
}

// Alarm returns the latched alarm state.
func (r *Resources) Alarm() bool {
	return r.alarm
}

// BurnReason is the death reason when the reserve runs out.
func (r *Resources) BurnReason() string {
	if r.heat {
		return "Your ship overheated!"
	}
	return "Your shields were down for too long!"
}

// reset clears the latched alarm.
func (r *Resources) reset() {
	r.alarm = false
}
