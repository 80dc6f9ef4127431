package sunskim

import (
	"math"

	"github.com/vovakirdan/sunskim/internal/config"
	"github.com/vovakirdan/sunskim/internal/core"
)

// Player is the single orbiting ship of a session.
type Player struct {
	Radius       float64 // Distance from the sun's edge, clamped to [min, max]
	Theta        float64 // Orbital angle in radians, unbounded
	AngularSpeed float64 // Nominal radians per second
	Power        float64 // [0, 100]
	Reserve      float64 // Heat or shield, [0, 100]
	InputDelta   float64 // [-1, 1], persists across ticks
}

// Sun is the central body. Its radius is fixed for a session.
type Sun struct {
	Radius float64
}

// Pose is a world-space position and facing angle. Facing is the hull
// rotation; the hull's nose is its local +Y axis.
type Pose struct {
	X, Y   float64
	Facing float64
}

// Heading is the world angle the nose points along. For an unsteered
// orbit this is the direction of travel, tangent to the sun.
func (p Pose) Heading() float64 {
	return p.Facing + math.Pi/2
}

// Pos returns the pose position as a vector.
func (p Pose) Pos() core.Vec2 {
	return core.Vec2{X: p.X, Y: p.Y}
}

// polarToWorld places a body at radius r above the sun's edge at angle theta.
// Theta 0 points up the Y axis and increases clockwise.
func polarToWorld(sun Sun, r, theta float64) core.Vec2 {
	d := sun.Radius + r
	return core.Vec2{X: d * math.Sin(theta), Y: d * math.Cos(theta)}
}

// advanceAngle moves the player along its orbit for dt seconds.
func advanceAngle(p *Player, cfg config.PlayerConfig, phaseMultiplier, dt float64) {
	speed := p.AngularSpeed * phaseMultiplier
	if p.Radius <= cfg.TightOrbitRadius {
		speed *= cfg.TightOrbitMultiplier
	}
	p.Theta += speed * dt
}

// playerPose computes the player's world pose. The hull is rotated half a
// turn from the radial angle so the nose never points into the sun, then
// tilted by the steering input unless pinned against a radius limit.
func playerPose(sun Sun, p Player, cfg config.PlayerConfig) Pose {
	pos := polarToWorld(sun, p.Radius, p.Theta)
	facing := math.Atan2(pos.Y, pos.X) + math.Pi
	if p.Radius > cfg.TightOrbitRadius && p.Radius < cfg.MaxRadius {
		facing += p.InputDelta * cfg.SteerAngle
	}
	return Pose{X: pos.X, Y: pos.Y, Facing: facing}
}
