package sunskim

import "math"

// Snapshot contains the observable session state for determinism checks
// and telemetry. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	Elapsed    float64
	Radius     float64
	Theta      float64
	Power      float64
	Reserve    float64
	InputDelta float64
	Score      float64
	Multiplier int
	Phase      string
	Remaining  float64
	GameOver   bool
	Reason     string

	// Each obstacle is 4 floats: Kind, Radius, Theta, DestroyAt
	ObstacleCount int
	ObstacleData  []float64
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	data := make([]float64, 0, s.field.Len()*4)
	s.field.Each(func(_ ObstacleID, o *Obstacle) {
		data = append(data, float64(o.Kind), o.Radius, o.Theta, o.DestroyAt)
	})

	return Snapshot{
		Tick:          s.ticks,
		Elapsed:       s.elapsed,
		Radius:        s.Player.Radius,
		Theta:         s.Player.Theta,
		Power:         s.Player.Power,
		Reserve:       s.Player.Reserve,
		InputDelta:    s.Player.InputDelta,
		Score:         s.Score.Value,
		Multiplier:    s.Score.Multiplier,
		Phase:         s.nova.Phase().String(),
		Remaining:     s.nova.Remaining(),
		GameOver:      s.gameOver,
		Reason:        s.reason,
		ObstacleCount: s.field.Len(),
		ObstacleData:  data,
	}
}

// Snapshot returns the state of the running session.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{}
	}
	return g.session.Snapshot()
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []float64{
		snap.Elapsed, snap.Radius, snap.Theta, snap.Power, snap.Reserve,
		snap.InputDelta, snap.Score, snap.Remaining,
	} {
		h = h*31 + math.Float64bits(v)
	}
	h = h*31 + uint64(snap.Multiplier)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ObstacleCount) //#nosec G115 -- hash computation
	for _, r := range snap.Phase + snap.Reason {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	if snap.GameOver {
		h = h*31 + 1
	}
	for _, v := range snap.ObstacleData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
