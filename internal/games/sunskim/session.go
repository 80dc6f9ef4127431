package sunskim

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sunskim/internal/config"
	"github.com/vovakirdan/sunskim/internal/core"
)

// TransitDeathReason ends a run that hits a barrier during the nova.
const TransitDeathReason = "You collided with debris during the nova transit!"

// Session owns one run of the simulation: the player, the sun, the obstacle
// arena, the nova cycle and the score. It never reads the wall clock; every
// tick is driven through Advance.
type Session struct {
	cfg    config.SunskimConfig
	rng    *rand.Rand
	logger *log.Logger

	Player Player
	Sun    Sun
	Score  Score

	ctrl       Controller
	resources  *Resources
	field      *ObstacleField
	spawner    *Spawner
	nova       *Nova
	difficulty config.DifficultyRamp

	elapsed  float64
	ticks    uint64
	gameOver bool
	reason   string
	ended    bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes session diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession starts a session with the given tunables and RNG seed.
func NewSession(cfg config.SunskimConfig, seed int64, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset(seed)
	return s
}

// Reset discards the current run and starts a new one.
func (s *Session) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.Sun = Sun{Radius: s.cfg.Sun.Radius}
	s.ctrl = NewController(s.cfg.Control, s.cfg.Player)
	s.resources = NewResources(s.cfg.Resources)
	s.Player = Player{
		Radius:       core.ClampF(s.cfg.Player.StartRadius, s.cfg.Player.MinRadius, s.cfg.Player.MaxRadius),
		AngularSpeed: s.cfg.Player.AngularSpeed,
		Power:        core.ClampF(s.cfg.Resources.Power.Start, ResourceMin, ResourceMax),
		Reserve:      s.resources.StartReserve(),
	}
	s.Score = NewScore()

	s.difficulty = config.NewDifficultyRamp(s.cfg.Difficulty)
	s.field = NewObstacleField()
	s.spawner = NewSpawner(s.cfg.Obstacles, s.cfg.Player.MaxRadius, s.difficulty, s.rng)
	s.spawner.Reset()
	s.nova = NewNova(s.cfg.Nova)

	s.elapsed = 0
	s.ticks = 0
	s.gameOver = false
	s.reason = ""
	s.ended = false
}

// End tears the session down: obstacles, the phase timer and the score are
// discarded and further Advance calls do nothing.
func (s *Session) End() {
	s.field.Clear()
	s.nova.Reset()
	s.Score = NewScore()
	s.resources.reset()
	s.ended = true
}

// Advance runs one tick of dt seconds with the engage input sampled as
// engaged and returns the events the tick produced. A finished or ended
// session does not change. Negative dt is treated as zero.
func (s *Session) Advance(dt float64, engaged bool) []core.Event {
	if s.gameOver || s.ended {
		return nil
	}
	if dt < 0 {
		dt = 0
	}
	s.elapsed += dt
	s.ticks++

	var events []core.Event
	phase := s.nova.Settings()

	// Orbit, then radius
	advanceAngle(&s.Player, s.cfg.Player, phase.OrbitMultiplier, dt)
	s.ctrl.Update(&s.Player, engaged, phase.Control, dt)

	// Resources
	s.resources.Integrate(&s.Player, dt)
	if s.checkBurn(&events) {
		return events
	}

	// Collisions
	s.field.Drift(dt)
	if s.resolveCollisions(&events) {
		return events
	}
	if s.checkBurn(&events) {
		return events
	}
	s.updateAlarm(&events)

	// Lifetimes and spawning
	s.field.Sweep(s.elapsed)
	if s.cfg.Obstacles.Enabled && phase.Spawn {
		s.spawner.Tick(s.field, s.Player, s.elapsed, s.Score.Value, dt)
	}

	// Nova cycle
	for _, entered := range s.nova.Tick(dt) {
		s.enterPhase(entered, &events)
	}
	if s.nova.Phase() == PhaseAfter {
		s.shrinkBarriers()
	}

	// Score
	if s.nova.Settings().Score {
		if s.Score.CheckMultiplier(&s.Player, s.cfg.Score.MultiplierAt) {
			events = append(events, core.Event{
				Kind:  core.EventMultiplierUp,
				Value: float64(s.Score.Multiplier),
			})
		}
		s.Score.Integrate(dt, s.cfg.Score.Rate, s.Player.Power)
	}

	return events
}

// checkBurn ends the run if the reserve crossed its lethal threshold.
func (s *Session) checkBurn(events *[]core.Event) bool {
	if !s.resources.Lethal(s.Player.Reserve) {
		return false
	}
	s.finish(s.resources.BurnReason(), events)
	return true
}

// resolveCollisions handles every obstacle touching the player and reports
// whether the run ended.
func (s *Session) resolveCollisions(events *[]core.Event) bool {
	pose := playerPose(s.Sun, s.Player, s.cfg.Player)
	during := s.nova.Phase() == PhaseDuring

	var hits []ObstacleID
	lethal := false
	s.field.Each(func(id ObstacleID, o *Obstacle) {
		if !overlaps(s.Sun, pose, s.cfg.Player.HitRadius, *o) {
			return
		}
		if o.Kind == KindBarrier {
			if during {
				lethal = true
			}
			return
		}
		hits = append(hits, id)
	})

	for _, id := range hits {
		o, ok := s.field.Get(id)
		if !ok {
			continue
		}
		s.resources.Hit(&s.Player, s.cfg.Collision)
		*events = append(*events, core.Event{
			Kind: core.EventCollision,
			Pos:  polarToWorld(s.Sun, o.Radius, o.Theta),
		})
		s.field.Remove(id)
	}

	if lethal {
		s.finish(TransitDeathReason, events)
		return true
	}
	return false
}

func (s *Session) updateAlarm(events *[]core.Event) {
	on, changed := s.resources.UpdateAlarm(s.Player.Reserve)
	if !changed {
		return
	}
	kind := core.EventAlarmOff
	if on {
		kind = core.EventAlarmOn
	}
	*events = append(*events, core.Event{Kind: kind, Value: s.Player.Reserve})
}

// enterPhase applies the entry side effects of a nova phase.
func (s *Session) enterPhase(p Phase, events *[]core.Event) {
	s.logger.Debug("nova phase", "phase", p, "elapsed", s.elapsed)
	switch p {
	case PhaseDuring:
		s.field.RemoveKind(KindAsteroid)
		if s.cfg.Barriers.Enabled {
			SpawnBarriers(s.field, s.cfg.Barriers, s.Player, s.cfg.Player.MaxRadius, s.elapsed, s.rng)
		}
	case PhaseIdle:
		s.field.RemoveKind(KindBarrier)
		s.spawner.Reset()
	}
	*events = append(*events, core.Event{Kind: core.EventPhaseEnter, Phase: p.String()})
}

func (s *Session) shrinkBarriers() {
	scale := s.nova.FractionRemaining()
	s.field.Each(func(_ ObstacleID, o *Obstacle) {
		if o.Kind == KindBarrier {
			o.Scale = scale
		}
	})
}

func (s *Session) finish(reason string, events *[]core.Event) {
	s.gameOver = true
	s.reason = reason
	s.logger.Info("run over", "reason", reason, "score", int64(s.Score.Value), "elapsed", s.elapsed)
	*events = append(*events, core.Event{Kind: core.EventGameOver, Reason: reason})
}

// GameOver reports whether the run has ended.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// DeathReason returns why the run ended, or "" while it is running.
func (s *Session) DeathReason() string {
	return s.reason
}

// Elapsed returns the session time in seconds.
func (s *Session) Elapsed() float64 {
	return s.elapsed
}

// Ticks returns how many ticks have run.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Phase returns the active nova phase.
func (s *Session) Phase() Phase {
	return s.nova.Phase()
}

// PhaseRemaining returns the seconds left in the active nova phase.
func (s *Session) PhaseRemaining() float64 {
	return s.nova.Remaining()
}

// Field exposes the obstacle arena.
func (s *Session) Field() *ObstacleField {
	return s.field
}

// Config returns the tunables the session runs with.
func (s *Session) Config() config.SunskimConfig {
	return s.cfg
}

// Alarm reports whether the reserve alarm is active.
func (s *Session) Alarm() bool {
	return s.resources.Alarm()
}

// Proximity is the ambient sun volume: louder near the sun, silent while
// the nova is in progress.
func (s *Session) Proximity() float64 {
	if s.nova.Phase() == PhaseDuring {
		return 0
	}
	return core.ClampF(1-s.Player.Radius/s.cfg.Player.MaxRadius, 0, 1)
}

// Palette returns the colors for the current point of the nova cycle.
func (s *Session) Palette() Palette {
	return BlendPalette(s.cfg.Palette, s.nova.Warmth())
}

// PlayerPose returns the player's world position and facing.
func (s *Session) PlayerPose() Pose {
	return playerPose(s.Sun, s.Player, s.cfg.Player)
}

// ObstaclePose is the render view of one obstacle.
type ObstaclePose struct {
	ID    ObstacleID
	Kind  ObstacleKind
	Pose  Pose
	Reach float64
}

// ObstaclePoses returns the world pose of every live obstacle.
func (s *Session) ObstaclePoses() []ObstaclePose {
	out := make([]ObstaclePose, 0, s.field.Len())
	s.field.Each(func(id ObstacleID, o *Obstacle) {
		pos := polarToWorld(s.Sun, o.Radius, o.Theta)
		out = append(out, ObstaclePose{
			ID:    id,
			Kind:  o.Kind,
			Pose:  Pose{X: pos.X, Y: pos.Y, Facing: o.Theta},
			Reach: o.Reach(),
		})
	})
	return out
}

// Readout returns the HUD view of the session.
func (s *Session) Readout() core.Readout {
	return core.Readout{
		Elapsed:    s.elapsed,
		Radius:     s.Player.Radius,
		Theta:      s.Player.Theta,
		Power:      s.Player.Power,
		Reserve:    s.Player.Reserve,
		ReserveTag: s.resources.Tag(),
		Score:      s.Score.Value,
		Multiplier: s.Score.Multiplier,
		Phase:      s.nova.Phase().String(),
		Alarm:      s.resources.Alarm(),
		Proximity:  s.Proximity(),
		Obstacles:  s.field.Len(),
	}
}
