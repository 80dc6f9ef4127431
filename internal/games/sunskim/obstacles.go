package sunskim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/sunskim/internal/config"
)

// ObstacleKind distinguishes asteroids from nova barriers.
type ObstacleKind int

const (
	KindAsteroid ObstacleKind = iota
	KindBarrier
)

func (k ObstacleKind) String() string {
	if k == KindBarrier {
		return "barrier"
	}
	return "asteroid"
}

// ObstacleID is a stable handle into an ObstacleField. A handle outlives
// its obstacle: once the slot is reused the old handle no longer resolves.
type ObstacleID struct {
	index int
	gen   uint32
}

// Obstacle is a hazard at a fixed orbital angle.
type Obstacle struct {
	Kind      ObstacleKind
	Radius    float64 // Distance from the sun's edge
	Theta     float64
	Drift     float64 // Radial velocity, units per second
	HitRadius float64
	Scale     float64 // Collider and sprite scale; barriers shrink after the nova
	SpawnedAt float64
	DestroyAt float64 // Session time at which the sweep removes it
}

// Reach returns the scaled collision radius.
func (o Obstacle) Reach() float64 {
	return o.HitRadius * o.Scale
}

type obstacleSlot struct {
	gen   uint32
	alive bool
	ob    Obstacle
}

// ObstacleField is an arena of obstacles addressed by ObstacleID. Iteration
// follows slot order, so a seeded session replays identically.
type ObstacleField struct {
	slots []obstacleSlot
	free  []int
	live  int
}

// NewObstacleField creates an empty field.
func NewObstacleField() *ObstacleField {
	return &ObstacleField{}
}

// Insert stores an obstacle and returns its handle.
func (f *ObstacleField) Insert(o Obstacle) ObstacleID {
	var idx int
	if n := len(f.free); n > 0 {
		idx = f.free[n-1]
		f.free = f.free[:n-1]
	} else {
		f.slots = append(f.slots, obstacleSlot{})
		idx = len(f.slots) - 1
	}
	s := &f.slots[idx]
	s.gen++
	s.alive = true
	s.ob = o
	f.live++
	return ObstacleID{index: idx, gen: s.gen}
}

// Remove deletes the obstacle behind id. Removing a stale or already
// removed handle is a no-op and returns false.
func (f *ObstacleField) Remove(id ObstacleID) bool {
	if !f.valid(id) {
		return false
	}
	f.slots[id.index].alive = false
	f.free = append(f.free, id.index)
	f.live--
	return true
}

// Get returns a copy of the obstacle behind id.
func (f *ObstacleField) Get(id ObstacleID) (Obstacle, bool) {
	if !f.valid(id) {
		return Obstacle{}, false
	}
	return f.slots[id.index].ob, true
}

func (f *ObstacleField) valid(id ObstacleID) bool {
	if id.index < 0 || id.index >= len(f.slots) {
		return false
	}
	s := f.slots[id.index]
	return s.alive && s.gen == id.gen
}

// Len returns the number of live obstacles.
func (f *ObstacleField) Len() int {
	return f.live
}

// Each calls fn for every live obstacle in slot order. fn may modify the
// obstacle in place but must not insert or remove.
func (f *ObstacleField) Each(fn func(id ObstacleID, o *Obstacle)) {
	for i := range f.slots {
		s := &f.slots[i]
		if s.alive {
			fn(ObstacleID{index: i, gen: s.gen}, &s.ob)
		}
	}
}

// IDs returns the handles of all live obstacles in slot order.
func (f *ObstacleField) IDs() []ObstacleID {
	ids := make([]ObstacleID, 0, f.live)
	f.Each(func(id ObstacleID, _ *Obstacle) {
		ids = append(ids, id)
	})
	return ids
}

// Sweep removes every obstacle whose DestroyAt is at or before now and
// returns how many were removed.
func (f *ObstacleField) Sweep(now float64) int {
	var expired []ObstacleID
	f.Each(func(id ObstacleID, o *Obstacle) {
		if o.DestroyAt <= now {
			expired = append(expired, id)
		}
	})
	for _, id := range expired {
		f.Remove(id)
	}
	return len(expired)
}

// RemoveKind removes every obstacle of kind k.
func (f *ObstacleField) RemoveKind(k ObstacleKind) int {
	var ids []ObstacleID
	f.Each(func(id ObstacleID, o *Obstacle) {
		if o.Kind == k {
			ids = append(ids, id)
		}
	})
	for _, id := range ids {
		f.Remove(id)
	}
	return len(ids)
}

// Clear removes all obstacles and invalidates every outstanding handle.
func (f *ObstacleField) Clear() {
	for i := range f.slots {
		if f.slots[i].alive {
			f.slots[i].alive = false
			f.free = append(f.free, i)
		}
	}
	f.live = 0
}

// Drift moves every obstacle radially, never below the sun's edge.
func (f *ObstacleField) Drift(dt float64) {
	f.Each(func(_ ObstacleID, o *Obstacle) {
		if o.Drift != 0 {
			o.Radius = math.Max(0, o.Radius+o.Drift*dt)
		}
	})
}

// Spawner releases asteroid waves on a randomized countdown.
type Spawner struct {
	cfg        config.ObstaclesConfig
	maxRadius  float64
	difficulty config.DifficultyRamp
	rng        *rand.Rand
	timer      float64
}

// NewSpawner creates a spawner. The countdown is armed by Reset.
func NewSpawner(cfg config.ObstaclesConfig, maxRadius float64, ramp config.DifficultyRamp, rng *rand.Rand) *Spawner {
	return &Spawner{
		cfg:        cfg,
		maxRadius:  maxRadius,
		difficulty: ramp,
		rng:        rng,
	}
}

// Reset re-arms the countdown.
func (s *Spawner) Reset() {
	s.timer = s.interval(0, 0)
}

// Timer returns the seconds left until the next wave.
func (s *Spawner) Timer() float64 {
	return s.timer
}

// minSpawnInterval keeps a large dt from spinning the wave loop.
const minSpawnInterval = 0.01

// interval draws the next countdown from [SpawnMin, SpawnMax], shortened by
// the current difficulty.
func (s *Spawner) interval(score, elapsed float64) float64 {
	base := s.cfg.SpawnMin + s.rng.Float64()*(s.cfg.SpawnMax-s.cfg.SpawnMin)
	base = s.difficulty.SpawnInterval(base, score, elapsed)
	return math.Max(base, minSpawnInterval)
}

func (s *Spawner) waveSize(score, elapsed float64) int {
	hi := s.difficulty.WaveCeiling(s.cfg.CountMax, score, elapsed)
	lo := s.cfg.CountMin
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Tick runs the countdown for dt seconds and spawns one wave per expiry
// opposite the player. It returns the number of asteroids spawned.
func (s *Spawner) Tick(f *ObstacleField, p Player, now, score, dt float64) int {
	s.timer -= dt
	spawned := 0
	for s.timer <= 0 {
		spawned += s.spawnWave(f, p, now, score)
		s.timer += s.interval(score, now)
	}
	return spawned
}

func (s *Spawner) spawnWave(f *ObstacleField, p Player, now, score float64) int {
	n := s.waveSize(score, now)
	bandMax := s.cfg.BandMaxFrac * s.maxRadius
	if bandMax < s.cfg.BandMin {
		bandMax = s.cfg.BandMin
	}
	life := 2 * math.Pi / p.AngularSpeed // One revolution
	for range n {
		theta := p.Theta + math.Pi
		if s.cfg.Jitter > 0 {
			theta += (s.rng.Float64()*2 - 1) * s.cfg.Jitter
		}
		f.Insert(Obstacle{
			Kind:      KindAsteroid,
			Radius:    s.cfg.BandMin + s.rng.Float64()*(bandMax-s.cfg.BandMin),
			Theta:     theta,
			Drift:     s.cfg.DriftMin + s.rng.Float64()*(s.cfg.DriftMax-s.cfg.DriftMin),
			HitRadius: s.cfg.HitRadius,
			Scale:     1,
			SpawnedAt: now,
			DestroyAt: now + life,
		})
	}
	return n
}

// SpawnBarriers places the nova transit barriers ahead of the player. They
// never expire on their own; the nova cycle removes them.
func SpawnBarriers(f *ObstacleField, cfg config.BarriersConfig, p Player, maxRadius, now float64, rng *rand.Rand) int {
	ceiling := math.Max(0, maxRadius-cfg.Margin)
	n := 0
	for k := cfg.FirstOffset; k <= cfg.LastOffset; k++ {
		f.Insert(Obstacle{
			Kind:      KindBarrier,
			Radius:    rng.Float64() * ceiling,
			Theta:     p.Theta + float64(k)*cfg.Spacing,
			HitRadius: cfg.HitRadius,
			Scale:     1,
			SpawnedAt: now,
			DestroyAt: math.Inf(1),
		})
		n++
	}
	return n
}

// overlaps reports whether a player at pos touches obstacle o.
func overlaps(sun Sun, playerPos Pose, playerReach float64, o Obstacle) bool {
	op := polarToWorld(sun, o.Radius, o.Theta)
	return playerPos.Pos().Dist(op) < playerReach+o.Reach()
}
