package sunskim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/sunskim/internal/config"
	"github.com/vovakirdan/sunskim/internal/core"
)

const tick = 1.0 / 60.0

// quietConfig returns defaults with spawning, barriers and the nova off so
// tests control every obstacle themselves.
func quietConfig() config.SunskimConfig {
	cfg := config.DefaultSunskimConfig()
	cfg.Obstacles.Enabled = false
	cfg.Barriers.Enabled = false
	cfg.Nova.Enabled = false
	cfg.Difficulty.Enabled = false
	return cfg
}

// immortal keeps the reserve from ever being lethal.
func immortal(cfg *config.SunskimConfig) {
	cfg.Resources.Shield.Lethal = -1
	cfg.Resources.Heat.Lethal = 101
}

func TestControllerRadiusClamp(t *testing.T) {
	cfg := config.DefaultSunskimConfig()
	c := NewController(cfg.Control, cfg.Player)
	rng := rand.New(rand.NewSource(7))

	for _, dt := range []float64{0, tick, 0.5, 3, 100} {
		for i := 0; i < 200; i++ {
			p := Player{
				Radius:     0.5 + rng.Float64()*799.5,
				InputDelta: rng.Float64()*2 - 1,
			}
			c.Update(&p, rng.Intn(2) == 0, config.ControlPlayer, dt)
			if p.Radius < cfg.Player.MinRadius || p.Radius > cfg.Player.MaxRadius {
				t.Fatalf("dt=%v: radius %v escaped [%v, %v]", dt, p.Radius, cfg.Player.MinRadius, cfg.Player.MaxRadius)
			}
			if p.InputDelta < -1 || p.InputDelta > 1 {
				t.Fatalf("dt=%v: delta %v escaped [-1, 1]", dt, p.InputDelta)
			}
		}
	}
}

func TestControllerEngageDirection(t *testing.T) {
	tests := []struct {
		name    string
		engage  string
		engaged bool
		want    float64
	}{
		{"inward held", config.EngageInward, true, -0.5},
		{"inward released", config.EngageInward, false, 0.5},
		{"outward held", config.EngageOutward, true, 0.5},
		{"outward released", config.EngageOutward, false, -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultSunskimConfig()
			cfg.Control.Engage = tt.engage
			c := NewController(cfg.Control, cfg.Player)
			// AccelScale 2 for 0.25s moves the delta by 0.5
			if got := c.NextDelta(0, tt.engaged, config.ControlPlayer, 0.25); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("NextDelta = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestControllerPhaseOverride(t *testing.T) {
	cfg := config.DefaultSunskimConfig()
	c := NewController(cfg.Control, cfg.Player)

	if got := c.NextDelta(-1, true, config.ControlOutward, tick); got != 1 {
		t.Errorf("outward override delta = %v, expected 1", got)
	}
	if got := c.NextDelta(1, false, config.ControlInward, tick); got != -1 {
		t.Errorf("inward override delta = %v, expected -1", got)
	}
}

func TestPowerRate(t *testing.T) {
	curve := config.DefaultSunskimConfig().Resources.Power
	tests := []struct {
		r    float64
		want float64
	}{
		{0.5, 9.975},
		{100, 5},
		{200, 0},
		{250, -2.5},
		{800, -3},
	}
	for _, tt := range tests {
		if got := PowerRate(tt.r, curve); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("PowerRate(%v) = %v, expected %v", tt.r, got, tt.want)
		}
	}
}

func TestHeatRate(t *testing.T) {
	curve := config.DefaultSunskimConfig().Resources.Reserve
	tests := []struct {
		r    float64
		want float64
	}{
		{0, 10},
		{0.5, 10},
		{50, 8},
		{55, 2 / (0.005 * 55)},
		{60, 5},
		{100, -7},
		{500, -10},
	}
	for _, tt := range tests {
		if got := HeatRate(tt.r, curve); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("HeatRate(%v) = %v, expected %v", tt.r, got, tt.want)
		}
	}
}

func TestShieldRateIsNegatedHeat(t *testing.T) {
	cfg := config.DefaultSunskimConfig()
	shield := NewResources(cfg.Resources)
	cfg.Resources.Mode = config.ModeHeat
	heat := NewResources(cfg.Resources)

	for _, r := range []float64{0.5, 20, 55, 56, 100, 400} {
		if s, h := shield.ReserveRate(r), heat.ReserveRate(r); s != -h {
			t.Errorf("r=%v: shield rate %v, heat rate %v", r, s, h)
		}
	}
}

func TestResourcesStayInRange(t *testing.T) {
	for _, mode := range []string{config.ModeShield, config.ModeHeat} {
		cfg := config.DefaultSunskimConfig()
		cfg.Resources.Mode = mode
		res := NewResources(cfg.Resources)

		for _, r := range []float64{0.5, 1, 30, 55, 77, 200, 800} {
			for _, start := range []float64{0, 0.05, 50, 99.95, 100} {
				for _, dt := range []float64{tick, 1, 60} {
					p := Player{Radius: r, Power: start, Reserve: start}
					res.Integrate(&p, dt)
					if p.Power < 0 || p.Power > 100 || p.Reserve < 0 || p.Reserve > 100 {
						t.Fatalf("%s r=%v start=%v dt=%v: power=%v reserve=%v", mode, r, start, dt, p.Power, p.Reserve)
					}
				}
			}
		}
	}
}

func TestCollisionPenalty(t *testing.T) {
	tests := []struct {
		name        string
		mode        string
		reset       bool
		wantPower   float64
		wantReserve float64
	}{
		{"shield reset", config.ModeShield, true, 0, 50},
		{"shield cost", config.ModeShield, false, 55, 50},
		{"heat reset", config.ModeHeat, true, 0, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultSunskimConfig()
			cfg.Resources.Mode = tt.mode
			cfg.Collision.PowerReset = tt.reset
			res := NewResources(cfg.Resources)

			p := Player{Power: 80, Reserve: 80}
			res.Hit(&p, cfg.Collision)
			if p.Power != tt.wantPower {
				t.Errorf("Power = %v, expected %v", p.Power, tt.wantPower)
			}
			if p.Reserve != tt.wantReserve {
				t.Errorf("Reserve = %v, expected %v", p.Reserve, tt.wantReserve)
			}
		})
	}
}

func TestAlarmIdempotence(t *testing.T) {
	cfg := config.DefaultSunskimConfig()
	res := NewResources(cfg.Resources)

	var ons, offs int
	for _, v := range []float64{50, 30, 20, 10, 5, 20, 30, 40, 24, 24, 24} {
		on, changed := res.UpdateAlarm(v)
		if !changed {
			continue
		}
		if on {
			ons++
		} else {
			offs++
		}
	}
	if ons != 2 || offs != 1 {
		t.Errorf("alarm transitions on=%d off=%d, expected 2 and 1", ons, offs)
	}
	if !res.Alarm() {
		t.Error("alarm should be latched on")
	}
}

func TestHeatAlarmAndLethal(t *testing.T) {
	cfg := config.DefaultSunskimConfig()
	cfg.Resources.Mode = config.ModeHeat
	res := NewResources(cfg.Resources)

	if on, changed := res.UpdateAlarm(80); !on || !changed {
		t.Errorf("heat 80 should raise the alarm")
	}
	if res.Lethal(99.9) {
		t.Error("heat 99.9 should not be lethal")
	}
	if !res.Lethal(99.95) {
		t.Error("heat 99.95 should be lethal")
	}
}

func TestObstacleFieldHandles(t *testing.T) {
	f := NewObstacleField()
	a := f.Insert(Obstacle{Radius: 1})
	b := f.Insert(Obstacle{Radius: 2})

	if f.Len() != 2 {
		t.Fatalf("Len = %d, expected 2", f.Len())
	}
	if !f.Remove(a) {
		t.Error("first Remove should succeed")
	}
	if f.Remove(a) {
		t.Error("second Remove of the same handle should be a no-op")
	}

	// Slot reuse must not resurrect the stale handle
	c := f.Insert(Obstacle{Radius: 3})
	if _, ok := f.Get(a); ok {
		t.Error("stale handle resolved after slot reuse")
	}
	if o, ok := f.Get(c); !ok || o.Radius != 3 {
		t.Errorf("Get(c) = %+v, %v", o, ok)
	}
	if o, ok := f.Get(b); !ok || o.Radius != 2 {
		t.Errorf("Get(b) = %+v, %v", o, ok)
	}

	f.Clear()
	if f.Len() != 0 {
		t.Errorf("Len after Clear = %d", f.Len())
	}
	if f.Remove(b) {
		t.Error("Remove after Clear should be a no-op")
	}
}

func TestObstacleFieldSweep(t *testing.T) {
	f := NewObstacleField()
	early := f.Insert(Obstacle{DestroyAt: 1})
	exact := f.Insert(Obstacle{DestroyAt: 2})
	late := f.Insert(Obstacle{DestroyAt: 3})

	if n := f.Sweep(2); n != 2 {
		t.Errorf("Sweep(2) removed %d, expected 2", n)
	}
	if _, ok := f.Get(early); ok {
		t.Error("early obstacle survived sweep")
	}
	if _, ok := f.Get(exact); ok {
		t.Error("obstacle with destroy_at == now survived sweep")
	}
	if _, ok := f.Get(late); !ok {
		t.Error("late obstacle was swept")
	}
	if n := f.Sweep(2); n != 0 {
		t.Errorf("repeated Sweep removed %d, expected 0", n)
	}
}

func TestSpawnerWave(t *testing.T) {
	cfg := config.DefaultSunskimConfig()
	rng := rand.New(rand.NewSource(99))
	sp := NewSpawner(cfg.Obstacles, cfg.Player.MaxRadius, config.DifficultyRamp{}, rng)
	sp.Reset()

	if sp.Timer() < cfg.Obstacles.SpawnMin || sp.Timer() > cfg.Obstacles.SpawnMax {
		t.Fatalf("Timer = %v, expected within [%v, %v]", sp.Timer(), cfg.Obstacles.SpawnMin, cfg.Obstacles.SpawnMax)
	}

	f := NewObstacleField()
	p := Player{Theta: 1.2, AngularSpeed: 0.5}
	now := 10.0

	if n := sp.Tick(f, p, now, 0, sp.Timer()-0.01); n != 0 {
		t.Fatalf("spawned %d before the countdown expired", n)
	}
	n := sp.Tick(f, p, now, 0, 0.02)
	if n < cfg.Obstacles.CountMin || n > cfg.Obstacles.CountMax {
		t.Fatalf("wave size %d outside [%d, %d]", n, cfg.Obstacles.CountMin, cfg.Obstacles.CountMax)
	}
	if f.Len() != n {
		t.Fatalf("field holds %d, expected %d", f.Len(), n)
	}

	bandMax := cfg.Obstacles.BandMaxFrac * cfg.Player.MaxRadius
	f.Each(func(_ ObstacleID, o *Obstacle) {
		if off := math.Abs(o.Theta - (p.Theta + math.Pi)); off > cfg.Obstacles.Jitter+1e-9 {
			t.Errorf("theta offset %v exceeds jitter", off)
		}
		if o.Radius < cfg.Obstacles.BandMin || o.Radius > bandMax {
			t.Errorf("radius %v outside band", o.Radius)
		}
		if want := now + 2*math.Pi/p.AngularSpeed; math.Abs(o.DestroyAt-want) > 1e-9 {
			t.Errorf("DestroyAt = %v, expected %v", o.DestroyAt, want)
		}
		if o.Kind != KindAsteroid {
			t.Errorf("Kind = %v, expected asteroid", o.Kind)
		}
	})
	if sp.Timer() <= 0 {
		t.Errorf("countdown not re-armed: %v", sp.Timer())
	}
}

func TestSpawnerLargeStepSpawnsEveryWave(t *testing.T) {
	cfg := config.DefaultSunskimConfig()
	cfg.Obstacles.SpawnMin = 1
	cfg.Obstacles.SpawnMax = 1
	cfg.Obstacles.CountMin = 1
	cfg.Obstacles.CountMax = 1
	sp := NewSpawner(cfg.Obstacles, cfg.Player.MaxRadius, config.DifficultyRamp{}, rand.New(rand.NewSource(1)))
	sp.Reset()

	f := NewObstacleField()
	if n := sp.Tick(f, Player{AngularSpeed: 0.5}, 0, 0, 3.5); n != 3 {
		t.Errorf("spawned %d over 3.5s at 1s intervals, expected 3", n)
	}
}

func TestSpawnBarriers(t *testing.T) {
	cfg := config.DefaultSunskimConfig()
	f := NewObstacleField()
	p := Player{Theta: 0.4}

	n := SpawnBarriers(f, cfg.Barriers, p, cfg.Player.MaxRadius, 5, rand.New(rand.NewSource(3)))
	if n != 14 {
		t.Fatalf("spawned %d barriers, expected 14", n)
	}
	k := cfg.Barriers.FirstOffset
	f.Each(func(_ ObstacleID, o *Obstacle) {
		want := p.Theta + float64(k)*cfg.Barriers.Spacing
		if math.Abs(o.Theta-want) > 1e-9 {
			t.Errorf("barrier %d theta = %v, expected %v", k, o.Theta, want)
		}
		if o.Radius < 0 || o.Radius > cfg.Player.MaxRadius-cfg.Barriers.Margin {
			t.Errorf("barrier %d radius %v out of range", k, o.Radius)
		}
		if o.HitRadius != 58 || o.Kind != KindBarrier {
			t.Errorf("barrier %d = %+v", k, *o)
		}
		k++
	})
	if f.Sweep(1e9) != 0 {
		t.Error("barriers must not expire on their own")
	}
}

func TestNovaPhaseOrderAcrossTickRates(t *testing.T) {
	cfg := config.DefaultSunskimConfig().Nova
	want := []Phase{PhaseBuildingUp, PhaseDuring, PhaseAfter, PhaseIdle, PhaseBuildingUp, PhaseDuring, PhaseAfter}
	wantAt := []float64{30, 36, 46, 50, 80, 86, 96}

	for _, dt := range []float64{1.0 / 30, tick, 1.0 / 144, 0.7} {
		n := NewNova(cfg)
		var got []Phase
		var at []float64
		elapsed := 0.0
		for elapsed < 98 {
			elapsed += dt
			for _, p := range n.Tick(dt) {
				got = append(got, p)
				at = append(at, elapsed)
			}
		}

		if len(got) != len(want) {
			t.Fatalf("dt=%v: entered %v, expected %v", dt, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("dt=%v: transition %d = %v, expected %v", dt, i, got[i], want[i])
			}
			if at[i] < wantAt[i]-1e-6 || at[i] > wantAt[i]+dt+1e-6 {
				t.Errorf("dt=%v: %v entered at %v, expected ~%v", dt, got[i], at[i], wantAt[i])
			}
		}
	}
}

func TestNovaSingleLargeStep(t *testing.T) {
	n := NewNova(config.DefaultSunskimConfig().Nova)
	got := n.Tick(47)
	want := []Phase{PhaseBuildingUp, PhaseDuring, PhaseAfter}
	if len(got) != len(want) {
		t.Fatalf("Tick(47) entered %v, expected %v", got, want)
	}
	if n.Phase() != PhaseAfter {
		t.Errorf("Phase = %v, expected after", n.Phase())
	}
	if math.Abs(n.Remaining()-3) > 1e-9 {
		t.Errorf("Remaining = %v, expected 3", n.Remaining())
	}
}

func TestNovaDisabled(t *testing.T) {
	cfg := config.DefaultSunskimConfig().Nova
	cfg.Enabled = false
	n := NewNova(cfg)
	if got := n.Tick(1000); got != nil {
		t.Errorf("disabled nova entered %v", got)
	}
}

func TestNovaWarmth(t *testing.T) {
	n := NewNova(config.DefaultSunskimConfig().Nova)
	if w := n.Warmth(); w != 0 {
		t.Errorf("idle warmth = %v, expected 0", w)
	}

	n.Tick(30.5) // BuildingUp, 5.5s of 6 left
	if w := n.Warmth(); w != 0 {
		t.Errorf("early build-up warmth = %v, expected 0", w)
	}
	n.Tick(4.0) // 1.5s of 6 left: 1 - 2*0.25
	if w := n.Warmth(); math.Abs(w-0.5) > 1e-9 {
		t.Errorf("late build-up warmth = %v, expected 0.5", w)
	}
	n.Tick(2.0) // During
	if w := n.Warmth(); w != 1 {
		t.Errorf("during warmth = %v, expected 1", w)
	}
	n.Tick(10.5) // After, 3s of 4 left
	if w := n.Warmth(); math.Abs(w-0.75) > 1e-9 {
		t.Errorf("after warmth = %v, expected 0.75", w)
	}
}

func TestBlendPalette(t *testing.T) {
	pal := config.DefaultSunskimConfig().Palette

	normal := BlendPalette(pal, 0)
	if normal.SunOuter != core.Color(pal.SunOuter) || normal.Player != core.Color(pal.Player) {
		t.Errorf("t=0 palette = %+v", normal)
	}
	warn := BlendPalette(pal, 1)
	if warn.Player != core.Color(pal.WarnPlayer) || warn.SunInner != core.Color(pal.WarnSun) {
		t.Errorf("t=1 palette = %+v", warn)
	}

	pal.Background = "not a color"
	if got := BlendPalette(pal, 0.5).Background; got != core.Color(pal.WarnBackground) {
		t.Errorf("bad endpoint blend = %q, expected %q", got, pal.WarnBackground)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999.9, "999"},
		{1000, "1,000"},
		{123456, "123,456"},
		{1234567.8, "1,234,567"},
		{-4321, "-4,321"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestArrowFor(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{0, '→'},
		{math.Pi / 2, '↑'},
		{math.Pi, '←'},
		{-math.Pi / 2, '↓'},
		{5 * math.Pi / 2, '↑'},
	}
	for _, tt := range tests {
		if got := arrowFor(tt.angle); got != tt.want {
			t.Errorf("arrowFor(%v) = %q, expected %q", tt.angle, got, tt.want)
		}
	}
}
