package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/sunskim/internal/core"
)

// drain streams s to exhaustion and returns the number of samples and the
// peak absolute value.
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			v := buf[i][0]
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Stream = %d, %v; expected 100, true", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d channels differ", i)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, v)
		}
	}
}

func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 10*time.Millisecond, WaveSaw, rate)
	n, _ := drain(t, osc, 1<<20)
	if want := rate.N(10 * time.Millisecond); n != want {
		t.Errorf("streamed %d samples, expected %d", n, want)
	}

	// Exhausted streams report done
	if n, ok := osc.Stream(make([][2]float64, 8)); n != 0 || ok {
		t.Errorf("exhausted Stream = %d, %v", n, ok)
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate) // Constant 1.0
	env := NewEnvelope(osc, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	samples := make([][2]float64, 1000)
	n, _ := env.Stream(samples)
	if n != 1000 {
		t.Fatalf("streamed %d, expected 1000", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("attack should start silent, got %f", samples[0][0])
	}
	if samples[500][0] != 1 {
		t.Errorf("sustain should be full, got %f", samples[500][0])
	}
	if samples[999][0] > 0.02 {
		t.Errorf("release should end near silence, got %f", samples[999][0])
	}
}

func TestSoundEffectsFinite(t *testing.T) {
	cfg := DefaultConfig()
	for _, s := range []Sound{SoundHit, SoundMultiplier, SoundNovaAlert, SoundNovaBlast, SoundNovaCalm, SoundGameOver} {
		t.Run(s.String(), func(t *testing.T) {
			streamer := GetSoundEffect(s, cfg)
			if streamer == nil {
				t.Fatal("nil streamer")
			}
			limit := cfg.SampleRate * 10
			n, peak := drain(t, streamer, limit)
			if n == 0 || n >= limit {
				t.Errorf("streamed %d samples, expected a finite cue", n)
			}
			if peak == 0 || peak > 1.5 {
				t.Errorf("peak = %f, expected audible and bounded", peak)
			}
		})
	}
	if GetSoundEffect(Sound(99), cfg) != nil {
		t.Error("unknown sound should have no streamer")
	}
}

func TestAlarmGeneratorLoops(t *testing.T) {
	rate := beep.SampleRate(8000)
	g := NewAlarmGenerator(rate, 880)
	buf := make([][2]float64, rate.N(alarmBeepPeriod))

	for cycle := 0; cycle < 3; cycle++ {
		n, ok := g.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("cycle %d: Stream = %d, %v", cycle, n, ok)
		}
		// Silence between beeps
		if v := buf[len(buf)-1][0]; v != 0 {
			t.Errorf("cycle %d: expected a gap at the end of the period, got %f", cycle, v)
		}
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		ev   core.Event
		want Sound
		ok   bool
	}{
		{core.Event{Kind: core.EventCollision}, SoundHit, true},
		{core.Event{Kind: core.EventMultiplierUp}, SoundMultiplier, true},
		{core.Event{Kind: core.EventGameOver}, SoundGameOver, true},
		{core.Event{Kind: core.EventPhaseEnter, Phase: "building_up"}, SoundNovaAlert, true},
		{core.Event{Kind: core.EventPhaseEnter, Phase: "during"}, SoundNovaBlast, true},
		{core.Event{Kind: core.EventPhaseEnter, Phase: "after"}, SoundNovaCalm, true},
		{core.Event{Kind: core.EventPhaseEnter, Phase: "idle"}, 0, false},
		{core.Event{Kind: core.EventAlarmOn}, 0, false},
	}
	for _, tt := range tests {
		got, ok := CueFor(tt.ev)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("CueFor(%v %q) = %v, %v; expected %v, %v", tt.ev.Kind, tt.ev.Phase, got, ok, tt.want, tt.ok)
		}
	}
}

func TestUninitializedManagerIsSilent(t *testing.T) {
	sm := NewSoundManager(nil)
	events := []core.Event{
		{Kind: core.EventAlarmOn},
		{Kind: core.EventCollision},
		{Kind: core.EventGameOver},
	}
	sm.Dispatch(events, core.Readout{Proximity: 0.7})
	sm.Cleanup()
	if sm.alarm != nil {
		t.Error("uninitialized manager should not build an alarm")
	}

	var nilManager *SoundManager
	nilManager.Dispatch(events, core.Readout{})
	nilManager.Cleanup()
}
