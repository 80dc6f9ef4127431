package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/sunskim/internal/core"
)

// SoundManager plays cues for simulation events through the speaker. A nil
// or uninitialized manager accepts every call and stays silent.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	alarm       *beep.Ctrl
	hum         *beep.Ctrl
	humVolume   *effects.Volume
	humLevel    float64
	initialized bool
}

// NewSoundManager creates a sound manager. Pass nil for the stock mix.
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(sm.cfg.BufferDuration)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	// Ambient sun drone, level driven by proximity
	drone, err := generators.SineTone(rate, humFrequency)
	if err != nil {
		speaker.Close()
		return fmt.Errorf("audio: hum: %w", err)
	}
	sm.humVolume = newVolume(drone, 0)
	sm.hum = &beep.Ctrl{Streamer: sm.humVolume}
	sm.mixer.Add(sm.hum)

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker.
func (sm *SoundManager) Cleanup() {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.alarm != nil {
		sm.alarm.Paused = true
	}
	if sm.hum != nil {
		sm.hum.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.alarm = nil
	sm.hum = nil
	sm.initialized = false
}

// Play starts a one-shot cue.
func (sm *SoundManager) Play(s Sound) {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	streamer := GetSoundEffect(s, sm.cfg)
	if streamer == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// StartAlarm starts the looping reserve alarm. It is a no-op while the
// alarm is already sounding.
func (sm *SoundManager) StartAlarm() {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.alarm != nil && !sm.alarm.Paused {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if sm.alarm != nil {
		sm.alarm.Paused = false
		return
	}
	rate := beep.SampleRate(sm.cfg.SampleRate)
	gen := NewAlarmGenerator(rate, alarmFrequency)
	sm.alarm = &beep.Ctrl{Streamer: newVolume(gen, sm.cfg.AlarmVolume*sm.cfg.MasterVolume)}
	sm.mixer.Add(sm.alarm)
}

// StopAlarm silences the reserve alarm.
func (sm *SoundManager) StopAlarm() {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.alarm == nil {
		return
	}
	speaker.Lock()
	sm.alarm.Paused = true
	speaker.Unlock()
}

// SetProximity sets the drone level from a 0..1 proximity readout.
func (sm *SoundManager) SetProximity(p float64) {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.humVolume == nil {
		return
	}
	level := core.ClampF(p, 0, 1) * sm.cfg.HumVolume * sm.cfg.MasterVolume
	if d := level - sm.humLevel; d < minHumVolumeChange && d > -minHumVolumeChange {
		return
	}
	sm.humLevel = level
	speaker.Lock()
	setGain(sm.humVolume, level)
	speaker.Unlock()
}

// CueFor maps a simulation event to its one-shot cue.
func CueFor(ev core.Event) (Sound, bool) {
	switch ev.Kind {
	case core.EventCollision:
		return SoundHit, true
	case core.EventMultiplierUp:
		return SoundMultiplier, true
	case core.EventGameOver:
		return SoundGameOver, true
	case core.EventPhaseEnter:
		switch ev.Phase {
		case "building_up":
			return SoundNovaAlert, true
		case "during":
			return SoundNovaBlast, true
		case "after":
			return SoundNovaCalm, true
		}
	}
	return 0, false
}

// Dispatch plays the cues for one tick's events and updates the alarm
// and the drone.
func (sm *SoundManager) Dispatch(events []core.Event, r core.Readout) {
	if sm == nil {
		return
	}
	for _, ev := range events {
		switch ev.Kind {
		case core.EventAlarmOn:
			sm.StartAlarm()
		case core.EventAlarmOff:
			sm.StopAlarm()
		case core.EventGameOver:
			sm.StopAlarm()
		}
		if cue, ok := CueFor(ev); ok {
			sm.Play(cue)
		}
	}
	sm.SetProximity(r.Proximity)
}
