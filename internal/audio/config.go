// Package audio synthesizes Sun Skimmer's sound cues from simulation events.
// Every sound is generated procedurally; there are no asset files.
package audio

import "time"

// Sound identifies a one-shot cue.
type Sound int

const (
	SoundHit Sound = iota
	SoundMultiplier
	SoundNovaAlert
	SoundNovaBlast
	SoundNovaCalm
	SoundGameOver
)

func (s Sound) String() string {
	switch s {
	case SoundHit:
		return "hit"
	case SoundMultiplier:
		return "multiplier"
	case SoundNovaAlert:
		return "nova_alert"
	case SoundNovaBlast:
		return "nova_blast"
	case SoundNovaCalm:
		return "nova_calm"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Config controls the mixer levels.
type Config struct {
	SampleRate     int
	BufferDuration time.Duration
	MasterVolume   float64
	EffectVolumes  map[Sound]float64
	AlarmVolume    float64
	HumVolume      float64 // Ambient sun drone at zero distance
}

// DefaultConfig returns the stock mix.
func DefaultConfig() *Config {
	return &Config{
		SampleRate:     44100,
		BufferDuration: 100 * time.Millisecond,
		MasterVolume:   0.6,
		EffectVolumes: map[Sound]float64{
			SoundHit:        0.8,
			SoundMultiplier: 0.6,
			SoundNovaAlert:  0.7,
			SoundNovaBlast:  0.9,
			SoundNovaCalm:   0.5,
			SoundGameOver:   0.8,
		},
		AlarmVolume: 0.35,
		HumVolume:   0.25,
	}
}

// Sound timing
const (
	hitDuration        = 220 * time.Millisecond
	hitAttack          = 2 * time.Millisecond
	hitRelease         = 180 * time.Millisecond
	chimeNoteDuration  = 90 * time.Millisecond
	chimeAttack        = 4 * time.Millisecond
	chimeRelease       = 60 * time.Millisecond
	alertToneDuration  = 250 * time.Millisecond
	alertRepeats       = 4
	blastDuration      = 1500 * time.Millisecond
	blastRelease       = 1300 * time.Millisecond
	calmDuration       = 700 * time.Millisecond
	gameOverNote       = 260 * time.Millisecond
	alarmBeepPeriod    = 500 * time.Millisecond
	alarmBeepLength    = 160 * time.Millisecond
	humFrequency       = 55.0
	alarmFrequency     = 880.0
	minHumVolumeChange = 0.01
)
