package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over s.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain. math.Log2(0) is -Inf, so zero is
// mapped to silence.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// setGain updates a volume effect in place.
func setGain(v *effects.Volume, vol float64) {
	if vol <= 0 {
		v.Silent = true
		return
	}
	v.Silent = false
	v.Volume = math.Log2(vol)
}

func tone(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// CreateHitSound generates a crunchy burst for an asteroid impact
func CreateHitSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	noise := tone(0, hitDuration, hitAttack, hitRelease, WaveNoise, rate)
	thud := tone(70, hitDuration, hitAttack, hitRelease, WaveSaw, rate)
	mixed := beep.Mix(newVolume(noise, 0.6), newVolume(thud, 0.4))
	return newVolume(mixed, cfg.EffectVolumes[SoundHit]*cfg.MasterVolume)
}

// CreateMultiplierSound generates a rising two-note chime
func CreateMultiplierSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	n1 := tone(987.77, chimeNoteDuration, chimeAttack, chimeRelease, WaveSquare, rate)
	n2 := tone(1318.51, chimeNoteDuration*2, chimeAttack, chimeRelease*2, WaveSquare, rate)
	return newVolume(beep.Seq(n1, n2), cfg.EffectVolumes[SoundMultiplier]*cfg.MasterVolume*0.5)
}

// CreateNovaAlertSound generates a two-tone siren for the nova warning
func CreateNovaAlertSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	var notes []beep.Streamer
	for range alertRepeats {
		notes = append(notes,
			tone(660, alertToneDuration, 10*time.Millisecond, 40*time.Millisecond, WaveSquare, rate),
			tone(440, alertToneDuration, 10*time.Millisecond, 40*time.Millisecond, WaveSquare, rate),
		)
	}
	return newVolume(beep.Seq(notes...), cfg.EffectVolumes[SoundNovaAlert]*cfg.MasterVolume*0.4)
}

// CreateNovaBlastSound generates the long roar of the supernova
func CreateNovaBlastSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	noise := tone(0, blastDuration, 20*time.Millisecond, blastRelease, WaveNoise, rate)
	rumble := tone(40, blastDuration, 20*time.Millisecond, blastRelease, WaveSine, rate)
	mixed := beep.Mix(newVolume(noise, 0.5), newVolume(rumble, 0.8))
	return newVolume(mixed, cfg.EffectVolumes[SoundNovaBlast]*cfg.MasterVolume)
}

// CreateNovaCalmSound generates a soft falling tone as the nova fades
func CreateNovaCalmSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(330, calmDuration, 50*time.Millisecond, calmDuration/2, WaveSine, rate)
	return newVolume(s, cfg.EffectVolumes[SoundNovaCalm]*cfg.MasterVolume)
}

// CreateGameOverSound generates a descending three-note phrase
func CreateGameOverSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	seq := beep.Seq(
		tone(392, gameOverNote, 5*time.Millisecond, 80*time.Millisecond, WaveSaw, rate),
		tone(311.13, gameOverNote, 5*time.Millisecond, 80*time.Millisecond, WaveSaw, rate),
		tone(261.63, gameOverNote*2, 5*time.Millisecond, gameOverNote, WaveSaw, rate),
	)
	return newVolume(seq, cfg.EffectVolumes[SoundGameOver]*cfg.MasterVolume*0.5)
}

// GetSoundEffect returns the streamer for a one-shot cue
func GetSoundEffect(s Sound, cfg *Config) beep.Streamer {
	switch s {
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundMultiplier:
		return CreateMultiplierSound(cfg)
	case SoundNovaAlert:
		return CreateNovaAlertSound(cfg)
	case SoundNovaBlast:
		return CreateNovaBlastSound(cfg)
	case SoundNovaCalm:
		return CreateNovaCalmSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}

// AlarmGenerator emits an endless train of short beeps
type AlarmGenerator struct {
	sr     beep.SampleRate
	freq   float64
	pos    int
	period int
	length int
}

// NewAlarmGenerator creates a looping alarm beeper
func NewAlarmGenerator(sr beep.SampleRate, freq float64) *AlarmGenerator {
	return &AlarmGenerator{
		sr:     sr,
		freq:   freq,
		period: sr.N(alarmBeepPeriod),
		length: sr.N(alarmBeepLength),
	}
}

func (g *AlarmGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.period
		sample := 0.0
		if beatPos < g.length {
			t := float64(beatPos) / float64(g.sr)
			env := 1.0 - float64(beatPos)/float64(g.length)
			sample = env * math.Sin(2*math.Pi*g.freq*t)
		}
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *AlarmGenerator) Err() error {
	return nil
}
