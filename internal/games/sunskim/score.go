package sunskim

import (
	"strconv"

	"github.com/vovakirdan/sunskim/internal/core"
)

// Score accumulates points while the phase allows it.
type Score struct {
	Value      float64
	Multiplier int // Never below 1 and never decreases during a session
}

// NewScore returns a zero score at 1x.
func NewScore() Score {
	return Score{Multiplier: 1}
}

// Integrate adds dt seconds of scoring at the given power.
func (s *Score) Integrate(dt, rate, power float64) {
	s.Value += dt * rate * core.ClampF(power/ResourceMax, 0, 1) * float64(s.Multiplier)
}

// CheckMultiplier steps the multiplier up when power reaches threshold,
// draining power to zero. It reports whether it fired.
func (s *Score) CheckMultiplier(p *Player, threshold float64) bool {
	if p.Power < threshold {
		return false
	}
	p.Power = 0
	s.Multiplier++
	return true
}

// FormatNumber renders a score with comma thousands separators.
func FormatNumber(v float64) string {
	n := int64(v)
	neg := n < 0
	if neg {
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	out := make([]byte, 0, len(digits)+len(digits)/3+1)
	if neg {
		out = append(out, '-')
	}
	for i := range len(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i])
	}
	return string(out)
}
