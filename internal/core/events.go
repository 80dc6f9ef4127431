package core

// EventKind identifies a discrete simulation event.
type EventKind int

const (
	EventCollision    EventKind = iota // Player hit an obstacle
	EventMultiplierUp                  // Score multiplier stepped up
	EventPhaseEnter                    // A new nova phase began
	EventAlarmOn                       // Reserve entered its danger band
	EventAlarmOff                      // Reserve left its danger band
	EventGameOver                      // Session reached a terminal state
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventCollision:
		return "collision"
	case EventMultiplierUp:
		return "multiplier_up"
	case EventPhaseEnter:
		return "phase_enter"
	case EventAlarmOn:
		return "alarm_on"
	case EventAlarmOff:
		return "alarm_off"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a one-shot notification emitted by a simulation tick.
// Audio, telemetry and cosmetic effects consume events; they never
// feed back into the simulation.
type Event struct {
	Kind   EventKind
	Phase  string  // Phase entered, for EventPhaseEnter
	Reason string  // Death reason, for EventGameOver
	Pos    Vec2    // World position, for EventCollision
	Value  float64 // Multiplier after EventMultiplierUp
}

// Readout is the read-only view of a running simulation for HUDs and
// recorders.
type Readout struct {
	Elapsed    float64
	Radius     float64
	Theta      float64
	Power      float64
	Reserve    float64 // Heat or shield, depending on the game mode
	ReserveTag string  // "heat" or "shield"
	Score      float64
	Multiplier int
	Phase      string
	Alarm      bool
	Proximity  float64 // 0..1 ambient sun proximity volume
	Obstacles  int
}
