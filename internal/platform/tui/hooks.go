package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sunskim/internal/audio"
	"github.com/vovakirdan/sunskim/internal/core"
	"github.com/vovakirdan/sunskim/internal/storage"
	"github.com/vovakirdan/sunskim/internal/telemetry"
)

// Hooks are the collaborators fed by a running game. Every field may be
// nil; none of them feeds back into the simulation.
type Hooks struct {
	Store    *storage.Store
	Sound    *audio.SoundManager
	Recorder *telemetry.Recorder
	Logger   *log.Logger
}

func (h Hooks) logger() *log.Logger {
	if h.Logger == nil {
		return log.New(io.Discard)
	}
	return h.Logger
}

// observe forwards one tick's events and readout.
func (h Hooks) observe(res core.StepResult) {
	h.Sound.Dispatch(res.Events, res.Readout)
	if err := h.Recorder.Observe(res.Readout, res.Events); err != nil {
		h.logger().Warn("telemetry write failed", "err", err)
	}
}

// finish persists a finished or abandoned run.
func (h Hooks) finish(gameID string, seed int64, res core.StepResult) {
	r := res.Readout
	h.Sound.StopAlarm()
	h.Sound.SetProximity(0)

	if h.Store != nil && res.State.Score > 0 {
		_, err := h.Store.SaveRun(storage.Run{
			GameID:     gameID,
			Score:      res.State.Score,
			Multiplier: r.Multiplier,
			Reason:     res.State.Reason,
			Duration:   r.Elapsed,
		})
		if err != nil {
			h.logger().Warn("could not save run", "err", err)
		}
	}

	err := h.Recorder.FinishRun(telemetry.RunSummary{
		Mode:       gameID,
		Seed:       seed,
		Duration:   r.Elapsed,
		Score:      r.Score,
		Multiplier: r.Multiplier,
		Reason:     res.State.Reason,
	})
	if err != nil {
		h.logger().Warn("telemetry write failed", "err", err)
	}

	h.logger().Info("run finished",
		"game", gameID,
		"score", res.State.Score,
		"multiplier", r.Multiplier,
		"elapsed", r.Elapsed,
		"reason", res.State.Reason,
	)
}
