package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/sunskim/internal/config"
	"github.com/vovakirdan/sunskim/internal/core"
)

func TestNilRecorderIsDisabled(t *testing.T) {
	r, err := NewRecorder("", 1)
	if err != nil || r != nil {
		t.Fatalf("NewRecorder(\"\") = %v, %v; expected nil, nil", r, err)
	}
	if err := r.Observe(core.Readout{}, []core.Event{{Kind: core.EventCollision}}); err != nil {
		t.Errorf("Observe on nil recorder: %v", err)
	}
	if err := r.FinishRun(RunSummary{}); err != nil {
		t.Errorf("FinishRun on nil recorder: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil recorder: %v", err)
	}
}

func TestRecorderSampling(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	r, err := NewRecorder(dir, 0.5)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}

	// 2 seconds at 10 ticks per second: samples at 0.0, 0.5, 1.0, 1.5
	for i := 0; i < 20; i++ {
		read := core.Readout{Elapsed: float64(i) * 0.1, Power: float64(i), Phase: "idle", Multiplier: 1}
		if err := r.Observe(read, nil); err != nil {
			t.Fatalf("Observe: %v", err)
		}
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	rows, err := LoadSamples(filepath.Join(dir, SamplesFile))
	if err != nil {
		t.Fatalf("LoadSamples: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d samples, expected 4", len(rows))
	}
	if rows[1].Power != 5 || rows[1].Run != 1 || rows[1].Phase != "idle" {
		t.Errorf("second sample = %+v", rows[1])
	}
}

func TestRecorderEventsAndRuns(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRecorder(dir, 1)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}

	events := []core.Event{
		{Kind: core.EventCollision, Pos: core.Vec2{X: 3, Y: 4}},
		{Kind: core.EventCollision},
		{Kind: core.EventPhaseEnter, Phase: "during"},
	}
	if err := r.Observe(core.Readout{Elapsed: 1}, events); err != nil {
		t.Fatalf("Observe: %v", err)
	}
	if err := r.FinishRun(RunSummary{Mode: "sunskim", Score: 1234, Multiplier: 3, Reason: "burned"}); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}
	if r.Run() != 2 {
		t.Errorf("Run = %d after FinishRun, expected 2", r.Run())
	}
	if err := r.FinishRun(RunSummary{Mode: "sunskim", Score: 10}); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	runs, err := LoadRuns(filepath.Join(dir, RunsFile))
	if err != nil {
		t.Fatalf("LoadRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, expected 2", len(runs))
	}
	if runs[0].Collisions != 2 || runs[0].Novas != 1 || runs[0].Score != 1234 {
		t.Errorf("first run = %+v", runs[0])
	}
	if runs[1].Run != 2 || runs[1].Collisions != 0 {
		t.Errorf("second run = %+v", runs[1])
	}

	data, err := os.ReadFile(filepath.Join(dir, EventsFile))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Errorf("events.csv has %d lines, expected header + 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "run,elapsed,kind") {
		t.Errorf("events header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "collision") {
		t.Errorf("first event row = %q", lines[1])
	}
}

func TestRecorderWriteConfig(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRecorder(dir, 1)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	defer r.Close()

	cfg := config.DefaultSunskimConfig()
	cfg.Resources.Mode = config.ModeHeat
	if err := r.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}

	loaded, err := config.LoadSunskim(filepath.Join(dir, ConfigFile))
	if err != nil {
		t.Fatalf("LoadSunskim on written config: %v", err)
	}
	if loaded != cfg {
		t.Errorf("written config did not round-trip")
	}
}

func TestRecorderSkipsFrozenReadouts(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRecorder(dir, 0)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}

	final := core.Readout{Elapsed: 3, Reserve: 0.05, Phase: "idle"}
	for _, read := range []core.Readout{{Elapsed: 2.9}, final, final, final} {
		if err := r.Observe(read, nil); err != nil {
			t.Fatalf("Observe: %v", err)
		}
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	rows, err := LoadSamples(filepath.Join(dir, SamplesFile))
	if err != nil {
		t.Fatalf("LoadSamples: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("got %d samples, expected 2 (repeated readouts dropped)", len(rows))
	}
}
