// Package telemetry records Sun Skimmer runs as CSV for offline analysis.
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/sunskim/internal/config"
	"github.com/vovakirdan/sunskim/internal/core"
)

// Output file names inside the recorder directory.
const (
	SamplesFile = "samples.csv"
	EventsFile  = "events.csv"
	RunsFile    = "runs.csv"
	ConfigFile  = "config.yaml"
)

// Sample is one periodic readout row.
type Sample struct {
	Run        int     `csv:"run"`
	Elapsed    float64 `csv:"elapsed"`
	Phase      string  `csv:"phase"`
	Radius     float64 `csv:"radius"`
	Theta      float64 `csv:"theta"`
	Power      float64 `csv:"power"`
	Reserve    float64 `csv:"reserve"`
	Score      float64 `csv:"score"`
	Multiplier int     `csv:"multiplier"`
	Alarm      bool    `csv:"alarm"`
	Proximity  float64 `csv:"proximity"`
	Obstacles  int     `csv:"obstacles"`
}

// EventRecord is one simulation event row.
type EventRecord struct {
	Run     int     `csv:"run"`
	Elapsed float64 `csv:"elapsed"`
	Kind    string  `csv:"kind"`
	Phase   string  `csv:"phase"`
	Reason  string  `csv:"reason"`
	X       float64 `csv:"x"`
	Y       float64 `csv:"y"`
	Value   float64 `csv:"value"`
}

// RunSummary is written once per finished run.
type RunSummary struct {
	Run        int     `csv:"run"`
	Mode       string  `csv:"mode"`
	Seed       int64   `csv:"seed"`
	Duration   float64 `csv:"duration"`
	Score      float64 `csv:"score"`
	Multiplier int     `csv:"multiplier"`
	Collisions int     `csv:"collisions"`
	Novas      int     `csv:"novas"`
	Reason     string  `csv:"reason"`
}

// csvFile appends records to one CSV file, writing the header once.
type csvFile struct {
	f             *os.File
	headerWritten bool
}

func (c *csvFile) write(records any) error {
	if !c.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, c.f); err != nil {
			return err
		}
		c.headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, c.f)
}

// Recorder writes samples, events and run summaries. A nil Recorder is
// valid and records nothing.
type Recorder struct {
	dir      string
	interval float64
	samples  csvFile
	events   csvFile
	runs     csvFile

	run        int
	lastSample float64
	collisions int
	novas      int
}

// NewRecorder creates the output directory and files. Returns nil if dir
// is empty (recording disabled). interval is the sampling period in
// session seconds; zero samples every tick.
func NewRecorder(dir string, interval float64) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("telemetry: creating output directory: %w", err)
	}

	r := &Recorder{dir: dir, interval: interval, run: 1, lastSample: -1}
	files := []struct {
		name string
		dst  *csvFile
	}{
		{SamplesFile, &r.samples},
		{EventsFile, &r.events},
		{RunsFile, &r.runs},
	}
	for _, file := range files {
		f, err := os.Create(filepath.Join(dir, file.name))
		if err != nil {
			_ = r.Close()
			return nil, fmt.Errorf("telemetry: creating %s: %w", file.name, err)
		}
		file.dst.f = f
	}
	return r, nil
}

// Dir returns the output directory path.
func (r *Recorder) Dir() string {
	if r == nil {
		return ""
	}
	return r.dir
}

// Run returns the number of the run being recorded, starting at 1.
func (r *Recorder) Run() int {
	if r == nil {
		return 0
	}
	return r.run
}

// WriteConfig saves the tunables of the recorded session as YAML.
func (r *Recorder) WriteConfig(cfg config.SunskimConfig) error {
	if r == nil {
		return nil
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("telemetry: marshaling config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(r.dir, ConfigFile), data, 0o644); err != nil {
		return fmt.Errorf("telemetry: writing %s: %w", ConfigFile, err)
	}
	return nil
}

// Observe records one tick: every event, and a sample when the sampling
// interval has passed.
func (r *Recorder) Observe(read core.Readout, events []core.Event) error {
	if r == nil {
		return nil
	}

	if len(events) > 0 {
		rows := make([]EventRecord, 0, len(events))
		for _, ev := range events {
			switch ev.Kind {
			case core.EventCollision:
				r.collisions++
			case core.EventPhaseEnter:
				if ev.Phase == "during" {
					r.novas++
				}
			}
			rows = append(rows, EventRecord{
				Run:     r.run,
				Elapsed: read.Elapsed,
				Kind:    ev.Kind.String(),
				Phase:   ev.Phase,
				Reason:  ev.Reason,
				X:       ev.Pos.X,
				Y:       ev.Pos.Y,
				Value:   ev.Value,
			})
		}
		if err := r.events.write(rows); err != nil {
			return fmt.Errorf("telemetry: writing events: %w", err)
		}
	}

	// Paused ticks repeat the last readout without advancing Elapsed.
	if r.lastSample >= 0 && (read.Elapsed <= r.lastSample || read.Elapsed-r.lastSample < r.interval) {
		return nil
	}
	r.lastSample = read.Elapsed
	rows := []Sample{{
		Run:        r.run,
		Elapsed:    read.Elapsed,
		Phase:      read.Phase,
		Radius:     read.Radius,
		Theta:      read.Theta,
		Power:      read.Power,
		Reserve:    read.Reserve,
		Score:      read.Score,
		Multiplier: read.Multiplier,
		Alarm:      read.Alarm,
		Proximity:  read.Proximity,
		Obstacles:  read.Obstacles,
	}}
	if err := r.samples.write(rows); err != nil {
		return fmt.Errorf("telemetry: writing samples: %w", err)
	}
	return nil
}

// FinishRun writes the run summary and starts counting the next run. The
// Run, Collisions and Novas fields are filled from the recorder.
func (r *Recorder) FinishRun(s RunSummary) error {
	if r == nil {
		return nil
	}
	s.Run = r.run
	s.Collisions = r.collisions
	s.Novas = r.novas
	if err := r.runs.write([]RunSummary{s}); err != nil {
		return fmt.Errorf("telemetry: writing run summary: %w", err)
	}

	r.run++
	r.lastSample = -1
	r.collisions = 0
	r.novas = 0
	return nil
}

// Close flushes and closes all output files.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}

	var firstErr error
	for _, c := range []*csvFile{&r.samples, &r.events, &r.runs} {
		if c.f == nil {
			continue
		}
		if err := c.f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		c.f = nil
	}
	return firstErr
}

// LoadSamples reads a samples file written by a Recorder.
func LoadSamples(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("telemetry: opening %s: %w", path, err)
	}
	defer f.Close()

	var rows []Sample
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("telemetry: parsing %s: %w", path, err)
	}
	return rows, nil
}

// LoadRuns reads a run summary file written by a Recorder.
func LoadRuns(path string) ([]RunSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("telemetry: opening %s: %w", path, err)
	}
	defer f.Close()

	var rows []RunSummary
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("telemetry: parsing %s: %w", path, err)
	}
	return rows, nil
}
