package core

import (
	"testing"
	"time"
)

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionEngage) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionEngage)
	if !f.Has(ActionEngage) {
		t.Error("Set(ActionEngage) should be visible through Has")
	}
	if f.Has(ActionPause) {
		t.Error("unrelated action should not be set")
	}

	f.Clear()
	if f.Has(ActionEngage) {
		t.Error("Clear should drop all actions")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionEngage, "Engage"},
		{ActionRestart, "Restart"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("%d.String() = %q, expected %q", tc.a, got, tc.want)
		}
	}
}

func TestTickSeconds(t *testing.T) {
	if got := (RuntimeConfig{TickRate: 50}).TickSeconds(); got != 0.02 {
		t.Errorf("TickSeconds() = %f, expected 0.02", got)
	}
	if got := (RuntimeConfig{}).TickSeconds(); got != 1.0/60.0 {
		t.Errorf("TickSeconds() with zero rate = %f, expected 1/60", got)
	}
}

func TestNewInputFrame(t *testing.T) {
	f := NewInputFrame(ActionPause, ActionEngage, ActionNone)
	if !f.Has(ActionPause) || !f.Has(ActionEngage) {
		t.Error("NewInputFrame should set every given action")
	}
	if f.Has(ActionNone) {
		t.Error("ActionNone is never set")
	}
	if f.Has(Action(40)) {
		t.Error("out-of-range action should read as unset")
	}

	if !NewInputFrame().Empty() {
		t.Error("frame without actions should be empty")
	}
	if f.Empty() {
		t.Error("frame with actions should not be empty")
	}
}

func TestRuntimeConfigNormalized(t *testing.T) {
	got := RuntimeConfig{ScreenW: -1, TickRate: 0, Seed: 9}.Normalized()
	if got.ScreenW != 80 || got.ScreenH != 24 || got.TickRate != 60 || got.Seed != 9 {
		t.Errorf("Normalized() = %+v", got)
	}
	if d := (RuntimeConfig{TickRate: 50}).TickInterval(); d != 20*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 20ms", d)
	}
}
