package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sunskim/internal/core"
)

// KeyMapper resolves key names, as reported by tea.KeyMsg.String, to game
// and menu actions.
type KeyMapper struct {
	game map[string]core.Action
	menu map[string]MenuAction
}

// NewKeyMapper returns the default bindings. Space is the thrust latch since
// terminals report no key release.
func NewKeyMapper() *KeyMapper {
	km := &KeyMapper{game: map[string]core.Action{}, menu: map[string]MenuAction{}}
	km.bindGame(core.ActionQuit, "q", "ctrl+c")
	km.bindGame(core.ActionEngage, " ")
	km.bindGame(core.ActionUp, "w", "up")
	km.bindGame(core.ActionDown, "s", "down")
	km.bindGame(core.ActionConfirm, "enter")
	km.bindGame(core.ActionBack, "b", "esc")
	km.bindGame(core.ActionPause, "p")
	km.bindGame(core.ActionRestart, "r")

	km.bindMenu(MenuActionQuit, "q", "ctrl+c")
	km.bindMenu(MenuActionUp, "w", "up", "k")
	km.bindMenu(MenuActionDown, "s", "down", "j")
	km.bindMenu(MenuActionSelect, "enter", " ")
	km.bindMenu(MenuActionBack, "b", "esc")
	km.bindMenu(MenuActionScoreboard, "tab")
	return km
}

func (km *KeyMapper) bindGame(a core.Action, keys ...string) {
	for _, k := range keys {
		km.game[k] = a
	}
}

func (km *KeyMapper) bindMenu(a MenuAction, keys ...string) {
	for _, k := range keys {
		km.menu[k] = a
	}
}

// MapKey returns the game action bound to msg, ActionNone if unbound, and
// whether the action ends the program.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = km.game[msg.String()]
	return action, action == core.ActionQuit
}

// MenuAction is an input on the menu and scoreboard screens.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction returns the menu action bound to msg.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return km.menu[msg.String()]
}

// EngageState tracks the thrust input. The mouse button engages while held;
// space toggles a latch. Either source engages.
type EngageState struct {
	latched bool
	held    bool
}

// Toggle flips the keyboard latch.
func (e *EngageState) Toggle() {
	e.latched = !e.latched
}

// HandleMouse updates the held state from a mouse message.
func (e *EngageState) HandleMouse(msg tea.MouseMsg) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		e.held = true
	case tea.MouseActionRelease:
		e.held = false
	}
}

// Engaged reports whether thrust is currently applied.
func (e EngageState) Engaged() bool {
	return e.latched || e.held
}

// Reset releases all thrust sources.
func (e *EngageState) Reset() {
	e.latched = false
	e.held = false
}
