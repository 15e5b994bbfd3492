// Package input turns raw key codes into named actions. Directional actions are latched into
// held flags; discrete actions (zoom toggle, restart) are delivered as events. Events are queued
// by the window thread and drained on the simulation tick.
package input

import (
	"fmt"

	"github.com/Carmen-Shannon/constellations/common"
)

// Action identifies a bindable input action.
type Action string

const (
	ActionLeft       Action = "left"
	ActionRight      Action = "right"
	ActionUp         Action = "up"
	ActionDown       Action = "down"
	ActionZoomToggle Action = "zoom_toggle"
	ActionRestart    Action = "restart"
)

// Directional reports whether the action is one of the four latched directions.
func (a Action) Directional() bool {
	switch a {
	case ActionLeft, ActionRight, ActionUp, ActionDown:
		return true
	}
	return false
}

// Event is a press or release of a bound action.
type Event struct {
	Action  Action
	Pressed bool
}

// Bindings maps key codes to actions. A key maps to at most one action.
type Bindings map[uint32]Action

// DefaultBindings returns arrow keys and WASD for directions, Space for zoom toggle and R for restart.
//
// Returns:
//   - Bindings: a fresh binding map
func DefaultBindings() Bindings {
	return Bindings{
		common.KeyLeft:  ActionLeft,
		common.KeyA:     ActionLeft,
		common.KeyRight: ActionRight,
		common.KeyD:     ActionRight,
		common.KeyUp:    ActionUp,
		common.KeyW:     ActionUp,
		common.KeyDown:  ActionDown,
		common.KeyS:     ActionDown,
		common.KeySpace: ActionZoomToggle,
		common.KeyR:     ActionRestart,
	}
}

// BindingsFromNames builds a binding map from action names to key names, as found in configuration.
// Unknown key names, reserved keys and keys bound to two actions are rejected.
//
// Parameters:
//   - names: map of action to key names
//
// Returns:
//   - Bindings: the resolved binding map
//   - error: error naming the first bad key
func BindingsFromNames(names map[Action][]string) (Bindings, error) {
	b := make(Bindings)
	for action, keys := range names {
		for _, name := range keys {
			if common.KeyReserved(name) {
				return nil, fmt.Errorf("bind %s: key %q is reserved for closing the window", action, name)
			}
			code, ok := common.KeyByName(name)
			if !ok {
				return nil, fmt.Errorf("bind %s: unknown key %q", action, name)
			}
			if prev, taken := b[code]; taken && prev != action {
				return nil, fmt.Errorf("bind %s: key %q already bound to %s", action, name, prev)
			}
			b[code] = action
		}
	}
	return b, nil
}
