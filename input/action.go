// Package input turns per-frame keyboard state and mouse events into camera
// movement.
package input

import (
	"fmt"
	"sort"
	"strings"
)

// Action is a camera command a key can be bound to.
type Action int

const (
	StrafeLeft Action = iota
	StrafeRight
	MoveForward
	MoveBackward
	MoveUp
	MoveDown
	TurnLeft
	TurnRight
	PitchUp
	PitchDown

	actionCount
)

var actionNames = [actionCount]string{
	StrafeLeft:   "strafe_left",
	StrafeRight:  "strafe_right",
	MoveForward:  "move_forward",
	MoveBackward: "move_backward",
	MoveUp:       "move_up",
	MoveDown:     "move_down",
	TurnLeft:     "turn_left",
	TurnRight:    "turn_right",
	PitchUp:      "pitch_up",
	PitchDown:    "pitch_down",
}

// Actions returns every action in declaration order.
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction looks up an action by its config name.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Bindings maps actions to key names. Key names are resolved by the
// window layer.
type Bindings map[Action]string

// DefaultBindings are the stock demo controls: WASD to walk, Q/E to
// turn, Tab/CapsLock to pitch and Space/LeftShift to rise and sink. Q
// turns right and E turns left.
func DefaultBindings() Bindings {
	return Bindings{
		StrafeLeft:   "A",
		StrafeRight:  "D",
		MoveForward:  "W",
		MoveBackward: "S",
		MoveUp:       "Space",
		MoveDown:     "LeftShift",
		TurnLeft:     "E",
		TurnRight:    "Q",
		PitchUp:      "Tab",
		PitchDown:    "CapsLock",
	}
}

// AlternateBindings mirror the turn keys of DefaultBindings so Q turns
// left, matching the direction of a leftward mouse swipe.
func AlternateBindings() Bindings {
	b := DefaultBindings()
	b[TurnLeft], b[TurnRight] = b[TurnRight], b[TurnLeft]
	return b
}

// Merge returns a copy of b with every entry of override applied on top.
func (b Bindings) Merge(override Bindings) Bindings {
	out := make(Bindings, len(b)+len(override))
	for a, k := range b {
		out[a] = k
	}
	for a, k := range override {
		out[a] = k
	}
	return out
}

// Validate reports unknown actions, empty key names and keys bound to more
// than one action.
func (b Bindings) Validate() error {
	owners := make(map[string]Action, len(b))
	for _, a := range b.sortedActions() {
		key := b[a]
		if a < 0 || a >= actionCount {
			return fmt.Errorf("binding for %v: unknown action", a)
		}
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("binding for %v: empty key", a)
		}
		norm := strings.ToLower(key)
		if prev, ok := owners[norm]; ok {
			return fmt.Errorf("key %q bound to both %v and %v", key, prev, a)
		}
		owners[norm] = a
	}
	return nil
}

func (b Bindings) sortedActions() []Action {
	out := make([]Action, 0, len(b))
	for a := range b {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
