package input

import "github.com/lixenwraith/skyfarer/core"

// Action is a discrete command produced by the dispatcher
type Action uint8

const (
	ActionNone Action = iota

	ActionThrustFront
	ActionThrustBack
	ActionThrustUp
	ActionThrustDown
	ActionThrustLeft
	ActionThrustRight

	ActionTurnLeft
	ActionTurnRight

	ActionCameraFront
	ActionCameraBack
	ActionCameraUp
	ActionCameraDown
	ActionCameraLeft
	ActionCameraRight
)

// ActionKind groups actions by the collaborator that handles them
type ActionKind uint8

const (
	KindNone ActionKind = iota
	KindThrust
	KindTurn
	KindCamera
)

// Kind returns the action group
func (a Action) Kind() ActionKind {
	switch {
	case a >= ActionThrustFront && a <= ActionThrustRight:
		return KindThrust
	case a == ActionTurnLeft || a == ActionTurnRight:
		return KindTurn
	case a >= ActionCameraFront && a <= ActionCameraRight:
		return KindCamera
	}
	return KindNone
}

// Direction returns the relative direction the action refers to
// False for ActionNone
func (a Action) Direction() (core.Direction, bool) {
	switch a {
	case ActionThrustFront, ActionCameraFront:
		return core.DirFront, true
	case ActionThrustBack, ActionCameraBack:
		return core.DirBack, true
	case ActionThrustUp, ActionCameraUp:
		return core.DirUp, true
	case ActionThrustDown, ActionCameraDown:
		return core.DirDown, true
	case ActionThrustLeft, ActionTurnLeft, ActionCameraLeft:
		return core.DirLeft, true
	case ActionThrustRight, ActionTurnRight, ActionCameraRight:
		return core.DirRight, true
	}
	return 0, false
}

func (a Action) String() string {
	for name, act := range actionRegistry {
		if act == a {
			return name
		}
	}
	return "unknown"
}

// actionRegistry maps canonical action names used by keymap files
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"thrust_front": ActionThrustFront,
	"thrust_back":  ActionThrustBack,
	"thrust_up":    ActionThrustUp,
	"thrust_down":  ActionThrustDown,
	"thrust_left":  ActionThrustLeft,
	"thrust_right": ActionThrustRight,

	"turn_left":  ActionTurnLeft,
	"turn_right": ActionTurnRight,

	"camera_front": ActionCameraFront,
	"camera_back":  ActionCameraBack,
	"camera_up":    ActionCameraUp,
	"camera_down":  ActionCameraDown,
	"camera_left":  ActionCameraLeft,
	"camera_right": ActionCameraRight,
}

// ActionByName resolves a keymap action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}
