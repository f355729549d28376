// Package control turns viewer input into camera poses.
package control

// Command is a discrete camera action, usually bound to a key.
type Command int

const (
	None Command = iota
	MoveForward
	MoveBack
	StrafeLeft
	StrafeRight
	MoveUp
	MoveDown
	TurnLeft
	TurnRight
	LookUp
	LookDown
	ZoomIn
	ZoomOut
	Reset
)

var commandNames = [...]string{
	None:        "none",
	MoveForward: "move-forward",
	MoveBack:    "move-back",
	StrafeLeft:  "strafe-left",
	StrafeRight: "strafe-right",
	MoveUp:      "move-up",
	MoveDown:    "move-down",
	TurnLeft:    "turn-left",
	TurnRight:   "turn-right",
	LookUp:      "look-up",
	LookDown:    "look-down",
	ZoomIn:      "zoom-in",
	ZoomOut:     "zoom-out",
	Reset:       "reset",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}
