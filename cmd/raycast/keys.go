package main

import (
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/raycast/pkg/control"
)

// keyBindings maps key strokes to camera commands, first match wins.
var keyBindings = []struct {
	keys []string
	cmd  control.Command
}{
	{[]string{"w"}, control.MoveForward},
	{[]string{"s"}, control.MoveBack},
	{[]string{"a"}, control.StrafeLeft},
	{[]string{"d"}, control.StrafeRight},
	{[]string{"space"}, control.MoveUp},
	{[]string{"c"}, control.MoveDown},
	{[]string{"left"}, control.TurnLeft},
	{[]string{"right"}, control.TurnRight},
	{[]string{"up"}, control.LookUp},
	{[]string{"down"}, control.LookDown},
	{[]string{"+", "="}, control.ZoomIn},
	{[]string{"-", "_"}, control.ZoomOut},
	{[]string{"r"}, control.Reset},
}

// commandFor returns the command bound to a key press, or control.None.
func commandFor(ev uv.KeyPressEvent) control.Command {
	for _, b := range keyBindings {
		if ev.MatchString(b.keys...) {
			return b.cmd
		}
	}
	return control.None
}
