// raycast - Terminal Ray Casting Viewer
// Walk around a small shaded room in your terminal, or render it to PNG.
//
// Controls (view):
//
//	W/S         - Move forward/back
//	A/D         - Strafe left/right
//	Space/C     - Move up/down
//	Arrows      - Turn and look up/down
//	Mouse drag  - Look around
//	Scroll, +/- - Zoom (field of view)
//	R           - Reset view
//	?           - Toggle HUD overlay (FPS, pose, distance under crosshair)
//	Esc/Q       - Quit
package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
)

// version is set at build time.
var version = "dev"

func main() {
	err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	)
	if err != nil {
		os.Exit(1)
	}
}
