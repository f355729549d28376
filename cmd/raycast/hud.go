package main

import (
	"fmt"
	"image"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/raycast/pkg/math3d"
	"github.com/taigrr/raycast/pkg/render"
	"github.com/taigrr/raycast/pkg/scene"
)

// ANSI styling for the HUD bars.
const (
	reset   = "\x1b[0m"
	bold    = "\x1b[1m"
	bgBlack = "\x1b[40m"
	fgWhite = "\x1b[97m"
	fgGreen = "\x1b[92m"
	fgCyan  = "\x1b[96m"
)

// hud is an overlay with frame rate, scene size, pose and the distance to
// whatever sits under the crosshair.
type hud struct {
	show bool

	title    string
	surfaces int

	fps   float64
	stats render.FrameStats
	pose  render.Camera
	dist  float64
	at    math3d.Vec3 // centroid of the surface under the crosshair
	onHit bool
}

// setTarget records what the crosshair ray struck.
func (h *hud) setTarget(hit scene.Hit, ok bool) {
	h.onHit = ok && hit.Surface != nil
	if !h.onHit {
		h.dist, h.at = 0, math3d.Vec3{}
		return
	}
	h.dist = hit.Distance
	h.at = hit.Surface.Centroid()
}

// Draw paints the top and bottom bars. It implements uv.Drawable.
func (h *hud) Draw(scr uv.Screen, area uv.Rectangle) {
	if !h.show || area.Dy() < 2 {
		return
	}

	top := fmt.Sprintf("%s%s %.0f FPS %s", bgBlack, fgGreen, h.fps, reset) + " " +
		fmt.Sprintf("%s%s%s %s %s", bold, bgBlack, fgWhite, h.title, reset) + " " +
		fmt.Sprintf("%s%s %d surfaces, %d bands %s", bgBlack, fgCyan, h.surfaces, h.stats.Bands, reset)

	target := "no hit"
	if h.onHit {
		target = fmt.Sprintf("%.2f at %.1f,%.1f,%.1f", h.dist, h.at.X, h.at.Y, h.at.Z)
	}
	bottom := fmt.Sprintf("%s%s pos %.1f,%.1f,%.1f  yaw %.0f  pitch %.0f  fov %.0f  target %s %s",
		bgBlack, fgWhite,
		h.pose.Position.X, h.pose.Position.Y, h.pose.Position.Z,
		h.pose.Yaw, h.pose.Pitch, h.pose.FOV, target, reset)

	line := func(y int) uv.Rectangle {
		return image.Rect(area.Min.X, y, area.Max.X, y+1)
	}
	uv.NewStyledString(top).Draw(scr, line(area.Min.Y))
	uv.NewStyledString(bottom).Draw(scr, line(area.Max.Y-1))
}
