package control

import (
	"math"
	"testing"

	"github.com/taigrr/raycast/pkg/math3d"
	"github.com/taigrr/raycast/pkg/render"
)

func TestSmootherFirstUpdateSnaps(t *testing.T) {
	s := NewSmoother(60)
	target := render.Camera{Position: math3d.V3(1, 2, 3), Yaw: 45, Pitch: 10, FOV: 80}

	if got := s.Update(target); got != target {
		t.Errorf("got %+v, want %+v", got, target)
	}
}

func TestSmootherConverges(t *testing.T) {
	s := NewSmoother(60)
	s.Snap(render.Camera{FOV: 60})

	target := render.Camera{Position: math3d.V3(2, -1, 4), Yaw: 30, Pitch: -20, FOV: 90}

	first := s.Update(target)
	if first.Position.X <= 0 || first.Position.X >= 2 {
		t.Errorf("first step x = %v, want strictly between 0 and 2", first.Position.X)
	}

	var got render.Camera
	for range 600 {
		got = s.Update(target)
	}
	if !got.Position.ApproxEqual(target.Position, 1e-3) {
		t.Errorf("position = %v, want %v", got.Position, target.Position)
	}
	if math.Abs(got.Yaw-30) > 1e-3 || math.Abs(got.Pitch+20) > 1e-3 || math.Abs(got.FOV-90) > 1e-3 {
		t.Errorf("angles = %v/%v/%v", got.Yaw, got.Pitch, got.FOV)
	}
}

func TestSmootherYawShortestPath(t *testing.T) {
	s := NewSmoother(60)
	s.Snap(render.Camera{Yaw: 170, FOV: 60})

	// 170 -> -170 should pass through 180, not through 0.
	for range 600 {
		p := s.Update(render.Camera{Yaw: -170, FOV: 60})
		if math.Abs(p.Yaw) < 160 {
			t.Fatalf("yaw swung through %v", p.Yaw)
		}
	}
}

func TestSmootherPitchStaysInRange(t *testing.T) {
	s := NewSmoother(60)
	s.Snap(render.Camera{Pitch: -MaxPitch, FOV: 60})

	for range 600 {
		p := s.Update(render.Camera{Pitch: MaxPitch, FOV: 60})
		if p.Pitch < -MaxPitch || p.Pitch > MaxPitch {
			t.Fatalf("pitch = %v escaped the clamp", p.Pitch)
		}
	}
}
