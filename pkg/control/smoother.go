package control

import (
	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/raycast/pkg/math3d"
	"github.com/taigrr/raycast/pkg/render"
)

// axis tracks one spring-driven value.
type axis struct {
	pos float64
	vel float64
}

func (a *axis) update(s harmonica.Spring, target float64) {
	a.pos, a.vel = s.Update(a.pos, a.vel, target)
}

// Smoother eases the rendered camera toward a target pose, one critically
// damped spring per component, so discrete key steps glide instead of jump.
type Smoother struct {
	spring harmonica.Spring

	x, y, z    axis
	yaw, pitch axis
	fov        axis
	primed     bool
}

// NewSmoother creates a smoother stepped once per frame at fps.
func NewSmoother(fps int) *Smoother {
	return &Smoother{
		// Damping 1.0 is critically damped so pitch never overshoots its clamp.
		spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0),
	}
}

// Snap jumps straight to p and stops all motion.
func (s *Smoother) Snap(p render.Camera) {
	s.x = axis{pos: p.Position.X}
	s.y = axis{pos: p.Position.Y}
	s.z = axis{pos: p.Position.Z}
	s.yaw = axis{pos: p.Yaw}
	s.pitch = axis{pos: p.Pitch}
	s.fov = axis{pos: p.FOV}
	s.primed = true
}

// Update advances one frame toward target and returns the pose to render.
// The first call snaps to target.
func (s *Smoother) Update(target render.Camera) render.Camera {
	if !s.primed {
		s.Snap(target)
		return s.pose()
	}

	s.x.update(s.spring, target.Position.X)
	s.y.update(s.spring, target.Position.Y)
	s.z.update(s.spring, target.Position.Z)

	// Chase yaw the short way round the circle.
	s.yaw.pos = math3d.WrapDegrees(s.yaw.pos)
	s.yaw.update(s.spring, s.yaw.pos+math3d.WrapDegrees(target.Yaw-s.yaw.pos))

	s.pitch.update(s.spring, target.Pitch)
	s.fov.update(s.spring, target.FOV)

	return s.pose()
}

func (s *Smoother) pose() render.Camera {
	return render.Camera{
		Position: math3d.V3(s.x.pos, s.y.pos, s.z.pos),
		Yaw:      math3d.WrapDegrees(s.yaw.pos),
		Pitch:    math3d.Clamp(s.pitch.pos, -MaxPitch, MaxPitch),
		FOV:      math3d.Clamp(s.fov.pos, MinFOV, MaxFOV),
	}
}
