package control

import (
	"math"
	"sync"

	"github.com/taigrr/raycast/pkg/math3d"
	"github.com/taigrr/raycast/pkg/render"
)

// Limits keep a pose inside the range the renderer accepts.
const (
	MaxPitch = 89.0
	MinFOV   = 20.0
	MaxFOV   = 150.0
)

// Speeds controls how far each input moves the camera.
type Speeds struct {
	Move  float64 // World units per movement command
	Turn  float64 // Degrees per rotation command
	Mouse float64 // Degrees per cell of mouse travel
	Zoom  float64 // Degrees of FOV per zoom command
}

// DefaultSpeeds returns the viewer's stock input speeds.
func DefaultSpeeds() Speeds {
	return Speeds{Move: 0.1, Turn: 2.0, Mouse: 0.2, Zoom: 5.0}
}

// Controller owns the target camera pose. Input goroutines mutate it while
// the render loop reads snapshots, so all access is locked.
type Controller struct {
	mu     sync.Mutex
	pose   render.Camera
	home   render.Camera
	speeds Speeds
}

// NewController creates a controller starting at, and resetting to, home.
func NewController(home render.Camera, speeds Speeds) *Controller {
	home = clampPose(home)
	return &Controller{pose: home, home: home, speeds: speeds}
}

// Pose returns a snapshot of the target pose.
func (c *Controller) Pose() render.Camera {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pose
}

// SetPose replaces the target pose, clamping it into range.
func (c *Controller) SetPose(p render.Camera) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pose = clampPose(p)
}

// Apply performs one command.
func (c *Controller) Apply(cmd Command) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pose
	s := c.speeds
	yaw := math3d.Radians(p.Yaw)
	forward := math3d.V3(math.Cos(yaw), 0, math.Sin(yaw))
	right := math3d.V3(-math.Sin(yaw), 0, math.Cos(yaw))

	switch cmd {
	case MoveForward:
		p.Position = p.Position.Add(forward.Scale(s.Move))
	case MoveBack:
		p.Position = p.Position.Sub(forward.Scale(s.Move))
	case StrafeLeft:
		p.Position = p.Position.Sub(right.Scale(s.Move))
	case StrafeRight:
		p.Position = p.Position.Add(right.Scale(s.Move))
	case MoveUp:
		p.Position.Y += s.Move
	case MoveDown:
		p.Position.Y -= s.Move
	case TurnLeft:
		p.Yaw -= s.Turn
	case TurnRight:
		p.Yaw += s.Turn
	case LookUp:
		p.Pitch += s.Turn
	case LookDown:
		p.Pitch -= s.Turn
	case ZoomIn:
		p.FOV -= s.Zoom
	case ZoomOut:
		p.FOV += s.Zoom
	case Reset:
		p = c.home
	}

	c.pose = clampPose(p)
}

// Look turns the camera by a mouse delta in terminal cells. Moving right
// turns right and moving up looks up.
func (c *Controller) Look(dx, dy int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pose
	p.Yaw += float64(dx) * c.speeds.Mouse
	p.Pitch -= float64(dy) * c.speeds.Mouse
	c.pose = clampPose(p)
}

func clampPose(p render.Camera) render.Camera {
	p.Yaw = math3d.WrapDegrees(p.Yaw)
	p.Pitch = math3d.Clamp(p.Pitch, -MaxPitch, MaxPitch)
	p.FOV = math3d.Clamp(p.FOV, MinFOV, MaxFOV)
	return p
}
