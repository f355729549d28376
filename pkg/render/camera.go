package render

import (
	"math"

	"github.com/taigrr/raycast/pkg/math3d"
	"github.com/taigrr/raycast/pkg/scene"
)

// DefaultFOV is the vertical field of view, in degrees, of a new camera.
const DefaultFOV = 60

// Camera is a viewpoint in the world. Angles are in degrees.
//
// Pitch must stay strictly inside (-90, 90) and FOV inside (0, 180); the
// interaction layer clamps both before they reach the renderer.
type Camera struct {
	Position math3d.Vec3

	Yaw   float64 // Rotation around Y; 0 looks down +X
	Pitch float64 // Positive looks up
	FOV   float64 // Vertical field of view
}

// NewCamera creates a camera at the origin looking down +X.
func NewCamera() *Camera {
	return &Camera{FOV: DefaultFOV}
}

// SetPosition sets the camera position.
func (c *Camera) SetPosition(pos math3d.Vec3) {
	c.Position = pos
}

// SetYaw sets the yaw in degrees.
func (c *Camera) SetYaw(yaw float64) {
	c.Yaw = yaw
}

// SetPitch sets the pitch in degrees.
func (c *Camera) SetPitch(pitch float64) {
	c.Pitch = pitch
}

// SetFOV sets the vertical field of view in degrees.
func (c *Camera) SetFOV(fov float64) {
	c.FOV = fov
}

// Basis is the orthonormal frame of a camera.
type Basis struct {
	Forward math3d.Vec3
	Right   math3d.Vec3
	Up      math3d.Vec3
}

// BasisFor derives the camera frame for the given yaw and pitch (degrees).
func BasisFor(yaw, pitch float64) Basis {
	yawRad := math3d.Radians(yaw)
	pitchRad := math3d.Radians(pitch)

	forward := math3d.V3(
		math.Cos(pitchRad)*math.Cos(yawRad),
		math.Sin(pitchRad),
		math.Cos(pitchRad)*math.Sin(yawRad),
	).Normalize()
	right := forward.Cross(math3d.Up()).Normalize()
	up := right.Cross(forward).Normalize()

	return Basis{Forward: forward, Right: right, Up: up}
}

// Basis returns the camera frame.
func (c Camera) Basis() Basis {
	return BasisFor(c.Yaw, c.Pitch)
}

// Viewport holds everything needed to turn pixel coordinates into ray
// directions for one frame. It is computed once per frame and shared
// read-only by every band.
type Viewport struct {
	Basis
	Origin     math3d.Vec3
	Width      int
	Height     int
	Aspect     float64
	TanHalfFOV float64
}

// Viewport precomputes the per-frame projection for a width x height image.
func (c Camera) Viewport(width, height int) Viewport {
	return Viewport{
		Basis:      c.Basis(),
		Origin:     c.Position,
		Width:      width,
		Height:     height,
		Aspect:     float64(width) / float64(height),
		TanHalfFOV: math.Tan(math3d.Radians(c.FOV) / 2),
	}
}

// Direction returns the unit direction through the center of pixel (x, y).
// Row 0 is the top of the image.
func (v Viewport) Direction(x, y int) math3d.Vec3 {
	ndcX := (2*(float64(x)+0.5)/float64(v.Width) - 1) * v.Aspect * v.TanHalfFOV
	ndcY := (1 - 2*(float64(y)+0.5)/float64(v.Height)) * v.TanHalfFOV

	return v.Forward.Add(v.Right.Scale(ndcX)).Add(v.Up.Scale(ndcY)).Normalize()
}

// Ray returns the primary ray for pixel (x, y).
func (v Viewport) Ray(x, y int) math3d.Ray {
	return math3d.NewRay(v.Origin, v.Direction(x, y))
}

// PixelDirection returns the ray direction through pixel (x, y) for an
// explicit basis, field of view (degrees) and aspect ratio.
func PixelDirection(b Basis, x, y, width, height int, fov, aspect float64) math3d.Vec3 {
	v := Viewport{
		Basis:      b,
		Width:      width,
		Height:     height,
		Aspect:     aspect,
		TanHalfFOV: math.Tan(math3d.Radians(fov) / 2),
	}
	return v.Direction(x, y)
}

// PixelRay returns the primary ray for pixel (x, y) of a width x height image.
func (c Camera) PixelRay(x, y, width, height int) math3d.Ray {
	return c.Viewport(width, height).Ray(x, y)
}

// CastAngles casts a single ray from the camera position in the direction
// given by yaw and pitch, independent of the camera's own orientation.
func (c Camera) CastAngles(scn *scene.Scene, yaw, pitch float64) (scene.Hit, bool) {
	dir := BasisFor(yaw, pitch).Forward
	return scn.NearestHit(math3d.NewRay(c.Position, dir))
}
