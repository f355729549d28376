// Package scene holds the triangle surfaces a frame is rendered from and the
// ray queries the renderer runs against them.
package scene

import "github.com/taigrr/raycast/pkg/math3d"

// Surface is an oriented flat triangle. The vertex order is significant: the
// winding A→B→C determines which way the normal points.
type Surface struct {
	A, B, C math3d.Vec3
}

// NewSurface creates a surface from three points.
func NewSurface(a, b, c math3d.Vec3) Surface {
	return Surface{A: a, B: b, C: c}
}

// Edges returns B−A and C−A.
func (s Surface) Edges() (e1, e2 math3d.Vec3) {
	return s.B.Sub(s.A), s.C.Sub(s.A)
}

// Normal returns the unit normal (B−A)×(C−A). Collinear points yield the
// zero vector.
func (s Surface) Normal() math3d.Vec3 {
	e1, e2 := s.Edges()
	return e1.Cross(e2).Normalize()
}

// Degenerate reports whether the three points are collinear.
func (s Surface) Degenerate() bool {
	e1, e2 := s.Edges()
	return e1.Cross(e2).LenSq() == 0
}

// Centroid returns the average of the three vertices.
func (s Surface) Centroid() math3d.Vec3 {
	return s.A.Add(s.B).Add(s.C).Scale(1.0 / 3)
}

// Transform returns the surface with every vertex transformed by m.
func (s Surface) Transform(m math3d.Mat4) Surface {
	return Surface{A: m.MulVec3(s.A), B: m.MulVec3(s.B), C: m.MulVec3(s.C)}
}
