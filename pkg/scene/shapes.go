package scene

import (
	"math"

	"github.com/taigrr/raycast/pkg/math3d"
)

// AddQuad adds the planar quad a-b-c-d as the triangles (a,b,c) and (a,c,d).
func AddQuad(s *Scene, a, b, c, d math3d.Vec3) {
	s.AddSurfaces(NewSurface(a, b, c), NewSurface(a, c, d))
}

// AddCube adds an axis-aligned cube of edge length size as 12 triangles.
// Faces are wound clockwise seen from outside, so normals point into the
// cube. Shading uses the unsigned cosine, so this does not change the image.
func AddCube(s *Scene, center math3d.Vec3, size float64) {
	h := size / 2

	v0 := math3d.V3(center.X-h, center.Y-h, center.Z-h)
	v1 := math3d.V3(center.X+h, center.Y-h, center.Z-h)
	v2 := math3d.V3(center.X+h, center.Y+h, center.Z-h)
	v3 := math3d.V3(center.X-h, center.Y+h, center.Z-h)
	v4 := math3d.V3(center.X-h, center.Y-h, center.Z+h)
	v5 := math3d.V3(center.X+h, center.Y-h, center.Z+h)
	v6 := math3d.V3(center.X+h, center.Y+h, center.Z+h)
	v7 := math3d.V3(center.X-h, center.Y+h, center.Z+h)

	AddQuad(s, v0, v1, v2, v3) // front (-Z)
	AddQuad(s, v5, v4, v7, v6) // back (+Z)
	AddQuad(s, v4, v0, v3, v7) // left (-X)
	AddQuad(s, v1, v5, v6, v2) // right (+X)
	AddQuad(s, v3, v2, v6, v7) // top
	AddQuad(s, v4, v5, v1, v0) // bottom
}

// AddBall adds a UV sphere with the given number of longitude segments and
// latitude rings. Each cell becomes two triangles, so the triangles touching
// the poles collapse to zero (or near zero) area; the intersector skips them.
func AddBall(s *Scene, center math3d.Vec3, radius float64, segments, rings int) {
	point := func(theta, phi float64) math3d.Vec3 {
		return math3d.V3(
			center.X+radius*math.Sin(theta)*math.Cos(phi),
			center.Y+radius*math.Cos(theta),
			center.Z+radius*math.Sin(theta)*math.Sin(phi),
		)
	}

	for i := range rings {
		theta1 := math.Pi * float64(i) / float64(rings)
		theta2 := math.Pi * float64(i+1) / float64(rings)

		for j := range segments {
			phi1 := 2 * math.Pi * float64(j) / float64(segments)
			phi2 := 2 * math.Pi * float64(j+1) / float64(segments)

			AddQuad(s,
				point(theta1, phi1),
				point(theta2, phi1),
				point(theta2, phi2),
				point(theta1, phi2),
			)
		}
	}
}

// AddCylinder adds an upright cylinder standing on base: segments side quads
// plus a triangle fan for each cap, 4*segments triangles in total.
func AddCylinder(s *Scene, base math3d.Vec3, radius, height float64, segments int) {
	top := base.Add(math3d.V3(0, height, 0))
	rim := func(center math3d.Vec3, phi float64) math3d.Vec3 {
		return math3d.V3(center.X+radius*math.Cos(phi), center.Y, center.Z+radius*math.Sin(phi))
	}

	for j := range segments {
		phi1 := 2 * math.Pi * float64(j) / float64(segments)
		phi2 := 2 * math.Pi * float64(j+1) / float64(segments)

		b1, b2 := rim(base, phi1), rim(base, phi2)
		t1, t2 := rim(top, phi1), rim(top, phi2)

		AddQuad(s, b1, t1, t2, b2)
		s.AddSurface(NewSurface(top, t2, t1))
		s.AddSurface(NewSurface(base, b1, b2))
	}
}
