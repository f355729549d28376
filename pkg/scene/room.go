package scene

import "github.com/taigrr/raycast/pkg/math3d"

// DefaultRoom builds the demo scene: a 20x20 floor at y=-2, three 10-wide
// walls five units tall around the origin, and a cube standing on the floor.
func DefaultRoom() *Scene {
	s := New()

	// Floor
	AddQuad(s,
		math3d.V3(-10, -2, -10),
		math3d.V3(10, -2, -10),
		math3d.V3(10, -2, 10),
		math3d.V3(-10, -2, 10),
	)

	// Wall at z=5
	AddQuad(s,
		math3d.V3(-5, -2, 5),
		math3d.V3(5, -2, 5),
		math3d.V3(5, 3, 5),
		math3d.V3(-5, 3, 5),
	)

	// Wall at x=-5
	AddQuad(s,
		math3d.V3(-5, -2, -5),
		math3d.V3(-5, -2, 5),
		math3d.V3(-5, 3, 5),
		math3d.V3(-5, 3, -5),
	)

	// Wall at x=5
	AddQuad(s,
		math3d.V3(5, -2, -5),
		math3d.V3(5, 3, -5),
		math3d.V3(5, 3, 5),
		math3d.V3(5, -2, 5),
	)

	AddCube(s, math3d.V3(-2, -1, 0), 2)

	return s
}
