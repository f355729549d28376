package scene

import "github.com/taigrr/raycast/pkg/math3d"

// Scene is an insertion-ordered collection of surfaces.
//
// A scene is built once and then only read. AddSurface must not be called
// while a render is reading the scene; concurrent reads are safe.
type Scene struct {
	surfaces []Surface
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

// AddSurface appends a surface.
func (s *Scene) AddSurface(surface Surface) {
	s.surfaces = append(s.surfaces, surface)
}

// AddSurfaces appends several surfaces in order.
func (s *Scene) AddSurfaces(surfaces ...Surface) {
	s.surfaces = append(s.surfaces, surfaces...)
}

// Surfaces returns the surfaces in insertion order. The slice is the scene's
// own storage and must not be modified.
func (s *Scene) Surfaces() []Surface {
	if s == nil {
		return nil
	}
	return s.surfaces
}

// Len returns the number of surfaces.
func (s *Scene) Len() int {
	if s == nil {
		return 0
	}
	return len(s.surfaces)
}

// Bounds returns the axis-aligned box enclosing every vertex. ok is false
// for an empty scene.
func (s *Scene) Bounds() (min, max math3d.Vec3, ok bool) {
	if s.Len() == 0 {
		return math3d.Vec3{}, math3d.Vec3{}, false
	}

	min, max = s.surfaces[0].A, s.surfaces[0].A
	for _, sf := range s.surfaces {
		for _, p := range [3]math3d.Vec3{sf.A, sf.B, sf.C} {
			min = min.Min(p)
			max = max.Max(p)
		}
	}
	return min, max, true
}
