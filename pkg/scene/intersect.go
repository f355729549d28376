package scene

import (
	"math"

	"github.com/taigrr/raycast/pkg/math3d"
)

// Epsilon bounds both the parallel-ray test and the minimum accepted hit
// distance.
const Epsilon = 1e-9

// Hit describes the nearest surface a ray struck.
type Hit struct {
	Distance float64  // Ray parameter t; a world distance when the direction is unit length
	Surface  *Surface // Points into the scene's storage
	Index    int      // Insertion index of Surface
}

// Intersect runs the Möller–Trumbore test of ray against s and returns the
// ray parameter of the hit. Rays parallel to the plane, hits outside the
// triangle and hits at or behind the origin report ok=false.
func (s *Surface) Intersect(ray math3d.Ray) (t float64, ok bool) {
	e1, e2 := s.Edges()

	h := ray.Direction.Cross(e2)
	det := e1.Dot(h)
	if det > -Epsilon && det < Epsilon {
		return 0, false
	}

	invDet := 1.0 / det
	o := ray.Origin.Sub(s.A)
	u := invDet * o.Dot(h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := o.Cross(e1)
	v := invDet * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t = invDet * e2.Dot(q)
	if t <= Epsilon {
		return 0, false
	}
	return t, true
}

// NearestHit returns the closest surface along ray. Surfaces are tested in
// insertion order and a later surface only wins with a strictly smaller
// distance, so exact ties go to the earlier one.
func (s *Scene) NearestHit(ray math3d.Ray) (Hit, bool) {
	hit := Hit{Distance: math.Inf(1), Index: -1}
	if s == nil {
		return hit, false
	}

	for i := range s.surfaces {
		t, ok := s.surfaces[i].Intersect(ray)
		if ok && t < hit.Distance {
			hit.Distance = t
			hit.Surface = &s.surfaces[i]
			hit.Index = i
		}
	}
	return hit, hit.Surface != nil
}
