package scene

import (
	"math"
	"testing"

	"github.com/taigrr/raycast/pkg/math3d"
)

func TestShapeTriangleCounts(t *testing.T) {
	tests := []struct {
		name  string
		build func(*Scene)
		want  int
	}{
		{"quad", func(s *Scene) {
			AddQuad(s, math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(1, 1, 0), math3d.V3(0, 1, 0))
		}, 2},
		{"cube", func(s *Scene) { AddCube(s, math3d.Zero3(), 2) }, 12},
		{"ball 6x4", func(s *Scene) { AddBall(s, math3d.Zero3(), 1, 6, 4) }, 48},
		{"ball 12x12", func(s *Scene) { AddBall(s, math3d.Zero3(), 1, 12, 12) }, 288},
		{"cylinder 12", func(s *Scene) { AddCylinder(s, math3d.Zero3(), 0.5, 2, 12) }, 48},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			tc.build(s)
			if s.Len() != tc.want {
				t.Errorf("got %d triangles, want %d", s.Len(), tc.want)
			}
		})
	}
}

func TestCubeNormalsPointInward(t *testing.T) {
	center := math3d.V3(-2, -1, 0)
	s := New()
	AddCube(s, center, 2)

	for i, sf := range s.Surfaces() {
		out := sf.Centroid().Sub(center)
		if sf.Normal().Dot(out) >= 0 {
			t.Errorf("surface %d normal %v points outward", i, sf.Normal())
		}
	}
}

func TestCylinderNormalsPointOutward(t *testing.T) {
	base := math3d.V3(0, -1, -3)
	s := New()
	AddCylinder(s, base, 0.5, 2, 12)

	center := base.Add(math3d.V3(0, 1, 0))
	for i, sf := range s.Surfaces() {
		out := sf.Centroid().Sub(center)
		if sf.Normal().Dot(out) <= 0 {
			t.Errorf("surface %d normal %v points inward", i, sf.Normal())
		}
	}
}

func TestBallVerticesOnSphere(t *testing.T) {
	center := math3d.V3(2, 0, 0)
	s := New()
	AddBall(s, center, 1.5, 8, 6)

	degenerate := 0
	for _, sf := range s.Surfaces() {
		for _, p := range [3]math3d.Vec3{sf.A, sf.B, sf.C} {
			if d := p.Distance(center); math.Abs(d-1.5) > 1e-9 {
				t.Fatalf("vertex %v is %v from center, want 1.5", p, d)
			}
		}
		if sf.Degenerate() {
			degenerate++
		}
	}

	// The north pole is exact, so each of its segments collapses.
	if degenerate < 8 {
		t.Errorf("got %d degenerate triangles, want at least 8", degenerate)
	}
}

func TestBallIsHitFromOutside(t *testing.T) {
	s := New()
	AddBall(s, math3d.V3(0, 0, 10), 1, 24, 24)

	hit, ok := s.NearestHit(math3d.NewRay(math3d.V3(0.1, 0.05, 0), math3d.V3(0, 0, 1)))
	if !ok {
		t.Fatal("expected to hit the ball")
	}
	// The tessellated surface sits slightly inside the true sphere.
	if hit.Distance < 9 || hit.Distance > 9.1 {
		t.Errorf("distance = %v, want about 9", hit.Distance)
	}
}

func TestDefaultRoom(t *testing.T) {
	s := DefaultRoom()
	if s.Len() != 20 {
		t.Fatalf("room has %d surfaces, want 20", s.Len())
	}

	// Looking along +X from the origin hits the wall at x=5.
	hit, ok := s.NearestHit(math3d.NewRay(math3d.Zero3(), math3d.V3(1, 0, 0)))
	if !ok || math.Abs(hit.Distance-5) > 1e-9 {
		t.Errorf("wall hit = %v (ok=%v), want distance 5", hit.Distance, ok)
	}

	// Looking straight down hits the floor at y=-2.
	hit, ok = s.NearestHit(math3d.NewRay(math3d.V3(3, 0, 3), math3d.V3(0, -1, 0)))
	if !ok || math.Abs(hit.Distance-2) > 1e-9 {
		t.Errorf("floor hit = %v (ok=%v), want distance 2", hit.Distance, ok)
	}

	// Looking along -X hits the cube face at x=-1 before the wall at x=-5.
	hit, ok = s.NearestHit(math3d.NewRay(math3d.V3(0, -1, 0.5), math3d.V3(-1, 0, 0)))
	if !ok || math.Abs(hit.Distance-1) > 1e-9 {
		t.Errorf("cube hit = %v (ok=%v), want distance 1", hit.Distance, ok)
	}
}
