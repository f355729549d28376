package scene

import (
	"math"
	"testing"

	"github.com/taigrr/raycast/pkg/math3d"
)

// squareAt returns a scene holding the square x,y ∈ [-1,1] at depth z.
func squareAt(z float64) *Scene {
	s := New()
	AddQuad(s,
		math3d.V3(-1, -1, z),
		math3d.V3(1, -1, z),
		math3d.V3(1, 1, z),
		math3d.V3(-1, 1, z),
	)
	return s
}

func TestNearestHitSquare(t *testing.T) {
	s := squareAt(5)

	tests := []struct {
		name   string
		origin math3d.Vec3
		dir    math3d.Vec3
		want   float64
	}{
		{"center", math3d.Zero3(), math3d.V3(0, 0, 1), 5},
		{"off center", math3d.V3(0.5, -0.25, 0), math3d.V3(0, 0, 1), 5},
		{"from far", math3d.V3(0, 0, -10), math3d.V3(0, 0, 1), 15},
		{"oblique", math3d.Zero3(), math3d.V3(0.1, 0.1, 1).Normalize(), 5 / math3d.V3(0.1, 0.1, 1).Normalize().Z},
		{"corner", math3d.V3(1, 1, 0), math3d.V3(0, 0, 1), 5},
		{"back side", math3d.V3(0, 0, 10), math3d.V3(0, 0, -1), 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hit, ok := s.NearestHit(math3d.NewRay(tc.origin, tc.dir))
			if !ok {
				t.Fatal("expected a hit")
			}
			if math.Abs(hit.Distance-tc.want) > 1e-6 {
				t.Errorf("distance = %v, want %v", hit.Distance, tc.want)
			}
			if hit.Surface == nil || hit.Surface != &s.Surfaces()[hit.Index] {
				t.Errorf("hit surface does not match index %d", hit.Index)
			}
		})
	}
}

func TestNearestHitMiss(t *testing.T) {
	s := squareAt(5)

	tests := []struct {
		name   string
		origin math3d.Vec3
		dir    math3d.Vec3
	}{
		{"aimed away", math3d.Zero3(), math3d.V3(0, 0, -1)},
		{"beside", math3d.V3(3, 0, 0), math3d.V3(0, 0, 1)},
		{"sideways", math3d.Zero3(), math3d.V3(1, 0, 0)},
		{"parallel outside plane", math3d.V3(0, 0, 0), math3d.V3(0, 1, 0)},
		{"parallel in plane", math3d.V3(-5, 0, 5), math3d.V3(1, 0, 0)},
		{"origin on surface", math3d.V3(0, 0, 5), math3d.V3(0, 0, 1)},
		{"zero direction", math3d.Zero3(), math3d.Zero3()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hit, ok := s.NearestHit(math3d.NewRay(tc.origin, tc.dir))
			if ok {
				t.Errorf("unexpected hit at %v on surface %d", hit.Distance, hit.Index)
			}
			if hit.Surface != nil {
				t.Error("miss should not carry a surface")
			}
		})
	}
}

func TestNearestHitEmptyScene(t *testing.T) {
	if _, ok := New().NearestHit(math3d.NewRay(math3d.Zero3(), math3d.V3(0, 0, 1))); ok {
		t.Error("empty scene reported a hit")
	}
}

func TestNearestHitPicksClosest(t *testing.T) {
	ray := math3d.NewRay(math3d.Zero3(), math3d.V3(0, 0, 1))

	for _, order := range [][2]float64{{5, 3}, {3, 5}} {
		s := New()
		for _, z := range order {
			AddQuad(s,
				math3d.V3(-1, -1, z),
				math3d.V3(1, -1, z),
				math3d.V3(1, 1, z),
				math3d.V3(-1, 1, z),
			)
		}

		hit, ok := s.NearestHit(ray)
		if !ok {
			t.Fatalf("order %v: expected a hit", order)
		}
		if math.Abs(hit.Distance-3) > 1e-9 {
			t.Errorf("order %v: distance = %v, want 3", order, hit.Distance)
		}
		if hit.Surface.A.Z != 3 {
			t.Errorf("order %v: hit surface at z=%v, want 3", order, hit.Surface.A.Z)
		}
	}
}

func TestNearestHitTieGoesToFirst(t *testing.T) {
	tri := NewSurface(math3d.V3(-1, -1, 4), math3d.V3(1, -1, 4), math3d.V3(0, 1, 4))
	s := New()
	s.AddSurfaces(tri, tri, tri)

	hit, ok := s.NearestHit(math3d.NewRay(math3d.Zero3(), math3d.V3(0, 0, 1)))
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Index != 0 {
		t.Errorf("tie resolved to index %d, want 0", hit.Index)
	}
}

func TestIntersectBarycentricBoundary(t *testing.T) {
	tri := NewSurface(math3d.V3(0, 0, 5), math3d.V3(1, 0, 5), math3d.V3(0, 1, 5))
	dir := math3d.V3(0, 0, 1)

	tests := []struct {
		name   string
		origin math3d.Vec3
		hit    bool
	}{
		{"vertex A", math3d.V3(0, 0, 0), true},
		{"vertex B", math3d.V3(1, 0, 0), true},
		{"vertex C", math3d.V3(0, 1, 0), true},
		{"hypotenuse midpoint", math3d.V3(0.5, 0.5, 0), true},
		{"just past hypotenuse", math3d.V3(0.5, 0.5+1e-6, 0), false},
		{"negative u", math3d.V3(-1e-6, 0.5, 0), false},
		{"negative v", math3d.V3(0.5, -1e-6, 0), false},
		{"interior", math3d.V3(0.2, 0.2, 0), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, ok := tri.Intersect(math3d.NewRay(tc.origin, dir))
			if ok != tc.hit {
				t.Fatalf("hit = %v, want %v", ok, tc.hit)
			}
			if ok && math.Abs(d-5) > 1e-9 {
				t.Errorf("distance = %v, want 5", d)
			}
		})
	}
}

func TestIntersectDegenerateSurface(t *testing.T) {
	tri := NewSurface(math3d.V3(-1, 0, 5), math3d.V3(0, 0, 5), math3d.V3(1, 0, 5))
	if _, ok := tri.Intersect(math3d.NewRay(math3d.Zero3(), math3d.V3(0, 0, 1))); ok {
		t.Error("collinear surface reported a hit")
	}
}

func BenchmarkNearestHitRoom(b *testing.B) {
	s := DefaultRoom()
	ray := math3d.NewRay(math3d.Zero3(), math3d.V3(1, -0.2, 0.3).Normalize())

	for b.Loop() {
		_, _ = s.NearestHit(ray)
	}
}
