package render

import (
	"math"

	"github.com/taigrr/raycast/pkg/math3d"
)

// Shader maps a hit to a pixel color. Brightness is the absolute cosine
// between the surface normal and the ray, faded linearly to zero at
// FadeDistance. Each channel is brightness times its weight, truncated.
type Shader struct {
	FadeDistance float64
	R, G, B      float64
}

// DefaultShader returns the warm distance-faded shading used by the viewer.
func DefaultShader() Shader {
	return Shader{FadeDistance: 30, R: 200, G: 150, B: 100}
}

// Brightness returns the shading factor in [0, 1] for a hit.
func (s Shader) Brightness(normal, dir math3d.Vec3, distance float64) float64 {
	brightness := math.Abs(normal.Dot(dir))
	fade := math.Max(0, 1-distance/s.FadeDistance)
	return brightness * fade
}

// Shade returns the packed opaque pixel for a hit.
func (s Shader) Shade(normal, dir math3d.Vec3, distance float64) uint32 {
	b := s.Brightness(normal, dir, distance)
	return PackRGB(channel(b*s.R), channel(b*s.G), channel(b*s.B))
}

// channel truncates toward zero and saturates at the uint8 range.
func channel(v float64) uint8 {
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
