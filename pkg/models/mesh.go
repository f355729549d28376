// Package models loads triangle meshes from files and places them into a
// scene.
package models

import (
	"github.com/taigrr/raycast/pkg/math3d"
	"github.com/taigrr/raycast/pkg/scene"
)

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Faces    [][3]int // Indices into Vertices, in file winding order

	// Bounding box, kept current by CalculateBounds
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]math3d.Vec3, 0),
		Faces:    make([][3]int, 0),
	}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.BoundsMin, m.BoundsMax = math3d.Zero3(), math3d.Zero3()
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i] = mat.MulVec3(m.Vertices[i])
	}
	m.CalculateBounds()
}

// Fit uniformly scales and translates the mesh so that its largest
// dimension equals size and its bounding box is centered on center.
// Flat or empty meshes are only translated.
func (m *Mesh) Fit(center math3d.Vec3, size float64) {
	m.CalculateBounds()

	dims := m.Size()
	extent := max(dims.X, dims.Y, dims.Z)
	scale := 1.0
	if extent > 0 {
		scale = size / extent
	}

	// Move to the origin, scale, then move into place.
	mat := math3d.Translate(center).
		Mul(math3d.ScaleUniform(scale)).
		Mul(math3d.Translate(m.Center().Negate()))
	m.Transform(mat)
}

// Surfaces returns one surface per face, in face order.
func (m *Mesh) Surfaces() []scene.Surface {
	out := make([]scene.Surface, 0, len(m.Faces))
	for _, f := range m.Faces {
		out = append(out, scene.NewSurface(m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]))
	}
	return out
}

// AddTo appends the mesh's surfaces to s.
func (m *Mesh) AddTo(s *scene.Scene) {
	s.AddSurfaces(m.Surfaces()...)
}
