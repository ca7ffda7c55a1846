// SPDX-License-Identifier: MIT

// Package isomesh defines the triangle-mesh collaborator a dual contouring
// generator emits quads into. Appender decouples the generator from any one
// buffer layout; TriMesh is the concrete growable implementation most
// callers use.
package isomesh

import "gonum.org/v1/gonum/spatial/r3"

// Appender receives emitted quads from a generator run. Clear resets it
// between runs; AddQuad appends one quad (two triangles) with per-corner
// normals computed from the quad's own edge vectors.
type Appender interface {
	Clear()
	AddQuad(a, b, c, d r3.Vec, invert bool)
}

const initialCapacity = 4096

// Vertex is one emitted position/normal pair.
type Vertex struct {
	Pos    r3.Vec
	Normal r3.Vec
}

// TriMesh is a growable buffer of vertices, six per quad (two triangles),
// grown by append as it fills.
type TriMesh struct {
	vertices []Vertex
}

// NewTriMesh returns an empty TriMesh with its initial capacity preallocated.
func NewTriMesh() *TriMesh {
	return &TriMesh{vertices: make([]Vertex, 0, initialCapacity)}
}

// Clear empties the mesh without releasing its backing array.
func (m *TriMesh) Clear() {
	m.vertices = m.vertices[:0]
}

// Vertices returns the mesh's vertex buffer, six entries per quad in the
// order pushed by AddQuad. The returned slice aliases TriMesh's internal
// storage and must not be retained across a subsequent Clear/AddQuad call.
func (m *TriMesh) Vertices() []Vertex {
	return m.vertices
}

func (m *TriMesh) pushVertex(pos, normal r3.Vec) {
	m.vertices = append(m.vertices, Vertex{Pos: pos, Normal: normal})
}

// AddQuad appends the quad a-b-c-d (in winding order) as two triangles,
// computing one normal per corner from the cross product of its two
// incident edge vectors. When invert is true, the normals are negated and
// the triangulation's winding is flipped so the quad faces the opposite way.
func (m *TriMesh) AddQuad(a, b, c, d r3.Vec, invert bool) {
	ab := r3.Sub(b, a)
	bc := r3.Sub(c, b)
	cd := r3.Sub(d, c)
	da := r3.Sub(a, d)

	normalA := r3.Cross(da, ab)
	normalB := r3.Cross(ab, bc)
	normalC := r3.Cross(bc, cd)
	normalD := r3.Cross(cd, da)

	if invert {
		normalA = r3.Scale(-1, normalA)
		normalB = r3.Scale(-1, normalB)
		normalC = r3.Scale(-1, normalC)
		normalD = r3.Scale(-1, normalD)
	}

	if !invert {
		m.pushVertex(a, normalA)
		m.pushVertex(b, normalB)
		m.pushVertex(d, normalD)
		m.pushVertex(d, normalD)
		m.pushVertex(b, normalB)
		m.pushVertex(c, normalC)
	} else {
		m.pushVertex(a, normalA)
		m.pushVertex(d, normalD)
		m.pushVertex(b, normalB)
		m.pushVertex(b, normalB)
		m.pushVertex(d, normalD)
		m.pushVertex(c, normalC)
	}
}
