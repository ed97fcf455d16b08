package scene

import (
	"github.com/google/uuid"

	"shadowbox/core"
)

// Mesh holds CPU-side vertex/index data. The ID is stable for the
// mesh's lifetime and keys the renderer backend's GPU resource cache,
// so sharing one Mesh between objects shares one GPU upload.
type Mesh struct {
	ID         uuid.UUID
	Name       string
	Vertices   []core.Vertex
	Indices    []uint32
	IndexCount uint32
}

func CreateMeshFromData(name string, vertices []core.Vertex, indices []uint32) *Mesh {
	return &Mesh{
		ID:         uuid.New(),
		Name:       name,
		Vertices:   vertices,
		Indices:    indices,
		IndexCount: uint32(len(indices)),
	}
}

// MakeDoubleSided appends a copy of every triangle with reversed
// winding, built from duplicated vertices whose normals are negated so
// the back face shades as a true outward-facing surface. Thin geometry
// like floors and walls needs this to survive back-face culling and
// light correctly from either side.
func (m *Mesh) MakeDoubleSided() {
	base := uint32(len(m.Vertices))
	for _, v := range m.Vertices {
		v.Normal = v.Normal.Mul(-1)
		m.Vertices = append(m.Vertices, v)
	}

	n := len(m.Indices)
	for i := 0; i+2 < n; i += 3 {
		m.Indices = append(m.Indices,
			base+m.Indices[i+2], base+m.Indices[i+1], base+m.Indices[i])
	}
	m.IndexCount = uint32(len(m.Indices))
}
