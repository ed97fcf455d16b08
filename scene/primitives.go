package scene

import (
	"github.com/chewxy/math32"

	"shadowbox/core"
	"shadowbox/math"
)

// CreateCube builds a unit-style cube of the given edge length with
// per-face normals. Faces are wound counter-clockwise seen from
// outside, so back-face culling keeps only outward faces.
func CreateCube(size float32) *Mesh {
	s := size / 2

	type face struct {
		normal  math.Vec3
		corners [4]math.Vec3
	}

	faces := []face{
		{math.Vec3{Z: 1}, [4]math.Vec3{{-s, -s, s}, {s, -s, s}, {s, s, s}, {-s, s, s}}},
		{math.Vec3{Z: -1}, [4]math.Vec3{{s, -s, -s}, {-s, -s, -s}, {-s, s, -s}, {s, s, -s}}},
		{math.Vec3{Y: 1}, [4]math.Vec3{{-s, s, s}, {s, s, s}, {s, s, -s}, {-s, s, -s}}},
		{math.Vec3{Y: -1}, [4]math.Vec3{{-s, -s, -s}, {s, -s, -s}, {s, -s, s}, {-s, -s, s}}},
		{math.Vec3{X: 1}, [4]math.Vec3{{s, -s, s}, {s, -s, -s}, {s, s, -s}, {s, s, s}}},
		{math.Vec3{X: -1}, [4]math.Vec3{{-s, -s, -s}, {-s, -s, s}, {-s, s, s}, {-s, s, -s}}},
	}

	vertices := make([]core.Vertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range faces {
		base := uint32(len(vertices))
		for _, p := range f.corners {
			vertices = append(vertices, core.Vertex{
				Position: p,
				Normal:   f.normal,
				Color:    core.ColorWhite,
			})
		}
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}

	return CreateMeshFromData("Cube", vertices, indices)
}

// CreateSphere builds a UV sphere. Normals point radially outward, so
// lighting is smooth across the latitude/longitude grid.
func CreateSphere(radius float32, segments, rings int) *Mesh {
	vertices := make([]core.Vertex, 0, (rings+1)*(segments+1))
	indices := make([]uint32, 0, rings*segments*6)

	for ring := 0; ring <= rings; ring++ {
		phi := math32.Pi * float32(ring) / float32(rings)
		for seg := 0; seg <= segments; seg++ {
			theta := 2 * math32.Pi * float32(seg) / float32(segments)

			normal := math.Vec3{
				X: math32.Sin(phi) * math32.Cos(theta),
				Y: math32.Cos(phi),
				Z: math32.Sin(phi) * math32.Sin(theta),
			}
			vertices = append(vertices, core.Vertex{
				Position: normal.Mul(radius),
				Normal:   normal,
				Color:    core.ColorWhite,
			})
		}
	}

	stride := uint32(segments + 1)
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			a := uint32(ring)*stride + uint32(seg)
			b := a + stride

			indices = append(indices, a, b, a+1)
			indices = append(indices, a+1, b, b+1)
		}
	}

	return CreateMeshFromData("Sphere", vertices, indices)
}

// CreatePlane builds a flat quad in the XZ plane with its normal
// pointing up, centered on the origin.
func CreatePlane(width, depth float32) *Mesh {
	w := width / 2
	d := depth / 2

	vertices := []core.Vertex{
		{Position: math.Vec3{X: -w, Z: d}, Normal: math.Vec3Up, Color: core.ColorWhite},
		{Position: math.Vec3{X: w, Z: d}, Normal: math.Vec3Up, Color: core.ColorWhite},
		{Position: math.Vec3{X: w, Z: -d}, Normal: math.Vec3Up, Color: core.ColorWhite},
		{Position: math.Vec3{X: -w, Z: -d}, Normal: math.Vec3Up, Color: core.ColorWhite},
	}
	indices := []uint32{0, 1, 2, 2, 3, 0}

	return CreateMeshFromData("Plane", vertices, indices)
}

// CreatePyramid builds a square-based pyramid with the apex on +Y.
// Side normals are per-face, computed from the slant geometry.
func CreatePyramid(baseSize, height float32) *Mesh {
	s := baseSize / 2
	apex := math.Vec3{Y: height / 2}
	base := []math.Vec3{
		{X: -s, Y: -height / 2, Z: s},
		{X: s, Y: -height / 2, Z: s},
		{X: s, Y: -height / 2, Z: -s},
		{X: -s, Y: -height / 2, Z: -s},
	}

	vertices := make([]core.Vertex, 0, 16)
	indices := make([]uint32, 0, 18)

	for i := 0; i < 4; i++ {
		a := base[i]
		b := base[(i+1)%4]
		normal := b.Sub(a).Cross(apex.Sub(a)).Normalize()

		idx := uint32(len(vertices))
		vertices = append(vertices,
			core.Vertex{Position: a, Normal: normal, Color: core.ColorWhite},
			core.Vertex{Position: b, Normal: normal, Color: core.ColorWhite},
			core.Vertex{Position: apex, Normal: normal, Color: core.ColorWhite},
		)
		indices = append(indices, idx, idx+1, idx+2)
	}

	idx := uint32(len(vertices))
	for _, p := range []math.Vec3{base[0], base[3], base[2], base[1]} {
		vertices = append(vertices, core.Vertex{Position: p, Normal: math.Vec3Down, Color: core.ColorWhite})
	}
	indices = append(indices, idx, idx+1, idx+2, idx+2, idx+3, idx)

	return CreateMeshFromData("Pyramid", vertices, indices)
}
