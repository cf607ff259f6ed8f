package scene

import (
	"github.com/spaghettifunk/slim/engine/math"
	"github.com/spaghettifunk/slim/engine/renderer/projection"
)

// Mesh is a wireframe in object space: vertices plus index pairs.
type Mesh struct {
	Vertices []math.Vec3
	Edges    [][2]int
}

var (
	// BoxMesh spans [-1, 1] on every axis, laid out like a BBox.
	BoxMesh = newBoxMesh()

	// QuadMesh is the bottom face of BoxMesh flattened onto y = 0.
	QuadMesh = &Mesh{
		Vertices: []math.Vec3{
			{X: -1, Y: 0, Z: -1},
			{X: 1, Y: 0, Z: -1},
			{X: 1, Y: 0, Z: 1},
			{X: -1, Y: 0, Z: 1},
		},
		Edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
	}

	// TetrahedronMesh is a regular tetrahedron inscribed in the box of half size sqrt(3)/3.
	TetrahedronMesh = newTetrahedronMesh()
)

func newBoxMesh() *Mesh {
	corners := AABB{Min: math.NewVec3Scalar(-1), Max: math.NewVec3Scalar(1)}.Corners()
	m := &Mesh{Vertices: corners[:]}
	for e := BBoxEdge(0); e < BBoxEdgeCount; e++ {
		from, to := EdgeVertices(e)
		m.Edges = append(m.Edges, [2]int{int(from), int(to)})
	}
	return m
}

func newTetrahedronMesh() *Mesh {
	a := math.K_SQRT_THREE / 3
	return &Mesh{
		Vertices: []math.Vec3{
			{X: a, Y: a, Z: a},
			{X: a, Y: -a, Z: -a},
			{X: -a, Y: a, Z: -a},
			{X: -a, Y: -a, Z: a},
		},
		Edges: [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}},
	}
}

// MeshFor returns the shared mesh of a primitive type, nil for PrimitiveTypeNone.
func MeshFor(t PrimitiveType) *Mesh {
	switch t {
	case PrimitiveTypeQuad:
		return QuadMesh
	case PrimitiveTypeBox:
		return BoxMesh
	case PrimitiveTypeTetrahedron:
		return TetrahedronMesh
	}
	return nil
}

/**
 * @brief Appends the primitive's wireframe in world space to dst. Every
 * vertex is transformed once, then shared by the edges that use it.
 */
func (p *Primitive) WorldEdges(dst []projection.WorldEdge) []projection.WorldEdge {
	mesh := MeshFor(p.Type)
	if mesh == nil {
		return dst
	}
	var buf [BBoxVertexCount]math.Vec3
	world := buf[:0]
	for _, v := range mesh.Vertices {
		world = append(world, p.ToWorld(v))
	}
	for _, e := range mesh.Edges {
		dst = append(dst, projection.WorldEdge{From: world[e[0]], To: world[e[1]]})
	}
	return dst
}

// WorldBBox returns the bounding box of the primitive's object space shape
// carried into world space, so it turns with the primitive.
func (p *Primitive) WorldBBox() BBox {
	b := NewBBox(p.AABB())
	b.Transform(p.ToWorld)
	return b
}
