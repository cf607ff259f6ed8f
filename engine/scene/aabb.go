package scene

import (
	"github.com/spaghettifunk/slim/engine/math"
	"github.com/spaghettifunk/slim/engine/renderer/projection"
)

// AABB is an axis aligned bounding box.
type AABB struct {
	Min, Max math.Vec3
}

func (a AABB) Center() math.Vec3 {
	return a.Min.Add(a.Max).MulScalar(0.5)
}

func (a AABB) Size() math.Vec3 {
	return a.Max.Sub(a.Min)
}

func (a AABB) Contains(p math.Vec3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// Corners lists the eight corners of a, indexed like BBox vertices.
func (a AABB) Corners() [BBoxVertexCount]math.Vec3 {
	x, y, z := a.Min.X, a.Min.Y, a.Min.Z
	X, Y, Z := a.Max.X, a.Max.Y, a.Max.Z
	return [BBoxVertexCount]math.Vec3{
		FrontTopLeft:     {X: x, Y: Y, Z: Z},
		FrontTopRight:    {X: X, Y: Y, Z: Z},
		FrontBottomLeft:  {X: x, Y: y, Z: Z},
		FrontBottomRight: {X: X, Y: y, Z: Z},
		BackTopLeft:      {X: x, Y: Y, Z: z},
		BackTopRight:     {X: X, Y: Y, Z: z},
		BackBottomLeft:   {X: x, Y: y, Z: z},
		BackBottomRight:  {X: X, Y: y, Z: z},
	}
}

// AABB returns the object space bounds of the primitive's unit shape.
func (p *Primitive) AABB() AABB {
	extent := float32(1)
	if p.Type == PrimitiveTypeTetrahedron {
		extent = math.K_SQRT_THREE / 3
	}
	return AABB{
		Min: math.NewVec3Scalar(-extent),
		Max: math.NewVec3Scalar(extent),
	}
}

/**
 * @brief Returns the world space bounds of the primitive: the box around its
 * eight transformed object space corners.
 */
func (p *Primitive) WorldAABB() AABB {
	corners := p.AABB().Corners()
	first := p.ToWorld(corners[0])
	out := AABB{Min: first, Max: first}
	for _, c := range corners[1:] {
		w := p.ToWorld(c)
		out.Min = out.Min.Min(w)
		out.Max = out.Max.Max(w)
	}
	return out
}

// ------------------------------------------
// Bounding box wireframe
// ------------------------------------------

/** @brief Index of a bounding box corner. Front is +Z, top is +Y, right is +X. */
type BBoxVertex uint8

const (
	FrontTopLeft BBoxVertex = iota
	FrontTopRight
	FrontBottomLeft
	FrontBottomRight
	BackTopLeft
	BackTopRight
	BackBottomLeft
	BackBottomRight

	BBoxVertexCount = 8
)

// Index of a bounding box edge.
type BBoxEdge uint8

const (
	EdgeFrontTop BBoxEdge = iota
	EdgeFrontBottom
	EdgeFrontLeft
	EdgeFrontRight
	EdgeBackTop
	EdgeBackBottom
	EdgeBackLeft
	EdgeBackRight
	EdgeLeftBottom
	EdgeLeftTop
	EdgeRightBottom
	EdgeRightTop

	BBoxEdgeCount = 12
)

// Side is a set of box faces.
type Side uint8

const (
	Top Side = 1 << iota
	Bottom
	Left
	Right
	Front
	Back

	NoSide   Side = 0
	AllSides      = Top | Bottom | Left | Right | Front | Back
)

var bboxEdgeVertices = [BBoxEdgeCount][2]BBoxVertex{
	EdgeFrontTop:    {FrontTopLeft, FrontTopRight},
	EdgeFrontBottom: {FrontBottomLeft, FrontBottomRight},
	EdgeFrontLeft:   {FrontBottomLeft, FrontTopLeft},
	EdgeFrontRight:  {FrontBottomRight, FrontTopRight},
	EdgeBackTop:     {BackTopLeft, BackTopRight},
	EdgeBackBottom:  {BackBottomLeft, BackBottomRight},
	EdgeBackLeft:    {BackBottomLeft, BackTopLeft},
	EdgeBackRight:   {BackBottomRight, BackTopRight},
	EdgeLeftBottom:  {FrontBottomLeft, BackBottomLeft},
	EdgeLeftTop:     {FrontTopLeft, BackTopLeft},
	EdgeRightBottom: {FrontBottomRight, BackBottomRight},
	EdgeRightTop:    {FrontTopRight, BackTopRight},
}

var bboxEdgeSides = [BBoxEdgeCount]Side{
	EdgeFrontTop:    Front | Top,
	EdgeFrontBottom: Front | Bottom,
	EdgeFrontLeft:   Front | Left,
	EdgeFrontRight:  Front | Right,
	EdgeBackTop:     Back | Top,
	EdgeBackBottom:  Back | Bottom,
	EdgeBackLeft:    Back | Left,
	EdgeBackRight:   Back | Right,
	EdgeLeftBottom:  Left | Bottom,
	EdgeLeftTop:     Left | Top,
	EdgeRightBottom: Right | Bottom,
	EdgeRightTop:    Right | Top,
}

// EdgeSides returns the two faces that share edge e.
func EdgeSides(e BBoxEdge) Side {
	return bboxEdgeSides[e]
}

// EdgeVertices returns the corner indices edge e runs between.
func EdgeVertices(e BBoxEdge) (from, to BBoxVertex) {
	v := bboxEdgeVertices[e]
	return v[0], v[1]
}

/**
 * @brief The corners and edges of a box. Edges always mirror Vertices;
 * call SetEdges after changing a vertex.
 */
type BBox struct {
	Vertices [BBoxVertexCount]math.Vec3
	Edges    [BBoxEdgeCount]projection.WorldEdge
}

func NewBBox(a AABB) BBox {
	b := BBox{Vertices: a.Corners()}
	b.SetEdges()
	return b
}

func (b *BBox) SetEdges() {
	for i, v := range bboxEdgeVertices {
		b.Edges[i] = projection.WorldEdge{From: b.Vertices[v[0]], To: b.Vertices[v[1]]}
	}
}

/**
 * @brief Appends to dst the edges lying on any of the given sides and
 * returns the extended slice. An edge belongs to the two faces it borders.
 */
func (b *BBox) EdgesFor(sides Side, dst []projection.WorldEdge) []projection.WorldEdge {
	for i := range b.Edges {
		if bboxEdgeSides[i]&sides != 0 {
			dst = append(dst, b.Edges[i])
		}
	}
	return dst
}

// Transform moves every vertex through fn and refreshes the edges.
func (b *BBox) Transform(fn func(math.Vec3) math.Vec3) {
	for i := range b.Vertices {
		b.Vertices[i] = fn(b.Vertices[i])
	}
	b.SetEdges()
}
