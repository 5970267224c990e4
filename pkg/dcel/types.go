// Package dcel implements a doubly-connected edge list (half-edge mesh)
// built from a planar polygon soup.
//
// Every undirected edge is stored as two oppositely directed half-edges.
// Vertices, half-edges and faces live in a single arena owned by Mesh and
// refer to each other by index, so the cyclic topology needs no pointers.
package dcel

import (
	"fmt"

	"github.com/Faultbox/halfedge/pkg/math"
)

// VertexID indexes Mesh vertices. It equals the coordinate's input position.
type VertexID int

// HalfEdgeID indexes Mesh half-edges.
type HalfEdgeID int

// FaceID indexes Mesh faces. It equals the polygon's input position.
type FaceID int

// Absent references.
const (
	NoVertex VertexID   = -1
	NoEdge   HalfEdgeID = -1
	NoFace   FaceID     = -1
)

// Vertex is a mesh corner.
type Vertex struct {
	ID  VertexID
	Pos math.Vec2
	// Edge is one half-edge leaving this vertex. If the vertex touches the
	// boundary, Edge is a boundary half-edge. NoEdge for isolated vertices.
	Edge HalfEdgeID
}

// IsIsolated reports whether no polygon uses the vertex.
func (v Vertex) IsIsolated() bool {
	return v.Edge == NoEdge
}

// HalfEdge is one direction of an undirected edge.
type HalfEdge struct {
	ID HalfEdgeID
	// Vertex is the destination.
	Vertex VertexID
	// Face is the polygon on this half-edge's side, NoFace on the boundary.
	Face FaceID
	// Next follows this half-edge around its face, or around the boundary.
	Next HalfEdgeID
	Twin HalfEdgeID
}

// IsBoundary reports whether the half-edge borders no polygon.
// Conceptually it belongs to the virtual outer face.
func (e HalfEdge) IsBoundary() bool {
	return e.Face == NoFace
}

// Face is a polygon of the input soup.
type Face struct {
	ID FaceID
	// Edge is the anchor of the face loop.
	Edge HalfEdgeID
}

// EdgePair is the (origin, destination) pair of a half-edge.
type EdgePair struct {
	From, To VertexID
}

// String returns "(from, to)".
func (p EdgePair) String() string {
	return fmt.Sprintf("(%d, %d)", p.From, p.To)
}

// Reverse returns the pair of the twin half-edge.
func (p EdgePair) Reverse() EdgePair {
	return EdgePair{p.To, p.From}
}
