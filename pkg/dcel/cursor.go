package dcel

import (
	"fmt"
	"iter"
)

// CursorOption configures a cursor.
type CursorOption func(*cursor)

// Limit caps the number of half-edges a cursor may yield before it stops
// with ErrIterationOverrun. The default cap is the mesh's half-edge count.
func Limit(n int) CursorOption {
	return func(c *cursor) {
		if n > 0 {
			c.limit = n
		}
	}
}

// cursor walks a closed chain of half-edges starting at anchor.
// step produces the successor of a half-edge; closes reports whether that
// successor ends the walk.
type cursor struct {
	m       *Mesh
	anchor  HalfEdgeID
	cur     HalfEdgeID
	limit   int
	steps   int
	started bool
	done    bool
	initErr error
	err     error

	step   func(HalfEdgeID) (HalfEdgeID, error)
	closes func(HalfEdgeID) bool
}

func (c *cursor) init(m *Mesh, anchor HalfEdgeID, initErr error, opts []CursorOption) {
	c.m = m
	c.anchor = anchor
	c.limit = len(m.edges)
	c.initErr = initErr
	for _, opt := range opts {
		opt(c)
	}
	c.Reset()
}

// Next returns the next half-edge of the walk.
// It returns false when the walk is complete or has failed; check Err.
func (c *cursor) Next() (HalfEdgeID, bool) {
	if c.done {
		return NoEdge, false
	}

	if !c.started {
		c.started = true
		if c.anchor == NoEdge {
			c.done = true
			return NoEdge, false
		}
		if !c.m.validEdge(c.anchor) {
			return c.fail(fmt.Errorf("%w: anchor %d is not a half-edge", ErrIterationOverrun, c.anchor))
		}
		c.cur = c.anchor
		c.steps = 1
		return c.cur, true
	}

	next, err := c.step(c.cur)
	if err != nil {
		return c.fail(err)
	}
	if c.closes(next) {
		c.done = true
		return NoEdge, false
	}
	if c.steps >= c.limit {
		return c.fail(fmt.Errorf("%w: no return to half-edge %d after %d steps",
			ErrIterationOverrun, c.anchor, c.steps))
	}

	c.steps++
	c.cur = next
	return next, true
}

// Err returns the error that stopped the walk, if any.
func (c *cursor) Err() error {
	return c.err
}

// Reset rewinds the cursor to its anchor.
func (c *cursor) Reset() {
	c.cur = NoEdge
	c.steps = 0
	c.started = false
	c.err = c.initErr
	c.done = c.initErr != nil
}

// All resets the cursor and yields every half-edge of the walk.
// Check Err once the loop ends.
func (c *cursor) All() iter.Seq[HalfEdgeID] {
	return func(yield func(HalfEdgeID) bool) {
		c.Reset()
		for {
			e, ok := c.Next()
			if !ok || !yield(e) {
				return
			}
		}
	}
}

func (c *cursor) fail(err error) (HalfEdgeID, bool) {
	c.err = err
	c.done = true
	return NoEdge, false
}

// next follows e.Next, failing on a broken link.
func (c *cursor) next(e HalfEdgeID) (HalfEdgeID, error) {
	n := c.m.edges[e].Next
	if !c.m.validEdge(n) {
		return NoEdge, fmt.Errorf("%w: half-edge %d has no next", ErrIterationOverrun, e)
	}
	return n, nil
}

// FaceCursor walks the half-edges of one face loop via Next.
type FaceCursor struct {
	cursor
	face FaceID
}

// FaceCursor returns a cursor over the half-edges bounding face f, starting
// at the face's anchor. An unknown face yields nothing and reports
// ErrOutOfRange.
func (m *Mesh) FaceCursor(f FaceID, opts ...CursorOption) *FaceCursor {
	c := &FaceCursor{face: f}
	c.step = c.next
	c.closes = func(e HalfEdgeID) bool { return e == c.anchor }

	if !m.validFace(f) {
		c.init(m, NoEdge, fmt.Errorf("face %d: %w", f, ErrOutOfRange), opts)
		return c
	}
	c.init(m, m.faces[f].Edge, nil, opts)
	return c
}

// Face returns the face being walked.
func (c *FaceCursor) Face() FaceID {
	return c.face
}

// BoundaryCursor returns a cursor over the boundary loop containing the
// boundary half-edge e. It reports ErrOutOfRange if e is unknown or borders
// a face.
func (m *Mesh) BoundaryCursor(e HalfEdgeID, opts ...CursorOption) *FaceCursor {
	c := &FaceCursor{face: NoFace}
	c.step = c.next
	c.closes = func(n HalfEdgeID) bool { return n == c.anchor }

	switch {
	case !m.validEdge(e):
		c.init(m, NoEdge, fmt.Errorf("half-edge %d: %w", e, ErrOutOfRange), opts)
	case !m.edges[e].IsBoundary():
		c.init(m, NoEdge, fmt.Errorf("half-edge %d bounds face %d, not the boundary: %w",
			e, m.edges[e].Face, ErrOutOfRange), opts)
	default:
		c.init(m, e, nil, opts)
	}
	return c
}

// VertexCursor walks the half-edges leaving one vertex via Twin then Next.
type VertexCursor struct {
	cursor
	vertex VertexID
	pair   EdgePair
}

// VertexCursor returns a cursor over the half-edges leaving vertex v,
// starting at the vertex's anchor. An isolated vertex yields nothing;
// an unknown vertex yields nothing and reports ErrOutOfRange.
func (m *Mesh) VertexCursor(v VertexID, opts ...CursorOption) *VertexCursor {
	c := &VertexCursor{vertex: v}
	c.step = c.rotate
	c.closes = func(e HalfEdgeID) bool { return c.m.Endpoints(e) == c.pair }

	if !m.validVertex(v) {
		c.init(m, NoEdge, fmt.Errorf("vertex %d: %w", v, ErrOutOfRange), opts)
		return c
	}
	anchor := m.vertices[v].Edge
	c.pair = m.Endpoints(anchor)
	c.init(m, anchor, nil, opts)
	return c
}

// Vertex returns the vertex being walked around.
func (c *VertexCursor) Vertex() VertexID {
	return c.vertex
}

func (c *VertexCursor) rotate(e HalfEdgeID) (HalfEdgeID, error) {
	twin := c.m.edges[e].Twin
	if !c.m.validEdge(twin) {
		return NoEdge, fmt.Errorf("%w: half-edge %d has no twin", ErrIterationOverrun, e)
	}
	n, err := c.next(twin)
	if err != nil {
		return NoEdge, err
	}
	if from := c.m.Origin(n); from != c.vertex {
		return NoEdge, fmt.Errorf("%w: rotation around vertex %d reached half-edge %d leaving vertex %d",
			ErrIterationOverrun, c.vertex, n, from)
	}
	return n, nil
}
