package dcel

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate checks the structural invariants of the mesh and returns every
// violation found, combined. Build runs it unless WithValidation(false) is
// given; meshes returned by Build always pass.
//
// Each violation wraps ErrMalformedTopology.
func (m *Mesh) Validate() error {
	if err := m.validateLinks(); err != nil {
		// Loops are not safe to walk meaningfully over broken links.
		return err
	}
	return multierr.Append(m.validateFaces(), m.validateVertices())
}

func violation(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrMalformedTopology}, args...)...)
}

func (m *Mesh) validateLinks() error {
	var err error
	for i, e := range m.edges {
		id := HalfEdgeID(i)
		if e.ID != id {
			err = multierr.Append(err, violation("half-edge %d stored with id %d", id, e.ID))
		}
		if !m.validVertex(e.Vertex) {
			err = multierr.Append(err, violation("half-edge %d points to unknown vertex %d", id, e.Vertex))
			continue
		}
		if e.Face != NoFace && !m.validFace(e.Face) {
			err = multierr.Append(err, violation("half-edge %d bounds unknown face %d", id, e.Face))
		}

		switch {
		case !m.validEdge(e.Twin):
			err = multierr.Append(err, violation("half-edge %d has no twin", id))
			continue
		case e.Twin == id:
			err = multierr.Append(err, violation("half-edge %d is its own twin", id))
			continue
		case m.edges[e.Twin].Twin != id:
			err = multierr.Append(err, violation("half-edge %d: twin %d does not point back", id, e.Twin))
			continue
		}

		if !m.validEdge(e.Next) {
			err = multierr.Append(err, violation("half-edge %d has no next", id))
			continue
		}
		next := m.edges[e.Next]
		if !m.validEdge(next.Twin) {
			// Reported when the loop reaches that half-edge.
			continue
		}
		if from := m.Origin(e.Next); from != e.Vertex {
			err = multierr.Append(err, violation("half-edge %d ends at vertex %d but next %d leaves vertex %d",
				id, e.Vertex, e.Next, from))
		}
		if next.Face != e.Face {
			err = multierr.Append(err, violation("half-edge %d on face %d has next %d on face %d",
				id, e.Face, e.Next, next.Face))
		}
	}
	return err
}

func (m *Mesh) validateFaces() error {
	sides := make([]int, len(m.faces))
	for _, e := range m.edges {
		if !e.IsBoundary() {
			sides[e.Face]++
		}
	}

	var err error
	for i, f := range m.faces {
		id := FaceID(i)
		if f.ID != id {
			err = multierr.Append(err, violation("face %d stored with id %d", id, f.ID))
		}
		if !m.validEdge(f.Edge) || m.edges[f.Edge].Face != id {
			err = multierr.Append(err, violation("face %d anchor %d does not bound it", id, f.Edge))
			continue
		}

		c := m.FaceCursor(id)
		n := 0
		for range c.All() {
			n++
		}
		switch {
		case c.Err() != nil:
			err = multierr.Append(err, violation("face %d: %w", id, c.Err()))
		case n != sides[id]:
			err = multierr.Append(err, violation("face %d loop has %d half-edges, %d bound it", id, n, sides[id]))
		}
	}
	return err
}

func (m *Mesh) validateVertices() error {
	degree := make([]int, len(m.vertices))
	onBoundary := make([]bool, len(m.vertices))
	for i, e := range m.edges {
		from := m.Origin(HalfEdgeID(i))
		degree[from]++
		if e.IsBoundary() {
			onBoundary[from] = true
			onBoundary[e.Vertex] = true
		}
	}

	var err error
	for i, v := range m.vertices {
		id := VertexID(i)
		if v.ID != id {
			err = multierr.Append(err, violation("vertex %d stored with id %d", id, v.ID))
		}
		if v.IsIsolated() {
			if degree[id] > 0 {
				err = multierr.Append(err, violation("vertex %d has %d half-edges but no anchor", id, degree[id]))
			}
			continue
		}
		if !m.validEdge(v.Edge) || m.Origin(v.Edge) != id {
			err = multierr.Append(err, violation("vertex %d anchor %d does not leave it", id, v.Edge))
			continue
		}
		if onBoundary[id] && !m.edges[v.Edge].IsBoundary() {
			err = multierr.Append(err, violation("boundary vertex %d anchored on interior half-edge %d", id, v.Edge))
		}

		c := m.VertexCursor(id)
		n := 0
		for range c.All() {
			n++
		}
		switch {
		case c.Err() != nil:
			err = multierr.Append(err, violation("vertex %d: %w", id, c.Err()))
		case n != degree[id]:
			err = multierr.Append(err, violation("vertex %d fan has %d half-edges, %d leave it", id, n, degree[id]))
		}
	}
	return err
}
