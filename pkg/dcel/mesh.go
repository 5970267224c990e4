package dcel

import "iter"

// Mesh owns every vertex, half-edge and face of a built half-edge mesh.
// A Mesh is immutable once Build returns it and is safe for concurrent reads.
type Mesh struct {
	vertices []Vertex
	faces    []Face
	edges    []HalfEdge
}

// NumVertices returns the number of vertices, isolated ones included.
func (m *Mesh) NumVertices() int { return len(m.vertices) }

// NumFaces returns the number of faces.
func (m *Mesh) NumFaces() int { return len(m.faces) }

// NumHalfEdges returns the number of half-edges, twice the undirected edge count.
func (m *Mesh) NumHalfEdges() int { return len(m.edges) }

// Vertex returns the vertex at index i.
// Returns false if i is out of bounds.
func (m *Mesh) Vertex(i int) (Vertex, bool) {
	if i < 0 || i >= len(m.vertices) {
		return Vertex{}, false
	}
	return m.vertices[i], true
}

// Face returns the face at index i.
// Returns false if i is out of bounds.
func (m *Mesh) Face(i int) (Face, bool) {
	if i < 0 || i >= len(m.faces) {
		return Face{}, false
	}
	return m.faces[i], true
}

// HalfEdge returns the half-edge at index i.
// Returns false if i is out of bounds.
func (m *Mesh) HalfEdge(i int) (HalfEdge, bool) {
	if i < 0 || i >= len(m.edges) {
		return HalfEdge{}, false
	}
	return m.edges[i], true
}

// Origin returns the vertex e leaves from, NoVertex if e is out of bounds.
func (m *Mesh) Origin(e HalfEdgeID) VertexID {
	if !m.validEdge(e) || !m.validEdge(m.edges[e].Twin) {
		return NoVertex
	}
	return m.edges[m.edges[e].Twin].Vertex
}

// Endpoints returns the (origin, destination) pair of e.
// Both ends are NoVertex if e is out of bounds.
func (m *Mesh) Endpoints(e HalfEdgeID) EdgePair {
	if !m.validEdge(e) {
		return EdgePair{NoVertex, NoVertex}
	}
	return EdgePair{From: m.Origin(e), To: m.edges[e].Vertex}
}

// BoundaryVertices returns every vertex touching a boundary half-edge,
// once each, in ascending id order.
func (m *Mesh) BoundaryVertices() []Vertex {
	seen := make([]bool, len(m.vertices))
	for i := range m.edges {
		if !m.edges[i].IsBoundary() {
			continue
		}
		seen[m.edges[i].Vertex] = true
		if from := m.Origin(HalfEdgeID(i)); from != NoVertex {
			seen[from] = true
		}
	}

	var out []Vertex
	for id, ok := range seen {
		if ok {
			out = append(out, m.vertices[id])
		}
	}
	return out
}

// BoundaryEdges returns every half-edge with no face, in arena order.
func (m *Mesh) BoundaryEdges() []HalfEdge {
	var out []HalfEdge
	for _, e := range m.edges {
		if e.IsBoundary() {
			out = append(out, e)
		}
	}
	return out
}

// Vertices iterates over copies of all vertices in id order.
func (m *Mesh) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for _, v := range m.vertices {
			if !yield(v) {
				return
			}
		}
	}
}

// Faces iterates over copies of all faces in id order.
func (m *Mesh) Faces() iter.Seq[Face] {
	return func(yield func(Face) bool) {
		for _, f := range m.faces {
			if !yield(f) {
				return
			}
		}
	}
}

// HalfEdges iterates over copies of all half-edges in arena order.
func (m *Mesh) HalfEdges() iter.Seq[HalfEdge] {
	return func(yield func(HalfEdge) bool) {
		for _, e := range m.edges {
			if !yield(e) {
				return
			}
		}
	}
}

// Stats summarizes mesh counts.
type Stats struct {
	Vertices         int
	IsolatedVertices int
	Faces            int
	HalfEdges        int
	Edges            int
	BoundaryEdges    int
	BoundaryLoops    int
	// Euler is V - E + F over used vertices, excluding the outer region.
	// 1 for a single disk.
	Euler int
}

// Stats computes summary counts for the mesh.
func (m *Mesh) Stats() Stats {
	s := Stats{
		Vertices:  len(m.vertices),
		Faces:     len(m.faces),
		HalfEdges: len(m.edges),
		Edges:     len(m.edges) / 2,
	}
	for _, v := range m.vertices {
		if v.IsIsolated() {
			s.IsolatedVertices++
		}
	}

	visited := make([]bool, len(m.edges))
	for i, e := range m.edges {
		if !e.IsBoundary() {
			continue
		}
		s.BoundaryEdges++
		if visited[i] {
			continue
		}
		s.BoundaryLoops++
		for cur, steps := HalfEdgeID(i), 0; m.validEdge(cur) && !visited[cur] && steps < len(m.edges); steps++ {
			visited[cur] = true
			cur = m.edges[cur].Next
		}
	}

	s.Euler = (s.Vertices - s.IsolatedVertices) - s.Edges + s.Faces
	return s
}

func (m *Mesh) validEdge(e HalfEdgeID) bool {
	return e >= 0 && int(e) < len(m.edges)
}

func (m *Mesh) validVertex(v VertexID) bool {
	return v >= 0 && int(v) < len(m.vertices)
}

func (m *Mesh) validFace(f FaceID) bool {
	return f >= 0 && int(f) < len(m.faces)
}
