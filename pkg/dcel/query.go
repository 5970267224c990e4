package dcel

// FaceVertexIDs returns the corners of face f in loop order, each as the
// destination of one half-edge of the loop.
func (m *Mesh) FaceVertexIDs(f FaceID) ([]VertexID, error) {
	c := m.FaceCursor(f)
	var ids []VertexID
	for e := range c.All() {
		ids = append(ids, m.edges[e].Vertex)
	}
	if err := c.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// VertexFan returns the (origin, destination) pairs of the half-edges
// leaving v, in rotation order.
func (m *Mesh) VertexFan(v VertexID) ([]EdgePair, error) {
	c := m.VertexCursor(v)
	var pairs []EdgePair
	for e := range c.All() {
		pairs = append(pairs, m.Endpoints(e))
	}
	if err := c.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}

// BoundaryLoops partitions the boundary half-edges into closed loops.
// Loops are ordered by their lowest half-edge id.
func (m *Mesh) BoundaryLoops() ([][]HalfEdgeID, error) {
	visited := make([]bool, len(m.edges))
	var loops [][]HalfEdgeID
	for i := range m.edges {
		if visited[i] || !m.edges[i].IsBoundary() {
			continue
		}

		c := m.BoundaryCursor(HalfEdgeID(i))
		var loop []HalfEdgeID
		for e := range c.All() {
			visited[e] = true
			loop = append(loop, e)
		}
		if err := c.Err(); err != nil {
			return nil, err
		}
		loops = append(loops, loop)
	}
	return loops, nil
}
