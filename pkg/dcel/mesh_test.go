package dcel

import (
	"testing"

	"github.com/Faultbox/halfedge/pkg/math"
)

func TestMesh_Lookup(t *testing.T) {
	m := mustBuild(t, fanCoords, fanPolygons)

	tests := []struct {
		name string
		i    int
		ok   bool
	}{
		{"first", 0, true},
		{"last", 6, true},
		{"negative", -1, false},
		{"past end", 7, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := m.Vertex(tt.i)
			if ok != tt.ok {
				t.Fatalf("Vertex(%d) ok = %v, want %v", tt.i, ok, tt.ok)
			}
			if ok && int(v.ID) != tt.i {
				t.Errorf("Vertex(%d).ID = %d", tt.i, v.ID)
			}
		})
	}

	if _, ok := m.Face(5); !ok {
		t.Error("expected face 5")
	}
	if _, ok := m.Face(6); ok {
		t.Error("expected no face 6")
	}
	if _, ok := m.HalfEdge(24); ok {
		t.Error("expected no half-edge 24")
	}
}

func TestMesh_VertexPositions(t *testing.T) {
	m := mustBuild(t, fanCoords, fanPolygons)
	for v := range m.Vertices() {
		if v.Pos != fanCoords[v.ID] {
			t.Errorf("vertex %d at %v, want %v", v.ID, v.Pos, fanCoords[v.ID])
		}
	}
}

func TestMesh_Endpoints(t *testing.T) {
	m := mustBuild(t, fanCoords, fanPolygons)

	for e := range m.HalfEdges() {
		p := m.Endpoints(e.ID)
		if p.To != e.Vertex {
			t.Errorf("half-edge %d: destination %d, want %d", e.ID, p.To, e.Vertex)
		}
		if tp := m.Endpoints(e.Twin); tp != p.Reverse() {
			t.Errorf("half-edge %d %v: twin has %v", e.ID, p, tp)
		}
	}

	if p := m.Endpoints(-1); p.From != NoVertex || p.To != NoVertex {
		t.Errorf("Endpoints(-1) = %v, want absent", p)
	}
	if v := m.Origin(99); v != NoVertex {
		t.Errorf("Origin(99) = %d, want NoVertex", v)
	}
}

func TestMesh_BoundaryQueries(t *testing.T) {
	m := mustBuild(t, fanCoords, fanPolygons)

	verts := m.BoundaryVertices()
	want := []VertexID{0, 1, 2, 4, 5, 6}
	if len(verts) != len(want) {
		t.Fatalf("expected %d boundary vertices, got %d", len(want), len(verts))
	}
	for i, v := range verts {
		if v.ID != want[i] {
			t.Errorf("boundary vertex %d = %d, want %d", i, v.ID, want[i])
		}
	}

	edges := m.BoundaryEdges()
	if len(edges) != 6 {
		t.Errorf("expected 6 boundary half-edges, got %d", len(edges))
	}
	for _, e := range edges {
		if e.Face != NoFace {
			t.Errorf("boundary half-edge %d has face %d", e.ID, e.Face)
		}
	}
}

func TestMesh_Stats(t *testing.T) {
	m := mustBuild(t, fanCoords, fanPolygons)
	s := m.Stats()

	want := Stats{
		Vertices:      7,
		Faces:         6,
		HalfEdges:     24,
		Edges:         12,
		BoundaryEdges: 6,
		BoundaryLoops: 1,
		Euler:         1,
	}
	if s != want {
		t.Errorf("Stats() = %+v, want %+v", s, want)
	}
}

func TestMesh_StatsTwoComponents(t *testing.T) {
	coords := []math.Vec2{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1},
		{X: 5, Y: 0}, {X: 6, Y: 0}, {X: 5, Y: 1},
		{X: 9, Y: 9},
	}
	m := mustBuild(t, coords, [][]int{{0, 1, 2}, {3, 4, 5}})
	s := m.Stats()

	want := Stats{
		Vertices:         7,
		IsolatedVertices: 1,
		Faces:            2,
		HalfEdges:        12,
		Edges:            6,
		BoundaryEdges:    6,
		BoundaryLoops:    2,
		Euler:            2,
	}
	if s != want {
		t.Errorf("Stats() = %+v, want %+v", s, want)
	}

	loops, err := m.BoundaryLoops()
	if err != nil {
		t.Fatalf("BoundaryLoops failed: %v", err)
	}
	if len(loops) != 2 || len(loops[0]) != 3 || len(loops[1]) != 3 {
		t.Errorf("expected two loops of 3, got %v", loops)
	}
}
