package soup

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/halfedge/pkg/dcel"
)

func TestParse(t *testing.T) {
	data := []byte(`
name: square
vertices:
  - [0, 0]
  - [1, 0]
  - [1, 1]
  - [0, 1]
faces:
  - [0, 1, 2, 3]
`)
	s, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if s.Name != "square" {
		t.Errorf("expected name 'square', got %s", s.Name)
	}
	if len(s.Vertices) != 4 {
		t.Errorf("expected 4 vertices, got %d", len(s.Vertices))
	}
	if len(s.Faces) != 1 || len(s.Faces[0]) != 4 {
		t.Errorf("expected one quad, got %v", s.Faces)
	}

	coords := s.Coords()
	if coords[2].X != 1 || coords[2].Y != 1 {
		t.Errorf("expected vertex 2 at (1,1), got %v", coords[2])
	}
}

func TestParseJSON(t *testing.T) {
	data := []byte(`{"vertices": [[0, 0], [2, 0], [0, 2]], "faces": [[2, 1, 0]]}`)
	s, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	m, err := s.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if m.NumFaces() != 1 {
		t.Errorf("expected 1 face, got %d", m.NumFaces())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"empty", ``, ErrNoVertices},
		{"no vertices", "faces:\n  - [0, 1, 2]\n", ErrNoVertices},
		{"short vertex", "vertices:\n  - [0]\n", ErrBadCoordinate},
		{"long vertex", "vertices:\n  - [0, 1, 2]\n", ErrBadCoordinate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := Parse([]byte("vertices: [[0, x]]\n")); err == nil {
		t.Error("expected error for non-numeric coordinate, got nil")
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "fan.yaml")

	data, err := Fixture().Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write soup: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Name != "fan" {
		t.Errorf("expected name 'fan', got %s", s.Name)
	}
	if len(s.Faces) != 6 {
		t.Errorf("expected 6 faces, got %d", len(s.Faces))
	}
}

func TestLoadNamesUnnamedSoup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.yaml")
	if err := os.WriteFile(path, []byte("vertices: [[0, 0], [1, 0], [0, 1]]\nfaces: [[0, 1, 2]]\n"), 0644); err != nil {
		t.Fatalf("failed to write soup: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Name != path {
		t.Errorf("expected name %s, got %s", path, s.Name)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("/nonexistent/path/soup.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestFixtureBuilds(t *testing.T) {
	m, err := Fixture().Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	fan, err := m.VertexFan(3)
	if err != nil {
		t.Fatalf("VertexFan failed: %v", err)
	}
	if len(fan) != 6 {
		t.Errorf("expected 6 half-edges around vertex 3, got %d", len(fan))
	}
}

func TestBuildMalformed(t *testing.T) {
	s := &Soup{
		Vertices: [][]float64{{0, 0}, {1, 0}},
		Faces:    [][]int{{0, 1}},
	}
	if _, err := s.Build(); !errors.Is(err, dcel.ErrMalformedTopology) {
		t.Errorf("expected ErrMalformedTopology, got %v", err)
	}
}
