// Package soup reads polygon soup documents for the mesh tool.
package soup

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/halfedge/pkg/dcel"
	"github.com/Faultbox/halfedge/pkg/math"
)

// Soup document errors.
var (
	ErrNoVertices    = errors.New("soup has no vertices")
	ErrBadCoordinate = errors.New("vertex must have exactly 2 coordinates")
)

// Soup is a list of vertex positions and the polygons that use them.
// The vertex id is the position in Vertices.
type Soup struct {
	Name     string      `yaml:"name,omitempty"`
	Vertices [][]float64 `yaml:"vertices"`
	Faces    [][]int     `yaml:"faces"`
}

// Parse decodes a YAML (or JSON) soup document.
func Parse(data []byte) (*Soup, error) {
	var s Soup
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if err := s.check(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a soup document from path.
func Load(path string) (*Soup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

func (s *Soup) check() error {
	if len(s.Vertices) == 0 {
		return ErrNoVertices
	}
	for i, v := range s.Vertices {
		if len(v) != 2 {
			return fmt.Errorf("vertex %d has %d values: %w", i, len(v), ErrBadCoordinate)
		}
	}
	return nil
}

// Coords returns the vertex positions.
func (s *Soup) Coords() []math.Vec2 {
	coords := make([]math.Vec2, len(s.Vertices))
	for i, v := range s.Vertices {
		coords[i] = math.V2(v[0], v[1])
	}
	return coords
}

// Build links the soup into a mesh.
func (s *Soup) Build(opts ...dcel.Option) (*dcel.Mesh, error) {
	return dcel.Build(s.Coords(), s.Faces, opts...)
}

// Marshal encodes the soup as YAML.
func (s *Soup) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Fixture returns seven vertices and six triangles fanned around vertex 3,
// a hexagon split from its centre.
func Fixture() *Soup {
	return &Soup{
		Name: "fan",
		Vertices: [][]float64{
			{1, 4}, {3, 4}, {0, 2}, {2, 2}, {4, 2}, {1, 0}, {3, 0},
		},
		Faces: [][]int{
			{0, 2, 3}, {0, 3, 1}, {1, 3, 4}, {2, 5, 3}, {3, 5, 6}, {3, 6, 4},
		},
	}
}
