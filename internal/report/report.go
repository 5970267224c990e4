// Package report renders mesh query results as text or YAML.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/halfedge/pkg/dcel"
)

// Format selects how reports are written.
type Format string

// Output formats.
const (
	Text Format = "text"
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case Text, "":
		return Text, nil
	case YAML, "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q (want text or yaml)", ErrUnknownFormat, s)
	}
}

// textWriter is implemented by reports with a human-readable form.
type textWriter interface {
	writeText(w io.Writer) error
}

// Write renders v to w in the given format.
func Write(w io.Writer, v any, format Format) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case Text:
		t, ok := v.(textWriter)
		if !ok {
			return fmt.Errorf("%T has no text form", v)
		}
		return t.writeText(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Summary holds mesh counts.
type Summary struct {
	Name             string `yaml:"name,omitempty"`
	Vertices         int    `yaml:"vertices"`
	IsolatedVertices int    `yaml:"isolated_vertices"`
	Faces            int    `yaml:"faces"`
	HalfEdges        int    `yaml:"half_edges"`
	Edges            int    `yaml:"edges"`
	BoundaryEdges    int    `yaml:"boundary_edges"`
	BoundaryLoops    int    `yaml:"boundary_loops"`
	Euler            int    `yaml:"euler"`
}

// Summarize collects the counts of m.
func Summarize(name string, m *dcel.Mesh) Summary {
	s := m.Stats()
	return Summary{
		Name:             name,
		Vertices:         s.Vertices,
		IsolatedVertices: s.IsolatedVertices,
		Faces:            s.Faces,
		HalfEdges:        s.HalfEdges,
		Edges:            s.Edges,
		BoundaryEdges:    s.BoundaryEdges,
		BoundaryLoops:    s.BoundaryLoops,
		Euler:            s.Euler,
	}
}

func (s Summary) writeText(w io.Writer) error {
	p := message.NewPrinter(language.English)
	if s.Name != "" {
		p.Fprintf(w, "Mesh:           %s\n", s.Name)
	}
	p.Fprintf(w, "Vertices:       %d", s.Vertices)
	if s.IsolatedVertices > 0 {
		p.Fprintf(w, " (%d isolated)", s.IsolatedVertices)
	}
	p.Fprintln(w)
	p.Fprintf(w, "Faces:          %d\n", s.Faces)
	p.Fprintf(w, "Edges:          %d (%d half-edges)\n", s.Edges, s.HalfEdges)
	p.Fprintf(w, "Boundary edges: %d in %d loop(s)\n", s.BoundaryEdges, s.BoundaryLoops)
	_, err := p.Fprintf(w, "Euler:          %d\n", s.Euler)
	return err
}

// FaceReport lists the corners of one face in loop order.
type FaceReport struct {
	Face     int   `yaml:"face"`
	Vertices []int `yaml:"vertices,flow"`
}

// FaceList is the report of every face.
type FaceList []FaceReport

// Faces walks every face loop of m.
func Faces(m *dcel.Mesh) (FaceList, error) {
	out := make(FaceList, 0, m.NumFaces())
	for f := range m.Faces() {
		ids, err := m.FaceVertexIDs(f.ID)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", f.ID, err)
		}
		out = append(out, FaceReport{Face: int(f.ID), Vertices: ints(ids)})
	}
	return out, nil
}

func (l FaceList) writeText(w io.Writer) error {
	for _, f := range l {
		if _, err := fmt.Fprintf(w, "Face %d: %s\n", f.Face, join(f.Vertices)); err != nil {
			return err
		}
	}
	return nil
}

// FanReport lists the (origin, destination) pairs leaving one vertex.
type FanReport struct {
	Vertex int      `yaml:"vertex"`
	Edges  [][2]int `yaml:"edges,flow"`
}

// FanList is the report of several vertex fans.
type FanList []FanReport

// Fans walks the fan of each given vertex, or of every vertex if none are
// given.
func Fans(m *dcel.Mesh, vertices ...dcel.VertexID) (FanList, error) {
	if len(vertices) == 0 {
		for v := range m.Vertices() {
			vertices = append(vertices, v.ID)
		}
	}

	out := make(FanList, 0, len(vertices))
	for _, v := range vertices {
		pairs, err := m.VertexFan(v)
		if err != nil {
			return nil, err
		}
		r := FanReport{Vertex: int(v), Edges: make([][2]int, len(pairs))}
		for i, p := range pairs {
			r.Edges[i] = [2]int{int(p.From), int(p.To)}
		}
		out = append(out, r)
	}
	return out, nil
}

func (l FanList) writeText(w io.Writer) error {
	for _, f := range l {
		if _, err := fmt.Fprintf(w, "Vertex #%d\n", f.Vertex); err != nil {
			return err
		}
		for _, e := range f.Edges {
			if _, err := fmt.Fprintf(w, "\tEdge (%d, %d)\n", e[0], e[1]); err != nil {
				return err
			}
		}
	}
	return nil
}

// BoundaryReport lists the boundary vertices and the vertex ring of each
// boundary loop.
type BoundaryReport struct {
	Vertices []int   `yaml:"vertices,flow"`
	Loops    [][]int `yaml:"loops"`
}

// Boundary collects the boundary of m.
func Boundary(m *dcel.Mesh) (BoundaryReport, error) {
	var r BoundaryReport
	for _, v := range m.BoundaryVertices() {
		r.Vertices = append(r.Vertices, int(v.ID))
	}

	loops, err := m.BoundaryLoops()
	if err != nil {
		return BoundaryReport{}, err
	}
	for _, loop := range loops {
		ring := make([]int, len(loop))
		for i, e := range loop {
			ring[i] = int(m.Origin(e))
		}
		r.Loops = append(r.Loops, ring)
	}
	return r, nil
}

func (r BoundaryReport) writeText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Boundary vertices: %s\n", join(r.Vertices)); err != nil {
		return err
	}
	for i, loop := range r.Loops {
		if _, err := fmt.Fprintf(w, "Loop %d: %s\n", i, join(loop)); err != nil {
			return err
		}
	}
	return nil
}

func ints(ids []dcel.VertexID) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}

func join(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, " ")
}
