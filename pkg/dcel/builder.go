package dcel

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/halfedge/pkg/math"
)

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	log      *zap.Logger
	validate bool
}

// WithLogger sets the logger used for build diagnostics.
// By default Build logs nothing. Pass nil to restore that.
func WithLogger(l *zap.Logger) Option {
	return func(o *buildOptions) {
		if l == nil {
			l = zap.NewNop()
		}
		o.log = l
	}
}

// WithValidation controls whether Build runs Validate on the finished mesh.
// Enabled by default.
func WithValidation(on bool) Option {
	return func(o *buildOptions) {
		o.validate = on
	}
}

// Build links a polygon soup into a half-edge mesh.
//
// coords[i] is the position of vertex i. Each polygon lists the ids of its
// corners in any order; the builder sorts them counter-clockwise around the
// polygon's centroid, so every polygon must be convex. Polygons are not
// modified.
//
// Build fails with an error wrapping ErrMalformedTopology if the soup is
// not a 2-manifold with boundary: polygons with fewer than three corners,
// unknown or repeated vertex ids, corners that cannot be ordered around the
// centroid, edges shared by more than two polygons and vertices where
// separate fans touch. No mesh is returned on failure.
func Build(coords []math.Vec2, polygons [][]int, opts ...Option) (*Mesh, error) {
	o := buildOptions{log: zap.NewNop(), validate: true}
	for _, opt := range opts {
		opt(&o)
	}

	b := newBuilder(coords, polygons, o.log)
	for fi, poly := range polygons {
		if err := b.addPolygon(FaceID(fi), poly); err != nil {
			return nil, err
		}
	}
	b.log.Debug("polygons linked",
		zap.Int("faces", len(b.mesh.faces)),
		zap.Int("half_edges", len(b.mesh.edges)))

	if err := b.closeBoundary(); err != nil {
		return nil, err
	}

	if o.validate {
		if err := b.mesh.Validate(); err != nil {
			return nil, err
		}
	}

	b.log.Debug("mesh built",
		zap.Int("vertices", len(b.mesh.vertices)),
		zap.Int("faces", len(b.mesh.faces)),
		zap.Int("half_edges", len(b.mesh.edges)))
	return b.mesh, nil
}

type builder struct {
	mesh  *Mesh
	edges map[EdgePair]HalfEdgeID
	log   *zap.Logger
}

func newBuilder(coords []math.Vec2, polygons [][]int, log *zap.Logger) *builder {
	sides := 0
	for _, poly := range polygons {
		sides += len(poly)
	}

	m := &Mesh{
		vertices: make([]Vertex, len(coords)),
		faces:    make([]Face, 0, len(polygons)),
		edges:    make([]HalfEdge, 0, sides),
	}
	for i, c := range coords {
		m.vertices[i] = Vertex{ID: VertexID(i), Pos: c, Edge: NoEdge}
	}

	return &builder{
		mesh:  m,
		edges: make(map[EdgePair]HalfEdgeID, sides),
		log:   log,
	}
}

// addPolygon creates the face for one polygon and links its loop.
func (b *builder) addPolygon(face FaceID, poly []int) error {
	ids, err := b.sortCorners(face, poly)
	if err != nil {
		return err
	}

	m := b.mesh
	loop := make([]HalfEdgeID, len(ids))
	anchor := NoEdge
	for i, u := range ids {
		v := ids[(i+1)%len(ids)]
		e := b.halfEdge(u, v)
		if owner := m.edges[e].Face; owner != NoFace {
			return fmt.Errorf("%w: polygon %d: edge (%d, %d) already bounds polygon %d",
				ErrMalformedTopology, face, u, v, owner)
		}
		loop[i] = e

		if anchor == NoEdge {
			anchor = e
		}
		if m.vertices[u].Edge == NoEdge {
			m.vertices[u].Edge = e
		}
	}

	for i, e := range loop {
		m.edges[e].Next = loop[(i+1)%len(loop)]
		m.edges[e].Face = face
	}
	m.faces = append(m.faces, Face{ID: face, Edge: anchor})
	return nil
}

// halfEdge returns the half-edge u->v, creating it and its twin if the
// undirected edge is new.
func (b *builder) halfEdge(u, v VertexID) HalfEdgeID {
	if e, ok := b.edges[EdgePair{u, v}]; ok {
		return e
	}

	m := b.mesh
	e := HalfEdgeID(len(m.edges))
	twin := e + 1
	m.edges = append(m.edges,
		HalfEdge{ID: e, Vertex: v, Face: NoFace, Next: NoEdge, Twin: twin},
		HalfEdge{ID: twin, Vertex: u, Face: NoFace, Next: NoEdge, Twin: e},
	)
	b.edges[EdgePair{u, v}] = e
	b.edges[EdgePair{v, u}] = twin
	return e
}

// sortCorners checks a polygon's vertex ids and orders them by angle
// around the centroid, counter-clockwise from the negative x-axis.
func (b *builder) sortCorners(face FaceID, poly []int) ([]VertexID, error) {
	if len(poly) < 3 {
		return nil, fmt.Errorf("%w: polygon %d has %d vertices, need at least 3",
			ErrMalformedTopology, face, len(poly))
	}

	m := b.mesh
	seen := make(map[int]bool, len(poly))
	pts := make([]math.Vec2, len(poly))
	for i, id := range poly {
		if id < 0 || id >= len(m.vertices) {
			return nil, fmt.Errorf("%w: polygon %d: vertex %d not in [0, %d)",
				ErrMalformedTopology, face, id, len(m.vertices))
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: polygon %d: vertex %d repeated",
				ErrMalformedTopology, face, id)
		}
		seen[id] = true

		pts[i] = m.vertices[id].Pos
		if !pts[i].IsFinite() {
			return nil, fmt.Errorf("%w: polygon %d: vertex %d has non-finite position %v",
				ErrMalformedTopology, face, id, pts[i])
		}
	}

	type corner struct {
		id    VertexID
		angle float64
	}
	centroid := math.Centroid(pts)
	corners := make([]corner, len(poly))
	for i, id := range poly {
		d := pts[i].Sub(centroid)
		if d.IsZero() {
			return nil, fmt.Errorf("%w: polygon %d: vertex %d lies on the centroid",
				ErrMalformedTopology, face, id)
		}
		corners[i] = corner{VertexID(id), d.Angle()}
	}

	sort.Slice(corners, func(i, j int) bool {
		return corners[i].angle < corners[j].angle
	})

	ids := make([]VertexID, len(corners))
	for i, c := range corners {
		if i > 0 && c.angle == corners[i-1].angle {
			return nil, fmt.Errorf("%w: polygon %d: vertices %d and %d are at the same angle from the centroid",
				ErrMalformedTopology, face, corners[i-1].id, c.id)
		}
		ids[i] = c.id
	}
	return ids, nil
}

// closeBoundary anchors boundary vertices on their outgoing boundary
// half-edge and links the boundary half-edges into closed loops.
func (b *builder) closeBoundary() error {
	m := b.mesh

	var boundary []HalfEdgeID
	outgoing := make([][]HalfEdgeID, len(m.vertices))
	for i := range m.edges {
		if !m.edges[i].IsBoundary() {
			continue
		}
		e := HalfEdgeID(i)
		from := m.Origin(e)
		outgoing[from] = append(outgoing[from], e)
		boundary = append(boundary, e)
	}

	for v, out := range outgoing {
		switch {
		case len(out) == 0:
			continue
		case len(out) > 1:
			return fmt.Errorf("%w: vertex %d has %d outgoing boundary edges (separate fans meet here)",
				ErrMalformedTopology, v, len(out))
		}
		m.vertices[v].Edge = out[0]
	}

	for _, e := range boundary {
		to := m.edges[e].Vertex
		out := outgoing[to]
		if len(out) == 0 {
			return fmt.Errorf("%w: boundary edge %v has no unused continuation at vertex %d",
				ErrMalformedTopology, m.Endpoints(e), to)
		}
		m.edges[e].Next = out[len(out)-1]
		outgoing[to] = out[:len(out)-1]
	}

	b.log.Debug("boundary closed", zap.Int("boundary_edges", len(boundary)))
	return nil
}
