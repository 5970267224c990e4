// dceltool is a CLI utility for building half-edge meshes from polygon soup
// and inspecting their faces, vertex fans and boundary.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/halfedge/internal/config"
	"github.com/Faultbox/halfedge/internal/logger"
	"github.com/Faultbox/halfedge/internal/report"
	"github.com/Faultbox/halfedge/internal/soup"
	"github.com/Faultbox/halfedge/pkg/dcel"
)

// errUsage marks a command line that needs the usage text.
var errUsage = errors.New("invalid usage")

// errInvalid is returned by validate when the mesh breaks an invariant.
var errInvalid = errors.New("mesh is invalid")

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	err = run(cfg, config.Args(), os.Stdout)
	logger.Sync()
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
			printUsage(os.Stderr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `dceltool - half-edge mesh utility

Usage:
  dceltool [flags] <command> [args]

Commands:
  info     <soup.yaml>            Show counts, Euler characteristic and boundary loops
  faces    <soup.yaml>            List the vertex ids of every face loop
  fans     <soup.yaml> [vertex]   List the (origin, destination) pairs around vertices
  boundary <soup.yaml>            List boundary vertices and loops
  validate <soup.yaml>            Build and check every mesh invariant
  demo                            Run every report on the built-in fixture
  fixture                         Print the built-in fixture as a soup document
  init-config [path]              Write the default config file

Flags:
  -config <path>   Config file (default: ./dceltool.yaml or the OS config dir)
  -format <name>   Output format: text or yaml
  -no-validate     Skip the invariant check after building
  -debug           Enable debug logging
  -log-file <path> Also write logs to this file

Examples:
  dceltool info mesh.yaml
  dceltool -format yaml fans mesh.yaml 3 6
  dceltool fixture > fan.yaml`)
}

// tool carries the settings shared by every command.
type tool struct {
	cfg    *config.Config
	format report.Format
	out    io.Writer
	log    *zap.Logger
}

// run executes one command line against cfg, writing reports to out.
func run(cfg *config.Config, args []string, out io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: no command given", errUsage)
	}

	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	t := &tool{
		cfg:    cfg,
		format: format,
		out:    out,
		log:    logger.Named("dceltool"),
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "info":
		return t.cmdInfo(args)
	case "faces":
		return t.cmdFaces(args)
	case "fans":
		return t.cmdFans(args)
	case "boundary":
		return t.cmdBoundary(args)
	case "validate":
		return t.cmdValidate(args)
	case "demo":
		return t.cmdDemo()
	case "fixture":
		return t.cmdFixture()
	case "init-config":
		return t.cmdInitConfig(args)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

// load reads the soup named by the first argument and builds its mesh.
func (t *tool) load(command string, args []string) (*soup.Soup, *dcel.Mesh, error) {
	if len(args) < 1 {
		return nil, nil, fmt.Errorf("%w: %s needs a soup file", errUsage, command)
	}

	s, err := soup.Load(args[0])
	if err != nil {
		return nil, nil, err
	}

	m, err := t.build(s, t.cfg.Build.Validate)
	if err != nil {
		return nil, nil, err
	}
	return s, m, nil
}

func (t *tool) build(s *soup.Soup, validate bool) (*dcel.Mesh, error) {
	m, err := s.Build(
		dcel.WithLogger(logger.Named("dcel")),
		dcel.WithValidation(validate),
	)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", s.Name, err)
	}
	t.log.Info("Mesh built",
		zap.String("soup", s.Name),
		zap.Int("vertices", m.NumVertices()),
		zap.Int("faces", m.NumFaces()),
		zap.Int("half_edges", m.NumHalfEdges()))
	return m, nil
}

func (t *tool) cmdInfo(args []string) error {
	s, m, err := t.load("info", args)
	if err != nil {
		return err
	}
	return report.Write(t.out, report.Summarize(s.Name, m), t.format)
}

func (t *tool) cmdFaces(args []string) error {
	_, m, err := t.load("faces", args)
	if err != nil {
		return err
	}
	faces, err := report.Faces(m)
	if err != nil {
		return err
	}
	return report.Write(t.out, faces, t.format)
}

func (t *tool) cmdFans(args []string) error {
	_, m, err := t.load("fans", args)
	if err != nil {
		return err
	}

	var vertices []dcel.VertexID
	for _, arg := range args[1:] {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("%w: vertex id %q is not a number", errUsage, arg)
		}
		vertices = append(vertices, dcel.VertexID(id))
	}

	fans, err := report.Fans(m, vertices...)
	if err != nil {
		return err
	}
	return report.Write(t.out, fans, t.format)
}

func (t *tool) cmdBoundary(args []string) error {
	_, m, err := t.load("boundary", args)
	if err != nil {
		return err
	}
	b, err := report.Boundary(m)
	if err != nil {
		return err
	}
	return report.Write(t.out, b, t.format)
}

// cmdValidate always runs the full check and lists every violation found,
// regardless of the build.validate setting.
func (t *tool) cmdValidate(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: validate needs a soup file", errUsage)
	}
	s, err := soup.Load(args[0])
	if err != nil {
		return err
	}

	m, err := t.build(s, false)
	if err != nil {
		return err
	}

	if err := m.Validate(); err != nil {
		violations := multierr.Errors(err)
		for _, v := range violations {
			fmt.Fprintf(t.out, "  %v\n", v)
		}
		return fmt.Errorf("%s: %d violation(s): %w", s.Name, len(violations), errInvalid)
	}

	fmt.Fprintf(t.out, "%s: ok (%d faces, %d half-edges)\n", s.Name, m.NumFaces(), m.NumHalfEdges())
	return nil
}

// demoReport gathers every report so YAML output stays one document.
type demoReport struct {
	Summary  report.Summary        `yaml:"summary"`
	Faces    report.FaceList       `yaml:"faces"`
	Fans     report.FanList        `yaml:"fans"`
	Boundary report.BoundaryReport `yaml:"boundary"`
}

func (t *tool) cmdDemo() error {
	s := soup.Fixture()
	m, err := t.build(s, t.cfg.Build.Validate)
	if err != nil {
		return err
	}

	d := demoReport{Summary: report.Summarize(s.Name, m)}
	if d.Faces, err = report.Faces(m); err != nil {
		return err
	}
	if d.Fans, err = report.Fans(m); err != nil {
		return err
	}
	if d.Boundary, err = report.Boundary(m); err != nil {
		return err
	}

	if t.format == report.YAML {
		return report.Write(t.out, d, t.format)
	}

	sections := []any{d.Summary, d.Faces, d.Fans, d.Boundary}
	for i, section := range sections {
		if i > 0 {
			fmt.Fprintln(t.out)
		}
		if err := report.Write(t.out, section, t.format); err != nil {
			return err
		}
	}
	return nil
}

func (t *tool) cmdFixture() error {
	data, err := soup.Fixture().Marshal()
	if err != nil {
		return err
	}
	_, err = t.out.Write(data)
	return err
}

func (t *tool) cmdInitConfig(args []string) error {
	var path string
	var err error
	if len(args) > 0 {
		path = args[0]
		err = t.cfg.SaveTo(path)
	} else {
		path, err = t.cfg.Save()
	}
	if err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintf(t.out, "Wrote config to %s\n", path)
	return nil
}
