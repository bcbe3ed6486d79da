// Package scenario defines the YAML scenario format: a list of field
// sources, an observer specification and a field selector.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/magsim/internal/engine"
	"github.com/san-kum/magsim/internal/field"
	"github.com/san-kum/magsim/internal/geometry"
	"github.com/san-kum/magsim/internal/magmath"
	"github.com/san-kum/magsim/internal/source"
)

const (
	DefaultField      = "B"
	DefaultScanPoints = 101
	DefaultGridSize   = 41
)

type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec) V() magmath.Vec3 { return magmath.Vec3{X: v.X, Y: v.Y, Z: v.Z} }

type SourceConfig struct {
	Type     string `yaml:"type"` // circle, polyline, dipole, sphere, cuboid, cylinder, tetrahedron, triangle
	Position Vec    `yaml:"position"`

	Diameter float64 `yaml:"diameter"`
	Current  float64 `yaml:"current"`
	Height   float64 `yaml:"height"`

	Moment       Vec     `yaml:"moment"`
	Dimensions   Vec     `yaml:"dimensions"`
	Polarization Vec     `yaml:"polarization"`
	AxialJ       float64 `yaml:"axial_polarization"`

	Vertices []Vec `yaml:"vertices"`
}

type ObserverConfig struct {
	Points []Vec `yaml:"points"`

	Scan *ScanConfig `yaml:"scan"`
	Grid *GridConfig `yaml:"grid"`
}

type ScanConfig struct {
	Start  Vec `yaml:"start"`
	End    Vec `yaml:"end"`
	Points int `yaml:"points"`
}

type GridConfig struct {
	Origin Vec `yaml:"origin"`
	U      Vec `yaml:"u"`
	V      Vec `yaml:"v"`
	NU     int `yaml:"nu"`
	NV     int `yaml:"nv"`
}

type Scenario struct {
	Name      string         `yaml:"name"`
	Field     string         `yaml:"field"`
	Sources   []SourceConfig `yaml:"sources"`
	Observers ObserverConfig `yaml:"observers"`
}

func Default() *Scenario {
	return &Scenario{
		Name:  "loop",
		Field: DefaultField,
		Sources: []SourceConfig{
			{Type: "circle", Diameter: 1, Current: 1},
		},
		Observers: ObserverConfig{
			Scan: &ScanConfig{
				Start:  Vec{Z: -1},
				End:    Vec{Z: 1},
				Points: DefaultScanPoints,
			},
		},
	}
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc := Default()
	sc.Sources = nil
	sc.Observers = ObserverConfig{}
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return sc, nil
}

func Save(path string, sc *Scenario) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// FieldType resolves the scenario's field selector.
func (s *Scenario) FieldType() (field.FieldType, error) {
	name := s.Field
	if name == "" {
		name = DefaultField
	}
	return field.ParseFieldType(name)
}

// BuildSources turns the configured source list into evaluable sources.
func (s *Scenario) BuildSources() ([]source.Source, error) {
	if len(s.Sources) == 0 {
		return nil, fmt.Errorf("scenario %q has no sources", s.Name)
	}
	out := make([]source.Source, 0, len(s.Sources))
	for i, sc := range s.Sources {
		src, err := buildSource(sc)
		if err != nil {
			return nil, fmt.Errorf("source %d: %w", i, err)
		}
		out = append(out, src)
	}
	return out, nil
}

func buildSource(sc SourceConfig) (source.Source, error) {
	pos := sc.Position.V()
	switch sc.Type {
	case "circle":
		return &source.CircleLoop{Position: pos, Diameter: sc.Diameter, Current: sc.Current}, nil
	case "polyline":
		verts := make([]magmath.Vec3, len(sc.Vertices))
		for i, v := range sc.Vertices {
			verts[i] = v.V()
		}
		return &source.Polyline{Position: pos, Vertices: verts, Current: sc.Current}, nil
	case "dipole":
		return &source.Dipole{Position: pos, Moment: sc.Moment.V()}, nil
	case "sphere":
		return &source.SphereMagnet{Position: pos, Diameter: sc.Diameter, Polarization: sc.Polarization.V()}, nil
	case "cuboid":
		return &source.CuboidMagnet{Position: pos, Dimensions: sc.Dimensions.V(), Polarization: sc.Polarization.V()}, nil
	case "cylinder":
		return &source.CylinderMagnet{Position: pos, Diameter: sc.Diameter, Height: sc.Height, Polarization: sc.AxialJ}, nil
	case "tetrahedron":
		if len(sc.Vertices) != 4 {
			return nil, fmt.Errorf("tetrahedron needs 4 vertices, got %d", len(sc.Vertices))
		}
		var tet geometry.Tetrahedron
		for i, v := range sc.Vertices {
			tet[i] = v.V()
		}
		return &source.TetrahedronMagnet{Position: pos, Vertices: tet, Polarization: sc.Polarization.V()}, nil
	case "triangle":
		if len(sc.Vertices) != 3 {
			return nil, fmt.Errorf("triangle needs 3 vertices, got %d", len(sc.Vertices))
		}
		var tri geometry.Triangle
		for i, v := range sc.Vertices {
			tri[i] = v.V()
		}
		return &source.TriangleFacet{Position: pos, Vertices: tri, Polarization: sc.Polarization.V()}, nil
	default:
		return nil, fmt.Errorf("unknown source type %q", sc.Type)
	}
}

// BuildObservers expands the observer spec into a point batch. Exactly
// one of points/scan/grid must be set.
func (s *Scenario) BuildObservers() ([]magmath.Vec3, error) {
	set := 0
	if len(s.Observers.Points) > 0 {
		set++
	}
	if s.Observers.Scan != nil {
		set++
	}
	if s.Observers.Grid != nil {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("scenario %q must set exactly one of observers.points, observers.scan, observers.grid", s.Name)
	}

	switch {
	case len(s.Observers.Points) > 0:
		pts := make([]magmath.Vec3, len(s.Observers.Points))
		for i, p := range s.Observers.Points {
			pts[i] = p.V()
		}
		return pts, nil
	case s.Observers.Scan != nil:
		n := s.Observers.Scan.Points
		if n <= 0 {
			n = DefaultScanPoints
		}
		return engine.LineObservers(s.Observers.Scan.Start.V(), s.Observers.Scan.End.V(), n), nil
	default:
		g := s.Observers.Grid
		nu, nv := g.NU, g.NV
		if nu <= 0 {
			nu = DefaultGridSize
		}
		if nv <= 0 {
			nv = DefaultGridSize
		}
		return engine.GridObservers(g.Origin.V(), g.U.V(), g.V.V(), nu, nv), nil
	}
}
