// Package scene loads shape layouts from YAML and builds them into geometry
// shapes.
package scene

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/meghashyamc/sat2d/geometry"
)

//go:embed default.yaml
var defaultSceneYAML []byte

// Shape kinds understood by Build.
const (
	KindPolygon       = "polygon"
	KindQuadrilateral = "quadrilateral"
	KindSquare        = "square"
	KindCircle        = "circle"
	KindCirclePolygon = "circle_polygon"
)

var (
	ErrUnknownKind = errors.New("unknown shape kind")
	ErrNoPlayer    = errors.New("scene has no player")
)

// ShapeSpec is one shape entry of a scene file.
type ShapeSpec struct {
	Name     string       `yaml:"name"`
	Kind     string       `yaml:"kind"`
	X        float64      `yaml:"x"`
	Y        float64      `yaml:"y"`
	Width    float64      `yaml:"width,omitempty"`
	Height   float64      `yaml:"height,omitempty"`
	Size     float64      `yaml:"size,omitempty"`
	R        float64      `yaml:"r,omitempty"`
	Vertices [][2]float64 `yaml:"vertices,omitempty"`
	// Rotation (radians) is applied about the shape's centre after it is built.
	Rotation float64 `yaml:"rotation,omitempty"`
}

// Scene is a player shape and the obstacles it is tested against.
type Scene struct {
	Player *ShapeSpec  `yaml:"player"`
	Shapes []ShapeSpec `yaml:"shapes"`
}

// NamedShape is a built shape together with its scene name.
type NamedShape struct {
	Name  string
	Shape geometry.Shape
}

// Built is a scene whose entries have been turned into shapes.
type Built struct {
	Player    NamedShape
	Obstacles []NamedShape
}

// Parse decodes a scene document.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if s.Player == nil {
		return nil, ErrNoPlayer
	}
	return &s, nil
}

// Load reads the scene at path, or the embedded default scene if path is empty.
func Load(path string) (*Scene, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing scene %s: %w", path, err)
	}
	return s, nil
}

// Default returns the embedded sandbox scene.
func Default() (*Scene, error) {
	return Parse(defaultSceneYAML)
}

// Build constructs fresh shapes for every entry. Unnamed obstacles are named
// after their kind and index.
func (s *Scene) Build() (*Built, error) {
	if s.Player == nil {
		return nil, ErrNoPlayer
	}

	player, err := s.Player.Build()
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}

	built := &Built{
		Player:    NamedShape{Name: nameOr(s.Player, "player"), Shape: player},
		Obstacles: make([]NamedShape, 0, len(s.Shapes)),
	}

	for i := range s.Shapes {
		spec := &s.Shapes[i]
		shape, err := spec.Build()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		built.Obstacles = append(built.Obstacles, NamedShape{
			Name:  nameOr(spec, fmt.Sprintf("%s-%d", spec.Kind, i)),
			Shape: shape,
		})
	}

	return built, nil
}

func nameOr(spec *ShapeSpec, fallback string) string {
	if spec.Name != "" {
		return spec.Name
	}
	return fallback
}

// Build constructs the shape described by spec.
func (spec *ShapeSpec) Build() (geometry.Shape, error) {
	var (
		shape geometry.Shape
		err   error
	)

	switch spec.Kind {
	case KindPolygon:
		vertices := make([]geometry.Vertex, len(spec.Vertices))
		for i, v := range spec.Vertices {
			vertices[i] = geometry.Vertex{X: v[0], Y: v[1]}
		}
		shape, err = geometry.NewPolygon(vertices)
	case KindQuadrilateral:
		shape, err = geometry.NewQuadrilateral(spec.X, spec.Y, spec.Width, spec.Height)
	case KindSquare:
		shape, err = geometry.NewSquare(spec.X, spec.Y, spec.Size)
	case KindCirclePolygon:
		shape, err = geometry.NewCirclePolygon(spec.X, spec.Y, spec.R)
	case KindCircle:
		shape, err = geometry.NewCircle(spec.X, spec.Y, spec.R)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, spec.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", spec.Kind, err)
	}

	if spec.Rotation != 0 {
		if p, ok := shape.(*geometry.Polygon); ok {
			x, y := p.Center()
			p.Rotate(x, y, spec.Rotation)
		}
	}

	return shape, nil
}
