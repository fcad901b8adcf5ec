package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// Entity kinds
const (
	KindObject     = "object"
	KindCollidable = "collidable"
	KindComposite  = "composite"
)

var ErrInvalidScene = errors.New("invalid scene")

// Scene describes a world, its player and a scripted input sequence.
type Scene struct {
	// Separation is added to every penetration push, see boxworld.World
	Separation float64        `yaml:"separation"`
	Player     PlayerConfig   `yaml:"player"`
	Entities   []EntityConfig `yaml:"entities"`
	Script     []StepConfig   `yaml:"script"`
}

// TransformConfig holds position, rotation (Euler degrees) and scale.
// Omitted vectors default to the identity transform.
type TransformConfig struct {
	Position []float64 `yaml:"position"`
	Rotation []float64 `yaml:"rotation"`
	Scale    []float64 `yaml:"scale"`
}

// BoundsConfig gives mesh-space bounds either explicitly or through an OBJ file,
// relative to the scene file.
type BoundsConfig struct {
	Min  []float64 `yaml:"min"`
	Max  []float64 `yaml:"max"`
	Mesh string    `yaml:"mesh"`
}

// EntityConfig describes a world entity. Children of a composite are positioned
// relative to the composite origin.
type EntityConfig struct {
	Name            string `yaml:"name"`
	Kind            string `yaml:"kind"`
	TransformConfig `yaml:",inline"`
	Bounds          *BoundsConfig  `yaml:"bounds"`
	Children        []EntityConfig `yaml:"children"`
}

type PlayerConfig struct {
	Name            string `yaml:"name"`
	TransformConfig `yaml:",inline"`
	Bounds          *BoundsConfig `yaml:"bounds"`
	// Speed in units per second, 0 keeps the default
	Speed float64 `yaml:"speed"`
}

// StepConfig holds the same input direction for a number of frames
type StepConfig struct {
	Direction []float64 `yaml:"direction"`
	Frames    int       `yaml:"frames"`
	DT        float64   `yaml:"dt"`
}

// LoadScene reads and validates a YAML scene file
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config: %w", err)
	}

	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("failed to parse scene config: %w", err)
	}

	if err := scene.Validate(); err != nil {
		return nil, err
	}

	return &scene, nil
}

// Validate checks the scene is complete and well-formed
func (s *Scene) Validate() error {
	if err := s.Player.validate(); err != nil {
		return fmt.Errorf("%w: player: %w", ErrInvalidScene, err)
	}
	if s.Separation < 0 {
		return fmt.Errorf("%w: separation must not be negative", ErrInvalidScene)
	}

	for i, e := range s.Entities {
		if err := e.validate(true); err != nil {
			return fmt.Errorf("%w: entity %d (%s): %w", ErrInvalidScene, i, e.Name, err)
		}
	}

	for i, step := range s.Script {
		if err := step.validate(); err != nil {
			return fmt.Errorf("%w: script step %d: %w", ErrInvalidScene, i, err)
		}
	}

	return nil
}

func (p PlayerConfig) validate() error {
	if p.Bounds == nil {
		return errors.New("bounds are required")
	}
	if p.Speed < 0 {
		return errors.New("speed must not be negative")
	}
	if err := p.TransformConfig.validate(); err != nil {
		return err
	}

	return p.Bounds.validate()
}

func (e EntityConfig) validate(topLevel bool) error {
	switch e.Kind {
	case KindObject:
		if e.Bounds != nil {
			return errors.New("objects have no bounds")
		}
	case KindCollidable, KindComposite:
		if e.Bounds == nil {
			return errors.New("bounds are required")
		}
		if err := e.Bounds.validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown kind %q", e.Kind)
	}

	if len(e.Children) > 0 && e.Kind != KindComposite {
		return fmt.Errorf("only composites have children")
	}
	if e.Kind == KindComposite && !topLevel {
		return errors.New("composites cannot be nested")
	}
	if err := e.TransformConfig.validate(); err != nil {
		return err
	}

	for i, child := range e.Children {
		if err := child.validate(false); err != nil {
			return fmt.Errorf("child %d (%s): %w", i, child.Name, err)
		}
	}

	return nil
}

func (b BoundsConfig) validate() error {
	if b.Mesh != "" {
		if len(b.Min) > 0 || len(b.Max) > 0 {
			return errors.New("bounds take either a mesh or min/max, not both")
		}
		return nil
	}
	if err := validateVector("min", b.Min, true); err != nil {
		return err
	}

	return validateVector("max", b.Max, true)
}

func (t TransformConfig) validate() error {
	if err := validateVector("position", t.Position, false); err != nil {
		return err
	}
	if err := validateVector("rotation", t.Rotation, false); err != nil {
		return err
	}

	return validateVector("scale", t.Scale, false)
}

func (s StepConfig) validate() error {
	if s.Frames <= 0 {
		return errors.New("frames must be positive")
	}
	if s.DT <= 0 {
		return errors.New("dt must be positive")
	}

	return validateVector("direction", s.Direction, false)
}

func validateVector(name string, v []float64, required bool) error {
	if len(v) == 0 && !required {
		return nil
	}
	if len(v) != 3 {
		return fmt.Errorf("%s needs 3 components, got %d", name, len(v))
	}

	return nil
}

// Vec3 converts a validated vector, falling back to def when it was omitted
func Vec3(v []float64, def mgl64.Vec3) mgl64.Vec3 {
	if len(v) != 3 {
		return def
	}

	return mgl64.Vec3{v[0], v[1], v[2]}
}
