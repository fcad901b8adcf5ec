// Package scene assembles a World from a scene config and drives it frame by frame.
package scene

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/akmonengine/boxworld"
	"github.com/akmonengine/boxworld/actor"
	"github.com/akmonengine/boxworld/config"
	"github.com/akmonengine/boxworld/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

type Scene struct {
	World  *boxworld.World
	Player *actor.Player
	Script []config.StepConfig
}

// FrameResult is the outcome of one update of the player
type FrameResult struct {
	Frame    int
	Moved    bool
	Position mgl64.Vec3
}

// Load reads a scene file; mesh paths are resolved against its directory
func Load(path string, logger *slog.Logger) (*Scene, error) {
	cfg, err := config.LoadScene(path)
	if err != nil {
		return nil, err
	}

	return Build(cfg, filepath.Dir(path), logger)
}

// Build creates the world and player described by cfg
func Build(cfg *config.Scene, baseDir string, logger *slog.Logger) (*Scene, error) {
	world := boxworld.NewWorld()
	world.Separation = cfg.Separation
	world.Logger = logger

	meshMin, meshMax, err := resolveBounds(cfg.Player.Bounds, baseDir)
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	player := actor.NewPlayer(cfg.Player.Name, meshMin, meshMax)
	if cfg.Player.Speed > 0 {
		player.MovementSpeed = cfg.Player.Speed
	}
	applyTransform(player, cfg.Player.TransformConfig)

	for _, e := range cfg.Entities {
		entity, err := buildEntity(e, baseDir)
		if err != nil {
			return nil, fmt.Errorf("entity %s: %w", e.Name, err)
		}
		world.AddEntity(entity)
	}

	return &Scene{
		World:  world,
		Player: player,
		Script: cfg.Script,
	}, nil
}

func buildEntity(cfg config.EntityConfig, baseDir string) (actor.Entity, error) {
	var entity actor.Entity

	switch cfg.Kind {
	case config.KindObject:
		entity = actor.NewObject(cfg.Name)
	case config.KindCollidable:
		meshMin, meshMax, err := resolveBounds(cfg.Bounds, baseDir)
		if err != nil {
			return nil, err
		}
		entity = actor.NewCollidable(cfg.Name, meshMin, meshMax)
	case config.KindComposite:
		meshMin, meshMax, err := resolveBounds(cfg.Bounds, baseDir)
		if err != nil {
			return nil, err
		}
		composite := actor.NewComposite(cfg.Name, meshMin, meshMax)
		// children are configured relative to the parent origin: placing the
		// parent afterwards carries them along
		for _, c := range cfg.Children {
			child, err := buildEntity(c, baseDir)
			if err != nil {
				return nil, fmt.Errorf("child %s: %w", c.Name, err)
			}
			composite.AddChild(child)
		}
		entity = composite
	default:
		return nil, fmt.Errorf("unknown kind %q", cfg.Kind)
	}

	applyTransform(entity, cfg.TransformConfig)
	return entity, nil
}

func applyTransform(entity actor.Entity, cfg config.TransformConfig) {
	identity := actor.NewTransform()

	entity.SetScale(config.Vec3(cfg.Scale, identity.Scale))
	entity.SetRotation(config.Vec3(cfg.Rotation, identity.Rotation))
	entity.SetPosition(config.Vec3(cfg.Position, identity.Position))
}

func resolveBounds(cfg *config.BoundsConfig, baseDir string) (mgl64.Vec3, mgl64.Vec3, error) {
	if cfg == nil {
		return mgl64.Vec3{}, mgl64.Vec3{}, fmt.Errorf("missing bounds")
	}
	if cfg.Mesh == "" {
		return config.Vec3(cfg.Min, mgl64.Vec3{}), config.Vec3(cfg.Max, mgl64.Vec3{}), nil
	}

	aabb, err := mesh.LoadBounds(filepath.Join(baseDir, cfg.Mesh))
	if err != nil {
		return mgl64.Vec3{}, mgl64.Vec3{}, err
	}

	return aabb.Min, aabb.Max, nil
}

// Update moves the player by direction for one frame of dt seconds
func (s *Scene) Update(direction mgl64.Vec3, dt float64) bool {
	return s.World.TryMove(s.Player, s.Player.Displacement(direction, dt))
}

// Run plays the whole script and returns one result per frame
func (s *Scene) Run() []FrameResult {
	var results []FrameResult

	frame := 0
	for _, step := range s.Script {
		direction := config.Vec3(step.Direction, mgl64.Vec3{})
		for range step.Frames {
			moved := s.Update(direction, step.DT)
			results = append(results, FrameResult{
				Frame:    frame,
				Moved:    moved,
				Position: s.Player.GetTransform().Position,
			})
			frame++
		}
	}

	return results
}

// Close tears the world down
func (s *Scene) Close() {
	s.World.Clear()
}
