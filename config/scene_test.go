package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScene(t *testing.T) {
	scene, err := LoadScene("../assets/scenes/palms.yaml")
	require.NoError(t, err)

	assert.Equal(t, 0.0001, scene.Separation)
	assert.Equal(t, "duck", scene.Player.Name)
	assert.Equal(t, 5.0, scene.Player.Speed)
	assert.Equal(t, []float64{-2, 0, -2}, scene.Player.Bounds.Min)

	require.Len(t, scene.Entities, 3)
	assert.Equal(t, KindObject, scene.Entities[0].Kind)
	assert.Equal(t, "crate.obj", scene.Entities[1].Bounds.Mesh)

	palm := scene.Entities[2]
	assert.Equal(t, KindComposite, palm.Kind)
	assert.Equal(t, []float64{5, 0, 5}, palm.Position)
	require.Len(t, palm.Children, 2)
	assert.Equal(t, "leaves", palm.Children[0].Name)

	require.Len(t, scene.Script, 2)
	assert.Equal(t, 60, scene.Script[0].Frames)
	assert.Equal(t, 0.016, scene.Script[0].DT)
}

func TestLoadScene_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadScene("testdata/missing.yaml")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scene.yaml")
		require.NoError(t, os.WriteFile(path, []byte("player: [unclosed"), 0644))

		_, err := LoadScene(path)
		assert.ErrorContains(t, err, "failed to parse scene config")
	})
	t.Run("invalid scene", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scene.yaml")
		require.NoError(t, os.WriteFile(path, []byte("player:\n  name: duck\n"), 0644))

		_, err := LoadScene(path)
		assert.ErrorIs(t, err, ErrInvalidScene)
	})
}

func validScene() Scene {
	return Scene{
		Player: PlayerConfig{
			Name:   "duck",
			Bounds: &BoundsConfig{Min: []float64{-1, -1, -1}, Max: []float64{1, 1, 1}},
		},
	}
}

func TestSceneValidate(t *testing.T) {
	unitBounds := &BoundsConfig{Min: []float64{0, 0, 0}, Max: []float64{1, 1, 1}}

	tests := []struct {
		name   string
		modify func(s *Scene)
		valid  bool
	}{
		{"minimal", func(s *Scene) {}, true},
		{"negative separation", func(s *Scene) { s.Separation = -1 }, false},
		{"negative speed", func(s *Scene) { s.Player.Speed = -1 }, false},
		{"player without bounds", func(s *Scene) { s.Player.Bounds = nil }, false},
		{"short position", func(s *Scene) { s.Player.Position = []float64{1, 2} }, false},
		{"mesh and min max", func(s *Scene) {
			s.Player.Bounds = &BoundsConfig{Mesh: "a.obj", Min: []float64{0, 0, 0}}
		}, false},
		{"mesh bounds", func(s *Scene) { s.Player.Bounds = &BoundsConfig{Mesh: "a.obj"} }, true},
		{"missing max", func(s *Scene) { s.Player.Bounds = &BoundsConfig{Min: []float64{0, 0, 0}} }, false},
		{"unknown kind", func(s *Scene) {
			s.Entities = []EntityConfig{{Name: "x", Kind: "light"}}
		}, false},
		{"object with bounds", func(s *Scene) {
			s.Entities = []EntityConfig{{Name: "x", Kind: KindObject, Bounds: unitBounds}}
		}, false},
		{"collidable without bounds", func(s *Scene) {
			s.Entities = []EntityConfig{{Name: "x", Kind: KindCollidable}}
		}, false},
		{"children on collidable", func(s *Scene) {
			s.Entities = []EntityConfig{{Name: "x", Kind: KindCollidable, Bounds: unitBounds,
				Children: []EntityConfig{{Name: "y", Kind: KindObject}}}}
		}, false},
		{"nested composite", func(s *Scene) {
			s.Entities = []EntityConfig{{Name: "x", Kind: KindComposite, Bounds: unitBounds,
				Children: []EntityConfig{{Name: "y", Kind: KindComposite, Bounds: unitBounds}}}}
		}, false},
		{"invalid child", func(s *Scene) {
			s.Entities = []EntityConfig{{Name: "x", Kind: KindComposite, Bounds: unitBounds,
				Children: []EntityConfig{{Name: "y", Kind: KindCollidable}}}}
		}, false},
		{"composite with children", func(s *Scene) {
			s.Entities = []EntityConfig{{Name: "x", Kind: KindComposite, Bounds: unitBounds,
				Children: []EntityConfig{
					{Name: "y", Kind: KindCollidable, Bounds: unitBounds},
					{Name: "z", Kind: KindObject},
				}}}
		}, true},
		{"zero frames", func(s *Scene) {
			s.Script = []StepConfig{{Direction: []float64{1, 0, 0}, Frames: 0, DT: 0.1}}
		}, false},
		{"zero dt", func(s *Scene) {
			s.Script = []StepConfig{{Direction: []float64{1, 0, 0}, Frames: 1}}
		}, false},
		{"idle step", func(s *Scene) {
			s.Script = []StepConfig{{Frames: 10, DT: 0.1}}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene := validScene()
			tt.modify(&scene)

			err := scene.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidScene)
			}
		})
	}
}

func TestVec3(t *testing.T) {
	def := mgl64.Vec3{1, 1, 1}

	assert.Equal(t, mgl64.Vec3{1, 2, 3}, Vec3([]float64{1, 2, 3}, def))
	assert.Equal(t, def, Vec3(nil, def))
}
