package main

import (
	"log/slog"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akmonengine/boxworld/scene"
)

func TestSummary_CountsEvents(t *testing.T) {
	s, err := scene.Load("../../assets/scenes/palms.yaml", nil)
	require.NoError(t, err)
	defer s.Close()

	var sum summary
	sum.subscribe(&s.World.Events, slog.Default())
	sum.add(s.Run())

	assert.Equal(t, 120, sum.frames)
	assert.Positive(t, sum.blocked)
	assert.Zero(t, sum.resolved)
	assert.Equal(t, sum.frames, sum.moved+sum.blocked+sum.resolved)
}

func TestSummary_CountsResolutionsSeparately(t *testing.T) {
	s, err := scene.Load("../../assets/scenes/palms.yaml", nil)
	require.NoError(t, err)
	defer s.Close()

	var sum summary
	sum.subscribe(&s.World.Events, slog.Default())

	// drop the player inside the crate: the first update pushes it out
	s.Player.SetPosition(mgl64.Vec3{-3, 0, 0})
	moved := s.Update(mgl64.Vec3{1, 0, 0}, 0.016)

	assert.False(t, moved)
	assert.Equal(t, 1, sum.resolved)
	assert.Zero(t, sum.blocked)
	assert.Equal(t, "frames: 0, moved: 0, blocked: 0, resolved: 1", sum.String())
}
