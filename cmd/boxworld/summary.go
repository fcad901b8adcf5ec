package main

import (
	"fmt"
	"log/slog"

	"github.com/akmonengine/boxworld"
	"github.com/akmonengine/boxworld/scene"
)

// summary counts the outcome of every frame of a run
type summary struct {
	frames   int
	moved    int
	blocked  int
	resolved int
}

func (s *summary) subscribe(events *boxworld.Events, logger *slog.Logger) {
	events.Subscribe(boxworld.MOVE_BLOCKED, func(event boxworld.Event) {
		s.blocked++
	})
	events.Subscribe(boxworld.PENETRATION_RESOLVED, func(event boxworld.Event) {
		e := event.(boxworld.PenetrationResolvedEvent)
		s.resolved++
		logger.Info("pushed out of overlap", "other", e.Other.GetName(), "push", e.Push)
	})
}

func (s *summary) add(results []scene.FrameResult) {
	s.frames += len(results)
	for _, r := range results {
		if r.Moved {
			s.moved++
		}
	}
}

func (s summary) String() string {
	return fmt.Sprintf("frames: %d, moved: %d, blocked: %d, resolved: %d",
		s.frames, s.moved, s.blocked, s.resolved)
}
