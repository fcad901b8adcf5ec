package boxworld

import (
	"iter"
	"log/slog"

	"github.com/akmonengine/boxworld/actor"
)

// World is the flat collection of placed entities movement is validated against.
// Composite children are not listed here: they are reached through their parent.
// A World is not safe for concurrent use.
type World struct {
	// Top-level entities, in insertion order
	Entities []actor.Entity
	// Extra distance added to each penetration push, 0 pushes exactly to contact
	Separation float64
	Events     Events
	Logger     *slog.Logger
}

func NewWorld() *World {
	return &World{
		Events: NewEvents(),
	}
}

// AddEntity adds a top-level entity to the world
func (w *World) AddEntity(entity actor.Entity) {
	w.Entities = append(w.Entities, entity)
}

// RemoveEntity removes a top-level entity from the world
func (w *World) RemoveEntity(entity actor.Entity) {
	k := -1
	for i, e := range w.Entities {
		if e == entity {
			k = i
			break
		}
	}

	if k != -1 {
		w.Entities = append(w.Entities[:k], w.Entities[k+1:]...)
	}
}

// Clear tears the scene down
func (w *World) Clear() {
	clear(w.Entities)
	w.Entities = w.Entities[:0]
}

// Colliders iterates over every collider of the world, composite children included
// right after their parent, skipping exclude and anything without bounds.
// When exclude is itself a top-level entity, its children are skipped too.
func (w *World) Colliders(exclude actor.Entity) iter.Seq[actor.Collider] {
	return func(yield func(actor.Collider) bool) {
		for _, entity := range w.Entities {
			if entity == exclude {
				continue
			}
			if collider, ok := entity.(actor.Collider); ok {
				if !yield(collider) {
					return
				}
			}

			parent, ok := entity.(actor.Parent)
			if !ok {
				continue
			}
			for _, child := range parent.Children() {
				if child == exclude {
					continue
				}
				if collider, ok := child.(actor.Collider); ok {
					if !yield(collider) {
						return
					}
				}
			}
		}
	}
}

// Overlapping returns every collider currently overlapping collider, in scan order
func (w *World) Overlapping(collider actor.Collider) []actor.Collider {
	var overlapping []actor.Collider

	aabb := collider.GetAABB()
	for other := range w.Colliders(collider) {
		if aabb.Overlaps(other.GetAABB()) {
			overlapping = append(overlapping, other)
		}
	}

	return overlapping
}

func (w *World) logger() *slog.Logger {
	if w.Logger == nil {
		return slog.Default()
	}

	return w.Logger
}
