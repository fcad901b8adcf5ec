package boxworld

import (
	"github.com/akmonengine/boxworld/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// TryMove attempts to move mover by delta, validating against every other collider.
//
// If mover already overlaps something, it is pushed out of the first such collider
// (in scan order) and the move is refused without being evaluated. Otherwise the box
// at the proposed position is tested, and the move is committed only when it is free.
// Events raised during the call are flushed before it returns.
func (w *World) TryMove(mover actor.Collider, delta mgl64.Vec3) bool {
	defer w.Events.flush()

	current := mover.GetAABB()
	for other := range w.Colliders(mover) {
		if current.Overlaps(other.GetAABB()) {
			push := w.resolvePenetration(mover, other)
			w.Events.emit(PenetrationResolvedEvent{Mover: mover, Other: other, Push: push})
			w.logger().Debug("penetration resolved",
				"mover", mover.GetName(), "other", other.GetName(), "push", push)

			return false
		}
	}

	from := mover.GetTransform().Position
	proposed := from.Add(delta)
	bounds := mover.AABBAt(proposed)
	for other := range w.Colliders(mover) {
		if bounds.Overlaps(other.GetAABB()) {
			w.Events.emit(MoveBlockedEvent{Mover: mover, Obstacle: other, Delta: delta})
			w.logger().Debug("move blocked",
				"mover", mover.GetName(), "obstacle", other.GetName(), "delta", delta)

			return false
		}
	}

	mover.SetPosition(proposed)
	w.Events.emit(MoveCommittedEvent{Mover: mover, From: from, To: proposed})

	return true
}

// resolvePenetration applies a single corrective push to mover and returns it
func (w *World) resolvePenetration(mover, other actor.Collider) mgl64.Vec3 {
	push := PenetrationPush(mover.GetAABB(), other.GetAABB(), w.Separation)
	mover.SetPosition(mover.GetTransform().Position.Add(push))

	return push
}

// PenetrationPush returns the translation moving a out of b along the axis of least
// overlap. Ties go to X, then Y, then Z. The push points away from b's center and is
// lengthened by separation.
func PenetrationPush(a, b actor.AABB, separation float64) mgl64.Vec3 {
	overlap := a.Overlap(b)

	axis := 2
	if overlap.X() < overlap.Y() && overlap.X() < overlap.Z() {
		axis = 0
	} else if overlap.Y() < overlap.Z() {
		axis = 1
	}

	distance := overlap[axis] + separation
	if a.Center()[axis] < b.Center()[axis] {
		distance = -distance
	}

	var push mgl64.Vec3
	push[axis] = distance

	return push
}
