package actor

import "github.com/go-gl/mathgl/mgl64"

// Collidable is an Object with mesh-space bounds, captured once at load time
type Collidable struct {
	Object
	MeshMinBounds mgl64.Vec3
	MeshMaxBounds mgl64.Vec3
}

func NewCollidable(name string, meshMinBounds, meshMaxBounds mgl64.Vec3) *Collidable {
	return &Collidable{
		Object:        *NewObject(name),
		MeshMinBounds: meshMinBounds,
		MeshMaxBounds: meshMaxBounds,
	}
}

// GetAABB computes the world-space box from the current position and scale
func (c *Collidable) GetAABB() AABB {
	return c.AABBAt(c.Transform.Position)
}

// AABBAt computes position + meshBounds * scale.
// A negative or zero scale may invert the box, so corners are normalized per axis.
func (c *Collidable) AABBAt(position mgl64.Vec3) AABB {
	return NewAABB(
		position.Add(mulElem(c.MeshMinBounds, c.Transform.Scale)),
		position.Add(mulElem(c.MeshMaxBounds, c.Transform.Scale)),
	)
}

func mulElem(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}
