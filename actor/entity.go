package actor

import "github.com/go-gl/mathgl/mgl64"

// Entity is anything placed in a scene
type Entity interface {
	GetName() string
	GetTransform() Transform
	SetPosition(position mgl64.Vec3)
	SetRotation(rotation mgl64.Vec3)
	SetScale(scale mgl64.Vec3)
}

// Collider is an Entity that takes part in overlap tests.
// Its world box is derived from the current transform on every call, never cached.
type Collider interface {
	Entity
	GetAABB() AABB
	// AABBAt returns the box the collider would have at the given position
	AABBAt(position mgl64.Vec3) AABB
}

// Parent is an Entity owning child entities, e.g. a Composite
type Parent interface {
	Entity
	Children() []Entity
}

// Object is a render-only entity: it has a transform but no bounds
type Object struct {
	Name      string
	Transform Transform
}

func NewObject(name string) *Object {
	return &Object{
		Name:      name,
		Transform: NewTransform(),
	}
}

func (o *Object) GetName() string {
	return o.Name
}

func (o *Object) GetTransform() Transform {
	return o.Transform
}

func (o *Object) SetPosition(position mgl64.Vec3) {
	o.Transform.Position = position
}

func (o *Object) SetRotation(rotation mgl64.Vec3) {
	o.Transform.Rotation = rotation
}

func (o *Object) SetScale(scale mgl64.Vec3) {
	o.Transform.Scale = scale
}
