package actor

import "github.com/go-gl/mathgl/mgl64"

// Composite is a rigid group: a collidable parent that owns an ordered list of children.
// Translating or rotating the parent applies the same delta to every child, so relative
// offsets are preserved. Each child keeps its own bounds.
type Composite struct {
	Collidable
	children []Entity
}

func NewComposite(name string, meshMinBounds, meshMaxBounds mgl64.Vec3) *Composite {
	return &Composite{
		Collidable: *NewCollidable(name, meshMinBounds, meshMaxBounds),
	}
}

// AddChild transfers ownership of child to the composite
func (c *Composite) AddChild(child Entity) {
	c.children = append(c.children, child)
}

// RemoveChild detaches child, if present
func (c *Composite) RemoveChild(child Entity) {
	for i, e := range c.children {
		if e == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return
		}
	}
}

// Children returns a copy of the child list, in insertion order
func (c *Composite) Children() []Entity {
	children := make([]Entity, len(c.children))
	copy(children, c.children)

	return children
}

func (c *Composite) SetPosition(position mgl64.Vec3) {
	delta := position.Sub(c.Transform.Position)
	c.Transform.Position = position

	for _, child := range c.children {
		child.SetPosition(child.GetTransform().Position.Add(delta))
	}
}

func (c *Composite) SetRotation(rotation mgl64.Vec3) {
	delta := rotation.Sub(c.Transform.Rotation)
	c.Transform.Rotation = rotation

	for _, child := range c.children {
		child.SetRotation(child.GetTransform().Rotation.Add(delta))
	}
}
