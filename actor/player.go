package actor

import "github.com/go-gl/mathgl/mgl64"

const (
	DEFAULT_MOVEMENT_SPEED = 5.0
	DEFAULT_SENSITIVITY    = 0.1
	// MAX_PITCH keeps the view from flipping over the vertical
	MAX_PITCH = 89.0
)

// Player is the controllable collidable, driven by input each frame
type Player struct {
	Collidable
	MovementSpeed float64 // units per second
}

func NewPlayer(name string, meshMinBounds, meshMaxBounds mgl64.Vec3) *Player {
	return &Player{
		Collidable:    *NewCollidable(name, meshMinBounds, meshMaxBounds),
		MovementSpeed: DEFAULT_MOVEMENT_SPEED,
	}
}

// Displacement converts an input direction into the desired move for a frame of dt seconds.
// The direction is normalized; a zero direction gives a zero displacement.
func (p *Player) Displacement(direction mgl64.Vec3, dt float64) mgl64.Vec3 {
	if direction.Len() == 0 {
		return mgl64.Vec3{}
	}

	return direction.Normalize().Mul(p.MovementSpeed * dt)
}

// Look turns the player from a mouse delta in pixels. Horizontal motion accumulates
// into yaw, vertical motion into pitch, clamped to [-MAX_PITCH, MAX_PITCH]. Roll is reset.
func (p *Player) Look(dx, dy, sensitivity float64) {
	rotation := p.Transform.Rotation
	p.SetRotation(mgl64.Vec3{
		mgl64.Clamp(rotation.X()-dy*sensitivity, -MAX_PITCH, MAX_PITCH),
		rotation.Y() + dx*sensitivity,
		0,
	})
}
