package dodger

import "github.com/vovakirdan/dodger/internal/core"

// Entity is the single moving, drawable, destroyable shape used for the
// player, enemies and projectiles. The role is fixed by which spawn function
// built it and which collection holds it, never by a field on the entity.
type Entity struct {
	Position       core.Vec2  // Top-left corner in world units
	Velocity       core.Vec2  // Direction; scaled by Speed during integration
	Speed          float64    // World units per second
	Size           float64    // Edge length of the square footprint
	Color          core.Color // Display only
	PendingDestroy bool       // Removed by the sweep at the end of the frame
}

// Integrate advances the position by velocity * speed * dt.
// There is no clamping; owners decide what off-screen means.
func (e *Entity) Integrate(dt float64) {
	e.Position = e.Position.Add(e.Velocity.Scale(e.Speed * dt))
}

// Destroy marks the entity for removal at the end of the frame.
func (e *Entity) Destroy() {
	e.PendingDestroy = true
}

// Bounds returns the entity's square footprint.
func (e Entity) Bounds() core.Rect {
	return core.NewRect(e.Position.X, e.Position.Y, e.Size, e.Size)
}

// Draw submits the entity as a filled square.
func (e Entity) Draw(dst core.Canvas) {
	b := e.Bounds()
	dst.DrawRect(b.X, b.Y, b.W, b.H, e.Color)
}
