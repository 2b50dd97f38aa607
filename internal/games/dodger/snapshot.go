package dodger

import "math"

// EntitySnapshot is the gameplay-relevant part of an entity.
type EntitySnapshot struct {
	X, Y   float64
	VX, VY float64
}

// Snapshot captures the complete simulation state of a game.
type Snapshot struct {
	Frame       int
	Mode        Mode
	Score       int
	SpawnTimer  float64
	Player      EntitySnapshot
	Enemies     []EntitySnapshot
	Projectiles []EntitySnapshot
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:       g.frames,
		Mode:        g.mode,
		Score:       g.score,
		SpawnTimer:  g.spawnTimer,
		Player:      snapshotOf(g.player),
		Enemies:     make([]EntitySnapshot, 0, len(g.enemies)),
		Projectiles: make([]EntitySnapshot, 0, len(g.projectiles)),
	}
	for _, e := range g.enemies {
		snap.Enemies = append(snap.Enemies, snapshotOf(e))
	}
	for _, p := range g.projectiles {
		snap.Projectiles = append(snap.Projectiles, snapshotOf(p))
	}
	return snap
}

func snapshotOf(e Entity) EntitySnapshot {
	return EntitySnapshot{
		X:  e.Position.X,
		Y:  e.Position.Y,
		VX: e.Velocity.X,
		VY: e.Velocity.Y,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Frame)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.SpawnTimer)
	h = hashEntity(h, snap.Player)

	h = h*31 + uint64(len(snap.Enemies))
	for _, e := range snap.Enemies {
		h = hashEntity(h, e)
	}

	h = h*31 + uint64(len(snap.Projectiles))
	for _, p := range snap.Projectiles {
		h = hashEntity(h, p)
	}
	return h
}

func hashEntity(h uint64, e EntitySnapshot) uint64 {
	h = h*31 + math.Float64bits(e.X)
	h = h*31 + math.Float64bits(e.Y)
	h = h*31 + math.Float64bits(e.VX)
	h = h*31 + math.Float64bits(e.VY)
	return h
}
