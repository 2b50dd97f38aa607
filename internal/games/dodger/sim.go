package dodger

import (
	"github.com/vovakirdan/dodger/internal/config"
	"github.com/vovakirdan/dodger/internal/core"
)

// simulate runs one Playing frame. Phase order matters: entities spawned or
// fired this frame move this frame, and collisions see post-move positions.
// Returns true if the frame ended the game.
func (g *Game) simulate(f core.Frame) bool {
	g.tickSpawn(f.Delta)
	g.applyInput(f.Input)
	g.move(f.Delta)
	playerHit := g.collide()
	lost := g.checkBounds()
	g.sweep()

	if playerHit && g.cfg.Rules.PlayerHit == config.PlayerHitGameOver {
		lost = true
	}
	return lost
}

// tickSpawn counts the spawn timer down and adds one enemy when it runs out.
// The timer is reset, not carried: a long frame still spawns a single enemy.
func (g *Game) tickSpawn(dt float64) {
	g.spawnTimer -= dt
	if g.spawnTimer <= 0 {
		g.enemies = append(g.enemies, g.spawner.SpawnEnemy(g.width))
		g.spawnTimer = g.cfg.Spawn.Interval
	}
}

// applyInput sets the player's direction from held keys and fires on a fresh
// press. Right wins over left and up wins over down.
func (g *Game) applyInput(in core.InputFrame) {
	var dir core.Vec2
	if in.IsHeld(core.ActionRight) {
		dir.X = 1
	} else if in.IsHeld(core.ActionLeft) {
		dir.X = -1
	}
	if in.IsHeld(core.ActionUp) {
		dir.Y = -1
	} else if in.IsHeld(core.ActionDown) {
		dir.Y = 1
	}
	g.player.Velocity = dir.NormalizeOrZero()

	if in.IsPressed(core.ActionFire) {
		g.projectiles = append(g.projectiles, g.spawner.SpawnProjectile(g.player))
	}
}

// move integrates the player, then projectiles, then enemies.
func (g *Game) move(dt float64) {
	g.player.Integrate(dt)
	for i := range g.projectiles {
		g.projectiles[i].Integrate(dt)
	}
	for i := range g.enemies {
		g.enemies[i].Integrate(dt)
	}
}

// collide marks every projectile-enemy pair closer than the enemy's size and
// scores one point per pair. A projectile keeps testing against later enemies
// after a hit, so one shot can score more than once in a frame.
// Returns true if any live enemy touched the player.
func (g *Game) collide() bool {
	playerHit := false
	for i := range g.enemies {
		e := &g.enemies[i]
		for j := range g.projectiles {
			p := &g.projectiles[j]
			if p.Position.Dist(e.Position) < e.Size {
				e.Destroy()
				p.Destroy()
				g.score++
			}
		}

		if !e.PendingDestroy && g.player.Position.Dist(e.Position) < g.player.Size {
			playerHit = true
		}
	}
	return playerHit
}

// checkBounds marks enemies that passed the bottom edge. Any such enemy loses
// the game. Projectiles above the top edge are culled only when configured.
func (g *Game) checkBounds() bool {
	lost := false
	for i := range g.enemies {
		if g.enemies[i].Position.Y > g.height {
			g.enemies[i].Destroy()
			lost = true
		}
	}

	if g.cfg.Rules.CullProjectiles {
		for i := range g.projectiles {
			if g.projectiles[i].Bounds().Bottom() < 0 {
				g.projectiles[i].Destroy()
			}
		}
	}
	return lost
}

// sweep removes marked entities from both collections, preserving the order
// of the survivors. Removed entities are kept in dying until the next frame
// so the frame that destroyed them still draws them.
func (g *Game) sweep() {
	g.enemies = g.retain(g.enemies)
	g.projectiles = g.retain(g.projectiles)
}

func (g *Game) retain(entities []Entity) []Entity {
	kept := entities[:0]
	for _, e := range entities {
		if e.PendingDestroy {
			g.dying = append(g.dying, e)
			continue
		}
		kept = append(kept, e)
	}
	return kept
}
