// Package object holds the entities of a duel and their tuning: the
// arena grid, players, projectiles, powerups and dash trails. Entities
// know how to advance themselves one tick; the match package owns their
// lifecycles and interactions.
package object

import "github.com/tomaskol/termduel/internal/input"

// Actions is an alias for the input package's per-seat snapshot type.
type Actions = input.Snapshot

// Spawner receives entities created mid-tick, so fresh spawns join the
// world only after the current update pass settles.
type Spawner interface {
	SpawnProjectile(p *Projectile)
	SpawnTrail(t TrailMark)
}

// Tick provides everything a player update needs for one step.
type Tick struct {
	Dt      float64
	Actions Actions
	Arena   Arena
	Spawner Spawner

	// AimWhileCharging lets held directions turn the player while a
	// shot charges, without moving it.
	AimWhileCharging bool
}
