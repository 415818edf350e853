package match

import (
	"github.com/tomaskol/termduel/internal/object"
	"github.com/tomaskol/termduel/internal/physics"
)

// maxPlacementTries bounds the search for a free spawn cell. If every
// try lands on a player the spawn is skipped until the next interval.
const maxPlacementTries = 30

// stepPowerups runs the pickup director: expiry, collection, and the
// interval-gated spawner.
func (m *Match) stepPowerups(dt float64) {
	kept := m.powerups[:0]
	for _, pw := range m.powerups {
		if !pw.Update(dt) {
			kept = append(kept, pw)
		}
	}
	m.powerups = kept

	// Collection is level-agnostic: powerups sit on the ground plane.
	// Seat order decides the winner when both players cover one cell.
	for _, p := range m.players {
		if !p.Alive {
			continue
		}
		kept := m.powerups[:0]
		for _, pw := range m.powerups {
			if physics.WithinRadius(float64(pw.X), float64(pw.Y), p.X, p.Y, object.PickupRadius) {
				pw.Apply(p)
				continue
			}
			kept = append(kept, pw)
		}
		m.powerups = kept
	}

	m.sinceSpawn += dt
	if m.sinceSpawn < object.PowerupSpawnInterval {
		return
	}
	m.sinceSpawn = 0
	if len(m.powerups) > 0 {
		return // At most one uncollected powerup on the field
	}
	m.placePowerup()
}

// placePowerup rolls a random free inner cell and drops a random kind
// on it.
func (m *Match) placePowerup() {
	for try := 0; try < maxPlacementTries; try++ {
		x := 1 + m.rng.Intn(m.arena.Width-2)
		y := 1 + m.rng.Intn(m.arena.Height-2)
		if m.cellOccupied(x, y) {
			continue
		}
		kind := object.PowerupKind(m.rng.Intn(object.PowerupKindCount))
		m.powerups = append(m.powerups, object.NewPowerup(x, y, kind))
		return
	}
}

// cellOccupied reports whether a player stands on the cell.
func (m *Match) cellOccupied(x, y int) bool {
	for _, p := range m.players {
		px, py := cellOf(p)
		if px == x && py == y {
			return true
		}
	}
	return false
}
