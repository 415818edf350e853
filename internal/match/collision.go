package match

import (
	"github.com/tomaskol/termduel/internal/object"
	"github.com/tomaskol/termduel/internal/physics"
)

// hit is one qualifying projectile-player pair, collected against the
// tick's settled positions.
type hit struct {
	projectile *object.Projectile
	victim     int
}

// resolveCollisions evaluates every live projectile against the
// opposing player and returns the seats that scored this tick.
//
// Two passes: first collect all qualifying pairs, then apply them in
// projectile spawn order. Collecting first makes the outcome
// independent of slice order within the tick, so a double KO resolves
// symmetrically and both seats score.
func (m *Match) resolveCollisions() []int {
	var hits []hit
	for _, pr := range m.projectiles {
		if pr.IsDestroyed() {
			continue
		}
		for seat, victim := range m.players {
			if seat == pr.OwnerID || !victim.Alive {
				continue
			}
			if !object.LevelsMatch(pr.Level, victim.Level) {
				continue
			}
			if physics.WithinRadius(pr.X, pr.Y, victim.X, victim.Y, pr.HitRadius()) {
				hits = append(hits, hit{projectile: pr, victim: seat})
			}
		}
	}
	if len(hits) == 0 {
		return nil
	}

	var scorers []int
	for _, h := range hits {
		victim := m.players[h.victim]
		if h.projectile.IsDestroyed() || !victim.Alive {
			continue // Consumed or already settled by an earlier pair
		}
		h.projectile.MarkDestroyed()
		if victim.ShieldCharges > 0 {
			victim.ShieldCharges--
			continue
		}
		victim.Alive = false
		scorers = append(scorers, h.projectile.OwnerID)
	}

	kept := m.projectiles[:0]
	for _, pr := range m.projectiles {
		if !pr.IsDestroyed() {
			kept = append(kept, pr)
		}
	}
	m.projectiles = kept

	return scorers
}
