package match

import "github.com/tomaskol/termduel/internal/input"

// Phase is the round machine's state. Active simulates; PointScored
// freezes everything under the score popup; Intermission waits for a
// fresh key press before the next round.
type Phase int

const (
	PhaseActive Phase = iota
	PhasePointScored
	PhaseIntermission
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "ACTIVE"
	case PhasePointScored:
		return "POINT SCORED"
	case PhaseIntermission:
		return "INTERMISSION"
	default:
		return "UNKNOWN"
	}
}

// PopupSeconds is how long the point popup freezes the arena before
// the intermission starts.
const PopupSeconds = 1.5

// scorePoint credits every scorer once and freezes the arena under the
// popup. A double KO credits both seats.
func (m *Match) scorePoint(scorers []int) {
	m.scorers = append(m.scorers[:0], scorers...)
	for _, seat := range scorers {
		m.players[seat].Score++
	}
	m.phase = PhasePointScored
	m.phaseTime = 0
}

// stepRoundBreak advances the popup timer and, once in intermission,
// waits for any action from either seat to start the next round. The
// loop resets its key state when the intermission begins, so anything
// held here is a fresh press.
func (m *Match) stepRoundBreak(dt float64, acts [2]input.Snapshot) {
	m.phaseTime += dt

	switch m.phase {
	case PhasePointScored:
		if m.phaseTime >= PopupSeconds {
			m.phase = PhaseIntermission
			m.phaseTime = 0
		}
	case PhaseIntermission:
		if anyActionHeld(acts[0]) || anyActionHeld(acts[1]) {
			m.beginRound()
		}
	}
}

// beginRound resets everything transient for a fresh round. Scores
// survive on the players.
func (m *Match) beginRound() {
	for i, p := range m.players {
		x, y, facing := m.spawnPoint(i)
		p.ResetForRound(x, y, facing)
	}
	m.projectiles = m.projectiles[:0]
	m.powerups = m.powerups[:0]
	m.trails = m.trails[:0]
	m.spawnedProjectiles = m.spawnedProjectiles[:0]
	m.spawnedTrails = m.spawnedTrails[:0]
	m.sinceSpawn = 0
	m.scorers = m.scorers[:0]
	m.phase = PhaseActive
	m.phaseTime = 0
}

// anyActionHeld reports whether any of a seat's nine actions is held.
func anyActionHeld(s input.Snapshot) bool {
	return s.Up || s.Down || s.Left || s.Right ||
		s.Jump || s.Crouch || s.ReturnNormal ||
		s.Dash || s.Shoot
}
