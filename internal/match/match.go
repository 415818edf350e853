// Package match owns the authoritative state of one duel: both
// players, everything in flight, powerups, the round machine and the
// scores. The loop drives it with one Step per tick and reads back
// value-copied snapshots; nothing else mutates match state.
package match

import (
	"math"
	"math/rand"
	"time"

	"github.com/tomaskol/termduel/internal/input"
	"github.com/tomaskol/termduel/internal/object"
)

// Config parameterizes a match. The zero value plays on the large
// arena with a time-based seed.
type Config struct {
	Arena object.Arena
	Names [2]string

	// Seed fixes the powerup RNG for reproducible matches. Zero picks
	// a time-based seed.
	Seed int64

	// AimWhileCharging lets held directions turn the player while a
	// shot is charging, without moving it.
	AimWhileCharging bool
}

// DefaultConfig is the stock setup used by the menu.
func DefaultConfig() Config {
	return Config{
		Arena:            object.ArenaLarge,
		Names:            [2]string{"P1", "P2"},
		AimWhileCharging: true,
	}
}

// Match is one duel in progress.
type Match struct {
	cfg   Config
	arena object.Arena
	rng   *rand.Rand
	tick  uint64

	players     [2]*object.Player
	projectiles []*object.Projectile
	powerups    []*object.Powerup
	trails      []object.TrailMark

	// Spawn queues, flushed after existing projectiles advanced so a
	// fresh shot gets its first collision check at its spawn cell.
	spawnedProjectiles []*object.Projectile
	spawnedTrails      []object.TrailMark

	phase      Phase
	phaseTime  float64
	scorers    []int
	sinceSpawn float64
}

// New creates a match and places both players at their spawn points.
func New(cfg Config) *Match {
	if cfg.Arena.Width == 0 || cfg.Arena.Height == 0 {
		cfg.Arena = object.ArenaLarge
	}
	if cfg.Names[0] == "" {
		cfg.Names[0] = "P1"
	}
	if cfg.Names[1] == "" {
		cfg.Names[1] = "P2"
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := &Match{
		cfg:   cfg,
		arena: cfg.Arena,
		rng:   rand.New(rand.NewSource(seed)),
	}
	x0, y0, f0 := m.spawnPoint(0)
	x1, y1, f1 := m.spawnPoint(1)
	m.players[0] = object.NewPlayer(0, cfg.Names[0], x0, y0, f0)
	m.players[1] = object.NewPlayer(1, cfg.Names[1], x1, y1, f1)
	return m
}

// spawnPoint returns the round-start position and facing for a seat:
// both players on the middle row, facing each other.
func (m *Match) spawnPoint(seat int) (x, y float64, facingX int) {
	y = float64(m.arena.Height / 2)
	if seat == 0 {
		return 8, y, 1
	}
	return float64(m.arena.Width - 9), y, -1
}

// Phase reports the round machine's current phase.
func (m *Match) Phase() Phase { return m.phase }

// Arena reports the playfield dimensions.
func (m *Match) Arena() object.Arena { return m.arena }

// SpawnProjectile queues a projectile fired this tick.
// Implements object.Spawner.
func (m *Match) SpawnProjectile(p *object.Projectile) {
	m.spawnedProjectiles = append(m.spawnedProjectiles, p)
}

// SpawnTrail queues a dash trail mark left this tick.
// Implements object.Spawner.
func (m *Match) SpawnTrail(t object.TrailMark) {
	m.spawnedTrails = append(m.spawnedTrails, t)
}

// flushSpawned moves queued spawns into the live collections.
func (m *Match) flushSpawned() {
	m.projectiles = append(m.projectiles, m.spawnedProjectiles...)
	m.spawnedProjectiles = m.spawnedProjectiles[:0]
	m.trails = append(m.trails, m.spawnedTrails...)
	m.spawnedTrails = m.spawnedTrails[:0]
}

// Step advances the match by one tick. acts carries each seat's action
// snapshot for this tick, keyboard- or bot-sourced alike.
func (m *Match) Step(dt float64, acts [2]input.Snapshot) {
	m.tick++

	switch m.phase {
	case PhaseActive:
		m.stepActive(dt, acts)
	case PhasePointScored, PhaseIntermission:
		m.stepRoundBreak(dt, acts)
	}
}

// stepActive runs one tick of live simulation in fixed order: players,
// projectiles, spawn flush, powerups, trails, collisions, scoring.
func (m *Match) stepActive(dt float64, acts [2]input.Snapshot) {
	for i, p := range m.players {
		p.Update(object.Tick{
			Dt:               dt,
			Actions:          acts[i],
			Arena:            m.arena,
			Spawner:          m,
			AimWhileCharging: m.cfg.AimWhileCharging,
		})
	}

	kept := m.projectiles[:0]
	for _, pr := range m.projectiles {
		if !pr.Update(dt, m.arena) {
			kept = append(kept, pr)
		}
	}
	m.projectiles = kept
	m.flushSpawned()

	m.stepPowerups(dt)
	m.stepTrails(dt)

	if scorers := m.resolveCollisions(); len(scorers) > 0 {
		m.scorePoint(scorers)
	}
}

// stepTrails fades dash trails and drops the expired ones.
func (m *Match) stepTrails(dt float64) {
	kept := m.trails[:0]
	for i := range m.trails {
		if !m.trails[i].Update(dt) {
			kept = append(kept, m.trails[i])
		}
	}
	m.trails = kept
}

// cellOf returns the grid cell a player stands on.
func cellOf(p *object.Player) (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}
