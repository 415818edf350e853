package match

import (
	"github.com/tomaskol/termduel/internal/object"
	"github.com/tomaskol/termduel/internal/physics"
)

// PlayerView is one seat's render- and bot-facing state.
type PlayerView struct {
	Name              string
	X, Y              float64
	FacingX, FacingY  int
	Level             object.Level
	Alive             bool
	Score             int
	ShieldCharges     int
	ShotgunLeft       float64
	DashBoostLeft     float64
	ShotCooldown      float64
	DashCooldown      float64
	DashCooldownTotal float64
	Charging          bool
	ChargeTime        float64
}

// ChargeFraction reports charge progress toward the charged tier, 0..1.
func (v PlayerView) ChargeFraction() float64 {
	return physics.Clamp(v.ChargeTime/object.ChargeThreshold, 0, 1)
}

// ProjectileView is one shot in flight.
type ProjectileView struct {
	X, Y       float64
	DirX, DirY int
	Level      object.Level
	Tier       object.Tier
	OwnerID    int
}

// PowerupView is one uncollected pickup.
type PowerupView struct {
	X, Y     int
	Kind     object.PowerupKind
	Lifetime float64
}

// TrailView is one dash afterimage cell with its fade progress.
type TrailView struct {
	X, Y  int
	Faded float64
}

// Snapshot is a value copy of everything the renderer and the bot may
// read. The match never hands out pointers into its own state.
type Snapshot struct {
	Tick        uint64
	Arena       object.Arena
	Phase       Phase
	PhaseTime   float64
	Scorers     []int
	Players     [2]PlayerView
	Projectiles []ProjectileView
	Powerups    []PowerupView
	Trails      []TrailView
}

// Snapshot captures the current tick's state.
func (m *Match) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      m.tick,
		Arena:     m.arena,
		Phase:     m.phase,
		PhaseTime: m.phaseTime,
		Scorers:   append([]int(nil), m.scorers...),
	}

	for i, p := range m.players {
		snap.Players[i] = PlayerView{
			Name:              p.Name,
			X:                 p.X,
			Y:                 p.Y,
			FacingX:           p.FacingX,
			FacingY:           p.FacingY,
			Level:             p.Level,
			Alive:             p.Alive,
			Score:             p.Score,
			ShieldCharges:     p.ShieldCharges,
			ShotgunLeft:       p.ShotgunLeft,
			DashBoostLeft:     p.DashBoostLeft,
			ShotCooldown:      p.ShotCooldown,
			DashCooldown:      p.DashCooldown,
			DashCooldownTotal: p.DashCooldownTotal(),
			Charging:          p.Charging,
			ChargeTime:        p.ChargeTime,
		}
	}

	if len(m.projectiles) > 0 {
		snap.Projectiles = make([]ProjectileView, 0, len(m.projectiles))
		for _, pr := range m.projectiles {
			snap.Projectiles = append(snap.Projectiles, ProjectileView{
				X:       pr.X,
				Y:       pr.Y,
				DirX:    pr.DirX,
				DirY:    pr.DirY,
				Level:   pr.Level,
				Tier:    pr.Tier,
				OwnerID: pr.OwnerID,
			})
		}
	}

	if len(m.powerups) > 0 {
		snap.Powerups = make([]PowerupView, 0, len(m.powerups))
		for _, pw := range m.powerups {
			snap.Powerups = append(snap.Powerups, PowerupView{
				X:        pw.X,
				Y:        pw.Y,
				Kind:     pw.Kind,
				Lifetime: pw.Lifetime,
			})
		}
	}

	if len(m.trails) > 0 {
		snap.Trails = make([]TrailView, 0, len(m.trails))
		for i := range m.trails {
			snap.Trails = append(snap.Trails, TrailView{
				X:     m.trails[i].X,
				Y:     m.trails[i].Y,
				Faded: m.trails[i].Faded(),
			})
		}
	}

	return snap
}
