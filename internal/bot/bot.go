// Package bot drives one seat of a duel through the same action
// snapshot contract the keyboard produces, so the match cannot tell a
// bot from a player. Decisions are heuristic and all randomness flows
// from one seedable source for reproducible matches.
package bot

import (
	"math"
	"math/rand"
	"time"

	"github.com/tomaskol/termduel/internal/input"
	"github.com/tomaskol/termduel/internal/match"
	"github.com/tomaskol/termduel/internal/object"
	"github.com/tomaskol/termduel/internal/physics"
)

const (
	decisionMinTicks = 4
	decisionMaxTicks = 10

	alignTolerance  = 0.6 // Offset that still counts as a firing line
	moveTolerance   = 0.5
	standoffCells   = 6.0  // Preferred dueling distance on the aligned axis
	dodgeRadius     = 6.0  // Incoming shot distance that triggers a dodge
	dashRangeCells  = 12.0 // Minimum gap before closing with a dash
	levelMatchBias  = 0.6  // Chance per decision to copy the foe's level
	chargeBias      = 0.25 // Chance an attack is held for a charged shot
	dashCloseBias   = 0.3
	dashDodgeBias   = 0.35
	tapHoldTicks    = 2
	chargeHoldTicks = 28 // Past the charge threshold at the 30 Hz tick rate
)

// Bot is one scripted seat. All state between Acts lives here.
type Bot struct {
	Seat int

	rng  *rand.Rand
	tick uint64

	nextDecision uint64
	intent       input.Snapshot
	holdShoot    int // Remaining ticks to keep the shoot action held
}

// New creates a bot for a seat. A zero seed picks a time-based one.
func New(seat int, seed int64) *Bot {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Bot{Seat: seat, rng: rand.New(rand.NewSource(seed))}
}

// Act produces the seat's actions for one tick from the previous
// tick's snapshot.
func (b *Bot) Act(snap match.Snapshot) input.Snapshot {
	b.tick++

	switch snap.Phase {
	case match.PhasePointScored:
		return input.Snapshot{}
	case match.PhaseIntermission:
		// Any press starts the next round; this one has no side effect
		// once the round begins.
		return input.Snapshot{ReturnNormal: true}
	}

	me := snap.Players[b.Seat]
	foe := snap.Players[1-b.Seat]
	if !me.Alive {
		return input.Snapshot{}
	}

	if s, dodging := b.dodge(snap, me); dodging {
		return s
	}

	if b.holdShoot > 0 {
		b.holdShoot--
		s := b.intent
		s.Shoot = true
		if b.holdShoot == 0 {
			// Next tick's snapshot drops the action, firing on the
			// release edge.
			b.intent = input.Snapshot{}
			b.nextDecision = b.tick + b.interval(decisionMinTicks, decisionMaxTicks)
		}
		return s
	}

	if b.tick >= b.nextDecision {
		b.decide(snap, me, foe)
	}
	return b.intent
}

// dodge scans for a same-level shot closing in and reacts immediately,
// overriding whatever the bot was doing.
func (b *Bot) dodge(snap match.Snapshot, me match.PlayerView) (input.Snapshot, bool) {
	for _, pr := range snap.Projectiles {
		if pr.OwnerID == b.Seat || pr.Level != me.Level {
			continue
		}
		dx := me.X - pr.X
		dy := me.Y - pr.Y
		if float64(pr.DirX)*dx+float64(pr.DirY)*dy <= 0 {
			continue // Moving away
		}
		if dx*dx+dy*dy > dodgeRadius*dodgeRadius {
			continue
		}

		b.holdShoot = 0
		b.nextDecision = b.tick + 2

		if me.DashCooldown <= 0 && pr.DirY == 0 && b.rng.Float64() < dashDodgeBias {
			// Sidestep a horizontal shot: turn and dash off the row.
			s := input.Snapshot{Dash: true}
			if b.rng.Float64() < 0.5 {
				s.Up = true
			} else {
				s.Down = true
			}
			b.intent = s
			return s, true
		}

		s := input.Snapshot{}
		switch me.Level {
		case object.LevelNormal:
			if b.rng.Float64() < 0.5 {
				s.Jump = true
			} else {
				s.Crouch = true
			}
		default:
			s.ReturnNormal = true
		}
		b.intent = s
		return s, true
	}
	return input.Snapshot{}, false
}

// decide picks a new intent: grab a winnable powerup, attack along a
// firing line, or maneuver toward the foe's row and level.
func (b *Bot) decide(snap match.Snapshot, me, foe match.PlayerView) {
	b.nextDecision = b.tick + b.interval(decisionMinTicks, decisionMaxTicks)
	b.intent = input.Snapshot{}

	if x, y, ok := winnablePowerup(snap, me, foe); ok {
		b.intent = moveToward(me, x, y)
		return
	}

	alignedRow := math.Abs(me.Y-foe.Y) <= alignTolerance
	alignedCol := math.Abs(me.X-foe.X) <= alignTolerance
	if (alignedRow || alignedCol) && me.ShotCooldown <= 0 && me.Level == foe.Level {
		s := aimAt(me, foe)
		s.Shoot = true
		b.intent = s
		if b.rng.Float64() < chargeBias {
			b.holdShoot = chargeHoldTicks
		} else {
			b.holdShoot = tapHoldTicks
		}
		return
	}

	s := approach(me, foe)
	if me.Level != foe.Level && b.rng.Float64() < levelMatchBias {
		switch foe.Level {
		case object.LevelJump:
			s.Jump = true
		case object.LevelCrouch:
			s.Crouch = true
		default:
			s.ReturnNormal = true
		}
	}
	if me.DashCooldown <= 0 && b.rng.Float64() < dashCloseBias &&
		physics.Distance(me.X, me.Y, foe.X, foe.Y) > dashRangeCells {
		s.Dash = true
	}
	b.intent = s
}

// winnablePowerup returns the nearest powerup the bot would reach
// before the foe, if any.
func winnablePowerup(snap match.Snapshot, me, foe match.PlayerView) (float64, float64, bool) {
	bestD := math.MaxFloat64
	var bx, by float64
	found := false
	for _, pw := range snap.Powerups {
		d := physics.DistanceSquared(me.X, me.Y, float64(pw.X), float64(pw.Y))
		if d < bestD {
			bestD = d
			bx, by = float64(pw.X), float64(pw.Y)
			found = true
		}
	}
	if !found || physics.DistanceSquared(foe.X, foe.Y, bx, by) < bestD {
		return 0, 0, false
	}
	return bx, by, true
}

// moveToward holds the direction keys that close in on a point.
func moveToward(me match.PlayerView, x, y float64) input.Snapshot {
	var s input.Snapshot
	if me.X < x-moveTolerance {
		s.Right = true
	} else if me.X > x+moveTolerance {
		s.Left = true
	}
	if me.Y < y-moveTolerance {
		s.Down = true
	} else if me.Y > y+moveTolerance {
		s.Up = true
	}
	return s
}

// aimAt holds the direction keys that turn the facing onto the foe.
// Pressed together with shoot, the charge suppresses movement so this
// only aims.
func aimAt(me, foe match.PlayerView) input.Snapshot {
	var s input.Snapshot
	if foe.X > me.X+alignTolerance {
		s.Right = true
	} else if foe.X < me.X-alignTolerance {
		s.Left = true
	}
	if foe.Y > me.Y+alignTolerance {
		s.Down = true
	} else if foe.Y < me.Y-alignTolerance {
		s.Up = true
	}
	return s
}

// approach equalizes rows first and keeps a standoff gap on the x axis.
func approach(me, foe match.PlayerView) input.Snapshot {
	var s input.Snapshot
	if me.Y < foe.Y-moveTolerance {
		s.Down = true
	} else if me.Y > foe.Y+moveTolerance {
		s.Up = true
	}
	dx := foe.X - me.X
	if math.Abs(dx) > standoffCells {
		if dx > 0 {
			s.Right = true
		} else {
			s.Left = true
		}
	}
	return s
}

func (b *Bot) interval(min, max int) uint64 {
	return uint64(min + b.rng.Intn(max-min+1))
}
