package object

import (
	"math"

	"github.com/tomaskol/termduel/internal/physics"
)

// Player movement and ability tuning.
const (
	MoveSpeed        = 16.0 // Cells per second per held axis
	ShotCooldownTime = 0.22 // Minimum seconds between shots
	DashCooldownTime = 2.2  // Seconds between dashes
	DashDistance     = 4.0  // Cells travelled by one dash
	JumpDuration     = 0.75 // Seconds airborne before auto-return
	ChargeThreshold  = 0.8  // Held seconds that upgrade a shot to charged
)

// Player is one of the two duelists.
type Player struct {
	ID   int // Seat index: 0 or 1
	Name string

	X, Y    float64 // Position (sub-cell)
	FacingX int     // Compass facing, each component in {-1,0,1},
	FacingY int     // never both zero
	Level   Level
	Alive   bool

	// Defensive and offensive buffs granted by powerups.
	ShieldCharges int     // 0 or 1; consumed by the first absorbed hit
	ShotgunLeft   float64 // Seconds of triple-shot remaining
	DashBoostLeft float64 // Seconds of shortened dash cooldown remaining

	// Ability timers, counted down once per tick.
	ShotCooldown float64
	DashCooldown float64
	JumpLeft     float64 // Auto-return timer while Level == LevelJump

	// Charge-and-release shot state. Movement is suppressed while
	// charging; the accumulated hold time selects the shot tier.
	Charging   bool
	ChargeTime float64

	Score int

	// Previous-tick action state for press/release edge detection.
	prevJump  bool
	prevDash  bool
	prevShoot bool
}

// NewPlayer creates a duelist at its spawn point. facingX points the
// player at the opponent (+1 for the left seat, -1 for the right).
func NewPlayer(id int, name string, x, y float64, facingX int) *Player {
	p := &Player{ID: id, Name: name}
	p.ResetForRound(x, y, facingX)
	return p
}

// ResetForRound restores round-start defaults. The score survives; all
// transient state (position, level, facing, cooldowns, buffs, charge)
// does not.
func (p *Player) ResetForRound(x, y float64, facingX int) {
	p.X = x
	p.Y = y
	p.FacingX = facingX
	p.FacingY = 0
	p.Level = LevelNormal
	p.Alive = true
	p.ShieldCharges = 0
	p.ShotgunLeft = 0
	p.DashBoostLeft = 0
	p.ShotCooldown = 0
	p.DashCooldown = 0
	p.JumpLeft = 0
	p.Charging = false
	p.ChargeTime = 0
	p.prevJump = false
	p.prevDash = false
	p.prevShoot = false
}

// DashCooldownTotal returns the dash cooldown in effect, shortened
// while the DashBoost buff is active.
func (p *Player) DashCooldownTotal() float64 {
	if p.DashBoostLeft > 0 {
		return DashBoostCooldown
	}
	return DashCooldownTime
}

// Update advances the player by one tick: timers, level transitions,
// facing and movement, charge-and-release shooting, and dashing.
// Dead players are not updated.
func (p *Player) Update(tick Tick) {
	if !p.Alive {
		return
	}
	acts := tick.Actions

	p.advanceTimers(tick.Dt)
	p.applyLevel(acts, tick.Dt)
	p.applyMovement(acts, tick)
	p.applyShooting(acts, tick)
	p.applyDash(acts, tick)

	p.prevJump = acts.Jump
	p.prevDash = acts.Dash
	p.prevShoot = acts.Shoot
}

// advanceTimers counts down cooldowns and buff durations.
func (p *Player) advanceTimers(dt float64) {
	p.ShotCooldown = math.Max(0, p.ShotCooldown-dt)
	p.DashCooldown = math.Max(0, p.DashCooldown-dt)
	p.ShotgunLeft = math.Max(0, p.ShotgunLeft-dt)
	p.DashBoostLeft = math.Max(0, p.DashBoostLeft-dt)
}

// applyLevel runs the per-player level state machine: jump is timed,
// crouch lasts while held, normal is the only rest level.
func (p *Player) applyLevel(acts Actions, dt float64) {
	if acts.ReturnNormal {
		p.Level = LevelNormal
		p.JumpLeft = 0
	}

	// A jump press while airborne resets the timer rather than stacking.
	if acts.Jump && !p.prevJump {
		p.Level = LevelJump
		p.JumpLeft = JumpDuration
	}

	if p.Level == LevelJump {
		p.JumpLeft -= dt
		if p.JumpLeft <= 0 {
			p.JumpLeft = 0
			p.Level = LevelNormal
		}
		return // Crouch cannot interrupt a jump
	}

	if acts.Crouch {
		p.Level = LevelCrouch
	} else if p.Level == LevelCrouch {
		p.Level = LevelNormal
	}
}

// applyMovement updates facing from held directions and moves the
// player unless a shot is charging.
func (p *Player) applyMovement(acts Actions, tick Tick) {
	dx := 0
	dy := 0
	if acts.Left {
		dx--
	}
	if acts.Right {
		dx++
	}
	if acts.Up {
		dy--
	}
	if acts.Down {
		dy++
	}

	if dx != 0 || dy != 0 {
		if !p.Charging || tick.AimWhileCharging {
			p.FacingX = dx
			p.FacingY = dy
		}
		if !p.Charging {
			p.X, p.Y = tick.Arena.Clamp(p.X+float64(dx)*MoveSpeed*tick.Dt, p.Y+float64(dy)*MoveSpeed*tick.Dt)
		}
	}
}

// applyShooting runs the charge-and-release state machine. A release
// during cooldown discards the charge without touching the cooldown.
func (p *Player) applyShooting(acts Actions, tick Tick) {
	pressed := acts.Shoot && !p.prevShoot
	released := !acts.Shoot && p.prevShoot

	if pressed && !p.Charging {
		p.Charging = true
		p.ChargeTime = 0
	}
	if p.Charging && acts.Shoot {
		p.ChargeTime += tick.Dt
	}
	if !released || !p.Charging {
		return
	}

	tier := TierNormal
	if p.ChargeTime >= ChargeThreshold {
		tier = TierCharged
	}
	p.Charging = false
	p.ChargeTime = 0

	if p.ShotCooldown > 0 {
		return // Spam prevention: charge is lost, cooldown keeps running
	}

	for _, dir := range p.fireDirections() {
		proj := NewProjectile(p.ID, p.X+float64(dir[0]), p.Y+float64(dir[1]), dir[0], dir[1], p.Level, tier)
		tick.Spawner.SpawnProjectile(proj)
	}
	p.ShotCooldown = ShotCooldownTime
}

// fireDirections returns the compass directions of one fire event:
// just the facing, or a three-way spread around it while the shotgun
// buff is active.
func (p *Player) fireDirections() [][2]int {
	fx, fy := p.FacingX, p.FacingY
	if fx == 0 && fy == 0 {
		fx = 1
	}
	if p.ShotgunLeft <= 0 {
		return [][2]int{{fx, fy}}
	}

	dirs := [][2]int{
		{fx, fy},
		{fx + fy, fy + fx},
		{fx - fy, fy - fx},
	}
	for i, d := range dirs {
		ndx := physics.Sign(d[0])
		ndy := physics.Sign(d[1])
		if ndx == 0 && ndy == 0 {
			ndx = 1
		}
		dirs[i] = [2]int{ndx, ndy}
	}
	return dirs
}

// applyDash teleports the player along its facing and leaves a decaying
// trail over the crossed cells. Gated by the dash cooldown.
func (p *Player) applyDash(acts Actions, tick Tick) {
	if !acts.Dash || p.prevDash || p.DashCooldown > 0 {
		return
	}

	fx, fy := p.FacingX, p.FacingY
	steps := int(DashDistance)
	startX := int(math.Round(p.X))
	startY := int(math.Round(p.Y))
	for i := 0; i < steps; i++ {
		cx := startX + fx*i
		cy := startY + fy*i
		if tick.Arena.ContainsCell(cx, cy) {
			tick.Spawner.SpawnTrail(NewTrailMark(cx, cy))
		}
	}

	p.X, p.Y = tick.Arena.Clamp(p.X+float64(fx)*DashDistance, p.Y+float64(fy)*DashDistance)
	p.DashCooldown = p.DashCooldownTotal()
}

// CooldownFraction reports remaining cooldown as a 0..1 fraction of its
// total, for HUD display.
func CooldownFraction(remaining, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return physics.Clamp(remaining/total, 0, 1)
}
