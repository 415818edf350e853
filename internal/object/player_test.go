package object

import (
	"math"
	"testing"
)

const testDt = 1.0 / 30.0

// recordSpawner collects everything spawned during a test.
type recordSpawner struct {
	projectiles []*Projectile
	trails      []TrailMark
}

func (s *recordSpawner) SpawnProjectile(p *Projectile) { s.projectiles = append(s.projectiles, p) }
func (s *recordSpawner) SpawnTrail(t TrailMark)        { s.trails = append(s.trails, t) }

func testTick(acts Actions, sp *recordSpawner) Tick {
	return Tick{Dt: testDt, Actions: acts, Arena: ArenaLarge, Spawner: sp, AimWhileCharging: true}
}

func stepFor(p *Player, acts Actions, sp *recordSpawner, ticks int) {
	for i := 0; i < ticks; i++ {
		p.Update(testTick(acts, sp))
	}
}

func TestPlayerMovesWhileDirectionHeld(t *testing.T) {
	sp := &recordSpawner{}
	p := NewPlayer(0, "A", 5, 5, 1)

	stepFor(p, Actions{Right: true}, sp, 1)
	if p.X <= 5 {
		t.Fatalf("x after 1 tick of right = %f, want > 5", p.X)
	}
	x1 := p.X

	stepFor(p, Actions{Right: true}, sp, 4)
	if p.X <= x1 {
		t.Fatalf("expected x to keep increasing: x1=%f x2=%f", x1, p.X)
	}
	if p.Y != 5 {
		t.Fatalf("y moved without vertical input: %f", p.Y)
	}
}

func TestPlayerMovementClampsAtWall(t *testing.T) {
	sp := &recordSpawner{}
	p := NewPlayer(0, "A", 1, 5, -1)

	stepFor(p, Actions{Left: true}, sp, 60)
	if p.X != 0 {
		t.Fatalf("x = %f, want 0 pinned at the west wall", p.X)
	}
}

func TestPlayerFacingFollowsHeldAndSurvivesRelease(t *testing.T) {
	sp := &recordSpawner{}
	p := NewPlayer(0, "A", 10, 5, 1)

	stepFor(p, Actions{Up: true, Left: true}, sp, 1)
	if p.FacingX != -1 || p.FacingY != -1 {
		t.Fatalf("facing = (%d,%d), want (-1,-1)", p.FacingX, p.FacingY)
	}

	stepFor(p, Actions{}, sp, 5)
	if p.FacingX != -1 || p.FacingY != -1 {
		t.Fatalf("facing reset after keys released: (%d,%d)", p.FacingX, p.FacingY)
	}
}

func TestPlayerJumpAutoReturnsToNormal(t *testing.T) {
	sp := &recordSpawner{}
	p := NewPlayer(0, "A", 5, 5, 1)

	stepFor(p, Actions{Jump: true}, sp, 1)
	if p.Level != LevelJump {
		t.Fatalf("level after jump press = %v, want JUMP", p.Level)
	}

	stepFor(p, Actions{}, sp, int(math.Floor(JumpDuration/testDt))+1)
	if p.Level != LevelNormal {
		t.Fatalf("level after jump ran out = %v, want NORMAL", p.Level)
	}
}

func TestPlayerJumpRepressResetsTimer(t *testing.T) {
	sp := &recordSpawner{}
	p := NewPlayer(0, "A", 5, 5, 1)

	stepFor(p, Actions{Jump: true}, sp, 1)
	stepFor(p, Actions{}, sp, 10)
	remaining := p.JumpLeft

	stepFor(p, Actions{Jump: true}, sp, 1)
	if p.JumpLeft <= remaining {
		t.Fatalf("jump re-press did not reset timer: %f <= %f", p.JumpLeft, remaining)
	}
}

func TestPlayerCrouchHeldAndReleased(t *testing.T) {
	sp := &recordSpawner{}
	p := NewPlayer(0, "A", 5, 5, 1)

	stepFor(p, Actions{Crouch: true}, sp, 3)
	if p.Level != LevelCrouch {
		t.Fatalf("level while crouch held = %v, want CROUCH", p.Level)
	}

	stepFor(p, Actions{}, sp, 1)
	if p.Level != LevelNormal {
		t.Fatalf("level after crouch released = %v, want NORMAL", p.Level)
	}
}

func TestPlayerCrouchCannotInterruptJump(t *testing.T) {
	sp := &recordSpawner{}
	p := NewPlayer(0, "A", 5, 5, 1)

	stepFor(p, Actions{Jump: true}, sp, 1)
	stepFor(p, Actions{Crouch: true}, sp, 2)
	if p.Level != LevelJump {
		t.Fatalf("crouch interrupted an active jump: level = %v", p.Level)
	}
}

func TestPlayerReturnNormalCancelsJump(t *testing.T) {
	sp := &recordSpawner{}
	p := NewPlayer(0, "A", 5, 5, 1)

	stepFor(p, Actions{Jump: true}, sp, 1)
	stepFor(p, Actions{ReturnNormal: true}, sp, 1)
	if p.Level != LevelNormal {
		t.Fatalf("level after return-normal = %v, want NORMAL", p.Level)
	}
	if p.JumpLeft != 0 {
		t.Fatalf("jump timer survived return-normal: %f", p.JumpLeft)
	}
}

func TestPlayerTapFiresNormalTierOneCellAhead(t *testing.T) {
	sp := &recordSpawner{}
	p := NewPlayer(0, "A", 5, 5, 1)

	stepFor(p, Actions{Shoot: true}, sp, 2)
	stepFor(p, Actions{}, sp, 1)

	if len(sp.projectiles) != 1 {
		t.Fatalf("projectiles fired = %d, want 1", len(sp.projectiles))
	}
	pr := sp.projectiles[0]
	if pr.Tier != TierNormal {
		t.Fatalf("tier = %v, want NORMAL", pr.Tier)
	}
	if pr.X != 6 || pr.Y != 5 {
		t.Fatalf("spawned at (%f,%f), want one cell ahead at (6,5)", pr.X, pr.Y)
	}
	if pr.Level != LevelNormal {
		t.Fatalf("projectile level = %v, want shooter's NORMAL", pr.Level)
	}
	if pr.OwnerID != 0 {
		t.Fatalf("owner = %d, want 0", pr.OwnerID)
	}
}

func TestPlayerHeldShotFiresChargedTier(t *testing.T) {
	sp := &recordSpawner{}
	p := NewPlayer(0, "A", 5, 5, 1)

	stepFor(p, Actions{Shoot: true}, sp, int(ChargeThreshold/testDt)+2)
	stepFor(p, Actions{}, sp, 1)

	if len(sp.projectiles) != 1 {
		t.Fatalf("projectiles fired = %d, want 1", len(sp.projectiles))
	}
	if sp.projectiles[0].Tier != TierCharged {
		t.Fatalf("tier after long hold = %v, want CHARGED", sp.projectiles[0].Tier)
	}
}

func TestPlayerChargingSuppressesMovementNotAim(t *testing.T) {
	sp := &recordSpawner{}
	p := NewPlayer(0, "A", 10, 5, 1)

	stepFor(p, Actions{Shoot: true}, sp, 1)
	stepFor(p, Actions{Shoot: true, Right: true}, sp, 5)
	if p.X != 10 || p.Y != 5 {
		t.Fatalf("player moved while charging: (%f,%f)", p.X, p.Y)
	}

	stepFor(p, Actions{Shoot: true, Up: true}, sp, 1)
	if p.FacingX != 0 || p.FacingY != -1 {
		t.Fatalf("aim frozen while charging: facing (%d,%d), want (0,-1)", p.FacingX, p.FacingY)
	}
}

func TestPlayerAimLockedWhileChargingWhenConfigured(t *testing.T) {
	sp := &recordSpawner{}
	p := NewPlayer(0, "A", 10, 5, 1)

	lockTick := func(acts Actions) Tick {
		return Tick{Dt: testDt, Actions: acts, Arena: ArenaLarge, Spawner: sp, AimWhileCharging: false}
	}
	p.Update(lockTick(Actions{Shoot: true}))
	p.Update(lockTick(Actions{Shoot: true, Up: true}))

	if p.FacingX != 1 || p.FacingY != 0 {
		t.Fatalf("facing changed despite aim lock: (%d,%d)", p.FacingX, p.FacingY)
	}
}

func TestPlayerCooldownDiscardsRelease(t *testing.T) {
	sp := &recordSpawner{}
	p := NewPlayer(0, "A", 5, 5, 1)

	stepFor(p, Actions{Shoot: true}, sp, 1)
	stepFor(p, Actions{}, sp, 1)
	stepFor(p, Actions{Shoot: true}, sp, 1)
	stepFor(p, Actions{}, sp, 1)

	if len(sp.projectiles) != 1 {
		t.Fatalf("projectiles = %d, want 1: release during cooldown must be discarded", len(sp.projectiles))
	}
	if p.ShotCooldown <= 0 || p.ShotCooldown >= ShotCooldownTime {
		t.Fatalf("discarded release disturbed cooldown: %f", p.ShotCooldown)
	}
}

func TestPlayerFiresAgainAfterCooldown(t *testing.T) {
	sp := &recordSpawner{}
	p := NewPlayer(0, "A", 5, 5, 1)

	stepFor(p, Actions{Shoot: true}, sp, 1)
	stepFor(p, Actions{}, sp, 1)
	stepFor(p, Actions{}, sp, int(math.Floor(ShotCooldownTime/testDt))+1)
	stepFor(p, Actions{Shoot: true}, sp, 1)
	stepFor(p, Actions{}, sp, 1)

	if len(sp.projectiles) != 2 {
		t.Fatalf("projectiles = %d, want 2 after cooldown expired", len(sp.projectiles))
	}
}

func TestPlayerShotgunFiresThreeWaySpread(t *testing.T) {
	sp := &recordSpawner{}
	p := NewPlayer(0, "A", 10, 5, 1)
	p.ShotgunLeft = 5

	stepFor(p, Actions{Shoot: true}, sp, 1)
	stepFor(p, Actions{}, sp, 1)

	if len(sp.projectiles) != 3 {
		t.Fatalf("projectiles = %d, want 3 with shotgun active", len(sp.projectiles))
	}
	got := map[[2]int]bool{}
	for _, pr := range sp.projectiles {
		got[[2]int{pr.DirX, pr.DirY}] = true
	}
	for _, want := range [][2]int{{1, 0}, {1, 1}, {1, -1}} {
		if !got[want] {
			t.Fatalf("spread missing direction %v, got %v", want, got)
		}
	}
}

func TestPlayerShotgunDiagonalSpreadStaysCompass(t *testing.T) {
	sp := &recordSpawner{}
	p := NewPlayer(0, "A", 10, 5, 1)
	p.ShotgunLeft = 5
	p.FacingX, p.FacingY = 1, 1

	stepFor(p, Actions{Shoot: true}, sp, 1)
	stepFor(p, Actions{}, sp, 1)

	if len(sp.projectiles) != 3 {
		t.Fatalf("projectiles = %d, want 3", len(sp.projectiles))
	}
	for _, pr := range sp.projectiles {
		if pr.DirX < -1 || pr.DirX > 1 || pr.DirY < -1 || pr.DirY > 1 {
			t.Fatalf("spread direction (%d,%d) left the compass", pr.DirX, pr.DirY)
		}
		if pr.DirX == 0 && pr.DirY == 0 {
			t.Fatalf("spread produced a stationary projectile")
		}
	}
}

func TestPlayerDashTeleportsAndLeavesTrail(t *testing.T) {
	sp := &recordSpawner{}
	p := NewPlayer(0, "A", 5, 5, 1)

	stepFor(p, Actions{Dash: true}, sp, 1)

	if p.X != 9 || p.Y != 5 {
		t.Fatalf("dash landed at (%f,%f), want (9,5)", p.X, p.Y)
	}
	if len(sp.trails) != 4 {
		t.Fatalf("trail marks = %d, want 4", len(sp.trails))
	}
	for i, tr := range sp.trails {
		if tr.X != 5+i || tr.Y != 5 {
			t.Fatalf("trail %d at (%d,%d), want (%d,5)", i, tr.X, tr.Y, 5+i)
		}
	}
	if p.DashCooldown != DashCooldownTime {
		t.Fatalf("dash cooldown = %f, want %f", p.DashCooldown, DashCooldownTime)
	}
}

func TestPlayerDashCooldownBlocksSecondDash(t *testing.T) {
	sp := &recordSpawner{}
	p := NewPlayer(0, "A", 5, 5, 1)

	stepFor(p, Actions{Dash: true}, sp, 1)
	stepFor(p, Actions{}, sp, 2)
	stepFor(p, Actions{Dash: true}, sp, 1)

	if p.X != 9 {
		t.Fatalf("second dash went through during cooldown: x = %f", p.X)
	}
}

func TestPlayerDashBoostShortensCooldown(t *testing.T) {
	sp := &recordSpawner{}
	p := NewPlayer(0, "A", 5, 5, 1)
	p.DashBoostLeft = 5

	stepFor(p, Actions{Dash: true}, sp, 1)
	if p.DashCooldown != DashBoostCooldown {
		t.Fatalf("boosted dash cooldown = %f, want %f", p.DashCooldown, DashBoostCooldown)
	}
}

func TestPlayerDashClampsAtWall(t *testing.T) {
	sp := &recordSpawner{}
	p := NewPlayer(0, "A", 67, 5, 1)

	stepFor(p, Actions{Dash: true}, sp, 1)

	if p.X != float64(ArenaLarge.Width-1) {
		t.Fatalf("dash overshot the wall: x = %f", p.X)
	}
	if len(sp.trails) != 3 {
		t.Fatalf("trail marks = %d, want 3 inside the arena", len(sp.trails))
	}
}

func TestPlayerResetForRoundPreservesScore(t *testing.T) {
	p := NewPlayer(0, "A", 5, 5, 1)
	p.Score = 3
	p.ShieldCharges = 1
	p.ShotgunLeft = 4
	p.Level = LevelJump
	p.ShotCooldown = 1

	p.ResetForRound(10, 7, -1)

	if p.Score != 3 {
		t.Fatalf("score lost across round reset: %d", p.Score)
	}
	if p.X != 10 || p.Y != 7 || p.FacingX != -1 || p.FacingY != 0 {
		t.Fatalf("spawn state wrong: pos (%f,%f) facing (%d,%d)", p.X, p.Y, p.FacingX, p.FacingY)
	}
	if p.Level != LevelNormal || p.ShieldCharges != 0 || p.ShotgunLeft != 0 || p.ShotCooldown != 0 {
		t.Fatalf("transient state survived reset")
	}
	if !p.Alive {
		t.Fatalf("player not revived by reset")
	}
}

func TestDeadPlayerIgnoresActions(t *testing.T) {
	sp := &recordSpawner{}
	p := NewPlayer(0, "A", 5, 5, 1)
	p.Alive = false

	stepFor(p, Actions{Right: true, Shoot: true}, sp, 3)
	stepFor(p, Actions{}, sp, 1)

	if p.X != 5 {
		t.Fatalf("dead player moved: x = %f", p.X)
	}
	if len(sp.projectiles) != 0 {
		t.Fatalf("dead player fired %d projectiles", len(sp.projectiles))
	}
}

func TestCooldownFraction(t *testing.T) {
	if got := CooldownFraction(1.1, 2.2); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("fraction = %f, want 0.5", got)
	}
	if got := CooldownFraction(0, 2.2); got != 0 {
		t.Fatalf("fraction at ready = %f, want 0", got)
	}
	if got := CooldownFraction(3, 2.2); got != 1 {
		t.Fatalf("fraction clamped = %f, want 1", got)
	}
}
