package object

// Projectile tuning.
const (
	ProjectileSpeed        = 40.0 // Cells per second per axis, normal tier
	ChargedProjectileSpeed = 28.0 // Charged shots trade speed for radius
	ProjectileLifetime     = 3.0  // Seconds before a projectile expires
	HitRadiusNormal        = 0.75
	HitRadiusCharged       = 1.6
)

// Tier is a projectile's damage class, fixed at fire time by how long
// the shot was charged.
type Tier int

const (
	TierNormal Tier = iota
	TierCharged
)

func (t Tier) String() string {
	switch t {
	case TierNormal:
		return "NORMAL"
	case TierCharged:
		return "CHARGED"
	default:
		return "UNKNOWN"
	}
}

// Projectile is a shot in flight. Its level and tier are immutable
// after firing; only players on the same level can be hit.
type Projectile struct {
	X, Y      float64 // Position (sub-cell)
	VX, VY    float64 // Velocity in cells per second
	DirX      int     // Compass direction at fire time, for drawing
	DirY      int
	Level     Level
	Tier      Tier
	Lifetime  float64 // Seconds remaining before expiry
	OwnerID   int     // Seat index of the firing player
	destroyed bool
}

// NewProjectile creates a shot at (x,y) travelling along the compass
// direction (dirX,dirY). Diagonal shots keep full per-axis speed, so
// they cover more ground per second than straight ones.
func NewProjectile(ownerID int, x, y float64, dirX, dirY int, level Level, tier Tier) *Projectile {
	speed := ProjectileSpeed
	if tier == TierCharged {
		speed = ChargedProjectileSpeed
	}
	return &Projectile{
		X:        x,
		Y:        y,
		VX:       float64(dirX) * speed,
		VY:       float64(dirY) * speed,
		DirX:     dirX,
		DirY:     dirY,
		Level:    level,
		Tier:     tier,
		Lifetime: ProjectileLifetime,
		OwnerID:  ownerID,
	}
}

// HitRadius returns the collision radius for player hit tests.
func (p *Projectile) HitRadius() float64 {
	if p.Tier == TierCharged {
		return HitRadiusCharged
	}
	return HitRadiusNormal
}

// MarkDestroyed flags the projectile for removal at the end of the
// current tick.
func (p *Projectile) MarkDestroyed() {
	p.destroyed = true
	p.Lifetime = 0
}

// IsDestroyed reports whether the projectile expired or was consumed.
func (p *Projectile) IsDestroyed() bool {
	return p.destroyed || p.Lifetime <= 0
}

// Update advances the projectile one tick. It returns true when the
// projectile should be removed: expired, destroyed, or out of bounds.
func (p *Projectile) Update(dt float64, arena Arena) bool {
	p.Lifetime -= dt
	if p.IsDestroyed() {
		return true
	}

	p.X += p.VX * dt
	p.Y += p.VY * dt

	return !arena.Contains(p.X, p.Y)
}
