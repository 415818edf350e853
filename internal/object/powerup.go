package object

// Powerup tuning.
const (
	PowerupSpawnInterval = 8.0  // Seconds between spawn attempts
	PowerupLifetime      = 14.0 // Seconds an uncollected powerup persists
	ShotgunDuration      = 10.0 // Seconds of triple shot per pickup
	DashBoostDuration    = 10.0 // Seconds of shortened dash cooldown
	DashBoostCooldown    = 0.6  // Dash cooldown while boosted
	PickupRadius         = 0.9  // Player distance that collects a powerup
)

// PowerupKind selects the effect a pickup grants.
type PowerupKind int

const (
	PowerupShotgun PowerupKind = iota
	PowerupDashBoost
	PowerupShield
)

// PowerupKindCount is the number of kinds the spawner rolls between.
const PowerupKindCount = 3

func (k PowerupKind) String() string {
	switch k {
	case PowerupShotgun:
		return "SHOTGUN"
	case PowerupDashBoost:
		return "DASH BOOST"
	case PowerupShield:
		return "SHIELD"
	default:
		return "UNKNOWN"
	}
}

// Powerup is an uncollected pickup sitting on an arena cell. Pickups
// are level-agnostic: walking over the cell collects regardless of the
// player's current level.
type Powerup struct {
	X, Y     int // Cell position
	Kind     PowerupKind
	Lifetime float64 // Seconds remaining before despawn
}

// NewPowerup places a pickup of the given kind on cell (x,y).
func NewPowerup(x, y int, kind PowerupKind) *Powerup {
	return &Powerup{X: x, Y: y, Kind: kind, Lifetime: PowerupLifetime}
}

// Update counts down the despawn timer. Returns true when the powerup
// expired uncollected.
func (pw *Powerup) Update(dt float64) bool {
	pw.Lifetime -= dt
	return pw.Lifetime <= 0
}

// Apply grants the powerup's effect to a player. Timed buffs refresh
// to at least their full duration and never shorten a longer remainder;
// the shield caps at one charge.
func (pw *Powerup) Apply(p *Player) {
	switch pw.Kind {
	case PowerupShotgun:
		if p.ShotgunLeft < ShotgunDuration {
			p.ShotgunLeft = ShotgunDuration
		}
	case PowerupDashBoost:
		if p.DashBoostLeft < DashBoostDuration {
			p.DashBoostLeft = DashBoostDuration
		}
	case PowerupShield:
		p.ShieldCharges = 1
	}
}
