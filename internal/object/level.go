package object

// Level is the discrete vertical position of a collidable entity.
// Only equality matters: a projectile can hit a player solely when both
// occupy the same level.
type Level int

const (
	LevelCrouch Level = iota
	LevelNormal
	LevelJump
)

// String returns the HUD name of the level.
func (l Level) String() string {
	switch l {
	case LevelCrouch:
		return "CROUCH"
	case LevelNormal:
		return "NORMAL"
	case LevelJump:
		return "JUMP"
	default:
		return "UNKNOWN"
	}
}

// LevelsMatch reports whether two entities can collide across the
// level dimension. Pure equality; the level order is irrelevant.
func LevelsMatch(a, b Level) bool {
	return a == b
}
