package object

// TrailDecay is how long a dash trail mark stays visible, in seconds.
const TrailDecay = 0.3

// TrailMark is a short-lived afterimage left on a cell a dash passed
// through. Trails are cosmetic and never collide with anything.
type TrailMark struct {
	X, Y     int // Cell position
	Lifetime float64
}

// NewTrailMark places a fresh mark on cell (x,y).
func NewTrailMark(x, y int) TrailMark {
	return TrailMark{X: x, Y: y, Lifetime: TrailDecay}
}

// Update counts down the mark. Returns true when it has faded out.
func (t *TrailMark) Update(dt float64) bool {
	t.Lifetime -= dt
	return t.Lifetime <= 0
}

// Faded reports how far through its decay the mark is, 0 fresh to 1
// gone, for dimmed rendering near the end.
func (t *TrailMark) Faded() float64 {
	if t.Lifetime <= 0 {
		return 1
	}
	return 1 - t.Lifetime/TrailDecay
}
