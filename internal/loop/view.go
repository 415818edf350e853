package loop

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tomaskol/termduel/internal/draw"
	"github.com/tomaskol/termduel/internal/match"
	"github.com/tomaskol/termduel/internal/object"
)

// Glyphs indexed by level (crouch, normal, jump). Each seat keeps its
// own silhouette so the players stay tellable apart at a glance.
var (
	playerGlyphs = [2][3]rune{
		{'·', 'A', '▲'},
		{'•', 'B', '◆'},
	}
	projectileGlyphs = [3]rune{'.', '*', 'O'}
	powerupGlyphs    = [3]rune{'S', 'D', 'H'}
)

// trailGlyph picks a shade for a dash afterimage by its fade progress.
func trailGlyph(faded float64) rune {
	switch {
	case faded < 1.0/3.0:
		return '▓'
	case faded < 2.0/3.0:
		return '▒'
	default:
		return '░'
	}
}

// playerStatus formats one seat's HUD line.
func playerStatus(v match.PlayerView) string {
	var buffs []string
	if v.ShotgunLeft > 0 {
		buffs = append(buffs, "SHOTGUN")
	}
	if v.DashBoostLeft > 0 {
		buffs = append(buffs, "DASH+")
	}
	if v.ShieldCharges > 0 {
		buffs = append(buffs, "SHIELD")
	}
	buffText := "-"
	if len(buffs) > 0 {
		buffText = strings.Join(buffs, ",")
	}
	return fmt.Sprintf("%s LVL:%-6s DASH:%4.1fs SHOT:%4.2fs BUFFS:%s",
		v.Name, v.Level, v.DashCooldown, v.ShotCooldown, buffText)
}

// scoreLine formats the running score between rounds.
func scoreLine(snap match.Snapshot) string {
	p1, p2 := snap.Players[0], snap.Players[1]
	return fmt.Sprintf("%s %d - %d %s", p1.Name, p1.Score, p2.Score, p2.Name)
}

// drawMatch renders the arena frame from the last stepped snapshot.
func (s *Session) drawMatch() error {
	fw, fh := s.canvas.Size()
	if s.termW > 0 && (s.termW < fw || s.termH < fh) {
		s.cw.WriteAt(2, 2, fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", fw, fh, s.termW, s.termH))
		return s.cw.Flush()
	}

	snap := s.prevSnap
	arena := snap.Arena
	s.canvas.Clear()

	for x := 0; x < arena.Width+2; x++ {
		s.canvas.Set(x+1, 1, '#', draw.StylePlain)
		s.canvas.Set(x+1, arena.Height+2, '#', draw.StylePlain)
	}
	for y := 0; y < arena.Height; y++ {
		s.canvas.Set(1, y+2, '#', draw.StylePlain)
		s.canvas.Set(arena.Width+2, y+2, '#', draw.StylePlain)
	}

	for _, t := range snap.Trails {
		s.canvas.Set(t.X+2, t.Y+2, trailGlyph(t.Faded), draw.StyleDim)
	}

	for _, pw := range snap.Powerups {
		s.canvas.Set(pw.X+2, pw.Y+2, powerupGlyphs[pw.Kind], draw.StyleAccent)
	}

	for _, pr := range snap.Projectiles {
		cx := int(math.Round(pr.X))
		cy := int(math.Round(pr.Y))
		style := draw.PlayerStyle(pr.OwnerID, pr.Tier == object.TierCharged)
		s.canvas.Set(cx+2, cy+2, projectileGlyphs[pr.Level], style)
	}

	for seat, v := range snap.Players {
		if !v.Alive {
			continue
		}
		style := draw.PlayerStyle(seat, true)
		if v.Charging && v.ChargeFraction() >= 1 {
			// A ready charge glows.
			style = draw.StyleAccent
		}
		cx := int(math.Round(v.X))
		cy := int(math.Round(v.Y))
		s.canvas.Set(cx+2, cy+2, playerGlyphs[seat][v.Level], style)
	}

	s.canvas.WriteText(2, 0, playerStatus(snap.Players[0]), draw.StyleP1)
	s.canvas.WriteText(2, arena.Height+3, playerStatus(snap.Players[1]), draw.StyleP2)
	s.canvas.WriteText(2, arena.Height+5, "ESC back to menu | P1 reset level: V | P2 reset level: M", draw.StylePlain)

	if snap.Phase != match.PhaseActive {
		s.drawRoundBreak(snap)
	}

	return s.canvas.Render(s.writer)
}

// drawRoundBreak overlays the point popup on the frozen arena. The
// continue prompt only appears once the intermission starts.
func (s *Session) drawRoundBreak(snap match.Snapshot) {
	center := (snap.Arena.Height + 6) / 2

	title := "DOUBLE KO!"
	if len(snap.Scorers) == 1 {
		title = fmt.Sprintf("%s WINS THE ROUND!", snap.Players[snap.Scorers[0]].Name)
	}
	s.canvas.CenterText(center-2, " "+title+" ", draw.StyleBold)
	s.canvas.CenterText(center, " "+scoreLine(snap)+" ", draw.StylePlain)

	if snap.Phase == match.PhaseIntermission && time.Now().UnixMilli()/blinkPeriodMillis%2 == 0 {
		s.canvas.CenterText(center+2, " Press any key for the next round. ", draw.StylePlain)
	}
}
