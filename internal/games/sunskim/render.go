package sunskim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/sunskim/internal/core"
)

// World units covered by one terminal cell. Rows are twice as tall as
// columns are wide.
const (
	cellW = 8.0
	cellH = 16.0
)

// Visual characters for rendering
const (
	SunChar      = '█'
	SunEdgeChar  = '▓'
	StarChar     = '·'
	AsteroidChar = '◆'
	BarrierChar  = '▒'
	DebrisChar   = '*'
)

const (
	asteroidColor core.Color = "#8a9c54"
	barrierColor  core.Color = "#ff6a3d"
	debrisTicks              = 18
)

// debris is a short-lived marker left where an asteroid was destroyed.
type debris struct {
	pos core.Vec2
	ttl int
}

// trackDebris ages existing markers and adds one per collision.
func (g *Game) trackDebris(events []core.Event) {
	kept := g.debris[:0]
	for _, d := range g.debris {
		d.ttl--
		if d.ttl > 0 {
			kept = append(kept, d)
		}
	}
	g.debris = kept
	for _, ev := range events {
		if ev.Kind == core.EventCollision {
			g.debris = append(g.debris, debris{pos: ev.Pos, ttl: debrisTicks})
		}
	}
}

// worldToCell maps a world position to a screen cell with the camera at
// the screen center. World Y points up.
func (g *Game) worldToCell(dst *core.Screen, p core.Vec2) (int, int) {
	cx := float64(dst.Width()) / 2
	cy := float64(dst.Height()) / 2
	x := cx + (p.X-g.camera.X)/cellW
	y := cy - (p.Y-g.camera.Y)/cellH
	return int(math.Floor(x)), int(math.Floor(y))
}

// cellToWorld maps the center of a screen cell back to world space.
func (g *Game) cellToWorld(dst *core.Screen, x, y int) core.Vec2 {
	cx := float64(dst.Width()) / 2
	cy := float64(dst.Height()) / 2
	return core.Vec2{
		X: g.camera.X + (float64(x)+0.5-cx)*cellW,
		Y: g.camera.Y - (float64(y)+0.5-cy)*cellH,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	s := g.session
	pal := s.Palette()

	g.drawBackdrop(dst, pal)

	for _, op := range s.ObstaclePoses() {
		g.drawObstacle(dst, op)
	}

	for _, d := range g.debris {
		x, y := g.worldToCell(dst, d.pos)
		dst.SetColored(x, y, DebrisChar, core.ColorOrange)
		if d.ttl < debrisTicks/2 {
			dst.SetColored(x-1, y, DebrisChar, core.ColorGray)
			dst.SetColored(x+1, y, DebrisChar, core.ColorGray)
		}
	}

	pose := s.PlayerPose()
	px, py := g.worldToCell(dst, pose.Pos())
	dst.SetColored(px, py, arrowFor(pose.Heading()), pal.Player)

	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if s.GameOver() {
		drawCenteredMessage(dst, s.DeathReason(),
			fmt.Sprintf("Score: %s  x%d  |  Press R to restart", FormatNumber(s.Score.Value), s.Score.Multiplier))
	}
}

// drawBackdrop paints the sun and a starfield anchored to world space so
// the camera motion is visible.
func (g *Game) drawBackdrop(dst *core.Screen, pal Palette) {
	sunR := g.session.Sun.Radius
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			w := g.cellToWorld(dst, x, y)
			d := w.Len()
			switch {
			case d < sunR*0.85:
				dst.SetColored(x, y, SunChar, pal.SunInner)
			case d < sunR:
				dst.SetColored(x, y, SunEdgeChar, pal.SunOuter)
			case isStar(w):
				dst.SetColored(x, y, StarChar, pal.Background)
			}
		}
	}
}

// isStar deterministically scatters stars on a coarse world grid.
func isStar(w core.Vec2) bool {
	gx := int64(math.Floor(w.X / (cellW * 3)))
	gy := int64(math.Floor(w.Y / (cellH * 2)))
	h := uint64(gx*73856093) ^ uint64(gy*19349663) //#nosec G115 -- hash computation
	h ^= h >> 13
	h *= 0x5bd1e995
	h ^= h >> 15
	return h%23 == 0
}

func (g *Game) drawObstacle(dst *core.Screen, op ObstaclePose) {
	x, y := g.worldToCell(dst, op.Pose.Pos())
	if op.Kind == KindAsteroid {
		dst.SetColored(x, y, AsteroidChar, asteroidColor)
		return
	}

	// Barriers are drawn as filled discs of their collision reach
	rx := int(op.Reach / cellW)
	ry := int(op.Reach / cellH)
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			fx := float64(dx) * cellW
			fy := float64(dy) * cellH
			if fx*fx+fy*fy <= op.Reach*op.Reach {
				dst.SetColored(x+dx, y+dy, BarrierChar, barrierColor)
			}
		}
	}
}

// arrowFor picks the arrow glyph nearest to a world-space angle.
func arrowFor(angle float64) rune {
	arrows := [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}
	sector := int(math.Round(core.WrapAngle(angle)/(math.Pi/4))) % 8
	return arrows[sector]
}

// drawHUD draws score, gauges and nova banners.
func (g *Game) drawHUD(dst *core.Screen) {
	s := g.session
	r := s.Readout()
	w := dst.Width()
	h := dst.Height()

	scoreText := fmt.Sprintf(" %s ", FormatNumber(r.Score))
	dst.DrawTextColored(w-len(scoreText)-1, 0, scoreText, core.ColorWhite)
	multText := fmt.Sprintf(" %dx ", r.Multiplier)
	dst.DrawTextColored(w-len(multText)-1, 1, multText, core.ColorRed)

	barW := core.Clamp(w/3, 10, 30)
	dst.DrawTextColored(1, h-2, "POWER ", core.ColorYellow)
	dst.DrawBar(8, h-2, barW, r.Power/ResourceMax, core.ColorYellow)

	label, col := "SHIELD", core.ColorCyan
	if r.ReserveTag == "heat" {
		label, col = "HEAT  ", core.ColorRed
	}
	dst.DrawTextColored(1, h-1, label, col)
	dst.DrawBar(8, h-1, barW, r.Reserve/ResourceMax, col)

	switch s.Phase() {
	case PhaseBuildingUp:
		// Blink twice a second
		if int(s.Elapsed()*4)%2 == 0 {
			dst.DrawTextCentered(1, " NOVA ALERT - AUTOPILOT ON ", core.ColorRed)
		}
	case PhaseDuring:
		dst.DrawTextCentered(1, " SUPERNOVA - DODGE THE DEBRIS ", core.ColorOrange)
	case PhaseAfter:
		dst.DrawTextCentered(1, " AUTOPILOT ON ", core.ColorYellow)
	}

	if r.Alarm {
		warn := " SHIELDS LOW "
		if r.ReserveTag == "heat" {
			warn = " HEAT CRITICAL "
		}
		dst.DrawTextCentered(h-3, warn, core.ColorRed)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	tl := len([]rune(title))
	sl := len([]rune(subtitle))
	box := core.CenteredRect(dst.Width(), dst.Height(), max(tl, sl)+4, 5)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColored(box.X+(box.W-tl)/2, box.Y+1, title, core.ColorWhite)
	dst.DrawTextColored(box.X+(box.W-sl)/2, box.Y+3, subtitle, core.ColorGray)
}
