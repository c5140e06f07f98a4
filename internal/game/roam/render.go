package roam

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/overland/internal/core"
)

const hudHeight = 2

// facingGlyphs are the eight compass arrows, indexed clockwise from east.
// Screen Y grows downward, matching world Y.
var facingGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Render draws the viewport (one terminal cell per tile, camera centered on
// the player), then projectiles, the player, and the HUD.
func (g *Game) Render(dst *core.Screen) {
	if g.collider == nil {
		return
	}

	w := dst.Width()
	h := dst.Height()
	ptx, pty := g.collider.TileIndexOf(g.player.Pos.X, g.player.Pos.Y)
	originTX := ptx - w/2
	originTY := pty - (h-hudHeight)/2 - hudHeight

	for y := hudHeight; y < h; y++ {
		for x := 0; x < w; x++ {
			attrs := g.collider.TileAtIndex(originTX+x, originTY+y).Attrs()
			dst.SetCell(x, y, attrs.Rune, attrs.Color)
		}
	}

	for _, pr := range g.Projectiles() {
		tx, ty := g.collider.TileIndexOf(pr.Pos.X, pr.Pos.Y)
		dst.SetCell(tx-originTX, ty-originTY, '•', core.ColorBrightYellow)
	}

	dst.SetCell(ptx-originTX, pty-originTY, '@', core.ColorBrightWhite)
	fx, fy := facingOffset(g.player.Rotation)
	dst.SetCell(ptx-originTX+fx, pty-originTY+fy, facingGlyph(g.player.Rotation), core.ColorBrightCyan)

	g.renderHUD(dst)

	if g.paused {
		dst.DrawTextCentered(h/2, "  PAUSED  ")
	}
	if g.gameOver {
		dst.DrawTextCentered(h/2, fmt.Sprintf("  TIME UP - score %d - press R to restart  ", g.score()))
	}
}

// renderHUD draws the two status lines at the top of the screen.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawHLine(0, 0, dst.Width(), ' ')
	dst.DrawHLine(0, 1, dst.Width(), ' ')

	pips := strings.Repeat("◆", g.player.DashCharges) +
		strings.Repeat("◇", g.player.Tuning().Dash.MaxCharges-g.player.DashCharges)

	line := fmt.Sprintf(" %s  score %d  dash %s  hp %.0f",
		strings.ToUpper(string(g.mode)), g.score(), pips, g.player.Health)
	if g.mode == ModeRush {
		remaining := g.cfg.Modes.RushTimeLimit - g.elapsed
		if remaining < 0 {
			remaining = 0
		}
		line += fmt.Sprintf("  time %3.0fs", remaining)
	}
	dst.DrawTextColored(0, 0, line, core.ColorBrightWhite)

	tx, ty := g.collider.TileIndexOf(g.player.Pos.X, g.player.Pos.Y)
	info := fmt.Sprintf(" tile (%d,%d)  chunks %d  shots %d", tx, ty, len(g.visited), g.shots)
	dst.DrawTextColored(0, 1, info, core.ColorGray)
}

// facingGlyph picks the compass arrow nearest to the rotation.
func facingGlyph(rot float64) rune {
	return facingGlyphs[facingIndex(rot)]
}

// facingOffset returns the tile offset in front of the player for the
// direction indicator.
func facingOffset(rot float64) (int, int) {
	switch facingIndex(rot) {
	case 0:
		return 1, 0
	case 1:
		return 1, 1
	case 2:
		return 0, 1
	case 3:
		return -1, 1
	case 4:
		return -1, 0
	case 5:
		return -1, -1
	case 6:
		return 0, -1
	default:
		return 1, -1
	}
}

// facingIndex quantizes a rotation in (-pi, pi] to one of eight sectors.
func facingIndex(rot float64) int {
	sector := int(math.Round(rot / (math.Pi / 4)))
	return ((sector % 8) + 8) % 8
}
