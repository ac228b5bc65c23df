package invaders

import (
	"fmt"

	"github.com/dperique/invaders/internal/core"
)

// Glyphs for the field entities.
const (
	PlayerGlyph      = '█'
	AlienGlyph       = '▼'
	MissileGlyph     = '│'
	AlienBulletGlyph = '●'
)

// HUD occupies the top rows; the playfield is projected below it.
const hudRows = 2

// Smallest terminal the playfield renders sensibly on. The simulation is
// unaffected either way; a smaller window just shows a notice.
const (
	minScreenW = 60
	minScreenH = 20
)

// viewport projects logical field coordinates onto screen cells.
type viewport struct {
	top    int
	scaleX float64
	scaleY float64
}

func newViewport(dst *core.Screen) viewport {
	return viewport{
		top:    hudRows,
		scaleX: float64(dst.Width()) / FieldW,
		scaleY: float64(dst.Height()-hudRows) / FieldH,
	}
}

// rect returns the draw rectangle for an entity. Every entity covers at
// least one cell so bullets stay visible on small terminals.
func (v viewport) rect(e Entity) core.Rect {
	return core.Rect{
		X: int(e.X * v.scaleX),
		Y: v.top + int(e.Y*v.scaleY),
		W: core.Max(1, int(e.W*v.scaleX)),
		H: core.Max(1, int(e.H*v.scaleY)),
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorGray)
		return
	}

	g.renderHUD(dst)

	v := newViewport(dst)
	for i := range g.aliens {
		dst.Fill(v.rect(g.aliens[i]), AlienGlyph, core.ColorRed)
	}
	for i := range g.alienBullets {
		dst.Fill(v.rect(g.alienBullets[i]), AlienBulletGlyph, core.ColorBrightRed)
	}
	for i := range g.playerBullets {
		dst.Fill(v.rect(g.playerBullets[i]), MissileGlyph, core.ColorYellow)
	}
	g.renderPlayer(dst, v)

	g.renderOverlay(dst)
}

// renderPlayer draws the ship, blinking it during the post-hit grace
// period: 10 ticks on, 10 ticks off.
func (g *Game) renderPlayer(dst *core.Screen, v viewport) {
	if g.invulnerable && g.invulnTicks%20 >= 10 {
		return
	}
	dst.Fill(v.rect(g.player), PlayerGlyph, core.ColorGreen)
}

// renderHUD draws score, lives and wave on the top row, with the high
// score and the missile counter on the separator row below.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorWhite)
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives), core.ColorWhite)

	waveText := fmt.Sprintf("Wave: %d", g.wave)
	dst.DrawTextColor(dst.Width()-len(waveText)-1, 0, waveText, core.ColorWhite)

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
	dst.DrawTextColor(1, 1, fmt.Sprintf(" High: %d ", g.highScore), core.ColorBrightYellow)

	ammoText := fmt.Sprintf(" Missiles: %d/%d ", len(g.playerBullets), MaxPlayerBullets)
	dst.DrawTextColor(dst.Width()-len(ammoText)-1, 1, ammoText, core.ColorGray)
}

// renderOverlay draws the paused and game over banners.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.gameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		drawBanner(dst, "GAME OVER", subtitle, core.ColorBrightRed)
	case g.paused:
		drawBanner(dst, "PAUSED", "Press P to resume", core.ColorCyan)
	}
}

// drawBanner draws a centered message box over the playfield.
func drawBanner(dst *core.Screen, title, subtitle string, color core.Color) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), color)
	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, color)
	dst.DrawTextColor(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}
