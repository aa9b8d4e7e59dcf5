package surimi

import (
	"fmt"
	"math"

	"github.com/vovakirdan/surimi-survivors/internal/assets"
	"github.com/vovakirdan/surimi-survivors/internal/combat"
	"github.com/vovakirdan/surimi-survivors/internal/core"
)

// Visual characters for rendering
const (
	SeabedChar    = '·'
	HealthFull    = '█'
	HealthEmpty   = '░'
	seabedSpacing = 8 // World units between seabed dots
	healthBarW    = 7
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	cam := Camera{Focus: g.player.Center(), W: dst.Width(), H: dst.Height()}

	g.drawSeabed(dst, cam)

	for _, w := range g.walls {
		g.drawBody(dst, cam, w.Rect(), assets.Wall)
	}
	for _, e := range g.enemies {
		if !e.Alive {
			continue
		}
		g.drawBody(dst, cam, e.Rect(), e.Kind.String())
	}
	for _, p := range g.projectiles {
		g.drawBody(dst, cam, p.Rect(), assets.Projectile)
	}
	g.drawBody(dst, cam, g.player.Rect(), assets.Player)
	g.drawHealthBar(dst, cam)

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		title := "GAME OVER"
		if g.cleared {
			title = "WATERS CLEARED"
		}
		g.drawCenteredMessage(dst, title,
			fmt.Sprintf("Score: %d  Kills: %d  Time: %s  |  Press R to restart", g.score, g.kills, g.playTime()))
	}
}

// drawSeabed draws a fixed world-space dot grid so movement is visible.
func (g *Game) drawSeabed(dst *core.Screen, cam Camera) {
	view := cam.View()
	startX := math.Floor(view.X/seabedSpacing) * seabedSpacing
	startY := math.Floor(view.Y/seabedSpacing) * seabedSpacing
	for wy := startY; wy < view.Bottom(); wy += seabedSpacing / 2 {
		for wx := startX; wx < view.Right(); wx += seabedSpacing {
			x, y := cam.ToScreen(core.V(wx, wy))
			dst.SetColor(x, y, SeabedChar, core.ColorBlue)
		}
	}
}

// drawBody draws a sprite over a world rectangle if it is on screen.
func (g *Game) drawBody(dst *core.Screen, cam Camera, r core.Rect, sprite string) {
	if !cam.Visible(r) {
		return
	}
	sp := g.sheet.Get(sprite)
	if sp == nil {
		return
	}
	x, y, w, h := cam.Project(r)
	sp.Draw(dst, x, y, w, h)
}

// drawHealthBar draws the player's health bar just below its body.
func (g *Game) drawHealthBar(dst *core.Screen, cam Camera) {
	r := g.player.Rect()
	x, y := cam.ToScreen(core.V(r.Center().X, r.Bottom()))
	x -= healthBarW / 2

	frac := combat.HealthFraction(g.player.Health, combat.MaxHealth)
	filled := int(math.Round(frac * healthBarW))

	color := core.ColorGreen
	switch {
	case frac <= 0.25:
		color = core.ColorRed
	case frac <= 0.5:
		color = core.ColorYellow
	}

	dst.DrawHLine(x, y, filled, HealthFull, color)
	dst.DrawHLine(x+filled, y, healthBarW-filled, HealthEmpty, core.ColorGray)
}

// drawHUD draws the status line at the top of the screen.
func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" HP %3.0f  Kills: %d  Score: %d  %s ",
		g.player.Health, g.kills, g.score, g.playTime())
	dst.DrawTextColor(1, 0, hud, core.ColorWhite)
}

// playTime returns the time survived as h:mm:ss.
func (g *Game) playTime() string {
	return FormatPlayTime(g.tickCount, g.runtime.TickRate)
}

// FormatPlayTime formats a tick count as h:mm:ss.
func FormatPlayTime(ticks, tickRate int) string {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	secs := ticks / tickRate
	return fmt.Sprintf("%d:%02d:%02d", secs/3600, secs/60%60, secs%60)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
