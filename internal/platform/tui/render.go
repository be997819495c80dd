package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/lander"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// padColors keys off the score multiplier: the narrower the pad, the hotter
// the color.
var padColors = map[int]core.Color{
	1: core.ColorBrightGreen,
	2: core.ColorBrightYellow,
	3: core.ColorOrange,
	5: core.ColorBrightRed,
}

// drawSnapshot projects the simulation snapshot onto the cell grid.
func drawSnapshot(s *core.Screen, snap lander.Snapshot) {
	s.Clear()

	if snap.ScreenW <= 0 || len(snap.Terrain) < 4 {
		s.DrawTextCentered(s.Height()/2, "waiting for terminal size...")
		return
	}

	drawTerrain(s, snap)
	drawPads(s, snap)
	drawEffects(s, snap)
	drawShip(s, snap)
	drawHUD(s, snap)
	drawOverlay(s, snap)
}

func drawTerrain(s *core.Screen, snap lander.Snapshot) {
	// Drop the two closing polygon points; they only matter for filled
	// rendering on pixel hosts.
	ground := snap.Terrain[:len(snap.Terrain)-2]

	for cx := 0; cx < s.Width(); cx++ {
		wx := (float64(cx) + 0.5) * cellW
		top := cellY(surfaceAt(ground, wx))

		surfColor := core.ColorBrightWhite
		if wx <= snap.MountainLeft || wx >= snap.MountainRight {
			surfColor = core.ColorOrange
		}

		if top < 0 {
			top = 0
		}
		s.SetCell(cx, top, '█', surfColor)
		for cy := top + 1; cy < s.Height(); cy++ {
			s.SetCell(cx, cy, '░', core.ColorGray)
		}
	}
}

func drawPads(s *core.Screen, snap lander.Snapshot) {
	for _, p := range snap.Pads {
		color, ok := padColors[p.Multiplier]
		if !ok {
			color = core.ColorBrightGreen
		}

		left := cellX(p.X)
		right := cellX(p.X + p.Width)
		cy := cellY(p.Y)
		if cy < 0 || cy >= s.Height() {
			continue
		}
		for cx := left; cx <= right; cx++ {
			s.SetCell(cx, cy, '▀', color)
		}

		label := fmt.Sprintf("x%d", p.Multiplier)
		s.DrawTextColored((left+right)/2, cy+1, label, color)
	}
}

func drawShip(s *core.Screen, snap lander.Snapshot) {
	if snap.Body == nil {
		return
	}

	if len(snap.Flame) == 3 {
		plotLine(s, snap.Flame[0], snap.Flame[2], '*', core.ColorBrightYellow)
		plotLine(s, snap.Flame[1], snap.Flame[2], '*', core.ColorOrange)
	}

	for _, leg := range snap.Legs {
		plotLine(s, leg[0], leg[1], '·', core.ColorWhite)
	}

	for i := range snap.Body {
		a := snap.Body[i]
		b := snap.Body[(i+1)%len(snap.Body)]
		plotLine(s, a, b, '█', core.ColorBrightWhite)
	}
}

func drawEffects(s *core.Screen, snap lander.Snapshot) {
	for _, d := range snap.Debris {
		color := core.ColorGray
		if d.Alpha > 0.4 {
			color = core.ColorWhite
		}
		plotLine(s, d.A, d.B, '-', color)
	}

	for _, p := range snap.Particles {
		r, color := '·', core.ColorOrange
		if p.Alpha > 0.5 {
			r, color = '*', core.ColorBrightYellow
		}
		s.SetCell(cellX(p.Pos.X), cellY(p.Pos.Y), r, color)
	}
}

func drawHUD(s *core.Screen, snap lander.Snapshot) {
	hud := snap.HUD

	left := fmt.Sprintf(" SCORE %-6d LEVEL %-3d LIVES %d ", hud.Score, hud.Level, hud.Lives)
	s.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	fuelColor := core.ColorBrightGreen
	switch {
	case hud.FuelFraction < 0.25:
		fuelColor = core.ColorBrightRed
	case hud.FuelFraction < 0.5:
		fuelColor = core.ColorBrightYellow
	}
	filled := int(hud.FuelFraction*10 + 0.5)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	x := len(left)
	s.DrawTextColored(x, 0, "FUEL ", core.ColorWhite)
	s.DrawTextColored(x+5, 0, bar, fuelColor)

	right := fmt.Sprintf("HS %+5.0f  VS %+5.0f  ALT %5.0f ", hud.HSpeed, hud.VSpeed, hud.Altitude)
	s.DrawTextColored(s.Width()-len(right), 0, right, core.ColorWhite)
}

func drawOverlay(s *core.Screen, snap lander.Snapshot) {
	mid := s.Height() / 2

	if snap.Message != "" {
		box(s, mid-1, snap.Message)
	}

	switch snap.State {
	case lander.StateReady:
		s.DrawTextCentered(mid-3, "L U N A R   L A N D E R")
		s.DrawTextCentered(mid+3, "press r to launch")
	case lander.StatePaused:
		box(s, mid-1, "PAUSED")
	case lander.StateGameOver:
		s.DrawTextCentered(mid+2, fmt.Sprintf("final score %d", snap.HUD.Score))
		s.DrawTextCentered(mid+3, "press r for a new game")
	}
}

// box draws a one-line bordered message centered horizontally.
func box(s *core.Screen, y int, text string) {
	w := len(text) + 4
	x := (s.Width() - w) / 2
	s.DrawBox(x, y, w, 3)
	s.FillRect(x+1, y+1, w-2, 1, ' ', core.ColorDefault)
	s.DrawText(x+2, y+1, text)
}

func cellX(wx float64) int { return int(wx / cellW) }
func cellY(wy float64) int { return int(wy / cellH) }

// surfaceAt interpolates the terrain polyline at x, with constant
// extrapolation past the ends.
func surfaceAt(pts []core.Vec2, x float64) float64 {
	if x <= pts[0].X {
		return pts[0].Y
	}
	last := pts[len(pts)-1]
	if x >= last.X {
		return last.Y
	}

	i := sort.Search(len(pts), func(i int) bool { return pts[i].X >= x })
	a, b := pts[i-1], pts[i]
	t := (x - a.X) / (b.X - a.X)
	return core.Lerp(a.Y, b.Y, t)
}

// plotLine draws a world-space segment onto the cell grid.
func plotLine(s *core.Screen, a, b core.Vec2, r rune, c core.Color) {
	x0, y0 := cellX(a.X), cellY(a.Y)
	x1, y1 := cellX(b.X), cellY(b.Y)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		s.SetCell(x0, y0, r, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
