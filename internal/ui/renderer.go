package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/go-tetris/internal/game"
)

// Cell glyphs. Each cell is 2 characters wide for a square-ish appearance.
const (
	activeGlyph  = "██"
	ghostGlyph   = "░░"
	terrainGlyph = "▓▓"
	emptyGlyph   = " ·"
)

// Color palette
var (
	kindColors = map[game.PieceKind]lipgloss.Color{
		game.I: lipgloss.Color("#00d7ff"),
		game.J: lipgloss.Color("#3a5fff"),
		game.L: lipgloss.Color("#ff8c00"),
		game.O: lipgloss.Color("#ffd700"),
		game.S: lipgloss.Color("#00d75f"),
		game.T: lipgloss.Color("#af5fff"),
		game.Z: lipgloss.Color("#ff3a3a"),
	}

	emptyStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#33334d"))

	boardBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("#444466"))

	// HUD styles
	hudBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff8844")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	gameOverStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444")).
			Bold(true).
			Blink(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555"))
)

func kindStyle(kind game.PieceKind) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color("#1a1a2e")).
		Foreground(kindColors[kind])
}

// RenderBoard converts a snapshot into a styled terminal string. Only the
// visible rows are drawn, top row first.
func RenderBoard(state *game.Snapshot) string {
	if state == nil {
		return "Waiting for game state..."
	}

	active := make(map[game.Point]bool, len(state.Active))
	for _, c := range state.Active {
		active[c] = true
	}
	ghost := make(map[game.Point]bool, len(state.Ghost))
	for _, c := range state.Ghost {
		ghost[c] = true
	}

	rows := make([]string, 0, game.GridVisibleRows)
	for y := game.GridVisibleRows - 1; y >= 0; y-- {
		var sb strings.Builder
		for x := 0; x < game.GridColumns; x++ {
			pos := game.Point{X: x, Y: y}
			sb.WriteString(renderCell(state, pos, active, ghost))
		}
		rows = append(rows, sb.String())
	}

	return boardBorderStyle.Render(strings.Join(rows, "\n"))
}

// renderCell renders a single board cell with the appropriate style.
func renderCell(state *game.Snapshot, pos game.Point, active, ghost map[game.Point]bool) string {
	// Priority: Active > Ghost > Terrain > Empty
	if !state.GameOver && active[pos] {
		return kindStyle(state.Kind).Bold(true).Render(activeGlyph)
	}
	if !state.GameOver && ghost[pos] {
		return kindStyle(state.Kind).Faint(true).Render(ghostGlyph)
	}
	if kind := state.Cells[pos.Y][pos.X]; kind != game.None {
		return kindStyle(kind).Render(terrainGlyph)
	}
	return emptyStyle.Render(emptyGlyph)
}

// renderPreview draws the spawn orientation of kind in a 4x2 box.
func renderPreview(kind game.PieceKind) string {
	m := game.MapOf(kind)
	style := kindStyle(kind)
	var rows []string
	for y := m.YMax(); y >= m.YMin(); y-- {
		var sb strings.Builder
		for x := 0; x < 4; x++ {
			if m.Contains(game.Point{X: x + m.XMin(), Y: y}) {
				sb.WriteString(style.Render(activeGlyph))
			} else {
				sb.WriteString("  ")
			}
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "\n")
}

// RenderHUD renders the side panel with the upcoming pieces and status.
func RenderHUD(state *game.Snapshot) string {
	if state == nil {
		return ""
	}

	var parts []string
	parts = append(parts, titleStyle.Render("TETRIS"))
	parts = append(parts, "")

	parts = append(parts, labelStyle.Render("Next:"))
	for _, kind := range state.Next {
		parts = append(parts, renderPreview(kind), "")
	}

	parts = append(parts, fmt.Sprintf("%s %d", labelStyle.Render("Lines:"), state.Lines))
	parts = append(parts, "")

	if state.GameOver {
		parts = append(parts, gameOverStyle.Render("GAME OVER"))
		parts = append(parts, "Press [q] to exit")
		parts = append(parts, "")
	}

	parts = append(parts, helpStyle.Render("←→↓: Move | ↑: Rotate"))
	parts = append(parts, helpStyle.Render("Space: Drop | Q: Quit"))

	return hudBorderStyle.Render(strings.Join(parts, "\n"))
}
