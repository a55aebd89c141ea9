package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amalg/go-tetris/internal/game"
)

type fakeDriver struct {
	buttons []game.Button
}

func (d *fakeDriver) Run()                   {}
func (d *fakeDriver) Stop()                  {}
func (d *fakeDriver) Enqueue(b game.Button) { d.buttons = append(d.buttons, b) }

func testSnapshot() game.Snapshot {
	snap := game.Snapshot{
		Kind:   game.O,
		Active: [4]game.Point{{4, 10}, {5, 10}, {4, 11}, {5, 11}},
		Ghost:  [4]game.Point{{4, 1}, {5, 1}, {4, 2}, {5, 2}},
		Next:   []game.PieceKind{game.I, game.T},
		Lines:  7,
	}
	for x := 0; x < game.GridColumns; x++ {
		if x != 4 && x != 5 {
			snap.Cells[0][x] = game.L
		}
	}
	snap.Cells[0][4] = game.J
	return snap
}

func TestDefaultKeyMap(t *testing.T) {
	keys := DefaultKeyMap()
	tests := map[string]game.Button{
		"left":   game.MoveLeft,
		"right":  game.MoveRight,
		"down":   game.MoveDown,
		"up":     game.RotateClockwise,
		" ":      game.Drop,
		"q":      game.Quit,
		"ctrl+c": game.Quit,
	}
	for key, want := range tests {
		got, ok := keys.KeyToButton(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}
	_, ok := keys.KeyToButton("p")
	assert.False(t, ok)
}

func TestRenderBoardPriority(t *testing.T) {
	snap := testSnapshot()
	board := RenderBoard(&snap)

	assert.Equal(t, 4, strings.Count(board, activeGlyph))
	assert.Equal(t, 4, strings.Count(board, ghostGlyph))
	assert.Equal(t, 9, strings.Count(board, terrainGlyph))
	// Border adds two lines around the visible rows.
	assert.Equal(t, game.GridVisibleRows+2, len(strings.Split(board, "\n")))
}

func TestRenderBoardActiveOverGhost(t *testing.T) {
	snap := testSnapshot()
	snap.Ghost = snap.Active
	board := RenderBoard(&snap)
	assert.Equal(t, 4, strings.Count(board, activeGlyph))
	assert.Equal(t, 0, strings.Count(board, ghostGlyph))
}

func TestRenderBoardHidesBufferRows(t *testing.T) {
	snap := testSnapshot()
	snap.Active = [4]game.Point{{4, 22}, {5, 22}, {4, 23}, {5, 23}}
	board := RenderBoard(&snap)
	assert.Equal(t, 0, strings.Count(board, activeGlyph))
}

func TestRenderHUD(t *testing.T) {
	snap := testSnapshot()
	hud := RenderHUD(&snap)
	assert.Contains(t, hud, "Next:")
	assert.Contains(t, hud, "7")
	assert.NotContains(t, hud, "GAME OVER")

	snap.GameOver = true
	assert.Contains(t, RenderHUD(&snap), "GAME OVER")
	assert.Empty(t, RenderHUD(nil))
}

func TestModelForwardsButtons(t *testing.T) {
	driver := &fakeDriver{}
	frames := make(chan game.Snapshot, 1)
	var m tea.Model = NewModel(driver, frames, DefaultKeyMap())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	require.Equal(t, []game.Button{game.MoveLeft, game.Drop}, driver.buttons)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, game.Quit, driver.buttons[len(driver.buttons)-1])
}

func TestModelIgnoresMovesAfterGameOver(t *testing.T) {
	driver := &fakeDriver{}
	frames := make(chan game.Snapshot, 1)
	var m tea.Model = NewModel(driver, frames, DefaultKeyMap())

	snap := testSnapshot()
	snap.GameOver = true
	m, _ = m.Update(frameMsg(snap))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Empty(t, driver.buttons)
	assert.Contains(t, m.View(), "GAME OVER")
}

func TestFrameSinkKeepsLatest(t *testing.T) {
	ch := make(chan game.Snapshot, 1)
	sink := FrameSink(ch)
	sink(game.Snapshot{Lines: 1})
	sink(game.Snapshot{Lines: 2})
	sink(game.Snapshot{Lines: 3})

	got := <-ch
	assert.Equal(t, 3, got.Lines)
	assert.Empty(t, ch)
}
