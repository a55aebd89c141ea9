package ui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/go-tetris/internal/game"
)

// frameMsg carries a new snapshot from the engine.
type frameMsg game.Snapshot

// engineDoneMsg signals that the engine published its last frame.
type engineDoneMsg struct{}

// Model is the Bubbletea model for a local game.
type Model struct {
	driver   game.Driver
	frames   <-chan game.Snapshot
	keys     game.KeyMapper[string]
	state    *game.Snapshot
	finished bool
	quitting bool
}

// NewModel creates a TUI model that sends buttons to driver and renders the
// snapshots arriving on frames.
func NewModel(driver game.Driver, frames <-chan game.Snapshot, keys game.KeyMapper[string]) Model {
	return Model{
		driver: driver,
		frames: frames,
		keys:   keys,
	}
}

// Init starts listening for frames from the engine.
func (m Model) Init() tea.Cmd {
	return waitForFrame(m.frames)
}

// Update handles incoming messages (key presses, frames).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		state := game.Snapshot(msg)
		m.state = &state
		return m, waitForFrame(m.frames)

	case engineDoneMsg:
		m.finished = true
		log.Printf("[UI] Engine finished")
		return m, nil
	}

	return m, nil
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	board := RenderBoard(m.state)
	hud := RenderHUD(m.state)

	// Layout: board on the left, HUD on the right
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		board,
		"  ",
		hud,
	) + "\n"
}

// handleKey maps a key to a button and forwards it to the driver.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b, ok := m.keys.KeyToButton(msg.String())
	if !ok {
		return m, nil
	}
	if b == game.Quit {
		m.driver.Enqueue(b)
		m.quitting = true
		return m, tea.Quit
	}
	if m.finished || (m.state != nil && m.state.GameOver) {
		return m, nil
	}
	m.driver.Enqueue(b)
	return m, nil
}

// waitForFrame returns a Cmd that waits for the next frame from the engine.
func waitForFrame(frames <-chan game.Snapshot) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-frames
		if !ok {
			return engineDoneMsg{}
		}
		return frameMsg(state)
	}
}

// FrameSink returns an OnFrame callback that keeps only the latest snapshot
// in ch when the UI is slower than the engine.
func FrameSink(ch chan game.Snapshot) func(game.Snapshot) {
	return func(s game.Snapshot) {
		select {
		case ch <- s:
		default:
			// Drop old frame if consumer is slow; latest state matters most
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- s:
			default:
			}
		}
	}
}
