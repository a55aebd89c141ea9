package game

import (
	"log"
	"math/rand/v2"
	"sync"
	"time"
)

// Snapshot is a deep copy of everything a renderer needs for one frame.
type Snapshot struct {
	Cells    [GridVisibleRows][GridColumns]PieceKind // Visible rows only, row 0 is the floor
	Kind     PieceKind
	Active   [4]Point
	Ghost    [4]Point
	Next     []PieceKind
	Lines    int
	GameOver bool
}

// Engine drives a GameState in real time. It is the reference Driver: input
// arrives from any goroutine through Enqueue, and every frame is processed
// under a mutex.
type Engine struct {
	Config  GameConfig
	state   *GameState
	buttons chan Button
	done    chan struct{}
	mu      sync.Mutex
	onFrame func(Snapshot) // Callback after each frame with a COPY of state
}

// NewEngine creates an engine whose piece sequence is determined by config.Seed.
func NewEngine(config GameConfig) *Engine {
	return &Engine{
		Config:  config,
		state:   NewGameState(rand.NewPCG(config.Seed, config.Seed>>1|1)),
		buttons: make(chan Button, 64),
		done:    make(chan struct{}),
	}
}

// OnFrame sets a callback invoked after every frame with a copy of the state.
func (e *Engine) OnFrame(fn func(Snapshot)) {
	e.onFrame = fn
}

// Run processes frames at the configured frame rate and applies gravity every
// gravity interval. It blocks until the game is over or Stop is called.
func (e *Engine) Run() {
	ticker := time.NewTicker(e.Config.FrameInterval)
	defer ticker.Stop()

	log.Printf("[ENGINE] Started seed=%d gravity=%s frame=%s",
		e.Config.Seed, e.Config.GravityInterval, e.Config.FrameInterval)

	nextGravity := time.Now().Add(e.Config.GravityInterval)
	for {
		select {
		case <-e.done:
			log.Printf("[ENGINE] Stopped")
			return
		case now := <-ticker.C:
			gravity := !now.Before(nextGravity)
			if gravity {
				// Keep the cadence; skip missed ticks instead of bursting.
				nextGravity = nextGravity.Add(e.Config.GravityInterval)
				if nextGravity.Before(now) {
					nextGravity = now.Add(e.Config.GravityInterval)
				}
			}
			if e.frame(gravity) {
				log.Printf("[ENGINE] Game over after %d lines", e.Snapshot().Lines)
				return
			}
		}
	}
}

// Stop halts the frame loop. It is safe to call more than once.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	select {
	case <-e.done:
	default:
		close(e.done)
	}
}

// Enqueue queues a button for a later frame.
func (e *Engine) Enqueue(b Button) {
	select {
	case e.buttons <- b:
	default:
		// Drop input if buffer is full (prevents blocking)
		log.Printf("[ENGINE] Input buffer full, dropped %v", b)
	}
}

// frame processes one frame and reports whether the game is over.
// The lock is released BEFORE calling onFrame; the callback may call back
// into the engine.
func (e *Engine) frame(gravity bool) bool {
	e.mu.Lock()

	if !e.state.GameOver() {
		select {
		case b := <-e.buttons:
			e.state.OnButtonPressed(b)
		default:
		}
		if gravity {
			e.state.ApplyGravity()
		}
		e.state.OnUpdate()
	}

	snap := e.snapshotLocked()
	e.mu.Unlock()

	if e.onFrame != nil {
		e.onFrame(snap)
	}
	return snap.GameOver
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// snapshotLocked copies the state. MUST be called while e.mu is held.
func (e *Engine) snapshotLocked() Snapshot {
	s := e.state
	snap := Snapshot{
		Kind:     s.piece.Kind,
		Active:   s.piece.Cells(),
		Ghost:    s.GhostCells(),
		Next:     s.Preview(e.Config.PreviewCount),
		Lines:    s.LinesCleared(),
		GameOver: s.GameOver(),
	}
	copy(snap.Cells[:], s.grid.cells[:GridVisibleRows])
	return snap
}
