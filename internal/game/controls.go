package game

// KeyMapper translates a raw host input event into a semantic button.
// Implementations must be pure: the same key always yields the same result.
type KeyMapper[K any] interface {
	KeyToButton(key K) (Button, bool)
}

// Driver owns timing for a game. Once per frame it feeds at most one queued
// button, applies gravity when the interval has elapsed and runs OnUpdate.
type Driver interface {
	Run()
	Stop()
	Enqueue(b Button)
}

var _ Driver = (*Engine)(nil)
