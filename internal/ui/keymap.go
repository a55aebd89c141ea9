package ui

import "github.com/amalg/go-tetris/internal/game"

// KeyMap translates bubbletea key strings into game buttons.
type KeyMap map[string]game.Button

var _ game.KeyMapper[string] = KeyMap(nil)

// DefaultKeyMap binds the arrows and WASD, space to drop and q/esc/ctrl+c to quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		"up":     game.RotateClockwise,
		"w":      game.RotateClockwise,
		"x":      game.RotateClockwise,
		"left":   game.MoveLeft,
		"a":      game.MoveLeft,
		"right":  game.MoveRight,
		"d":      game.MoveRight,
		"down":   game.MoveDown,
		"s":      game.MoveDown,
		" ":      game.Drop,
		"q":      game.Quit,
		"esc":    game.Quit,
		"ctrl+c": game.Quit,
	}
}

// KeyToButton returns the button bound to key.
func (k KeyMap) KeyToButton(key string) (game.Button, bool) {
	b, ok := k[key]
	return b, ok
}
