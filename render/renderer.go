// Package render contains the column renderer and the backend-agnostic
// interfaces it draws through. Game logic never imports a display backend
// directly; backends live in subpackages and implement these contracts.
package render

import "errors"

// Termination is returned from Game.Update to end the loop cleanly.
// Backends translate it into their own shutdown and report no error.
var Termination = errors.New("termination requested")

// Frame is the pixel sink one rendered frame is written into. The origin
// is the bottom-left corner: y increases upward, matching the projection
// math. Backends flip to their native row order when presenting.
type Frame interface {
	// Put writes one packed 0xAARRGGBB pixel. The alpha byte is ignored
	// by both backends.
	Put(x, y int, argb uint32)

	// Size returns the frame dimensions in pixels.
	Size() (width, height int)
}

// Key identifies a key the engine cares about.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyLeft
	KeyRight
	KeyEnd
	KeyEscape
)

// InputManager exposes the per-frame key state.
type InputManager interface {
	IsKeyPressed(key Key) bool

	// QuitRequested reports an external quit signal such as a window
	// close or interrupt, as opposed to the designated quit keys.
	QuitRequested() bool
}

// Game is the loop contract a backend engine drives: logic tick, then a
// frame draw into the backend's pixel sink.
type Game interface {
	// Update advances game logic one tick. Returning Termination ends
	// the loop without error; any other error aborts it.
	Update() error

	// Draw renders one frame into the sink.
	Draw(frame Frame)

	// Layout accepts the outside size (e.g., window size) and returns
	// the logical frame size.
	Layout(outsideWidth, outsideHeight int) (frameWidth, frameHeight int)
}

// Engine manages the window or terminal surface and runs the game loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)

	// Run drives the loop until the game terminates. Blocking.
	Run(game Game) error
}
