// Package ebiten implements the render backend interfaces on top of the
// Ebiten game engine: window, keyboard state and a streamed pixel buffer.
package ebiten

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/gridcaster/render"
)

// EbitenFrame implements render.Frame over a persistent RGBA byte buffer
// that is flushed to the screen with WritePixels once per draw.
type EbitenFrame struct {
	pixels []byte
	width  int
	height int
}

func newFrame(width, height int) *EbitenFrame {
	return &EbitenFrame{
		pixels: make([]byte, width*height*4),
		width:  width,
		height: height,
	}
}

// Size returns the frame dimensions.
func (f *EbitenFrame) Size() (int, int) {
	return f.width, f.height
}

// Put writes one packed ARGB pixel. The frame origin is bottom-left, the
// buffer top-left, so rows are flipped here. The alpha byte is dropped;
// the buffer is fully opaque.
func (f *EbitenFrame) Put(x, y int, argb uint32) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := ((f.height-1-y)*f.width + x) * 4
	f.pixels[i] = uint8(argb >> 16)
	f.pixels[i+1] = uint8(argb >> 8)
	f.pixels[i+2] = uint8(argb)
	f.pixels[i+3] = 0xFF
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyPressed returns whether the specified key is currently pressed.
func (m *EbitenInputManager) IsKeyPressed(key render.Key) bool {
	return ebiten.IsKeyPressed(keyToEbitenKey(key))
}

// QuitRequested always reports false: Ebiten ends the run loop itself
// when the window is closed.
func (m *EbitenInputManager) QuitRequested() bool {
	return false
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) ebiten.Key {
	switch key {
	case render.KeyW:
		return ebiten.KeyW
	case render.KeyA:
		return ebiten.KeyA
	case render.KeyS:
		return ebiten.KeyS
	case render.KeyD:
		return ebiten.KeyD
	case render.KeyLeft:
		return ebiten.KeyArrowLeft
	case render.KeyRight:
		return ebiten.KeyArrowRight
	case render.KeyEnd:
		return ebiten.KeyEnd
	case render.KeyEscape:
		return ebiten.KeyEscape
	default:
		return 0
	}
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// Run pins the tick rate to the frame budget and drives the game loop.
func (e *EbitenEngine) Run(game render.Game) error {
	ebiten.SetTPS(int(time.Second / render.FramePeriod))
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a render.Game to the ebiten.Game interface.
type gameAdapter struct {
	game  render.Game
	frame *EbitenFrame
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	err := a.game.Update()
	if errors.Is(err, render.Termination) {
		return ebiten.Termination
	}
	return err
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if a.frame == nil || a.frame.width != w || a.frame.height != h {
		a.frame = newFrame(w, h)
	}
	a.game.Draw(a.frame)
	screen.WritePixels(a.frame.pixels)
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
