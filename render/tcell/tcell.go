// Package tcell implements the render backend interfaces on a terminal.
// Two vertically stacked pixels share one cell through the upper
// half-block glyph, with the upper pixel as foreground and the lower as
// background.
package tcell

import (
	"errors"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/gridcaster/render"
)

// keyHold is how long a key event counts as "held". Terminals deliver
// key repeats rather than key-up events, so pressed state has to decay
// on its own.
const keyHold = 200 * time.Millisecond

// TermFrame implements render.Frame over a cell-sized pixel buffer.
type TermFrame struct {
	pixels []uint32
	width  int
	height int
}

func newFrame(width, height int) *TermFrame {
	return &TermFrame{
		pixels: make([]uint32, width*height),
		width:  width,
		height: height,
	}
}

// Size returns the frame dimensions in pixels, two per terminal row.
func (f *TermFrame) Size() (int, int) {
	return f.width, f.height
}

// Put writes one packed ARGB pixel, flipping from the bottom-left frame
// origin to the buffer's top-left row order.
func (f *TermFrame) Put(x, y int, argb uint32) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pixels[(f.height-1-y)*f.width+x] = argb
}

// flush paints the buffer onto the screen, one half-block cell per pixel
// pair.
func (f *TermFrame) flush(screen tcell.Screen) {
	for cy := 0; cy < f.height/2; cy++ {
		for x := 0; x < f.width; x++ {
			upper := f.pixels[(cy*2)*f.width+x]
			lower := f.pixels[(cy*2+1)*f.width+x]
			style := tcell.StyleDefault.
				Foreground(rgbColor(upper)).
				Background(rgbColor(lower))
			screen.SetContent(x, cy, '▀', nil, style)
		}
	}
}

func rgbColor(argb uint32) tcell.Color {
	return tcell.NewRGBColor(
		int32(argb>>16&0xFF),
		int32(argb>>8&0xFF),
		int32(argb&0xFF),
	)
}

// TermInputManager implements the InputManager interface from tcell key
// events fed in by the engine.
type TermInputManager struct {
	mu      sync.Mutex
	pressed map[render.Key]time.Time
	quit    bool
}

// NewInputManager creates a terminal input manager. Pass it to NewEngine
// so the engine can feed events into it.
func NewInputManager() *TermInputManager {
	return &TermInputManager{
		pressed: make(map[render.Key]time.Time),
	}
}

// IsKeyPressed reports whether the key was seen within the hold window.
func (m *TermInputManager) IsKeyPressed(key render.Key) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	at, ok := m.pressed[key]
	return ok && time.Since(at) < keyHold
}

// QuitRequested reports an interrupt (Ctrl-C).
func (m *TermInputManager) QuitRequested() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.quit
}

func (m *TermInputManager) press(key render.Key) {
	m.mu.Lock()
	m.pressed[key] = time.Now()
	m.mu.Unlock()
}

func (m *TermInputManager) requestQuit() {
	m.mu.Lock()
	m.quit = true
	m.mu.Unlock()
}

func (m *TermInputManager) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			m.press(render.KeyW)
		case 'a', 'A':
			m.press(render.KeyA)
		case 's', 'S':
			m.press(render.KeyS)
		case 'd', 'D':
			m.press(render.KeyD)
		}
	case tcell.KeyLeft:
		m.press(render.KeyLeft)
	case tcell.KeyRight:
		m.press(render.KeyRight)
	case tcell.KeyEnd:
		m.press(render.KeyEnd)
	case tcell.KeyEscape:
		m.press(render.KeyEscape)
	case tcell.KeyCtrlC:
		m.requestQuit()
	}
}

// TermEngine implements the Engine interface on a tcell screen.
type TermEngine struct {
	input *TermInputManager
	title string
}

// NewEngine creates a terminal engine wired to the given input manager.
func NewEngine(input *TermInputManager) *TermEngine {
	return &TermEngine{input: input}
}

// SetWindowSize is a no-op: the terminal dictates the surface size.
func (e *TermEngine) SetWindowSize(width, height int) {}

// SetWindowTitle records the title; terminals control their own chrome.
func (e *TermEngine) SetWindowTitle(title string) {
	e.title = title
}

// Run initializes the screen and drives the frame loop: drain events,
// tick the game, draw, present, then sleep out the frame budget.
func (e *TermEngine) Run(game render.Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	var frame *TermFrame
	for {
		start := time.Now()

		for drained := false; !drained; {
			select {
			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					e.input.handleKey(ev)
				case *tcell.EventResize:
					screen.Sync()
				}
			default:
				drained = true
			}
		}

		if err := game.Update(); err != nil {
			if errors.Is(err, render.Termination) {
				return nil
			}
			return err
		}

		cols, rows := screen.Size()
		width, height := cols, rows*2
		if frame == nil || frame.width != width || frame.height != height {
			frame = newFrame(width, height)
		}
		game.Draw(frame)
		frame.flush(screen)
		screen.Show()

		if rest := render.FramePeriod - time.Since(start); rest > 0 {
			time.Sleep(rest)
		}
	}
}
