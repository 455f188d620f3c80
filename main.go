package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"chosenoffset.com/gridcaster/hero"
	"chosenoffset.com/gridcaster/render"
	ebitenrender "chosenoffset.com/gridcaster/render/ebiten"
	tcellrender "chosenoffset.com/gridcaster/render/tcell"
	"chosenoffset.com/gridcaster/worldmap"
)

// Game owns the current hero snapshot and runs the per-frame order:
// sample input, update heading, move with collision, render columns.
type Game struct {
	xres     int
	yres     int
	world    *worldmap.Map
	hero     hero.Hero
	renderer *render.Renderer
	input    render.InputManager

	// slack is the frame budget left after the last render; zero means
	// the frame ran over budget.
	slack     time.Duration
	renderErr error
}

// Update handles quit, turning and movement for one tick.
func (g *Game) Update() error {
	if g.renderErr != nil {
		return g.renderErr
	}
	if g.input.QuitRequested() ||
		g.input.IsKeyPressed(render.KeyEnd) ||
		g.input.IsKeyPressed(render.KeyEscape) {
		return render.Termination
	}

	in := hero.Input{
		Forward:     g.input.IsKeyPressed(render.KeyW),
		Backward:    g.input.IsKeyPressed(render.KeyS),
		StrafeLeft:  g.input.IsKeyPressed(render.KeyA),
		StrafeRight: g.input.IsKeyPressed(render.KeyD),
		TurnLeft:    g.input.IsKeyPressed(render.KeyLeft),
		TurnRight:   g.input.IsKeyPressed(render.KeyRight),
	}
	g.hero = hero.Spin(g.hero, in)
	g.hero = hero.Move(g.hero, g.world.Walling, in)
	return nil
}

// Draw renders one frame. A render failure is held until the next Update
// so the loop can end with the error.
func (g *Game) Draw(frame render.Frame) {
	slack, err := g.renderer.RenderFrame(g.hero, g.world, frame)
	if err != nil {
		g.renderErr = err
		return
	}
	g.slack = slack
}

// Layout returns the logical frame size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.xres, g.yres
}

func main() {
	backend := flag.String("backend", "ebiten", "Display backend (ebiten, terminal)")
	levelFile := flag.String("map", "", "Level file to load (JSON); built-in level when empty")
	xres := flag.Int("xres", 500, "Horizontal resolution")
	yres := flag.Int("yres", 500, "Vertical resolution")
	focal := flag.Float64("focal", hero.DefaultFocal, "Field-of-view focal width")
	speed := flag.Float64("speed", hero.DefaultSpeed, "Top movement speed, tiles per frame")
	accel := flag.Float64("accel", hero.DefaultAccel, "Movement acceleration, tiles per frame squared")
	flag.Parse()

	var world *worldmap.Map
	if *levelFile == "" {
		world = worldmap.Default()
	} else {
		var err error
		world, err = worldmap.Load(*levelFile)
		if err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
	}
	log.Printf("Loaded level: %s (%dx%d, spawn %.1f,%.1f)",
		world.Name,
		world.Walling.Width(),
		world.Walling.Height(),
		world.Spawn.X,
		world.Spawn.Y)

	var engine render.Engine
	var input render.InputManager
	switch *backend {
	case "ebiten":
		engine = ebitenrender.NewEngine()
		input = ebitenrender.NewInputManager()
	case "terminal":
		termInput := tcellrender.NewInputManager()
		engine = tcellrender.NewEngine(termInput)
		input = termInput
	default:
		log.Fatalf("Unknown backend: %s", *backend)
	}

	game := &Game{
		xres:     *xres,
		yres:     *yres,
		world:    world,
		hero:     hero.New(world.Spawn, *focal, *speed, *accel),
		renderer: render.NewRenderer(),
		input:    input,
	}

	engine.SetWindowSize(*xres, *yres)
	engine.SetWindowTitle(fmt.Sprintf("gridcaster [%s]", world.Name))

	log.Printf("Starting: WASD to move, arrows to turn, Esc to quit")
	if err := engine.Run(game); err != nil {
		log.Fatal(err)
	}
}
