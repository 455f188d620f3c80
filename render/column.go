package render

import (
	"fmt"
	"time"

	"chosenoffset.com/gridcaster/geom"
	"chosenoffset.com/gridcaster/hero"
	"chosenoffset.com/gridcaster/raycast"
	"chosenoffset.com/gridcaster/worldmap"
)

// FramePeriod is the target minimum frame period; about 66 fps.
const FramePeriod = 15 * time.Millisecond

// Renderer paints one column per screen x: floor below the wall slab,
// the slab itself, ceiling above it.
type Renderer struct {
	Palette Palette
	Period  time.Duration
}

// NewRenderer returns a renderer with the default palette and frame
// budget.
func NewRenderer() *Renderer {
	return &Renderer{
		Palette: DefaultPalette,
		Period:  FramePeriod,
	}
}

// RenderFrame casts one ray per frame column and paints the three
// vertical spans. It measures its own wall-clock cost and returns the
// remaining frame budget, zero when rendering ran over it.
func (r *Renderer) RenderFrame(h hero.Hero, m *worldmap.Map, frame Frame) (time.Duration, error) {
	start := time.Now()
	xres, yres := frame.Size()
	camera := h.FOV.Rotate(h.Theta)

	for x := 0; x < xres; x++ {
		column := camera.Lerp(float64(x) / float64(xres))
		hit, err := raycast.Cast(h.Where, column, m.Walling)
		if err != nil {
			return 0, fmt.Errorf("column %d: %w", x, err)
		}
		// Back-rotating the hit vector removes the fisheye distortion of
		// per-column angular sampling.
		corrected := hit.Where.Sub(h.Where).Turn(-h.Theta)
		wall := raycast.Project(xres, yres, h.FOV.A.X, corrected)
		trace := geom.Line{A: h.Where, B: hit.Where}

		for y := 0; y < wall.Bot; y++ {
			tile, err := m.Flooring.Tile(trace.Lerp(-raycast.PlaneDist(wall.Size, yres, y)))
			if err != nil {
				return 0, fmt.Errorf("column %d flooring: %w", x, err)
			}
			frame.Put(x, y, r.Palette.Color(tile))
		}
		for y := wall.Bot; y < wall.Top; y++ {
			frame.Put(x, y, r.Palette.Color(hit.Tile))
		}
		for y := wall.Top; y < yres; y++ {
			tile, err := m.Ceiling.Tile(trace.Lerp(+raycast.PlaneDist(wall.Size, yres, y)))
			if err != nil {
				return 0, fmt.Errorf("column %d ceiling: %w", x, err)
			}
			frame.Put(x, y, r.Palette.Color(tile))
		}
	}

	rest := r.Period - time.Since(start)
	if rest < 0 {
		rest = 0
	}
	return rest, nil
}
