package render

import (
	"testing"

	"chosenoffset.com/gridcaster/geom"
	"chosenoffset.com/gridcaster/hero"
	"chosenoffset.com/gridcaster/raycast"
	"chosenoffset.com/gridcaster/worldmap"
)

// testFrame is an in-memory pixel sink recording every write.
type testFrame struct {
	width  int
	height int
	pixels []uint32
	set    []bool
}

func newTestFrame(width, height int) *testFrame {
	return &testFrame{
		width:  width,
		height: height,
		pixels: make([]uint32, width*height),
		set:    make([]bool, width*height),
	}
}

func (f *testFrame) Put(x, y int, argb uint32) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pixels[y*f.width+x] = argb
	f.set[y*f.width+x] = true
}

func (f *testFrame) Size() (int, int) {
	return f.width, f.height
}

func (f *testFrame) at(x, y int) uint32 {
	return f.pixels[y*f.width+x]
}

func TestRenderFrameCoversEveryPixel(t *testing.T) {
	m := worldmap.Default()
	h := hero.New(m.Spawn, hero.DefaultFocal, hero.DefaultSpeed, hero.DefaultAccel)
	frame := newTestFrame(64, 48)

	if _, err := NewRenderer().RenderFrame(h, m, frame); err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}

	for y := 0; y < frame.height; y++ {
		for x := 0; x < frame.width; x++ {
			if !frame.set[y*frame.width+x] {
				t.Fatalf("pixel (%d, %d) never written", x, y)
			}
		}
	}
}

func TestRenderFrameCenterColumnWallColor(t *testing.T) {
	m := worldmap.Default()
	h := hero.New(m.Spawn, hero.DefaultFocal, hero.DefaultSpeed, hero.DefaultAccel)
	frame := newTestFrame(64, 48)

	r := NewRenderer()
	if _, err := r.RenderFrame(h, m, frame); err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}

	// The center column looks due east down the corridor onto a '3'
	// wall; recompute its slab and check the painted span.
	x := frame.width / 2
	hit, err := raycast.Cast(h.Where, geom.Point{X: 1, Y: 0}, m.Walling)
	if err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	if hit.Tile != 3 {
		t.Fatalf("center hit tile = %d, want 3", hit.Tile)
	}
	corrected := hit.Where.Sub(h.Where)
	wall := raycast.Project(frame.width, frame.height, h.FOV.A.X, corrected)
	if wall.Bot >= wall.Top {
		t.Fatalf("degenerate slab [%d, %d)", wall.Bot, wall.Top)
	}

	want := r.Palette.Color(3)
	for y := wall.Bot; y < wall.Top; y++ {
		if got := frame.at(x, y); got != want {
			t.Errorf("wall pixel (%d, %d) = %#08x, want %#08x", x, y, got, want)
		}
	}
}

func TestRenderFrameSpansUsePaletteColors(t *testing.T) {
	m := worldmap.Default()
	h := hero.New(m.Spawn, hero.DefaultFocal, hero.DefaultSpeed, hero.DefaultAccel)
	frame := newTestFrame(64, 48)

	r := NewRenderer()
	if _, err := r.RenderFrame(h, m, frame); err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}

	// Every pixel must come from the palette: the level only uses tiles
	// 1-3 and the empty tile.
	valid := map[uint32]bool{
		r.Palette.Color(0): true,
		r.Palette.Color(1): true,
		r.Palette.Color(2): true,
		r.Palette.Color(3): true,
	}
	for y := 0; y < frame.height; y++ {
		for x := 0; x < frame.width; x++ {
			if !valid[frame.at(x, y)] {
				t.Fatalf("pixel (%d, %d) = %#08x not in the level palette", x, y, frame.at(x, y))
			}
		}
	}
}

func TestRenderFrameBudget(t *testing.T) {
	m := worldmap.Default()
	h := hero.New(m.Spawn, hero.DefaultFocal, hero.DefaultSpeed, hero.DefaultAccel)
	r := NewRenderer()

	slack, err := r.RenderFrame(h, m, newTestFrame(32, 24))
	if err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}
	if slack < 0 || slack > r.Period {
		t.Errorf("slack = %v, want within [0, %v]", slack, r.Period)
	}
}

func TestRenderFrameBrokenBorderSurfacesError(t *testing.T) {
	m := worldmap.Default()
	h := hero.New(m.Spawn, hero.DefaultFocal, hero.DefaultSpeed, hero.DefaultAccel)

	// Knock a hole in the east border so the center ray escapes.
	broken := make(worldmap.Grid, len(m.Walling))
	copy(broken, m.Walling)
	row := []byte(broken[3])
	for x := 31; x < len(row); x++ {
		row[x] = '0'
	}
	broken[3] = string(row)
	m.Walling = broken

	if _, err := NewRenderer().RenderFrame(h, m, newTestFrame(64, 48)); err == nil {
		t.Fatal("RenderFrame succeeded with a broken border, want error")
	}
}
