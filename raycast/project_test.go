package raycast

import (
	"testing"

	"chosenoffset.com/gridcaster/geom"
)

func TestProjectSizeFallsWithDistance(t *testing.T) {
	const xres, yres, focal = 640, 480, 1.0

	last := Project(xres, yres, focal, geom.Point{X: 0.5}).Size
	for dist := 1.0; dist <= 30; dist += 0.5 {
		size := Project(xres, yres, focal, geom.Point{X: dist}).Size
		if size >= last {
			t.Fatalf("size %.3f at distance %.1f not below %.3f", size, dist, last)
		}
		last = size
	}
}

func TestProjectClampsToScreen(t *testing.T) {
	wall := Project(640, 480, 1.0, geom.Point{X: 0})
	if wall.Top != 480 {
		t.Errorf("Top = %d, want clamped to 480", wall.Top)
	}
	if wall.Bot != 0 {
		t.Errorf("Bot = %d, want clamped to 0", wall.Bot)
	}
	if wall.Size <= 480 {
		t.Errorf("Size = %.1f, want unclamped beyond the screen", wall.Size)
	}
}

func TestProjectDistanceFloor(t *testing.T) {
	// Distances below the floor all project identically instead of
	// blowing up.
	a := Project(640, 480, 1.0, geom.Point{X: 1e-9})
	b := Project(640, 480, 1.0, geom.Point{X: minDist})
	if a.Size != b.Size {
		t.Errorf("Size at 1e-9 = %.3f, at floor = %.3f, want equal", a.Size, b.Size)
	}
}

func TestProjectCenteredSlab(t *testing.T) {
	wall := Project(640, 480, 1.0, geom.Point{X: 4})
	if wall.Top <= 240 || wall.Bot >= 240 {
		t.Errorf("slab [%d, %d) not centered on 240", wall.Bot, wall.Top)
	}
	if wall.Top-240 != 240-wall.Bot {
		t.Errorf("slab [%d, %d) not symmetric about 240", wall.Bot, wall.Top)
	}
}

func TestPlaneDistSigns(t *testing.T) {
	const yres = 480
	size := 100.0

	// Rows below the horizon give a negative parameter, rows above a
	// positive one; magnitude shrinks toward the screen edges.
	if d := PlaneDist(size, yres, 0); d >= 0 {
		t.Errorf("PlaneDist at row 0 = %.4f, want negative", d)
	}
	if d := PlaneDist(size, yres, yres-1); d <= 0 {
		t.Errorf("PlaneDist at top row = %.4f, want positive", d)
	}
	near := PlaneDist(size, yres, yres/2+10)
	far := PlaneDist(size, yres, yres-1)
	if near <= far {
		t.Errorf("PlaneDist near horizon %.4f should exceed edge %.4f", near, far)
	}
}
