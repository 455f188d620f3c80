// Package raycast finds wall intersections on a tile grid and projects
// them into screen-space wall slabs.
package raycast

import (
	"errors"
	"fmt"
	"math"

	"chosenoffset.com/gridcaster/geom"
	"chosenoffset.com/gridcaster/worldmap"
)

// nudgeScale moves a grid-line crossing a tiny fixed distance along the
// ray so the tile it just entered can be sampled.
const nudgeScale = 0.01

// ErrDiverged reports a ray that crossed more grid lines than the level
// could possibly contain. A bordered level makes this impossible; hitting
// it means the wall border is broken.
var ErrDiverged = errors.New("ray diverged")

// Hit is the result of a cast: the nonzero tile id struck and the exact
// world-space point of the strike, which lies on a grid line up to the
// sampling nudge.
type Hit struct {
	Tile  int
	Where geom.Point
}

// stepH finds the crossing with the next vertical grid line in the
// direction's x-sign. With a vertical direction the slope is infinite and
// the result is rejected by the distance comparison in Cast.
func stepH(a, dir geom.Point) geom.Point {
	var x float64
	if dir.X > 0 {
		x = math.Floor(a.X + 1)
	} else {
		x = math.Ceil(a.X - 1)
	}
	return geom.Point{X: x, Y: dir.Slope()*(x-a.X) + a.Y}
}

// stepV is the symmetric crossing with the next horizontal grid line.
func stepV(a, dir geom.Point) geom.Point {
	var y float64
	if dir.Y > 0 {
		y = math.Floor(a.Y + 1)
	} else {
		y = math.Ceil(a.Y - 1)
	}
	return geom.Point{X: (y-a.Y)/dir.Slope() + a.X, Y: y}
}

// closer picks whichever of b, c is nearer to a. On an exact tie c wins;
// which of the two numerically identical points is returned does not
// affect the final hit.
func closer(a, b, c geom.Point) geom.Point {
	if b.Sub(a).Mag() < c.Sub(a).Mag() {
		return b
	}
	return c
}

// frac returns the fractional part of x.
func frac(x float64) float64 {
	return x - math.Trunc(x)
}

// nudge moves a crossing point slightly into the cell the ray is
// entering. Only the axis sitting exactly on a grid line is moved, except
// at a lattice corner where both axes are and the full direction applies.
func nudge(ray, dir geom.Point) geom.Point {
	delta := dir.Mul(nudgeScale)
	switch {
	case frac(ray.X) == 0 && frac(ray.Y) == 0:
		return ray.Add(delta)
	case frac(ray.X) == 0:
		return ray.Add(geom.Point{X: delta.X})
	default:
		return ray.Add(geom.Point{Y: delta.Y})
	}
}

// Cast walks the ray from origin along direction one grid line at a time
// and returns the first nonzero tile of walling it enters. The direction
// must be nonzero. The step count is bounded by the level size; with the
// wall border intact the bound is never reached.
func Cast(origin, direction geom.Point, walling worldmap.Grid) (Hit, error) {
	maxSteps := 2 * (walling.Width() + walling.Height())
	where := origin
	for i := 0; i < maxSteps; i++ {
		ray := closer(where, stepH(where, direction), stepV(where, direction))
		test := nudge(ray, direction)
		tile, err := walling.Tile(test)
		if err != nil {
			return Hit{}, fmt.Errorf("cast from (%.2f, %.2f): %w", origin.X, origin.Y, err)
		}
		if tile != 0 {
			return Hit{Tile: tile, Where: test}, nil
		}
		where = ray
	}
	return Hit{}, fmt.Errorf("cast from (%.2f, %.2f) exceeded %d steps: %w", origin.X, origin.Y, maxSteps, ErrDiverged)
}
