package raycast

import "chosenoffset.com/gridcaster/geom"

// minDist floors the perpendicular distance so a wall touching the eye
// cannot blow up the projected slab height.
const minDist = 1e-2

// Wall is the screen-space span one column's wall slab occupies. Top and
// Bot are clamped to [0, yres]; Size keeps the unclamped slab height for
// floor and ceiling distance derivation.
type Wall struct {
	Top  int
	Bot  int
	Size float64
}

// Project converts a fisheye-corrected hit vector into a wall slab.
// corrected.X approximates the perpendicular distance along the view
// axis, so slab height falls off inversely with distance.
func Project(xres, yres int, focal float64, corrected geom.Point) Wall {
	dist := corrected.X
	if dist < minDist {
		dist = minDist
	}
	size := 0.5 * focal * float64(xres) / dist
	top := int((float64(yres) + size) / 2)
	bot := int((float64(yres) - size) / 2)
	if top > yres {
		top = yres
	}
	if bot < 0 {
		bot = 0
	}
	return Wall{Top: top, Bot: bot, Size: size}
}

// PlaneDist derives the trace parameter for the floor or ceiling point
// seen at screen row y. Negated it samples the floor, positive the
// ceiling.
func PlaneDist(size float64, yres, y int) float64 {
	return size / float64(2*(y+1)-yres)
}
