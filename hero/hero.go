// Package hero models the observer: heading, velocity and position
// integration with collision against the wall grid. Updates are pure
// functions from one snapshot to the next; the frame loop owns the single
// current value.
package hero

import (
	"chosenoffset.com/gridcaster/geom"
	"chosenoffset.com/gridcaster/worldmap"
)

// turnRate is the heading change per frame of held turn input, radians.
const turnRate = 0.1

// Defaults for the hero tuning constants.
const (
	DefaultFocal = 1.0
	DefaultSpeed = 0.10
	DefaultAccel = 0.01
)

// Input is one frame's worth of sampled controls.
type Input struct {
	Forward     bool
	Backward    bool
	StrafeLeft  bool
	StrafeRight bool
	TurnLeft    bool
	TurnRight   bool
}

// Hero is the observer state. FOV is the camera's local, unrotated
// field-of-view segment, fixed at construction; Theta is the heading in
// radians.
type Hero struct {
	FOV      geom.Line
	Where    geom.Point
	Velocity geom.Point
	Speed    float64
	Accel    float64
	Theta    float64
}

// Viewport builds the local field-of-view segment. focal controls the
// horizontal FOV width; 1.0 gives a 90-degree-class view.
func Viewport(focal float64) geom.Line {
	return geom.Line{
		A: geom.Point{X: focal, Y: -1},
		B: geom.Point{X: focal, Y: +1},
	}
}

// New creates a hero at spawn with the given tuning constants, at rest
// and facing along the positive x axis.
func New(spawn geom.Point, focal, speed, accel float64) Hero {
	return Hero{
		FOV:   Viewport(focal),
		Where: spawn,
		Speed: speed,
		Accel: accel,
	}
}

// Spin applies one frame of turn input. The heading is unbounded; it
// wraps through trigonometric periodicity.
func Spin(h Hero, in Input) Hero {
	if in.TurnLeft {
		h.Theta -= turnRate
	}
	if in.TurnRight {
		h.Theta += turnRate
	}
	return h
}

// Move applies one frame of translation input. Held directional keys
// compose additively into velocity; with no input the velocity decays
// geometrically. Velocity is hard-capped at Speed. A tentative move into
// a nonzero wall tile is rejected outright: velocity zeroed, position
// restored.
func Move(h Hero, walling worldmap.Grid, in Input) Hero {
	last := h.Where
	if in.Forward || in.Backward || in.StrafeLeft || in.StrafeRight {
		direction := geom.Point{X: 1}.Turn(h.Theta)
		accel := direction.Mul(h.Accel)
		if in.Forward {
			h.Velocity = h.Velocity.Add(accel)
		}
		if in.Backward {
			h.Velocity = h.Velocity.Sub(accel)
		}
		if in.StrafeRight {
			h.Velocity = h.Velocity.Add(accel.Perp())
		}
		if in.StrafeLeft {
			h.Velocity = h.Velocity.Sub(accel.Perp())
		}
	} else {
		h.Velocity = h.Velocity.Mul(1 - h.Accel/h.Speed)
	}
	if h.Velocity.Mag() > h.Speed {
		h.Velocity = h.Velocity.Unit().Mul(h.Speed)
	}
	h.Where = h.Where.Add(h.Velocity)
	// Out-of-bounds counts as solid: a broken border stops the hero
	// instead of escaping the grid.
	if tile, err := walling.Tile(h.Where); err != nil || tile != 0 {
		h.Velocity = geom.Point{}
		h.Where = last
	}
	return h
}
