// Package worldmap holds the three parallel tile grids a level is made of
// and the JSON loader that builds them.
package worldmap

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"chosenoffset.com/gridcaster/geom"
)

// ErrOutOfBounds reports a tile lookup outside the grid. With a properly
// bordered level this never happens; seeing it means the level invariant
// was violated.
var ErrOutOfBounds = errors.New("tile coordinates out of bounds")

// Grid is a rectangular array of tile rows. Each cell is a single digit
// character: '0' is empty, '1'-'9' select a surface color and, in the
// wall layer, block movement and rays.
type Grid []string

// Width returns the number of columns.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Tile returns the tile id under p, truncating p to integer grid
// coordinates.
func (g Grid) Tile(p geom.Point) (int, error) {
	x, y := int(p.X), int(p.Y)
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
		return 0, fmt.Errorf("tile (%d, %d): %w", x, y, ErrOutOfBounds)
	}
	return int(g[y][x] - '0'), nil
}

// SpawnPoint is the hero's starting position in map units.
type SpawnPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LevelData is the on-disk JSON shape of a level.
type LevelData struct {
	Name     string     `json:"name"`
	Ceiling  []string   `json:"ceiling"`
	Walling  []string   `json:"walling"`
	Flooring []string   `json:"flooring"`
	Spawn    SpawnPoint `json:"player_spawn"`
}

// Map is a loaded level: three read-only layers of equal dimensions plus
// the spawn point. It is shared by the raycaster, renderer and movement
// code and never mutated after construction.
type Map struct {
	Name     string
	Ceiling  Grid
	Walling  Grid
	Flooring Grid
	Spawn    geom.Point
}

// Load reads a level from a JSON file and validates it.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}

	var level LevelData
	if err := json.Unmarshal(data, &level); err != nil {
		return nil, fmt.Errorf("failed to parse level file %s: %w", path, err)
	}

	m, err := FromLevelData(&level)
	if err != nil {
		return nil, fmt.Errorf("invalid level data in %s: %w", path, err)
	}
	return m, nil
}

// FromLevelData builds a Map from parsed level data and validates it.
func FromLevelData(level *LevelData) (*Map, error) {
	m := &Map{
		Name:     level.Name,
		Ceiling:  Grid(level.Ceiling),
		Walling:  Grid(level.Walling),
		Flooring: Grid(level.Flooring),
		Spawn:    geom.Point{X: level.Spawn.X, Y: level.Spawn.Y},
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// validate checks the invariants everything downstream relies on:
// rectangular layers of equal dimensions, a wall border that fully
// encloses the grid, and a spawn point on a walkable tile.
func (m *Map) validate() error {
	w, h := m.Walling.Width(), m.Walling.Height()
	if w <= 2 || h <= 2 {
		return fmt.Errorf("level too small: %dx%d", w, h)
	}

	layers := []struct {
		name string
		grid Grid
	}{
		{"ceiling", m.Ceiling},
		{"walling", m.Walling},
		{"flooring", m.Flooring},
	}
	for _, layer := range layers {
		if layer.grid.Height() != h {
			return fmt.Errorf("%s layer height mismatch: expected %d, got %d", layer.name, h, layer.grid.Height())
		}
		for y, row := range layer.grid {
			if len(row) != w {
				return fmt.Errorf("%s layer width mismatch at row %d: expected %d, got %d", layer.name, y, w, len(row))
			}
			for x := 0; x < w; x++ {
				if row[x] < '0' || row[x] > '9' {
					return fmt.Errorf("%s layer has invalid tile %q at (%d, %d)", layer.name, row[x], x, y)
				}
			}
		}
	}

	// The wall border must be closed so rays and movement can never
	// step outside the grid.
	for x := 0; x < w; x++ {
		if m.Walling[0][x] == '0' || m.Walling[h-1][x] == '0' {
			return fmt.Errorf("wall border open at column %d", x)
		}
	}
	for y := 0; y < h; y++ {
		if m.Walling[y][0] == '0' || m.Walling[y][w-1] == '0' {
			return fmt.Errorf("wall border open at row %d", y)
		}
	}

	spawn, err := m.Walling.Tile(m.Spawn)
	if err != nil {
		return fmt.Errorf("spawn point: %w", err)
	}
	if spawn != 0 {
		return fmt.Errorf("spawn point (%.1f, %.1f) is inside a wall", m.Spawn.X, m.Spawn.Y)
	}

	return nil
}
