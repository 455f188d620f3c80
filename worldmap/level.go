package worldmap

import "chosenoffset.com/gridcaster/geom"

// Default returns the built-in level used when no level file is given:
// two rooms joined by a long corridor.
func Default() *Map {
	return &Map{
		Name: "corridor",
		Ceiling: Grid{
			"111111111111111111111111111111111111111111111",
			"122223223232232111111111111111222232232322321",
			"122222221111232111111111111111222222211112321",
			"122221221232323232323232323232222212212323231",
			"122222221111232111111111111111222222211112321",
			"122223223232232111111111111111222232232322321",
			"111111111111111111111111111111111111111111111",
		},
		Walling: Grid{
			"111111111111111111111111111111111111111111111",
			"100000000000000111111111111111000000000000001",
			"103330001111000111111111111111033300011110001",
			"103000000000000000000000000000030000030000001",
			"103330001111000111111111111111033300011110001",
			"100000000000000111111111111111000000000000001",
			"111111111111111111111111111111111111111111111",
		},
		Flooring: Grid{
			"111111111111111111111111111111111111111111111",
			"122223223232232111111111111111222232232322321",
			"122222221111232111111111111111222222211112321",
			"122222221232323323232323232323222222212323231",
			"122222221111232111111111111111222222211112321",
			"122223223232232111111111111111222232232322321",
			"111111111111111111111111111111111111111111111",
		},
		Spawn: geom.Point{X: 3.5, Y: 3.5},
	}
}
