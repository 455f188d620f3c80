package render

// Palette maps tile ids to packed 0xAARRGGBB colors. Index 0 is the
// empty tile and paints black.
type Palette [10]uint32

// DefaultPalette gives each of the first few tile ids a distinct flat
// hue: one 0xAA intensity byte per channel, walking up from blue.
var DefaultPalette = Palette{
	1: 0x000000AA,
	2: 0x0000AA00,
	3: 0x00AA0000,
	4: 0xAA000000,
}

// Color returns the color for a tile id. Ids outside the palette paint
// black rather than faulting; levels are validated to single digits.
func (p Palette) Color(tile int) uint32 {
	if tile < 0 || tile >= len(p) {
		return 0
	}
	return p[tile]
}
