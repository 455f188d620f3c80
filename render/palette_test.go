package render

import "testing"

func TestDefaultPaletteChannelWalk(t *testing.T) {
	// Each tile id places the same intensity byte one channel higher.
	for tile := 1; tile <= 4; tile++ {
		want := uint32(0xAA) << (8 * (tile - 1))
		if got := DefaultPalette.Color(tile); got != want {
			t.Errorf("Color(%d) = %#08x, want %#08x", tile, got, want)
		}
	}
}

func TestPaletteEmptyAndOutOfRange(t *testing.T) {
	if got := DefaultPalette.Color(0); got != 0 {
		t.Errorf("Color(0) = %#08x, want 0", got)
	}
	if got := DefaultPalette.Color(-1); got != 0 {
		t.Errorf("Color(-1) = %#08x, want 0", got)
	}
	if got := DefaultPalette.Color(42); got != 0 {
		t.Errorf("Color(42) = %#08x, want 0", got)
	}
}
