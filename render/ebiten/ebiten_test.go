package ebiten

import "testing"

func TestFramePutFlipsRows(t *testing.T) {
	f := newFrame(4, 3)

	// Frame origin is bottom-left; y=0 must land in the last buffer row.
	f.Put(1, 0, 0x00123456)

	i := (2*4 + 1) * 4
	if f.pixels[i] != 0x12 || f.pixels[i+1] != 0x34 || f.pixels[i+2] != 0x56 {
		t.Errorf("pixel bytes = %v, want RGB 12 34 56", f.pixels[i:i+3])
	}
	if f.pixels[i+3] != 0xFF {
		t.Errorf("alpha byte = %#02x, want opaque", f.pixels[i+3])
	}
}

func TestFramePutIgnoresOutOfRange(t *testing.T) {
	f := newFrame(2, 2)
	f.Put(-1, 0, 0xFFFFFF)
	f.Put(0, -1, 0xFFFFFF)
	f.Put(2, 0, 0xFFFFFF)
	f.Put(0, 2, 0xFFFFFF)

	for i, b := range f.pixels {
		if b != 0 {
			t.Fatalf("buffer byte %d = %#02x after out-of-range writes", i, b)
		}
	}
}

func TestFrameSize(t *testing.T) {
	f := newFrame(7, 9)
	if w, h := f.Size(); w != 7 || h != 9 {
		t.Errorf("Size() = %dx%d, want 7x9", w, h)
	}
}
