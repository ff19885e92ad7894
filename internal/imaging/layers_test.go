package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestForeground_AlphaMatchesMask(t *testing.T) {
	src := createRingImage(100, 30, 4)
	mask := EdgeMask(src, DefaultEdgeThreshold).DilateN(DefaultDilationSize, DefaultDilationIterations)

	fg := Foreground(src, mask)
	if fg.Bounds() != src.Bounds() {
		t.Fatalf("bounds: got %v, want %v", fg.Bounds(), src.Bounds())
	}

	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			c := fg.NRGBAAt(x, y)
			if mask.At(x, y) {
				if c.A != 255 {
					t.Fatalf("alpha at (%d,%d): got %d, want 255", x, y, c.A)
				}
				s := src.NRGBAAt(x, y)
				if c.R != s.R || c.G != s.G || c.B != s.B {
					t.Fatalf("color at (%d,%d): got %v, want source %v", x, y, c, s)
				}
			} else if c != (color.NRGBA{}) {
				t.Fatalf("unmasked pixel (%d,%d): got %v, want fully transparent black", x, y, c)
			}
		}
	}
}

func TestForeground_EmptyMask(t *testing.T) {
	src := createInMemoryImage(10, 10, color.RGBA{200, 10, 10, 255})

	fg := Foreground(src, NewMask(10, 10))
	for i := 3; i < len(fg.Pix); i += 4 {
		if fg.Pix[i] != 0 {
			t.Fatal("empty mask should produce a fully transparent layer")
		}
	}
}

func TestForeground_OffsetSource(t *testing.T) {
	// Sub-images keep their parent's coordinates; the layer is rebased to (0,0)
	parent := createInMemoryImage(20, 20, color.RGBA{0, 0, 0, 255})
	parent.Set(12, 13, color.RGBA{10, 20, 30, 255})
	sub := parent.SubImage(image.Rect(10, 10, 20, 20)).(*image.NRGBA)

	mask := NewMask(10, 10)
	mask.Set(2, 3, true)

	fg := Foreground(sub, mask)
	if got := fg.NRGBAAt(2, 3); got != (color.NRGBA{10, 20, 30, 255}) {
		t.Errorf("rebased pixel: got %v, want {10 20 30 255}", got)
	}
}

func TestBackground_UnmaskedPixelsUnchanged(t *testing.T) {
	src := createRingImage(100, 30, 4)
	mask := EdgeMask(src, DefaultEdgeThreshold).DilateN(DefaultDilationSize, DefaultDilationIterations)

	bg := Background(src, mask, DefaultBlurSigma)

	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			c := bg.NRGBAAt(x, y)
			if c.A != 255 {
				t.Fatalf("background must be opaque, got alpha %d at (%d,%d)", c.A, x, y)
			}
			if mask.At(x, y) {
				continue
			}
			if s := src.NRGBAAt(x, y); c != s {
				t.Fatalf("unmasked pixel (%d,%d): got %v, want source %v", x, y, c, s)
			}
		}
	}
}

func TestBackground_RingIsSmoothed(t *testing.T) {
	src := createRingImage(100, 30, 4)
	mask := EdgeMask(src, DefaultEdgeThreshold).DilateN(DefaultDilationSize, DefaultDilationIterations)

	bg := Background(src, mask, DefaultBlurSigma)

	// The middle of the ring was bright in the source
	if got := src.NRGBAAt(80, 50).R; got != ringForeground {
		t.Fatalf("source ring pixel: got %d, want %d", got, ringForeground)
	}

	ring := bg.NRGBAAt(80, 50).R
	if ring >= 180 {
		t.Errorf("ring should be blurred away, got intensity %d", ring)
	}

	// Across the masked band the fill varies gently, with no sharp step
	inside := bg.NRGBAAt(74, 50).R
	outside := bg.NRGBAAt(86, 50).R
	for _, v := range []uint8{inside, outside} {
		if diff := int(ring) - int(v); diff > 40 || diff < -40 {
			t.Errorf("band contrast too high: ring %d vs %d", ring, v)
		}
	}
}

func TestBackground_ZeroSigma(t *testing.T) {
	src := createRingImage(40, 10, 2)
	mask := NewMask(40, 40)
	for x := 0; x < 40; x++ {
		mask.Set(x, 20, true)
	}

	bg := Background(src, mask, 0)
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if bg.NRGBAAt(x, y) != src.NRGBAAt(x, y) {
				t.Fatalf("zero sigma should leave (%d,%d) unchanged", x, y)
			}
		}
	}
}
