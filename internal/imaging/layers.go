package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// DefaultBlurSigma is the Gaussian standard deviation, in pixels, used to
// fill masked regions of the background layer.
const DefaultBlurSigma = 10.0

// Foreground extracts the masked pixels of src into a transparent layer.
//
// Where mask is set the output pixel carries the source color with alpha 255;
// everywhere else it is (0,0,0,0). The output has src's dimensions with
// Bounds().Min at (0,0).
func Foreground(src *image.NRGBA, mask Mask) *image.NRGBA {
	width, height := Dimensions(src)
	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	b := src.Bounds()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !mask.At(x, y) {
				continue
			}
			si := src.PixOffset(x+b.Min.X, y+b.Min.Y)
			di := out.PixOffset(x, y)
			copy(out.Pix[di:di+3], src.Pix[si:si+3])
			out.Pix[di+3] = 255
		}
	}
	return out
}

// Background smooths over the masked pixels of src.
//
// The whole source is blurred once with a Gaussian of the given sigma, and
// the blurred pixel replaces the source pixel only where mask is set. Unmasked
// pixels are copied unchanged. The output is fully opaque.
//
// # Limitations
//
// The blur is computed over the unmasked source, so the removed feature
// itself bleeds into the fill. Large features leave a visible soft ghost
// rather than a content-aware reconstruction.
func Background(src *image.NRGBA, mask Mask, sigma float64) *image.NRGBA {
	width, height := Dimensions(src)
	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	blurred := imaging.Blur(src, sigma)
	b := src.Bounds()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			di := out.PixOffset(x, y)
			if mask.At(x, y) {
				bi := blurred.PixOffset(x, y)
				copy(out.Pix[di:di+3], blurred.Pix[bi:bi+3])
			} else {
				si := src.PixOffset(x+b.Min.X, y+b.Min.Y)
				copy(out.Pix[di:di+3], src.Pix[si:si+3])
			}
			out.Pix[di+3] = 255
		}
	}
	return out
}
