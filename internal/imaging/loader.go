package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

// Load reads an image from disk and returns it as an NRGBA pixel grid.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats are
//     PNG, JPEG, and GIF.
//
// Returns:
//   - *image.NRGBA: The decoded image with Bounds().Min at (0,0). Source
//     images that carry transparency keep their alpha channel; the pipeline
//     only reads the color channels.
//   - error: Non-nil if the file cannot be opened or decoded. A missing file
//     wraps fs.ErrNotExist.
func Load(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	return imaging.Clone(img), nil
}

// SavePNG encodes img as PNG and writes it to path, replacing any existing
// file. Missing parent directories are created.
//
// The encoder picks the color type from the pixels: a fully opaque image is
// written as RGB. Use SaveAlphaPNG when the file must carry an alpha channel.
func SavePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Dimensions returns the width and height of img.
func Dimensions(img image.Image) (width, height int) {
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

// SaveAlphaPNG is SavePNG for layers that must always be written as RGBA,
// even when every pixel happens to be opaque.
func SaveAlphaPNG(path string, img *image.NRGBA) error {
	return SavePNG(path, alphaImage{img})
}

// alphaImage reports itself as non-opaque so the PNG encoder keeps the alpha
// channel.
type alphaImage struct {
	*image.NRGBA
}

func (alphaImage) Opaque() bool { return false }
