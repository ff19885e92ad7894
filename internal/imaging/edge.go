package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"gonum.org/v1/gonum/mat"
)

// DefaultEdgeThreshold is the normalized gradient level (0-255) a pixel must
// exceed to be marked as an edge.
const DefaultEdgeThreshold = 30

var (
	sobelX = [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// Intensity converts img to a single-channel intensity grid.
//
// Luminance uses ITU-R BT.601 weights (0.299*R + 0.587*G + 0.114*B) rounded
// to 8 bits, so every element is an integer value in [0, 255]. The returned
// matrix has one row per image row. An empty image yields an empty matrix.
func Intensity(img image.Image) *mat.Dense {
	gray := imaging.Grayscale(img)
	width, height := Dimensions(gray)
	if width == 0 || height == 0 {
		return &mat.Dense{}
	}

	data := make([]float64, width*height)
	for y := 0; y < height; y++ {
		row := gray.Pix[y*gray.Stride:]
		for x := 0; x < width; x++ {
			// R, G and B are equal after grayscale conversion
			data[y*width+x] = float64(row[x*4])
		}
	}
	return mat.NewDense(height, width, data)
}

// SobelMagnitude computes the gradient magnitude sqrt(Gx² + Gy²) of an
// intensity grid using 3x3 Sobel operators. Border pixels use clamped
// (replicated) neighbor values.
func SobelMagnitude(intensity mat.Matrix) *mat.Dense {
	height, width := intensity.Dims()
	if width == 0 || height == 0 {
		return &mat.Dense{}
	}

	magnitude := mat.NewDense(height, width, nil)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					v := intensity.At(clamp(y+ky, 0, height-1), clamp(x+kx, 0, width-1))
					gx += v * sobelX[ky+1][kx+1]
					gy += v * sobelY[ky+1][kx+1]
				}
			}
			magnitude.Set(y, x, math.Hypot(gx, gy))
		}
	}
	return magnitude
}

// Normalize rescales a non-negative grid so that its maximum maps to 255 and
// quantizes it to 8 bits, truncating fractional values.
//
// A grid whose maximum is zero (a perfectly uniform image) normalizes to all
// zeros.
func Normalize(grid mat.Matrix) *image.Gray {
	height, width := grid.Dims()
	out := image.NewGray(image.Rect(0, 0, width, height))
	if width == 0 || height == 0 {
		return out
	}

	peak := mat.Max(grid)
	if peak <= 0 {
		return out
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := grid.At(y, x) / peak * 255
			out.SetGray(x, y, color.Gray{Y: uint8(v)})
		}
	}
	return out
}

// Threshold marks every pixel of gray whose value is strictly greater than
// level.
func Threshold(gray *image.Gray, level uint8) Mask {
	width, height := Dimensions(gray)
	mask := NewMask(width, height)
	b := gray.Bounds()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if gray.GrayAt(x+b.Min.X, y+b.Min.Y).Y > level {
				mask.Set(x, y, true)
			}
		}
	}
	return mask
}

// EdgeMask runs the full edge detection stage on img.
//
// # Algorithm
//
//  1. Intensity conversion (BT.601 luma)
//  2. Sobel gradient magnitude
//  3. Rescale so the strongest gradient maps to 255
//  4. Threshold: pixels above level are edges
//
// Thin bright rings produce two parallel bands of edge pixels, one on each
// side of the ring; Mask.DilateN merges them into a solid band.
func EdgeMask(img image.Image, level uint8) Mask {
	return Threshold(Normalize(SobelMagnitude(Intensity(img))), level)
}

// clamp constrains an integer value to the range [min, max].
// Used for boundary handling in convolution operations.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
