// Package pipeline runs the ring separation end to end.
//
// A run loads one source image, detects ring-shaped bright features through
// Sobel edge detection, thickens the edge mask by dilation, and writes two
// layers: a transparent foreground holding only the rings and a background
// in which the ring regions are replaced by a Gaussian blur of the source.
//
// The stages are strictly sequential and run once:
//
//	Load -> EdgeMask -> DilateN -> Foreground/Background -> SaveAlphaPNG/SavePNG
//
// Process performs the in-memory stages and is what tests exercise; Run adds
// the file I/O around it.
package pipeline

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/ironsheep/ring-separator/internal/detection"
	"github.com/ironsheep/ring-separator/internal/imaging"
)

// Config holds the fixed parameters of a run.
//
// The binary always uses DefaultConfig; the fields exist so tests can point a
// run at temporary files.
type Config struct {
	// InputPath is the source image. PNG, JPEG and GIF are accepted.
	InputPath string

	// ForegroundPath receives the RGBA ring layer.
	ForegroundPath string

	// BackgroundPath receives the RGB background layer.
	BackgroundPath string

	// Threshold is the normalized gradient level (0-255) an edge must exceed.
	Threshold uint8

	// DilationSize is the side of the square structuring element.
	DilationSize int

	// DilationIterations is how many times the element is applied.
	DilationIterations int

	// BlurSigma is the Gaussian standard deviation for the background fill.
	BlurSigma float64

	// MinRingPixels drops smaller regions from the ring report.
	MinRingPixels int
}

// DefaultConfig returns the hard-coded parameters of the separator.
func DefaultConfig() Config {
	return Config{
		InputPath:          "assets/images/background_portrait.jpg",
		ForegroundPath:     "assets/images/circle.png",
		BackgroundPath:     "assets/images/background.png",
		Threshold:          imaging.DefaultEdgeThreshold,
		DilationSize:       imaging.DefaultDilationSize,
		DilationIterations: imaging.DefaultDilationIterations,
		BlurSigma:          imaging.DefaultBlurSigma,
		MinRingPixels:      detection.DefaultMinRingPixels,
	}
}

// Result holds every artifact of a run.
type Result struct {
	// EdgeMask is the thresholded Sobel mask before dilation.
	EdgeMask imaging.Mask

	// Mask is the refined mask both layers were built from.
	Mask imaging.Mask

	// Foreground is the transparent ring layer.
	Foreground *image.NRGBA

	// Background is the opaque layer with rings smoothed over.
	Background *image.NRGBA

	// Rings describes the connected regions of Mask.
	Rings *detection.RingsResult
}

// Process runs the in-memory stages on src.
func Process(ctx context.Context, src *image.NRGBA, cfg Config) *Result {
	logger := LoggerFromContext(ctx)
	width, height := imaging.Dimensions(src)

	start := time.Now()
	edges := imaging.EdgeMask(src, cfg.Threshold)
	logger.Debug("detected edges",
		"pixels", edges.Count(),
		"threshold", cfg.Threshold,
		"duration", time.Since(start).Round(time.Millisecond))

	start = time.Now()
	mask := edges.DilateN(cfg.DilationSize, cfg.DilationIterations)
	logger.Debug("refined mask",
		"pixels", mask.Count(),
		"coverage", fmt.Sprintf("%.1f%%", coverage(mask, width, height)),
		"duration", time.Since(start).Round(time.Millisecond))

	start = time.Now()
	fg := imaging.Foreground(src, mask)
	bg := imaging.Background(src, mask, cfg.BlurSigma)
	logger.Debug("composited layers",
		"sigma", cfg.BlurSigma,
		"duration", time.Since(start).Round(time.Millisecond))

	rings := detection.DetectRings(src, mask, cfg.MinRingPixels)
	for _, r := range rings.Rings {
		logger.Debug("ring",
			"center", fmt.Sprintf("%d,%d", r.Center.X, r.Center.Y),
			"inner", fmt.Sprintf("%.1f", r.InnerRadius),
			"outer", fmt.Sprintf("%.1f", r.OuterRadius),
			"color", r.Color,
			"hollow", r.Hollow,
			"confidence", fmt.Sprintf("%.2f", r.Confidence))
	}

	return &Result{
		EdgeMask:   edges,
		Mask:       mask,
		Foreground: fg,
		Background: bg,
		Rings:      rings,
	}
}

// Run loads cfg.InputPath, processes it and writes both layers, overwriting
// existing files. The context is checked between stages.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	logger := LoggerFromContext(ctx)

	src, err := imaging.Load(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", cfg.InputPath, err)
	}
	width, height := imaging.Dimensions(src)
	logger.Info("loaded image", "path", cfg.InputPath, "width", width, "height", height)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := Process(ctx, src, cfg)
	logger.Info("separated rings",
		"rings", result.Rings.Count,
		"mask_pixels", result.Mask.Count())

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := imaging.SaveAlphaPNG(cfg.ForegroundPath, result.Foreground); err != nil {
		return nil, fmt.Errorf("write foreground: %w", err)
	}
	logger.Info("wrote foreground", "path", cfg.ForegroundPath)

	if err := imaging.SavePNG(cfg.BackgroundPath, result.Background); err != nil {
		return nil, fmt.Errorf("write background: %w", err)
	}
	logger.Info("wrote background", "path", cfg.BackgroundPath)

	return result, nil
}

// coverage returns the share of the image covered by mask, in percent.
func coverage(mask imaging.Mask, width, height int) float64 {
	if width == 0 || height == 0 {
		return 0
	}
	return 100 * float64(mask.Count()) / float64(width*height)
}
