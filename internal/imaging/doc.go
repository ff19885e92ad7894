// Package imaging provides the pixel-level stages of the ring separator.
//
// This package implements loading and writing of still images, intensity
// conversion, Sobel edge detection, binary mask dilation, and the layer
// compositing that splits a source image into a transparent foreground and a
// smoothed background. All operations work with standard Go image types and
// use a coordinate system where (0,0) is at the top-left corner, X increases
// rightward, and Y increases downward.
//
// # Coordinate System
//
// Images returned by Load are normalized so that Bounds().Min is (0,0). Masks
// share that convention: Mask.At(x, y) addresses the same pixel as
// img.At(x, y) on an image of the same size.
//
// # Grids
//
// Intensity and gradient grids are gonum dense matrices with one row per
// image row, so element (r, c) is pixel (x=c, y=r). Values are kept in the
// 0-255 range of 8-bit intensity until Normalize quantizes them.
//
// # Edge Handling
//
// Convolutions replicate border pixels. Dilation treats pixels outside the
// image as false, so a mask never grows from beyond its own bounds.
//
// # Error Handling
//
// Only Load and SavePNG return errors: file I/O, decoding and encoding
// failures are wrapped with the failing operation. The in-memory stages
// operate on grids of known shape and cannot fail.
package imaging
