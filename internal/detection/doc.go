// Package detection describes the ring-shaped features found by the edge
// stage.
//
// The imaging package decides which pixels belong to a feature; this package
// groups those pixels into connected components and reports each one as a
// Ring with its extent, radii, mean color and a circularity score. It never
// changes the mask or the layers built from it.
//
// # Algorithm Overview
//
//  1. Component Finding: flood-fill the refined mask with 8-connectivity
//  2. Filtering: drop components below a minimum pixel count as noise
//  3. Geometry: centroid, bounding box, and min/max pixel distance from the
//     centroid as inner/outer radius
//  4. Color: average the source pixels of the component in linear RGB
//  5. Scoring: compare the component with an ideal annulus of the same radii
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//   - Bounding boxes use inclusive top-left and inclusive bottom-right
//
// # Confidence Scores
//
// Confidence is the product of two ratios in [0, 1]:
//   - Aspect: shorter over longer side of the bounding box
//   - Fill: pixel count over the ideal annulus area (or its inverse, whichever
//     is smaller)
//
// A clean ring scores close to 1 and straight strokes score near 0 on aspect.
// A solid disc also scores high, so Ring.Hollow separates rings from discs.
package detection
