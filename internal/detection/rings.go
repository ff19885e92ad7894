package detection

import (
	"image"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/ring-separator/internal/imaging"
)

// DefaultMinRingPixels is the smallest component reported as a ring.
// Smaller components are treated as noise.
const DefaultMinRingPixels = 10

// Bounds represents a rectangular bounding box in pixel coordinates.
//
// Both corners are inclusive: a single-pixel component has X1 == X2 and
// Y1 == Y2.
type Bounds struct {
	X1 int `json:"x1"` // Left edge (inclusive)
	Y1 int `json:"y1"` // Top edge (inclusive)
	X2 int `json:"x2"` // Right edge (inclusive)
	Y2 int `json:"y2"` // Bottom edge (inclusive)
}

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// Ring describes one connected region of the refined edge mask.
type Ring struct {
	// Bounds is the bounding box enclosing every pixel of the region.
	Bounds Bounds `json:"bounds"`

	// Center is the centroid of the region, rounded to the nearest pixel.
	Center Point `json:"center"`

	// InnerRadius is the distance from the centroid to the closest pixel.
	InnerRadius float64 `json:"inner_radius"`

	// OuterRadius is the distance from the centroid to the farthest pixel.
	OuterRadius float64 `json:"outer_radius"`

	// Pixels is the number of mask pixels in the region.
	Pixels int `json:"pixels"`

	// Hollow is true when the centroid pixel is not part of the region.
	Hollow bool `json:"hollow"`

	// Color is the mean source color of the region as "#RRGGBB".
	Color string `json:"color"`

	// Confidence indicates how closely the region matches an annulus
	// (0.0 to 1.0).
	Confidence float64 `json:"confidence"`
}

// RingsResult contains all rings found in a mask.
type RingsResult struct {
	// Rings is the list of regions, sorted by pixel count (largest first).
	Rings []Ring `json:"rings"`

	// Count is the number of rings found.
	Count int `json:"count"`
}

// DetectRings groups the set pixels of mask into 8-connected regions and
// describes each region with at least minPixels pixels.
//
// Parameters:
//   - src: The image the mask was derived from. Used for color sampling and
//     must have the mask's dimensions with Bounds().Min at (0,0).
//   - mask: The refined edge mask.
//   - minPixels: Regions smaller than this are dropped. Values below 1 keep
//     every region.
func DetectRings(src image.Image, mask imaging.Mask, minPixels int) *RingsResult {
	labels, regions := findRegions(mask)

	rings := make([]Ring, 0, len(regions))
	for i, region := range regions {
		if len(region) < minPixels {
			continue
		}
		rings = append(rings, describeRegion(src, labels, i+1, region))
	}

	sort.SliceStable(rings, func(i, j int) bool {
		return rings[i].Pixels > rings[j].Pixels
	})

	return &RingsResult{
		Rings: rings,
		Count: len(rings),
	}
}

// describeRegion computes the geometry, color and score of one region.
// label is the region's value in labels.
func describeRegion(src image.Image, labels [][]int, label int, region []Point) Ring {
	minX, minY := region[0].X, region[0].Y
	maxX, maxY := minX, minY
	var sumX, sumY float64
	var lr, lg, lb float64

	for _, p := range region {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
		sumX += float64(p.X)
		sumY += float64(p.Y)

		c, _ := colorful.MakeColor(src.At(p.X, p.Y))
		r, g, b := c.LinearRgb()
		lr += r
		lg += g
		lb += b
	}

	n := float64(len(region))
	cx, cy := sumX/n, sumY/n

	inner, outer := math.Inf(1), 0.0
	for _, p := range region {
		d := math.Hypot(float64(p.X)-cx, float64(p.Y)-cy)
		inner = math.Min(inner, d)
		outer = math.Max(outer, d)
	}

	center := Point{X: int(math.Round(cx)), Y: int(math.Round(cy))}
	mean := colorful.LinearRgb(lr/n, lg/n, lb/n).Clamped()

	return Ring{
		Bounds:      Bounds{X1: minX, Y1: minY, X2: maxX, Y2: maxY},
		Center:      center,
		InnerRadius: inner,
		OuterRadius: outer,
		Pixels:      len(region),
		Hollow:      labels[center.Y][center.X] != label,
		Color:       mean.Hex(),
		Confidence:  annulusScore(maxX-minX+1, maxY-minY+1, inner, outer, len(region)),
	}
}

// annulusScore rates how closely a region of the given bounding box size,
// radii and pixel count matches an ideal annulus.
func annulusScore(width, height int, inner, outer float64, pixels int) float64 {
	aspect := float64(min(width, height)) / float64(max(width, height))

	// Half a pixel of slack on the outer edge so tiny regions are not
	// scored against a zero-area annulus.
	ideal := math.Pi * (math.Pow(outer+0.5, 2) - math.Pow(inner, 2))
	fill := float64(pixels) / ideal
	if fill > 1 {
		fill = 1 / fill
	}

	return aspect * fill
}

// findRegions labels the connected regions of mask.
//
// Returns a label grid (0 = unset, k = k-th region) indexed [y][x] and the
// pixels of each region in discovery order. Connectivity is 8-connected
// (includes diagonals).
func findRegions(mask imaging.Mask) ([][]int, [][]Point) {
	width, height := mask.Width(), mask.Height()
	labels := make([][]int, height)
	for y := 0; y < height; y++ {
		labels[y] = make([]int, width)
	}

	regions := make([][]Point, 0)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if mask.At(x, y) && labels[y][x] == 0 {
				region := floodFill(mask, labels, x, y, len(regions)+1)
				regions = append(regions, region)
			}
		}
	}
	return labels, regions
}

// floodFill performs iterative flood-fill from a starting point, writing label
// into every reached pixel.
//
// Uses a stack-based approach (not recursive) to avoid stack overflow
// on large regions. Uses 8-connectivity (includes diagonal neighbors).
func floodFill(mask imaging.Mask, labels [][]int, startX, startY, label int) []Point {
	region := make([]Point, 0)
	stack := []Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// At is false outside the mask, so bounds are checked there first
		if !mask.At(p.X, p.Y) || labels[p.Y][p.X] != 0 {
			continue
		}

		labels[p.Y][p.X] = label
		region = append(region, p)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
	return region
}
