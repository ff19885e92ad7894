package imaging

// DefaultDilationSize is the side length of the square structuring element
// used to thicken edge bands.
const DefaultDilationSize = 5

// DefaultDilationIterations is the number of times the structuring element is
// applied.
const DefaultDilationIterations = 2

// Mask is a binary grid with the same dimensions as the image it was derived
// from. The zero value is an empty 0x0 mask.
type Mask struct {
	width  int
	height int
	bits   []bool
}

// NewMask returns an all-false mask of the given size.
func NewMask(width, height int) Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Mask{width: width, height: height, bits: make([]bool, width*height)}
}

// Width returns the mask width in pixels.
func (m Mask) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m Mask) Height() int { return m.height }

// At reports whether (x, y) is set. Coordinates outside the mask are false.
func (m Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.bits[y*m.width+x]
}

// Set assigns v to (x, y). Coordinates outside the mask are ignored.
func (m Mask) Set(x, y int, v bool) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	m.bits[y*m.width+x] = v
}

// Count returns the number of set pixels.
func (m Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of m.
func (m Mask) Clone() Mask {
	bits := make([]bool, len(m.bits))
	copy(bits, m.bits)
	return Mask{width: m.width, height: m.height, bits: bits}
}

// Contains reports whether every pixel set in other is also set in m.
// Masks of different sizes never contain each other.
func (m Mask) Contains(other Mask) bool {
	if m.width != other.width || m.height != other.height {
		return false
	}
	for i, b := range other.bits {
		if b && !m.bits[i] {
			return false
		}
	}
	return true
}

// Dilate grows the set region by a size x size square structuring element
// centered on each pixel. For even sizes the neighborhood reaches one pixel
// further toward lower coordinates. Pixels beyond the mask border count as
// unset.
//
// The square element is separable, so dilation runs as a horizontal pass
// followed by a vertical pass. The receiver is not modified.
func (m Mask) Dilate(size int) Mask {
	if size <= 1 || m.width == 0 || m.height == 0 {
		return m.Clone()
	}
	before := size / 2
	after := size - 1 - before

	horizontal := NewMask(m.width, m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			for dx := -before; dx <= after; dx++ {
				if m.At(x+dx, y) {
					horizontal.bits[y*m.width+x] = true
					break
				}
			}
		}
	}

	out := NewMask(m.width, m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			for dy := -before; dy <= after; dy++ {
				if horizontal.At(x, y+dy) {
					out.bits[y*m.width+x] = true
					break
				}
			}
		}
	}
	return out
}

// DilateN applies Dilate iterations times. Zero or negative iterations return
// a copy of m.
func (m Mask) DilateN(size, iterations int) Mask {
	out := m.Clone()
	for i := 0; i < iterations; i++ {
		out = out.Dilate(size)
	}
	return out
}
