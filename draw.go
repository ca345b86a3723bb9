package skinforge

import (
	"image"
	"image/color"
)

// Pixel is one entry of a batched draw.
type Pixel struct {
	X, Y  int
	Color color.RGBA
}

// GradientDirection selects the axis a gradient runs along.
type GradientDirection int

const (
	Horizontal GradientDirection = iota
	Vertical
	Diagonal
)

// SetPixel writes one pixel. Out-of-range coordinates are a no-op.
func (b *Buffer) SetPixel(x, y int, c color.RGBA) {
	if !b.contains(x, y) {
		return
	}
	b.img.SetRGBA(x, y, c)
}

// Batch writes many pixels, grouped by color to minimize state changes.
// If a coordinate repeats, the last entry for it wins.
func (b *Buffer) Batch(pixels []Pixel) {
	final := make(map[image.Point]color.RGBA, len(pixels))
	for _, p := range pixels {
		final[image.Pt(p.X, p.Y)] = p.Color
	}

	groups := make(map[color.RGBA][]image.Point)
	for pt, c := range final {
		groups[c] = append(groups[c], pt)
	}

	for c, pts := range groups {
		for _, pt := range pts {
			b.SetPixel(pt.X, pt.Y, c)
		}
	}
}

// FillRegion sets every pixel of the rectangle, clipped to the buffer, to c.
func (b *Buffer) FillRegion(x, y, w, h int, c color.RGBA) {
	r := b.clip(image.Rect(x, y, x+w, y+h))
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			b.img.SetRGBA(px, py, c)
		}
	}
}

// DrawLine rasterizes a line from (x1,y1) to (x2,y2) including both
// endpoints. width widens the stroke by stamping a width-sized square at
// every step; width < 1 is treated as 1.
func (b *Buffer) DrawLine(x1, y1, x2, y2 int, c color.RGBA, width int) {
	if width < 1 {
		width = 1
	}

	dx := absInt(x2 - x1)
	dy := -absInt(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	x, y := x1, y1
	for {
		b.stamp(x, y, width, c)
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func (b *Buffer) stamp(x, y, width int, c color.RGBA) {
	off := (width - 1) / 2
	for dy := 0; dy < width; dy++ {
		for dx := 0; dx < width; dx++ {
			b.SetPixel(x-off+dx, y-off+dy, c)
		}
	}
}

// GradientFill paints the rectangle with a linear blend from start to end.
// The start edge is exactly start and the far edge exactly end (within
// rounding); clipping does not shift the ramp.
func (b *Buffer) GradientFill(x, y, w, h int, start, end RGB, dir GradientDirection) {
	if w <= 0 || h <= 0 {
		return
	}
	r := b.clip(image.Rect(x, y, x+w, y+h))

	span := 1
	switch dir {
	case Horizontal:
		span = w - 1
	case Vertical:
		span = h - 1
	case Diagonal:
		span = (w - 1) + (h - 1)
	}
	if span < 1 {
		span = 1
	}

	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			var pos int
			switch dir {
			case Horizontal:
				pos = px - x
			case Vertical:
				pos = py - y
			case Diagonal:
				pos = (px - x) + (py - y)
			}
			c := start.Blend(end, float64(pos)/float64(span))
			b.img.SetRGBA(px, py, c.RGBA8())
		}
	}
}

// PatternFill tiles grid across the rectangle, wrapping via modulo. Each grid
// cell indexes into colors; indices outside [0, len(colors)) leave the
// underlying pixel untouched.
func (b *Buffer) PatternFill(x, y, w, h int, grid [][]int, colors []RGB) {
	if len(grid) == 0 {
		return
	}
	r := b.clip(image.Rect(x, y, x+w, y+h))

	for py := r.Min.Y; py < r.Max.Y; py++ {
		row := grid[(py-y)%len(grid)]
		if len(row) == 0 {
			continue
		}
		for px := r.Min.X; px < r.Max.X; px++ {
			idx := row[(px-x)%len(row)]
			if idx < 0 || idx >= len(colors) {
				continue
			}
			b.img.SetRGBA(px, py, colors[idx].RGBA8())
		}
	}
}

// FloodFill recolors the 4-connected region around the seed point whose
// pixels match the seed color within tolerance (per-channel absolute
// difference). The fill color is written fully opaque. Filling a region that
// already has the fill color is a no-op, so the operation is idempotent.
//
// The traversal is an explicit stack with a visited set, keeping memory
// bounded by the region size rather than recursion depth.
func (b *Buffer) FloodFill(x, y int, c RGB, tolerance int) {
	if !b.contains(x, y) {
		return
	}

	target := b.img.RGBAAt(x, y)
	fill := c.RGBA8()
	if target == fill {
		return
	}

	visited := make(map[image.Point]bool)
	stack := []image.Point{image.Pt(x, y)}
	visited[stack[0]] = true

	for len(stack) > 0 {
		pt := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !channelsWithin(b.img.RGBAAt(pt.X, pt.Y), target, tolerance) {
			continue
		}
		b.img.SetRGBA(pt.X, pt.Y, fill)

		for _, n := range [4]image.Point{
			{pt.X + 1, pt.Y}, {pt.X - 1, pt.Y},
			{pt.X, pt.Y + 1}, {pt.X, pt.Y - 1},
		} {
			if !b.contains(n.X, n.Y) || visited[n] {
				continue
			}
			visited[n] = true
			stack = append(stack, n)
		}
	}
}

// BoxBlur replaces every pixel of the rectangle with the unweighted average
// of the pixels within Chebyshev distance radius that also lie inside the
// rectangle. The average reads a snapshot of the region, so blurred output
// never feeds back into later pixels, and nothing outside the rectangle is
// read or written.
func (b *Buffer) BoxBlur(x, y, w, h, radius int) {
	if radius < 1 {
		return
	}
	r := b.clip(image.Rect(x, y, x+w, y+h))
	if r.Empty() {
		return
	}

	snap := b.snapshot(r)

	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			var sumR, sumG, sumB, sumA, count uint32
			for ny := maxInt(py-radius, r.Min.Y); ny <= minInt(py+radius, r.Max.Y-1); ny++ {
				for nx := maxInt(px-radius, r.Min.X); nx <= minInt(px+radius, r.Max.X-1); nx++ {
					c := snap[(ny-r.Min.Y)*r.Dx()+(nx-r.Min.X)]
					sumR += uint32(c.R)
					sumG += uint32(c.G)
					sumB += uint32(c.B)
					sumA += uint32(c.A)
					count++
				}
			}
			b.img.SetRGBA(px, py, color.RGBA{
				R: uint8((sumR + count/2) / count),
				G: uint8((sumG + count/2) / count),
				B: uint8((sumB + count/2) / count),
				A: uint8((sumA + count/2) / count),
			})
		}
	}
}

// Pixelate partitions the rectangle into blockSize x blockSize tiles (edge
// tiles may be partial) and sets every pixel of a tile to the tile's
// per-channel mean.
func (b *Buffer) Pixelate(x, y, w, h, blockSize int) {
	if blockSize < 1 {
		return
	}
	r := b.clip(image.Rect(x, y, x+w, y+h))

	for ty := r.Min.Y; ty < r.Max.Y; ty += blockSize {
		for tx := r.Min.X; tx < r.Max.X; tx += blockSize {
			tile := b.clip(image.Rect(tx, ty, tx+blockSize, ty+blockSize)).Intersect(r)

			var sumR, sumG, sumB, sumA, count uint32
			for py := tile.Min.Y; py < tile.Max.Y; py++ {
				for px := tile.Min.X; px < tile.Max.X; px++ {
					c := b.img.RGBAAt(px, py)
					sumR += uint32(c.R)
					sumG += uint32(c.G)
					sumB += uint32(c.B)
					sumA += uint32(c.A)
					count++
				}
			}
			if count == 0 {
				continue
			}

			mean := color.RGBA{
				R: uint8((sumR + count/2) / count),
				G: uint8((sumG + count/2) / count),
				B: uint8((sumB + count/2) / count),
				A: uint8((sumA + count/2) / count),
			}
			for py := tile.Min.Y; py < tile.Max.Y; py++ {
				for px := tile.Min.X; px < tile.Max.X; px++ {
					b.img.SetRGBA(px, py, mean)
				}
			}
		}
	}
}

func (b *Buffer) snapshot(r image.Rectangle) []color.RGBA {
	snap := make([]color.RGBA, r.Dx()*r.Dy())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			snap[(py-r.Min.Y)*r.Dx()+(px-r.Min.X)] = b.img.RGBAAt(px, py)
		}
	}
	return snap
}

func channelsWithin(a, b color.RGBA, tolerance int) bool {
	return absInt(int(a.R)-int(b.R)) <= tolerance &&
		absInt(int(a.G)-int(b.G)) <= tolerance &&
		absInt(int(a.B)-int(b.B)) <= tolerance &&
		absInt(int(a.A)-int(b.A)) <= tolerance
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
