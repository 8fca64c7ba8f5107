package canvas

import (
	"fmt"
	"image"
	"image/color"
)

// Grid is a single-channel intensity field. Samples are stored row-major with
// the origin at the top-left corner; 0 is black and 255 is white.
type Grid struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewGrid returns a width x height grid filled with value.
func NewGrid(width, height int, value uint8) *Grid {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("canvas: negative grid size %dx%d", width, height))
	}
	g := &Grid{Width: width, Height: height, Pix: make([]uint8, width*height)}
	if value != 0 {
		for i := range g.Pix {
			g.Pix[i] = value
		}
	}
	return g
}

// FromImage converts img to luminance. Translucent pixels are composited over
// a white background first, since a drawing pad paints dark strokes on white.
func FromImage(img image.Image) *Grid {
	b := img.Bounds()
	g := NewGrid(b.Dx(), b.Dy(), 0)

	if gray, ok := img.(*image.Gray); ok {
		for y := 0; y < g.Height; y++ {
			start := gray.PixOffset(b.Min.X, b.Min.Y+y)
			copy(g.Pix[y*g.Width:(y+1)*g.Width], gray.Pix[start:start+g.Width])
		}
		return g
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.Pix[y*g.Width+x] = luminance(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return g
}

// luminance applies the color.GrayModel weights to c after compositing it over
// white.
func luminance(c color.Color) uint8 {
	r, gr, bl, a := c.RGBA()
	bg := 0xffff - a
	r, gr, bl = r+bg, gr+bg, bl+bg
	y := (19595*r + 38470*gr + 7471*bl + 1<<15) >> 24
	return uint8(y)
}

// At returns the sample at column x, row y.
func (g *Grid) At(x, y int) uint8 { return g.Pix[y*g.Width+x] }

// Set stores v at column x, row y.
func (g *Grid) Set(x, y int, v uint8) { g.Pix[y*g.Width+x] = v }

// Bounds returns the grid rectangle, anchored at the origin.
func (g *Grid) Bounds() image.Rectangle { return image.Rect(0, 0, g.Width, g.Height) }

// Empty reports whether the grid has no samples.
func (g *Grid) Empty() bool { return g.Width == 0 || g.Height == 0 }

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{Width: g.Width, Height: g.Height, Pix: make([]uint8, len(g.Pix))}
	copy(c.Pix, g.Pix)
	return c
}

// Equal reports whether both grids have the same size and samples.
func (g *Grid) Equal(o *Grid) bool {
	if g.Width != o.Width || g.Height != o.Height || len(g.Pix) != len(o.Pix) {
		return false
	}
	for i := range g.Pix {
		if g.Pix[i] != o.Pix[i] {
			return false
		}
	}
	return true
}

// Gray exposes the grid as an *image.Gray sharing the same backing array.
func (g *Grid) Gray() *image.Gray {
	return &image.Gray{Pix: g.Pix, Stride: g.Width, Rect: g.Bounds()}
}

// Inverted returns a tone-inverted copy: strokes become bright and the white
// background becomes zero.
func (g *Grid) Inverted() *Grid {
	c := &Grid{Width: g.Width, Height: g.Height, Pix: make([]uint8, len(g.Pix))}
	for i, v := range g.Pix {
		c.Pix[i] = 255 - v
	}
	return c
}

// NonZeroBounds returns the smallest rectangle containing every non-zero
// sample. ok is false when all samples are zero.
func (g *Grid) NonZeroBounds() (r image.Rectangle, ok bool) {
	minX, minY := g.Width, g.Height
	maxX, maxY := -1, -1
	for y := 0; y < g.Height; y++ {
		row := g.Pix[y*g.Width : (y+1)*g.Width]
		for x, v := range row {
			if v == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}
	if maxX < 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// Crop shrinks the grid in place to r. The rectangle is clipped to the grid.
func (g *Grid) Crop(r image.Rectangle) {
	r = r.Intersect(g.Bounds())
	w, h := r.Dx(), r.Dy()
	// Rows move towards the front of Pix, so copying top to bottom never
	// overwrites a source row before it is read.
	for y := 0; y < h; y++ {
		src := (r.Min.Y+y)*g.Width + r.Min.X
		copy(g.Pix[y*w:(y+1)*w], g.Pix[src:src+w])
	}
	g.Pix = g.Pix[:w*h]
	g.Width, g.Height = w, h
}
