package canvas

import (
	"github.com/nfnt/resize"
)

// filter is the resampling filter used for every resize in the pipeline.
// Enrollment and verification must resample identically, so it is not
// configurable.
const filter = resize.Bilinear

// Resize rescales the grid in place to width x height samples.
func (g *Grid) Resize(width, height int) {
	if g.Width == width && g.Height == height {
		return
	}
	if g.Empty() {
		*g = *NewGrid(width, height, 255)
		return
	}
	scaled := resize.Resize(uint(width), uint(height), g.Gray(), filter)
	*g = *FromImage(scaled)
}

// Resized returns a resized copy and leaves g untouched.
func (g *Grid) Resized(width, height int) *Grid {
	c := g.Clone()
	c.Resize(width, height)
	return c
}
