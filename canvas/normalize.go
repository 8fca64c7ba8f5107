package canvas

import "image"

// CanonicalSize is the width and height of a normalized drawing.
const CanonicalSize = 64

// ContentBounds returns the bounding box of the strokes in g: every sample
// that is not pure white. ok is false for a blank canvas.
func ContentBounds(g *Grid) (image.Rectangle, bool) {
	return g.Inverted().NonZeroBounds()
}

// NormalizeGrid crops g to its content and rescales it to the canonical size.
// g is modified in place and returned. A blank canvas is resized uncropped.
func NormalizeGrid(g *Grid) *Grid {
	if r, ok := ContentBounds(g); ok {
		g.Crop(r)
	}
	g.Resize(CanonicalSize, CanonicalSize)
	return g
}

// NormalizeBytes decodes an encoded raster and normalizes it.
func NormalizeBytes(data []byte) (*Grid, error) {
	g, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return NormalizeGrid(g), nil
}

// Normalize decodes raw and normalizes it.
func Normalize(raw RawImage) (*Grid, error) {
	return NormalizeBytes(raw.Data)
}

// NormalizePayload decodes a base64 canvas payload and normalizes it.
func NormalizePayload(payload string) (*Grid, error) {
	raw, err := DecodePayload(payload)
	if err != nil {
		return nil, err
	}
	return Normalize(raw)
}
