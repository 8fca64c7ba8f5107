package canvas

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	wsq "github.com/jtejido/go-wsq"
	_ "github.com/spakin/netpbm"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MaxPixels bounds width*height of a decoded raster. Headers claiming more
// are rejected before any pixel buffer is allocated.
const MaxPixels = 1 << 25

// wsqMagic is the WSQ start-of-image marker.
var wsqMagic = []byte{0xff, 0xa0}

// Decode parses an encoded raster and converts it to a luminance grid.
// PNG, JPEG, GIF, BMP, TIFF, WebP, the netpbm family and WSQ are supported.
func Decode(data []byte) (*Grid, error) {
	if len(data) == 0 {
		return nil, &DecodeError{Op: "image", Err: errors.New("no image data")}
	}

	var (
		img image.Image
		err error
	)
	if bytes.HasPrefix(data, wsqMagic) {
		img, err = wsq.Decode(bytes.NewReader(data))
		if err != nil {
			err = fmt.Errorf("wsq: %w", err)
		}
	} else {
		if err := checkSize(data); err != nil {
			return nil, &DecodeError{Op: "image", Err: err}
		}
		var format string
		img, format, err = image.Decode(bytes.NewReader(data))
		if err != nil && format != "" {
			err = fmt.Errorf("%s: %w", format, err)
		}
	}
	if err != nil {
		return nil, &DecodeError{Op: "image", Err: err}
	}
	if img.Bounds().Empty() {
		return nil, &DecodeError{Op: "image", Err: errors.New("image has no pixels")}
	}
	return FromImage(img), nil
}

// checkSize reads the raster header and rejects images over MaxPixels.
// Header errors are left to the full decode to report.
func checkSize(data []byte) error {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	if cfg.Width < 0 || cfg.Height < 0 || int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return fmt.Errorf("%s: %dx%d exceeds %d pixels", format, cfg.Width, cfg.Height, MaxPixels)
	}
	return nil
}
