package canvas

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"io"
	"testing"

	"github.com/spakin/netpbm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestDecode_PNG(t *testing.T) {
	data := encodePNG(t, drawing(30, 20, image.Rect(5, 5, 10, 10)))
	g, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, 30, g.Width)
	assert.Equal(t, 20, g.Height)
	assert.Equal(t, uint8(0), g.At(7, 7))
	assert.Equal(t, uint8(255), g.At(0, 0))
}

func TestDecode_Malformed(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("definitely not an image"), {0x89, 'P', 'N', 'G', 0, 0}} {
		g, err := Decode(data)
		assert.Nil(t, g)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDecode))
	}
}

func TestContentBounds(t *testing.T) {
	g := FromImage(drawing(100, 80, image.Rect(20, 10, 30, 15), image.Rect(50, 40, 55, 60)))
	r, ok := ContentBounds(g)
	require.True(t, ok)
	assert.Equal(t, image.Rect(20, 10, 55, 60), r)

	_, ok = ContentBounds(NewGrid(10, 10, 255))
	assert.False(t, ok)
}

func TestNormalize_AlwaysCanonical(t *testing.T) {
	sizes := [][2]int{{300, 300}, {640, 120}, {7, 400}, {1, 1}}
	for _, s := range sizes {
		g := NormalizeGrid(FromImage(drawing(s[0], s[1], image.Rect(0, 0, s[0]/2+1, s[1]/3+1))))
		assert.Equal(t, CanonicalSize, g.Width)
		assert.Equal(t, CanonicalSize, g.Height)
		assert.Len(t, g.Pix, CanonicalSize*CanonicalSize)
	}
}

func TestNormalize_BlankCanvas(t *testing.T) {
	g, err := NormalizeBytes(encodePNG(t, drawing(300, 300)))
	require.NoError(t, err)
	assert.True(t, g.Equal(NewGrid(CanonicalSize, CanonicalSize, 255)))
}

func TestNormalize_TranslationAndCanvasSize(t *testing.T) {
	stroke := func(dx, dy int) []image.Rectangle {
		return []image.Rectangle{
			image.Rect(10, 10, 70, 25).Add(image.Pt(dx, dy)),
			image.Rect(40, 25, 55, 90).Add(image.Pt(dx, dy)),
		}
	}
	a := NormalizeGrid(FromImage(drawing(300, 300, stroke(0, 0)...)))
	b := NormalizeGrid(FromImage(drawing(300, 300, stroke(150, 120)...)))
	c := NormalizeGrid(FromImage(drawing(200, 400, stroke(60, 200)...)))
	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(c))
}

func TestNormalizePayload_PrefixedAndRaw(t *testing.T) {
	data := encodePNG(t, drawing(120, 90, image.Rect(15, 20, 80, 30), image.Rect(60, 30, 70, 85)))

	prefixed, err := NormalizePayload(dataURI(data))
	require.NoError(t, err)
	plain, err := NormalizePayload(base64.StdEncoding.EncodeToString(data))
	require.NoError(t, err)
	assert.True(t, prefixed.Equal(plain))
}

func TestNormalizePayload_Malformed(t *testing.T) {
	g, err := NormalizePayload("data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("garbage")))
	assert.Nil(t, g)
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "image", de.Op)
}

func TestDecode_Formats(t *testing.T) {
	img := drawing(40, 30, image.Rect(5, 4, 20, 9), image.Rect(12, 9, 16, 26))
	want, err := Decode(encodePNG(t, img))
	require.NoError(t, err)

	encoders := map[string]func(w io.Writer) error{
		"bmp":  func(w io.Writer) error { return bmp.Encode(w, img) },
		"tiff": func(w io.Writer) error { return tiff.Encode(w, img, nil) },
		"pgm raw": func(w io.Writer) error {
			return netpbm.Encode(w, img, &netpbm.EncodeOptions{Format: netpbm.PGM, MaxValue: 255})
		},
		"pgm plain": func(w io.Writer) error {
			return netpbm.Encode(w, img, &netpbm.EncodeOptions{Format: netpbm.PGM, MaxValue: 255, Plain: true})
		},
		"ppm raw": func(w io.Writer) error {
			return netpbm.Encode(w, img, &netpbm.EncodeOptions{Format: netpbm.PPM, MaxValue: 255})
		},
	}
	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, encode(&buf))

			got, err := Decode(buf.Bytes())
			require.NoError(t, err)
			require.Equal(t, want.Width, got.Width)
			require.Equal(t, want.Height, got.Height)
			assert.True(t, want.Equal(got))
		})
	}
}

func TestDecode_MalformedWSQ(t *testing.T) {
	for _, data := range [][]byte{{0xff, 0xa0}, {0xff, 0xa0, 0xff, 0xa8, 0x00}} {
		g, err := Decode(data)
		assert.Nil(t, g)
		assert.ErrorIs(t, err, ErrDecode)
	}
}

func TestDecode_OversizedHeader(t *testing.T) {
	data := encodePNG(t, drawing(1, 1))
	// IHDR: 8 byte signature, 4 byte length, "IHDR", then width and height.
	binary.BigEndian.PutUint32(data[16:20], 100000)
	binary.BigEndian.PutUint32(data[20:24], 100000)
	binary.BigEndian.PutUint32(data[29:33], crc32.ChecksumIEEE(data[12:29]))

	g, err := Decode(data)
	assert.Nil(t, g)
	require.ErrorIs(t, err, ErrDecode)
	assert.Contains(t, err.Error(), "exceeds")
}
