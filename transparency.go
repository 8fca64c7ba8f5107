package drawauth

import (
	"bytes"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/spakin/netpbm"

	"github.com/high-horse/drawauth/canvas"
)

// Keys offered to TransparencyContents.
const (
	KeyDecoded       = "decoded"
	KeyContentBounds = "content-bounds"
	KeyCanonical     = "canonical"
	KeyFingerprint   = "fingerprint"
)

const (
	mimeGraymap = "image/x-portable-graymap"
	mimeCBOR    = "application/cbor"
)

// TransparencyContents receives intermediate artefacts of the fingerprint
// pipeline. Accepts is asked first so that unwanted artefacts are never
// encoded.
type TransparencyContents interface {
	Accepts(key string) bool
	Accept(key, mime string, data []byte) error
}

// TransparencyLogger encodes pipeline artefacts for a TransparencyContents.
// A nil *TransparencyLogger logs nothing.
type TransparencyLogger struct {
	contents TransparencyContents
}

func NewTransparencyLogger(contents TransparencyContents) *TransparencyLogger {
	return &TransparencyLogger{contents: contents}
}

func (l *TransparencyLogger) accepts(key string) bool {
	return l != nil && l.contents != nil && l.contents.Accepts(key)
}

// boundsRecord is the CBOR payload of KeyContentBounds.
type boundsRecord struct {
	Found  bool `cbor:"found"`
	Left   int  `cbor:"left"`
	Top    int  `cbor:"top"`
	Right  int  `cbor:"right"`
	Bottom int  `cbor:"bottom"`
	Width  int  `cbor:"width"`
	Height int  `cbor:"height"`
}

// fingerprintRecord is the CBOR payload of KeyFingerprint.
type fingerprintRecord struct {
	Hex  string `cbor:"hex"`
	Bits []byte `cbor:"bits"`
}

func (l *TransparencyLogger) logGrid(key string, g *canvas.Grid) error {
	if !l.accepts(key) {
		return nil
	}
	var buf bytes.Buffer
	err := netpbm.Encode(&buf, g.Gray(), &netpbm.EncodeOptions{
		Format:   netpbm.PGM,
		MaxValue: 255,
		Comments: []string{key},
	})
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return l.contents.Accept(key, mimeGraymap, buf.Bytes())
}

func (l *TransparencyLogger) logBounds(g *canvas.Grid) error {
	if !l.accepts(KeyContentBounds) {
		return nil
	}
	r, ok := canvas.ContentBounds(g)
	rec := boundsRecord{Found: ok, Width: g.Width, Height: g.Height}
	rec.Left, rec.Top, rec.Right, rec.Bottom = r.Min.X, r.Min.Y, r.Max.X, r.Max.Y
	return l.logRecord(KeyContentBounds, rec)
}

func (l *TransparencyLogger) logRecord(key string, v interface{}) error {
	if !l.accepts(key) {
		return nil
	}
	data, err := cbor.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return l.contents.Accept(key, mimeCBOR, data)
}
