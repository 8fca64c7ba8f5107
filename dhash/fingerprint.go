package dhash

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math/bits"

	"github.com/high-horse/drawauth/canvas"
)

const (
	// Rows is the height of the working grid and the number of bytes in a
	// fingerprint.
	Rows = 8
	// Columns is the width of the working grid. Adjacent pairs give
	// Columns-1 bits per row.
	Columns = Rows + 1
	// Bits is the fingerprint length.
	Bits = Rows * (Columns - 1)
	// HexLen is the length of the hex form.
	HexLen = Bits / 4
)

// ErrInvalidFormat is matched by errors from ParseHex.
var ErrInvalidFormat = errors.New("dhash: invalid fingerprint format")

// FormatError reports a stored fingerprint that could not be parsed.
type FormatError struct {
	Input string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("dhash: invalid fingerprint %q: %v", e.Input, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool { return target == ErrInvalidFormat }

// Fingerprint is a difference hash. Byte i holds row i of the working grid,
// with column 0 in the most significant bit. Only bitwise comparison between
// fingerprints is meaningful.
type Fingerprint [Rows]byte

// Compute hashes a canonical grid. The grid is copied and scaled down to a
// Columns x Rows working grid with the same filter the normalizer uses; a bit
// is set when a sample is strictly brighter than its right-hand neighbour.
// Equal neighbours yield 0, so a blank drawing hashes to all zero bits.
func Compute(g *canvas.Grid) Fingerprint {
	w := g.Resized(Columns, Rows)

	var f Fingerprint
	for y := 0; y < Rows; y++ {
		var row byte
		for x := 0; x < Columns-1; x++ {
			row <<= 1
			if w.At(x, y) > w.At(x+1, y) {
				row |= 1
			}
		}
		f[y] = row
	}
	return f
}

// Distance returns the number of differing bits between a and b.
func Distance(a, b Fingerprint) int {
	return bits.OnesCount64(a.Uint64() ^ b.Uint64())
}

// Distance returns the Hamming distance to o.
func (f Fingerprint) Distance(o Fingerprint) int { return Distance(f, o) }

// Uint64 packs the fingerprint big-endian, row 0 in the top byte.
func (f Fingerprint) Uint64() uint64 { return binary.BigEndian.Uint64(f[:]) }

// FromUint64 is the inverse of Uint64.
func FromUint64(v uint64) Fingerprint {
	var f Fingerprint
	binary.BigEndian.PutUint64(f[:], v)
	return f
}

// Hex returns the 16 character lowercase hex form used for storage.
func (f Fingerprint) Hex() string { return hex.EncodeToString(f[:]) }

func (f Fingerprint) String() string { return f.Hex() }

// ParseHex parses the storage form produced by Hex. Upper case digits are
// accepted.
func ParseHex(s string) (Fingerprint, error) {
	var f Fingerprint
	if len(s) != HexLen {
		return f, &FormatError{Input: s, Err: fmt.Errorf("want %d hex digits, got %d", HexLen, len(s))}
	}
	if _, err := hex.Decode(f[:], []byte(s)); err != nil {
		return Fingerprint{}, &FormatError{Input: s, Err: err}
	}
	return f, nil
}

// MarshalText implements encoding.TextMarshaler.
func (f Fingerprint) MarshalText() ([]byte, error) {
	return []byte(f.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Fingerprint) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
