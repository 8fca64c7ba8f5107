package canvas

import (
	"errors"
	"fmt"
)

// ErrDecode is matched by every error returned when a payload or raster cannot
// be decoded.
var ErrDecode = errors.New("canvas: cannot decode image")

// DecodeError reports which decoding stage failed.
type DecodeError struct {
	Op  string // "base64" or "image"
	Err error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("canvas: %s decode failed", e.Op)
	}
	return fmt.Sprintf("canvas: %s decode failed: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrDecode) true for any *DecodeError.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }
