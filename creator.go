package drawauth

import (
	"fmt"

	"github.com/high-horse/drawauth/canvas"
	"github.com/high-horse/drawauth/dhash"
)

// FingerprintCreator runs the normalize-then-hash pipeline, reporting
// intermediate artefacts to an optional TransparencyLogger.
type FingerprintCreator struct {
	logger *TransparencyLogger
}

// NewFingerprintCreator returns a creator. logger may be nil.
func NewFingerprintCreator(logger *TransparencyLogger) *FingerprintCreator {
	return &FingerprintCreator{logger: logger}
}

// Fingerprint hashes a base64 canvas payload.
func (c *FingerprintCreator) Fingerprint(payload string) (dhash.Fingerprint, error) {
	raw, err := canvas.DecodePayload(payload)
	if err != nil {
		return dhash.Fingerprint{}, err
	}
	return c.FingerprintImage(raw.Data)
}

// FingerprintImage hashes an encoded raster.
func (c *FingerprintCreator) FingerprintImage(data []byte) (dhash.Fingerprint, error) {
	g, err := canvas.Decode(data)
	if err != nil {
		return dhash.Fingerprint{}, err
	}
	return c.FingerprintGrid(g)
}

// FingerprintGrid normalizes g in place and hashes it. It only fails when the
// transparency logger does.
func (c *FingerprintCreator) FingerprintGrid(g *canvas.Grid) (dhash.Fingerprint, error) {
	if err := c.logger.logGrid(KeyDecoded, g); err != nil {
		return dhash.Fingerprint{}, fmt.Errorf("transparency: %w", err)
	}
	if err := c.logger.logBounds(g); err != nil {
		return dhash.Fingerprint{}, fmt.Errorf("transparency: %w", err)
	}
	canvas.NormalizeGrid(g)
	if err := c.logger.logGrid(KeyCanonical, g); err != nil {
		return dhash.Fingerprint{}, fmt.Errorf("transparency: %w", err)
	}

	f := dhash.Compute(g)
	if err := c.logger.logRecord(KeyFingerprint, fingerprintRecord{Hex: f.Hex(), Bits: f[:]}); err != nil {
		return dhash.Fingerprint{}, fmt.Errorf("transparency: %w", err)
	}
	return f, nil
}
