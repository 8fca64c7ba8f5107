package drawauth

import (
	"fmt"

	"github.com/high-horse/drawauth/canvas"
	"github.com/high-horse/drawauth/dhash"
	"github.com/high-horse/drawauth/match"
)

var (
	// ErrDecode matches errors for payloads that are not valid base64 or not
	// a supported raster.
	ErrDecode = canvas.ErrDecode
	// ErrInvalidFingerprintFormat matches errors for stored fingerprints that
	// are not 16 hex digits.
	ErrInvalidFingerprintFormat = dhash.ErrInvalidFormat
)

var defaultCreator = NewFingerprintCreator(nil)

// Enroll fingerprints a base64 canvas payload for storage.
func Enroll(payload string) (dhash.Fingerprint, error) {
	f, err := defaultCreator.Fingerprint(payload)
	if err != nil {
		return dhash.Fingerprint{}, fmt.Errorf("enroll: %w", err)
	}
	return f, nil
}

// EnrollImage fingerprints an encoded raster for storage.
func EnrollImage(data []byte) (dhash.Fingerprint, error) {
	f, err := defaultCreator.FingerprintImage(data)
	if err != nil {
		return dhash.Fingerprint{}, fmt.Errorf("enroll: %w", err)
	}
	return f, nil
}

// Verify fingerprints a base64 canvas payload and compares it with stored.
func Verify(payload string, stored dhash.Fingerprint, threshold int) (match.Result, error) {
	res, err := NewMatcher(nil, stored, threshold).MatchPayload(payload)
	if err != nil {
		return match.Result{}, fmt.Errorf("verify: %w", err)
	}
	return res, nil
}

// VerifyImage is Verify for an encoded raster.
func VerifyImage(data []byte, stored dhash.Fingerprint, threshold int) (match.Result, error) {
	res, err := NewMatcher(nil, stored, threshold).MatchImage(data)
	if err != nil {
		return match.Result{}, fmt.Errorf("verify: %w", err)
	}
	return res, nil
}

// VerifyHex is Verify with the stored fingerprint in its hex storage form.
func VerifyHex(payload, storedHex string, threshold int) (match.Result, error) {
	stored, err := dhash.ParseHex(storedHex)
	if err != nil {
		return match.Result{}, fmt.Errorf("verify: stored fingerprint: %w", err)
	}
	return Verify(payload, stored, threshold)
}

// Identify fingerprints a payload and ranks the gallery subjects it matches.
// See match.Rank for ordering and limit.
func Identify(payload string, gallery map[string]dhash.Fingerprint, threshold, limit int) ([]match.Candidate, error) {
	probe, err := defaultCreator.Fingerprint(payload)
	if err != nil {
		return nil, fmt.Errorf("identify: %w", err)
	}
	return match.Rank(probe, gallery, threshold, limit), nil
}
