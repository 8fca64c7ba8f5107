package drawauth

import (
	"github.com/high-horse/drawauth/dhash"
	"github.com/high-horse/drawauth/match"
)

// Matcher verifies attempts against one enrolled fingerprint.
type Matcher struct {
	stored    dhash.Fingerprint
	threshold int
	creator   *FingerprintCreator
}

// NewMatcher returns a matcher for stored that accepts distances up to and
// including threshold. logger may be nil.
func NewMatcher(logger *TransparencyLogger, stored dhash.Fingerprint, threshold int) *Matcher {
	return &Matcher{stored: stored, threshold: threshold, creator: NewFingerprintCreator(logger)}
}

// Match compares an already computed fingerprint.
func (m *Matcher) Match(candidate dhash.Fingerprint) match.Result {
	return match.Compare(m.stored, candidate, m.threshold)
}

// MatchPayload fingerprints a base64 canvas payload and compares it.
func (m *Matcher) MatchPayload(payload string) (match.Result, error) {
	f, err := m.creator.Fingerprint(payload)
	if err != nil {
		return match.Result{}, err
	}
	return m.Match(f), nil
}

// MatchImage fingerprints an encoded raster and compares it.
func (m *Matcher) MatchImage(data []byte) (match.Result, error) {
	f, err := m.creator.FingerprintImage(data)
	if err != nil {
		return match.Result{}, err
	}
	return m.Match(f), nil
}
