/*
Package drawauth authenticates users by a freehand drawing.

A drawing exported from a canvas (base64, optionally behind a data-URI header)
is normalized to a 64x64 grayscale image, reduced to a 64-bit difference hash
and compared by Hamming distance with the hash stored at enrollment:

	stored, err := drawauth.Enroll(payload)
	...
	res, err := drawauth.Verify(attempt, stored, 25)
	if res.Accepted { ... }

The acceptance threshold is always supplied by the caller. All functions are
pure and safe for concurrent use; storing fingerprints is the caller's job.
*/
package drawauth
