// Package dhash computes 64-bit difference hashes of canonical drawings and the
// Hamming distance between them.
package dhash
