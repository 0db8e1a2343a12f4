// Package oscrypt implements the credential protection schemes of
// Chromium-based browsers: master-key retrieval per platform, classification
// of stored secrets by format generation, and decryption/re-encryption across
// both generations.
package oscrypt

import "bytes"

// modernPrefix tags secrets written by the authenticated-encryption scheme
// the browser switched to in v80.
var modernPrefix = []byte("v10")

// Generation is the ciphertext format generation of a stored secret.
type Generation int

const (
	// GenerationLegacy covers pre-v80 secrets: whole-blob DPAPI on Windows,
	// AES-CBC on Linux.
	GenerationLegacy Generation = iota
	// GenerationModern covers v10-prefixed AES-GCM secrets.
	GenerationModern
)

// String implements fmt.Stringer for log output.
func (g Generation) String() string {
	if g == GenerationModern {
		return "modern"
	}
	return "legacy"
}

// Classify reports the format generation of a stored secret. It is total:
// every byte sequence, including the empty one, classifies as exactly one
// generation.
func Classify(secret []byte) Generation {
	if bytes.HasPrefix(secret, modernPrefix) {
		return GenerationModern
	}
	return GenerationLegacy
}
