package driven

import "errors"

// Decryption failure kinds. Per-record failures are recoverable: callers skip
// the offending record and continue the batch.
var (
	// ErrAuthenticationFailed means the authenticated-encryption tag did not
	// verify; the secret is corrupt or was encrypted under a different key.
	ErrAuthenticationFailed = errors.New("authentication tag mismatch")
	// ErrPlatformUnwrapFailed means the OS-scoped unwrap facility rejected a
	// legacy secret.
	ErrPlatformUnwrapFailed = errors.New("platform unwrap rejected secret")
	// ErrInvalidPadding means a legacy block-cipher secret carried a padding
	// length byte outside the valid range.
	ErrInvalidPadding = errors.New("invalid block padding")
	// ErrInvalidUTF8 means decryption succeeded but the result is not text.
	ErrInvalidUTF8 = errors.New("decrypted secret is not valid UTF-8")
)

// ErrNoKey is returned by encryption when no master key is available.
var ErrNoKey = errors.New("no master key available")

// SecretCipher decrypts stored credential secrets and re-encrypts plaintext
// for the target platform's protection scheme. Implementations hold the
// master key and any negotiated platform capabilities; the domain layer only
// ever sees plaintext. Encryption always emits the modern authenticated
// format, regardless of the generation a secret was read in.
type SecretCipher interface {
	Decrypt(secret []byte) (string, error)
	Encrypt(plaintext string) ([]byte, error)
}
