package oscrypt

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/cwinters/braveport/internal/domain/model"
	"github.com/cwinters/braveport/internal/domain/port/driven"
)

// nonceSize is the GCM nonce length of the modern format.
const nonceSize = 12

// Compile-time interface satisfaction check.
var _ driven.SecretCipher = (*Cipher)(nil)

// Cipher implements SecretCipher for one platform and one master key. The
// capability set is fixed at construction; a path that needs a missing
// facility fails with the matching error kind.
type Cipher struct {
	key      []byte
	platform model.Platform
	caps     Capabilities
}

// NewCipher creates a Cipher for the given platform. The key may be nil when
// the caller only ever decrypts legacy Windows secrets (the DPAPI call is
// the decryption); every other path requires it.
func NewCipher(key []byte, platform model.Platform, caps Capabilities) (*Cipher, error) {
	switch platform {
	case model.PlatformWindows, model.PlatformLinux:
	default:
		return nil, fmt.Errorf("cipher for %q: %w", platform, driven.ErrUnsupportedPlatform)
	}
	return &Cipher{key: key, platform: platform, caps: caps}, nil
}

// Decrypt turns a stored secret into plaintext. Empty input short-circuits
// to an empty string without touching the key.
func (c *Cipher) Decrypt(secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", nil
	}
	if Classify(secret) == GenerationModern {
		return c.decryptModern(secret)
	}
	return c.decryptLegacy(secret)
}

// decryptModern opens a v10 secret: 3-byte tag, 12-byte nonce, then
// ciphertext with the 16-byte authentication tag appended.
func (c *Cipher) decryptModern(secret []byte) (string, error) {
	if c.key == nil {
		return "", driven.ErrKeyUnavailable
	}

	payload := secret[len(modernPrefix):]
	if len(payload) < nonceSize {
		return "", fmt.Errorf("secret shorter than nonce: %w", driven.ErrAuthenticationFailed)
	}
	nonce, ciphertext := payload[:nonceSize], payload[nonceSize:]

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("aes.NewCipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("cipher.NewGCM: %w", err)
	}

	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("gcm open: %w", driven.ErrAuthenticationFailed)
	}
	return string(plain), nil
}

// decryptLegacy handles pre-v80 secrets, which differ per platform.
func (c *Cipher) decryptLegacy(secret []byte) (string, error) {
	if c.platform == model.PlatformWindows {
		if !c.caps.HasUnprotect() {
			return "", fmt.Errorf("no user-scoped unwrap facility: %w", driven.ErrPlatformUnwrapFailed)
		}
		plain, err := c.caps.Unprotect(secret)
		if err != nil {
			return "", fmt.Errorf("unprotect secret: %v: %w", err, driven.ErrPlatformUnwrapFailed)
		}
		return string(plain), nil
	}
	return c.decryptCBC(secret)
}

// decryptCBC handles legacy Linux secrets: AES-CBC with a fixed all-space IV.
// Only the padding length byte is validated, not the padding bytes
// themselves, to stay byte-compatible with stores written by the browser's
// original scheme (including ones carrying corrupt padding).
func (c *Cipher) decryptCBC(secret []byte) (string, error) {
	if c.key == nil {
		return "", driven.ErrKeyUnavailable
	}
	if len(secret)%aes.BlockSize != 0 {
		return "", fmt.Errorf("ciphertext length %d not block-aligned: %w", len(secret), driven.ErrInvalidPadding)
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("aes.NewCipher: %w", err)
	}

	iv := bytes.Repeat([]byte{' '}, aes.BlockSize)
	plain := make([]byte, len(secret))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, secret)

	padLen := int(plain[len(plain)-1])
	if padLen < 1 || padLen >= aes.BlockSize {
		return "", fmt.Errorf("padding length %d: %w", padLen, driven.ErrInvalidPadding)
	}
	plain = plain[:len(plain)-padLen]

	if !utf8.Valid(plain) {
		return "", driven.ErrInvalidUTF8
	}
	return string(plain), nil
}

// Encrypt seals plaintext into the modern format: v10 tag, fresh 12-byte
// nonce, AES-GCM ciphertext with the authentication tag appended. Output
// always round-trips through Decrypt, and every write is normalized to the
// modern generation no matter which generation it was read in.
func (c *Cipher) Encrypt(plaintext string) ([]byte, error) {
	if c.key == nil {
		return nil, driven.ErrNoKey
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, fmt.Errorf("aes.NewCipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cipher.NewGCM: %w", err)
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("rand nonce: %w", err)
	}

	out := make([]byte, 0, len(modernPrefix)+nonceSize+len(plaintext)+gcm.Overhead())
	out = append(out, modernPrefix...)
	out = append(out, nonce...)
	return gcm.Seal(out, nonce, []byte(plaintext), nil), nil
}
