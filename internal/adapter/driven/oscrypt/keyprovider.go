package oscrypt

import (
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/crypto/pbkdf2"

	"github.com/cwinters/braveport/internal/domain/model"
	"github.com/cwinters/braveport/internal/domain/port/driven"
)

// Compile-time interface satisfaction checks.
var (
	_ driven.KeyProvider = (*DerivedKeyProvider)(nil)
	_ driven.KeyProvider = (*LocalStateKeyProvider)(nil)
)

// NewKeyProvider selects the key provider for the given platform.
// localStatePath is only consulted on Windows.
func NewKeyProvider(platform model.Platform, localStatePath string, caps Capabilities) (driven.KeyProvider, error) {
	switch platform {
	case model.PlatformWindows:
		return NewLocalStateKeyProvider(localStatePath, caps), nil
	case model.PlatformLinux:
		return NewDerivedKeyProvider(), nil
	default:
		return nil, fmt.Errorf("key provider for %q: %w", platform, driven.ErrUnsupportedPlatform)
	}
}

// The browser's keyring-less "basic" mode on Linux derives its key from
// fixed, publicly known inputs. There is no per-user entropy; the scheme is
// deliberately weak and exists only to avoid plaintext at rest.
const (
	derivePassword   = "peanuts"
	deriveSalt       = "saltysalt"
	deriveIterations = 1
	deriveKeyLen     = 16
)

// DerivedKeyProvider implements the Linux scheme: a single-iteration
// PBKDF2-HMAC-SHA1 derivation, deterministic across calls and machines.
type DerivedKeyProvider struct{}

// NewDerivedKeyProvider creates a DerivedKeyProvider.
func NewDerivedKeyProvider() *DerivedKeyProvider { return &DerivedKeyProvider{} }

// MasterKey derives the 16-byte AES key protecting stored secrets.
func (p *DerivedKeyProvider) MasterKey() ([]byte, error) {
	return pbkdf2.Key([]byte(derivePassword), []byte(deriveSalt), deriveIterations, deriveKeyLen, sha1.New), nil
}

// keyBlobPrefix tags the wrapped key blob inside Local State.
const keyBlobPrefix = "DPAPI"

// localState mirrors the slice of the browser's Local State file that holds
// the wrapped master key.
type localState struct {
	OSCrypt struct {
		EncryptedKey string `json:"encrypted_key"`
	} `json:"os_crypt"`
}

// LocalStateKeyProvider implements the Windows scheme: the master key lives
// in the Local State file, base64-encoded, prefix-tagged, and DPAPI-wrapped
// for the current user.
type LocalStateKeyProvider struct {
	path string
	caps Capabilities
}

// NewLocalStateKeyProvider creates a LocalStateKeyProvider reading the Local
// State document at path and unwrapping through the given capabilities.
func NewLocalStateKeyProvider(path string, caps Capabilities) *LocalStateKeyProvider {
	return &LocalStateKeyProvider{path: path, caps: caps}
}

// MasterKey reads Local State, validates and strips the 5-byte algorithm
// prefix, and unwraps the key through the user-scoped facility. Every
// failure mode wraps ErrKeyUnavailable.
func (p *LocalStateKeyProvider) MasterKey() ([]byte, error) {
	raw, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("read local state %s: %v: %w", p.path, err, driven.ErrKeyUnavailable)
	}

	var state localState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("parse local state: %v: %w", err, driven.ErrKeyUnavailable)
	}

	wrapped, err := base64.StdEncoding.DecodeString(state.OSCrypt.EncryptedKey)
	if err != nil {
		return nil, fmt.Errorf("decode encrypted_key: %v: %w", err, driven.ErrKeyUnavailable)
	}
	if len(wrapped) <= len(keyBlobPrefix) || string(wrapped[:len(keyBlobPrefix)]) != keyBlobPrefix {
		return nil, fmt.Errorf("encrypted_key missing %s prefix: %w", keyBlobPrefix, driven.ErrKeyUnavailable)
	}

	if !p.caps.HasUnprotect() {
		return nil, fmt.Errorf("no user-scoped unwrap facility: %w", driven.ErrKeyUnavailable)
	}
	key, err := p.caps.Unprotect(wrapped[len(keyBlobPrefix):])
	if err != nil {
		return nil, fmt.Errorf("unwrap master key: %v: %w", err, driven.ErrKeyUnavailable)
	}
	return key, nil
}
