package driven

import "errors"

// ErrUnsupportedPlatform is returned when no protection scheme exists for the
// requested operating system. braveport handles Windows and Linux profiles.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// ErrKeyUnavailable is returned when the platform master key cannot be
// obtained: the Local State file is missing or malformed, or the OS-level
// unwrap was rejected (different user or machine).
var ErrKeyUnavailable = errors.New("master key unavailable")

// KeyProvider obtains the OS-scoped master key protecting stored secrets.
// The key lives in memory only for the duration of a run; implementations
// never persist it. Repeated calls with the same inputs yield the same key.
type KeyProvider interface {
	MasterKey() ([]byte, error)
}
