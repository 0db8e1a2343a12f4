package oscrypt

import (
	"fmt"
	"runtime"

	"github.com/cwinters/braveport/internal/domain/model"
	"github.com/cwinters/braveport/internal/domain/port/driven"
)

// Capabilities is the set of platform crypto facilities negotiated once at
// startup and passed, immutable, to everything that needs them. Absence of a
// facility on a path that requires it is an error, never a silent no-op.
type Capabilities struct {
	// Unprotect is the OS's user-scoped unwrap facility (DPAPI on Windows).
	// Nil on platforms without one.
	Unprotect func(blob []byte) ([]byte, error)
}

// HasUnprotect reports whether a user-scoped unwrap facility is present.
func (c Capabilities) HasUnprotect() bool { return c.Unprotect != nil }

// CurrentPlatform maps runtime.GOOS onto a supported protection scheme.
func CurrentPlatform() (model.Platform, error) {
	switch runtime.GOOS {
	case "windows":
		return model.PlatformWindows, nil
	case "linux":
		return model.PlatformLinux, nil
	default:
		return "", fmt.Errorf("os %q: %w", runtime.GOOS, driven.ErrUnsupportedPlatform)
	}
}
