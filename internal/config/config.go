// Package config loads braveport configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Profile file names as the browser lays them out on disk.
const (
	LoginDataFile  = "Login Data"
	HistoryFile    = "History"
	BookmarksFile  = "Bookmarks"
	LocalStateFile = "Local State"
)

// Config holds the resolved profile locations for one run.
type Config struct {
	// ProfileDir is the browser profile directory (the "Default" profile).
	ProfileDir string
	// LocalStatePath is the Local State file holding the wrapped master key.
	// It lives in the User Data directory, one level above the profile.
	LocalStatePath string
}

// Load resolves configuration from environment variables, falling back to
// the browser's default locations for the current OS.
// BRAVEPORT_PROFILE_DIR overrides the profile directory and
// BRAVEPORT_LOCAL_STATE the Local State path.
func Load() (*Config, error) {
	profileDir := os.Getenv("BRAVEPORT_PROFILE_DIR")
	if profileDir == "" {
		d, err := defaultProfileDir()
		if err != nil {
			return nil, err
		}
		profileDir = d
	}

	localState := os.Getenv("BRAVEPORT_LOCAL_STATE")
	if localState == "" {
		localState = filepath.Join(filepath.Dir(profileDir), LocalStateFile)
	}

	return &Config{ProfileDir: profileDir, LocalStatePath: localState}, nil
}

func defaultProfileDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		base := os.Getenv("LOCALAPPDATA")
		if base == "" {
			return "", fmt.Errorf("LOCALAPPDATA is not set")
		}
		return filepath.Join(base, "BraveSoftware", "Brave-Browser", "User Data", "Default"), nil
	case "linux":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return filepath.Join(home, ".config", "BraveSoftware", "Brave-Browser", "Default"), nil
	default:
		return "", fmt.Errorf("no default profile location for %s; set BRAVEPORT_PROFILE_DIR", runtime.GOOS)
	}
}

// LoginDataPath returns the credential store path.
func (c *Config) LoginDataPath() string { return filepath.Join(c.ProfileDir, LoginDataFile) }

// HistoryPath returns the history store path.
func (c *Config) HistoryPath() string { return filepath.Join(c.ProfileDir, HistoryFile) }

// BookmarksPath returns the bookmark document path.
func (c *Config) BookmarksPath() string { return filepath.Join(c.ProfileDir, BookmarksFile) }
