package model

// Platform identifies an operating-system secret-protection scheme.
type Platform string

const (
	// PlatformWindows protects secrets with the user-scoped DPAPI facility.
	PlatformWindows Platform = "windows"
	// PlatformLinux uses the browser's "basic" mode: a fixed PBKDF2-derived key.
	PlatformLinux Platform = "linux"
)
