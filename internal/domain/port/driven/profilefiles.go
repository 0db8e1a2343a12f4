package driven

// ProfileFiles is the driven port for store files moved between machines
// without transcoding (History, Favicons, ...).
type ProfileFiles interface {
	// Install places the file at src as the named profile file, creating a
	// timestamped backup of any existing copy first.
	Install(src, name string) error
}
