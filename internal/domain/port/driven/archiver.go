package driven

// Archiver packs and unpacks the bundles braveport moves between machines.
type Archiver interface {
	// Create writes every file under dir into an archive at path.
	Create(path, dir string) error

	// Extract unpacks the archive at path into dir.
	Extract(path, dir string) error
}
