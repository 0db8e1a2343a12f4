//go:build !windows

package oscrypt

// DetectCapabilities probes the crypto facilities available to this process.
// There is no user-scoped unwrap facility outside Windows.
func DetectCapabilities() Capabilities {
	return Capabilities{}
}
