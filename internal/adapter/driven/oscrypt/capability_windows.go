//go:build windows

package oscrypt

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// DetectCapabilities probes the crypto facilities available to this process.
func DetectCapabilities() Capabilities {
	return Capabilities{Unprotect: dpapiUnprotect}
}

// dpapiUnprotect unwraps a CryptProtectData blob for the current user. The
// caller never sees the raw DPAPI key; the OS performs the decryption.
func dpapiUnprotect(blob []byte) ([]byte, error) {
	in := windows.DataBlob{Size: uint32(len(blob))}
	if len(blob) > 0 {
		in.Data = &blob[0]
	}

	var out windows.DataBlob
	if err := windows.CryptUnprotectData(&in, nil, nil, 0, nil, 0, &out); err != nil {
		return nil, err
	}
	defer windows.LocalFree(windows.Handle(unsafe.Pointer(out.Data)))

	plain := make([]byte, out.Size)
	copy(plain, unsafe.Slice(out.Data, out.Size))
	return plain, nil
}
