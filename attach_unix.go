//go:build darwin || linux

package nvimgo

import (
	"github.com/nvimgo/nvimgo/internal/api"
	"github.com/nvimgo/nvimgo/internal/ffi"
)

// AttachEmbedded resolves the host's C symbols in the current process and
// routes all package calls through them. It only succeeds when the binary
// was loaded as a plugin into a running host.
func AttachEmbedded() error {
	host, err := ffi.NewEmbeddedHost()
	if err != nil {
		return err
	}
	api.SetHost(host)
	return nil
}

// AttachLibrary is AttachEmbedded against a dlopen'd host library, mainly
// for exercising the binding layer against a stub.
func AttachLibrary(path string) error {
	host, err := ffi.NewEmbeddedHostFrom(path)
	if err != nil {
		return err
	}
	api.SetHost(host)
	return nil
}
