// Package nvimgo is a safe Go layer over the editor's C API. Values cross
// the boundary as tagged Objects and owned String/Array/Dictionary
// containers; every fallible call goes through an error record that is
// converted into a regular Go error on return.
//
// By default the package talks to an in-process mock host, which is what
// the tests use. Production code attaches a real host first, either by
// resolving the embedded C symbols (AttachEmbedded, when loaded as a
// plugin) or by dialing the host's msgpack-RPC socket (Dial).
package nvimgo

import (
	"github.com/rs/zerolog"

	"github.com/nvimgo/nvimgo/internal/api"
)

// Conn is an open msgpack-RPC connection to a remote host.
type Conn struct {
	host *api.RemoteHost
}

// Dial connects to a host over msgpack-RPC and routes all package calls
// through it. Network is "unix" for a socket path or "tcp" for host:port.
func Dial(network, addr string) (*Conn, error) {
	host, err := api.Dial(network, addr)
	if err != nil {
		return nil, err
	}
	api.SetHost(host)
	return &Conn{host: host}, nil
}

// Close tears down the connection.
func (c *Conn) Close() error {
	return c.host.Close()
}

// SetLogger installs a logger for boundary call tracing. Tracing is
// disabled by default.
func SetLogger(l zerolog.Logger) {
	api.SetLogger(l)
}
