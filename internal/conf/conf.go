// Package conf holds the bootstrap configuration structures scanned from the
// YAML files under configs/.
package conf

import "time"

// Bootstrap is the root of the service configuration.
type Bootstrap struct {
	Server Server `json:"server" validate:"required"`
}

// Server groups transport-level settings.
type Server struct {
	HTTP HTTP `json:"http" validate:"required"`
}

// HTTP configures the inbound HTTP listener.
type HTTP struct {
	Network string `json:"network" validate:"omitempty,oneof=tcp tcp4 tcp6"`
	Addr    string `json:"addr" validate:"required,hostname_port"`
	Timeout string `json:"timeout" validate:"omitempty"`
}

// TimeoutDuration parses the configured request timeout. The second return
// value reports whether a usable timeout was configured.
func (h HTTP) TimeoutDuration() (time.Duration, bool) {
	if h.Timeout == "" {
		return 0, false
	}
	d, err := time.ParseDuration(h.Timeout)
	if err != nil || d <= 0 {
		return 0, false
	}
	return d, true
}
