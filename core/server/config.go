package server

import (
	"fmt"
	"net"
	"strconv"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface to bind. Empty means all interfaces.
	Host string `mapstructure:"host" default:""`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8000"`
	// Root is the directory (or bucket prefix) served at "/".
	Root string `mapstructure:"root" default:"."`
	// Source selects where files are read from (local, bucket).
	Source string `mapstructure:"source" default:"local"`
	// Index is the document served in place of a directory listing when present.
	Index string `mapstructure:"index" default:"index.html"`
	// OpenBrowser launches the default browser at the root URL once listening.
	OpenBrowser bool `mapstructure:"open_browser" default:"true"`
	// MimeTypes forces a Content-Type per extension, e.g. ".js=application/javascript".
	MimeTypes string `mapstructure:"mime_types" default:".js=application/javascript"`
}

const (
	SourceLocal  = "local"
	SourceBucket = "bucket"
)

// IsValidSource checks if the configured source is valid.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceLocal, SourceBucket:
		return true
	default:
		return false
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", c.Port, err)
	}
	if port < 0 || port > 65535 {
		return fmt.Errorf("invalid port %d: out of range", port)
	}
	if !c.IsValidSource() {
		return fmt.Errorf("invalid source %q", c.Source)
	}
	return nil
}

// Addr returns the host:port pair to bind.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// URL returns the root URL announced to the user.
func (c Config) URL() string {
	return "http://localhost:" + c.Port
}
