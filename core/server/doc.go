// Package server holds the HTTP server configuration and its listen/serve lifecycle.
//
// # Configuration
//
// The Config struct defines the bind host and port, the served root, where files are
// read from (local directory or object storage bucket), the index document, whether a
// browser is opened on startup and the extension to MIME type overrides.
//
// # Lifecycle
//
// A Server moves through Created, Listening, Interrupted and Stopped:
//
//	srv := server.New(cfg.Server, app, logg)
//	if err := srv.Listen(); err != nil { // fails fast, wraps ErrAddrInUse
//	    return err
//	}
//	return srv.Serve(ctx) // blocks until ctx is cancelled
//
// Run combines both and opens the browser in between.
package server
