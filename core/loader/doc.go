// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps features in registration order and mounts the enabled ones with
// LoadAll. Order matters: a feature that catches every path (such as static) must be
// registered last.
package loader
