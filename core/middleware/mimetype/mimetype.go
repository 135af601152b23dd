package mimetype

import (
	"fmt"
	"path"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

// Overrides maps a lower-case extension with its leading dot to a MIME type.
type Overrides map[string]string

// Parse reads a comma-separated list of ext=type pairs, e.g. ".js=application/javascript".
func Parse(s string) (Overrides, error) {
	entries := lo.Compact(lo.Map(strings.Split(s, ","), func(e string, _ int) string {
		return strings.TrimSpace(e)
	}))

	out := make(Overrides, len(entries))
	for _, entry := range entries {
		ext, typ, ok := strings.Cut(entry, "=")
		ext = strings.TrimSpace(ext)
		typ = strings.TrimSpace(typ)
		if !ok || ext == "" || typ == "" {
			return nil, fmt.Errorf("invalid mime override %q: want ext=type", entry)
		}
		if !strings.Contains(typ, "/") {
			return nil, fmt.Errorf("invalid mime type %q for %s", typ, ext)
		}
		out[normalize(ext)] = typ
	}
	return out, nil
}

// Lookup returns the forced type for the extension of p.
func (o Overrides) Lookup(p string) (string, bool) {
	ext := path.Ext(p)
	if ext == "" {
		return "", false
	}
	typ, ok := o[strings.ToLower(ext)]
	return typ, ok
}

// Extensions returns the overridden extensions.
func (o Overrides) Extensions() []string {
	return lo.Keys(o)
}

func normalize(ext string) string {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// Config defines the config for the middleware.
type Config struct {
	// Next defines a function to skip this middleware when returned true.
	Next func(c *fiber.Ctx) bool
	// Overrides is consulted before the built-in extension table.
	Overrides Overrides
}

// New returns a middleware that rewrites Content-Type for successful responses
// whose path extension has an override.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.Next != nil && cfg.Next(c) {
			return c.Next()
		}
		if err := c.Next(); err != nil {
			return err
		}
		if c.Response().StatusCode() >= fiber.StatusBadRequest {
			return nil
		}
		if typ, ok := cfg.Overrides.Lookup(c.Path()); ok {
			c.Set(fiber.HeaderContentType, typ)
		}
		return nil
	}
}
