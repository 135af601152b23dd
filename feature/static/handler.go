package static

import (
	"net/http"
	"path"

	"devserve/core/middleware/mimetype"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

// Handler serves files from an http.FileSystem.
type Handler struct {
	root      http.FileSystem
	index     string
	overrides mimetype.Overrides
}

// NewHandler creates a new static file handler.
func NewHandler(root http.FileSystem, index string, overrides mimetype.Overrides) *Handler {
	return &Handler{root: root, index: index, overrides: overrides}
}

// RegisterRoutes mounts the file handler on every path. GET and HEAD are served;
// directories without an index document get a generated listing.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Use(mimetype.New(mimetype.Config{
		Next:      h.isDir,
		Overrides: h.overrides,
	}))
	app.Use(filesystem.New(filesystem.Config{
		Root:   h.root,
		Index:  h.index,
		Browse: true,
	}))
}

// isDir reports whether the request resolves to a directory, so a folder named
// like "lib.js" keeps its listing's text/html type. Only paths with an override
// are looked up.
func (h *Handler) isDir(c *fiber.Ctx) bool {
	if _, ok := h.overrides.Lookup(c.Path()); !ok {
		return false
	}
	f, err := h.root.Open(path.Clean("/" + c.Path()))
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	return err == nil && info.IsDir()
}
