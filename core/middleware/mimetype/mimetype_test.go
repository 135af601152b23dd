package mimetype_test

import (
	"net/http/httptest"
	"testing"

	"devserve/core/middleware/mimetype"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		o, err := mimetype.Parse(".js=application/javascript")
		require.NoError(t, err)
		assert.Equal(t, mimetype.Overrides{".js": "application/javascript"}, o)
	})

	t.Run("NormalizesExtensions", func(t *testing.T) {
		o, err := mimetype.Parse(" JS = application/javascript , .wasm=application/wasm,")
		require.NoError(t, err)
		assert.Equal(t, mimetype.Overrides{
			".js":   "application/javascript",
			".wasm": "application/wasm",
		}, o)
		assert.ElementsMatch(t, []string{".js", ".wasm"}, o.Extensions())
	})

	t.Run("Empty", func(t *testing.T) {
		o, err := mimetype.Parse("")
		require.NoError(t, err)
		assert.Empty(t, o)
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, in := range []string{".js", "=text/plain", ".js=", ".js=javascript"} {
			_, err := mimetype.Parse(in)
			assert.Error(t, err, in)
		}
	})
}

func TestOverrides_Lookup(t *testing.T) {
	o := mimetype.Overrides{".js": "application/javascript"}

	typ, ok := o.Lookup("/static/app.js")
	assert.True(t, ok)
	assert.Equal(t, "application/javascript", typ)

	typ, ok = o.Lookup("/static/APP.JS")
	assert.True(t, ok)
	assert.Equal(t, "application/javascript", typ)

	_, ok = o.Lookup("/static/app.css")
	assert.False(t, ok)

	_, ok = o.Lookup("/static/")
	assert.False(t, ok)
}

func TestNew(t *testing.T) {
	app := fiber.New()
	app.Use(mimetype.New(mimetype.Config{
		Overrides: mimetype.Overrides{".js": "application/javascript"},
	}))
	app.Get("/app.js", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, "text/javascript; charset=utf-8")
		return c.SendString("console.log(1)")
	})
	app.Get("/style.css", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, "text/css; charset=utf-8")
		return c.SendString("body{}")
	})
	app.Get("/gone.js", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusGone).SendString("gone")
	})

	t.Run("OverridesJS", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/app.js", nil))
		require.NoError(t, err)
		assert.Equal(t, "application/javascript", resp.Header.Get(fiber.HeaderContentType))
	})

	t.Run("OverridesHead", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("HEAD", "/app.js", nil))
		require.NoError(t, err)
		assert.Equal(t, "application/javascript", resp.Header.Get(fiber.HeaderContentType))
	})

	t.Run("LeavesOtherTypes", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/style.css", nil))
		require.NoError(t, err)
		assert.Equal(t, "text/css; charset=utf-8", resp.Header.Get(fiber.HeaderContentType))
	})

	t.Run("SkipsErrorResponses", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/gone.js", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusGone, resp.StatusCode)
		assert.NotEqual(t, "application/javascript", resp.Header.Get(fiber.HeaderContentType))
	})
}

func TestNew_Next(t *testing.T) {
	app := fiber.New()
	app.Use(mimetype.New(mimetype.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/folder.js"
		},
		Overrides: mimetype.Overrides{".js": "application/javascript"},
	}))
	app.Get("/*", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, "text/html; charset=utf-8")
		return c.SendString("<a>listing</a>")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/folder.js", nil))
	require.NoError(t, err)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get(fiber.HeaderContentType))

	resp, err = app.Test(httptest.NewRequest("GET", "/file.js", nil))
	require.NoError(t, err)
	assert.Equal(t, "application/javascript", resp.Header.Get(fiber.HeaderContentType))
}
