package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tracingApp() *fiber.App {
	app := fiber.New()
	app.Use(Tracing())
	app.Get("/x", func(c *fiber.Ctx) error {
		return c.SendString(GetTraceID(c))
	})
	return app
}

func TestTracing_GeneratesTraceID(t *testing.T) {
	app := tracingApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)

	header := resp.Header.Get("X-Trace-Id")
	_, err = uuid.Parse(header)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, header, string(body))
}

func TestTracing_KeepsCallerTraceID(t *testing.T) {
	app := tracingApp()

	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("X-Trace-Id", "frontend-42")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "frontend-42", resp.Header.Get("X-Trace-Id"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "frontend-42", string(body))
}
