package middleware_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NeuralTrust/KidBot/pkg/common"
	"github.com/NeuralTrust/KidBot/pkg/config"
	"github.com/NeuralTrust/KidBot/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newApp(cfg *config.Config, handler fiber.Handler) *fiber.App {
	logger := quietLogger()
	app := fiber.New()
	app.Use(middleware.NewCorrelationMiddleware().Middleware())
	app.Use(middleware.NewPanicRecoverMiddleware(logger).Middleware())
	app.Use(middleware.NewMetricsMiddleware("test").Middleware())
	app.Use(middleware.NewAuthMiddleware(logger, cfg).Middleware())
	app.Post("/voice", handler)
	return app
}

func okHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"correlationId": middleware.CorrelationID(c), "ok": true})
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestCorrelationMiddleware(t *testing.T) {
	app := newApp(&config.Config{}, okHandler)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/voice", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	header := resp.Header.Get(common.CorrelationIDHeader)
	assert.True(t, strings.HasPrefix(header, "kb_"), header)
	assert.Len(t, header, len("kb_")+36)
	assert.Equal(t, header, decodeBody(t, resp)["correlationId"])
}

func TestCorrelationMiddleware_UserContext(t *testing.T) {
	app := newApp(&config.Config{}, func(c *fiber.Ctx) error {
		return c.SendString(common.CorrelationID(c.UserContext()))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/voice", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, resp.Header.Get(common.CorrelationIDHeader), string(body))
}

func TestAuthMiddleware(t *testing.T) {
	secured := &config.Config{Auth: config.AuthConfig{APIKey: "secret"}}

	tests := []struct {
		name   string
		cfg    *config.Config
		header string
		want   int
	}{
		{name: "open without secret", cfg: &config.Config{}, want: fiber.StatusOK},
		{name: "open ignores header", cfg: &config.Config{}, header: "Bearer whatever", want: fiber.StatusOK},
		{name: "missing header", cfg: secured, want: fiber.StatusUnauthorized},
		{name: "wrong token", cfg: secured, header: "Bearer nope", want: fiber.StatusUnauthorized},
		{name: "wrong scheme", cfg: secured, header: "Basic secret", want: fiber.StatusUnauthorized},
		{name: "bare token", cfg: secured, header: "secret", want: fiber.StatusUnauthorized},
		{name: "correct token", cfg: secured, header: "Bearer secret", want: fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(tt.cfg, okHandler)
			req := httptest.NewRequest(http.MethodPost, "/voice", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)

			if tt.want == fiber.StatusUnauthorized {
				body := decodeBody(t, resp)
				assert.Equal(t, "Unauthorized", body["error"])
				assert.Equal(t, resp.Header.Get(common.CorrelationIDHeader), body["correlationId"])
			}
		})
	}
}

func TestPanicRecoverMiddleware(t *testing.T) {
	app := newApp(&config.Config{}, func(c *fiber.Ctx) error {
		panic("template exploded")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/voice", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Internal Error", body["error"])
	assert.True(t, strings.HasPrefix(body["correlationId"].(string), "kb_"))
	assert.NotContains(t, body, "message")
}
