package server_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/KidBot/pkg/common"
	"github.com/NeuralTrust/KidBot/pkg/config"
	handlers "github.com/NeuralTrust/KidBot/pkg/handlers/http"
	"github.com/NeuralTrust/KidBot/pkg/middleware"
	"github.com/NeuralTrust/KidBot/pkg/server"
	"github.com/NeuralTrust/KidBot/pkg/server/router"
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

func TestErrorHandler_InternalErrorHidesDetail(t *testing.T) {
	base := server.NewBaseServer(common.AgentServerName, &config.Config{}, quietLogger())
	base.Router.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("dial tcp 10.0.0.5:5432: password rejected")
	})

	resp, err := base.Router.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "10.0.0.5")
	assert.NotContains(t, string(raw), "password")

	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "Internal Error", body["error"])
	assert.Equal(t, server.InternalErrorMessage, body["message"])
	assert.NotEmpty(t, body["correlationId"])
}

func TestErrorHandler_FiberErrorKeepsStatus(t *testing.T) {
	base := server.NewBaseServer(common.AgentServerName, &config.Config{}, quietLogger())
	base.Router.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	resp, err := base.Router.Test(httptest.NewRequest(http.MethodGet, "/teapot", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "short and stout", body["error"])
}

func TestNewBridgeServer_RouteErrorIsReturned(t *testing.T) {
	cfg := &config.Config{}
	logger := quietLogger()
	broken := router.NewBridgeRouter(&middleware.Transport{}, handlers.HandlerTransport{}, nil, cfg, logger)

	srv, err := server.NewBridgeServer(server.BridgeServerDI{
		Config:  cfg,
		Logger:  logger,
		Routers: []router.ServerRouter{broken},
	})
	assert.Nil(t, srv)
	require.Error(t, err)
	assert.ErrorIs(t, err, router.ErrInvalidHandlerTransport)
}

func TestNewAgentServer_RouteErrorIsReturned(t *testing.T) {
	cfg := &config.Config{}
	logger := quietLogger()
	broken := router.NewAgentRouter(&middleware.Transport{}, handlers.HandlerTransport{}, cfg)

	srv, err := server.NewAgentServer(server.AgentServerDI{
		Config:  cfg,
		Logger:  logger,
		Routers: []router.ServerRouter{broken},
	})
	assert.Nil(t, srv)
	assert.ErrorIs(t, err, router.ErrInvalidHandlerTransport)
}
