package router

import (
	"fmt"

	_ "github.com/NeuralTrust/KidBot/docs"
	"github.com/NeuralTrust/KidBot/pkg/config"
	handlers "github.com/NeuralTrust/KidBot/pkg/handlers/http"
	"github.com/NeuralTrust/KidBot/pkg/infra/agentclient"
	"github.com/NeuralTrust/KidBot/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

const (
	HealthPath  = "/health"
	VersionPath = "/version"
	DocsPath    = "/docs/*"
)

type agentRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    handlers.HandlerTransport
	cfg                 *config.Config
}

func NewAgentRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport handlers.HandlerTransport,
	cfg *config.Config,
) ServerRouter {
	return &agentRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
		cfg:                 cfg,
	}
}

func (r *agentRouter) BuildRoutes(router *fiber.App) error {
	h := r.handlerTransport
	content := map[string]handlers.Handler{
		agentclient.RouteVoice:    h.VoiceHandler,
		agentclient.RouteStory:    h.StoryPanelsHandler,
		agentclient.RouteColoring: h.ColoringOutlineHandler,
		agentclient.RouteScience:  h.ScienceSimHandler,
	}
	for route, handler := range content {
		if handler == nil {
			return fmt.Errorf("%w: no handler for %s", ErrInvalidHandlerTransport, route)
		}
	}

	mw := r.middlewareTransport
	router.Use(
		cors.New(),
		mw.CorrelationMiddleware.Middleware(),
		mw.PanicMiddleware.Middleware(),
		mw.MetricsMiddleware.Middleware(),
	)

	if h.HealthHandler != nil {
		router.Get(HealthPath, h.HealthHandler.Handle)
	}
	if h.GetVersionHandler != nil {
		router.Get(VersionPath, h.GetVersionHandler.Handle)
	}

	router.Get(DocsPath, swagger.New(swagger.Config{
		Title: "KidBot Agent API",
	}))

	auth := mw.AuthMiddleware.Middleware()
	for route, handler := range content {
		router.Post(route, auth, handler.Handle)
	}
	return nil
}
