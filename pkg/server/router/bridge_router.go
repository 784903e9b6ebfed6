package router

import (
	"net/http"

	"github.com/NeuralTrust/KidBot/pkg/common"
	"github.com/NeuralTrust/KidBot/pkg/config"
	handlers "github.com/NeuralTrust/KidBot/pkg/handlers/http"
	"github.com/NeuralTrust/KidBot/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

const (
	HealthzPath  = "/healthz"
	DiagPath     = "/diag"
	MCPPath      = "/mcp"
	WidgetPath   = "/widget"
	FixturesPath = "/fixtures"
	PublicPath   = "/public"
)

type bridgeRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    handlers.HandlerTransport
	mcpHandler          http.Handler
	cfg                 *config.Config
	logger              *logrus.Logger
}

func NewBridgeRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport handlers.HandlerTransport,
	mcpHandler http.Handler,
	cfg *config.Config,
	logger *logrus.Logger,
) ServerRouter {
	return &bridgeRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
		mcpHandler:          mcpHandler,
		cfg:                 cfg,
		logger:              logger,
	}
}

func (r *bridgeRouter) BuildRoutes(router *fiber.App) error {
	h := r.handlerTransport
	if h.HealthzHandler == nil || h.DiagHandler == nil || r.mcpHandler == nil {
		return ErrInvalidHandlerTransport
	}

	mw := r.middlewareTransport
	router.Use(
		cors.New(),
		mw.CorrelationMiddleware.Middleware(),
		mw.PanicMiddleware.Middleware(),
		mw.MetricsMiddleware.Middleware(),
	)

	router.Get(HealthzPath, h.HealthzHandler.Handle)
	router.Get(DiagPath, h.DiagHandler.Handle)
	router.All(MCPPath, forwardCorrelationID, adaptor.HTTPHandler(r.mcpHandler))

	r.static(router, WidgetPath, r.cfg.Paths.WidgetDist)
	r.static(router, FixturesPath, r.cfg.Paths.Fixtures)
	r.static(router, PublicPath, r.cfg.Paths.Public)
	return nil
}

// static mounts dir under prefix when it exists on disk.
func (r *bridgeRouter) static(router *fiber.App, prefix, dir string) {
	if !dirExists(dir) {
		r.logger.WithFields(logrus.Fields{
			"prefix": prefix,
			"dir":    dir,
		}).Debug("static directory missing, not mounted")
		return
	}
	router.Static(prefix, dir)
}

// forwardCorrelationID copies the request's correlation id into a request
// header so it survives the conversion to net/http.
func forwardCorrelationID(c *fiber.Ctx) error {
	c.Request().Header.Set(common.CorrelationIDHeader, middleware.CorrelationID(c))
	return c.Next()
}
