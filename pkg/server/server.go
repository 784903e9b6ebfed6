package server

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/NeuralTrust/KidBot/pkg/common"
	"github.com/NeuralTrust/KidBot/pkg/config"
	"github.com/NeuralTrust/KidBot/pkg/infra/prometheus"
	"github.com/NeuralTrust/KidBot/pkg/middleware"
	"github.com/NeuralTrust/KidBot/pkg/server/router"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Server interface defines the common behavior for all servers
type Server interface {
	Run() error
	Shutdown(ctx context.Context) error
}

const InternalErrorMessage = "unexpected error"

var (
	metricsOnce sync.Once
	metricsApp  *fiber.App
)

type BaseServer struct {
	Config *config.Config
	Logger *logrus.Logger
	Router *fiber.App
	name   string
}

func NewBaseServer(name string, cfg *config.Config, logger *logrus.Logger) *BaseServer {
	r := fiber.New(fiber.Config{
		AppName:               name,
		DisableStartupMessage: true,
		BodyLimit:             1 * 1024 * 1024,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           120 * time.Second,
		ErrorHandler:          errorHandler(logger),
	})

	r.Server().NoDefaultServerHeader = true

	return &BaseServer{
		Config: cfg,
		Logger: logger,
		Router: r,
		name:   name,
	}
}

// errorHandler turns any error escaping a handler into the JSON error body.
// fiber errors keep their status; everything else is a 500 whose body never
// carries the underlying error text.
func errorHandler(logger *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		id := middleware.CorrelationID(c)
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"error":         fiberErr.Message,
				"correlationId": id,
			})
		}
		logger.WithFields(logrus.Fields{
			"correlation_id": id,
			"path":           c.Path(),
		}).WithError(err).Error("request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":         "Internal Error",
			"message":       InternalErrorMessage,
			"correlationId": id,
		})
	}
}

func (s *BaseServer) WithRouters(routers ...router.ServerRouter) error {
	for _, r := range routers {
		if err := r.BuildRoutes(s.Router); err != nil {
			return fmt.Errorf("%s server: build routes: %w", s.name, err)
		}
	}
	return nil
}

func (s *BaseServer) listen(port int) error {
	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, port)
	s.Logger.WithFields(logrus.Fields{
		"server": s.name,
		"addr":   addr,
	}).Info("starting server")
	return s.Router.Listen(addr)
}

func (s *BaseServer) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, common.ShutdownTimeout)
		defer cancel()
	}
	s.Logger.WithField("server", s.name).Info("shutting down server")
	return s.Router.ShutdownWithContext(ctx)
}

// setupMetricsEndpoint starts the prometheus listener once per process, so
// the agent and bridge servers can share it when run together.
func (s *BaseServer) setupMetricsEndpoint() {
	if !s.Config.Metrics.Enabled {
		s.Logger.Info("prometheus metrics are disabled by configuration")
		return
	}
	metricsOnce.Do(func() {
		prometheus.Initialize(prometheus.MetricsConfig{EnableLatency: s.Config.Metrics.EnableLatency})

		metricsApp = fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})
		metricsApp.Use(recover.New())

		handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		metricsApp.Get("/metrics", func(c *fiber.Ctx) error {
			handler(c.Context())
			return nil
		})

		go func() {
			addr := fmt.Sprintf(":%d", s.Config.Metrics.Port)
			if err := metricsApp.Listen(addr); err != nil {
				if !strings.Contains(err.Error(), "address already in use") {
					s.Logger.WithError(err).Error("failed to start metrics server")
				}
			}
		}()
	})
}

// ShutdownMetrics stops the shared metrics listener if it was started.
func ShutdownMetrics(ctx context.Context) error {
	if metricsApp == nil {
		return nil
	}
	return metricsApp.ShutdownWithContext(ctx)
}
