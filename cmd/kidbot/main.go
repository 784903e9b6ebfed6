package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/NeuralTrust/KidBot/pkg/common"
	"github.com/NeuralTrust/KidBot/pkg/config"
	"github.com/NeuralTrust/KidBot/pkg/dependency_container"
	infraLogger "github.com/NeuralTrust/KidBot/pkg/infra/logger"
	"github.com/NeuralTrust/KidBot/pkg/server"
	"github.com/NeuralTrust/KidBot/pkg/server/router"
	"github.com/NeuralTrust/KidBot/pkg/version"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	serverTypeAgent = "agent"
	serverTypeMCP   = "mcp"
	serverTypeAll   = "all"
)

func main() {
	serverType := getServerType()
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, closeLogs, err := infraLogger.NewLogger(serverType, cfg.Log)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := closeLogs(); err != nil {
			log.Printf("failed to flush logs: %v", err)
		}
	}()

	logger.WithFields(logrus.Fields{
		"version":  version.Version,
		"server":   serverType,
		"stub":     cfg.UseStub(),
		"fallback": cfg.FallbackForced(),
	}).Info("starting KidBot")

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: logger,
	})
	if err != nil {
		logger.Fatalf("failed to build dependencies: %v", err)
	}

	servers, err := initializeServers(serverType, cfg, logger, container)
	if err != nil {
		logger.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, servers); err != nil {
		logger.WithError(err).Error("server stopped with error")
		os.Exit(1)
	}
	logger.Info("server gracefully stopped")
}

// run starts every server and shuts them all down when ctx is cancelled or
// any of them fails.
func run(ctx context.Context, logger *logrus.Logger, servers []server.Server) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		g.Go(srv.Run)
	}
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down servers...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), common.ShutdownTimeout)
		defer cancel()
		var errs []error
		for _, srv := range servers {
			errs = append(errs, srv.Shutdown(shutdownCtx))
		}
		errs = append(errs, server.ShutdownMetrics(shutdownCtx))
		return errors.Join(errs...)
	})
	return g.Wait()
}

func getServerType() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return serverTypeAll
}

func initializeServers(
	serverType string,
	cfg *config.Config,
	logger *logrus.Logger,
	c *dependency_container.Container,
) ([]server.Server, error) {
	var wantAgent, wantBridge bool
	switch serverType {
	case serverTypeAgent:
		wantAgent = true
	case serverTypeMCP:
		wantBridge = true
	case serverTypeAll:
		wantAgent, wantBridge = true, true
	default:
		return nil, fmt.Errorf("unknown server type %q: want %s, %s or %s",
			serverType, serverTypeAgent, serverTypeMCP, serverTypeAll)
	}

	var servers []server.Server
	if wantAgent {
		agent, err := server.NewAgentServer(server.AgentServerDI{
			Config:  cfg,
			Logger:  logger,
			Routers: []router.ServerRouter{c.AgentRouter},
		})
		if err != nil {
			return nil, err
		}
		servers = append(servers, agent)
	}
	if wantBridge {
		bridge, err := server.NewBridgeServer(server.BridgeServerDI{
			Config:  cfg,
			Logger:  logger,
			Routers: []router.ServerRouter{c.BridgeRouter},
		})
		if err != nil {
			return nil, err
		}
		servers = append(servers, bridge)
	}
	return servers, nil
}
