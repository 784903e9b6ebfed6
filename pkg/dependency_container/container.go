package dependency_container

import (
	"fmt"
	"net/http"

	"github.com/NeuralTrust/KidBot/pkg/agents"
	"github.com/NeuralTrust/KidBot/pkg/app/bridge"
	appcontent "github.com/NeuralTrust/KidBot/pkg/app/content"
	"github.com/NeuralTrust/KidBot/pkg/app/stub"
	"github.com/NeuralTrust/KidBot/pkg/common"
	"github.com/NeuralTrust/KidBot/pkg/config"
	"github.com/NeuralTrust/KidBot/pkg/domain/content"
	"github.com/NeuralTrust/KidBot/pkg/fixtures"
	handlers "github.com/NeuralTrust/KidBot/pkg/handlers/http"
	mcphandler "github.com/NeuralTrust/KidBot/pkg/handlers/mcp"
	"github.com/NeuralTrust/KidBot/pkg/infra/agentclient"
	"github.com/NeuralTrust/KidBot/pkg/infra/httpx"
	"github.com/NeuralTrust/KidBot/pkg/middleware"
	"github.com/NeuralTrust/KidBot/pkg/moderation"
	"github.com/NeuralTrust/KidBot/pkg/server/router"
	"github.com/NeuralTrust/KidBot/pkg/widget"
	"github.com/sirupsen/logrus"
)

type Container struct {
	Moderator        moderation.Moderator
	Fixtures         *fixtures.Provider
	ContentService   *appcontent.Service
	AgentClient      *agentclient.Client
	Bridge           *bridge.Bridge
	Widget           *widget.Widget
	MCPHandler       http.Handler
	HandlerTransport handlers.HandlerTransport
	AgentMiddleware  *middleware.Transport
	BridgeMiddleware *middleware.Transport
	AgentRouter      router.ServerRouter
	BridgeRouter     router.ServerRouter
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	// AgentHTTPClient overrides the client the bridge uses to reach the agent
	// service. Nil selects the fasthttp-backed client.
	AgentHTTPClient httpx.Client
}

func NewContainer(di ContainerDI) (*Container, error) {
	if di.Cfg == nil || di.Logger == nil {
		return nil, fmt.Errorf("container: config and logger are required")
	}
	cfg, logger := di.Cfg, di.Logger

	moderator := moderation.Default()
	provider := fixtures.NewProvider(cfg.Paths.Fixtures, logger)

	// agent service
	generators := agents.New(logger, moderator)
	contentService := appcontent.NewService(
		cfg,
		generators,
		stub.NewBuilder(provider, content.SourceStub),
		moderator,
		logger,
	)

	// tool bridge
	agentClient := agentclient.New(agentclient.Config{
		BaseURL: cfg.Agent.URL,
		APIKey:  cfg.Auth.APIKey,
		Timeout: cfg.Agent.Timeout,
	}, di.AgentHTTPClient, logger)
	toolBridge := bridge.New(
		cfg,
		agentClient,
		stub.NewBuilder(provider, content.SourceFixture),
		moderator,
		logger,
	)
	w := widget.Resolve(cfg.Paths.WidgetDist, cfg.FallbackForced(), logger)
	mcpServer, err := mcphandler.NewServer(toolBridge, w)
	if err != nil {
		return nil, fmt.Errorf("container: %w", err)
	}
	mcpHandler := mcphandler.NewHandler(mcpServer, logger)

	handlerTransport := handlers.HandlerTransport{
		// Agent service
		VoiceHandler:           handlers.NewVoiceHandler(logger, contentService),
		StoryPanelsHandler:     handlers.NewStoryPanelsHandler(logger, contentService),
		ColoringOutlineHandler: handlers.NewColoringOutlineHandler(logger, contentService),
		ScienceSimHandler:      handlers.NewScienceSimHandler(logger, contentService),
		HealthHandler:          handlers.NewHealthHandler(cfg),
		GetVersionHandler:      handlers.NewGetVersionHandler(logger),
		// Tool bridge
		HealthzHandler: handlers.NewHealthzHandler(w),
		DiagHandler:    handlers.NewDiagHandler(cfg, w),
	}

	agentMiddleware := &middleware.Transport{
		CorrelationMiddleware: middleware.NewCorrelationMiddleware(),
		PanicMiddleware:       middleware.NewPanicRecoverMiddleware(logger),
		MetricsMiddleware:     middleware.NewMetricsMiddleware(common.AgentServerName),
		AuthMiddleware:        middleware.NewAuthMiddleware(logger, cfg),
	}
	bridgeMiddleware := &middleware.Transport{
		CorrelationMiddleware: middleware.NewCorrelationMiddleware(),
		PanicMiddleware:       middleware.NewPanicRecoverMiddleware(logger),
		MetricsMiddleware:     middleware.NewMetricsMiddleware(common.MCPServerName),
	}

	return &Container{
		Moderator:        moderator,
		Fixtures:         provider,
		ContentService:   contentService,
		AgentClient:      agentClient,
		Bridge:           toolBridge,
		Widget:           w,
		MCPHandler:       mcpHandler,
		HandlerTransport: handlerTransport,
		AgentMiddleware:  agentMiddleware,
		BridgeMiddleware: bridgeMiddleware,
		AgentRouter:      router.NewAgentRouter(agentMiddleware, handlerTransport, cfg),
		BridgeRouter:     router.NewBridgeRouter(bridgeMiddleware, handlerTransport, mcpHandler, cfg, logger),
	}, nil
}
