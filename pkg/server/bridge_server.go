package server

import (
	"github.com/NeuralTrust/KidBot/pkg/common"
	"github.com/NeuralTrust/KidBot/pkg/config"
	"github.com/NeuralTrust/KidBot/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	BridgeServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	BridgeServer struct {
		*BaseServer
	}
)

// NewBridgeServer builds the MCP tool bridge: the /mcp endpoint, widget and
// fixture static files, and diagnostics.
func NewBridgeServer(di BridgeServerDI) (*BridgeServer, error) {
	s := &BridgeServer{
		BaseServer: NewBaseServer(common.MCPServerName, di.Config, di.Logger),
	}
	if err := s.WithRouters(di.Routers...); err != nil {
		return nil, err
	}
	s.setupMetricsEndpoint()
	return s, nil
}

func (s *BridgeServer) Run() error {
	return s.listen(s.Config.Server.MCPPort)
}
