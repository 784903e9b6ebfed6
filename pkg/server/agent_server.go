package server

import (
	"github.com/NeuralTrust/KidBot/pkg/common"
	"github.com/NeuralTrust/KidBot/pkg/config"
	"github.com/NeuralTrust/KidBot/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	AgentServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	AgentServer struct {
		*BaseServer
	}
)

// NewAgentServer builds the content-generation HTTP API.
func NewAgentServer(di AgentServerDI) (*AgentServer, error) {
	s := &AgentServer{
		BaseServer: NewBaseServer(common.AgentServerName, di.Config, di.Logger),
	}
	if err := s.WithRouters(di.Routers...); err != nil {
		return nil, err
	}
	s.setupMetricsEndpoint()
	return s, nil
}

func (s *AgentServer) Run() error {
	return s.listen(s.Config.Server.AgentPort)
}
