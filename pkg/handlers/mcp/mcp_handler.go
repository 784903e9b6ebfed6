package mcp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/NeuralTrust/KidBot/pkg/app/bridge"
	"github.com/NeuralTrust/KidBot/pkg/common"
	"github.com/NeuralTrust/KidBot/pkg/widget"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

const (
	ServerName    = "kidbot-mcp"
	ServerVersion = "0.1.0"
)

// NewServer builds the MCP server exposing the bridge tools and the widget
// resource.
func NewServer(b *bridge.Bridge, w *widget.Widget) (*mcpserver.MCPServer, error) {
	s := mcpserver.NewMCPServer(
		ServerName,
		ServerVersion,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithResourceCapabilities(false, true),
		mcpserver.WithRecovery(),
	)
	if err := b.RegisterTools(s); err != nil {
		return nil, fmt.Errorf("mcp server: %w", err)
	}
	if err := bridge.RegisterWidget(s, w); err != nil {
		return nil, fmt.Errorf("mcp server: %w", err)
	}
	return s, nil
}

// NewHandler wraps s in a stateless streamable HTTP transport. The bridge
// router copies the request's correlation id into a header, which is put back
// on the tool handler context here.
func NewHandler(s *mcpserver.MCPServer, logger *logrus.Logger) http.Handler {
	return mcpserver.NewStreamableHTTPServer(s,
		mcpserver.WithStateLess(true),
		mcpserver.WithHTTPContextFunc(func(ctx context.Context, r *http.Request) context.Context {
			id := r.Header.Get(common.CorrelationIDHeader)
			if id == "" {
				return ctx
			}
			logger.WithField("correlation_id", id).Debug("mcp request")
			return common.WithCorrelationID(ctx, id)
		}),
	)
}
