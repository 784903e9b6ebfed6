package bridge

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/KidBot/pkg/widget"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ResourceRegistrar is satisfied by *server.MCPServer.
type ResourceRegistrar interface {
	AddResource(resource mcp.Resource, handler server.ResourceHandlerFunc)
}

// RegisterWidget publishes the resolved widget HTML as the UI resource that
// every tool result points at through its output template.
func RegisterWidget(r ResourceRegistrar, w *widget.Widget) error {
	if r == nil {
		return fmt.Errorf("register widget: %w", ErrNilRegistrar)
	}
	if w == nil {
		return fmt.Errorf("register widget: widget is nil")
	}
	resource := mcp.NewResource(widget.ResourceURI, widget.ResourceName,
		mcp.WithResourceDescription(widget.Description),
		mcp.WithMIMEType(widget.MIMEType),
	)
	html := w.HTML
	r.AddResource(resource, func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      widget.ResourceURI,
				MIMEType: widget.MIMEType,
				Text:     html,
			},
		}, nil
	})
	return nil
}
