package bridge

import (
	"context"
	"fmt"
	"math"

	domain "github.com/NeuralTrust/KidBot/pkg/domain/content"
	"github.com/NeuralTrust/KidBot/pkg/handlers/http/request"
	"github.com/NeuralTrust/KidBot/pkg/infra/agentclient"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

const (
	ToolVoiceChat       = "voice_chat"
	ToolStoryPanels     = "story_panels"
	ToolColoringOutline = "coloring_outline"
	ToolScienceSim      = "science_sim"
)

// ToolRegistrar is satisfied by *server.MCPServer.
type ToolRegistrar interface {
	AddTool(tool mcp.Tool, handler server.ToolHandlerFunc)
}

// RegisterTools adds the four content tools to r.
func (b *Bridge) RegisterTools(r ToolRegistrar) error {
	if r == nil {
		return fmt.Errorf("register tools: %w", ErrNilRegistrar)
	}
	r.AddTool(voiceTool(), b.HandleVoice)
	r.AddTool(storyTool(), b.HandleStory)
	r.AddTool(coloringTool(), b.HandleColoring)
	r.AddTool(scienceTool(), b.HandleScience)
	return nil
}

func enumValues[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func ageBandOption() mcp.ToolOption {
	return mcp.WithString("ageBand",
		mcp.Description("Reader age band. Defaults to 7-9."),
		mcp.Enum(enumValues(domain.AgeBands)...),
	)
}

func voiceTool() mcp.Tool {
	return mcp.NewTool(ToolVoiceChat,
		mcp.WithDescription("Kid-friendly persona voice replies"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("What the child said or asked"),
			mcp.MinLength(request.MinVoiceText),
			mcp.MaxLength(request.MaxVoiceText),
		),
		mcp.WithString("persona",
			mcp.Required(),
			mcp.Description("Voice persona"),
			mcp.Enum(enumValues(domain.Personas)...),
		),
		ageBandOption(),
	)
}

func storyTool() mcp.Tool {
	return mcp.NewTool(ToolStoryPanels,
		mcp.WithDescription("Plan bright story panels for comics"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
		mcp.WithString("theme",
			mcp.Required(),
			mcp.Description("Story theme"),
			mcp.MinLength(request.MinSubject),
			mcp.MaxLength(request.MaxSubject),
		),
		mcp.WithNumber("panels",
			mcp.Required(),
			mcp.Description("Number of panels"),
			mcp.Min(request.MinPanels),
			mcp.Max(request.MaxPanels),
		),
		ageBandOption(),
	)
}

func coloringTool() mcp.Tool {
	return mcp.NewTool(ToolColoringOutline,
		mcp.WithDescription("Generate a coloring page outline"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
		mcp.WithString("scene",
			mcp.Required(),
			mcp.Description("Scene to outline"),
			mcp.MinLength(request.MinSubject),
			mcp.MaxLength(request.MaxSubject),
		),
		mcp.WithString("style",
			mcp.Description("Optional art style"),
			mcp.Enum(enumValues(domain.Styles)...),
		),
	)
}

func scienceTool() mcp.Tool {
	return mcp.NewTool(ToolScienceSim,
		mcp.WithDescription("Kid-safe science experiment cards"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
		mcp.WithString("topic",
			mcp.Required(),
			mcp.Description("Science topic"),
			mcp.MinLength(request.MinSubject),
			mcp.MaxLength(request.MaxSubject),
		),
		ageBandOption(),
	)
}

// decodeArgs maps the raw tool arguments onto v and validates them with the
// same rules the agent service applies to HTTP bodies.
func decodeArgs(args map[string]any, v request.Validatable) error {
	if n, ok := args["panels"].(float64); ok && n != math.Trunc(n) {
		return &request.ValidationError{Details: []request.FieldError{
			{Field: "panels", Message: "must be an integer"},
		}}
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "mapstructure",
		Result:  v,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(args); err != nil {
		return &request.ValidationError{Details: []request.FieldError{
			{Field: "arguments", Message: err.Error()},
		}}
	}
	return v.Validate()
}

func (b *Bridge) HandleVoice(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in request.VoiceRequest
	if err := decodeArgs(req.GetArguments(), &in); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	payload := in.Domain()
	return handle(ctx, b, call[domain.VoiceResponse]{
		tool:        ToolVoiceChat,
		contentType: domain.TypeVoice,
		route:       agentclient.RouteVoice,
		userFields:  []string{payload.Text},
		fixture:     func() *domain.VoiceResponse { return b.fixtures.Voice(payload) },
		remote: func(ctx context.Context) (*domain.VoiceResponse, error) {
			return b.agent.Voice(ctx, payload)
		},
		verdict: func(r *domain.VoiceResponse) *domain.Verdict { return &r.Verdict },
		transcript: func(r *domain.VoiceResponse) string {
			return fmt.Sprintf("%s reply ready! %s", payload.Persona, r.Text)
		},
	}), nil
}

func (b *Bridge) HandleStory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in request.StoryRequest
	if err := decodeArgs(req.GetArguments(), &in); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	payload := in.Domain()
	return handle(ctx, b, call[domain.StoryResponse]{
		tool:        ToolStoryPanels,
		contentType: domain.TypeStory,
		route:       agentclient.RouteStory,
		userFields:  []string{payload.Theme},
		fixture:     func() *domain.StoryResponse { return b.fixtures.Story(payload) },
		remote: func(ctx context.Context) (*domain.StoryResponse, error) {
			return b.agent.Story(ctx, payload)
		},
		verdict: func(r *domain.StoryResponse) *domain.Verdict { return &r.Verdict },
		transcript: func(*domain.StoryResponse) string {
			return fmt.Sprintf("Planned %d panels about %s.", payload.Panels, payload.Theme)
		},
	}), nil
}

func (b *Bridge) HandleColoring(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in request.ColoringRequest
	if err := decodeArgs(req.GetArguments(), &in); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	payload := in.Domain()
	return handle(ctx, b, call[domain.ColoringResponse]{
		tool:        ToolColoringOutline,
		contentType: domain.TypeColoring,
		route:       agentclient.RouteColoring,
		userFields:  []string{payload.Scene},
		fixture:     func() *domain.ColoringResponse { return b.fixtures.Coloring(payload) },
		remote: func(ctx context.Context) (*domain.ColoringResponse, error) {
			return b.agent.Coloring(ctx, payload)
		},
		verdict: func(r *domain.ColoringResponse) *domain.Verdict { return &r.Verdict },
		transcript: func(*domain.ColoringResponse) string {
			return fmt.Sprintf("Outline ready for %s.", payload.Scene)
		},
	}), nil
}

func (b *Bridge) HandleScience(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in request.ScienceRequest
	if err := decodeArgs(req.GetArguments(), &in); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	payload := in.Domain()
	return handle(ctx, b, call[domain.ScienceResponse]{
		tool:        ToolScienceSim,
		contentType: domain.TypeScience,
		route:       agentclient.RouteScience,
		userFields:  []string{payload.Topic},
		fixture:     func() *domain.ScienceResponse { return b.fixtures.Science(payload) },
		remote: func(ctx context.Context) (*domain.ScienceResponse, error) {
			return b.agent.Science(ctx, payload)
		},
		verdict: func(r *domain.ScienceResponse) *domain.Verdict { return &r.Verdict },
		transcript: func(*domain.ScienceResponse) string {
			return fmt.Sprintf("Science lab ready for %s.", payload.Topic)
		},
	}), nil
}
