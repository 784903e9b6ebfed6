package bridge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/NeuralTrust/KidBot/pkg/app/stub"
	"github.com/NeuralTrust/KidBot/pkg/common"
	"github.com/NeuralTrust/KidBot/pkg/config"
	domain "github.com/NeuralTrust/KidBot/pkg/domain/content"
	"github.com/NeuralTrust/KidBot/pkg/infra/prometheus"
	"github.com/NeuralTrust/KidBot/pkg/moderation"
	"github.com/NeuralTrust/KidBot/pkg/widget"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"
)

const (
	ServiceName = "bridge"

	DefaultPreCheckMessage  = "Let's try a different friendly idea."
	DefaultAgentMessage     = "Let's pick another playful request."
	DefaultPostCheckMessage = "Let's stick with cheerful topics."

	metaOutputTemplate    = "openai/outputTemplate"
	metaWidgetDescription = "openai/widgetDescription"
	metaWidgetCSP         = "openai/widgetCSP"
	metaWidgetAccessible  = "openai/widgetAccessible"
)

var ErrNilRegistrar = errors.New("bridge: registrar is nil")

// Agent is the slice of the agent service the bridge calls into.
type Agent interface {
	Voice(ctx context.Context, req domain.VoiceRequest) (*domain.VoiceResponse, error)
	Story(ctx context.Context, req domain.StoryRequest) (*domain.StoryResponse, error)
	Coloring(ctx context.Context, req domain.ColoringRequest) (*domain.ColoringResponse, error)
	Science(ctx context.Context, req domain.ScienceRequest) (*domain.ScienceResponse, error)
}

// Bridge exposes the four content agents as MCP tools. It moderates the
// user's fields before anything else runs and the tool transcript before
// anything is returned, whatever the agent service said.
type Bridge struct {
	cfg       *config.Config
	agent     Agent
	fixtures  *stub.Builder
	moderator moderation.Moderator
	logger    *logrus.Logger
}

func New(
	cfg *config.Config,
	agent Agent,
	fixtures *stub.Builder,
	moderator moderation.Moderator,
	logger *logrus.Logger,
) *Bridge {
	if moderator == nil {
		moderator = moderation.Default()
	}
	return &Bridge{
		cfg:       cfg,
		agent:     agent,
		fixtures:  fixtures,
		moderator: moderator,
		logger:    logger,
	}
}

// call carries one tool invocation through the moderation steps.
type call[R any] struct {
	tool        string
	contentType domain.Type
	route       string
	userFields  []string
	fixture     func() *R
	remote      func(ctx context.Context) (*R, error)
	verdict     func(*R) *domain.Verdict
	transcript  func(*R) string
}

func handle[R any](ctx context.Context, b *Bridge, c call[R]) *mcp.CallToolResult {
	log := b.logger.WithFields(logrus.Fields{
		"tool":           c.tool,
		"correlation_id": common.CorrelationID(ctx),
	})

	if verdict := moderation.ModerateAll(b.moderator, c.userFields...); verdict.Blocked {
		b.recordBlock(c.contentType, moderation.PreCheck, verdict.Category)
		log.WithField("category", verdict.Category).Info("tool input blocked")
		return blockedResult(orDefault(verdict.Message, DefaultPreCheckMessage))
	}

	resp := act(ctx, b, c, log)

	if v := c.verdict(resp); v.Blocked {
		b.recordBlock(c.contentType, moderation.AgentReported, "")
		log.Info("agent reported a block")
		return blockedResult(orDefault(v.Message, DefaultAgentMessage))
	}

	transcript := c.transcript(resp)
	if verdict := b.moderator.Moderate(transcript); verdict.Blocked {
		b.recordBlock(c.contentType, moderation.PostCheck, verdict.Category)
		log.WithField("category", verdict.Category).Info("tool transcript blocked")
		return blockedResult(orDefault(verdict.Message, DefaultPostCheckMessage))
	}

	source := c.verdict(resp).Source
	prometheus.RecordResponse(ServiceName, string(c.contentType), string(source))
	log.WithField("source", source).Debug("tool call allowed")
	return allowedResult(transcript, resp)
}

// act asks the agent service for a response unless fixtures are forced. Any
// agent failure is logged and answered from fixtures.
func act[R any](ctx context.Context, b *Bridge, c call[R], log *logrus.Entry) *R {
	if b.cfg.FallbackForced() || b.agent == nil {
		return c.fixture()
	}
	resp, err := c.remote(ctx)
	if err == nil && resp == nil {
		err = fmt.Errorf("%s: empty response", c.route)
	}
	if err != nil {
		prometheus.RecordUpstreamFailure(c.route)
		log.WithError(err).Warn("agent service unavailable, using fixtures")
		return c.fixture()
	}
	return resp
}

func (b *Bridge) recordBlock(contentType domain.Type, checkpoint moderation.Checkpoint, category moderation.Category) {
	prometheus.RecordBlock(ServiceName, string(contentType), string(checkpoint), string(category))
}

func orDefault(message, fallback string) string {
	if strings.TrimSpace(message) == "" {
		return fallback
	}
	return message
}

func outputMeta() map[string]any {
	return map[string]any{
		metaOutputTemplate:    widget.ResourceURI,
		metaWidgetDescription: widget.Description,
		metaWidgetCSP: map[string]any{
			"connect_domains":  []string{},
			"resource_domains": []string{},
		},
	}
}

// BlockedPayload is the structured content of a blocked tool result.
type BlockedPayload struct {
	Blocked bool   `json:"blocked"`
	Message string `json:"message"`
}

func blockedResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Result:            mcp.Result{Meta: &mcp.Meta{AdditionalFields: outputMeta()}},
		Content:           []mcp.Content{mcp.NewTextContent(message)},
		StructuredContent: BlockedPayload{Blocked: true, Message: message},
	}
}

func allowedResult(transcript string, payload any) *mcp.CallToolResult {
	meta := outputMeta()
	meta[metaWidgetAccessible] = true
	return &mcp.CallToolResult{
		Result:            mcp.Result{Meta: &mcp.Meta{AdditionalFields: meta}},
		Content:           []mcp.Content{mcp.NewTextContent(transcript)},
		StructuredContent: payload,
	}
}
