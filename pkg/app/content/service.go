package content

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
	"github.com/NeuralTrust/KidBot/pkg/pipeline"
	"github.com/sirupsen/logrus"
)

const serviceName = "agent"

type Generator interface {
	CraftVoiceReply(req domain.VoiceRequest) (*domain.VoiceResponse, error)
	PlanStory(req domain.StoryRequest) (*domain.StoryResponse, error)
	GenerateColoringOutline(req domain.ColoringRequest) (*domain.ColoringResponse, error)
	PlanExperiment(req domain.ScienceRequest) (*domain.ScienceResponse, error)
}

// Stubs builds the fixture-backed payloads served in stub mode.
type Stubs interface {
	Voice(req domain.VoiceRequest) *domain.VoiceResponse
	Story(req domain.StoryRequest) *domain.StoryResponse
	Coloring(req domain.ColoringRequest) *domain.ColoringResponse
	Science(req domain.ScienceRequest) *domain.ScienceResponse
}

// Service routes each request to the fixture stubs or the local generators
// and stamps the provenance on allowed responses. It never returns an error:
// a failing generator degrades to the stub path. Stub payloads go through the
// same moderation checkpoints as generated ones.
type Service struct {
	cfg       *config.Config
	generator Generator
	stubs     Stubs
	defaults  Stubs
	moderator moderation.Moderator
	logger    *logrus.Logger
}

func NewService(
	cfg *config.Config,
	generator Generator,
	stubs Stubs,
	moderator moderation.Moderator,
	logger *logrus.Logger,
) *Service {
	if moderator == nil {
		moderator = moderation.Default()
	}
	return &Service{
		cfg:       cfg,
		generator: generator,
		stubs:     stubs,
		defaults:  stub.Defaults(domain.SourceStub),
		moderator: moderator,
		logger:    logger,
	}
}

// route describes one content type to the shared routing logic.
type route[R any] struct {
	contentType domain.Type
	input       string
	local       func() (*R, error)
	stub        func() *R
	fallback    func() *R
	transcript  func(*R) string
	verdict     func(*R) *domain.Verdict
	blocked     func(message string) *R
}

func serve[R any](ctx context.Context, s *Service, r route[R]) *R {
	if !s.cfg.UseStub() {
		resp, err := runGuarded(r.local)
		if err == nil {
			v := r.verdict(resp)
			if v.Blocked {
				return resp
			}
			v.Source = domain.SourceLocal
			s.record(r.contentType, domain.SourceLocal)
			return resp
		}
		s.degrade(ctx, r.contentType, err)
	}
	return serveStub(ctx, s, r)
}

func serveStub[R any](ctx context.Context, s *Service, r route[R]) *R {
	out, err := pipeline.Run(s.moderator, r.input,
		func() (*R, error) { return runGuarded(func() (*R, error) { return r.stub(), nil }) },
		r.transcript,
	)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"correlation_id": common.CorrelationID(ctx),
			"content":        r.contentType,
		}).WithError(err).Error("stub generation failed, serving built-in payload")
		s.record(r.contentType, domain.SourceStub)
		return r.fallback()
	}
	if !out.Allowed() {
		prometheus.RecordBlock(serviceName, string(r.contentType), string(out.Checkpoint), string(out.Verdict.Category))
		s.logger.WithFields(logrus.Fields{
			"correlation_id": common.CorrelationID(ctx),
			"content":        r.contentType,
			"checkpoint":     out.Checkpoint,
			"category":       out.Verdict.Category,
		}).Info("stub content blocked by moderation")
		return r.blocked(out.Verdict.Message)
	}
	s.record(r.contentType, domain.SourceStub)
	return out.Payload
}

// runGuarded calls gen, turning a panic or a nil response into an error.
func runGuarded[R any](gen func() (*R, error)) (out *R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("generator panicked: %v", r)
		}
	}()
	out, err = gen()
	if err == nil && out == nil {
		err = errors.New("generator returned no response")
	}
	return out, err
}

func (s *Service) degrade(ctx context.Context, contentType domain.Type, err error) {
	s.logger.WithFields(logrus.Fields{
		"correlation_id": common.CorrelationID(ctx),
		"content":        contentType,
	}).WithError(err).Error("local generation failed, serving stub")
}

func (s *Service) record(contentType domain.Type, source domain.Source) {
	prometheus.RecordResponse(serviceName, string(contentType), string(source))
}

func (s *Service) Voice(ctx context.Context, req domain.VoiceRequest) *domain.VoiceResponse {
	return serve(ctx, s, route[domain.VoiceResponse]{
		contentType: domain.TypeVoice,
		input:       req.Text,
		local:       func() (*domain.VoiceResponse, error) { return s.generator.CraftVoiceReply(req) },
		stub:        func() *domain.VoiceResponse { return s.stubs.Voice(req) },
		fallback:    func() *domain.VoiceResponse { return s.defaults.Voice(req) },
		transcript:  func(r *domain.VoiceResponse) string { return r.Text },
		verdict:     func(r *domain.VoiceResponse) *domain.Verdict { return &r.Verdict },
		blocked: func(msg string) *domain.VoiceResponse {
			return &domain.VoiceResponse{Verdict: domain.Blocked(msg)}
		},
	})
}

func (s *Service) Story(ctx context.Context, req domain.StoryRequest) *domain.StoryResponse {
	return serve(ctx, s, route[domain.StoryResponse]{
		contentType: domain.TypeStory,
		input:       req.Theme,
		local:       func() (*domain.StoryResponse, error) { return s.generator.PlanStory(req) },
		stub:        func() *domain.StoryResponse { return s.stubs.Story(req) },
		fallback:    func() *domain.StoryResponse { return s.defaults.Story(req) },
		transcript: func(r *domain.StoryResponse) string {
			captions := make([]string, len(r.Panels))
			for i, p := range r.Panels {
				captions[i] = p.Caption
			}
			return strings.Join(captions, " ")
		},
		verdict: func(r *domain.StoryResponse) *domain.Verdict { return &r.Verdict },
		blocked: func(msg string) *domain.StoryResponse {
			return &domain.StoryResponse{Verdict: domain.Blocked(msg)}
		},
	})
}

func (s *Service) Coloring(ctx context.Context, req domain.ColoringRequest) *domain.ColoringResponse {
	return serve(ctx, s, route[domain.ColoringResponse]{
		contentType: domain.TypeColoring,
		input:       req.Scene,
		local:       func() (*domain.ColoringResponse, error) { return s.generator.GenerateColoringOutline(req) },
		stub:        func() *domain.ColoringResponse { return s.stubs.Coloring(req) },
		fallback:    func() *domain.ColoringResponse { return s.defaults.Coloring(req) },
		transcript:  func(r *domain.ColoringResponse) string { return r.SVG },
		verdict:     func(r *domain.ColoringResponse) *domain.Verdict { return &r.Verdict },
		blocked: func(msg string) *domain.ColoringResponse {
			return &domain.ColoringResponse{Verdict: domain.Blocked(msg)}
		},
	})
}

func (s *Service) Science(ctx context.Context, req domain.ScienceRequest) *domain.ScienceResponse {
	return serve(ctx, s, route[domain.ScienceResponse]{
		contentType: domain.TypeScience,
		input:       req.Topic,
		local:       func() (*domain.ScienceResponse, error) { return s.generator.PlanExperiment(req) },
		stub:        func() *domain.ScienceResponse { return s.stubs.Science(req) },
		fallback:    func() *domain.ScienceResponse { return s.defaults.Science(req) },
		transcript:  func(r *domain.ScienceResponse) string { return strings.Join(r.Steps, " ") },
		verdict:     func(r *domain.ScienceResponse) *domain.Verdict { return &r.Verdict },
		blocked: func(msg string) *domain.ScienceResponse {
			return &domain.ScienceResponse{Verdict: domain.Blocked(msg)}
		},
	})
}
