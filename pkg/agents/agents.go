package agents

import (
	"github.com/NeuralTrust/KidBot/pkg/domain/content"
	"github.com/NeuralTrust/KidBot/pkg/infra/prometheus"
	"github.com/NeuralTrust/KidBot/pkg/moderation"
	"github.com/NeuralTrust/KidBot/pkg/pipeline"
	"github.com/sirupsen/logrus"
)

const ServiceName = "agent"

// Agents are the four local content generators. Each one runs its template
// between a moderation pre-check and post-check.
type Agents struct {
	logger    *logrus.Logger
	moderator moderation.Moderator
}

func New(logger *logrus.Logger, moderator moderation.Moderator) *Agents {
	if moderator == nil {
		moderator = moderation.Default()
	}
	return &Agents{
		logger:    logger,
		moderator: moderator,
	}
}

func (a *Agents) observe(contentType content.Type, state pipeline.State, verdict moderation.Result, checkpoint moderation.Checkpoint) {
	if state != pipeline.Blocked {
		return
	}
	prometheus.RecordBlock(ServiceName, string(contentType), string(checkpoint), string(verdict.Category))
	a.logger.WithFields(logrus.Fields{
		"content":    contentType,
		"checkpoint": checkpoint,
		"category":   verdict.Category,
	}).Info("content blocked by moderation")
}
