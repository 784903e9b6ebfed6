package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Agent service
	VoiceHandler           Handler
	StoryPanelsHandler     Handler
	ColoringOutlineHandler Handler
	ScienceSimHandler      Handler
	HealthHandler          Handler
	GetVersionHandler      Handler

	// Tool bridge
	HealthzHandler Handler
	DiagHandler    Handler
}
