package router

import (
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"
)

var ErrInvalidHandlerTransport = errors.New("invalid handler transport")

type ServerRouter interface {
	BuildRoutes(router *fiber.App) error
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
