package http

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/NeuralTrust/KidBot/pkg/config"
	"github.com/NeuralTrust/KidBot/pkg/widget"
	"github.com/gofiber/fiber/v2"
)

const (
	diagnosticPage = "diagnostic.html"

	diagStyle = `body{font-family:system-ui;margin:32px;color:#111;} a{color:#0066cc;} .tag{display:inline-block;padding:4px 8px;border-radius:999px;background:#eef;border:1px solid #ccd;margin-left:8px;font-size:12px;text-transform:uppercase;letter-spacing:0.08em;}`
)

type diagHandler struct {
	cfg    *config.Config
	widget *widget.Widget
}

// NewDiagHandler serves a small HTML page linking the bridge's debugging
// surfaces. Links are only rendered for files that exist.
func NewDiagHandler(cfg *config.Config, w *widget.Widget) Handler {
	return &diagHandler{cfg: cfg, widget: w}
}

func (h *diagHandler) Handle(c *fiber.Ctx) error {
	var links []string
	if h.widget.HasFallbackPage() {
		links = append(links, `<li><a href="/widget/`+widget.FallbackHTML+`">Open fallback widget</a></li>`)
	}
	if isFile(filepath.Join(h.cfg.Paths.Public, diagnosticPage)) {
		links = append(links, `<li><a href="/public/`+diagnosticPage+`">Open diagnostic harness</a></li>`)
	}
	links = append(links, `<li><a href="/healthz">Health JSON</a></li>`)

	fixtures := "not available"
	if isDir(h.cfg.Paths.Fixtures) {
		fixtures = "/fixtures"
	}

	page := fmt.Sprintf(
		`<!doctype html><html><head><meta charset="utf-8"/><title>KidBot Diagnostics</title><style>%s</style></head>`+
			`<body><h1>KidBot Diagnostics <span class="tag">%s</span></h1><p>Server port: %d</p><ul>%s</ul>`+
			`<p>Fixtures served from: %s</p></body></html>`,
		diagStyle,
		html.EscapeString(string(h.widget.Mode)),
		h.cfg.Server.MCPPort,
		strings.Join(links, ""),
		fixtures,
	)
	c.Type("html", "utf-8")
	return c.Status(fiber.StatusOK).SendString(page)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
