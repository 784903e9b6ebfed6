package agents

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/NeuralTrust/KidBot/pkg/domain/content"
	"github.com/NeuralTrust/KidBot/pkg/pipeline"
)

var outlineTemplate = template.Must(template.New("outline").Parse(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 512 512"{{if .Style}} data-style="{{.Style}}"{{end}}>
  <rect x="16" y="16" width="480" height="480" rx="32" ry="32" fill="none" stroke="#111827" stroke-width="4" />
  <path d="M96 360 C140 280, 200 200, 256 200 C312 200, 372 280, 416 360" fill="none" stroke="#111827" stroke-width="4" stroke-linecap="round" stroke-linejoin="round" />
  <circle cx="196" cy="220" r="28" fill="none" stroke="#111827" stroke-width="4" />
  <circle cx="316" cy="220" r="28" fill="none" stroke="#111827" stroke-width="4" />
  <path d="M176 300 Q256 360 336 300" fill="none" stroke="#111827" stroke-width="4" stroke-linecap="round" />
  <text x="50%" y="470" text-anchor="middle" font-family="'Comic Sans MS', 'Comic Neue', sans-serif" font-size="20" fill="#111827">{{.Caption}}</text>
</svg>`))

type outlineData struct {
	Caption string
	Style   content.Style
}

func renderOutline(req content.ColoringRequest) (string, error) {
	var buf bytes.Buffer
	err := outlineTemplate.Execute(&buf, outlineData{
		Caption: escapeXML(strings.ToUpper(req.Scene)),
		Style:   req.Style,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// GenerateColoringOutline fills the line-art template with the scene caption.
func (a *Agents) GenerateColoringOutline(req content.ColoringRequest) (*content.ColoringResponse, error) {
	out, err := pipeline.Run(a.moderator, req.Scene,
		func() (string, error) { return renderOutline(req) },
		func(svg string) string { return svg },
	)
	if err != nil {
		return nil, err
	}
	a.observe(content.TypeColoring, out.State, out.Verdict, out.Checkpoint)
	if !out.Allowed() {
		return &content.ColoringResponse{Verdict: content.Blocked(out.Verdict.Message)}, nil
	}
	return &content.ColoringResponse{SVG: out.Payload}, nil
}
