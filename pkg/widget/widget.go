package widget

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

type Mode string

const (
	ModeDist     Mode = "dist"
	ModeFallback Mode = "fallback"

	ResourceURI  = "ui://widget/kidbot.html"
	ResourceName = "KidBot widget"
	MIMEType     = "text/html+skybridge"
	Description  = "KidBot — safe creative play: voice, comics, coloring, science."

	FallbackHTML = "kidbot-fallback.html"
	fallbackCSS  = "kidbot-fallback.css"
	fallbackJS   = "kidbot-fallback.js"

	cssLink   = `<link rel="stylesheet" href="./kidbot-fallback.css" />`
	jsInclude = `<script src="./kidbot-fallback.js"></script>`

	missingFallback = `<!doctype html><html><body><div id="kidbot-root">Fallback widget missing. Ensure the widget dist directory contains kidbot-fallback.html.</div></body></html>`
)

// Widget is the HTML served as the MCP UI resource, resolved once at start.
type Widget struct {
	Mode    Mode
	HTML    string
	DistDir string
}

// Resolve picks the built bundle when dist/assets holds a script and the
// fallback bundle otherwise, or whenever forceFallback is set.
func Resolve(distDir string, forceFallback bool, logger *logrus.Logger) *Widget {
	w := &Widget{DistDir: distDir}

	assets, hasBundle := bundleAssets(filepath.Join(distDir, "assets"))
	if forceFallback || !hasBundle {
		w.Mode = ModeFallback
		w.HTML = fallbackHTML(distDir)
	} else {
		w.Mode = ModeDist
		w.HTML = distHTML(filepath.Join(distDir, "assets"), assets)
	}

	if logger != nil {
		logger.WithFields(logrus.Fields{
			"mode":     w.Mode,
			"dist_dir": distDir,
		}).Info("widget resolved")
	}
	return w
}

// HasFallbackPage reports whether the standalone fallback page can be linked.
func (w *Widget) HasFallbackPage() bool {
	return fileExists(filepath.Join(w.DistDir, FallbackHTML))
}

func bundleAssets(assetsDir string) ([]string, bool) {
	entries, err := os.ReadDir(assetsDir)
	if err != nil {
		return nil, false
	}
	names := make([]string, 0, len(entries))
	hasJS := false
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
		if strings.HasSuffix(e.Name(), ".js") {
			hasJS = true
		}
	}
	sort.Strings(names)
	return names, hasJS
}

func firstWithSuffix(names []string, suffix string) string {
	for _, n := range names {
		if strings.HasSuffix(n, suffix) {
			return n
		}
	}
	return ""
}

func readOrEmpty(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

func distHTML(assetsDir string, assets []string) string {
	js := readOrEmpty(joinIfSet(assetsDir, firstWithSuffix(assets, ".js")))
	css := readOrEmpty(joinIfSet(assetsDir, firstWithSuffix(assets, ".css")))
	return fmt.Sprintf(
		`<!doctype html><html><head><meta charset="utf-8"/><title>KidBot Widget</title><style>%s</style></head><body><div id="kidbot-root"></div><script type="module">%s</script></body></html>`,
		css, js,
	)
}

func joinIfSet(dir, name string) string {
	if name == "" {
		return ""
	}
	return filepath.Join(dir, name)
}

func fallbackHTML(distDir string) string {
	html, err := os.ReadFile(filepath.Join(distDir, FallbackHTML))
	if err != nil {
		return missingFallback
	}
	out := string(html)
	if css, err := os.ReadFile(filepath.Join(distDir, fallbackCSS)); err == nil {
		out = strings.Replace(out, cssLink, "<style>"+string(css)+"</style>", 1)
	}
	if js, err := os.ReadFile(filepath.Join(distDir, fallbackJS)); err == nil {
		out = strings.Replace(out, jsInclude, "<script>"+string(js)+"</script>", 1)
	}
	return out
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
