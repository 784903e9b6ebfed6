package fixtures_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/NeuralTrust/KidBot/pkg/fixtures"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newProvider(t *testing.T) (*fixtures.Provider, string) {
	t.Helper()
	dir := t.TempDir()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return fixtures.NewProvider(dir, logger), dir
}

func writeFile(t *testing.T, dir, key, body string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(key))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestReadJSON(t *testing.T) {
	p, dir := newProvider(t)
	fallback := sample{Name: "fallback", Count: 1}

	writeFile(t, dir, "ok/sample.json", `{"name":"moon","count":4}`)
	writeFile(t, dir, "bad/sample.json", `{"name":`)

	tests := []struct {
		name string
		key  string
		want sample
	}{
		{name: "present", key: "ok/sample.json", want: sample{Name: "moon", Count: 4}},
		{name: "missing", key: "nope/sample.json", want: fallback},
		{name: "malformed", key: "bad/sample.json", want: fallback},
		{name: "escapes root", key: "../sample.json", want: fallback},
		{name: "absolute", key: "/etc/hostname", want: fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fixtures.ReadJSON(p, tt.key, fallback))
		})
	}
}

func TestReadText(t *testing.T) {
	p, dir := newProvider(t)
	writeFile(t, dir, fixtures.ColoringSpace, "<svg>cat</svg>")

	assert.Equal(t, "<svg>cat</svg>", p.ReadText(fixtures.ColoringSpace, "fallback"))
	assert.Equal(t, "fallback", p.ReadText("coloring/missing.svg", "fallback"))
	assert.Equal(t, "fallback", p.ReadText("../../outside.svg", "fallback"))
}

func TestReadText_MissingDir(t *testing.T) {
	p := fixtures.NewProvider(filepath.Join(t.TempDir(), "does-not-exist"), nil)
	assert.Equal(t, "fallback", p.ReadText(fixtures.VoiceMoon, "fallback"))
}

func TestNilProviderReturnsFallback(t *testing.T) {
	var p *fixtures.Provider
	assert.Equal(t, "fallback", p.ReadText(fixtures.ColoringSpace, "fallback"))
	assert.Equal(t, []string{"a"}, fixtures.ReadJSON(p, fixtures.ComicsDragon, []string{"a"}))
}
