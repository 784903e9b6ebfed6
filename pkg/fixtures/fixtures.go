package fixtures

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	VoiceMoon      = "voice/moon.json"
	ComicsDragon   = "comics/dragon4.json"
	ColoringSpace  = "coloring/space-cat.svg"
	ScienceFloater = "science/buoyancy.json"
)

var (
	ErrOutsideRoot = errors.New("fixture key escapes the fixtures directory")
	ErrNoProvider  = errors.New("no fixture provider configured")
)

// Provider reads canned payloads from Dir. Reads never fail: every problem is
// logged at debug level and the caller's fallback is returned instead. A nil
// Provider always returns the fallback.
type Provider struct {
	Dir    string
	logger *logrus.Logger
}

func NewProvider(dir string, logger *logrus.Logger) *Provider {
	return &Provider{Dir: dir, logger: logger}
}

func (p *Provider) resolve(key string) (string, error) {
	if filepath.IsAbs(key) {
		return "", ErrOutsideRoot
	}
	root := filepath.Clean(p.Dir)
	full := filepath.Join(root, filepath.FromSlash(key))
	rel, err := filepath.Rel(root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrOutsideRoot
	}
	return full, nil
}

func (p *Provider) read(key string) ([]byte, error) {
	if p == nil {
		return nil, ErrNoProvider
	}
	path, err := p.resolve(key)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func (p *Provider) miss(key string, err error) {
	if p == nil || p.logger == nil {
		return
	}
	p.logger.WithFields(logrus.Fields{
		"fixture": key,
		"dir":     p.Dir,
	}).WithError(err).Debug("fixture unavailable, using fallback")
}

// ReadText returns the file at key as a string, or fallback.
func (p *Provider) ReadText(key, fallback string) string {
	data, err := p.read(key)
	if err != nil {
		p.miss(key, err)
		return fallback
	}
	return string(data)
}

// ReadJSON decodes the file at key into a T, or returns fallback.
func ReadJSON[T any](p *Provider, key string, fallback T) T {
	data, err := p.read(key)
	if err != nil {
		p.miss(key, err)
		return fallback
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		p.miss(key, err)
		return fallback
	}
	return out
}
