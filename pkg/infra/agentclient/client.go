package agentclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/NeuralTrust/KidBot/pkg/domain/content"
	"github.com/NeuralTrust/KidBot/pkg/infra/httpx"
	"github.com/NeuralTrust/KidBot/pkg/version"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"
)

const (
	RouteVoice    = "/voice"
	RouteStory    = "/story-panels"
	RouteColoring = "/coloring-outline"
	RouteScience  = "/science-sim"

	maxConnsPerHost = 32
	// Largest agent reply accepted; coloring SVGs are the biggest payload.
	maxResponseBody = 1 << 20

	breakerFailures = 5
	breakerCooldown = 30 * time.Second
)

// ErrUpstream wraps every failure talking to the agent service. Callers are
// expected to recover from it.
var ErrUpstream = errors.New("agent service call failed")

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	cfg     Config
	http    httpx.Client
	breaker httpx.CircuitBreaker
	logger  *logrus.Logger
	parsers fastjson.ParserPool
}

func New(cfg Config, httpClient httpx.Client, logger *logrus.Logger) *Client {
	if httpClient == nil {
		httpClient = httpx.NewFastHTTPClient(
			httpx.WithTimeout(cfg.Timeout),
			httpx.WithMaxConnsPerHost(maxConnsPerHost),
			httpx.WithMaxResponseBodySize(maxResponseBody),
			httpx.WithUserAgent(version.UserAgent("bridge")),
		)
	}
	c := &Client{
		cfg:    cfg,
		http:   httpClient,
		logger: logger,
	}
	c.breaker = httpx.NewCircuitBreaker("agent-service", breakerCooldown, breakerFailures, c.onBreakerChange)
	return c
}

func (c *Client) onBreakerChange(name, from, to string) {
	c.logger.WithFields(logrus.Fields{
		"breaker": name,
		"from":    from,
		"to":      to,
	}).Warn("agent service circuit breaker changed state")
}

func (c *Client) Voice(ctx context.Context, req content.VoiceRequest) (*content.VoiceResponse, error) {
	var out content.VoiceResponse
	if err := c.post(ctx, RouteVoice, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Story(ctx context.Context, req content.StoryRequest) (*content.StoryResponse, error) {
	var out content.StoryResponse
	if err := c.post(ctx, RouteStory, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Coloring(ctx context.Context, req content.ColoringRequest) (*content.ColoringResponse, error) {
	var out content.ColoringResponse
	if err := c.post(ctx, RouteColoring, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Science(ctx context.Context, req content.ScienceRequest) (*content.ScienceResponse, error) {
	var out content.ScienceResponse
	if err := c.post(ctx, RouteScience, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, route string, payload, out any) error {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", route, err)
	}

	var raw []byte
	err = c.breaker.Execute(func() error {
		var doErr error
		raw, doErr = c.do(ctx, route, body)
		return doErr
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUpstream, route, err)
	}

	if err := c.inspect(route, raw); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUpstream, route, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s: decode response: %v", ErrUpstream, route, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, route string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+route, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent("bridge"))
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return raw, nil
}

// inspect checks the body is a JSON object and logs the agent's correlation
// id so the two services' logs can be joined.
func (c *Client) inspect(route string, raw []byte) error {
	p := c.parsers.Get()
	defer c.parsers.Put(p)

	v, err := p.ParseBytes(raw)
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if v.Type() != fastjson.TypeObject {
		return fmt.Errorf("expected JSON object, got %s", v.Type())
	}
	c.logger.WithFields(logrus.Fields{
		"route":                route,
		"agent_correlation_id": string(v.GetStringBytes("correlationId")),
		"blocked":              v.GetBool("blocked"),
		"source":               string(v.GetStringBytes("source")),
	}).Debug("agent service responded")
	return nil
}
