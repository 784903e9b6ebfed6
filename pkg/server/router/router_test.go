package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/NeuralTrust/KidBot/pkg/common"
	"github.com/NeuralTrust/KidBot/pkg/config"
	"github.com/NeuralTrust/KidBot/pkg/dependency_container"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func testConfig(t *testing.T, apiKey string) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{AgentPort: 4505, MCPPort: 3000},
		Auth:   config.AuthConfig{APIKey: apiKey},
		Agent:  config.AgentConfig{URL: "http://127.0.0.1:1", Timeout: 2 * time.Second},
		Paths: config.PathsConfig{
			Fixtures:   t.TempDir(),
			WidgetDist: t.TempDir(),
			Public:     t.TempDir(),
		},
	}
}

func buildApps(t *testing.T, cfg *config.Config) (agent *fiber.App, bridge *fiber.App) {
	t.Helper()
	c, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: quietLogger(),
	})
	require.NoError(t, err)

	agent = fiber.New()
	require.NoError(t, c.AgentRouter.BuildRoutes(agent))
	bridge = fiber.New()
	require.NoError(t, c.BridgeRouter.BuildRoutes(bridge))
	return agent, bridge
}

func do(t *testing.T, app *fiber.App, method, path, body string, headers map[string]string) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &decoded), string(raw))
	}
	return resp, decoded
}

func bearer() map[string]string {
	return map[string]string{"Authorization": "Bearer " + secret}
}

func TestAgent_ScienceStubMode(t *testing.T) {
	agent, _ := buildApps(t, testConfig(t, ""))

	resp, body := do(t, agent, http.MethodPost, "/science-sim", `{"topic":"buoyancy","ageBand":"7-9"}`, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "stub", body["source"])
	assert.Equal(t, "buoyancy", body["topic"])
	assert.Contains(t, body["explanation"], "float")
}

func TestAgent_UnsafeVoiceIsBlocked(t *testing.T) {
	for _, key := range []string{"", secret} {
		agent, _ := buildApps(t, testConfig(t, key))

		resp, body := do(t, agent, http.MethodPost, "/voice",
			`{"text":"Talk about violence","persona":"robot","ageBand":"7-9"}`, bearer())
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, body["blocked"])
		assert.NotEmpty(t, body["message"])
		assert.Empty(t, body["text"])
		assert.Empty(t, body["ssml"])
	}
}

func TestAgent_SharedSecret(t *testing.T) {
	agent, _ := buildApps(t, testConfig(t, secret))

	resp, body := do(t, agent, http.MethodPost, "/voice", `{"text":"Hello moon","persona":"robot"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Unauthorized", body["error"])
	assert.True(t, strings.HasPrefix(body["correlationId"].(string), common.CorrelationIDPrefix))

	resp, body = do(t, agent, http.MethodPost, "/voice", `{"text":"Hello moon","persona":"robot"}`,
		map[string]string{"Authorization": "Bearer wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body = do(t, agent, http.MethodPost, "/voice", `{"text":"Hello moon","persona":"robot"}`, bearer())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "local", body["source"])
	assert.Equal(t, false, body["blocked"])
	assert.Equal(t, body["correlationId"], resp.Header.Get(common.CorrelationIDHeader))
}

func TestAgent_ColoringOutlineUpperCasesScene(t *testing.T) {
	agent, _ := buildApps(t, testConfig(t, secret))

	resp, body := do(t, agent, http.MethodPost, "/coloring-outline", `{"scene":"Happy turtle parade"}`, bearer())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	svg := body["svg"].(string)
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "HAPPY TURTLE PARADE")
}

func TestAgent_OpenRoutes(t *testing.T) {
	agent, _ := buildApps(t, testConfig(t, secret))

	resp, body := do(t, agent, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "local", body["mode"])

	resp, _ = do(t, agent, http.MethodGet, "/version", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAgent_BadRequest(t *testing.T) {
	agent, _ := buildApps(t, testConfig(t, ""))

	resp, body := do(t, agent, http.MethodPost, "/story-panels", `{"theme":"owls","panels":1}`, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Bad Request", body["error"])
	assert.NotEmpty(t, body["details"])
}

func TestBridge_Healthz(t *testing.T) {
	_, bridge := buildApps(t, testConfig(t, ""))

	resp, body := do(t, bridge, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "fallback", body["mode"])
	_, err := time.Parse(time.RFC3339, body["time"].(string))
	assert.NoError(t, err)
}

func TestBridge_Diag(t *testing.T) {
	_, bridge := buildApps(t, testConfig(t, ""))

	resp, _ := do(t, bridge, http.MethodGet, "/diag", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}

func TestBridge_ToolCallThroughAgentService(t *testing.T) {
	cfg := testConfig(t, secret)
	agent, _ := buildApps(t, cfg)
	upstream := httptest.NewServer(adaptor.FiberApp(agent))
	defer upstream.Close()

	cfg.Agent.URL = upstream.URL
	_, bridge := buildApps(t, cfg)

	rpc := `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"voice_chat","arguments":{"text":"Tell me about the moon","persona":"explorer"}}}`
	resp, body := do(t, bridge, http.MethodPost, "/mcp", rpc, map[string]string{
		"Accept": "application/json, text/event-stream",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result, ok := body["result"].(map[string]any)
	require.True(t, ok, "unexpected response: %v", body)
	structured := result["structuredContent"].(map[string]any)
	assert.Equal(t, "local", structured["source"])
	assert.Equal(t, "explorer", structured["persona"])

	text := result["content"].([]any)[0].(map[string]any)["text"].(string)
	assert.True(t, strings.HasPrefix(text, "explorer reply ready! "), text)
}

func TestBridge_ToolCallFallsBackWhenAgentIsDown(t *testing.T) {
	_, bridge := buildApps(t, testConfig(t, secret))

	rpc := `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"story_panels","arguments":{"theme":"kind dragon","panels":2}}}`
	resp, body := do(t, bridge, http.MethodPost, "/mcp", rpc, map[string]string{
		"Accept": "application/json, text/event-stream",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := body["result"].(map[string]any)
	structured := result["structuredContent"].(map[string]any)
	assert.Equal(t, "fixture", structured["source"])
	assert.Len(t, structured["panels"], 2)
}
