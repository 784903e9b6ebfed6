package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const fallbackOn = "1"

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Agent    AgentConfig    `mapstructure:"agent"`
	Paths    PathsConfig    `mapstructure:"paths"`
	Log      LogConfig      `mapstructure:"log"`
	Fallback FallbackConfig `mapstructure:"fallback"`
}

type ServerConfig struct {
	AgentPort int    `mapstructure:"agent_port"`
	MCPPort   int    `mapstructure:"mcp_port"`
	Host      string `mapstructure:"host"`
}

type MetricsConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	Port          int  `mapstructure:"port"`
	EnableLatency bool `mapstructure:"enable_latency"`
}

// AuthConfig holds the shared secret. When it is empty the access gate is off
// and the agent service answers from fixtures.
type AuthConfig struct {
	APIKey string `mapstructure:"api_key"`
}

type AgentConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type PathsConfig struct {
	Fixtures   string `mapstructure:"fixtures"`
	WidgetDist string `mapstructure:"widget_dist"`
	Public     string `mapstructure:"public"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Dir   string `mapstructure:"dir"`
}

type FallbackConfig struct {
	Widget string `mapstructure:"widget"`
}

// envBindings maps config keys to the environment variables that set them.
// When several variables are listed the first one present wins.
var envBindings = map[string][]string{
	"server.agent_port":      {"PORT", "AGENT_PORT"},
	"server.mcp_port":        {"MCP_PORT"},
	"server.host":            {"HOST"},
	"metrics.enabled":        {"METRICS_ENABLED"},
	"metrics.port":           {"METRICS_PORT"},
	"metrics.enable_latency": {"METRICS_ENABLE_LATENCY"},
	"auth.api_key":           {"OPENAI_API_KEY"},
	"agent.url":              {"AGENT_URL"},
	"agent.timeout":          {"AGENT_TIMEOUT"},
	"paths.fixtures":         {"FIXTURES_DIR"},
	"paths.widget_dist":      {"WIDGET_DIST_DIR"},
	"paths.public":           {"PUBLIC_DIR"},
	"log.level":              {"LOG_LEVEL"},
	"log.dir":                {"LOG_DIR"},
	"fallback.widget":        {"FALLBACK_WIDGET"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.agent_port", 4505)
	v.SetDefault("server.mcp_port", 3000)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("metrics.enable_latency", true)
	v.SetDefault("agent.timeout", 5*time.Second)
	v.SetDefault("paths.fixtures", "fixtures")
	v.SetDefault("paths.widget_dist", "web/widget/dist")
	v.SetDefault("paths.public", "public")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "logs")
}

// Load reads config.yaml from configPath (if present) and overlays the
// environment. A missing file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if err := loadConfigFile(v, configPath, "config"); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Agent.URL == "" {
		cfg.Agent.URL = fmt.Sprintf("http://localhost:%d", cfg.Server.AgentPort)
	}
	cfg.Agent.URL = strings.TrimRight(cfg.Agent.URL, "/")
	if cfg.Agent.Timeout <= 0 {
		cfg.Agent.Timeout = 5 * time.Second
	}
	return &cfg, nil
}

func bindEnv(v *viper.Viper) error {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return fmt.Errorf("bind env for %s: %w", key, err)
		}
	}
	return nil
}

func loadConfigFile(v *viper.Viper, configPath, fileName string) error {
	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return nil
		}
		return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
	}
	return nil
}

// AuthEnabled reports whether requests must carry the shared secret.
func (c *Config) AuthEnabled() bool {
	return c.Auth.APIKey != ""
}

// FallbackForced reports whether FALLBACK_WIDGET=1 pins every path to fixtures.
func (c *Config) FallbackForced() bool {
	return c.Fallback.Widget == fallbackOn
}

// UseStub reports whether the agent service answers from fixtures instead of
// the local generators.
func (c *Config) UseStub() bool {
	return !c.AuthEnabled() || c.FallbackForced()
}
