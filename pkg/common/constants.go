package common

import "time"

const (
	CorrelationIDHeader = "X-Correlation-Id"
	CorrelationIDPrefix = "kb_"

	AgentServerName = "agent"
	MCPServerName   = "mcp"

	ShutdownTimeout = 10 * time.Second
)
