package cmd

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/voxctl/voxctl/internal/match"
	"github.com/voxctl/voxctl/internal/perception"
	"github.com/voxctl/voxctl/internal/version"
)

// mcpServer exposes the resolution pipeline over MCP.
type mcpServer struct {
	app *app
	mcp *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

func newMCPServer(a *app) *mcpServer {
	s := &mcpServer{app: a}
	s.mcp = mcpserver.NewMCPServer("voxctl", version.Version)
	s.registerTools()
	return s
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("run",
			mcp.WithDescription("Resolve a natural-language command into UI actions and execute them against the frontmost window. Returns the per-step outcomes."),
			mcp.WithString("command", mcp.Description("The command to execute, e.g. 'click the save button, then press enter'"), mcp.Required()),
		),
		s.handleRun,
	)

	s.mcp.AddTool(
		mcp.NewTool("segment",
			mcp.WithDescription("Split a natural-language command into classified steps without executing anything"),
			mcp.WithString("command", mcp.Description("The command to segment"), mcp.Required()),
		),
		s.handleSegment,
	)

	s.mcp.AddTool(
		mcp.NewTool("history",
			mcp.WithDescription("Return recently executed commands with their per-step outcomes, newest first"),
			mcp.WithNumber("limit", mcp.Description("Maximum number of records (default 20)")),
		),
		s.handleHistory,
	)

	s.mcp.AddTool(
		mcp.NewTool("resolve",
			mcp.WithDescription("Score a target label against the current on-screen elements and return the best match with its score and tier"),
			mcp.WithString("label", mcp.Description("Target label, e.g. 'save button'"), mcp.Required()),
			mcp.WithBoolean("semantic", mcp.Description("Use the semantic-trust score table")),
		),
		s.handleResolve,
	)
}

func (s *mcpServer) handleRun(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	utterance := stringParam(params, "command", "")
	if utterance == "" {
		return mcp.NewToolResultError("command is required"), nil
	}

	result, err := s.app.coord.Run(ctx, utterance)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(result), nil
}

func (s *mcpServer) handleSegment(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	utterance := stringParam(params, "command", "")
	if utterance == "" {
		return mcp.NewToolResultError("command is required"), nil
	}

	return yamlResult(heuristicSteps(utterance)), nil
}

func (s *mcpServer) handleHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := intParam(request.GetArguments(), "limit", 20)
	records, err := s.app.store.Recent(ctx, limit)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(records), nil
}

func (s *mcpServer) handleResolve(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	label := stringParam(params, "label", "")
	if label == "" {
		return mcp.NewToolResultError("label is required"), nil
	}

	candidates, err := s.app.detector.Detect(ctx, perception.Snapshot{})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result := match.Resolve(match.Request{
		Label:    label,
		Semantic: boolParam(params, "semantic", false),
	}, candidates, s.app.matchCfg)
	return yamlResult(result), nil
}

// yamlResult serializes v to YAML for an MCP text response.
func yamlResult(v interface{}) *mcp.CallToolResult {
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal result: %v", err))
	}
	return mcp.NewToolResultText(string(b))
}

func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

func boolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}

func intParam(params map[string]interface{}, key string, def int) int {
	if v, ok := params[key].(float64); ok {
		return int(v)
	}
	return def
}
