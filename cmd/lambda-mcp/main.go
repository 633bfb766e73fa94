package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/vic/lambda-repl/pkg/config"
	"github.com/vic/lambda-repl/pkg/session"
)

// toolServer serves one interpreter session. Tool calls are serialized so
// definitions never change while a reduction runs.
type toolServer struct {
	mu sync.Mutex
	s  *session.Session
}

func newToolServer(cfg config.Config) (*toolServer, error) {
	if cfg.MaxSteps == 0 {
		cfg.MaxSteps = config.DefaultServerMaxSteps
	}
	s, err := session.New(cfg, io.Discard)
	if err != nil {
		return nil, err
	}
	return &toolServer{s: s}, nil
}

func (ts *toolServer) handleEval(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expr, err := request.RequireString("expr")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ts.mu.Lock()
	defer ts.mu.Unlock()

	res, err := ts.s.EvaluateString(expr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(res.String()), nil
}

func (ts *toolServer) handleDefine(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	expr, err := request.RequireString("expr")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ts.mu.Lock()
	defer ts.mu.Unlock()

	term, err := ts.s.Define(name, expr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(name + " = " + term.String()), nil
}

func (ts *toolServer) handleDefs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	var out bytes.Buffer
	if err := ts.s.Env.PrintAll(&out); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out.String()), nil
}

func (ts *toolServer) mcpServer() *server.MCPServer {
	s := server.NewMCPServer(
		"lambda",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	s.AddTool(
		mcp.NewTool("lambda_eval",
			mcp.WithDescription("Reduce a lambda calculus expression to normal form under normal order. Returns the canonical form."),
			mcp.WithString("expr",
				mcp.Required(),
				mcp.Description(`Expression, e.g. (\x.x) y or succ zero. Use \ or λ for lambda.`),
			),
		),
		ts.handleEval,
	)

	s.AddTool(
		mcp.NewTool("lambda_define",
			mcp.WithDescription("Bind a top-level name to an expression. Later expressions may refer to it."),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Name to define; letters and digits, starting with a letter"),
			),
			mcp.WithString("expr",
				mcp.Required(),
				mcp.Description("Expression bound to the name"),
			),
		),
		ts.handleDefine,
	)

	s.AddTool(
		mcp.NewTool("lambda_defs",
			mcp.WithDescription("List all definitions in name order."),
		),
		ts.handleDefs,
	)

	return s
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	ts, err := newToolServer(cfg)
	if err != nil {
		log.Fatalf("session: %v", err)
	}
	if err := server.ServeStdio(ts.mcpServer()); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
