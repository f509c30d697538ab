package main

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bshepherdson/mal/go/core"
	"github.com/bshepherdson/mal/go/environment"
	"github.com/bshepherdson/mal/go/evaluator"
	"github.com/bshepherdson/mal/go/printer"
	"github.com/bshepherdson/mal/go/reader"
)

const noForm = "no form"

// session is one top-level environment shared by every tool call. The
// evaluator is single-threaded, so calls take the lock.
type session struct {
	mu  sync.Mutex
	env *environment.Env
}

func newSession() *session {
	s := &session{}
	s.reset()
	return s
}

func (s *session) reset() {
	env := environment.NewEnv(nil)
	core.Install(env)
	s.env = env
}

func (s *session) read(src string) (string, error) {
	form, err := reader.ReadStr(src)
	if err != nil {
		return "", err
	}
	if form == nil {
		return noForm, nil
	}
	return printer.PrintStr(form, true), nil
}

func (s *session) eval(src string) (out string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			out, err = "", fmt.Errorf("%v", r)
		}
	}()

	form, err := reader.ReadStr(src)
	if err != nil {
		return "", err
	}
	if form == nil {
		return noForm, nil
	}

	evald, err := evaluator.Eval(form, s.env)
	if err != nil {
		return "", err
	}
	return printer.PrintStr(evald, true), nil
}

func result(out string, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}

func (s *session) handleRead(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	src, err := request.RequireString("source")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(s.read(src))
}

func (s *session) handleEval(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	src, err := request.RequireString("source")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return result(s.eval(src))
}

func (s *session) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	s.reset()
	s.mu.Unlock()
	return mcp.NewToolResultText("ok"), nil
}

func newServer(sess *session) *server.MCPServer {
	s := server.NewMCPServer(
		"mal",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	s.AddTool(
		mcp.NewTool("mal_read",
			mcp.WithDescription("Read one mal form and print it back in readable form, without evaluating it."),
			mcp.WithString("source",
				mcp.Required(),
				mcp.Description("mal source text, e.g. (+ 1 2)"),
			),
		),
		sess.handleRead,
	)

	s.AddTool(
		mcp.NewTool("mal_eval",
			mcp.WithDescription("Read and evaluate one mal form. Definitions made with def! persist across calls."),
			mcp.WithString("source",
				mcp.Required(),
				mcp.Description("mal source text, e.g. (let* (a 1 b 2) (+ a b))"),
			),
		),
		sess.handleEval,
	)

	s.AddTool(
		mcp.NewTool("mal_reset",
			mcp.WithDescription("Drop every definition and start from the primitive environment."),
		),
		sess.handleReset,
	)

	return s
}

func main() {
	if err := server.ServeStdio(newServer(newSession())); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
