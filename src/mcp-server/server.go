// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/x509-cert-store/src/config"
	"github.com/H0llyW00dzZ/x509-cert-store/src/logger"
)

const serverName = "X509 Certificate Store"

// NewServer builds an MCP server with every tool, resource and prompt bound
// to a fresh certificate store.
func NewServer(cfg *config.Config, version string, log logger.Logger) (*server.MCPServer, error) {
	h := newToolHandlers(cfg, log)
	tools := createTools(h)

	instructions, err := loadInstructions(tools, cfg.Defaults.AliasPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to load instructions: %w", err)
	}

	s := server.NewMCPServer(serverName, version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
		server.WithInstructions(instructions),
	)

	for _, tool := range tools {
		s.AddTool(tool.Tool, tool.Handler)
	}
	for _, resource := range createResources(h) {
		s.AddResource(resource.Resource, resource.Handler)
	}
	for _, prompt := range createPrompts(h) {
		s.AddPrompt(prompt.Prompt, prompt.Handler)
	}
	return s, nil
}

// Run serves the MCP protocol over stdin and stdout until ctx is done.
//
// Parameters:
//   - ctx: Context whose cancellation stops the server
//   - version: Version string reported to clients
//   - configPath: Configuration file (optional, X509_CERT_STORE_CONFIG is used when empty)
//
// Returns:
//   - error: Configuration or server error, or the context error on shutdown
//
// Log lines are written as JSON to stderr since stdout carries the protocol.
func Run(ctx context.Context, version, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewJSONLogger(os.Stderr, cfg.Log.Silent)
	s, err := NewServer(cfg, version, log)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	log.Printf("%s %s serving on stdio", serverName, version)
	return serve(ctx, s, os.Stdin, os.Stdout)
}

func serve(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer) error {
	stdioServer := server.NewStdioServer(s)

	errChan := make(chan error, 1)
	go func() {
		errChan <- stdioServer.Listen(ctx, in, out)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return fmt.Errorf("server shutdown: %w", ctx.Err())
	}
}
