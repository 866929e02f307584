// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/x509-cert-store/src/mcp-server/templates"
)

// promptTemplateData holds the values substituted into prompt templates.
type promptTemplateData struct {
	Certificate string
	Prefix      string
}

// createPrompts returns the guided workflows offered to clients.
func createPrompts(h *toolHandlers) []server.ServerPrompt {
	return []server.ServerPrompt{
		{
			Prompt: mcp.NewPrompt("catalog-chain",
				mcp.WithPromptDescription("Validate, import and review a certificate chain"),
				mcp.WithArgument("certificate",
					mcp.ArgumentDescription(certificateDescription),
					mcp.RequiredArgument(),
				),
				mcp.WithArgument("prefix",
					mcp.ArgumentDescription("Alias prefix for the imported chain (default: from configuration)"),
				),
			),
			Handler: h.handleCatalogChainPrompt,
		},
	}
}

func (h *toolHandlers) handleCatalogChainPrompt(_ context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	prefix := request.Params.Arguments["prefix"]
	if prefix == "" {
		prefix = h.cfg.Defaults.AliasPrefix
	}

	messages, err := parsePromptTemplate("catalog-chain-prompt", promptTemplateData{
		Certificate: request.Params.Arguments["certificate"],
		Prefix:      prefix,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog chain template: %w", err)
	}

	return mcp.NewGetPromptResult("Catalog Chain Workflow", messages), nil
}

// parsePromptTemplate executes the named template and splits the result into
// messages at "### User:" and "### Assistant:" markers. Other headers and
// blank lines are dropped.
func parsePromptTemplate(name string, data promptTemplateData) ([]mcp.PromptMessage, error) {
	content, err := templates.MagicEmbed.ReadFile(name + ".md")
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	var (
		messages []mcp.PromptMessage
		role     mcp.Role
		current  strings.Builder
	)
	flush := func() {
		if current.Len() > 0 {
			messages = append(messages, mcp.NewPromptMessage(role, mcp.NewTextContent(current.String())))
			current.Reset()
		}
	}

	for line := range strings.Lines(buf.String()) {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "### User:"):
			flush()
			role = mcp.RoleUser
		case strings.HasPrefix(line, "### Assistant:"):
			flush()
			role = mcp.RoleAssistant
		case line == "", strings.HasPrefix(line, "#"), role == "":
		default:
			if current.Len() > 0 {
				current.WriteByte('\n')
			}
			current.WriteString(line)
		}
	}
	flush()

	return messages, nil
}

// loadInstructions renders the server instructions with the tool list.
func loadInstructions(tools []server.ServerTool, aliasPrefix string) (string, error) {
	content, err := templates.MagicEmbed.ReadFile("X509_instructions.md")
	if err != nil {
		return "", fmt.Errorf("failed to load MCP server instructions template: %w", err)
	}

	tmpl, err := template.New("instructions").Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse instructions template: %w", err)
	}

	type toolInfo struct{ Name, Description string }
	data := struct {
		Tools       []toolInfo
		AliasPrefix string
	}{AliasPrefix: aliasPrefix}
	for _, t := range tools {
		data.Tools = append(data.Tools, toolInfo{Name: t.Tool.Name, Description: t.Tool.Description})
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute instructions template: %w", err)
	}
	return buf.String(), nil
}
