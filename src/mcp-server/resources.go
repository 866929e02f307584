// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/x509-cert-store/src/mcp-server/templates"
)

const (
	storeResourceURI   = "store://certificates"
	configResourceURI  = "config://current"
	formatsResourceURI = "docs://certificate-formats"
)

// createResources returns the read-only views of the store and configuration.
func createResources(h *toolHandlers) []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(storeResourceURI, "Stored certificates",
				mcp.WithResourceDescription("Summary of every stored certificate in insertion order"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: h.handleStoreResource,
		},
		{
			Resource: mcp.NewResource(configResourceURI, "Active configuration",
				mcp.WithResourceDescription("Configuration the server was started with"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: h.handleConfigResource,
		},
		{
			Resource: mcp.NewResource(formatsResourceURI, "Certificate formats",
				mcp.WithResourceDescription("Accepted and produced certificate encodings"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: handleFormatsResource,
		},
	}
}

func (h *toolHandlers) handleStoreResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := h.store.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode store: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      storeResourceURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *toolHandlers) handleConfigResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(h.cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      configResourceURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func handleFormatsResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	content, err := templates.MagicEmbed.ReadFile("certificate-formats.md")
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate formats: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      formatsResourceURI,
			MIMEType: "text/markdown",
			Text:     string(content),
		},
	}, nil
}
