// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates provides embedded filesystem access for MCP server template files.
//
// The embedded markdown files hold the server instructions, the prompt
// workflows and the certificate format documentation served as a resource.
// [MagicEmbed] is the default [EmbedFS] over those files.
//
// Example usage:
//
//	import "github.com/H0llyW00dzZ/x509-cert-store/src/mcp-server/templates"
//
//	// Read certificate format documentation
//	content, err := templates.MagicEmbed.ReadFile("certificate-formats.md")
//	if err != nil {
//		return fmt.Errorf("failed to read certificate formats: %w", err)
//	}
package templates
