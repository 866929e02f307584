// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const certificateDescription = "PEM text, certificate file path or base64-encoded DER/PKCS#7 data"

// createTools returns every tool definition bound to h.
//
// The function defines the following tools:
//   - load_certificate: Decodes certificates without storing them
//   - store_certificate: Stores one certificate under an alias
//   - get_certificate: Describes the certificate stored under an alias
//   - remove_certificate: Removes an alias from the store
//   - list_certificates: Lists the store as JSON or a markdown table
//   - export_certificate: Exports one stored certificate as PEM
//   - import_chain: Stores a whole chain under numbered aliases
//   - export_chain: Exports stored certificates as a PEM or PKCS#7 bundle
//   - clear_store: Removes every stored certificate
func createTools(h *toolHandlers) []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("load_certificate",
				mcp.WithDescription("Decode X509 certificates and describe them without storing"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description(certificateDescription),
				),
				mcp.WithString("format",
					mcp.Description("Encoding of a certificate file: 'PEM' or 'DER' (default: configured format, else detect)"),
				),
			),
			Handler: h.handleLoadCertificate,
		},
		{
			Tool: mcp.NewTool("store_certificate",
				mcp.WithDescription("Decode a single X509 certificate and store it under an alias, replacing any previous entry"),
				mcp.WithString("alias",
					mcp.Required(),
					mcp.Description("Non-empty alias to store the certificate under"),
				),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description(certificateDescription),
				),
				mcp.WithString("format",
					mcp.Description("Encoding of a certificate file: 'PEM' or 'DER' (default: configured format, else detect)"),
				),
			),
			Handler: h.handleStoreCertificate,
		},
		{
			Tool: mcp.NewTool("get_certificate",
				mcp.WithDescription("Describe the certificate stored under an alias"),
				mcp.WithString("alias",
					mcp.Required(),
					mcp.Description("Alias of the stored certificate"),
				),
			),
			Handler: h.handleGetCertificate,
		},
		{
			Tool: mcp.NewTool("remove_certificate",
				mcp.WithDescription("Remove the certificate stored under an alias"),
				mcp.WithString("alias",
					mcp.Required(),
					mcp.Description("Alias of the stored certificate"),
				),
			),
			Handler: h.handleRemoveCertificate,
		},
		{
			Tool: mcp.NewTool("list_certificates",
				mcp.WithDescription("List stored certificates in insertion order"),
				mcp.WithString("format",
					mcp.Description("Output format: 'json' or 'table' (default: json)"),
					mcp.DefaultString("json"),
				),
			),
			Handler: h.handleListCertificates,
		},
		{
			Tool: mcp.NewTool("export_certificate",
				mcp.WithDescription("Export the certificate stored under an alias as a PEM block"),
				mcp.WithString("alias",
					mcp.Required(),
					mcp.Description("Alias of the stored certificate"),
				),
			),
			Handler: h.handleExportCertificate,
		},
		{
			Tool: mcp.NewTool("import_chain",
				mcp.WithDescription("Decode a certificate chain and store it as <prefix>-1 .. <prefix>-n"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description(certificateDescription),
				),
				mcp.WithString("prefix",
					mcp.Description("Alias prefix (default: from configuration)"),
				),
			),
			Handler: h.handleImportChain,
		},
		{
			Tool: mcp.NewTool("export_chain",
				mcp.WithDescription("Export stored certificates in the given order as one bundle"),
				mcp.WithString("aliases",
					mcp.Required(),
					mcp.Description("Comma-separated list of aliases"),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'pem' or 'pkcs7' (base64 DER) (default: pem)"),
					mcp.DefaultString("pem"),
				),
			),
			Handler: h.handleExportChain,
		},
		{
			Tool: mcp.NewTool("clear_store",
				mcp.WithDescription("Remove every stored certificate"),
			),
			Handler: h.handleClearStore,
		},
	}
}
