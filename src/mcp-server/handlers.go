// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/samber/lo"

	"github.com/H0llyW00dzZ/x509-cert-store/src/config"
	"github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/certerr"
	x509certs "github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/certs"
	x509der "github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/der"
	x509pem "github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/pem"
	certstore "github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/store"
	"github.com/H0llyW00dzZ/x509-cert-store/src/logger"
)

// toolHandlers holds the state shared by every tool of one server.
type toolHandlers struct {
	cfg    *config.Config
	loader *x509certs.Loader
	store  *certstore.MemoryStore
	log    logger.Logger
}

func newToolHandlers(cfg *config.Config, log logger.Logger) *toolHandlers {
	return &toolHandlers{
		cfg:    cfg,
		loader: x509certs.New(),
		store:  certstore.NewMemoryStore(),
		log:    log,
	}
}

// decode resolves input as PEM text, then as a file path, then as base64 DER.
// format only applies to files and selects a single-certificate load; when
// empty the configured default format is used.
func (h *toolHandlers) decode(ctx context.Context, input, format string) ([]*x509der.Certificate, error) {
	if x509pem.HasBlock(input) {
		return h.loader.LoadChain(input)
	}

	ctx, cancel := context.WithTimeout(ctx, h.cfg.TimeoutDuration())
	defer cancel()

	data, err := h.loader.ReadFile(ctx, input)
	switch {
	case err == nil:
		return h.decodeFile(data, format)
	case certerr.KindOf(err) != certerr.FileNotFound:
		return nil, err
	}

	der, decErr := base64.StdEncoding.DecodeString(strings.TrimSpace(input))
	if decErr != nil {
		return nil, certerr.New(certerr.FileNotFound, "input is not PEM text, a readable file or base64 data")
	}
	return h.loader.Load(der)
}

func (h *toolHandlers) decodeFile(data []byte, format string) ([]*x509der.Certificate, error) {
	if format == "" {
		format = h.cfg.Defaults.Format
	}
	if format == "" {
		return h.loader.Load(data)
	}

	f, err := x509certs.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	var cert *x509der.Certificate
	if f == x509certs.FormatPEM {
		cert, err = h.loader.LoadFromPEM(string(data))
	} else {
		cert, err = h.loader.LoadFromDER(data)
	}
	if err != nil {
		return nil, err
	}
	return []*x509der.Certificate{cert}, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// handleLoadCertificate decodes certificates without storing them.
func (h *toolHandlers) handleLoadCertificate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}

	certs, err := h.decode(ctx, input, request.GetString("format", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load certificate: %v", err)), nil
	}

	return jsonResult(lo.Map(certs, func(cert *x509der.Certificate, _ int) certstore.Summary {
		return certstore.Summarize("", cert)
	}))
}

// handleStoreCertificate stores exactly one certificate under alias.
func (h *toolHandlers) handleStoreCertificate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	alias, err := request.RequireString("alias")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("alias parameter required: %v", err)), nil
	}
	input, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}

	certs, err := h.decode(ctx, input, request.GetString("format", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load certificate: %v", err)), nil
	}
	if len(certs) != 1 {
		return mcp.NewToolResultError(fmt.Sprintf("input holds %d certificates, use import_chain", len(certs))), nil
	}

	if err := h.store.Add(alias, certs[0]); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to store certificate: %v", err)), nil
	}
	h.log.Printf("stored certificate %q", alias)
	return jsonResult(certstore.Summarize(alias, certs[0]))
}

func (h *toolHandlers) handleGetCertificate(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	alias, err := request.RequireString("alias")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("alias parameter required: %v", err)), nil
	}

	cert, ok := h.store.Get(alias)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no certificate stored under %q", alias)), nil
	}
	return jsonResult(certstore.Summarize(alias, cert))
}

func (h *toolHandlers) handleRemoveCertificate(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	alias, err := request.RequireString("alias")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("alias parameter required: %v", err)), nil
	}

	if !h.store.Remove(alias) {
		return mcp.NewToolResultError(fmt.Sprintf("no certificate stored under %q", alias)), nil
	}
	h.log.Printf("removed certificate %q", alias)
	return mcp.NewToolResultText(fmt.Sprintf("removed %q", alias)), nil
}

func (h *toolHandlers) handleListCertificates(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	switch format := request.GetString("format", "json"); format {
	case "table":
		return mcp.NewToolResultText(h.store.RenderTable()), nil
	case "json":
		data, err := h.store.ToJSON()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode store: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format %q: want table or json", format)), nil
	}
}

func (h *toolHandlers) handleExportCertificate(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	alias, err := request.RequireString("alias")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("alias parameter required: %v", err)), nil
	}

	block, ok := h.store.ExportAsPEM(alias)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no certificate stored under %q", alias)), nil
	}
	return mcp.NewToolResultText(block), nil
}

// handleImportChain stores every certificate of input as prefix-1..prefix-n.
func (h *toolHandlers) handleImportChain(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}
	prefix := request.GetString("prefix", h.cfg.Defaults.AliasPrefix)

	certs, err := h.decode(ctx, input, "")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load chain: %v", err)), nil
	}

	aliases, err := h.store.ImportChain(prefix, certs)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to import chain: %v", err)), nil
	}
	h.log.Printf("imported %d certificate(s) under prefix %q", len(aliases), prefix)
	return jsonResult(map[string]any{"count": len(aliases), "aliases": aliases})
}

// handleExportChain exports aliases in the given order as PEM or base64 PKCS#7.
func (h *toolHandlers) handleExportChain(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := request.RequireString("aliases")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("aliases parameter required: %v", err)), nil
	}
	aliases := lo.FilterMap(strings.Split(list, ","), func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})

	switch format := request.GetString("format", "pem"); format {
	case "pem":
		bundle, err := h.store.ExportChainAsPEM(aliases...)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to export chain: %v", err)), nil
		}
		return mcp.NewToolResultText(bundle), nil
	case "pkcs7":
		der, err := h.store.ExportChainAsPKCS7(aliases...)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to export chain: %v", err)), nil
		}
		return mcp.NewToolResultText(base64.StdEncoding.EncodeToString(der)), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format %q: want pem or pkcs7", format)), nil
	}
}

func (h *toolHandlers) handleClearStore(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n := h.store.Count()
	h.store.Clear()
	h.log.Printf("cleared %d certificate(s)", n)
	return mcp.NewToolResultText(fmt.Sprintf("cleared %d certificate(s)", n)), nil
}
