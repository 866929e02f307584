// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// mcp-server serves the X.509 certificate store to MCP clients over stdio.
//
// Usage:
//
//	mcp-server [--config FILE]
//
// X509_CERT_STORE_CONFIG names the configuration file when --config is not given.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcpserver "github.com/H0llyW00dzZ/x509-cert-store/src/mcp-server"
	"github.com/H0llyW00dzZ/x509-cert-store/src/version"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "mcp-server",
		Short:         "MCP server for the X.509 certificate store",
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := mcpserver.Run(cmd.Context(), version.Version, configPath)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "configuration file (.json, .yaml, .yml)")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
