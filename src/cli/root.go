// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/x509-cert-store/src/config"
	"github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/certerr"
	x509certs "github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/certs"
	x509der "github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/der"
	certstore "github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/store"
	"github.com/H0llyW00dzZ/x509-cert-store/src/logger"
)

// ErrInputFileRequired is returned when a subcommand is run without input files.
var ErrInputFileRequired = errors.New("at least one input file is required")

// stdinPath selects standard input as a certificate source.
const stdinPath = "-"

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfg    *config.Config
	log    logger.Logger
	loader *x509certs.Loader
	store  *certstore.MemoryStore

	configPath  string
	format      string
	aliasPrefix string
}

// NewRootCmd builds the command tree. Diagnostics go to log.
func NewRootCmd(version string, log logger.Logger) *cobra.Command {
	a := &app{
		log:    log,
		loader: x509certs.New(),
		store:  certstore.NewMemoryStore(),
	}

	rootCmd := &cobra.Command{
		Use:               "x509-cert-store",
		Short:             "Decode, catalog and export X.509 certificates",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "configuration file (.json, .yaml, .yml)")
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", "", "input encoding: PEM or DER (default: from config, else detect)")
	rootCmd.PersistentFlags().StringVarP(&a.aliasPrefix, "alias-prefix", "p", "", "alias prefix for loaded certificates (default: file name)")

	rootCmd.AddCommand(
		newInspectCmd(a),
		newChainCmd(a),
		newSplitCmd(a),
		newBundleCmd(a),
	)
	return rootCmd
}

// Execute runs the command tree with args and returns the first error.
func Execute(ctx context.Context, version string, log logger.Logger, args []string) error {
	rootCmd := NewRootCmd(version, log)
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// setup loads the configuration and points the logger at stderr, keeping
// stdout for rendered results.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	switch {
	case cfg.Log.JSON:
		a.log = logger.NewJSONLogger(cmd.ErrOrStderr(), cfg.Log.Silent)
	case cfg.Log.Silent:
		a.log.SetOutput(io.Discard)
	default:
		a.log.SetOutput(cmd.ErrOrStderr())
	}

	if a.format == "" {
		a.format = cfg.Defaults.Format
	}
	if a.format != "" {
		if _, err := x509certs.ParseFormat(a.format); err != nil {
			return err
		}
	}
	return nil
}

// requireInput is a cobra.PositionalArgs rejecting empty argument lists.
func requireInput(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return ErrInputFileRequired
	}
	return nil
}

// load decodes one input. An explicit --format reads exactly one
// certificate; otherwise the encoding is detected.
func (a *app) load(ctx context.Context, cmd *cobra.Command, path string) ([]*x509der.Certificate, error) {
	if path == stdinPath {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, certerr.Wrap(certerr.FileReadFailed, "standard input", err)
		}
		return a.loader.Load(data)
	}

	if a.format != "" {
		cert, err := a.loader.LoadFromFile(ctx, path, a.format)
		if err != nil {
			return nil, err
		}
		return []*x509der.Certificate{cert}, nil
	}
	return a.loader.LoadFile(ctx, path)
}

// loadAll decodes every input into the store and returns the assigned
// aliases in input order. Each file gets its own alias prefix unless
// --alias-prefix names one for the whole invocation. Files sharing a base
// name get numbered prefixes so no certificate is overwritten.
func (a *app) loadAll(cmd *cobra.Command, paths []string) ([]string, error) {
	ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.TimeoutDuration())
	defer cancel()

	var (
		aliases []string
		shared  []*x509der.Certificate
	)
	used := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		certs, err := a.load(ctx, cmd, path)
		if err != nil {
			return nil, err
		}
		a.log.Printf("loaded %d certificate(s) from %s", len(certs), displayPath(path))

		if a.aliasPrefix != "" {
			shared = append(shared, certs...)
			continue
		}
		imported, err := a.store.ImportChain(uniquePrefix(a.prefixFor(path), used), certs)
		if err != nil {
			return nil, err
		}
		aliases = append(aliases, imported...)
	}

	if a.aliasPrefix != "" {
		return a.store.ImportChain(a.aliasPrefix, shared)
	}
	return aliases, nil
}
