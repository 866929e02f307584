// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "inspect FILE...",
		Short: "Decode certificates and print a summary",
		Long: `Decode every certificate in the given files and print them as a markdown
table, a JSON document or a PEM bundle. Use "-" to read standard input.`,
		Args: requireInput,
		RunE: func(cmd *cobra.Command, args []string) error {
			aliases, err := a.loadAll(cmd, args)
			if err != nil {
				return err
			}
			if output == "" {
				output = a.cfg.Defaults.Output
			}
			return a.render(cmd.OutOrStdout(), output, aliases)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "rendering: table, json or pem (default: from config)")
	return cmd
}

func newChainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chain FILE...",
		Short: "Print certificates as a chain tree",
		Long: `Decode the given files, leaf first, and print them as a tree. Each entry is
marked when its issuer name matches the subject name of the next entry.
Signatures are not verified.`,
		Args: requireInput,
		RunE: func(cmd *cobra.Command, args []string) error {
			aliases, err := a.loadAll(cmd, args)
			if err != nil {
				return err
			}
			tree, err := a.store.RenderTree(aliases...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), tree)
			return err
		},
	}
}

func newSplitCmd(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "split FILE...",
		Short: "Write each certificate into its own PEM file",
		Long: `Decode the given files and write every certificate to DIR/<alias>.pem,
where aliases are numbered in file order starting at 1.`,
		Args: requireInput,
		RunE: func(cmd *cobra.Command, args []string) error {
			aliases, err := a.loadAll(cmd, args)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create %s: %w", dir, err)
			}

			for _, alias := range aliases {
				block, ok := a.store.ExportAsPEM(alias)
				if !ok {
					continue
				}
				path := filepath.Join(dir, alias+".pem")
				if err := writeOutput(nil, path, []byte(block)); err != nil {
					return err
				}
				a.log.Printf("wrote %s", path)
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory receiving the PEM files")
	return cmd
}

func newBundleCmd(a *app) *cobra.Command {
	var (
		out   string
		pkcs7 bool
	)

	cmd := &cobra.Command{
		Use:   "bundle FILE...",
		Short: "Join certificates into one PEM or PKCS#7 bundle",
		Long: `Decode the given files and write all certificates, in input order, as a
PEM bundle or, with --pkcs7, as a DER encoded PKCS#7 certs-only message.`,
		Args: requireInput,
		RunE: func(cmd *cobra.Command, args []string) error {
			aliases, err := a.loadAll(cmd, args)
			if err != nil {
				return err
			}

			var data []byte
			if pkcs7 {
				data, err = a.store.ExportChainAsPKCS7(aliases...)
			} else {
				var bundle string
				bundle, err = a.store.ExportChainAsPEM(aliases...)
				data = []byte(bundle)
			}
			if err != nil {
				return err
			}

			if err := writeOutput(cmd.OutOrStdout(), out, data); err != nil {
				return err
			}
			if out != "" {
				a.log.Printf("wrote %d certificate(s) to %s", len(aliases), out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&pkcs7, "pkcs7", false, "write a DER encoded PKCS#7 bundle")
	return cmd
}
