// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Output renderings accepted by --output.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputPEM   = "pem"
)

// prefixFor derives an alias prefix from the base name of path.
func (a *app) prefixFor(path string) string {
	if path == stdinPath {
		return a.cfg.Defaults.AliasPrefix
	}
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return a.cfg.Defaults.AliasPrefix
	}
	return name
}

// uniquePrefix returns prefix, or prefix-2, prefix-3 and so on when an
// earlier input already took it, and records the result in used.
func uniquePrefix(prefix string, used map[string]struct{}) string {
	candidate := prefix
	for n := 2; ; n++ {
		if _, taken := used[candidate]; !taken {
			break
		}
		candidate = prefix + "-" + strconv.Itoa(n)
	}
	used[candidate] = struct{}{}
	return candidate
}

func displayPath(path string) string {
	if path == stdinPath {
		return "standard input"
	}
	return path
}

// render writes the listed aliases to w in the requested rendering.
func (a *app) render(w io.Writer, output string, aliases []string) error {
	switch strings.ToLower(output) {
	case outputTable:
		_, err := fmt.Fprintln(w, a.store.RenderTable())
		return err
	case outputJSON:
		data, err := a.store.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case outputPEM:
		bundle, err := a.store.ExportChainAsPEM(aliases...)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, bundle)
		return err
	default:
		return fmt.Errorf("unsupported output %q: want table, json or pem", output)
	}
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
