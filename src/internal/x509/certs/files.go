// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/H0llyW00dzZ/x509-cert-store/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/certerr"
)

// FileSource supplies raw bytes to a [Loader]. Implementations do their own
// path handling; the Loader performs no validation.
type FileSource interface {
	// Exists reports whether path resolves to a readable regular file.
	Exists(path string) bool
	// ReadAll returns the complete contents of path.
	ReadAll(ctx context.Context, path string) ([]byte, error)
}

// OSFiles is the [FileSource] backed by the local filesystem.
type OSFiles struct{}

// Exists reports whether path is a regular file.
func (OSFiles) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ReadAll reads path into a pooled buffer. The read stops early when ctx is
// cancelled, and the file is closed on every path.
func (OSFiles) ReadAll(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, certerr.Wrap(certerr.FileNotFound, path, err)
		}
		return nil, err
	}
	defer f.Close()

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if _, err := buf.ReadFrom(&ctxReader{ctx: ctx, r: f}); err != nil {
		return nil, err
	}
	return bytes.Clone(buf.Bytes()), nil
}

// ctxReader fails reads once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
