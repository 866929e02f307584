// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/certerr"
	x509der "github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/der"
	x509pem "github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/pem"
)

// Format is an on-disk certificate encoding.
type Format string

const (
	FormatPEM Format = "PEM"
	FormatDER Format = "DER"
)

// ParseFormat resolves a case-insensitive format name.
// Anything other than PEM or DER fails with [certerr.UnsupportedFormat].
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToUpper(strings.TrimSpace(name))); f {
	case FormatPEM, FormatDER:
		return f, nil
	default:
		return "", certerr.Newf(certerr.UnsupportedFormat, "format %q, expected PEM or DER", name)
	}
}

// Loader turns raw certificate material into decoded certificates.
//
// A Loader holds no mutable state and is safe for concurrent use.
type Loader struct {
	files FileSource
}

// Option configures a [Loader].
type Option func(*Loader)

// WithFileSource replaces the file collaborator used by [Loader.LoadFromFile].
func WithFileSource(fs FileSource) Option {
	return func(l *Loader) { l.files = fs }
}

// New creates a Loader reading files from the local filesystem by default.
func New(opts ...Option) *Loader {
	l := &Loader{files: OSFiles{}}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFromPEM decodes the first certificate block of text.
//
// Returns [certerr.EmptyInput] for empty text; any other failure is wrapped
// as [certerr.ParseFailed].
func (l *Loader) LoadFromPEM(text string) (*x509der.Certificate, error) {
	if text == "" {
		return nil, certerr.New(certerr.EmptyInput, "empty PEM text")
	}

	der, err := x509pem.DecodeBlock(text)
	if err != nil {
		decodesTotal.WithLabelValues(sourcePEM, resultFailure).Inc()
		return nil, certerr.Wrap(certerr.ParseFailed, "PEM certificate", err)
	}
	cert, err := x509der.Decode(der)
	if err != nil {
		decodesTotal.WithLabelValues(sourcePEM, resultFailure).Inc()
		return nil, certerr.Wrap(certerr.ParseFailed, "PEM certificate", err)
	}

	decodesTotal.WithLabelValues(sourcePEM, resultSuccess).Inc()
	return cert, nil
}

// LoadFromDER decodes a single DER certificate.
//
// Returns [certerr.EmptyInput] for empty input; any other failure is wrapped
// as [certerr.ParseFailed].
func (l *Loader) LoadFromDER(der []byte) (*x509der.Certificate, error) {
	if len(der) == 0 {
		return nil, certerr.New(certerr.EmptyInput, "empty DER input")
	}

	cert, err := x509der.Decode(der)
	if err != nil {
		decodesTotal.WithLabelValues(sourceDER, resultFailure).Inc()
		return nil, certerr.Wrap(certerr.ParseFailed, "DER certificate", err)
	}

	decodesTotal.WithLabelValues(sourceDER, resultSuccess).Inc()
	return cert, nil
}

// LoadFromFile reads path through the file collaborator and decodes it as
// format ("PEM" or "DER", case-insensitive).
//
// Parameters:
//   - ctx: Cancels the file read
//   - path: File to read; not validated beyond the collaborator's checks
//   - format: Encoding of the file
//
// Returns:
//   - *x509der.Certificate: Decoded certificate
//   - error: [certerr.FileNotFound], [certerr.FileReadFailed],
//     [certerr.UnsupportedFormat] or a load failure
func (l *Loader) LoadFromFile(ctx context.Context, path, format string) (*x509der.Certificate, error) {
	data, err := l.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	if f == FormatDER {
		return l.LoadFromDER(data)
	}
	return l.LoadFromPEM(string(data))
}

// ReadFile reads path through the file collaborator, classifying failures as
// [certerr.FileNotFound] or [certerr.FileReadFailed].
func (l *Loader) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if !l.files.Exists(path) {
		return nil, certerr.Newf(certerr.FileNotFound, "%s", path)
	}

	data, err := l.files.ReadAll(ctx, path)
	if err != nil {
		if errors.Is(err, certerr.FileNotFound) {
			return nil, err
		}
		return nil, certerr.Wrap(certerr.FileReadFailed, path, err)
	}
	return data, nil
}

// LoadChain decodes every certificate block of text in order.
//
// Returns [certerr.EmptyInput] for empty text. Any other failure, including
// text without a single block, is wrapped as [certerr.ChainParseFailed]
// around the first underlying cause. No partial chain is returned.
func (l *Loader) LoadChain(text string) ([]*x509der.Certificate, error) {
	if text == "" {
		return nil, certerr.New(certerr.EmptyInput, "empty PEM chain")
	}

	blocks, err := x509pem.SplitBlocks(text)
	if err != nil {
		return nil, certerr.Wrap(certerr.ChainParseFailed, "PEM chain", err)
	}

	certs := make([]*x509der.Certificate, 0, blocks.Len())
	for i, block := range blocks.All() {
		cert, err := l.LoadFromPEM(block)
		if err != nil {
			return nil, certerr.Wrap(certerr.ChainParseFailed,
				fmt.Sprintf("certificate %d of %d", i+1, blocks.Len()), err)
		}
		certs = append(certs, cert)
	}
	return certs, nil
}

// Load decodes data of unknown encoding: PEM text is loaded as a chain,
// anything else as a single DER certificate and then as a PKCS#7 bundle.
// The DER failure is reported when both binary forms fail.
func (l *Loader) Load(data []byte) ([]*x509der.Certificate, error) {
	if len(data) == 0 {
		return nil, certerr.New(certerr.EmptyInput, "no certificate data")
	}

	if x509pem.HasBlock(string(data)) {
		return l.LoadChain(string(data))
	}

	cert, derErr := l.LoadFromDER(data)
	if derErr == nil {
		return []*x509der.Certificate{cert}, nil
	}
	if certs, err := l.LoadPKCS7(data); err == nil {
		return certs, nil
	}
	return nil, derErr
}

// LoadFile reads path and decodes it with [Loader.Load].
func (l *Loader) LoadFile(ctx context.Context, path string) ([]*x509der.Certificate, error) {
	data, err := l.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return l.Load(data)
}
