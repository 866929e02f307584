// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certerr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failure.
type Kind uint8

const (
	// Unknown is the Kind reported by [KindOf] for errors outside this taxonomy.
	Unknown Kind = iota
	// EmptyInput indicates zero-length PEM text or DER bytes.
	EmptyInput
	// InvalidPEMFormat indicates that no well-formed BEGIN/END marker pair was found,
	// or that the armored body is not valid Base64.
	InvalidPEMFormat
	// NoCertificateFound indicates that a chain split found zero PEM blocks.
	NoCertificateFound
	// MalformedEncoding indicates an ASN.1 TLV framing violation (truncation,
	// non-canonical or indefinite length).
	MalformedEncoding
	// UnsupportedStructure indicates well-formed ASN.1 that does not match the
	// Certificate grammar.
	UnsupportedStructure
	// ParseFailed wraps any failure of a single-certificate load.
	ParseFailed
	// ChainParseFailed wraps the first failure of a chain load.
	ChainParseFailed
	// FileNotFound indicates that a path does not resolve to a readable file.
	FileNotFound
	// FileReadFailed indicates an I/O error while reading a certificate file.
	FileReadFailed
	// UnsupportedFormat indicates a format other than PEM or DER.
	UnsupportedFormat
	// InvalidAlias indicates an empty alias given to a store.
	InvalidAlias
)

var kindNames = [...]string{
	Unknown:              "unknown error",
	EmptyInput:           "empty input",
	InvalidPEMFormat:     "invalid PEM format",
	NoCertificateFound:   "no certificate found",
	MalformedEncoding:    "malformed encoding",
	UnsupportedStructure: "unsupported structure",
	ParseFailed:          "parse failed",
	ChainParseFailed:     "chain parse failed",
	FileNotFound:         "file not found",
	FileReadFailed:       "file read failed",
	UnsupportedFormat:    "unsupported format",
	InvalidAlias:         "invalid alias",
}

// String returns the human readable name of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Error implements the error interface so that a Kind can be used as an
// [errors.Is] target.
func (k Kind) Error() string { return "x509certstore: " + k.String() }

// Error is a classified failure carrying an optional underlying cause.
type Error struct {
	Kind   Kind
	Reason string // Short diagnostic, e.g. "indefinite length"
	Offset int    // Byte offset of the failure inside DER input, or -1
	Err    error  // Underlying cause, may be nil
}

// New returns an *Error of the given kind without a cause.
func New(kind Kind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason, Offset: -1}
}

// Newf is like New with a formatted reason.
func Newf(kind Kind, format string, args ...any) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// Wrap returns an *Error of the given kind wrapping err.
func Wrap(kind Kind, reason string, err error) *Error {
	return &Error{Kind: kind, Reason: reason, Offset: -1, Err: err}
}

// AtOffset returns an *Error of the given kind located at a DER byte offset.
func AtOffset(kind Kind, offset int, reason string) *Error {
	return &Error{Kind: kind, Reason: reason, Offset: offset}
}

// Error formats the failure as "x509certstore: <kind>: <reason> at offset N: <cause>".
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the Kind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// KindOf returns the Kind of the outermost *Error in err's chain,
// or [Unknown] if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}
	return Unknown
}
