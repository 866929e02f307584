// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certstore

import (
	"fmt"
	"strings"

	x509der "github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/der"
)

// Link marks how a chain entry relates to the entry after it.
const (
	LinkOK     = "✓"
	LinkBroken = "✗"
)

// RenderTree renders aliases, leaf first, as an ASCII tree. Each line is
// marked [LinkOK] when the issuer name equals the subject name of the next
// entry, or of the entry itself for the last one. Only names are compared;
// signatures are not checked.
//
// An unknown alias or an empty list fails with [certerr.InvalidAlias].
func (s *MemoryStore) RenderTree(aliases ...string) (string, error) {
	certs, err := s.lookup(aliases)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, cert := range certs {
		connector := "├── "
		if i == len(certs)-1 {
			connector = "└── "
		}

		fmt.Fprintf(&b, "%s[%s] %s: %s (%s)\n",
			connector, linkStatus(certs, i), aliases[i], displayName(cert.Subject()), chainRole(i, len(certs)))
	}
	return b.String(), nil
}

func linkStatus(certs []*x509der.Certificate, i int) string {
	issuer := certs[i].Issuer().String()
	next := certs[i]
	if i+1 < len(certs) {
		next = certs[i+1]
	}
	if issuer == next.Subject().String() {
		return LinkOK
	}
	return LinkBroken
}

func chainRole(index, total int) string {
	switch {
	case total == 1:
		return "Self-Signed Certificate"
	case index == 0:
		return "End-Entity Certificate"
	case index == total-1:
		return "Root CA Certificate"
	default:
		return "Intermediate CA Certificate"
	}
}

// displayName prefers the common name and falls back to the full DN.
func displayName(n x509der.Name) string {
	if cn := n.CommonName(); cn != "" {
		return cn
	}
	return n.String()
}
