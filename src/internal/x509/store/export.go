// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certstore

import (
	"fmt"

	"go.mozilla.org/pkcs7"

	"github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/certerr"
	x509der "github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/der"
	x509pem "github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/pem"
)

// ExportChainAsPEM concatenates the PEM blocks of the given aliases in order.
// Unlike [MemoryStore.ExportAsPEM], an unknown alias fails with
// [certerr.InvalidAlias].
func (s *MemoryStore) ExportChainAsPEM(aliases ...string) (string, error) {
	certs, err := s.lookup(aliases)
	if err != nil {
		return "", err
	}

	ders := make([][]byte, len(certs))
	for i, cert := range certs {
		ders[i] = cert.Raw()
	}
	storeOps.WithLabelValues(opExport).Inc()
	return x509pem.EncodeBlocks(ders...), nil
}

// ExportChainAsPKCS7 builds a certs-only PKCS#7 SignedData bundle of the
// given aliases in order.
func (s *MemoryStore) ExportChainAsPKCS7(aliases ...string) ([]byte, error) {
	certs, err := s.lookup(aliases)
	if err != nil {
		return nil, err
	}

	var concatenated []byte
	for _, cert := range certs {
		concatenated = append(concatenated, cert.Raw()...)
	}
	bundle, err := pkcs7.DegenerateCertificate(concatenated)
	if err != nil {
		return nil, fmt.Errorf("certstore: building PKCS#7 bundle: %w", err)
	}
	storeOps.WithLabelValues(opExport).Inc()
	return bundle, nil
}

// lookup resolves every alias under one read lock.
func (s *MemoryStore) lookup(aliases []string) ([]*x509der.Certificate, error) {
	if len(aliases) == 0 {
		return nil, certerr.New(certerr.InvalidAlias, "no aliases given")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	certs := make([]*x509der.Certificate, len(aliases))
	for i, alias := range aliases {
		cert, ok := s.entries[alias]
		if !ok {
			return nil, certerr.Newf(certerr.InvalidAlias, "unknown alias %q", alias)
		}
		certs[i] = cert
	}
	return certs, nil
}
