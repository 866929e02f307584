// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certstore

import (
	x509der "github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/der"
)

// Store is an alias-keyed certificate catalog.
type Store interface {
	// Add stores cert under alias, replacing any previous certificate.
	Add(alias string, cert *x509der.Certificate) error
	// Get returns the certificate stored under alias.
	Get(alias string) (*x509der.Certificate, bool)
	// Remove deletes alias and reports whether it was present.
	Remove(alias string) bool
	// Has reports whether alias is present.
	Has(alias string) bool
	// List returns all aliases.
	List() []string
	// Count returns the number of stored certificates.
	Count() int
	// Clear removes every certificate.
	Clear()
	// ExportAsPEM returns the PEM block of the certificate stored under alias.
	ExportAsPEM(alias string) (string, bool)
	// ImportChain adds certs under "prefix-1" .. "prefix-n" and returns those aliases.
	ImportChain(prefix string, certs []*x509der.Certificate) ([]string, error)
}

// Tx is the view of a store inside [MemoryStore.Update]. Its methods must
// not be used after the update function returns.
type Tx interface {
	Add(alias string, cert *x509der.Certificate) error
	Get(alias string) (*x509der.Certificate, bool)
	Remove(alias string) bool
	Has(alias string) bool
	Count() int
}

// Entry pairs an alias with its certificate.
type Entry struct {
	Alias string
	Cert  *x509der.Certificate
}
