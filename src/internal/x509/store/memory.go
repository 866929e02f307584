// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certstore

import (
	"slices"
	"strconv"
	"sync"

	"github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/certerr"
	x509der "github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/der"
	x509pem "github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/pem"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore is an in-memory [Store].
//
// Aliases are listed in insertion order; replacing a certificate keeps the
// alias at its original position.
//
// Thread Safety: Safe for concurrent use. Reads share a lock, mutations are
// exclusive. Use [MemoryStore.Update] for multi-step sequences such as
// add-if-absent.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*x509der.Certificate
	order   []string
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*x509der.Certificate)}
}

// Add stores cert under alias, silently replacing an existing entry.
// An empty alias fails with [certerr.InvalidAlias].
func (s *MemoryStore) Add(alias string, cert *x509der.Certificate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.add(alias, cert)
}

// Get returns the certificate stored under alias.
func (s *MemoryStore) Get(alias string) (*x509der.Certificate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	storeOps.WithLabelValues(opGet).Inc()
	cert, ok := s.entries[alias]
	return cert, ok
}

// Remove deletes alias and reports whether it was present.
func (s *MemoryStore) Remove(alias string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.remove(alias)
}

// Has reports whether alias is present.
func (s *MemoryStore) Has(alias string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.entries[alias]
	return ok
}

// List returns the aliases in insertion order.
func (s *MemoryStore) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.order)
}

// Count returns the number of stored certificates.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// Clear removes every certificate.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	storeOps.WithLabelValues(opClear).Inc()
	clear(s.entries)
	s.order = nil
}

// ExportAsPEM returns the PEM block of the certificate stored under alias,
// encoded from its original DER.
func (s *MemoryStore) ExportAsPEM(alias string) (string, bool) {
	s.mu.RLock()
	cert, ok := s.entries[alias]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	storeOps.WithLabelValues(opExport).Inc()
	return x509pem.EncodeBlock(cert.Raw()), true
}

// ImportChain adds certs under "prefix-1" .. "prefix-n" in one exclusive
// step and returns the generated aliases. Existing entries with those aliases
// are replaced.
func (s *MemoryStore) ImportChain(prefix string, certs []*x509der.Certificate) ([]string, error) {
	if prefix == "" {
		return nil, certerr.New(certerr.InvalidAlias, "empty alias prefix")
	}
	for i, cert := range certs {
		if cert == nil {
			return nil, certerr.Newf(certerr.EmptyInput, "nil certificate at position %d", i+1)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	storeOps.WithLabelValues(opImport).Inc()
	aliases := make([]string, 0, len(certs))
	for i, cert := range certs {
		alias := prefix + "-" + strconv.Itoa(i+1)
		if err := s.add(alias, cert); err != nil {
			return nil, err
		}
		aliases = append(aliases, alias)
	}
	return aliases, nil
}

// All returns a snapshot of every entry in insertion order.
func (s *MemoryStore) All() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Entry, len(s.order))
	for i, alias := range s.order {
		entries[i] = Entry{Alias: alias, Cert: s.entries[alias]}
	}
	return entries
}

// Update runs fn under the exclusive lock, so that a sequence of reads and
// writes through tx is atomic with respect to other callers. Changes made
// before fn returns an error are kept.
func (s *MemoryStore) Update(fn func(tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(&tx{s: s})
}

func (s *MemoryStore) add(alias string, cert *x509der.Certificate) error {
	if alias == "" {
		return certerr.New(certerr.InvalidAlias, "empty alias")
	}
	if cert == nil {
		return certerr.Newf(certerr.EmptyInput, "nil certificate for alias %q", alias)
	}

	storeOps.WithLabelValues(opAdd).Inc()
	if _, exists := s.entries[alias]; !exists {
		s.order = append(s.order, alias)
	}
	s.entries[alias] = cert
	return nil
}

func (s *MemoryStore) remove(alias string) bool {
	if _, ok := s.entries[alias]; !ok {
		return false
	}

	storeOps.WithLabelValues(opRemove).Inc()
	delete(s.entries, alias)
	if i := slices.Index(s.order, alias); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return true
}

// tx accesses the store without locking; the caller holds s.mu.
type tx struct{ s *MemoryStore }

func (t *tx) Add(alias string, cert *x509der.Certificate) error { return t.s.add(alias, cert) }
func (t *tx) Remove(alias string) bool                          { return t.s.remove(alias) }
func (t *tx) Count() int                                        { return len(t.s.entries) }

func (t *tx) Get(alias string) (*x509der.Certificate, bool) {
	cert, ok := t.s.entries[alias]
	return cert, ok
}

func (t *tx) Has(alias string) bool {
	_, ok := t.s.entries[alias]
	return ok
}
