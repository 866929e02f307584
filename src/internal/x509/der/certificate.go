// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509der

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"math/big"
	"slices"
	"time"
)

// AlgorithmIdentifier names an algorithm by OID, with a display name when
// the OID is known.
type AlgorithmIdentifier struct {
	OID  string
	Name string
}

// String returns the display name, or the OID if the algorithm is unknown.
func (a AlgorithmIdentifier) String() string {
	if a.Name != "" {
		return a.Name
	}
	return a.OID
}

// Certificate is a decoded X.509 certificate. It is created only by [Decode]
// and never changes afterwards; accessors return copies of any mutable data.
type Certificate struct {
	raw           []byte
	version       int
	serial        *big.Int
	sigAlg        AlgorithmIdentifier
	issuer        Name
	subject       Name
	notBefore     time.Time
	notAfter      time.Time
	pubKeyAlg     AlgorithmIdentifier
	hasExtensions bool
	signature     []byte
	fingerprint   [sha256.Size]byte
}

// Version returns the certificate version: 1, 2 or 3.
func (c *Certificate) Version() int { return c.version }

// SerialNumber returns a copy of the serial number.
func (c *Certificate) SerialNumber() *big.Int { return new(big.Int).Set(c.serial) }

// SerialDecimal returns the serial number in canonical decimal form.
func (c *Certificate) SerialDecimal() string { return c.serial.String() }

// SerialBytes returns the serial number as unsigned big-endian bytes.
func (c *Certificate) SerialBytes() []byte { return c.serial.Bytes() }

// SignatureAlgorithm returns the outer signatureAlgorithm.
func (c *Certificate) SignatureAlgorithm() AlgorithmIdentifier { return c.sigAlg }

// PublicKeyAlgorithm returns the algorithm of subjectPublicKeyInfo.
func (c *Certificate) PublicKeyAlgorithm() AlgorithmIdentifier { return c.pubKeyAlg }

// Issuer returns a copy of the issuer name.
func (c *Certificate) Issuer() Name { return slices.Clone(c.issuer) }

// Subject returns a copy of the subject name.
func (c *Certificate) Subject() Name { return slices.Clone(c.subject) }

// NotBefore returns the start of the validity window in UTC.
func (c *Certificate) NotBefore() time.Time { return c.notBefore }

// NotAfter returns the end of the validity window in UTC.
func (c *Certificate) NotAfter() time.Time { return c.notAfter }

// HasExtensions reports whether the certificate carries an extensions field.
func (c *Certificate) HasExtensions() bool { return c.hasExtensions }

// Signature returns a copy of the signature value bits.
func (c *Certificate) Signature() []byte { return bytes.Clone(c.signature) }

// Raw returns a copy of the complete DER encoding the certificate was decoded from.
func (c *Certificate) Raw() []byte { return bytes.Clone(c.raw) }

// Fingerprint returns the lowercase hex SHA-256 digest of the DER encoding.
func (c *Certificate) Fingerprint() string { return hex.EncodeToString(c.fingerprint[:]) }

// Equal reports whether c and other were decoded from identical DER bytes.
func (c *Certificate) Equal(other *Certificate) bool {
	if c == nil || other == nil {
		return c == other
	}
	return bytes.Equal(c.raw, other.raw)
}
