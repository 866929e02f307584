// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509der

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	x509asn1 "github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/asn1"
	"github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/certerr"
)

// Decode parses a single DER encoded certificate.
//
// The input is copied; later changes to der do not affect the result.
//
// Parameters:
//   - der: Complete DER encoding of one Certificate, with no trailing data
//
// Returns:
//   - *Certificate: Decoded certificate
//   - error: [certerr.EmptyInput], [certerr.MalformedEncoding] or [certerr.UnsupportedStructure]
//
// Thread Safety: Safe for concurrent use.
func Decode(der []byte) (*Certificate, error) {
	if len(der) == 0 {
		return nil, certerr.New(certerr.EmptyInput, "no DER bytes")
	}
	buf := bytes.Clone(der)

	outer, err := x509asn1.ReadNode(buf, 0)
	if err != nil {
		return nil, err
	}
	if err := expectSequence(outer, "Certificate"); err != nil {
		return nil, err
	}
	if outer.Next != len(buf) {
		return nil, certerr.AtOffset(certerr.MalformedEncoding, outer.Next,
			fmt.Sprintf("%d trailing bytes after certificate", len(buf)-outer.Next))
	}

	parts, err := x509asn1.Children(buf, outer)
	if err != nil {
		return nil, err
	}
	if len(parts) != 3 {
		return nil, certerr.AtOffset(certerr.UnsupportedStructure, outer.Offset,
			fmt.Sprintf("Certificate has %d elements, expected 3", len(parts)))
	}
	tbs, sigAlgNode, sigNode := parts[0], parts[1], parts[2]

	if err := expectSequence(tbs, "tbsCertificate"); err != nil {
		return nil, err
	}
	cert := &Certificate{raw: buf}
	innerSigAlg, err := decodeTBS(buf, tbs, cert)
	if err != nil {
		return nil, err
	}

	if err := expectSequence(sigAlgNode, "signatureAlgorithm"); err != nil {
		return nil, err
	}
	// Both identifiers must be the same encoding.
	if !bytes.Equal(innerSigAlg.Raw, sigAlgNode.Raw) {
		return nil, certerr.AtOffset(certerr.UnsupportedStructure, sigAlgNode.Offset,
			"signatureAlgorithm does not match tbsCertificate signature")
	}
	if cert.sigAlg, err = parseAlgorithm(buf, sigAlgNode, SignatureAlgorithmName); err != nil {
		return nil, err
	}

	if !sigNode.IsUniversal(x509asn1.TagBitString) {
		return nil, mismatch(sigNode, "signatureValue", "BIT STRING")
	}
	sig, _, err := x509asn1.ParseBitString(sigNode)
	if err != nil {
		return nil, err
	}
	cert.signature = sig
	cert.fingerprint = sha256.Sum256(buf)
	return cert, nil
}

// decodeTBS fills cert from the tbsCertificate fields and returns the inner
// signature AlgorithmIdentifier node.
func decodeTBS(buf []byte, tbs x509asn1.Node, cert *Certificate) (x509asn1.Node, error) {
	nodes, err := x509asn1.Children(buf, tbs)
	if err != nil {
		return x509asn1.Node{}, err
	}
	f := &fields{nodes: nodes, end: tbs.Next}

	cert.version = 1
	if n, ok := f.optional(0); ok {
		if cert.version, err = parseVersion(buf, n); err != nil {
			return x509asn1.Node{}, err
		}
	}

	serialNode, err := f.next("serialNumber", x509asn1.TagInteger)
	if err != nil {
		return x509asn1.Node{}, err
	}
	if cert.serial, err = x509asn1.ParseInteger(serialNode); err != nil {
		return x509asn1.Node{}, err
	}
	if cert.serial.Sign() < 0 {
		return x509asn1.Node{}, certerr.AtOffset(certerr.UnsupportedStructure, serialNode.Offset,
			"negative serialNumber")
	}

	sigAlgNode, err := f.next("signature", x509asn1.TagSequence)
	if err != nil {
		return x509asn1.Node{}, err
	}

	issuerNode, err := f.next("issuer", x509asn1.TagSequence)
	if err != nil {
		return x509asn1.Node{}, err
	}
	if cert.issuer, err = parseName(buf, issuerNode, "issuer"); err != nil {
		return x509asn1.Node{}, err
	}

	validityNode, err := f.next("validity", x509asn1.TagSequence)
	if err != nil {
		return x509asn1.Node{}, err
	}
	if err := parseValidity(buf, validityNode, cert); err != nil {
		return x509asn1.Node{}, err
	}

	subjectNode, err := f.next("subject", x509asn1.TagSequence)
	if err != nil {
		return x509asn1.Node{}, err
	}
	if cert.subject, err = parseName(buf, subjectNode, "subject"); err != nil {
		return x509asn1.Node{}, err
	}

	spkiNode, err := f.next("subjectPublicKeyInfo", x509asn1.TagSequence)
	if err != nil {
		return x509asn1.Node{}, err
	}
	if cert.pubKeyAlg, err = parseSPKI(buf, spkiNode); err != nil {
		return x509asn1.Node{}, err
	}

	uniqueIDs := []struct {
		tag  int
		name string
	}{
		{1, "issuerUniqueID"},
		{2, "subjectUniqueID"},
	}
	for _, uid := range uniqueIDs {
		n, ok := f.optional(uid.tag)
		if ok && cert.version < 2 {
			return x509asn1.Node{}, certerr.AtOffset(certerr.UnsupportedStructure, n.Offset,
				fmt.Sprintf("%s requires version 2 or 3, got %d", uid.name, cert.version))
		}
	}

	if n, ok := f.optional(3); ok {
		if cert.version != 3 {
			return x509asn1.Node{}, certerr.AtOffset(certerr.UnsupportedStructure, n.Offset,
				fmt.Sprintf("extensions require version 3, got %d", cert.version))
		}
		if err := checkExtensions(buf, n); err != nil {
			return x509asn1.Node{}, err
		}
		cert.hasExtensions = true
	}

	if err := f.done(); err != nil {
		return x509asn1.Node{}, err
	}
	return sigAlgNode, nil
}

// parseVersion decodes [0] EXPLICIT Version.
func parseVersion(buf []byte, n x509asn1.Node) (int, error) {
	if !n.Constructed {
		return 0, mismatch(n, "version", "constructed [0]")
	}
	inner, err := x509asn1.Children(buf, n)
	if err != nil {
		return 0, err
	}
	if len(inner) != 1 {
		return 0, certerr.AtOffset(certerr.UnsupportedStructure, n.Offset, "version must wrap exactly one INTEGER")
	}
	v, err := x509asn1.ParseInteger(inner[0])
	if err != nil {
		return 0, err
	}
	if !v.IsInt64() || v.Int64() < 0 || v.Int64() > 2 {
		return 0, certerr.AtOffset(certerr.UnsupportedStructure, inner[0].Offset,
			fmt.Sprintf("unsupported version %s", v))
	}
	return int(v.Int64()) + 1, nil
}

// parseAlgorithm decodes AlgorithmIdentifier ::= SEQUENCE { algorithm OID, parameters ANY OPTIONAL }.
func parseAlgorithm(buf []byte, n x509asn1.Node, names func(string) string) (AlgorithmIdentifier, error) {
	parts, err := x509asn1.Children(buf, n)
	if err != nil {
		return AlgorithmIdentifier{}, err
	}
	if len(parts) < 1 || len(parts) > 2 {
		return AlgorithmIdentifier{}, certerr.AtOffset(certerr.UnsupportedStructure, n.Offset,
			fmt.Sprintf("AlgorithmIdentifier has %d elements", len(parts)))
	}
	if !parts[0].IsUniversal(x509asn1.TagOID) {
		return AlgorithmIdentifier{}, mismatch(parts[0], "algorithm", "OBJECT IDENTIFIER")
	}
	oid, err := x509asn1.ParseOID(parts[0])
	if err != nil {
		return AlgorithmIdentifier{}, err
	}
	return AlgorithmIdentifier{OID: oid, Name: names(oid)}, nil
}

func parseValidity(buf []byte, n x509asn1.Node, cert *Certificate) error {
	times, err := x509asn1.Children(buf, n)
	if err != nil {
		return err
	}
	if len(times) != 2 {
		return certerr.AtOffset(certerr.UnsupportedStructure, n.Offset,
			fmt.Sprintf("validity has %d elements, expected 2", len(times)))
	}
	if cert.notBefore, err = x509asn1.ParseTime(times[0]); err != nil {
		return err
	}
	if cert.notAfter, err = x509asn1.ParseTime(times[1]); err != nil {
		return err
	}
	return nil
}

// parseSPKI decodes SubjectPublicKeyInfo ::= SEQUENCE { algorithm, subjectPublicKey BIT STRING }.
// The key itself is only checked for framing.
func parseSPKI(buf []byte, n x509asn1.Node) (AlgorithmIdentifier, error) {
	parts, err := x509asn1.Children(buf, n)
	if err != nil {
		return AlgorithmIdentifier{}, err
	}
	if len(parts) != 2 {
		return AlgorithmIdentifier{}, certerr.AtOffset(certerr.UnsupportedStructure, n.Offset,
			fmt.Sprintf("subjectPublicKeyInfo has %d elements, expected 2", len(parts)))
	}
	if err := expectSequence(parts[0], "subjectPublicKeyInfo algorithm"); err != nil {
		return AlgorithmIdentifier{}, err
	}
	alg, err := parseAlgorithm(buf, parts[0], PublicKeyAlgorithmName)
	if err != nil {
		return AlgorithmIdentifier{}, err
	}
	if !parts[1].IsUniversal(x509asn1.TagBitString) {
		return AlgorithmIdentifier{}, mismatch(parts[1], "subjectPublicKey", "BIT STRING")
	}
	if _, _, err := x509asn1.ParseBitString(parts[1]); err != nil {
		return AlgorithmIdentifier{}, err
	}
	return alg, nil
}

// checkExtensions verifies that [3] wraps a single SEQUENCE of SEQUENCEs.
func checkExtensions(buf []byte, n x509asn1.Node) error {
	if !n.Constructed {
		return mismatch(n, "extensions", "constructed [3]")
	}
	inner, err := x509asn1.Children(buf, n)
	if err != nil {
		return err
	}
	if len(inner) != 1 {
		return certerr.AtOffset(certerr.UnsupportedStructure, n.Offset, "extensions must wrap exactly one SEQUENCE")
	}
	if err := expectSequence(inner[0], "extensions"); err != nil {
		return err
	}
	exts, err := x509asn1.Children(buf, inner[0])
	if err != nil {
		return err
	}
	for _, ext := range exts {
		if err := expectSequence(ext, "extension"); err != nil {
			return err
		}
	}
	return nil
}

// fields is a cursor over the children of tbsCertificate.
type fields struct {
	nodes []x509asn1.Node
	pos   int
	end   int
}

// next consumes a mandatory universal field.
func (f *fields) next(name string, tag int) (x509asn1.Node, error) {
	if f.pos >= len(f.nodes) {
		return x509asn1.Node{}, certerr.AtOffset(certerr.UnsupportedStructure, f.end,
			"tbsCertificate: missing "+name)
	}
	n := f.nodes[f.pos]
	if !n.IsUniversal(tag) {
		return x509asn1.Node{}, mismatch(n, "tbsCertificate "+name, universalName(tag))
	}
	if tag == x509asn1.TagSequence && !n.Constructed {
		return x509asn1.Node{}, mismatch(n, "tbsCertificate "+name, "constructed SEQUENCE")
	}
	f.pos++
	return n, nil
}

// optional consumes the next field if it carries the given context-specific tag.
func (f *fields) optional(tag int) (x509asn1.Node, bool) {
	if f.pos >= len(f.nodes) || !f.nodes[f.pos].Is(x509asn1.ClassContextSpecific, tag) {
		return x509asn1.Node{}, false
	}
	f.pos++
	return f.nodes[f.pos-1], true
}

func (f *fields) done() error {
	if f.pos < len(f.nodes) {
		n := f.nodes[f.pos]
		return certerr.AtOffset(certerr.UnsupportedStructure, n.Offset,
			fmt.Sprintf("tbsCertificate: unexpected %s", n))
	}
	return nil
}

func expectSequence(n x509asn1.Node, name string) error {
	if !n.IsUniversal(x509asn1.TagSequence) || !n.Constructed {
		return mismatch(n, name, "SEQUENCE")
	}
	return nil
}

func mismatch(n x509asn1.Node, field, want string) error {
	return certerr.AtOffset(certerr.UnsupportedStructure, n.Offset,
		fmt.Sprintf("%s: expected %s, found %s", field, want, n))
}

func universalName(tag int) string {
	switch tag {
	case x509asn1.TagInteger:
		return "INTEGER"
	case x509asn1.TagSequence:
		return "SEQUENCE"
	default:
		return fmt.Sprintf("universal %d", tag)
	}
}
