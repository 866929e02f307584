// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509der decodes DER encoded [X.509] certificates into an immutable
// [Certificate] value.
//
// The decoder walks the ASN.1 tree once, top-down, following the fixed grammar
//
//	Certificate ::= SEQUENCE {
//	    tbsCertificate       TBSCertificate,
//	    signatureAlgorithm   AlgorithmIdentifier,
//	    signatureValue       BIT STRING }
//
//	TBSCertificate ::= SEQUENCE {
//	    version         [0]  EXPLICIT Version DEFAULT v1,
//	    serialNumber         CertificateSerialNumber,
//	    signature            AlgorithmIdentifier,
//	    issuer               Name,
//	    validity             Validity,
//	    subject              Name,
//	    subjectPublicKeyInfo SubjectPublicKeyInfo,
//	    issuerUniqueID  [1]  IMPLICIT UniqueIdentifier OPTIONAL,
//	    subjectUniqueID [2]  IMPLICIT UniqueIdentifier OPTIONAL,
//	    extensions      [3]  EXPLICIT Extensions OPTIONAL }
//
// Framing errors from the TLV reader surface as [certerr.MalformedEncoding].
// Well-formed input that does not follow the grammar fails with
// [certerr.UnsupportedStructure]. A partially decoded certificate is never
// returned.
//
// Only structure is decoded. Signatures are not verified and extensions are
// not interpreted.
//
// [X.509]: https://grokipedia.com/page/X.509
package x509der
