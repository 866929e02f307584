// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509asn1 is a DER tag-length-value reader.
//
// [ReadNode] decodes exactly one TLV node at a byte offset and enforces the
// Distinguished Encoding Rules for tags and lengths: indefinite lengths, long
// form lengths that could have been shorter, and truncated input all fail with
// [certerr.MalformedEncoding]. Scalar helpers decode the universal types that
// appear in an [X.509] certificate.
//
// All functions are pure and safe for concurrent use on shared input.
//
// [X.509]: https://grokipedia.com/page/X.509
package x509asn1
