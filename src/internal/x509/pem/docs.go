// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509pem frames DER certificates in PEM armor and extracts them again.
//
// Only the exact, case-sensitive markers
//
//	-----BEGIN CERTIFICATE-----
//	-----END CERTIFICATE-----
//
// are recognised. Text outside a marker pair is ignored, and whitespace inside
// the pair is stripped before Base64 decoding. PEM headers are not supported.
//
// [EncodeBlock] and [DecodeBlock] are exact inverses for non-empty input.
package x509pem
