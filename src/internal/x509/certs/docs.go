// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs loads [X.509] certificates from [PEM] text, DER bytes,
// files, PEM chains and [PKCS7] bundles.
//
// A [Loader] only orchestrates: PEM framing is done by x509pem and structural
// decoding by x509der. Every failure is classified with a [certerr.Kind] and
// keeps its original cause, so both
//
//	errors.Is(err, certerr.ParseFailed)
//	errors.Is(err, certerr.InvalidPEMFormat)
//
// hold for malformed PEM input. Loads are all-or-nothing; a chain either
// decodes completely or not at all.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
