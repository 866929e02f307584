// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package certerr defines the error taxonomy shared by the certificate decode
// pipeline and the certificate store.
//
// Every failure is an [*Error] tagged with a [Kind]. A Kind is itself an error,
// so callers classify failures with [errors.Is]:
//
//	cert, err := loader.LoadFromPEM(text)
//	if errors.Is(err, certerr.InvalidPEMFormat) {
//		// no BEGIN/END pair in text
//	}
//
// Wrapping kinds such as [ParseFailed] and [ChainParseFailed] keep the original
// cause in their chain, so both the outer and the inner kind match.
package certerr
