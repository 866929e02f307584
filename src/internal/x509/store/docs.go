// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package certstore catalogs decoded certificates by alias.
//
// [Store] is the capability interface; [MemoryStore] is the in-memory
// implementation. Adding to an existing alias silently replaces its
// certificate. Unknown aliases are an expected miss and not an error, while an
// empty alias is rejected with [certerr.InvalidAlias].
//
// Export is byte-exact: certificates keep the DER they were decoded from and
// PEM output is produced from those bytes.
package certstore
