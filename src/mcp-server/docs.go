// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver exposes the [X509] certificate store over the Model Context
// Protocol ([MCP]).
//
// A single in-memory store lives for the duration of the server. Tools decode
// certificates from file paths, PEM text or base64 DER, catalog them under
// aliases, and export single certificates or chains as PEM or PKCS#7.
// Resources publish the store listing and the active configuration.
//
// [X509]: https://grokipedia.com/page/X.509
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
