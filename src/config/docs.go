// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads runtime settings shared by the command line tool and
// the MCP server.
//
// Settings come from a JSON or YAML file chosen by extension (.json, .yaml,
// .yml). When no path is given the X509_CERT_STORE_CONFIG environment
// variable is consulted, and when that is empty too the defaults are used.
// Every document is validated against an embedded JSON schema before it is
// decoded, so unknown keys and out of range values are reported with the
// offending field path.
//
// defaults.format forces the encoding of input files. Leave it unset to
// detect PEM or DER for each file.
//
// Example configuration:
//
//	defaults:
//	  aliasPrefix: cert
//	  output: table
//	  timeoutSeconds: 30
//	log:
//	  json: false
//	  silent: false
package config
