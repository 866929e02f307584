// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the X.509 certificate store.
// It implements a Cobra-based CLI with four subcommands:
//
//   - inspect: decode certificate files and render them as a table, JSON or PEM
//   - chain: print certificates as a tree with issuer name linkage marks
//   - split: write every certificate of a PEM bundle into its own file
//   - bundle: join certificates into a PEM bundle or a PKCS#7 certs-only file
//
// Input files are sniffed: PEM text is read as an ordered chain, binary input
// as a single DER certificate or a PKCS#7 bundle. The path "-" reads standard
// input. Settings are taken from the file named by --config or by the
// X509_CERT_STORE_CONFIG environment variable.
package cli
