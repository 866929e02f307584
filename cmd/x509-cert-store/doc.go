// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// x509-cert-store decodes X.509 certificates from PEM, DER and PKCS#7 files
// and prints, splits or bundles them.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/x509-cert-store/cmd/x509-cert-store@latest
//
// # Usage
//
//	x509-cert-store [--config FILE] [--format PEM|DER] [--alias-prefix PREFIX] COMMAND FILE...
//
// # Commands
//
//	inspect  Print a table, JSON document or PEM bundle of the decoded certificates
//	chain    Print certificates as a tree with issuer name linkage marks
//	split    Write each certificate to DIR/<alias>.pem
//	bundle   Join certificates into a PEM bundle or, with --pkcs7, a PKCS#7 file
//
// # Environment Variables
//
//	X509_CERT_STORE_CONFIG  Path to configuration file (alternative to --config flag)
//
// # Examples
//
// Summarize a chain:
//
//	x509-cert-store inspect fullchain.pem
//
// Convert a PEM chain to PKCS#7:
//
//	x509-cert-store bundle --pkcs7 -o chain.p7b fullchain.pem
package main
