// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides abstraction and implementation for logging operations.
// It defines the Logger interface and provides two implementations: CLILogger for
// human-readable command-line output and JSONLogger for structured JSON lines,
// used by the MCP server where stdout carries the protocol. Both implementations
// are safe for concurrent use.
//
// Library packages under internal/x509 never log; only the command surfaces do.
package logger
