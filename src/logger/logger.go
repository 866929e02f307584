// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/H0llyW00dzZ/x509-cert-store/src/internal/helper/gc"
)

// Logger defines the interface for logging operations.
// It provides methods for different log levels and formatted output.
//
// This interface supports both CLI and [MCP] server modes, allowing seamless
// switching between human-readable output and structured logging.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type Logger interface {
	// Printf formats and prints an informational message.
	Printf(format string, v ...any)
	// Println prints an informational message with a newline.
	Println(v ...any)
	// Errorf formats and prints an error message.
	Errorf(format string, v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled.
// This is suitable for user-facing CLI output.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stdout, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// Errorf prints a message prefixed with "error: ".
func (c *CLILogger) Errorf(format string, v ...any) { c.logger.Printf("error: "+format, v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// Level is the severity recorded in a JSON log entry.
type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// JSONLogger implements Logger with one JSON object per line.
// It is used in [MCP] server mode, where stdout carries the protocol and logs
// must go to a separate destination or nowhere.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type JSONLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
	now    func() time.Time
}

// NewJSONLogger creates a JSON logger writing to writer. A nil writer
// discards output. When silent is true nothing is written at all.
func NewJSONLogger(writer io.Writer, silent bool) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{
		writer: writer,
		silent: silent,
		now:    time.Now,
	}
}

// entry is the wire form of a log line.
type entry struct {
	Time    string `json:"time"`
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Printf formats and logs an info entry.
func (j *JSONLogger) Printf(format string, v ...any) { j.log(LevelInfo, fmt.Sprintf(format, v...)) }

// Println logs an info entry.
func (j *JSONLogger) Println(v ...any) { j.log(LevelInfo, fmt.Sprint(v...)) }

// Errorf formats and logs an error entry.
func (j *JSONLogger) Errorf(format string, v ...any) { j.log(LevelError, fmt.Sprintf(format, v...)) }

func (j *JSONLogger) log(level Level, msg string) {
	if j.silent {
		return
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	// Encoder appends the trailing newline.
	_ = json.NewEncoder(buf).Encode(entry{
		Time:    j.now().UTC().Format(time.RFC3339),
		Level:   level,
		Message: msg,
	})

	j.mu.Lock()
	defer j.mu.Unlock()
	_, _ = buf.WriteTo(j.writer)
}

// SetOutput sets the output destination. A nil writer discards output.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) SetOutput(w io.Writer) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if w == nil {
		j.writer = io.Discard
	} else {
		j.writer = w
	}
}
