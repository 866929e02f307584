// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/x509-cert-store/src/logger"
)

// syncBuffer guards a bytes.Buffer for concurrent writers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestCLILogger(t *testing.T) {
	tests := []struct {
		name     string
		log      func(l logger.Logger)
		expected string
	}{
		{name: "Printf", log: func(l logger.Logger) { l.Printf("loaded %d certificates", 3) }, expected: "loaded 3 certificates\n"},
		{name: "Println", log: func(l logger.Logger) { l.Println("stored", "leaf") }, expected: "stored leaf\n"},
		{name: "Errorf", log: func(l logger.Logger) { l.Errorf("alias %q missing", "x") }, expected: "error: alias \"x\" missing\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := logger.NewCLILogger()
			log.SetOutput(&buf)

			tt.log(log)

			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestCLILogger_SetOutput(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	log := logger.NewCLILogger()

	log.SetOutput(&buf1)
	log.Println("first")

	log.SetOutput(&buf2)
	log.Println("second")

	assert.Contains(t, buf1.String(), "first")
	assert.Contains(t, buf2.String(), "second")
	assert.NotContains(t, buf1.String(), "second", "buf1 should not contain 'second'")
}

func TestJSONLogger(t *testing.T) {
	tests := []struct {
		name    string
		log     func(l logger.Logger)
		level   string
		message string
	}{
		{name: "Printf", log: func(l logger.Logger) { l.Printf("stored %s", "leaf") }, level: "info", message: "stored leaf"},
		{name: "Println", log: func(l logger.Logger) { l.Println("stored", 2) }, level: "info", message: "stored2"},
		{name: "Errorf", log: func(l logger.Logger) { l.Errorf("decode failed: %v", "truncated") }, level: "error", message: "decode failed: truncated"},
		{name: "Escaping", log: func(l logger.Logger) { l.Printf("subject %q", "CN=a\nb") }, level: "info", message: "subject \"CN=a\\nb\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(logger.NewJSONLogger(&buf, false))

			output := buf.String()
			require.True(t, strings.HasSuffix(output, "\n"))
			assert.Equal(t, 1, strings.Count(output, "\n"), "one line per entry")

			var entry map[string]any
			require.NoError(t, json.Unmarshal([]byte(output), &entry), "failed to parse JSON output")
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, tt.message, entry["message"])

			_, err := time.Parse(time.RFC3339, entry["time"].(string))
			assert.NoError(t, err)
		})
	}
}

func TestJSONLogger_Silent(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewJSONLogger(&buf, true)

	log.Printf("test message: %s", "hello")
	log.Println("another message")
	log.Errorf("failure")

	assert.Equal(t, 0, buf.Len(), "expected no output in silent mode")
}

func TestJSONLogger_SetOutput(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	log := logger.NewJSONLogger(&buf1, false)

	log.Println("first")
	log.SetOutput(&buf2)
	log.Println("second")
	log.SetOutput(nil)
	log.Println("third")

	assert.Contains(t, buf1.String(), "first")
	assert.NotContains(t, buf1.String(), "second")
	assert.Contains(t, buf2.String(), "second")
	assert.NotContains(t, buf2.String(), "third", "nil output discards")
}

func TestJSONLogger_NilWriter(t *testing.T) {
	log := logger.NewJSONLogger(nil, false)
	assert.NotPanics(t, func() { log.Printf("discarded") })
}

func TestLoggers_Concurrent(t *testing.T) {
	const (
		numGoroutines        = 50
		messagesPerGoroutine = 10
	)

	loggers := map[string]func(w *syncBuffer) logger.Logger{
		"CLI": func(w *syncBuffer) logger.Logger {
			l := logger.NewCLILogger()
			l.SetOutput(w)
			return l
		},
		"JSON": func(w *syncBuffer) logger.Logger { return logger.NewJSONLogger(w, false) },
	}

	for name, newLogger := range loggers {
		t.Run(name, func(t *testing.T) {
			var out syncBuffer
			log := newLogger(&out)

			var wg sync.WaitGroup
			for i := range numGoroutines {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for j := range messagesPerGoroutine {
						log.Printf("goroutine %d message %d", i, j)
					}
				}()
			}
			wg.Wait()

			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			assert.Len(t, lines, numGoroutines*messagesPerGoroutine)
		})
	}
}
