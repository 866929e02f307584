// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509pem

import (
	"encoding/base64"
	"iter"
	"strings"

	"github.com/H0llyW00dzZ/x509-cert-store/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/certerr"
)

const (
	// BeginMarker opens a certificate block.
	BeginMarker = "-----BEGIN CERTIFICATE-----"
	// EndMarker closes a certificate block.
	EndMarker = "-----END CERTIFICATE-----"

	lineLength = 64
)

// Blocks is an ordered, materialized list of PEM block texts. Each element
// runs from the start of its BEGIN marker to the end of its END marker.
type Blocks []string

// All returns an iterator over the blocks and their positions. It can be
// ranged over any number of times.
func (b Blocks) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, block := range b {
			if !yield(i, block) {
				return
			}
		}
	}
}

// Len returns the number of blocks.
func (b Blocks) Len() int { return len(b) }

// next locates the first marker pair at or after offset. It returns the
// start of the BEGIN marker, the bounds of the body, and the offset just past
// the END marker.
func next(text string, offset int) (start, bodyStart, bodyEnd, end int, ok bool) {
	i := strings.Index(text[offset:], BeginMarker)
	if i < 0 {
		return 0, 0, 0, 0, false
	}
	start = offset + i
	bodyStart = start + len(BeginMarker)

	j := strings.Index(text[bodyStart:], EndMarker)
	if j < 0 {
		return 0, 0, 0, 0, false
	}
	bodyEnd = bodyStart + j
	return start, bodyStart, bodyEnd, bodyEnd + len(EndMarker), true
}

// HasBlock reports whether text contains at least one complete marker pair.
func HasBlock(text string) bool {
	_, _, _, _, ok := next(text, 0)
	return ok
}

// DecodeBlock returns the DER bytes of the first certificate block in text.
//
// It fails with [certerr.InvalidPEMFormat] when there is no complete marker
// pair, the body is empty, or the body is not valid standard Base64.
func DecodeBlock(text string) ([]byte, error) {
	_, bodyStart, bodyEnd, _, ok := next(text, 0)
	if !ok {
		return nil, certerr.New(certerr.InvalidPEMFormat, "no BEGIN/END CERTIFICATE marker pair")
	}

	body := stripSpace(text[bodyStart:bodyEnd])
	if body == "" {
		return nil, certerr.New(certerr.InvalidPEMFormat, "empty PEM body")
	}
	der, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, certerr.Wrap(certerr.InvalidPEMFormat, "invalid Base64 body", err)
	}
	return der, nil
}

// SplitBlocks returns every non-overlapping certificate block in text, in
// order of appearance. Bodies are not decoded.
//
// It fails with [certerr.NoCertificateFound] when text holds no complete block.
func SplitBlocks(text string) (Blocks, error) {
	var blocks Blocks
	for offset := 0; ; {
		start, _, _, end, ok := next(text, offset)
		if !ok {
			break
		}
		blocks = append(blocks, text[start:end])
		offset = end
	}

	if len(blocks) == 0 {
		return nil, certerr.New(certerr.NoCertificateFound, "no certificate blocks in input")
	}
	return blocks, nil
}

// EncodeBlock armors der as a single PEM block with 64 column Base64 lines
// and a trailing newline.
func EncodeBlock(der []byte) string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	writeBlock(buf, der)
	return buf.String()
}

// EncodeBlocks armors each DER certificate in turn and concatenates the blocks.
func EncodeBlocks(ders ...[]byte) string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	for _, der := range ders {
		writeBlock(buf, der)
	}
	return buf.String()
}

func writeBlock(buf gc.Buffer, der []byte) {
	body := base64.StdEncoding.EncodeToString(der)

	buf.WriteString(BeginMarker)
	buf.WriteByte('\n')
	for len(body) > lineLength {
		buf.WriteString(body[:lineLength])
		buf.WriteByte('\n')
		body = body[lineLength:]
	}
	if body != "" {
		buf.WriteString(body)
		buf.WriteByte('\n')
	}
	buf.WriteString(EndMarker)
	buf.WriteByte('\n')
}

// stripSpace removes ASCII whitespace.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			return -1
		}
		return r
	}, s)
}
