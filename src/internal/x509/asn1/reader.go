// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509asn1

import (
	"fmt"
	"math"

	"github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/certerr"
)

// Class is the ASN.1 tag class.
type Class uint8

const (
	ClassUniversal       Class = 0
	ClassApplication     Class = 1
	ClassContextSpecific Class = 2
	ClassPrivate         Class = 3
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassUniversal:
		return "universal"
	case ClassApplication:
		return "application"
	case ClassContextSpecific:
		return "context-specific"
	default:
		return "private"
	}
}

// Universal tag numbers used by X.509.
const (
	TagBoolean         = 1
	TagInteger         = 2
	TagBitString       = 3
	TagOctetString     = 4
	TagNull            = 5
	TagOID             = 6
	TagUTF8String      = 12
	TagSequence        = 16
	TagSet             = 17
	TagNumericString   = 18
	TagPrintableString = 19
	TagT61String       = 20
	TagIA5String       = 22
	TagUTCTime         = 23
	TagGeneralizedTime = 24
	TagVisibleString   = 26
	TagUniversalString = 28
	TagBMPString       = 30
)

// Node is one decoded TLV. Offsets are absolute positions in the buffer the
// node was read from.
type Node struct {
	Class         Class
	Tag           int
	Constructed   bool
	Offset        int // First byte of the identifier octets
	ContentStart  int
	ContentLength int
	Next          int // Offset of the byte following the node

	Bytes []byte // Content octets
	Raw   []byte // Identifier, length and content octets
}

// Is reports whether n has the given class and tag number.
func (n Node) Is(class Class, tag int) bool { return n.Class == class && n.Tag == tag }

// IsUniversal reports whether n is a universal node with the given tag number.
func (n Node) IsUniversal(tag int) bool { return n.Is(ClassUniversal, tag) }

// String describes the node for diagnostics, e.g. "[context-specific 0] constructed".
func (n Node) String() string {
	form := "primitive"
	if n.Constructed {
		form = "constructed"
	}
	return fmt.Sprintf("[%s %d] %s", n.Class, n.Tag, form)
}

// ReadNode decodes the TLV node starting at offset in buf.
func ReadNode(buf []byte, offset int) (Node, error) {
	return readNode(buf, offset, len(buf))
}

// Children decodes the content of a constructed node into its child nodes.
// Children may not extend beyond the parent's content.
func Children(buf []byte, parent Node) ([]Node, error) {
	if !parent.Constructed {
		return nil, certerr.AtOffset(certerr.MalformedEncoding, parent.Offset,
			fmt.Sprintf("%s has no children", parent))
	}

	var (
		children []Node
		end      = parent.ContentStart + parent.ContentLength
	)
	for off := parent.ContentStart; off < end; {
		child, err := readNode(buf, off, end)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
		off = child.Next
	}
	return children, nil
}

// readNode decodes one node between offset and end, which must not exceed len(buf).
func readNode(buf []byte, offset, end int) (Node, error) {
	if offset < 0 || offset >= end {
		return Node{}, certerr.AtOffset(certerr.MalformedEncoding, offset, "unexpected end of data reading tag")
	}

	n := Node{Offset: offset}
	pos := offset

	b := buf[pos]
	pos++
	n.Class = Class(b >> 6)
	n.Constructed = b&0x20 != 0
	n.Tag = int(b & 0x1f)

	// High-tag-number form: base-128 tag number follows.
	if n.Tag == 0x1f {
		tag, next, err := readBase128Tag(buf, pos, end)
		if err != nil {
			return Node{}, err
		}
		n.Tag, pos = tag, next
	}

	if pos >= end {
		return Node{}, certerr.AtOffset(certerr.MalformedEncoding, pos, "unexpected end of data reading length")
	}

	length, next, err := readLength(buf, pos, end)
	if err != nil {
		return Node{}, err
	}
	pos = next

	if length > end-pos {
		return Node{}, certerr.AtOffset(certerr.MalformedEncoding, offset,
			fmt.Sprintf("length %d exceeds %d remaining bytes", length, end-pos))
	}

	n.ContentStart = pos
	n.ContentLength = length
	n.Next = pos + length
	n.Bytes = buf[pos:n.Next:n.Next]
	n.Raw = buf[offset:n.Next:n.Next]
	return n, nil
}

func readBase128Tag(buf []byte, pos, end int) (int, int, error) {
	start := pos
	tag := 0
	for {
		if pos >= end {
			return 0, 0, certerr.AtOffset(certerr.MalformedEncoding, pos, "unexpected end of data reading tag number")
		}
		b := buf[pos]
		if pos == start && b == 0x80 {
			return 0, 0, certerr.AtOffset(certerr.MalformedEncoding, pos, "non-minimal tag number")
		}
		if tag > (math.MaxInt32 >> 7) {
			return 0, 0, certerr.AtOffset(certerr.MalformedEncoding, pos, "tag number too large")
		}
		tag = tag<<7 | int(b&0x7f)
		pos++
		if b&0x80 == 0 {
			break
		}
	}
	if tag < 0x1f {
		return 0, 0, certerr.AtOffset(certerr.MalformedEncoding, start, "tag number should use low-tag-number form")
	}
	return tag, pos, nil
}

func readLength(buf []byte, pos, end int) (int, int, error) {
	b := buf[pos]
	pos++

	if b < 0x80 {
		return int(b), pos, nil
	}

	switch {
	case b == 0x80:
		return 0, 0, certerr.AtOffset(certerr.MalformedEncoding, pos-1, "indefinite length")
	case b == 0xff:
		return 0, 0, certerr.AtOffset(certerr.MalformedEncoding, pos-1, "reserved length octet")
	}

	numBytes := int(b & 0x7f)
	if numBytes > 4 {
		return 0, 0, certerr.AtOffset(certerr.MalformedEncoding, pos-1,
			fmt.Sprintf("length of %d octets is too large", numBytes))
	}
	if numBytes > end-pos {
		return 0, 0, certerr.AtOffset(certerr.MalformedEncoding, pos, "unexpected end of data reading long-form length")
	}
	if buf[pos] == 0 {
		return 0, 0, certerr.AtOffset(certerr.MalformedEncoding, pos, "non-canonical length with leading zero")
	}

	length := 0
	for i := 0; i < numBytes; i++ {
		length = length<<8 | int(buf[pos])
		pos++
	}
	if length < 0x80 {
		return 0, 0, certerr.AtOffset(certerr.MalformedEncoding, pos-numBytes-1, "non-canonical long-form length")
	}
	if length > math.MaxInt32 {
		return 0, 0, certerr.AtOffset(certerr.MalformedEncoding, pos-numBytes-1, "length too large")
	}
	return length, pos, nil
}
