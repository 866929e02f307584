// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509asn1

import (
	"encoding/asn1"
	"fmt"
	"math/big"
	"unicode/utf8"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	"github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/certerr"
)

// expectPrimitive checks that n is a primitive universal node with the given tag.
func expectPrimitive(n Node, tag int, name string) error {
	if !n.IsUniversal(tag) || n.Constructed {
		return certerr.AtOffset(certerr.UnsupportedStructure, n.Offset,
			fmt.Sprintf("expected %s, found %s", name, n))
	}
	return nil
}

// ParseInteger decodes an INTEGER node of any width.
func ParseInteger(n Node) (*big.Int, error) {
	if err := expectPrimitive(n, TagInteger, "INTEGER"); err != nil {
		return nil, err
	}

	out := new(big.Int)
	s := cryptobyte.String(n.Raw)
	if !s.ReadASN1Integer(out) || !s.Empty() {
		return nil, certerr.AtOffset(certerr.MalformedEncoding, n.Offset, "invalid INTEGER encoding")
	}
	return out, nil
}

// ParseOID decodes an OBJECT IDENTIFIER node into dotted-decimal form.
func ParseOID(n Node) (string, error) {
	if err := expectPrimitive(n, TagOID, "OBJECT IDENTIFIER"); err != nil {
		return "", err
	}

	var oid asn1.ObjectIdentifier
	s := cryptobyte.String(n.Raw)
	if !s.ReadASN1ObjectIdentifier(&oid) || !s.Empty() {
		return "", certerr.AtOffset(certerr.MalformedEncoding, n.Offset, "invalid OBJECT IDENTIFIER encoding")
	}
	return oid.String(), nil
}

// ParseBitString decodes a BIT STRING node. The returned bytes are the bit
// string octets without the leading unused-bits octet.
func ParseBitString(n Node) ([]byte, int, error) {
	if err := expectPrimitive(n, TagBitString, "BIT STRING"); err != nil {
		return nil, 0, err
	}

	b := n.Bytes
	if len(b) == 0 {
		return nil, 0, certerr.AtOffset(certerr.MalformedEncoding, n.Offset, "empty BIT STRING")
	}
	unused := int(b[0])
	switch {
	case unused > 7:
		return nil, 0, certerr.AtOffset(certerr.MalformedEncoding, n.Offset, "invalid BIT STRING padding")
	case len(b) == 1 && unused != 0:
		return nil, 0, certerr.AtOffset(certerr.MalformedEncoding, n.Offset, "invalid BIT STRING padding")
	case len(b) > 1 && b[len(b)-1]&(1<<unused-1) != 0:
		return nil, 0, certerr.AtOffset(certerr.MalformedEncoding, n.Offset, "non-zero BIT STRING padding bits")
	}
	return b[1:], unused, nil
}

// ParseString decodes any of the character string types used in distinguished names.
func ParseString(n Node) (string, error) {
	if n.Class != ClassUniversal || n.Constructed {
		return "", certerr.AtOffset(certerr.UnsupportedStructure, n.Offset,
			fmt.Sprintf("expected character string, found %s", n))
	}

	b := n.Bytes
	switch n.Tag {
	case TagUTF8String:
		if !utf8.Valid(b) {
			return "", invalidString(n, "UTF8String")
		}
		return string(b), nil
	case TagPrintableString:
		for _, c := range b {
			if !isPrintable(c) {
				return "", invalidString(n, "PrintableString")
			}
		}
		return string(b), nil
	case TagIA5String:
		for _, c := range b {
			if c >= utf8.RuneSelf {
				return "", invalidString(n, "IA5String")
			}
		}
		return string(b), nil
	case TagNumericString:
		for _, c := range b {
			if c != ' ' && (c < '0' || c > '9') {
				return "", invalidString(n, "NumericString")
			}
		}
		return string(b), nil
	case TagVisibleString:
		for _, c := range b {
			if c < 0x20 || c > 0x7e {
				return "", invalidString(n, "VisibleString")
			}
		}
		return string(b), nil
	case TagT61String:
		// Decoded as Latin-1.
		return transcode(n, "TeletexString", charmap.ISO8859_1, 1)
	case TagBMPString:
		return transcode(n, "BMPString", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), 2)
	case TagUniversalString:
		return transcode(n, "UniversalString", utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM), 4)
	default:
		return "", certerr.AtOffset(certerr.UnsupportedStructure, n.Offset,
			fmt.Sprintf("unsupported string type %s", n))
	}
}

func transcode(n Node, name string, enc encoding.Encoding, unit int) (string, error) {
	if len(n.Bytes)%unit != 0 {
		return "", invalidString(n, name)
	}
	out, err := enc.NewDecoder().Bytes(n.Bytes)
	if err != nil {
		return "", certerr.Wrap(certerr.MalformedEncoding, "invalid "+name, err)
	}
	return string(out), nil
}

func invalidString(n Node, name string) error {
	return certerr.AtOffset(certerr.MalformedEncoding, n.Offset, "invalid "+name)
}

// isPrintable reports whether c is in the PrintableString alphabet. '*' and '&'
// are accepted as well since they are common in deployed certificates.
func isPrintable(c byte) bool {
	return 'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9' ||
		'\'' <= c && c <= ')' ||
		'+' <= c && c <= '/' ||
		c == ' ' || c == ':' || c == '=' || c == '?' ||
		c == '*' || c == '&'
}
