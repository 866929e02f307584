// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509der

import (
	"strings"

	x509asn1 "github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/asn1"
	"github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/certerr"
)

// Attribute is one AttributeTypeAndValue of a distinguished name.
type Attribute struct {
	Type      string // Dotted decimal OID
	ShortName string // CN, O, ... or empty when the OID is not known
	Value     string
}

// Key returns the short name of the attribute, falling back to its OID.
func (a Attribute) Key() string {
	if a.ShortName != "" {
		return a.ShortName
	}
	return a.Type
}

// String renders the attribute as "KEY=value".
func (a Attribute) String() string { return a.Key() + "=" + a.Value }

// Name is a distinguished name as an ordered list of attributes, in the order
// they appear in the encoding. Multi-valued RDNs are flattened.
type Name []Attribute

// String renders the name as "CN=..., O=..." in encoding order. Values are
// not escaped.
func (n Name) String() string {
	parts := make([]string, len(n))
	for i, a := range n {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}

// Get returns the first value for the given short name or OID.
func (n Name) Get(key string) (string, bool) {
	for _, a := range n {
		if a.ShortName == key || a.Type == key {
			return a.Value, true
		}
	}
	return "", false
}

// CommonName returns the first CN value, or the empty string.
func (n Name) CommonName() string {
	cn, _ := n.Get("CN")
	return cn
}

// parseName decodes Name ::= SEQUENCE OF RelativeDistinguishedName, where each
// RDN is a SET OF SEQUENCE { type OBJECT IDENTIFIER, value ANY }.
func parseName(buf []byte, seq x509asn1.Node, field string) (Name, error) {
	rdns, err := x509asn1.Children(buf, seq)
	if err != nil {
		return nil, err
	}

	name := make(Name, 0, len(rdns))
	for _, rdn := range rdns {
		if !rdn.IsUniversal(x509asn1.TagSet) || !rdn.Constructed {
			return nil, mismatch(rdn, field+" RDN", "SET")
		}
		atvs, err := x509asn1.Children(buf, rdn)
		if err != nil {
			return nil, err
		}
		if len(atvs) == 0 {
			return nil, certerr.AtOffset(certerr.UnsupportedStructure, rdn.Offset, field+": empty RDN")
		}

		for _, atv := range atvs {
			attr, err := parseAttribute(buf, atv, field)
			if err != nil {
				return nil, err
			}
			name = append(name, attr)
		}
	}
	return name, nil
}

func parseAttribute(buf []byte, atv x509asn1.Node, field string) (Attribute, error) {
	if !atv.IsUniversal(x509asn1.TagSequence) || !atv.Constructed {
		return Attribute{}, mismatch(atv, field+" attribute", "SEQUENCE")
	}
	parts, err := x509asn1.Children(buf, atv)
	if err != nil {
		return Attribute{}, err
	}
	if len(parts) != 2 {
		return Attribute{}, certerr.AtOffset(certerr.UnsupportedStructure, atv.Offset,
			field+": attribute must have a type and a value")
	}

	oid, err := x509asn1.ParseOID(parts[0])
	if err != nil {
		return Attribute{}, err
	}
	value, err := x509asn1.ParseString(parts[1])
	if err != nil {
		return Attribute{}, err
	}
	return Attribute{Type: oid, ShortName: AttributeShortName(oid), Value: value}, nil
}
