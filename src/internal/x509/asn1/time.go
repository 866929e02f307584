// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509asn1

import (
	"fmt"
	"time"

	"github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/certerr"
)

// ParseTime decodes a UTCTime or GeneralizedTime node into a UTC timestamp.
//
// UTCTime carries a two digit year: YY >= 50 maps to 19YY, anything lower to
// 20YY. GeneralizedTime carries the full year. Both must use the DER form
// terminated by 'Z' with seconds present.
func ParseTime(n Node) (time.Time, error) {
	if n.Class != ClassUniversal || n.Constructed {
		return time.Time{}, certerr.AtOffset(certerr.UnsupportedStructure, n.Offset,
			fmt.Sprintf("expected time, found %s", n))
	}

	switch n.Tag {
	case TagUTCTime:
		return parseUTCTime(n)
	case TagGeneralizedTime:
		return parseGeneralizedTime(n)
	default:
		return time.Time{}, certerr.AtOffset(certerr.UnsupportedStructure, n.Offset,
			fmt.Sprintf("expected UTCTime or GeneralizedTime, found %s", n))
	}
}

// parseUTCTime parses YYMMDDHHMMSSZ.
func parseUTCTime(n Node) (time.Time, error) {
	s := n.Bytes
	if len(s) != 13 || s[12] != 'Z' {
		return time.Time{}, invalidTime(n, "UTCTime")
	}
	f, ok := digits(s[:12], 2, 2, 2, 2, 2, 2)
	if !ok {
		return time.Time{}, invalidTime(n, "UTCTime")
	}

	year := 2000 + f[0]
	if f[0] >= 50 {
		year = 1900 + f[0]
	}
	return buildTime(n, "UTCTime", year, f[1], f[2], f[3], f[4], f[5], 0)
}

// parseGeneralizedTime parses YYYYMMDDHHMMSS[.fff]Z.
func parseGeneralizedTime(n Node) (time.Time, error) {
	s := n.Bytes
	if len(s) < 15 || s[len(s)-1] != 'Z' {
		return time.Time{}, invalidTime(n, "GeneralizedTime")
	}
	f, ok := digits(s[:14], 4, 2, 2, 2, 2, 2)
	if !ok {
		return time.Time{}, invalidTime(n, "GeneralizedTime")
	}

	nsec := 0
	if frac := s[14 : len(s)-1]; len(frac) > 0 {
		// Fraction is '.' followed by digits with no trailing zero.
		if frac[0] != '.' || len(frac) < 2 || len(frac) > 10 || frac[len(frac)-1] == '0' {
			return time.Time{}, invalidTime(n, "GeneralizedTime")
		}
		scale := 100000000
		for _, c := range frac[1:] {
			if c < '0' || c > '9' {
				return time.Time{}, invalidTime(n, "GeneralizedTime")
			}
			nsec += int(c-'0') * scale
			scale /= 10
		}
	}
	return buildTime(n, "GeneralizedTime", f[0], f[1], f[2], f[3], f[4], f[5], nsec)
}

func buildTime(n Node, name string, year, month, day, hour, minute, sec, nsec int) (time.Time, error) {
	t := time.Date(year, time.Month(month), day, hour, minute, sec, nsec, time.UTC)
	// time.Date normalizes out-of-range fields; reject anything it had to move.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != sec {
		return time.Time{}, invalidTime(n, name)
	}
	return t, nil
}

// digits splits s into consecutive decimal fields of the given widths.
func digits(s []byte, widths ...int) ([]int, bool) {
	out := make([]int, 0, len(widths))
	pos := 0
	for _, w := range widths {
		v := 0
		for _, c := range s[pos : pos+w] {
			if c < '0' || c > '9' {
				return nil, false
			}
			v = v*10 + int(c-'0')
		}
		out = append(out, v)
		pos += w
	}
	return out, true
}

func invalidTime(n Node, name string) error {
	return certerr.AtOffset(certerr.MalformedEncoding, n.Offset, "invalid "+name)
}
