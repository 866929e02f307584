// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certstore

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/samber/lo"

	x509der "github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/der"
)

// Summary is the display form of a stored certificate.
type Summary struct {
	Alias              string    `json:"alias,omitempty"`
	Version            int       `json:"version"`
	SerialNumber       string    `json:"serialNumber"`
	Subject            string    `json:"subject"`
	Issuer             string    `json:"issuer"`
	SignatureAlgorithm string    `json:"signatureAlgorithm"`
	PublicKeyAlgorithm string    `json:"publicKeyAlgorithm"`
	NotBefore          time.Time `json:"notBefore"`
	NotAfter           time.Time `json:"notAfter"`
	HasExtensions      bool      `json:"hasExtensions"`
	Fingerprint        string    `json:"sha256Fingerprint"`
}

// Summarize builds the display form of cert.
func Summarize(alias string, cert *x509der.Certificate) Summary {
	return Summary{
		Alias:              alias,
		Version:            cert.Version(),
		SerialNumber:       cert.SerialDecimal(),
		Subject:            cert.Subject().String(),
		Issuer:             cert.Issuer().String(),
		SignatureAlgorithm: cert.SignatureAlgorithm().String(),
		PublicKeyAlgorithm: cert.PublicKeyAlgorithm().String(),
		NotBefore:          cert.NotBefore(),
		NotAfter:           cert.NotAfter(),
		HasExtensions:      cert.HasExtensions(),
		Fingerprint:        cert.Fingerprint(),
	}
}

// Summaries returns the display form of every entry in insertion order.
func (s *MemoryStore) Summaries() []Summary {
	return lo.Map(s.All(), func(e Entry, _ int) Summary {
		return Summarize(e.Alias, e.Cert)
	})
}

// ToJSON renders every entry as an indented JSON document.
func (s *MemoryStore) ToJSON() ([]byte, error) {
	type storeJSON struct {
		Count        int       `json:"count"`
		Certificates []Summary `json:"certificates"`
	}

	summaries := s.Summaries()
	return json.MarshalIndent(storeJSON{Count: len(summaries), Certificates: summaries}, "", "  ")
}

// RenderTable renders the store as a markdown table.
func (s *MemoryStore) RenderTable() string {
	return RenderSummaries(s.Summaries())
}

// RenderSummaries renders summaries as a markdown table using tablewriter.
func RenderSummaries(summaries []Summary) string {
	if len(summaries) == 0 {
		return "No certificates to display"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	table.Header([]string{"#", "Alias", "Subject", "Issuer", "Serial", "Valid Until", "Signature"})

	rows := lo.Map(summaries, func(sum Summary, i int) []string {
		return []string{
			strconv.Itoa(i + 1),
			sum.Alias,
			sum.Subject,
			sum.Issuer,
			sum.SerialNumber,
			sum.NotAfter.Format(time.DateOnly),
			sum.SignatureAlgorithm,
		}
	})

	table.Bulk(rows)
	table.Render()
	return buf.String()
}
