// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/x509"
	"fmt"

	cfpkcs7 "github.com/cloudflare/cfssl/crypto/pkcs7"
	mozpkcs7 "go.mozilla.org/pkcs7"

	"github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/certerr"
	x509der "github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/der"
)

// LoadPKCS7 decodes the certificates of a DER PKCS#7 SignedData bundle, in
// bundle order. Signatures inside the bundle are not checked.
//
// Every certificate is decoded again from its raw DER. Failures are wrapped
// as [certerr.ChainParseFailed].
func (l *Loader) LoadPKCS7(der []byte) ([]*x509der.Certificate, error) {
	if len(der) == 0 {
		return nil, certerr.New(certerr.EmptyInput, "empty PKCS#7 input")
	}

	bundle, err := pkcs7Certificates(der)
	if err != nil {
		decodesTotal.WithLabelValues(sourcePKCS7, resultFailure).Inc()
		return nil, certerr.Wrap(certerr.ChainParseFailed, "PKCS#7 bundle", err)
	}
	if len(bundle) == 0 {
		decodesTotal.WithLabelValues(sourcePKCS7, resultFailure).Inc()
		return nil, certerr.Wrap(certerr.ChainParseFailed, "PKCS#7 bundle",
			certerr.New(certerr.NoCertificateFound, "bundle holds no certificates"))
	}

	certs := make([]*x509der.Certificate, 0, len(bundle))
	for i, c := range bundle {
		cert, err := x509der.Decode(c.Raw)
		if err != nil {
			decodesTotal.WithLabelValues(sourcePKCS7, resultFailure).Inc()
			return nil, certerr.Wrap(certerr.ChainParseFailed,
				fmt.Sprintf("certificate %d of %d", i+1, len(bundle)), err)
		}
		certs = append(certs, cert)
	}

	decodesTotal.WithLabelValues(sourcePKCS7, resultSuccess).Inc()
	return certs, nil
}

// pkcs7Certificates tries Cloudflare's parser first and falls back to
// Mozilla's, which also accepts bundles without a CRL field.
func pkcs7Certificates(der []byte) ([]*x509.Certificate, error) {
	if p, err := cfpkcs7.ParsePKCS7(der); err == nil && p.Content.SignedData.Certificates != nil {
		return p.Content.SignedData.Certificates, nil
	}

	p, err := mozpkcs7.Parse(der)
	if err != nil {
		return nil, err
	}
	return p.Certificates, nil
}
