// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509der_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	encasn1 "encoding/asn1"
	"encoding/pem"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	"github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/certerr"
	x509der "github.com/H0llyW00dzZ/x509-cert-store/src/internal/x509/der"
)

// Test certificate from www.google.com (valid until February 16, 2026)
const googleLeafPEM = `
-----BEGIN CERTIFICATE-----
MIIEVzCCAz+gAwIBAgIRAIsnDh7AqstVCQTDZO49FUQwDQYJKoZIhvcNAQELBQAw
OzELMAkGA1UEBhMCVVMxHjAcBgNVBAoTFUdvb2dsZSBUcnVzdCBTZXJ2aWNlczEM
MAoGA1UEAxMDV1IyMB4XDTI1MTEyNDA4NDEwNVoXDTI2MDIxNjA4NDEwNFowGTEX
MBUGA1UEAxMOd3d3Lmdvb2dsZS5jb20wWTATBgcqhkjOPQIBBggqhkjOPQMBBwNC
AASpOrUKgQJxuBGxizx+kmyx5RrD4jQmo8qLKSuwJqGHq32bVzWZGD67H9R4OZrU
dvyPaKf5c8xcR0dfErljBgc9o4ICQTCCAj0wDgYDVR0PAQH/BAQDAgeAMBMGA1Ud
JQQMMAoGCCsGAQUFBwMBMAwGA1UdEwEB/wQCMAAwHQYDVR0OBBYEFB/jnLpRtZ7i
zZrj5pmoPbY4QlomMB8GA1UdIwQYMBaAFN4bHu15FdQ+NyTDIbvsNDltQrIwMFgG
CCsGAQUFBwEBBEwwSjAhBggrBgEFBQcwAYYVaHR0cDovL28ucGtpLmdvb2cvd3Iy
MCUGCCsGAQUFBzAChhlodHRwOi8vaS5wa2kuZ29vZy93cjIuY3J0MBkGA1UdEQQS
MBCCDnd3dy5nb29nbGUuY29tMBMGA1UdIAQMMAowCAYGZ4EMAQIBMDYGA1UdHwQv
MC0wK6ApoCeGJWh0dHA6Ly9jLnBraS5nb29nL3dyMi9HU3lUMU40UEJyZy5jcmww
ggEEBgorBgEEAdZ5AgQCBIH1BIHyAPAAdwCWl2S/VViXrfdDh2g3CEJ36fA61fak
8zZuRqQ/D8qpxgAAAZq1PQh6AAAEAwBIMEYCIQDkvhCgZXnoybm66RiqqWXZN6qE
VzPoPHn/kyXZ7Y55yAIhALTMfGlCgnC9W0iu+cR9qCmOwsEr5k6Bl7Ub2w7GCUIu
AHUASZybad4dfOz8Nt7Nh2SmuFuvCoeAGdFVUvvp6ynd+MMAAAGatT0IWAAABAMA
RjBEAiBQITcviDubQYQiIxBwjcgmkl4CH1x4RzykXJrp8cCLKwIgFpdUBEBwTjCw
wTjI3H2paYucltfUre6q/vBei3HhNqcwDQYJKoZIhvcNAQELBQADggEBAE+UAURG
T3JZxq6fjAK5Espfe49Wb0mz1kCTwNY56sbYP/Fa+Kb7kVluDIFbMN2rspADwKBu
FR7QVda3zEIu4Hj1DUmD7ecmVYCxLQ241OYdice4AfJTwDVJVymdQPFoLBP27dWK
3izwcfkPSgXIT8nHcEvDvXljn7n+n3XXuzh1Y1vFnFUa5E69JQFXXDuu/a7LiEXx
uB5j0Xga7DgFyHHHnz7zSiFr37NBb0/CH/31fkgaQPj7Fr5dyCMzMg1rQe1FGOM6
fXT8WHASUpqRebQfDy2TPE7sjve2NenS36NeiiVZXhBo5MHvGCBY3W8OYljK4zeU
uugY3q/5At03UHw=
-----END CERTIFICATE-----
`

// Test certificate from www.google.com (valid until December 15, 2025)
const googleLeafOlderPEM = `
-----BEGIN CERTIFICATE-----
MIIEVzCCAz+gAwIBAgIQXEsKucZT6MwJr/NcaQmnozANBgkqhkiG9w0BAQsFADA7
MQswCQYDVQQGEwJVUzEeMBwGA1UEChMVR29vZ2xlIFRydXN0IFNlcnZpY2VzMQww
CgYDVQQDEwNXUjIwHhcNMjUwOTIyMDg0MjQwWhcNMjUxMjE1MDg0MjM5WjAZMRcw
FQYDVQQDEw53d3cuZ29vZ2xlLmNvbTBZMBMGByqGSM49AgEGCCqGSM49AwEHA0IA
BM3QmmV89za/vDWm/Ctodj6J5s0RLy5fo5QsoGRdMlzItH3jBRpmdWEMysalvQtm
aLGUUvJv5ASJHKfixPD3LWijggJCMIICPjAOBgNVHQ8BAf8EBAMCB4AwEwYDVR0l
BAwwCgYIKwYBBQUHAwEwDAYDVR0TAQH/BAIwADAdBgNVHQ4EFgQUUYk76ccIt4qc
kyjMh0xUc5iMmTIwHwYDVR0jBBgwFoAU3hse7XkV1D43JMMhu+w0OW1CsjAwWAYI
KwYBBQUHAQEETDBKMCEGCCsGAQUFBzABhhVodHRwOi8vby5wa2kuZ29vZy93cjIw
JQYIKwYBBQUHMAKGGWh0dHA6Ly9pLnBraS5nb29nL3dyMi5jcnQwGQYDVR0RBBIw
EIIOd3d3Lmdvb2dsZS5jb20wEwYDVR0gBAwwCjAIBgZngQwBAgEwNgYDVR0fBC8w
LTAroCmgJ4YlaHR0cDovL2MucGtpLmdvb2cvd3IyL0dTeVQxTjRQQnJnLmNybDCC
AQUGCisGAQQB1nkCBAIEgfYEgfMA8QB2AN3cyjSV1+EWBeeVMvrHn/g9HFDf2wA6
FBJ2Ciysu8gqAAABmXDN1WkAAAQDAEcwRQIgdH62Tub0woIi1sa+gQHvdMpNlfa6
WQgVn2Ov2CM0ktkCIQDyivdzECaAyaCq8GG+EtKWge4nLJ8FM++Q5WVQD9kCUgB3
AMz7D2qFcQll/pWbU87psnwi6YVcDZeNtql+VMD+TA2wAAABmXDN1WgAAAQDAEgw
RgIhAPNnKBAUSFiPjBYsu9A+UlI8ykhnoaZiFMhaDvrHGMKvAiEA02wfQcWu2753
HW54J/Iyeak0ni5z8jqayf1Rd5518Q0wDQYJKoZIhvcNAQELBQADggEBAAqYHEc6
CiVjrSPb0E4QSHYZIbqpHSYnOs8OQ7T54QM8yoMWOb4tWaMZGwdZayaL6ehyYKzS
8lhyxL4OPN9E51//mScXtemV4EbgrDm0fk3uH0gAX3oP+0DZH4X7t7L9aO8nalSl
KGJvEoHrphu2HbkAJY9OUqUo804OjXHeiY3FLUkoER7hb89w1qcaWxjRrVfflJ/Q
0pJCjtltJFSBTZbM6t0Y0uir9/XNPHcec4nMSyp3W/UEmcAoKc3kDJrT6CE2l2lI
Dd4Zns+bUA5A9z1Qy5c9MKX6I3rsHmUNUhGRz/lCyJDdc6UNoGKPmilI98JSRZYY
tXHHbX1dudpKfHM=
-----END CERTIFICATE-----
`

var (
	oidSHA256WithRSA = encasn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 11}
	oidSHA384WithRSA = encasn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 12}
	oidEd25519       = encasn1.ObjectIdentifier{1, 3, 101, 112}
	oidCommonName    = encasn1.ObjectIdentifier{2, 5, 4, 3}
	oidCountry       = encasn1.ObjectIdentifier{2, 5, 4, 6}
	oidBasicConstr   = encasn1.ObjectIdentifier{2, 5, 29, 19}
)

func pemToDER(t *testing.T, text string) []byte {
	t.Helper()
	block, _ := pem.Decode([]byte(text))
	require.NotNil(t, block, "fixture is not PEM")
	return block.Bytes
}

// certParts describes a synthetic certificate assembled with cryptobyte.
type certParts struct {
	version      int64 // Encoded version; negative omits the [0] field
	serial       *big.Int
	innerSigAlg  encasn1.ObjectIdentifier
	outerSigAlg  encasn1.ObjectIdentifier
	omitOuterAlg bool
	notBefore    string // UTCTime
	notAfter     string // GeneralizedTime
	issuerUID    bool
	subjectUID   bool
	extensions   bool
	trailing     []byte
}

func defaultParts() certParts {
	return certParts{
		version:     2,
		serial:      big.NewInt(4096),
		innerSigAlg: oidSHA256WithRSA,
		outerSigAlg: oidSHA256WithRSA,
		notBefore:   "240101000000Z",
		notAfter:    "20550101000000Z",
		extensions:  true,
	}
}

func addAlgorithm(b *cryptobyte.Builder, oid encasn1.ObjectIdentifier) {
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1ObjectIdentifier(oid)
		b.AddASN1NULL()
	})
}

func addAttribute(b *cryptobyte.Builder, oid encasn1.ObjectIdentifier, tag cbasn1.Tag, value string) {
	b.AddASN1(cbasn1.SET, func(b *cryptobyte.Builder) {
		b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(oid)
			b.AddASN1(tag, func(b *cryptobyte.Builder) { b.AddBytes([]byte(value)) })
		})
	})
}

func (p certParts) build(t *testing.T) []byte {
	t.Helper()

	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
			if p.version >= 0 {
				b.AddASN1(cbasn1.Tag(0).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
					b.AddASN1Int64(p.version)
				})
			}
			b.AddASN1BigInt(p.serial)
			addAlgorithm(b, p.innerSigAlg)
			b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
				addAttribute(b, oidCountry, cbasn1.PrintableString, "NL")
				addAttribute(b, oidCommonName, cbasn1.UTF8String, "Test Root")
			})
			b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
				b.AddASN1(cbasn1.UTCTime, func(b *cryptobyte.Builder) { b.AddBytes([]byte(p.notBefore)) })
				b.AddASN1(cbasn1.GeneralizedTime, func(b *cryptobyte.Builder) { b.AddBytes([]byte(p.notAfter)) })
			})
			b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
				addAttribute(b, oidCommonName, cbasn1.UTF8String, "leaf.test")
			})
			b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
				b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
					b.AddASN1ObjectIdentifier(oidEd25519)
				})
				b.AddASN1BitString(make([]byte, 32))
			})
			if p.issuerUID {
				b.AddASN1(cbasn1.Tag(1).ContextSpecific(), func(b *cryptobyte.Builder) { b.AddBytes([]byte{0x00, 0xaa}) })
			}
			if p.subjectUID {
				b.AddASN1(cbasn1.Tag(2).ContextSpecific(), func(b *cryptobyte.Builder) { b.AddBytes([]byte{0x00, 0xbb}) })
			}
			if p.extensions {
				b.AddASN1(cbasn1.Tag(3).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
					b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
						b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
							b.AddASN1ObjectIdentifier(oidBasicConstr)
							b.AddASN1OctetString([]byte{0x30, 0x00})
						})
					})
				})
			}
		})
		if !p.omitOuterAlg {
			addAlgorithm(b, p.outerSigAlg)
		}
		b.AddASN1BitString([]byte{0x01, 0x02, 0x03, 0x04})
	})

	der, err := b.Bytes()
	require.NoError(t, err, "building synthetic certificate")
	return append(der, p.trailing...)
}

func TestDecode_RealCertificates(t *testing.T) {
	tests := []struct {
		name      string
		pem       string
		serialHex string
		notBefore time.Time
		notAfter  time.Time
	}{
		{
			name:      "www.google.com 2026",
			pem:       googleLeafPEM,
			serialHex: "8b270e1ec0aacb550904c364ee3d1544",
			notBefore: time.Date(2025, 11, 24, 8, 41, 5, 0, time.UTC),
			notAfter:  time.Date(2026, 2, 16, 8, 41, 4, 0, time.UTC),
		},
		{
			name:      "www.google.com 2025",
			pem:       googleLeafOlderPEM,
			serialHex: "5c4b0ab9c653e8cc09aff35c6909a7a3",
			notBefore: time.Date(2025, 9, 22, 8, 42, 40, 0, time.UTC),
			notAfter:  time.Date(2025, 12, 15, 8, 42, 39, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			der := pemToDER(t, tt.pem)

			cert, err := x509der.Decode(der)
			require.NoError(t, err)

			want, err := x509.ParseCertificate(der)
			require.NoError(t, err)

			serial, ok := new(big.Int).SetString(tt.serialHex, 16)
			require.True(t, ok)

			assert.Equal(t, 3, cert.Version())
			assert.Equal(t, 0, serial.Cmp(cert.SerialNumber()))
			assert.Equal(t, want.SerialNumber.String(), cert.SerialDecimal())
			assert.Equal(t, want.SerialNumber.Bytes(), cert.SerialBytes())
			assert.Equal(t, "1.2.840.113549.1.1.11", cert.SignatureAlgorithm().OID)
			assert.Equal(t, want.SignatureAlgorithm.String(), cert.SignatureAlgorithm().Name)
			assert.Equal(t, want.PublicKeyAlgorithm.String(), cert.PublicKeyAlgorithm().Name)
			assert.Equal(t, "C=US, O=Google Trust Services, CN=WR2", cert.Issuer().String())
			assert.Equal(t, "CN=www.google.com", cert.Subject().String())
			assert.Equal(t, "WR2", cert.Issuer().CommonName())
			assert.True(t, tt.notBefore.Equal(cert.NotBefore()))
			assert.True(t, tt.notAfter.Equal(cert.NotAfter()))
			assert.True(t, cert.HasExtensions())
			assert.Equal(t, want.Signature, cert.Signature())
			assert.Equal(t, der, cert.Raw())
			assert.Len(t, cert.Fingerprint(), 64)
		})
	}
}

func TestDecode_GeneratedCertificate(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	// 2^80 + 12345, wider than any machine integer.
	serial := new(big.Int).Lsh(big.NewInt(1), 80)
	serial.Add(serial, big.NewInt(12345))

	template := &x509.Certificate{
		SerialNumber: serial,
		Subject: pkix.Name{
			Country:      []string{"NL"},
			Organization: []string{"Example Org"},
			CommonName:   "leaf.example.test",
		},
		NotBefore: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		NotAfter:  time.Date(2055, 3, 1, 12, 0, 0, 0, time.UTC),
		KeyUsage:  x509.KeyUsageDigitalSignature,
		DNSNames:  []string{"leaf.example.test"},
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	cert, err := x509der.Decode(der)
	require.NoError(t, err)

	assert.Equal(t, 3, cert.Version())
	assert.Equal(t, "1208925819614629174718521", cert.SerialDecimal())
	assert.Equal(t, "ECDSA-SHA256", cert.SignatureAlgorithm().Name)
	assert.Equal(t, "1.2.840.10045.4.3.2", cert.SignatureAlgorithm().OID)
	assert.Equal(t, "ECDSA", cert.PublicKeyAlgorithm().String())
	assert.Equal(t, "C=NL, O=Example Org, CN=leaf.example.test", cert.Subject().String())
	assert.Equal(t, cert.Subject(), cert.Issuer())
	assert.True(t, template.NotBefore.Equal(cert.NotBefore()))
	assert.True(t, template.NotAfter.Equal(cert.NotAfter()), "GeneralizedTime after 2049")
	assert.True(t, cert.HasExtensions())
}

func TestDecode_Synthetic(t *testing.T) {
	wide, ok := new(big.Int).SetString("4722366482869645213697", 10) // 2^72 + 1
	require.True(t, ok)
	unknownOID := encasn1.ObjectIdentifier{1, 2, 3, 4}

	tests := []struct {
		name    string
		mutate  func(p *certParts)
		version int
		check   func(t *testing.T, c *x509der.Certificate)
	}{
		{
			name:    "Version 3 with extensions",
			version: 3,
			check: func(t *testing.T, c *x509der.Certificate) {
				assert.True(t, c.HasExtensions())
				assert.Equal(t, "SHA256-RSA", c.SignatureAlgorithm().String())
				assert.Equal(t, "Ed25519", c.PublicKeyAlgorithm().Name)
				assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, c.Signature())
			},
		},
		{
			name:    "Version 3 without extensions",
			mutate:  func(p *certParts) { p.extensions = false },
			version: 3,
			check: func(t *testing.T, c *x509der.Certificate) {
				assert.False(t, c.HasExtensions())
			},
		},
		{
			name:    "Missing version defaults to 1",
			mutate:  func(p *certParts) { p.version, p.extensions = -1, false },
			version: 1,
		},
		{
			name:    "Explicit version 1",
			mutate:  func(p *certParts) { p.version, p.extensions = 0, false },
			version: 1,
		},
		{
			name:    "Version 2 with unique identifiers",
			mutate:  func(p *certParts) { p.version, p.extensions, p.issuerUID, p.subjectUID = 1, false, true, true },
			version: 2,
		},
		{
			name:    "Serial wider than 64 bits",
			mutate:  func(p *certParts) { p.serial = wide },
			version: 3,
			check: func(t *testing.T, c *x509der.Certificate) {
				assert.Equal(t, "4722366482869645213697", c.SerialDecimal())
				assert.Equal(t, []byte{0x01, 0, 0, 0, 0, 0, 0, 0, 0, 0x01}, c.SerialBytes())
			},
		},
		{
			name:    "Zero serial",
			mutate:  func(p *certParts) { p.serial = big.NewInt(0) },
			version: 3,
			check: func(t *testing.T, c *x509der.Certificate) {
				assert.Equal(t, "0", c.SerialDecimal())
			},
		},
		{
			name:    "UTCTime 50 is 1950",
			mutate:  func(p *certParts) { p.notBefore = "500101000000Z" },
			version: 3,
			check: func(t *testing.T, c *x509der.Certificate) {
				assert.Equal(t, 1950, c.NotBefore().Year())
				assert.Equal(t, 2055, c.NotAfter().Year())
			},
		},
		{
			name:    "Validity order is not enforced",
			mutate:  func(p *certParts) { p.notBefore, p.notAfter = "491231235959Z", "20000101000000Z" },
			version: 3,
			check: func(t *testing.T, c *x509der.Certificate) {
				assert.True(t, c.NotAfter().Before(c.NotBefore()))
			},
		},
		{
			name:    "Unknown signature algorithm keeps the OID",
			mutate:  func(p *certParts) { p.innerSigAlg, p.outerSigAlg = unknownOID, unknownOID },
			version: 3,
			check: func(t *testing.T, c *x509der.Certificate) {
				assert.Equal(t, "", c.SignatureAlgorithm().Name)
				assert.Equal(t, "1.2.3.4", c.SignatureAlgorithm().String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := defaultParts()
			if tt.mutate != nil {
				tt.mutate(&p)
			}

			cert, err := x509der.Decode(p.build(t))
			require.NoError(t, err)
			assert.Equal(t, tt.version, cert.Version())
			assert.Equal(t, "C=NL, CN=Test Root", cert.Issuer().String())
			assert.Equal(t, "CN=leaf.test", cert.Subject().String())
			if tt.check != nil {
				tt.check(t, cert)
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	google := pemToDER(t, googleLeafPEM)

	build := func(mutate func(p *certParts)) func(t *testing.T) []byte {
		return func(t *testing.T) []byte {
			p := defaultParts()
			mutate(&p)
			return p.build(t)
		}
	}
	fixed := func(der []byte) func(t *testing.T) []byte {
		return func(*testing.T) []byte { return der }
	}

	tests := []struct {
		name  string
		input func(t *testing.T) []byte
		kind  certerr.Kind
	}{
		{name: "Nil input", input: fixed(nil), kind: certerr.EmptyInput},
		{name: "Empty input", input: fixed([]byte{}), kind: certerr.EmptyInput},
		{name: "Truncated mid-length byte", input: fixed(google[:3]), kind: certerr.MalformedEncoding},
		{name: "Truncated content", input: fixed(google[:len(google)-1]), kind: certerr.MalformedEncoding},
		{name: "Indefinite length", input: fixed([]byte{0x30, 0x80, 0x00, 0x00}), kind: certerr.MalformedEncoding},
		{name: "Trailing bytes", input: build(func(p *certParts) { p.trailing = []byte{0x00} }), kind: certerr.MalformedEncoding},
		{name: "Not a SEQUENCE", input: fixed([]byte{0x02, 0x01, 0x00}), kind: certerr.UnsupportedStructure},
		{name: "Outer SEQUENCE with two elements", input: build(func(p *certParts) { p.omitOuterAlg = true }), kind: certerr.UnsupportedStructure},
		{name: "Version out of range", input: build(func(p *certParts) { p.version = 5 }), kind: certerr.UnsupportedStructure},
		{name: "Negative serial", input: build(func(p *certParts) { p.serial = big.NewInt(-1) }), kind: certerr.UnsupportedStructure},
		{name: "Extensions on version 1", input: build(func(p *certParts) { p.version = -1 }), kind: certerr.UnsupportedStructure},
		{name: "Extensions on version 2", input: build(func(p *certParts) { p.version = 1 }), kind: certerr.UnsupportedStructure},
		{name: "Unique identifier on version 1", input: build(func(p *certParts) { p.version, p.extensions, p.issuerUID = -1, false, true }), kind: certerr.UnsupportedStructure},
		{name: "Signature algorithm mismatch", input: build(func(p *certParts) { p.outerSigAlg = oidSHA384WithRSA }), kind: certerr.UnsupportedStructure},
		{name: "Invalid UTCTime", input: build(func(p *certParts) { p.notBefore = "241301000000Z" }), kind: certerr.MalformedEncoding},
		{
			name: "tbsCertificate missing fields",
			input: func(t *testing.T) []byte {
				var b cryptobyte.Builder
				b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
					b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) { b.AddASN1Int64(1) })
					addAlgorithm(b, oidSHA256WithRSA)
					b.AddASN1BitString([]byte{0x00})
				})
				der, err := b.Bytes()
				require.NoError(t, err)
				return der
			},
			kind: certerr.UnsupportedStructure,
		},
		{
			name: "tbsCertificate fields out of order",
			input: func(t *testing.T) []byte {
				var b cryptobyte.Builder
				b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
					b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
						addAlgorithm(b, oidSHA256WithRSA)
						b.AddASN1Int64(1)
					})
					addAlgorithm(b, oidSHA256WithRSA)
					b.AddASN1BitString([]byte{0x00})
				})
				der, err := b.Bytes()
				require.NoError(t, err)
				return der
			},
			kind: certerr.UnsupportedStructure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cert, err := x509der.Decode(tt.input(t))
			require.Error(t, err)
			assert.Nil(t, cert, "no partial certificate")
			assert.True(t, errors.Is(err, tt.kind), "expected %v, got %v", tt.kind, err)
		})
	}
}

func TestCertificate_Immutable(t *testing.T) {
	der := pemToDER(t, googleLeafPEM)
	cert, err := x509der.Decode(der)
	require.NoError(t, err)

	der[0] = 0xff
	cert.Raw()[1] = 0xff
	cert.SerialNumber().SetInt64(1)
	cert.Subject()[0].Value = "evil.example"
	cert.Signature()[0] ^= 0xff

	again, err := x509der.Decode(cert.Raw())
	require.NoError(t, err)
	assert.True(t, cert.Equal(again))
	assert.Equal(t, "CN=www.google.com", cert.Subject().String())
	assert.NotEqual(t, "1", cert.SerialDecimal())
	assert.Equal(t, again.Signature(), cert.Signature())
}

func TestDecode_Concurrent(t *testing.T) {
	der := pemToDER(t, googleLeafPEM)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := x509der.Decode(der)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestName(t *testing.T) {
	name := x509der.Name{
		{Type: "2.5.4.6", ShortName: "C", Value: "US"},
		{Type: "1.2.3.4", Value: "custom"},
		{Type: "2.5.4.3", ShortName: "CN", Value: "first"},
		{Type: "2.5.4.3", ShortName: "CN", Value: "second"},
	}

	assert.Equal(t, "C=US, 1.2.3.4=custom, CN=first, CN=second", name.String())
	assert.Equal(t, "first", name.CommonName())

	v, ok := name.Get("1.2.3.4")
	assert.True(t, ok)
	assert.Equal(t, "custom", v)

	_, ok = name.Get("O")
	assert.False(t, ok)
	assert.Equal(t, "", x509der.Name(nil).String())
}
