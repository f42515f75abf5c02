package transport

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"

	"github.com/dtroode/pdfgenie-client/internal/model"
)

var (
	_ model.SecurityLayer = (*TLSLayer)(nil)
	_ model.SecurityLayer = (*PlainLayer)(nil)
)

// TLSLayer trusts a custom CA and optionally presents a client certificate.
type TLSLayer struct {
	caFileName         string
	certFileName       string
	privateKeyFileName string
}

// NewTLSLayer creates a TLSLayer. Empty certificate or key names disable
// client authentication; an empty CA name keeps the system roots.
func NewTLSLayer(caFileName, certFileName, privateKeyFileName string) *TLSLayer {
	return &TLSLayer{
		caFileName:         caFileName,
		certFileName:       certFileName,
		privateKeyFileName: privateKeyFileName,
	}
}

// Transport returns a transport configured with the TLS material.
func (l *TLSLayer) Transport() (*http.Transport, error) {
	tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}

	if l.caFileName != "" {
		pem, err := os.ReadFile(l.caFileName)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA file: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in %s", l.caFileName)
		}
		tlsConfig.RootCAs = pool
	}

	if l.certFileName != "" || l.privateKeyFileName != "" {
		cert, err := tls.LoadX509KeyPair(l.certFileName, l.privateKeyFileName)
		if err != nil {
			return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	t := http.DefaultTransport.(*http.Transport).Clone()
	t.TLSClientConfig = tlsConfig
	return t, nil
}

// PlainLayer uses the default transport settings.
type PlainLayer struct{}

// NewPlainLayer creates a PlainLayer.
func NewPlainLayer() *PlainLayer {
	return &PlainLayer{}
}

// Transport returns a clone of http.DefaultTransport.
func (l *PlainLayer) Transport() (*http.Transport, error) {
	return http.DefaultTransport.(*http.Transport).Clone(), nil
}

// NewLayer picks the TLS layer when any TLS file is configured.
func NewLayer(caFileName, certFileName, privateKeyFileName string) model.SecurityLayer {
	if caFileName == "" && certFileName == "" && privateKeyFileName == "" {
		return NewPlainLayer()
	}
	return NewTLSLayer(caFileName, certFileName, privateKeyFileName)
}
