package transport

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCertificate(t *testing.T, certFile, keyFile string) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject: pkix.Name{
			Organization: []string{"Test"},
			Country:      []string{"US"},
			Locality:     []string{"San Francisco"},
		},
		NotBefore:   time.Now(),
		NotAfter:    time.Now().Add(365 * 24 * time.Hour),
		KeyUsage:    x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage: []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth},
		IPAddresses: []net.IP{net.IPv4(127, 0, 0, 1)},
	}

	certDER, err := x509.CreateCertificate(rand.Reader, &template, &template, &privateKey.PublicKey, privateKey)
	require.NoError(t, err)

	certOut, err := os.Create(certFile)
	require.NoError(t, err)
	defer certOut.Close()

	err = pem.Encode(certOut, &pem.Block{Type: "CERTIFICATE", Bytes: certDER})
	require.NoError(t, err)

	keyOut, err := os.Create(keyFile)
	require.NoError(t, err)
	defer keyOut.Close()

	privKeyBytes, err := x509.MarshalPKCS8PrivateKey(privateKey)
	require.NoError(t, err)

	err = pem.Encode(keyOut, &pem.Block{Type: "PRIVATE KEY", Bytes: privKeyBytes})
	require.NoError(t, err)
}

func writeServerCA(t *testing.T, srv *httptest.Server) string {
	caFile := filepath.Join(t.TempDir(), "ca.pem")
	out, err := os.Create(caFile)
	require.NoError(t, err)
	defer out.Close()

	require.NoError(t, pem.Encode(out, &pem.Block{Type: "CERTIFICATE", Bytes: srv.Certificate().Raw}))
	return caFile
}

func TestTLSLayer_TrustsCustomCA(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	tr, err := NewTLSLayer(writeServerCA(t, srv), "", "").Transport()
	require.NoError(t, err)

	resp, err := (&http.Client{Transport: tr}).Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestTLSLayer_ClientCertificate(t *testing.T) {
	dir := t.TempDir()
	certFile := filepath.Join(dir, "client.pem")
	keyFile := filepath.Join(dir, "client-key.pem")
	createTestCertificate(t, certFile, keyFile)

	tr, err := NewTLSLayer("", certFile, keyFile).Transport()
	require.NoError(t, err)
	require.Len(t, tr.TLSClientConfig.Certificates, 1)
	assert.Nil(t, tr.TLSClientConfig.RootCAs)
}

func TestTLSLayer_Errors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.pem")
	require.NoError(t, os.WriteFile(garbage, []byte("not a certificate"), 0o600))

	tests := []struct {
		name    string
		layer   *TLSLayer
		wantErr string
	}{
		{name: "missing CA", layer: NewTLSLayer(filepath.Join(dir, "absent.pem"), "", ""), wantErr: "failed to read CA file"},
		{name: "empty CA", layer: NewTLSLayer(garbage, "", ""), wantErr: "no certificates found"},
		{name: "missing key pair", layer: NewTLSLayer("", filepath.Join(dir, "c.pem"), filepath.Join(dir, "k.pem")), wantErr: "failed to load TLS certificate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := tt.layer.Transport()
			require.Error(t, err)
			assert.Nil(t, tr)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewLayer(t *testing.T) {
	_, plain := NewLayer("", "", "").(*PlainLayer)
	assert.True(t, plain)

	_, secure := NewLayer("ca.pem", "", "").(*TLSLayer)
	assert.True(t, secure)

	tr, err := NewPlainLayer().Transport()
	require.NoError(t, err)
	assert.NotNil(t, tr)
}
