package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/pdfgenie-client/internal/logger"
	"github.com/dtroode/pdfgenie-client/internal/testutil"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestLogging_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		next       http.RoundTripper
		wantStatus int
		wantErr    bool
	}{
		{
			name: "success path",
			next: roundTripFunc(func(r *http.Request) (*http.Response, error) {
				rec := httptest.NewRecorder()
				rec.WriteHeader(http.StatusOK)
				return rec.Result(), nil
			}),
			wantStatus: http.StatusOK,
		},
		{
			name: "error status passes through",
			next: roundTripFunc(func(r *http.Request) (*http.Response, error) {
				rec := httptest.NewRecorder()
				rec.WriteHeader(http.StatusBadGateway)
				return rec.Result(), nil
			}),
			wantStatus: http.StatusBadGateway,
		},
		{
			name: "transport error propagates",
			next: roundTripFunc(func(r *http.Request) (*http.Response, error) {
				return nil, errors.New("connection refused")
			}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := NewLogging(tt.next, testutil.MakeNoopLogger())
			req := httptest.NewRequest(http.MethodPost, "http://api.local/pdf/merge", nil)

			resp, err := l.RoundTrip(req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestLogging_DoesNotLogAuthorization(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogging(roundTripFunc(func(r *http.Request) (*http.Response, error) {
		rec := httptest.NewRecorder()
		rec.WriteHeader(http.StatusNoContent)
		return rec.Result(), nil
	}), logger.NewWithWriter(-4, &buf, nil))

	req := httptest.NewRequest(http.MethodGet, "http://api.local/auth/me", nil)
	req.Header.Set("Authorization", "Bearer secret-token")
	req.Header.Set("X-Request-ID", "req-1")

	_, err := l.RoundTrip(req)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "path=/auth/me")
	assert.Contains(t, buf.String(), "request_id=req-1")
	assert.NotContains(t, buf.String(), "secret-token")
}
