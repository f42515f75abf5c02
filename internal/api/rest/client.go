package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/pdfgenie-client/internal/logger"
	"github.com/dtroode/pdfgenie-client/internal/model"
)

const requestIDHeader = "X-Request-ID"

var (
	_ model.AuthClient = (*Client)(nil)
	_ model.PDFClient  = (*Client)(nil)
)

// Client is the process-wide adapter to the PDFGenie HTTP API.
// It owns the default Authorization header; only the session store mutates it.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *logger.Logger

	mu             sync.RWMutex
	bearer         string
	onUnauthorized func()
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, httpClient *http.Client, logger *logger.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse api url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported api url scheme %q", u.Scheme)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{baseURL: u, http: httpClient, logger: logger}, nil
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// SetBearer sets the token attached to every authenticated request.
func (c *Client) SetBearer(token string) {
	c.mu.Lock()
	c.bearer = token
	c.mu.Unlock()
}

// ClearBearer removes the default Authorization header.
func (c *Client) ClearBearer() {
	c.SetBearer("")
}

// Bearer returns the token currently attached to requests.
func (c *Client) Bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bearer
}

// OnUnauthorized registers the hook run when an authenticated call gets 401.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	c.onUnauthorized = fn
	c.mu.Unlock()
}

type request struct {
	method      string
	path        string
	body        io.Reader
	contentType string
	public      bool
}

func (c *Client) do(ctx context.Context, r request) (*http.Response, error) {
	u := c.baseURL.JoinPath(r.path)

	req, err := http.NewRequestWithContext(ctx, r.method, u.String(), r.body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	req.Header.Set("Accept", "application/json, */*")

	requestID, ok := RequestIDFromContext(ctx)
	if !ok {
		requestID = uuid.NewString()
	}
	req.Header.Set(requestIDHeader, requestID)

	authenticated := false
	if !r.public {
		if bearer := c.Bearer(); bearer != "" {
			req.Header.Set("Authorization", "Bearer "+bearer)
			authenticated = true
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s %s: %w", r.method, r.path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized && !r.public {
		apiErr := decodeError(resp)
		c.logger.Warn("API client: unauthorized response",
			"path", r.path,
			"request_id", requestID,
			"detail", apiErr.Detail)
		if authenticated {
			c.unauthorized()
		}
		return nil, fmt.Errorf("%w: %s", model.ErrUnauthorized, apiErr.Detail)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp)
	}

	return resp, nil
}

func (c *Client) unauthorized() {
	c.mu.RLock()
	hook := c.onUnauthorized
	c.mu.RUnlock()

	if hook != nil {
		hook()
	}
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any, public bool) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	resp, err := c.do(ctx, request{method: method, path: path, body: body, contentType: contentType, public: public})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) doBinary(ctx context.Context, method, path string, in any) (model.Binary, error) {
	var body io.Reader
	contentType := ""
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return model.Binary{}, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	resp, err := c.do(ctx, request{method: method, path: path, body: body, contentType: contentType})
	if err != nil {
		return model.Binary{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Binary{}, fmt.Errorf("failed to read %s response: %w", path, err)
	}

	return model.Binary{
		Filename:    FilenameFromDisposition(resp.Header.Get("Content-Disposition")),
		ContentType: resp.Header.Get("Content-Type"),
		Body:        data,
	}, nil
}
