package rest

import (
	"context"
	"net/http"
	"path"

	"github.com/dtroode/pdfgenie-client/internal/model"
)

// Documents lists the files the user has uploaded.
func (c *Client) Documents(ctx context.Context) ([]model.Document, error) {
	var docs []model.Document
	if err := c.doJSON(ctx, http.MethodGet, "/user/documents", nil, &docs, false); err != nil {
		return nil, err
	}
	return docs, nil
}

// Health reports backend liveness. It needs no session.
func (c *Client) Health(ctx context.Context) (model.Health, error) {
	var h model.Health
	if err := c.doJSON(ctx, http.MethodGet, "/health", nil, &h, true); err != nil {
		return model.Health{}, err
	}
	return h, nil
}

func pathBase(p string) string {
	b := path.Base(p)
	if b == "." || b == "/" {
		return ""
	}
	return b
}
