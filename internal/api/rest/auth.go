package rest

import (
	"context"
	"net/http"

	"github.com/dtroode/pdfgenie-client/internal/model"
)

// Register creates an account.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (model.User, error) {
	var user model.User
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", req, &user, true); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	var resp model.LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", req, &resp, true); err != nil {
		return model.LoginResponse{}, err
	}
	return resp, nil
}

// Me returns the user owning the current bearer token.
func (c *Client) Me(ctx context.Context) (model.User, error) {
	var user model.User
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, &user, false); err != nil {
		return model.User{}, err
	}
	return user, nil
}
