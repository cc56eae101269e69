package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/biogleam/biogleam/internal/models"
)

// AuthPayload is what the backend returns from login and signup.
type AuthPayload struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// Login authenticates against the backend and persists the returned
// token before handing the payload back. A 401 here passes through
// untouched so the caller can show the credential error.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthPayload, error) {
	var out AuthPayload
	if err := c.do(ctx, http.MethodPost, loginPath, nil, loginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	if out.Token != "" {
		if err := c.tokens.Save(out.Token); err != nil {
			return nil, fmt.Errorf("failed to save token: %w", err)
		}
	}
	return &out, nil
}

// Signup registers a new account and persists the returned token.
func (c *Client) Signup(ctx context.Context, name, email, password, role string) (*AuthPayload, error) {
	var out AuthPayload
	req := signupRequest{Name: name, Email: email, Password: password, Role: role}
	if err := c.do(ctx, http.MethodPost, "/auth/signup", nil, req, &out); err != nil {
		return nil, err
	}
	if out.Token != "" {
		if err := c.tokens.Save(out.Token); err != nil {
			return nil, fmt.Errorf("failed to save token: %w", err)
		}
	}
	return &out, nil
}

// Logout tells the backend to drop the session and always discards the
// local token. Server failures are swallowed: logout must succeed locally.
func (c *Client) Logout(ctx context.Context) {
	if err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil); err != nil {
		c.log.Debug().Err(err).Msg("Logout request failed")
	}
	if err := c.tokens.Delete(); err != nil {
		c.log.Warn().Err(err).Msg("Failed to discard token on logout")
	}
}

// CurrentUser fetches the identity behind the stored token.
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var out struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, fmt.Errorf("backend returned no user")
	}
	return out.User, nil
}
