package api

import (
	"context"
	"net/http"
	"net/url"

	"daybook/internal/models"
)

const usersPath = "/api/users"

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type emailRequest struct {
	Email string `json:"email"`
}

type passwordRequest struct {
	Password string `json:"password"`
}

// Register creates a new account and returns the created identity.
func (c *Client) Register(ctx context.Context, username, email, password string) (*models.Identity, error) {
	var out models.Identity
	body := registerRequest{Username: username, Password: password, Email: email}
	if err := c.do(ctx, http.MethodPost, usersPath+"/register", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates; the session cookie lands in the client's jar and is
// sent on every later call.
func (c *Client) Login(ctx context.Context, username, password string) (*models.Identity, error) {
	var out models.Identity
	body := loginRequest{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, usersPath+"/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the backend session.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, usersPath+"/logout", nil, nil)
}

// UsernameExists reports whether a username is already taken.
func (c *Client) UsernameExists(ctx context.Context, username string) (bool, error) {
	var out bool
	path := usersPath + "/exists/username/" + url.PathEscape(username)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return false, err
	}
	return out, nil
}

// EmailExists reports whether an email address is already registered.
func (c *Client) EmailExists(ctx context.Context, email string) (bool, error) {
	var out bool
	path := usersPath + "/exists/email/" + url.PathEscape(email)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return false, err
	}
	return out, nil
}

// RequestPasswordReset asks the backend to email a reset token.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, usersPath+"/password-reset/request", emailRequest{Email: email}, nil)
}

// ValidatePasswordResetToken checks whether a reset token is still usable.
func (c *Client) ValidatePasswordResetToken(ctx context.Context, token string) (bool, error) {
	q := url.Values{}
	q.Set("token", token)

	var out bool
	if err := c.do(ctx, http.MethodGet, usersPath+"/password-reset/validate?"+q.Encode(), nil, &out); err != nil {
		return false, err
	}
	return out, nil
}

// ResetPassword sets a new password using a reset token.
func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	q := url.Values{}
	q.Set("token", token)
	return c.do(ctx, http.MethodPost, usersPath+"/password-reset/reset?"+q.Encode(), passwordRequest{Password: password}, nil)
}
