package backend

import (
	"context"
	"net/http"

	"github.com/tadbeerx/admin-console/pkg/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the payload returned by a successful login.
type LoginResponse struct {
	Message string          `json:"message"`
	User    models.AuthUser `json:"user"`
	Token   string          `json:"token"`
}

// Login authenticates against the remote API and stores the returned bearer
// token on success.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}

	c.store.Set(resp.Token)
	return &resp, nil
}

// Logout tells the remote API to end the session, then clears the stored
// token regardless of whether the remote call succeeded.
func (c *Client) Logout(ctx context.Context) error {
	defer c.store.Clear()
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil)
}

// Verify asks the remote API whether the stored token is still valid. Any
// failure clears the token so the next protected-page check redirects to
// login.
func (c *Client) Verify(ctx context.Context) (*models.AuthUser, error) {
	var resp struct {
		User models.AuthUser `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/verify", nil, nil, &resp); err != nil {
		c.store.Clear()
		return nil, err
	}
	return &resp.User, nil
}
