package api

import (
	"context"
	"net/http"
	"net/url"

	wzerrors "github.com/workzen/workzen-cli/internal/errors"
	"github.com/workzen/workzen-cli/internal/hr"
)

// Auth endpoint paths, relative to the base URL.
const (
	pathLogin              = "/auth/login"
	pathSignup             = "/auth/signup"
	pathMe                 = "/auth/me"
	pathChangePassword     = "/auth/change-password"
	pathVerifyEmail        = "/auth/verify-email"
	pathResendVerification = "/auth/resend-verification"
)

// Login authenticates and, on success, persists the token plus the user and
// company records. The persistence side effect is deliberate: session
// restore only has to read the store back.
func (c *Client) Login(ctx context.Context, req hr.LoginRequest) (*hr.LoginResponse, error) {
	envelope, err := c.do(ctx, http.MethodPost, pathLogin, req, false)
	if err != nil {
		return nil, err
	}
	if !envelope.Success || len(envelope.Data) == 0 {
		return nil, wzerrors.NewRequestFailedError(0, fallback(envelope.Message, "login failed"))
	}

	var out hr.LoginResponse
	if err := envelope.Decode(&out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, wzerrors.NewMalformedResponseError("login response is missing token", nil)
	}

	c.store.SaveToken(out.Token)
	c.store.SaveUser(out.User)
	if out.Company != nil {
		c.store.SaveCompany(*out.Company)
	}
	c.resetUnauthorizedLatch()

	return &out, nil
}

// Signup registers a company and its admin account. It never stores
// credentials; the caller still has to login.
func (c *Client) Signup(ctx context.Context, req hr.SignupRequest) (*Envelope, error) {
	envelope, err := c.do(ctx, http.MethodPost, pathSignup, req, false)
	if err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, wzerrors.NewRequestFailedError(0, fallback(envelope.Message, "signup failed"))
	}
	return envelope, nil
}

// Me fetches the current user and refreshes the cached record on success.
func (c *Client) Me(ctx context.Context) (*hr.User, error) {
	envelope, err := c.Get(ctx, pathMe)
	if err != nil {
		return nil, err
	}
	if !envelope.Success || len(envelope.Data) == 0 {
		return nil, wzerrors.NewRequestFailedError(0, fallback(envelope.Message, "failed to fetch user data"))
	}

	var user hr.User
	if err := envelope.Decode(&user); err != nil {
		return nil, err
	}
	c.store.SaveUser(user)
	return &user, nil
}

// ChangePassword changes the caller's password. Session identity is
// unchanged; the token stays valid.
func (c *Client) ChangePassword(ctx context.Context, req hr.ChangePasswordRequest) error {
	envelope, err := c.Post(ctx, pathChangePassword, req)
	if err != nil {
		return err
	}
	if !envelope.Success {
		return wzerrors.NewRequestFailedError(0, fallback(envelope.Message, "failed to change password"))
	}
	return nil
}

// VerifyEmail confirms an email verification token.
func (c *Client) VerifyEmail(ctx context.Context, token string) (*Envelope, error) {
	path := pathVerifyEmail + "?token=" + url.QueryEscape(token)
	envelope, err := c.do(ctx, http.MethodGet, path, nil, false)
	if err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, wzerrors.NewRequestFailedError(0, fallback(envelope.Message, "email verification failed"))
	}
	return envelope, nil
}

// ResendVerification requests a fresh verification email.
func (c *Client) ResendVerification(ctx context.Context, email string) (*Envelope, error) {
	body := map[string]string{"email": email}
	envelope, err := c.do(ctx, http.MethodPost, pathResendVerification, body, false)
	if err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, wzerrors.NewRequestFailedError(0, fallback(envelope.Message, "failed to resend verification"))
	}
	return envelope, nil
}

func fallback(message, alt string) string {
	if message != "" {
		return message
	}
	return alt
}
