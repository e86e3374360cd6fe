package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/avelezt/lanes/internal/models"
)

// Auth endpoints. Signup and login both run an email+OTP exchange: the
// server mails a one-time code, verification returns the bearer token and
// user record the session stores.

func (c *Client) SendSignupOTP(ctx context.Context, email string) (string, error) {
	email = models.NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return "", ErrInvalidEmail
	}
	var out envelope
	if err := c.do(ctx, http.MethodPost, "/auth/signup/send-otp", map[string]string{"email": email}, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) VerifySignupOTP(ctx context.Context, email, otp string) (*Credentials, error) {
	return c.verifyOTP(ctx, "/auth/signup/verify", email, otp)
}

// CheckUser reports whether an account exists for the email, so the login
// flow knows whether to route to signup.
func (c *Client) CheckUser(ctx context.Context, email string) (bool, error) {
	email = models.NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return false, ErrInvalidEmail
	}
	var out envelope
	if err := c.do(ctx, http.MethodPost, "/auth/login/check-email", map[string]string{"email": email}, &out); err != nil {
		return false, err
	}
	return out.Exists, nil
}

func (c *Client) SendLoginOTP(ctx context.Context, email, password string) (string, error) {
	email = models.NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return "", ErrInvalidEmail
	}
	body := map[string]string{"email": email}
	if password != "" {
		body["password"] = password
	}
	var out envelope
	if err := c.do(ctx, http.MethodPost, "/auth/login/send-otp", body, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) VerifyLoginOTP(ctx context.Context, email, otp string) (*Credentials, error) {
	return c.verifyOTP(ctx, "/auth/login/verify", email, otp)
}

func (c *Client) verifyOTP(ctx context.Context, path, email, otp string) (*Credentials, error) {
	email = models.NormalizeEmail(email)
	otp = strings.TrimSpace(otp)
	if email == "" || otp == "" {
		return nil, ErrInvalidOTP
	}
	var out envelope
	if err := c.do(ctx, http.MethodPost, path, map[string]string{"email": email, "otp": otp}, &out); err != nil {
		return nil, err
	}
	if out.Token == "" || out.User == nil {
		return nil, ErrEmptyResponse
	}
	return &Credentials{Token: out.Token, User: *out.User}, nil
}

func (c *Client) UpdateProfile(ctx context.Context, req ProfileRequest) (*models.User, error) {
	var out envelope
	if err := c.do(ctx, http.MethodPut, "/auth/update-profile", req, &out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, ErrEmptyResponse
	}
	return out.User, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", map[string]string{}, nil)
}
