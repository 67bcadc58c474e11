package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"demoready/internal/config"
	"demoready/internal/core/ports"
)

var ErrNotConfigured = errors.New("backend URL is not configured")

// StatusError is returned for any non-2xx answer from the backend.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	http        *http.Client
	baseURL     *url.URL
	anonKey     string
	signInPath  string
	signOutPath string
}

// Compile-time interface check
var _ ports.Authenticator = (*Client)(nil)

func NewClient(cfg config.BackendSettings) (*Client, error) {
	if cfg.URL == "" {
		return nil, ErrNotConfigured
	}

	base, err := url.Parse(strings.TrimRight(cfg.URL, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse backend URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("backend URL must be absolute: %q", cfg.URL)
	}

	return &Client{
		http:        &http.Client{Timeout: cfg.Timeout},
		baseURL:     base,
		anonKey:     cfg.AnonKey,
		signInPath:  cfg.SignInPath,
		signOutPath: cfg.SignOutPath,
	}, nil
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID string `json:"id"`
	} `json:"user"`
}

func (c *Client) SignIn(ctx context.Context, email, password string) (ports.Session, error) {
	body, err := json.Marshal(signInRequest{Email: email, Password: password})
	if err != nil {
		return ports.Session{}, fmt.Errorf("failed to encode sign-in request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.signInPath, bytes.NewReader(body))
	if err != nil {
		return ports.Session{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return ports.Session{}, fmt.Errorf("failed to sign in: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp); err != nil {
		return ports.Session{}, err
	}

	var decoded signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.Session{}, fmt.Errorf("failed to decode sign-in response: %w", err)
	}
	if decoded.AccessToken == "" {
		return ports.Session{}, errors.New("sign-in response carried no access token")
	}

	return ports.Session{AccessToken: decoded.AccessToken, UserID: decoded.User.ID}, nil
}

func (c *Client) SignOut(ctx context.Context, session ports.Session) error {
	req, err := c.newRequest(ctx, http.MethodPost, c.signOutPath, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+session.AccessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	return checkStatus(resp)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse path %q: %w", path, err)
	}

	target := *c.baseURL
	target.Path = c.baseURL.Path + ref.Path
	target.RawQuery = ref.RawQuery

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.anonKey != "" {
		req.Header.Set("apikey", c.anonKey)
	}
	return req, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
}

// errorMessage pulls a human readable reason out of the usual error
// envelopes, falling back to the raw body.
func errorMessage(raw []byte) string {
	var envelope struct {
		ErrorDescription string `json:"error_description"`
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		Error            string `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		for _, candidate := range []string{envelope.ErrorDescription, envelope.Msg, envelope.Message, envelope.Error} {
			if candidate != "" {
				return candidate
			}
		}
	}
	return strings.TrimSpace(string(raw))
}
