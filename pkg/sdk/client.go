// Package sdk provides the client-side library for the portfolio API: an
// HTTP client, the local browse/filter/search layer, and the on-disk session
// token cache used by the admin CLI.
package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/advmanik/casefolio/pkg/schema"
)

var (
	// ErrUnauthorized is returned on a failed login or a rejected token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is returned when no case matches the requested id.
	ErrNotFound = errors.New("not found")
)

// Client talks to the portfolio API. Mutating calls attach the session token
// obtained from Login (or restored via SetToken) as a bearer credential.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// New creates a client for the API at baseURL (e.g. "http://localhost:3001").
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken installs a previously obtained session token.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the current session token, empty when not logged in.
func (c *Client) Token() string { return c.token }

// Login exchanges the credential pair for a session token and installs it on
// the client.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/login", body, &out); err != nil {
		return "", err
	}
	c.token = out.Token
	return out.Token, nil
}

// ListCases fetches all cases, newest first.
func (c *Client) ListCases(ctx context.Context) ([]schema.Case, error) {
	var items []schema.Case
	if err := c.do(ctx, http.MethodGet, "/api/cases", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateCase adds a new case and returns it with its assigned id.
func (c *Client) CreateCase(ctx context.Context, d schema.CaseDraft) (schema.Case, error) {
	var item schema.Case
	err := c.do(ctx, http.MethodPost, "/api/cases", d, &item)
	return item, err
}

// UpdateCase replaces the four draft fields of an existing case.
func (c *Client) UpdateCase(ctx context.Context, id string, d schema.CaseDraft) (schema.Case, error) {
	var item schema.Case
	err := c.do(ctx, http.MethodPut, "/api/cases/"+id, d, &item)
	return item, err
}

// DeleteCase removes a case.
func (c *Client) DeleteCase(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/cases/"+id, nil, nil)
}

// do performs one request, attaching the token when present, and maps error
// statuses to typed errors carrying the server's message.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var reqBody *bytes.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Message string `json:"message"`
		}
		json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Message == "" {
			apiErr.Message = resp.Status
		}
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Message)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrNotFound, apiErr.Message)
		default:
			return errors.New(apiErr.Message)
		}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
