// Package legacy provides the HTTP client for the pre-existing
// user-management backend the portal layers on top of.
package legacy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"agroclima_portal/internal/domain/entities"
	"agroclima_portal/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET not configured")

// Client implements interfaces.ILegacyUserGateway.
//
// The backend authenticates requests with a short-lived HS256 bearer
// token and identifies users by login (email) only.
type Client struct {
	lookupURL  string
	alterURL   string
	jwtSecret  string
	httpClient *http.Client
}

var _ interfaces.ILegacyUserGateway = (*Client)(nil)

func NewClient(lookupURL, alterURL, jwtSecret string) *Client {
	return &Client{
		lookupURL: lookupURL,
		alterURL:  alterURL,
		jwtSecret: jwtSecret,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewClientFromEnv builds the client from USER_LOOKUP_URL, USER_ALTER_URL
// and JWT_SECRET. Returns nil when the lookup URL is absent so callers can
// run without the legacy integration.
func NewClientFromEnv() *Client {
	lookupURL := os.Getenv("USER_LOOKUP_URL")
	if lookupURL == "" {
		log.Printf("[legacy][client] USER_LOOKUP_URL not configured; legacy integration disabled")
		return nil
	}
	return NewClient(lookupURL, os.Getenv("USER_ALTER_URL"), os.Getenv("JWT_SECRET"))
}

type lookupResponse struct {
	OK   bool `json:"ok"`
	User *struct {
		ID          int    `json:"id"`
		Nome        string `json:"nome"`
		Login       string `json:"login"`
		MaxSessions int    `json:"max_sessions"`
		Pagante     string `json:"pagante"`
	} `json:"user"`
}

// LookupUser fetches the authoritative user record by email.
func (c *Client) LookupUser(ctx context.Context, email string) (entities.User, error) {
	token, err := c.bearerToken()
	if err != nil {
		return entities.User{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.lookupURL+url.QueryEscape(email), nil)
	if err != nil {
		return entities.User{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entities.User{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return entities.User{}, interfaces.ErrLegacyUserNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return entities.User{}, fmt.Errorf("legacy backend returned status %d", resp.StatusCode)
	}

	var payload lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return entities.User{}, err
	}
	if !payload.OK || payload.User == nil {
		return entities.User{}, interfaces.ErrLegacyUserNotFound
	}

	u := payload.User
	return entities.User{
		ID:          u.ID,
		Nome:        u.Nome,
		Login:       u.Login,
		MaxSessions: u.MaxSessions,
		Pagante:     u.Pagante,
	}, nil
}

// AlterUser pushes an entitlement change to the legacy backend.
func (c *Client) AlterUser(ctx context.Context, login string, maxSessions int, pagante string) error {
	if c.alterURL == "" {
		return errors.New("USER_ALTER_URL not configured")
	}

	token, err := c.bearerToken()
	if err != nil {
		return err
	}

	body, err := json.Marshal(map[string]any{
		"login":        login,
		"max_sessions": maxSessions,
		"pagante":      pagante,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.alterURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("legacy backend returned status %d: %s", resp.StatusCode, string(snippet))
	}
	return nil
}

// bearerToken signs the short-lived HS256 token the backend expects.
func (c *Client) bearerToken() (string, error) {
	if c.jwtSecret == "" {
		return "", ErrMissingJWTSecret
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  1,
		"name": "AgroClima API",
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(c.jwtSecret))
}
