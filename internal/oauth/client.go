package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// Client exchanges a refresh token for a new access token at an OAuth2
// token endpoint. The client id identifies a public client; there is no
// client secret.
type Client struct {
	Endpoint   string
	ClientID   string
	HTTPClient *http.Client
}

// NewClient creates a token endpoint client
func NewClient(endpoint, clientID string, timeout time.Duration) *Client {
	return &Client{
		Endpoint: endpoint,
		ClientID: clientID,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// tokenResponse is the token endpoint response body
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope"`
	Error        string `json:"error"`
	ErrorDesc    string `json:"error_description"`
}

// ResponseError is returned when the endpoint answered with a decodable
// body that did not supply an access token
type ResponseError struct {
	Code        string // server "error" field
	Description string // server "error_description" field
	Body        []byte // raw response body
}

func (e *ResponseError) Error() string {
	if e.Code != "" {
		return e.Code
	}
	if e.Description != "" {
		return e.Description
	}
	return string(e.Body)
}

// Refresh performs the refresh_token grant. Exactly one request is made;
// the returned token carries the raw expires_in seconds, zero when the
// server omitted the field. An empty RefreshToken on the result means the
// server did not rotate it.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	form.Set("client_id", c.ClientID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if tr.AccessToken == "" {
		return nil, &ResponseError{
			Code:        tr.Error,
			Description: tr.ErrorDesc,
			Body:        body,
		}
	}

	token := &oauth2.Token{
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		TokenType:    tr.TokenType,
		ExpiresIn:    tr.ExpiresIn,
	}
	if tr.ExpiresIn > 0 {
		token.Expiry = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	}

	return token, nil
}
