package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultAPIURL    = "https://api.box.com/2.0"
	defaultUploadURL = "https://upload.box.com/api/2.0"

	// SentinelID is the "not found" folder/file ID. Name searches that match nothing
	// resolve to it rather than erroring; remote calls made against it fail with the
	// provider's own not-found error.
	SentinelID = "0"
)

// TokenProvider supplies a valid bearer token for each outbound call. Implementations
// are expected to refresh expired tokens transparently.
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// StaticTokenProvider is a TokenProvider returning a fixed token. Useful for developer
// tokens and tests.
type StaticTokenProvider string

// AccessToken returns the fixed token.
func (s StaticTokenProvider) AccessToken(context.Context) (string, error) {
	return string(s), nil
}

// Client is a stateless wrapper issuing authenticated HTTP calls against the Box REST
// endpoints and normalizing every response. All methods honor the passed context for
// cancellation and rely on the TokenProvider for bearer tokens.
type Client struct {
	httpClient   *http.Client
	tokens       TokenProvider
	apiURL       string
	uploadURL    string
	rootFolderID string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithAPIURL overrides the REST API base URL.
func WithAPIURL(u string) ClientOption {
	return func(c *Client) { c.apiURL = u }
}

// WithUploadURL overrides the upload API base URL.
func WithUploadURL(u string) ClientOption {
	return func(c *Client) { c.uploadURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = h }
}

// WithTimeout sets a per-request timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithRootFolderID sets the folder ID substituted whenever a caller passes the sentinel
// (or empty) parent ID. Defaults to "0", Box's root folder.
func WithRootFolderID(id string) ClientOption {
	return func(c *Client) { c.rootFolderID = id }
}

// NewClient returns a Client authenticating through the given TokenProvider.
func NewClient(tokens TokenProvider, opts ...ClientOption) *Client {
	c := &Client{
		httpClient:   &http.Client{},
		tokens:       tokens,
		apiURL:       defaultAPIURL,
		uploadURL:    defaultUploadURL,
		rootFolderID: SentinelID,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// RootFolderID returns the configured default root parent folder ID.
func (c *Client) RootFolderID() string {
	return c.rootFolderID
}

// defaultParent substitutes the configured root folder for sentinel or empty parent IDs.
func (c *Client) defaultParent(parentID string) string {
	if parentID == "" || parentID == SentinelID {
		return c.rootFolderID
	}
	return parentID
}

// newRequest builds an authenticated request with the given extra headers.
func (c *Client) newRequest(ctx context.Context, method, url string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire access token failed: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

// doJSON issues the request and decodes the JSON response body into out (when non-nil).
// Any response with status >= 400 is mapped to the failure envelope.
func (c *Client) doJSON(ctx context.Context, method, url string, reqBody, out any, headers map[string]string) error {
	var body io.Reader
	if reqBody != nil {
		buf, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshal request failed: %w", err)
		}
		body = bytes.NewReader(buf)
		if headers == nil {
			headers = map[string]string{}
		}
		if _, ok := headers["Content-Type"]; !ok {
			headers["Content-Type"] = "application/json"
		}
	}

	req, err := c.newRequest(ctx, method, url, body, headers)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response failed: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return parseError(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response failed: %w", err)
		}
	}

	return nil
}

// User returns the authenticated Box user.
func (c *Client) User(ctx context.Context) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodGet, c.apiURL+"/users/me", nil, &user, nil); err != nil {
		return nil, err
	}
	return &user, nil
}

// exactMatch returns the first entry in the collection whose name equals name exactly.
// Provider search is full-text, so prefix and substring matches are filtered out here;
// the first exact match wins and the remainder is ignored. A nil return means no match.
func exactMatch(items *ItemCollection, name string) *Entry {
	if items == nil || items.TotalCount == 0 {
		return nil
	}
	for i := range items.Entries {
		if items.Entries[i].Name == name {
			return &items.Entries[i]
		}
	}
	return nil
}
