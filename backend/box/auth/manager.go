package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/gzai/boxfs/backend/box/api"
)

// ErrNoToken is returned when an operation needs a stored token grant and none
// exists for the requested user key. The caller must run the authorization flow.
var ErrNoToken = errors.New("no token on record; complete the authorization flow first")

// Config carries the OAuth client registration for a Box application.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AuthorizeURL string
	TokenURL     string

	// PerUser scopes token grants by user key. When false every grant is stored
	// under the application-wide (empty) key regardless of the key callers pass.
	PerUser bool
}

// Manager drives the token lifecycle: authorization-code exchange, persistence,
// and expiry-driven refresh. A single mutex serializes refreshes so only one
// caller redeems a given refresh token; Box rotates refresh tokens on use, so a
// losing racer would otherwise invalidate the winner's grant.
type Manager struct {
	oauth *oauth2.Config
	store Store

	perUser bool
	now     func() time.Time

	mu sync.Mutex
}

// NewManager wires a Manager over the given store.
func NewManager(cfg Config, store Store) *Manager {
	return &Manager{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthorizeURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		store:   store,
		perUser: cfg.PerUser,
		now:     time.Now,
	}
}

// AuthorizationURL returns the provider URL the user must visit to grant access.
func (m *Manager) AuthorizationURL() string {
	return m.oauth.AuthCodeURL("")
}

func (m *Manager) key(userKey string) string {
	if !m.perUser {
		return ""
	}
	return userKey
}

// Exchange redeems an authorization code for a token grant and persists it. An
// existing grant for the same user key is replaced in place; otherwise a new
// record is created.
func (m *Manager) Exchange(ctx context.Context, code, userKey string) (*TokenRecord, error) {
	tok, err := m.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, mapOAuthError(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := m.key(userKey)
	rec, err := m.store.Latest(ctx, key)
	if err != nil {
		return nil, err
	}

	now := m.now()
	if rec == nil {
		rec = &TokenRecord{UserKey: key, CreatedAt: now}
	}
	m.applyToken(rec, tok, now)

	if rec.ID == 0 {
		err = m.store.Insert(ctx, rec)
	} else {
		err = m.store.Update(ctx, rec)
	}
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// Refresh forces a refresh of the stored grant for the user key, regardless of
// expiry. It fails with ErrNoToken when no grant exists.
func (m *Manager) Refresh(ctx context.Context, userKey string) (*TokenRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, err := m.store.Latest(ctx, m.key(userKey))
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNoToken
	}

	if err := m.refreshLocked(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// AccessToken returns a usable access token for the user key, refreshing first
// when the stored one has expired. Concurrent callers observing an expired token
// serialize on the manager mutex, so exactly one refresh runs and the rest reuse
// its result.
func (m *Manager) AccessToken(ctx context.Context, userKey string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, err := m.store.Latest(ctx, m.key(userKey))
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", ErrNoToken
	}

	if rec.Expired(m.now()) {
		if err := m.refreshLocked(ctx, rec); err != nil {
			return "", err
		}
	}

	return rec.AccessToken, nil
}

// refreshLocked redeems the record's refresh token and updates the record in
// place. Callers hold m.mu.
func (m *Manager) refreshLocked(ctx context.Context, rec *TokenRecord) error {
	src := m.oauth.TokenSource(ctx, &oauth2.Token{
		RefreshToken: rec.RefreshToken,
		// Expiry in the past forces the source to hit the token endpoint.
		Expiry: time.Unix(1, 0),
	})

	tok, err := src.Token()
	if err != nil {
		return mapOAuthError(err)
	}

	m.applyToken(rec, tok, m.now())
	return m.store.Update(ctx, rec)
}

// applyToken copies a provider token response onto the record. The provider's
// relative expires_in is stored verbatim and anchored to the manager clock;
// tok.Expiry is computed from the wall clock and must not leak into the record.
func (m *Manager) applyToken(rec *TokenRecord, tok *oauth2.Token, now time.Time) {
	rec.AccessToken = tok.AccessToken
	if tok.RefreshToken != "" {
		rec.RefreshToken = tok.RefreshToken
	}

	expiresIn := tok.ExpiresIn
	if expiresIn == 0 && !tok.Expiry.IsZero() {
		expiresIn = int64(time.Until(tok.Expiry) / time.Second)
	}
	if expiresIn < 0 {
		expiresIn = 0
	}
	rec.ExpiresIn = expiresIn
	rec.ExpiresAt = now.Add(time.Duration(expiresIn) * time.Second)
	rec.UpdatedAt = now
}

// TokenProvider adapts the manager to the API client's token interface for a
// fixed user key.
func (m *Manager) TokenProvider(userKey string) api.TokenProvider {
	return tokenProviderFunc(func(ctx context.Context) (string, error) {
		return m.AccessToken(ctx, userKey)
	})
}

type tokenProviderFunc func(ctx context.Context) (string, error)

func (f tokenProviderFunc) AccessToken(ctx context.Context) (string, error) {
	return f(ctx)
}

// mapOAuthError normalizes token-endpoint failures into the API error shape so
// callers handle auth and storage failures uniformly.
func mapOAuthError(err error) error {
	var rerr *oauth2.RetrieveError
	if !errors.As(err, &rerr) {
		return fmt.Errorf("token request failed: %w", err)
	}

	apiErr := &api.Error{
		Code:    rerr.ErrorCode,
		Message: rerr.ErrorDescription,
		Status:  http.StatusUnauthorized,
	}
	if rerr.Response != nil {
		apiErr.Status = rerr.Response.StatusCode
	}
	if apiErr.Code == "" {
		apiErr.Code = "unknown_error"
	}
	if apiErr.Message == "" {
		apiErr.Message = "Box API error"
	}

	return apiErr
}
