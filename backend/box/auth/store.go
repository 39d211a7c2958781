// Package auth implements the Box OAuth 2.0 token lifecycle: the authorization-code
// exchange, durable persistence of issued tokens, and expiry-driven refresh. Refresh
// is serialized so concurrent API calls never race a rotating refresh token.
package auth

import (
	"context"
	"errors"
	"time"
)

// errRecordNotFound is returned by Update when the record's ID is unknown.
var errRecordNotFound = errors.New("token record not found")

// TokenRecord is one persisted token grant. ExpiresAt is derived from ExpiresIn at
// save time so expiry checks never depend on the provider's clock.
type TokenRecord struct {
	ID           int64
	UserKey      string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	ExpiresAt    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Expired reports whether the access token is no longer usable at the given instant.
func (r *TokenRecord) Expired(now time.Time) bool {
	return !r.ExpiresAt.After(now)
}

// Store persists token records. Latest returns the most recently created record for
// the user key, or nil with no error when none exists. The empty user key addresses
// the application-wide grant.
type Store interface {
	Latest(ctx context.Context, userKey string) (*TokenRecord, error)
	Insert(ctx context.Context, rec *TokenRecord) error
	Update(ctx context.Context, rec *TokenRecord) error
}
