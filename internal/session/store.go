// Package session holds the authenticated-principal record for the
// lifetime of one browser session. The Store interface is the single
// source of truth for session state; backends are pluggable (Redis for
// multi-process deployments, in-memory for single-process and tests).
package session

import (
	"context"
	"time"
)

// Principal is the authenticated identity record held for a session. It
// exists only between login and logout or idle expiry.
type Principal struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// Store persists session principals keyed by an opaque session id. The
// session id is delivered to browsers in an HTTP-only cookie; the store
// never sees cookies, only ids.
//
// Get returns (nil, nil) for an unknown or expired session. Clear is
// idempotent. Each Get or Set refreshes the idle timeout.
type Store interface {
	Get(ctx context.Context, sessionID string) (*Principal, error)
	Set(ctx context.Context, sessionID string, principal *Principal) error
	Clear(ctx context.Context, sessionID string) error
}

// DefaultIdleTimeout is used when a backend is constructed with a
// non-positive timeout.
const DefaultIdleTimeout = 45 * time.Minute
