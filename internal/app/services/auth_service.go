package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/collegehub/collegehub/internal/session"
)

// AuthService is the login/logout state machine for the admin surface.
// A session is Anonymous until a successful Login and returns to Anonymous
// on Logout or idle expiry. Login and Logout are the only mutating
// operations; the queries never touch session state beyond the sliding
// idle timeout the store applies.
type AuthService interface {
	// Login validates credentials and, on success, binds a Principal to
	// the session id. Any failure, including storage failures, yields
	// false with no further detail (fail closed).
	Login(ctx context.Context, sessionID, username, password string) bool
	// Logout clears the session. Idempotent: logging out an Anonymous
	// session is a no-op.
	Logout(ctx context.Context, sessionID string)
	// IsAuthenticated reports whether the session holds a principal.
	IsAuthenticated(ctx context.Context, sessionID string) bool
	// CurrentPrincipal returns the session's principal, or nil when
	// Anonymous.
	CurrentPrincipal(ctx context.Context, sessionID string) *session.Principal
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	adminService AdminService
	sessions     session.Store
	logger       zerolog.Logger
}

// NewAuthService creates a new authentication service instance
func NewAuthService(adminService AdminService, sessions session.Store, lgr zerolog.Logger) AuthService {
	return &authServiceImpl{
		adminService: adminService,
		sessions:     sessions,
		logger:       lgr,
	}
}

// Login validates credentials and establishes the session principal
func (s *authServiceImpl) Login(ctx context.Context, sessionID, username, password string) bool {
	// Any stale state under this session id is dropped before the attempt
	if err := s.sessions.Clear(ctx, sessionID); err != nil {
		s.logger.Error().Err(err).Msg("Failed to clear session before login")
		return false
	}

	admin, err := s.adminService.Authenticate(ctx, username, password)
	if err != nil {
		// Deliberately a bare boolean: the reason is never surfaced
		s.logger.Debug().Str("username", username).Msg("Login attempt failed")
		return false
	}

	principal := &session.Principal{
		ID:       admin.ID.Hex(),
		Username: admin.Username,
		FullName: admin.FullName,
		Role:     admin.Role,
	}

	if err := s.sessions.Set(ctx, sessionID, principal); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist session principal")
		return false
	}

	s.logger.Info().Str("username", admin.Username).Msg("Admin logged in")
	return true
}

// Logout clears the session principal
func (s *authServiceImpl) Logout(ctx context.Context, sessionID string) {
	if err := s.sessions.Clear(ctx, sessionID); err != nil {
		s.logger.Error().Err(err).Msg("Failed to clear session on logout")
	}
}

// IsAuthenticated reports whether the session holds a principal
func (s *authServiceImpl) IsAuthenticated(ctx context.Context, sessionID string) bool {
	return s.CurrentPrincipal(ctx, sessionID) != nil
}

// CurrentPrincipal returns the session's principal, or nil
func (s *authServiceImpl) CurrentPrincipal(ctx context.Context, sessionID string) *session.Principal {
	if sessionID == "" {
		return nil
	}

	principal, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		// Fail closed: a broken session store means Anonymous
		s.logger.Error().Err(err).Msg("Failed to read session state")
		return nil
	}

	return principal
}
