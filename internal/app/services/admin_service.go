package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/collegehub/collegehub/internal/app/models"
	"github.com/collegehub/collegehub/internal/pkg/apperrors"
	"github.com/collegehub/collegehub/internal/pkg/auth"
)

// adminStore abstracts the persistence operations AdminService needs.
type adminStore interface {
	GetAll(ctx context.Context) ([]models.Admin, error)
	GetByID(ctx context.Context, id string) (*models.Admin, error)
	FindOne(ctx context.Context, filter bson.M) (*models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
	Update(ctx context.Context, id string, admin *models.Admin) error
}

// AdminService defines the interface for admin account operations
type AdminService interface {
	GetAllAdmins(ctx context.Context) ([]models.Admin, error)
	GetAdminByID(ctx context.Context, id string) (*models.Admin, error)
	GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error)
	// Authenticate verifies credentials and updates lastLogin on success.
	// Failure is always apperrors.ErrInvalidCredentials; the caller cannot
	// tell an unknown username from a wrong password.
	Authenticate(ctx context.Context, username, password string) (*models.Admin, error)
	// CreateAdmin registers a new admin account. The plaintext password on
	// the incoming model is replaced with the derived credential before it
	// is stored.
	CreateAdmin(ctx context.Context, admin *models.Admin, password string) error
	ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error
	// EnsureDefaultAdmin is a bootstrap-only operation: it creates a
	// single admin account when the collection holds none. It must never
	// run against a populated production store; callers gate it behind
	// explicit configuration.
	EnsureDefaultAdmin(ctx context.Context, username, password, email string) error
}

// adminServiceImpl implements the AdminService interface
type adminServiceImpl struct {
	adminRepo adminStore
	logger    zerolog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(adminRepo adminStore, lgr zerolog.Logger) AdminService {
	return &adminServiceImpl{
		adminRepo: adminRepo,
		logger:    lgr,
	}
}

// GetAllAdmins retrieves all admin accounts
func (s *adminServiceImpl) GetAllAdmins(ctx context.Context) ([]models.Admin, error) {
	return s.adminRepo.GetAll(ctx)
}

// GetAdminByID retrieves an admin by document id
func (s *adminServiceImpl) GetAdminByID(ctx context.Context, id string) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, err
	}
	return admin, nil
}

// GetAdminByUsername retrieves an admin by username
func (s *adminServiceImpl) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	admin, err := s.adminRepo.FindOne(ctx, bson.M{"username": username})
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, err
	}
	return admin, nil
}

// Authenticate verifies an admin's credentials
func (s *adminServiceImpl) Authenticate(ctx context.Context, username, password string) (*models.Admin, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	admin, err := s.adminRepo.FindOne(ctx, bson.M{"username": username})
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		// Infrastructure failure: fail closed, keep the cause for the log
		s.logger.Error().Err(err).Msg("Admin lookup failed during authentication")
		return nil, apperrors.ErrInvalidCredentials
	}

	if !admin.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(admin.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	admin.LastLogin = &now
	if err := s.adminRepo.Update(ctx, admin.ID.Hex(), admin); err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("Failed to record last login")
		return nil, apperrors.ErrInvalidCredentials
	}

	return admin, nil
}

// CreateAdmin registers a new admin account
func (s *adminServiceImpl) CreateAdmin(ctx context.Context, admin *models.Admin, password string) error {
	if strings.TrimSpace(admin.Username) == "" {
		return fmt.Errorf("%w: username is required", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(admin.Email) == "" {
		return fmt.Errorf("%w: email is required", apperrors.ErrValidationFailed)
	}
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", apperrors.ErrValidationFailed)
	}

	credential, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	admin.Password = credential

	if admin.Role == "" {
		admin.Role = models.RoleAdmin
	}
	admin.IsActive = true

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			return apperrors.ErrAdminAlreadyExists
		}
		return err
	}

	s.logger.Info().Str("username", admin.Username).Msg("Admin account created")
	return nil
}

// ChangePassword replaces an admin's credential after verifying the
// current password.
func (s *adminServiceImpl) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return fmt.Errorf("%w: new password cannot be empty", apperrors.ErrValidationFailed)
	}

	admin, err := s.GetAdminByID(ctx, id)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(admin.Password, currentPassword) {
		return apperrors.ErrInvalidCredentials
	}

	credential, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin.Password = credential
	return s.adminRepo.Update(ctx, id, admin)
}

// EnsureDefaultAdmin creates the bootstrap admin when no admin exists
func (s *adminServiceImpl) EnsureDefaultAdmin(ctx context.Context, username, password, email string) error {
	admins, err := s.adminRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing admins: %w", err)
	}

	if len(admins) > 0 {
		return nil
	}

	credential, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	admin := &models.Admin{
		Username: username,
		Password: credential,
		Email:    email,
		FullName: "Administrator",
		Role:     models.RoleAdmin,
		IsActive: true,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		// A concurrent bootstrap already created it
		if errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			return nil
		}
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	s.logger.Warn().Str("username", username).Msg("Bootstrap admin account created; change its password before production use")
	return nil
}
