// Package service provides business logic for admin authentication.
//
// The session scheme is deliberately single-active-token: every successful
// login stores the freshly minted token as the principal's only active
// session token, so a token that is still cryptographically valid stops
// authenticating the moment a newer login happens. A leaked token is
// therefore only usable until the next login rather than until expiry.
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	adminModel "github.com/technoverse/registration-portal/internal/admin/model"
	"github.com/technoverse/registration-portal/internal/admin/repository"
	"github.com/technoverse/registration-portal/internal/auth"
)

// Service defines the interface for admin authentication operations.
type Service interface {
	// Login verifies credentials, mints a session token and stores it as
	// the principal's sole active session token.
	Login(ctx context.Context, req *adminModel.LoginRequest) (string, error)

	// Authenticate resolves a bearer token to its admin principal.
	// Returns auth.ErrInvalidToken for tokens failing cryptographic
	// verification and model.ErrSessionStale for superseded sessions.
	Authenticate(ctx context.Context, token string) (*adminModel.Admin, error)

	// EnsureAdmin creates an admin principal with the given credentials if
	// none exists under that username. Existing principals are left untouched.
	EnsureAdmin(ctx context.Context, username, password string) error
}

type service struct {
	repo   repository.Repository
	tokens *auth.Manager
	logger *zap.SugaredLogger
}

// New creates a new admin service instance.
func New(repo repository.Repository, tokens *auth.Manager, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

// Login verifies credentials and rotates the active session token.
func (s *service) Login(ctx context.Context, req *adminModel.LoginRequest) (string, error) {
	admin, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, adminModel.ErrAdminNotFound) {
			return "", adminModel.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return "", adminModel.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(admin.ID, admin.Username)
	if err != nil {
		return "", err
	}

	// Storing the new token invalidates every previously issued one.
	if err := s.repo.UpdateSessionToken(ctx, admin.ID, token); err != nil {
		return "", err
	}

	s.logger.Infow("admin logged in", "username", admin.Username)
	return token, nil
}

// Authenticate resolves a bearer token to its admin principal.
func (s *service) Authenticate(ctx context.Context, token string) (*adminModel.Admin, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	admin, err := s.repo.GetByID(ctx, claims.AdminID)
	if err != nil {
		if errors.Is(err, adminModel.ErrAdminNotFound) {
			return nil, adminModel.ErrSessionStale
		}
		return nil, err
	}

	// Exact match against the stored token enforces single-session
	// semantics on top of the signature check.
	if admin.ActiveSessionToken == nil || *admin.ActiveSessionToken != token {
		return nil, adminModel.ErrSessionStale
	}

	return admin, nil
}

// EnsureAdmin creates an admin principal if none exists under the username.
func (s *service) EnsureAdmin(ctx context.Context, username, password string) error {
	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, adminModel.ErrAdminNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &adminModel.Admin{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.Infow("admin principal seeded", "username", username)
	return nil
}
