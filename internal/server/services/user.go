// Package services contains server-side business logic. This file implements
// UserService, which handles registration, credential verification, and
// minting/verifying the bearer tokens protected routes run on.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tasksync/internal/common"
	"tasksync/internal/server/auth"
	"tasksync/internal/server/config"
	"tasksync/internal/server/models"
	"tasksync/internal/server/repositories/repomanager"

	"github.com/google/uuid"
)

// UserService provides authentication-related operations:
// - Register: create users with a one-way password digest
// - Login: verify credentials and mint a token
// - VerifyToken: turn a presented token back into a live user id
type UserService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:            db,
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Register creates a new user. The email must not be bound to an existing
// account; both the application pre-check and a unique-constraint violation
// surface as common.ErrorAlreadyExists, so a concurrent duplicate signup
// gets the same answer as a sequential one.
func (s *UserService) Register(ctx context.Context, name, email, rawPassword string) (*models.User, error) {
	if email == "" || rawPassword == "" {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Users(s.db)

	// best-effort pre-check for a friendlier common path; the users.email
	// constraint remains the final authority under concurrency
	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking email: %w", err)
	}

	hash, err := auth.HashPassword(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return u, nil
}

// Login verifies the email/password pair and, on success, returns the user
// together with a freshly minted token. An unknown email and a wrong
// password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, rawPassword string) (*models.User, string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorInvalidCredentials
		}
		return nil, "", common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordHash, rawPassword) {
		return nil, "", common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// VerifyToken checks the token signature and confirms the subject still
// exists; a valid signature over a deleted account is rejected with
// common.ErrorUnknownSubject.
func (s *UserService) VerifyToken(ctx context.Context, token string) (string, error) {
	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return "", common.ErrorInvalidToken
	}

	repo := s.repomanager.Users(s.db)
	if _, err := repo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnknownSubject
		}
		return "", common.ErrorInternal
	}

	return userID, nil
}

// CurrentUser fetches the user behind a verified id.
func (s *UserService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnknownSubject
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}
