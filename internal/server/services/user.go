// Package services contains the server-side business logic. This file
// implements UserService, which handles registration, login, and the
// record operations, including the requester-must-own-the-record
// authorization rule on mutations.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/borbinha27/prova-3bim/internal/common"
	"github.com/borbinha27/prova-3bim/internal/server/auth"
	"github.com/borbinha27/prova-3bim/internal/server/config"
	"github.com/borbinha27/prova-3bim/internal/server/models"
	"github.com/borbinha27/prova-3bim/internal/server/repositories/users"
)

// UserPatch carries the fields a client may change on an existing record.
// Nil fields are left untouched; the record id is immutable.
type UserPatch struct {
	Nome  *string `json:"nome"`
	Email *string `json:"email"`
	Senha *string `json:"senha"`
}

// UserService provides the account operations and the login flow.
type UserService struct {
	repo                        users.Repository
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using the repository and server
// config.
func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:                        repo,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// List returns the collection as stored. Redaction of password hashes is
// the presentation layer's concern.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

// GetByID returns the record with the given id or common.ErrorNotFound.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Register creates a new record with a freshly hashed password. An empty
// senha is a validation error.
func (s *UserService) Register(ctx context.Context, nome, email, senha string) (*models.User, error) {
	if senha == "" {
		return nil, fmt.Errorf("%w: senha is required", common.ErrorValidation)
	}

	hash, err := auth.HashPassword(senha)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{Nome: nome, Email: email, Senha: hash}
	u, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Update merges patch over the record identified by id. Only the owner of
// the record may change it; the ownership check runs before the existence
// check, so a foreign requester learns nothing about which ids exist.
// A patched senha is hashed before it is stored, it never reaches the
// store as plaintext.
func (s *UserService) Update(ctx context.Context, id, requesterID int64, patch *UserPatch) (*models.User, error) {
	if requesterID != id {
		return nil, common.ErrorForbidden
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Nome != nil {
		user.Nome = *patch.Nome
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Senha != nil {
		hash, err := auth.HashPassword(*patch.Senha)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		user.Senha = hash
	}

	return s.repo.Update(ctx, user)
}

// Delete removes the record identified by id, subject to the same
// ownership rule as Update, and returns the removed record.
func (s *UserService) Delete(ctx context.Context, id, requesterID int64) (*models.User, error) {
	if requesterID != id {
		return nil, common.ErrorForbidden
	}
	return s.repo.Delete(ctx, id)
}

// Login verifies the nome/email pair and the password and, on success,
// returns a signed access token for the matched record.
func (s *UserService) Login(ctx context.Context, nome, email, senha string) (string, error) {
	user, err := s.repo.FindByNameEmail(ctx, nome, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnknownUser
		}
		return "", err
	}

	if !auth.CheckPassword(senha, user.Senha) {
		return "", common.ErrorWrongPassword
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}
