package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/freshcart/internal/domain/errors"
	"github.com/polkiloo/freshcart/internal/domain/model"
	"github.com/polkiloo/freshcart/internal/domain/repository"
	pkgAuth "github.com/polkiloo/freshcart/internal/pkg/auth"
)

// AuthUseCase handles user registration and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register stores a new user with a hashed password.
func (u *AuthUseCase) Register(ctx context.Context, reg model.Registration) (*model.User, error) {
	reg.Name = strings.TrimSpace(reg.Name)
	reg.Email = strings.TrimSpace(reg.Email)
	reg.Role = strings.TrimSpace(reg.Role)
	if err := requireFields(map[string]string{
		"name":     reg.Name,
		"email":    reg.Email,
		"password": reg.Password,
		"role":     reg.Role,
	}); err != nil {
		return nil, err
	}
	if !strings.EqualFold(reg.Role, model.RoleShopOwner) && !strings.EqualFold(reg.Role, model.RoleDistributor) {
		return nil, fmt.Errorf("%w: unknown role %q", domainErrors.ErrInvalidInput, reg.Role)
	}

	hash, err := u.hasher.Hash(reg.Password)
	if err != nil {
		if errors.Is(err, pkgAuth.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: password exceeds %d bytes", domainErrors.ErrInvalidInput, pkgAuth.MaxPasswordBytes)
		}
		return nil, err
	}

	usr, err := u.users.Create(ctx, model.User{
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: hash,
		Role:         reg.Role,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: email %s", domainErrors.ErrAlreadyExists, reg.Email)
		}
		return nil, err
	}
	return usr, nil
}

// Authenticate validates credentials and returns the user with a fresh token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if err := requireFields(map[string]string{"email": email, "password": password}); err != nil {
		return nil, "", err
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		if errors.Is(err, pkgAuth.ErrPasswordMismatch) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("user %d: %w", usr.ID, err)
	}

	token, err := u.tokens.IssueToken(usr.ID, usr.Role)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts the caller's claims from a token.
func (u *AuthUseCase) ParseToken(token string) (pkgAuth.Claims, error) {
	if token == "" {
		return pkgAuth.Claims{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}
