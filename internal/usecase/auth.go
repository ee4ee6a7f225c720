package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/oshxona/resto/internal/domain/errors"
	"github.com/oshxona/resto/internal/domain/model"
	"github.com/oshxona/resto/internal/domain/repository"
	pkgAuth "github.com/oshxona/resto/internal/pkg/auth"
)

// AuthUseCase handles staff accounts and token management. Roles live on
// the staff record, making the store the single source of truth for
// authorization.
type AuthUseCase struct {
	staff  repository.StaffRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(staff repository.StaffRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{staff: staff, hasher: hasher, tokens: strategy}
}

// CreateStaff registers a dashboard account with an explicit role.
func (u *AuthUseCase) CreateStaff(ctx context.Context, email, password string, role model.StaffRole) (*model.StaffUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}
	if _, ok := model.ParseRole(string(role)); !ok {
		return nil, domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	return u.staff.Create(ctx, email, hash, role)
}

// Authenticate validates credentials and returns a signed token carrying
// the user's role.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.StaffUser, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.staff.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID, usr.Role)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts the staff identity from a token.
func (u *AuthUseCase) ParseToken(token string) (pkgAuth.Claims, error) {
	if token == "" {
		return pkgAuth.Claims{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}
