package repository

import (
	"context"

	"github.com/oshxona/resto/internal/domain/model"
)

// StaffRepository is the single source of truth for staff accounts and
// their roles.
type StaffRepository interface {
	Create(ctx context.Context, email, passwordHash string, role model.StaffRole) (*model.StaffUser, error)
	GetByEmail(ctx context.Context, email string) (*model.StaffUser, error)
	GetByID(ctx context.Context, id int64) (*model.StaffUser, error)
}
