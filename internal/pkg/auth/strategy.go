package auth

import (
	"errors"
	"time"

	"github.com/oshxona/resto/internal/domain/model"
)

var ErrInvalidToken = errors.New("invalid auth token")

// Claims carries the authenticated staff identity.
type Claims struct {
	UserID int64
	Role   model.StaffRole
}

// Strategy issues and verifies staff tokens.
type Strategy interface {
	IssueToken(userID int64, role model.StaffRole) (string, error)
	ParseToken(token string) (Claims, error)
	Name() string
}

// Options tunes token issuance.
type Options struct {
	TTL time.Duration
}
