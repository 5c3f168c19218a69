package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/auth-profile-service/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// GetByID and GetByEmail return (nil, nil) when no row matches; errors are
// reserved for store failures.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	List(ctx context.Context, onlyPublic bool) ([]*entity.User, error)
}

// ErrDuplicateEmail is returned by Create when the unique email index rejects
// the insert. Registration does a check-then-insert first; the index is the
// backstop for the race between the check and the insert.
var ErrDuplicateEmail = errors.New("email already exists")
