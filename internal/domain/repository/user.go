package repository

import (
	"context"

	"github.com/polkiloo/freshcart/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user model.User) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpdateProfile(ctx context.Context, id int64, update model.ProfileUpdate) error
	ListDistributors(ctx context.Context) ([]model.User, error)
}
