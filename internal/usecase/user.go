package usecase

import (
	"context"
	"strings"

	"github.com/polkiloo/freshcart/internal/domain/model"
	"github.com/polkiloo/freshcart/internal/domain/repository"
)

// UserUseCase serves profiles and the distributor directory.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// Profile fetches user by identifier.
func (u *UserUseCase) Profile(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// UpdateProfile replaces name, contact number and address. All three are required.
func (u *UserUseCase) UpdateProfile(ctx context.Context, id int64, update model.ProfileUpdate) error {
	update.Name = strings.TrimSpace(update.Name)
	update.ContactNo = strings.TrimSpace(update.ContactNo)
	update.Address = strings.TrimSpace(update.Address)
	if err := requireFields(map[string]string{
		"name":       update.Name,
		"contact_no": update.ContactNo,
		"address":    update.Address,
	}); err != nil {
		return err
	}
	return u.users.UpdateProfile(ctx, id, update)
}

// Distributors lists every user registered with the distributor role.
func (u *UserUseCase) Distributors(ctx context.Context) ([]model.User, error) {
	return u.users.ListDistributors(ctx)
}
