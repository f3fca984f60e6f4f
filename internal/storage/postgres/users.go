package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/freshcart/internal/domain/model"
)

type userRepository struct {
	storage *Storage
}

const userColumns = `id, name, email, password_hash, role, COALESCE(contact_no, ''), COALESCE(address, ''), created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.ContactNo, &u.Address, &u.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, user model.User) (*model.User, error) {
	const query = `INSERT INTO users (name, email, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash, user.Role).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return scanUser(r.storage.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1`, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return scanUser(r.storage.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id))
}

func (r *userRepository) UpdateProfile(ctx context.Context, id int64, update model.ProfileUpdate) error {
	const query = `UPDATE users SET name=$1, contact_no=$2, address=$3 WHERE id=$4`
	tag, err := r.storage.pool.Exec(ctx, query, update.Name, update.ContactNo, update.Address, id)
	if err != nil {
		return mapError(err)
	}
	return requireRow(tag)
}

func (r *userRepository) ListDistributors(ctx context.Context) ([]model.User, error) {
	const query = `SELECT id, name, COALESCE(contact_no, ''), COALESCE(address, '')
                   FROM users WHERE LOWER(role)='distributor' ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.User{}
	for rows.Next() {
		u := model.User{Role: model.RoleDistributor}
		if err := rows.Scan(&u.ID, &u.Name, &u.ContactNo, &u.Address); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
