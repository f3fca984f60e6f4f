package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/polkiloo/freshcart/internal/domain/errors"
	"github.com/polkiloo/freshcart/internal/domain/model"
)

var userRowColumns = []string{"id", "name", "email", "password_hash", "role", "contact_no", "address", "created_at"}

func TestUserRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &userRepository{storage: storage}

	input := model.User{Name: "Asha", Email: "asha@example.com", PasswordHash: "hash", Role: "shopowner"}
	createdAt := time.Now()
	mock.ExpectQuery("INSERT INTO users").WithArgs("Asha", "asha@example.com", "hash", "shopowner").WillReturnRows(
		pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(1), createdAt),
	)
	user, err := repo.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 1 || user.Email != "asha@example.com" || !user.CreatedAt.Equal(createdAt) {
		t.Fatalf("unexpected user: %+v", user)
	}

	mock.ExpectQuery("INSERT INTO users").WithArgs("Asha", "asha@example.com", "hash", "shopowner").WillReturnError(&pgconn.PgError{Code: "23505"})
	if _, err := repo.Create(context.Background(), input); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists error, got %v", err)
	}

	mock.ExpectQuery("INSERT INTO users").WithArgs("Asha", "asha@example.com", "hash", "shopowner").WillReturnError(errors.New("other"))
	if _, err := repo.Create(context.Background(), input); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestUserRepositoryLookups(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &userRepository{storage: storage}

	createdAt := time.Now()
	mock.ExpectQuery("SELECT id, name, email, password_hash, role, .* FROM users WHERE email=").WithArgs("asha@example.com").WillReturnRows(
		pgxmockv3.NewRows(userRowColumns).AddRow(int64(1), "Asha", "asha@example.com", "hash", "Distributor", "555", "Main st", createdAt))
	user, err := repo.GetByEmail(context.Background(), "asha@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 1 || user.ContactNo != "555" || !user.IsDistributor() {
		t.Fatalf("unexpected user: %+v", user)
	}

	mock.ExpectQuery("SELECT id, name, email, password_hash, role, .* FROM users WHERE email=").WithArgs("missing").WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByEmail(context.Background(), "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectQuery("SELECT id, name, email, password_hash, role, .* FROM users WHERE id=").WithArgs(int64(1)).WillReturnRows(
		pgxmockv3.NewRows(userRowColumns).AddRow(int64(1), "Asha", "asha@example.com", "hash", "shopowner", "", "", createdAt))
	if _, err := repo.GetByID(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectQuery("SELECT id, name, email, password_hash, role, .* FROM users WHERE id=").WithArgs(int64(2)).WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByID(context.Background(), 2); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectQuery("SELECT id, name, email, password_hash, role, .* FROM users WHERE id=").WithArgs(int64(3)).WillReturnError(errors.New("boom"))
	if _, err := repo.GetByID(context.Background(), 3); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestUserRepositoryUpdateProfile(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &userRepository{storage: storage}

	update := model.ProfileUpdate{Name: "Asha", ContactNo: "555", Address: "Main st"}

	mock.ExpectExec("UPDATE users SET name=").WithArgs("Asha", "555", "Main st", int64(1)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := repo.UpdateProfile(context.Background(), 1, update); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("UPDATE users SET name=").WithArgs("Asha", "555", "Main st", int64(9)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	if err := repo.UpdateProfile(context.Background(), 9, update); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectExec("UPDATE users SET name=").WithArgs("Asha", "555", "Main st", int64(1)).WillReturnError(errors.New("boom"))
	if err := repo.UpdateProfile(context.Background(), 1, update); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestUserRepositoryListDistributors(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &userRepository{storage: storage}

	mock.ExpectQuery("FROM users WHERE LOWER").WillReturnRows(
		pgxmockv3.NewRows([]string{"id", "name", "contact_no", "address"}).
			AddRow(int64(2), "Fresh Farms", "111", "Depot 1").
			AddRow(int64(3), "Green Valley", "", ""))
	list, err := repo.ListDistributors(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 || list[0].Name != "Fresh Farms" || list[1].Role != model.RoleDistributor {
		t.Fatalf("unexpected list: %+v", list)
	}

	mock.ExpectQuery("FROM users WHERE LOWER").WillReturnRows(pgxmockv3.NewRows([]string{"id", "name", "contact_no", "address"}))
	list, err = repo.ListDistributors(context.Background())
	if err != nil || list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil list, got %v err=%v", list, err)
	}

	mock.ExpectQuery("FROM users WHERE LOWER").WillReturnError(errors.New("boom"))
	if _, err := repo.ListDistributors(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestUserRepositoryListDistributorsRowsError(t *testing.T) {
	storage := &Storage{pool: &rowsErrorPool{rows: &errorRows{err: errors.New("rows err")}}}
	repo := &userRepository{storage: storage}
	if _, err := repo.ListDistributors(context.Background()); err == nil {
		t.Fatal("expected rows error")
	}
}
