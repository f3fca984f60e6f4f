package test

import (
	"context"
	"strings"
	"sync"

	domainErrors "github.com/polkiloo/freshcart/internal/domain/errors"
	"github.com/polkiloo/freshcart/internal/domain/model"
	"github.com/polkiloo/freshcart/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error

	mu sync.Mutex
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless the email is taken or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := user
	stored.ID = s.Next
	s.Next++
	s.Users[stored.Email] = &stored
	s.ByID[stored.ID] = &stored
	return &stored, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateProfile overwrites editable fields of a stored user.
func (s *UserRepositoryStub) UpdateProfile(ctx context.Context, id int64, update model.ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.Name = update.Name
	user.ContactNo = update.ContactNo
	user.Address = update.Address
	return nil
}

// ListDistributors returns stored users whose role is distributor.
func (s *UserRepositoryStub) ListDistributors(ctx context.Context) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	result := []model.User{}
	for id := int64(1); id < s.Next; id++ {
		if user, ok := s.ByID[id]; ok && strings.EqualFold(user.Role, model.RoleDistributor) {
			result = append(result, *user)
		}
	}
	return result, nil
}

// CatalogRepositoryStub lets tests control catalog data and records writes.
type CatalogRepositoryStub struct {
	ListCatalogFn       func(context.Context) ([]model.CatalogEntry, error)
	ListByDistributorFn func(context.Context, int64) ([]model.DistributorProduct, error)
	AddProductFn        func(context.Context, model.NewProduct) (int64, error)
	UpdateVariantFn     func(context.Context, int64, model.VariantUpdate) error
	RetireVariantFn     func(context.Context, int64) error

	Added   []model.NewProduct
	Updated []model.VariantUpdate
	Retired []int64
}

// ListCatalog returns configured entries.
func (s *CatalogRepositoryStub) ListCatalog(ctx context.Context) ([]model.CatalogEntry, error) {
	if s.ListCatalogFn != nil {
		return s.ListCatalogFn(ctx)
	}
	return []model.CatalogEntry{}, nil
}

// ListByDistributor returns configured products.
func (s *CatalogRepositoryStub) ListByDistributor(ctx context.Context, distributorID int64) ([]model.DistributorProduct, error) {
	if s.ListByDistributorFn != nil {
		return s.ListByDistributorFn(ctx, distributorID)
	}
	return []model.DistributorProduct{}, nil
}

// AddProduct records the product and returns its position as variant id.
func (s *CatalogRepositoryStub) AddProduct(ctx context.Context, product model.NewProduct) (int64, error) {
	s.Added = append(s.Added, product)
	if s.AddProductFn != nil {
		return s.AddProductFn(ctx, product)
	}
	return int64(len(s.Added)), nil
}

// UpdateVariant records the update.
func (s *CatalogRepositoryStub) UpdateVariant(ctx context.Context, variantID int64, update model.VariantUpdate) error {
	s.Updated = append(s.Updated, update)
	if s.UpdateVariantFn != nil {
		return s.UpdateVariantFn(ctx, variantID, update)
	}
	return nil
}

// RetireVariant records the retired variant.
func (s *CatalogRepositoryStub) RetireVariant(ctx context.Context, variantID int64) error {
	s.Retired = append(s.Retired, variantID)
	if s.RetireVariantFn != nil {
		return s.RetireVariantFn(ctx, variantID)
	}
	return nil
}

// DistributorListCall captures ListByDistributor arguments.
type DistributorListCall struct {
	DistributorID int64
	Deleted       bool
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	PlaceFn             func(context.Context, model.NewOrder) (*model.Order, error)
	ListByShopOwnerFn   func(context.Context, int64) ([]model.ShopOrder, error)
	ListByDistributorFn func(context.Context, int64, bool) ([]model.DistributorOrder, error)

	Placed           []model.NewOrder
	DistributorCalls []DistributorListCall
}

// Place tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Place(ctx context.Context, order model.NewOrder) (*model.Order, error) {
	s.Placed = append(s.Placed, order)
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, order)
	}
	return &model.Order{
		ID:            int64(len(s.Placed)),
		UserID:        order.UserID,
		Status:        model.OrderStatusPending,
		PaymentStatus: string(model.PaymentStatusPending),
		TotalAmount:   order.Amount(),
	}, nil
}

// ListByShopOwner returns configured orders.
func (s *OrderRepositoryStub) ListByShopOwner(ctx context.Context, userID int64) ([]model.ShopOrder, error) {
	if s.ListByShopOwnerFn != nil {
		return s.ListByShopOwnerFn(ctx, userID)
	}
	return []model.ShopOrder{}, nil
}

// ListByDistributor records the call and returns configured orders.
func (s *OrderRepositoryStub) ListByDistributor(ctx context.Context, distributorID int64, deleted bool) ([]model.DistributorOrder, error) {
	s.DistributorCalls = append(s.DistributorCalls, DistributorListCall{DistributorID: distributorID, Deleted: deleted})
	if s.ListByDistributorFn != nil {
		return s.ListByDistributorFn(ctx, distributorID, deleted)
	}
	return []model.DistributorOrder{}, nil
}

// PaymentRepositoryStub lets tests control payment listings.
type PaymentRepositoryStub struct {
	ShopFn        func(context.Context, int64) ([]model.ShopPayment, error)
	DistributorFn func(context.Context, int64) ([]model.DistributorPayment, error)
}

// ListByShopOwner returns configured payments.
func (s *PaymentRepositoryStub) ListByShopOwner(ctx context.Context, userID int64) ([]model.ShopPayment, error) {
	if s.ShopFn != nil {
		return s.ShopFn(ctx, userID)
	}
	return []model.ShopPayment{}, nil
}

// ListByDistributor returns configured payments.
func (s *PaymentRepositoryStub) ListByDistributor(ctx context.Context, distributorID int64) ([]model.DistributorPayment, error) {
	if s.DistributorFn != nil {
		return s.DistributorFn(ctx, distributorID)
	}
	return []model.DistributorPayment{}, nil
}

var (
	_ repository.UserRepository    = (*UserRepositoryStub)(nil)
	_ repository.CatalogRepository = (*CatalogRepositoryStub)(nil)
	_ repository.OrderRepository   = (*OrderRepositoryStub)(nil)
	_ repository.PaymentRepository = (*PaymentRepositoryStub)(nil)
)
