package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/freshcart/internal/domain/errors"
	"github.com/polkiloo/freshcart/internal/domain/model"
	"github.com/polkiloo/freshcart/internal/domain/repository"
)

// PaymentRow is a payment as held by MemoryLifecycleStore.
type PaymentRow struct {
	OrderID int64
	Status  model.PaymentStatus
}

// LifecycleState is the data a MemoryLifecycleStore mutates.
type LifecycleState struct {
	Orders        map[int64]model.OrderStatus
	OrderPayments map[int64]model.PaymentStatus
	Items         map[int64][]model.OrderItem
	Stock         map[int64]int
	Payments      map[int64]PaymentRow
}

// NewLifecycleState returns empty, initialized state.
func NewLifecycleState() LifecycleState {
	return LifecycleState{
		Orders:        make(map[int64]model.OrderStatus),
		OrderPayments: make(map[int64]model.PaymentStatus),
		Items:         make(map[int64][]model.OrderItem),
		Stock:         make(map[int64]int),
		Payments:      make(map[int64]PaymentRow),
	}
}

func (s LifecycleState) clone() LifecycleState {
	c := NewLifecycleState()
	for k, v := range s.Orders {
		c.Orders[k] = v
	}
	for k, v := range s.OrderPayments {
		c.OrderPayments[k] = v
	}
	for k, v := range s.Items {
		c.Items[k] = append([]model.OrderItem(nil), v...)
	}
	for k, v := range s.Stock {
		c.Stock[k] = v
	}
	for k, v := range s.Payments {
		c.Payments[k] = v
	}
	return c
}

// MemoryLifecycleStore is an in-memory repository.LifecycleStore that restores
// its state when the unit of work returns an error.
type MemoryLifecycleStore struct {
	// FailOn makes the named LifecycleTx method return the mapped error.
	FailOn map[string]error

	mu        sync.Mutex
	state     LifecycleState
	calls     []string
	commits   int
	rollbacks int
}

// NewMemoryLifecycleStore wraps state in a store.
func NewMemoryLifecycleStore(state LifecycleState) *MemoryLifecycleStore {
	return &MemoryLifecycleStore{state: state, FailOn: make(map[string]error)}
}

// WithinLifecycle runs fn serially and rolls back on error.
func (s *MemoryLifecycleStore) WithinLifecycle(ctx context.Context, fn func(repository.LifecycleTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	if err := fn(&memoryLifecycleTx{store: s}); err != nil {
		s.state = snapshot
		s.rollbacks++
		return err
	}
	s.commits++
	return nil
}

// State returns a copy of the committed state.
func (s *MemoryLifecycleStore) State() LifecycleState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Calls lists LifecycleTx methods invoked so far, in order.
func (s *MemoryLifecycleStore) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// Commits reports how many units of work committed.
func (s *MemoryLifecycleStore) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

// Rollbacks reports how many units of work rolled back.
func (s *MemoryLifecycleStore) Rollbacks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rollbacks
}

// memoryLifecycleTx runs with store.mu held by WithinLifecycle.
type memoryLifecycleTx struct {
	store *MemoryLifecycleStore
}

func (t *memoryLifecycleTx) enter(method string) error {
	t.store.calls = append(t.store.calls, method)
	return t.store.FailOn[method]
}

func (t *memoryLifecycleTx) LockOrder(ctx context.Context, orderID int64) (model.OrderStatus, error) {
	if err := t.enter("LockOrder"); err != nil {
		return "", err
	}
	status, ok := t.store.state.Orders[orderID]
	if !ok {
		return "", domainErrors.ErrNotFound
	}
	return status, nil
}

func (t *memoryLifecycleTx) SetOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if err := t.enter("SetOrderStatus"); err != nil {
		return err
	}
	if _, ok := t.store.state.Orders[orderID]; !ok {
		return domainErrors.ErrNotFound
	}
	t.store.state.Orders[orderID] = status
	return nil
}

func (t *memoryLifecycleTx) OrderItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	if err := t.enter("OrderItems"); err != nil {
		return nil, err
	}
	return append([]model.OrderItem(nil), t.store.state.Items[orderID]...), nil
}

func (t *memoryLifecycleTx) DecrementStock(ctx context.Context, variantID int64, quantity int) error {
	if err := t.enter("DecrementStock"); err != nil {
		return err
	}
	stock := t.store.state.Stock[variantID] - quantity
	if stock < 0 {
		stock = 0
	}
	t.store.state.Stock[variantID] = stock
	return nil
}

func (t *memoryLifecycleTx) SetOrderPayment(ctx context.Context, orderID int64, status model.PaymentStatus) error {
	if err := t.enter("SetOrderPayment"); err != nil {
		return err
	}
	if _, ok := t.store.state.Orders[orderID]; !ok {
		return domainErrors.ErrNotFound
	}
	for id, p := range t.store.state.Payments {
		if p.OrderID == orderID {
			p.Status = status
			t.store.state.Payments[id] = p
		}
	}
	t.store.state.OrderPayments[orderID] = status
	return nil
}

func (t *memoryLifecycleTx) SetPayment(ctx context.Context, paymentID int64, status model.PaymentStatus) (int64, error) {
	if err := t.enter("SetPayment"); err != nil {
		return 0, err
	}
	p, ok := t.store.state.Payments[paymentID]
	if !ok {
		return 0, domainErrors.ErrNotFound
	}
	p.Status = status
	t.store.state.Payments[paymentID] = p
	t.store.state.OrderPayments[p.OrderID] = status
	return p.OrderID, nil
}

var _ repository.LifecycleStore = (*MemoryLifecycleStore)(nil)
