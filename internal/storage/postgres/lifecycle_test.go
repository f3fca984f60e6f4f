package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/polkiloo/freshcart/internal/domain/errors"
	"github.com/polkiloo/freshcart/internal/domain/model"
	"github.com/polkiloo/freshcart/internal/domain/repository"
)

func TestLifecycleStoreCommitsAcceptedOrder(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	store := storage.Lifecycle()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM orders WHERE id=.* FOR UPDATE").WithArgs(int64(42)).WillReturnRows(
		pgxmockv3.NewRows([]string{"status"}).AddRow("Pending"))
	mock.ExpectExec("UPDATE orders SET status=").WithArgs("Accepted", int64(42)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectQuery("FROM order_items WHERE order_id=").WithArgs(int64(42)).WillReturnRows(
		pgxmockv3.NewRows([]string{"id", "order_id", "variant_id", "quantity", "price"}).
			AddRow(int64(1), int64(42), int64(10), 3, 50.0).
			AddRow(int64(2), int64(42), int64(11), 1, 30.0))
	mock.ExpectExec("UPDATE product_variants SET stock = GREATEST").WithArgs(3, int64(10)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE product_variants SET stock = GREATEST").WithArgs(1, int64(11)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := store.WithinLifecycle(context.Background(), func(tx repository.LifecycleTx) error {
		from, err := tx.LockOrder(context.Background(), 42)
		if err != nil {
			return err
		}
		if from != model.OrderStatusPending {
			t.Errorf("unexpected current status %q", from)
		}
		if err := tx.SetOrderStatus(context.Background(), 42, model.OrderStatusAccepted); err != nil {
			return err
		}
		items, err := tx.OrderItems(context.Background(), 42)
		if err != nil {
			return err
		}
		for _, it := range items {
			if err := tx.DecrementStock(context.Background(), it.VariantID, it.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestLifecycleStoreRollsBackOnFailure(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	store := storage.Lifecycle()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE orders SET status=").WithArgs("Delivered", int64(42)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE payments SET status=").WithArgs("Completed", int64(42)).WillReturnError(errors.New("payments down"))
	mock.ExpectRollback()

	err := store.WithinLifecycle(context.Background(), func(tx repository.LifecycleTx) error {
		if err := tx.SetOrderStatus(context.Background(), 42, model.OrderStatusDelivered); err != nil {
			return err
		}
		return tx.SetOrderPayment(context.Background(), 42, model.PaymentStatusCompleted)
	})
	if err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestLifecycleTxLockOrder(t *testing.T) {
	_, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	tx, err := mock.Begin(context.Background())
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	ltx := &lifecycleTx{tx: tx}

	mock.ExpectQuery("SELECT status FROM orders").WithArgs(int64(1)).WillReturnError(pgx.ErrNoRows)
	if _, err := ltx.LockOrder(context.Background(), 1); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectQuery("SELECT status FROM orders").WithArgs(int64(2)).WillReturnError(errors.New("boom"))
	if _, err := ltx.LockOrder(context.Background(), 2); err == nil || errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected raw error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestLifecycleTxSetOrderStatus(t *testing.T) {
	_, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	tx, err := mock.Begin(context.Background())
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	ltx := &lifecycleTx{tx: tx}

	mock.ExpectExec("UPDATE orders SET status=").WithArgs("Deleted", int64(9)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	if err := ltx.SetOrderStatus(context.Background(), 9, model.OrderStatusDeleted); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectExec("UPDATE orders SET status=").WithArgs("Pending", int64(9)).WillReturnError(errors.New("boom"))
	if err := ltx.SetOrderStatus(context.Background(), 9, model.OrderStatusPending); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestLifecycleTxOrderItemsError(t *testing.T) {
	_, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	tx, err := mock.Begin(context.Background())
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	ltx := &lifecycleTx{tx: tx}

	mock.ExpectQuery("FROM order_items WHERE order_id=").WithArgs(int64(5)).WillReturnError(errors.New("boom"))
	if _, err := ltx.OrderItems(context.Background(), 5); err == nil {
		t.Fatal("expected error")
	}

	mock.ExpectQuery("FROM order_items WHERE order_id=").WithArgs(int64(6)).WillReturnRows(
		pgxmockv3.NewRows([]string{"id", "order_id", "variant_id", "quantity", "price"}))
	items, err := ltx.OrderItems(context.Background(), 6)
	if err != nil || len(items) != 0 {
		t.Fatalf("expected no items, got %v err=%v", items, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestLifecycleTxSetOrderPaymentMirrorsOntoOrder(t *testing.T) {
	_, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	tx, err := mock.Begin(context.Background())
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	ltx := &lifecycleTx{tx: tx}

	mock.ExpectExec("UPDATE payments SET status=").WithArgs("Cancelled", int64(42)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE orders SET payment_status=").WithArgs("Cancelled", int64(42)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := ltx.SetOrderPayment(context.Background(), 42, model.PaymentStatusCancelled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("UPDATE payments SET status=").WithArgs("Cancelled", int64(43)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	if err := ltx.SetOrderPayment(context.Background(), 43, model.PaymentStatusCancelled); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectExec("UPDATE payments SET status=").WithArgs("Cancelled", int64(44)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE orders SET payment_status=").WithArgs("Cancelled", int64(44)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	if err := ltx.SetOrderPayment(context.Background(), 44, model.PaymentStatusCancelled); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestLifecycleTxSetPayment(t *testing.T) {
	_, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	tx, err := mock.Begin(context.Background())
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	ltx := &lifecycleTx{tx: tx}

	mock.ExpectQuery("UPDATE payments SET status=.* RETURNING order_id").WithArgs("Paid", int64(7)).WillReturnRows(
		pgxmockv3.NewRows([]string{"order_id"}).AddRow(int64(42)))
	mock.ExpectExec("UPDATE orders SET payment_status=").WithArgs("Paid", int64(42)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	orderID, err := ltx.SetPayment(context.Background(), 7, model.PaymentStatusPaid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orderID != 42 {
		t.Fatalf("unexpected order id: %d", orderID)
	}

	mock.ExpectQuery("UPDATE payments SET status=.* RETURNING order_id").WithArgs("Paid", int64(8)).WillReturnError(pgx.ErrNoRows)
	if _, err := ltx.SetPayment(context.Background(), 8, model.PaymentStatusPaid); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectQuery("UPDATE payments SET status=.* RETURNING order_id").WithArgs("Paid", int64(9)).WillReturnRows(
		pgxmockv3.NewRows([]string{"order_id"}).AddRow(int64(44)))
	mock.ExpectExec("UPDATE orders SET payment_status=").WithArgs("Paid", int64(44)).WillReturnError(errors.New("boom"))
	if _, err := ltx.SetPayment(context.Background(), 9, model.PaymentStatusPaid); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
