package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/freshcart/internal/domain/model"
	"github.com/polkiloo/freshcart/internal/domain/repository"
)

type lifecycleStore struct {
	storage *Storage
}

func (s *lifecycleStore) WithinLifecycle(ctx context.Context, fn func(repository.LifecycleTx) error) error {
	return s.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		return fn(&lifecycleTx{tx: tx})
	})
}

type lifecycleTx struct {
	tx pgx.Tx
}

func (t *lifecycleTx) LockOrder(ctx context.Context, orderID int64) (model.OrderStatus, error) {
	var status string
	if err := t.tx.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1 FOR UPDATE`, orderID).Scan(&status); err != nil {
		return "", mapError(err)
	}
	return model.OrderStatus(status), nil
}

func (t *lifecycleTx) SetOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	tag, err := t.tx.Exec(ctx, `UPDATE orders SET status=$1 WHERE id=$2`, string(status), orderID)
	if err != nil {
		return mapError(err)
	}
	return requireRow(tag)
}

func (t *lifecycleTx) OrderItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	const query = `SELECT id, order_id, variant_id, quantity, price FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := t.tx.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.VariantID, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (t *lifecycleTx) DecrementStock(ctx context.Context, variantID int64, quantity int) error {
	const query = `UPDATE product_variants SET stock = GREATEST(stock - $1, 0) WHERE id = $2`
	_, err := t.tx.Exec(ctx, query, quantity, variantID)
	return mapError(err)
}

func (t *lifecycleTx) SetOrderPayment(ctx context.Context, orderID int64, status model.PaymentStatus) error {
	tag, err := t.tx.Exec(ctx, `UPDATE payments SET status=$1 WHERE order_id=$2`, string(status), orderID)
	if err != nil {
		return mapError(err)
	}
	if err := requireRow(tag); err != nil {
		return err
	}
	tag, err = t.tx.Exec(ctx, `UPDATE orders SET payment_status=$1 WHERE id=$2`, string(status), orderID)
	if err != nil {
		return mapError(err)
	}
	return requireRow(tag)
}

func (t *lifecycleTx) SetPayment(ctx context.Context, paymentID int64, status model.PaymentStatus) (int64, error) {
	var orderID int64
	err := t.tx.QueryRow(ctx, `UPDATE payments SET status=$1 WHERE id=$2 RETURNING order_id`, string(status), paymentID).Scan(&orderID)
	if err != nil {
		return 0, mapError(err)
	}
	if _, err := t.tx.Exec(ctx, `UPDATE orders SET payment_status=$1 WHERE id=$2`, string(status), orderID); err != nil {
		return 0, mapError(err)
	}
	return orderID, nil
}
