package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/freshcart/internal/domain/model"
)

type orderRepository struct {
	storage *Storage
}

// Place inserts the order, its line items and its pending payment in one transaction.
func (r *orderRepository) Place(ctx context.Context, order model.NewOrder) (*model.Order, error) {
	placed := &model.Order{
		UserID:        order.UserID,
		Status:        model.OrderStatusPending,
		PaymentStatus: string(model.PaymentStatusPending),
		TotalAmount:   order.Amount(),
	}

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (user_id, status, payment_status, total_amount)
                             VALUES ($1, $2, $3, $4) RETURNING id, order_date`
		err := tx.QueryRow(ctx, insertOrder, placed.UserID, string(placed.Status), placed.PaymentStatus, placed.TotalAmount).
			Scan(&placed.ID, &placed.OrderDate)
		if err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, variant_id, quantity, price) VALUES ($1, $2, $3, $4)`
		for _, item := range order.Items {
			if _, err := tx.Exec(ctx, insertItem, placed.ID, item.VariantID, item.Quantity, item.Price); err != nil {
				return err
			}
		}

		const insertPayment = `INSERT INTO payments (order_id, amount, status) VALUES ($1, $2, $3)`
		_, err = tx.Exec(ctx, insertPayment, placed.ID, placed.TotalAmount, string(model.PaymentStatusPending))
		return err
	})
	if err != nil {
		return nil, mapError(err)
	}
	return placed, nil
}

func (r *orderRepository) ListByShopOwner(ctx context.Context, userID int64) ([]model.ShopOrder, error) {
	const query = `SELECT o.id, o.status, o.payment_status, o.order_date, p.amount, p.status,
                          string_agg(DISTINCT d.name, ', ' ORDER BY d.name)
                   FROM orders o
                   JOIN payments p ON o.id = p.order_id
                   JOIN order_items oi ON o.id = oi.order_id
                   JOIN product_variants v ON oi.variant_id = v.id
                   JOIN users d ON v.distributor_id = d.id
                   WHERE o.user_id = $1
                   GROUP BY o.id, p.id
                   ORDER BY o.order_date DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.ShopOrder{}
	for rows.Next() {
		var (
			o             model.ShopOrder
			status, state string
		)
		if err := rows.Scan(&o.OrderID, &status, &o.PaymentStatus, &o.OrderDate, &o.TotalAmount, &state, &o.Distributors); err != nil {
			return nil, err
		}
		o.Status = model.OrderStatus(status)
		o.PaymentState = model.PaymentStatus(state)
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListByDistributor lists orders containing the distributor's variants, either live or soft-deleted.
func (r *orderRepository) ListByDistributor(ctx context.Context, distributorID int64, deleted bool) ([]model.DistributorOrder, error) {
	const query = `SELECT DISTINCT o.id, o.order_date, o.status, o.payment_status, u.name, p.amount
                   FROM orders o
                   JOIN order_items oi ON o.id = oi.order_id
                   JOIN product_variants v ON oi.variant_id = v.id
                   JOIN users u ON o.user_id = u.id
                   JOIN payments p ON o.id = p.order_id
                   WHERE v.distributor_id = $1 AND (o.status = 'Deleted') = $2
                   ORDER BY o.order_date DESC`
	rows, err := r.storage.pool.Query(ctx, query, distributorID, deleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.DistributorOrder{}
	for rows.Next() {
		var (
			o      model.DistributorOrder
			status string
		)
		if err := rows.Scan(&o.OrderID, &o.OrderDate, &status, &o.PaymentStatus, &o.ShopOwner, &o.Amount); err != nil {
			return nil, err
		}
		o.Status = model.OrderStatus(status)
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
