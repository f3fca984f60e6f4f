package postgres

import (
	"context"

	"github.com/polkiloo/freshcart/internal/domain/model"
)

type paymentRepository struct {
	storage *Storage
}

func (r *paymentRepository) ListByShopOwner(ctx context.Context, userID int64) ([]model.ShopPayment, error) {
	const query = `SELECT DISTINCT p.id, p.order_id, p.amount, p.status, p.payment_method, p.payment_date, o.status, d.name
                   FROM payments p
                   JOIN orders o ON p.order_id = o.id
                   JOIN order_items oi ON o.id = oi.order_id
                   JOIN product_variants v ON oi.variant_id = v.id
                   JOIN users d ON v.distributor_id = d.id
                   WHERE o.user_id = $1
                   ORDER BY p.payment_date DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.ShopPayment{}
	for rows.Next() {
		var (
			p                   model.ShopPayment
			status, orderStatus string
		)
		if err := rows.Scan(&p.PaymentID, &p.OrderID, &p.Amount, &status, &p.Method, &p.Date, &orderStatus, &p.DistributorName); err != nil {
			return nil, err
		}
		p.Status = model.PaymentStatus(status)
		p.OrderStatus = model.OrderStatus(orderStatus)
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *paymentRepository) ListByDistributor(ctx context.Context, distributorID int64) ([]model.DistributorPayment, error) {
	const query = `SELECT DISTINCT p.id, p.order_id, u.name, p.amount, p.status, p.payment_method, p.payment_date
                   FROM payments p
                   JOIN orders o ON p.order_id = o.id
                   JOIN users u ON o.user_id = u.id
                   JOIN order_items oi ON o.id = oi.order_id
                   JOIN product_variants v ON oi.variant_id = v.id
                   WHERE v.distributor_id = $1
                   ORDER BY p.payment_date DESC`
	rows, err := r.storage.pool.Query(ctx, query, distributorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.DistributorPayment{}
	for rows.Next() {
		var (
			p      model.DistributorPayment
			status string
		)
		if err := rows.Scan(&p.PaymentID, &p.OrderID, &p.ShopName, &p.Amount, &status, &p.Method, &p.Date); err != nil {
			return nil, err
		}
		p.Status = model.PaymentStatus(status)
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
