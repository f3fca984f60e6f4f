package usecase

import (
	"context"

	"github.com/polkiloo/freshcart/internal/domain/model"
	"github.com/polkiloo/freshcart/internal/domain/repository"
)

// PaymentUseCase serves payment listings. Status changes go through LifecycleUseCase.
type PaymentUseCase struct {
	payments repository.PaymentRepository
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(payments repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{payments: payments}
}

func (u *PaymentUseCase) ShopPayments(ctx context.Context, userID int64) ([]model.ShopPayment, error) {
	return u.payments.ListByShopOwner(ctx, userID)
}

func (u *PaymentUseCase) DistributorPayments(ctx context.Context, distributorID int64) ([]model.DistributorPayment, error) {
	return u.payments.ListByDistributor(ctx, distributorID)
}
