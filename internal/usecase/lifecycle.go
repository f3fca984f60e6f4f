package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/polkiloo/freshcart/internal/config"
	domainErrors "github.com/polkiloo/freshcart/internal/domain/errors"
	"github.com/polkiloo/freshcart/internal/domain/model"
	"github.com/polkiloo/freshcart/internal/domain/repository"
	"github.com/polkiloo/freshcart/internal/metrics"
)

const tracerName = "github.com/polkiloo/freshcart/internal/usecase"

// EventSink accepts lifecycle events once the owning transaction has committed.
// Dispatch must not block; a false return means the event was dropped.
type EventSink interface {
	Dispatch(event model.OrderEvent) bool
}

type sideEffectFunc func(ctx context.Context, tx repository.LifecycleTx, orderID int64) error

type sideEffect struct {
	name  model.SideEffect
	apply sideEffectFunc
}

// sideEffects is keyed by the requested status, not by the edge taken.
var sideEffects = map[model.OrderStatus]sideEffect{
	model.OrderStatusAccepted:  {name: model.SideEffectStockDecrement, apply: decrementStock},
	model.OrderStatusDelivered: {name: model.SideEffectPaymentComplete, apply: settlePayment(model.PaymentStatusCompleted)},
	model.OrderStatusDeclined:  {name: model.SideEffectPaymentCancel, apply: settlePayment(model.PaymentStatusCancelled)},
}

// SideEffectFor returns the side effect a transition into status triggers.
func SideEffectFor(status model.OrderStatus) (model.SideEffect, bool) {
	effect, ok := sideEffects[status]
	return effect.name, ok
}

func decrementStock(ctx context.Context, tx repository.LifecycleTx, orderID int64) error {
	items, err := tx.OrderItems(ctx, orderID)
	if err != nil {
		return fmt.Errorf("load order items: %w", err)
	}
	for _, item := range items {
		if err := tx.DecrementStock(ctx, item.VariantID, item.Quantity); err != nil {
			return fmt.Errorf("decrement stock of variant %d: %w", item.VariantID, err)
		}
	}
	return nil
}

func settlePayment(status model.PaymentStatus) sideEffectFunc {
	return func(ctx context.Context, tx repository.LifecycleTx, orderID int64) error {
		if err := tx.SetOrderPayment(ctx, orderID, status); err != nil {
			return fmt.Errorf("set payment %s: %w", status, err)
		}
		return nil
	}
}

// LifecycleUseCase is the only writer that touches orders, payments and stock together.
type LifecycleUseCase struct {
	store   repository.LifecycleStore
	events  EventSink
	metrics *metrics.Metrics
	strict  bool
	tracer  trace.Tracer
	logger  *zap.Logger
}

// NewLifecycleUseCase constructs LifecycleUseCase.
func NewLifecycleUseCase(store repository.LifecycleStore, events EventSink, m *metrics.Metrics, policy config.TransitionPolicy, logger *zap.Logger) *LifecycleUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LifecycleUseCase{
		store:   store,
		events:  events,
		metrics: m,
		strict:  policy == config.TransitionsStrict,
		tracer:  otel.Tracer(tracerName),
		logger:  logger,
	}
}

// Transition moves an order to the requested status and applies the side effect keyed by it.
func (u *LifecycleUseCase) Transition(ctx context.Context, orderID int64, requested string) (model.TransitionResult, error) {
	key := model.NormalizeStatusKey(requested)
	if key == "" {
		return model.TransitionResult{}, fmt.Errorf("%w: status", domainErrors.ErrMissingField)
	}
	target, ok := model.ParseOrderStatus(key)
	if !ok {
		return model.TransitionResult{}, fmt.Errorf("%w: %q", domainErrors.ErrInvalidStatus, requested)
	}

	ctx, span := u.tracer.Start(ctx, "lifecycle.Transition", trace.WithAttributes(
		attribute.Int64("order.id", orderID),
		attribute.String("order.status", string(target)),
	))
	defer span.End()

	result := model.TransitionResult{OrderID: orderID, To: target, SideEffects: []model.SideEffect{}}
	err := u.store.WithinLifecycle(ctx, func(tx repository.LifecycleTx) error {
		from, err := tx.LockOrder(ctx, orderID)
		if err != nil {
			return err
		}
		result.From = from

		if u.strict && !from.CanAdvance(target) {
			return fmt.Errorf("%w: %s -> %s", domainErrors.ErrInvalidTransition, from, target)
		}
		if err := tx.SetOrderStatus(ctx, orderID, target); err != nil {
			return err
		}

		effect, ok := sideEffects[target]
		if !ok {
			return nil
		}
		if err := effect.apply(ctx, tx, orderID); err != nil {
			return err
		}
		result.SideEffects = append(result.SideEffects, effect.name)
		return nil
	})
	if err != nil {
		u.fail(span, err, "order transition failed", zap.Int64("order_id", orderID), zap.String("to", string(target)))
		return model.TransitionResult{}, err
	}

	u.metrics.OrderTransitioned(target, result.SideEffects)
	u.logger.Info("order transitioned",
		zap.Int64("order_id", orderID),
		zap.String("from", string(result.From)),
		zap.String("to", string(target)),
		zap.Any("side_effects", result.SideEffects),
	)
	u.emit(model.OrderEvent{
		Type:        model.OrderEventStatusChanged,
		OrderID:     orderID,
		From:        result.From,
		To:          target,
		SideEffects: result.SideEffects,
	})
	return result, nil
}

// SoftDelete marks the order Deleted without validation or side effects.
func (u *LifecycleUseCase) SoftDelete(ctx context.Context, orderID int64) error {
	return u.force(ctx, "lifecycle.SoftDelete", orderID, model.OrderStatusDeleted, model.OrderEventDeleted)
}

// Restore returns a soft-deleted order to Pending. Stock and payment effects
// applied before deletion are neither re-applied nor reverted.
func (u *LifecycleUseCase) Restore(ctx context.Context, orderID int64) error {
	return u.force(ctx, "lifecycle.Restore", orderID, model.OrderStatusPending, model.OrderEventRestored)
}

func (u *LifecycleUseCase) force(ctx context.Context, spanName string, orderID int64, status model.OrderStatus, eventType model.OrderEventType) error {
	ctx, span := u.tracer.Start(ctx, spanName, trace.WithAttributes(attribute.Int64("order.id", orderID)))
	defer span.End()

	var from model.OrderStatus
	err := u.store.WithinLifecycle(ctx, func(tx repository.LifecycleTx) error {
		current, err := tx.LockOrder(ctx, orderID)
		if err != nil {
			return err
		}
		from = current
		return tx.SetOrderStatus(ctx, orderID, status)
	})
	if err != nil {
		u.fail(span, err, "order status override failed", zap.Int64("order_id", orderID), zap.String("to", string(status)))
		return err
	}

	u.metrics.OrderTransitioned(status, nil)
	u.logger.Info("order status overridden",
		zap.Int64("order_id", orderID),
		zap.String("from", string(from)),
		zap.String("to", string(status)),
	)
	u.emit(model.OrderEvent{Type: eventType, OrderID: orderID, From: from, To: status})
	return nil
}

// UpdatePaymentStatus sets a payment's status and mirrors it onto its order.
// The order's own status is left alone.
func (u *LifecycleUseCase) UpdatePaymentStatus(ctx context.Context, paymentID int64, requested string) (model.PaymentStatus, error) {
	if model.NormalizeStatusKey(requested) == "" {
		return "", fmt.Errorf("%w: status", domainErrors.ErrMissingField)
	}
	status, ok := model.ParsePaymentStatus(requested)
	if !ok {
		return "", fmt.Errorf("%w: %q", domainErrors.ErrInvalidStatus, requested)
	}

	ctx, span := u.tracer.Start(ctx, "lifecycle.UpdatePaymentStatus", trace.WithAttributes(
		attribute.Int64("payment.id", paymentID),
		attribute.String("payment.status", string(status)),
	))
	defer span.End()

	var orderID int64
	err := u.store.WithinLifecycle(ctx, func(tx repository.LifecycleTx) error {
		id, err := tx.SetPayment(ctx, paymentID, status)
		if err != nil {
			return err
		}
		orderID = id
		return nil
	})
	if err != nil {
		u.fail(span, err, "payment update failed", zap.Int64("payment_id", paymentID), zap.String("status", string(status)))
		return "", err
	}

	u.logger.Info("payment updated",
		zap.Int64("payment_id", paymentID),
		zap.Int64("order_id", orderID),
		zap.String("status", string(status)),
	)
	u.emit(model.OrderEvent{
		Type:          model.OrderEventPaymentUpdated,
		OrderID:       orderID,
		PaymentID:     paymentID,
		PaymentStatus: status,
	})
	return status, nil
}

func (u *LifecycleUseCase) fail(span trace.Span, err error, msg string, fields ...zap.Field) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if isClientError(err) {
		u.logger.Debug(msg, append(fields, zap.Error(err))...)
		return
	}
	u.logger.Error(msg, append(fields, zap.Error(err))...)
}

func (u *LifecycleUseCase) emit(event model.OrderEvent) {
	if u.events == nil {
		return
	}
	u.events.Dispatch(event)
}
