package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/polkiloo/freshcart/internal/adapter/events"
	"github.com/polkiloo/freshcart/internal/domain/model"
	"github.com/polkiloo/freshcart/internal/metrics"
)

const defaultPublishTimeout = 5 * time.Second

// EventDispatcher hands committed order events to a publisher through a bounded queue.
// Dispatch never blocks: when the queue is full the event is dropped and logged.
type EventDispatcher struct {
	publisher      events.Publisher
	metrics        *metrics.Metrics
	workers        int
	publishTimeout time.Duration
	logger         *zap.Logger

	jobs    chan model.OrderEvent
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	mu      sync.Mutex
	stopped bool
}

// NewEventDispatcher constructs the dispatcher worker pool.
func NewEventDispatcher(publisher events.Publisher, m *metrics.Metrics, workers, queueSize int, logger *zap.Logger) *EventDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &EventDispatcher{
		publisher:      publisher,
		metrics:        m,
		workers:        workers,
		publishTimeout: defaultPublishTimeout,
		logger:         logger,
		jobs:           make(chan model.OrderEvent, queueSize),
	}
}

// Start launches the publishing workers.
func (d *EventDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop rejects new events, drains the queue and waits for all workers to finish.
func (d *EventDispatcher) Stop() {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		close(d.jobs)
	}
	d.mu.Unlock()

	d.wg.Wait()

	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()
}

// Dispatch enqueues the event, stamping a missing id and timestamp.
// It reports false when the event was dropped.
func (d *EventDispatcher) Dispatch(event model.OrderEvent) bool {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		d.drop(event, "dispatcher stopped")
		return false
	}

	select {
	case d.jobs <- event:
		return true
	default:
		d.drop(event, "event queue full")
		return false
	}
}

func (d *EventDispatcher) drop(event model.OrderEvent, reason string) {
	d.metrics.EventPublished(metrics.ResultDropped)
	d.logger.Warn("order event dropped",
		zap.String("reason", reason),
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.Int64("order_id", event.OrderID),
	)
}

func (d *EventDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for event := range d.jobs {
		d.publish(ctx, event)
	}
}

func (d *EventDispatcher) publish(ctx context.Context, event model.OrderEvent) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.publishTimeout)
	defer cancel()

	if err := d.publisher.Publish(ctx, event); err != nil {
		d.metrics.EventPublished(metrics.ResultFailed)
		d.logger.Error("publish order event failed",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.Int64("order_id", event.OrderID),
			zap.Error(err),
		)
		return
	}
	d.metrics.EventPublished(metrics.ResultPublished)
}
