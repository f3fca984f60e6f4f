package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"

	"github.com/polkiloo/freshcart/internal/domain/model"
	"github.com/polkiloo/freshcart/internal/metrics"
	testhelpers "github.com/polkiloo/freshcart/internal/test"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.After(time.Second)
	for !cond() {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for condition")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func publishedCount(m *metrics.Metrics, result string) float64 {
	families, err := m.Registry().Gather()
	if err != nil {
		return -1
	}
	for _, f := range families {
		if f.GetName() != "freshcart_order_events_published_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "result" && label.GetValue() == result {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestNewEventDispatcherDefaults(t *testing.T) {
	d := NewEventDispatcher(&testhelpers.PublisherStub{}, nil, 0, 0, zap.NewNop())
	if d.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", d.workers)
	}
	if cap(d.jobs) != 1 {
		t.Fatalf("expected queue size default to 1, got %d", cap(d.jobs))
	}
}

func TestEventDispatcherPublishesEvents(t *testing.T) {
	publisher := &testhelpers.PublisherStub{}
	m := metrics.New()
	d := NewEventDispatcher(publisher, m, 2, 8, zap.NewNop())
	d.Start(context.Background())

	for i := int64(1); i <= 3; i++ {
		if !d.Dispatch(model.OrderEvent{Type: model.OrderEventStatusChanged, OrderID: i}) {
			t.Fatalf("event %d unexpectedly dropped", i)
		}
	}

	waitFor(t, func() bool { return len(publisher.Events()) == 3 })
	d.Stop()

	for _, e := range publisher.Events() {
		if e.ID == "" {
			t.Errorf("expected event id to be stamped")
		}
		if e.OccurredAt.IsZero() {
			t.Errorf("expected occurred_at to be stamped")
		}
	}
	if got := publishedCount(m, metrics.ResultPublished); got != 3 {
		t.Fatalf("expected 3 published, got %v", got)
	}
}

func TestEventDispatcherKeepsProvidedID(t *testing.T) {
	publisher := &testhelpers.PublisherStub{}
	d := NewEventDispatcher(publisher, nil, 1, 1, zap.NewNop())
	d.Start(context.Background())

	d.Dispatch(model.OrderEvent{ID: "fixed", OrderID: 1})
	d.Stop()

	events := publisher.Events()
	if len(events) != 1 || events[0].ID != "fixed" {
		t.Fatalf("unexpected events: %+v", events)
	}
}

func TestEventDispatcherDropsWhenQueueFull(t *testing.T) {
	m := metrics.New()
	d := NewEventDispatcher(&testhelpers.PublisherStub{}, m, 1, 1, zap.NewNop())

	if !d.Dispatch(model.OrderEvent{OrderID: 1}) {
		t.Fatal("first event should be queued")
	}
	if d.Dispatch(model.OrderEvent{OrderID: 2}) {
		t.Fatal("second event should be dropped while queue is full")
	}
	if got, err := testutil.GatherAndCount(m.Registry(), "freshcart_order_events_published_total"); err != nil || got != 1 {
		t.Fatalf("expected one result series, got %d err=%v", got, err)
	}
	if got := publishedCount(m, metrics.ResultDropped); got != 1 {
		t.Fatalf("expected 1 dropped, got %v", got)
	}
	d.Stop()
}

func TestEventDispatcherStopDrainsQueue(t *testing.T) {
	publisher := &testhelpers.PublisherStub{}
	d := NewEventDispatcher(publisher, nil, 1, 4, zap.NewNop())

	for i := int64(1); i <= 4; i++ {
		d.Dispatch(model.OrderEvent{OrderID: i})
	}
	d.Start(context.Background())
	d.Stop()

	if got := len(publisher.Events()); got != 4 {
		t.Fatalf("expected queued events to be drained, got %d", got)
	}
	if d.Dispatch(model.OrderEvent{OrderID: 5}) {
		t.Fatal("expected dispatch after stop to be rejected")
	}
	d.Stop()
}

func TestEventDispatcherCountsFailures(t *testing.T) {
	m := metrics.New()
	publisher := &testhelpers.PublisherStub{Err: errors.New("broker down")}
	d := NewEventDispatcher(publisher, m, 1, 2, zap.NewNop())
	d.Start(context.Background())

	d.Dispatch(model.OrderEvent{OrderID: 1})
	d.Stop()

	if got := publishedCount(m, metrics.ResultFailed); got != 1 {
		t.Fatalf("expected 1 failure, got %v", got)
	}
}

func TestEventDispatcherPublishSurvivesCanceledStartContext(t *testing.T) {
	publisher := &testhelpers.PublisherStub{
		PublishFn: func(ctx context.Context, _ model.OrderEvent) error { return ctx.Err() },
	}
	ctx, cancel := context.WithCancel(context.Background())
	d := NewEventDispatcher(publisher, nil, 1, 2, zap.NewNop())
	d.Start(ctx)
	cancel()

	d.Dispatch(model.OrderEvent{OrderID: 1})
	d.Stop()

	if got := len(publisher.Events()); got != 1 {
		t.Fatalf("expected event to be published, got %d", got)
	}
}
