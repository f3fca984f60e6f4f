package test

import (
	"context"
	"sync"

	"github.com/polkiloo/freshcart/internal/domain/model"
)

// PublisherStub records published events.
type PublisherStub struct {
	PublishFn func(context.Context, model.OrderEvent) error
	Err       error

	mu     sync.Mutex
	events []model.OrderEvent
	closed bool
}

// Publish stores the event unless configured to fail.
func (p *PublisherStub) Publish(ctx context.Context, event model.OrderEvent) error {
	if p.PublishFn != nil {
		if err := p.PublishFn(ctx, event); err != nil {
			return err
		}
	}
	if p.Err != nil {
		return p.Err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

// Close marks publisher as closed.
func (p *PublisherStub) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

// Events returns a snapshot of published events.
func (p *PublisherStub) Events() []model.OrderEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]model.OrderEvent(nil), p.events...)
}

// Closed reports whether Close was called.
func (p *PublisherStub) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// EventSinkStub captures dispatched events synchronously.
type EventSinkStub struct {
	Reject bool

	mu     sync.Mutex
	events []model.OrderEvent
}

// Dispatch records the event and reports acceptance.
func (s *EventSinkStub) Dispatch(event model.OrderEvent) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Reject {
		return false
	}
	s.events = append(s.events, event)
	return true
}

// Events returns a snapshot of dispatched events.
func (s *EventSinkStub) Events() []model.OrderEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.OrderEvent(nil), s.events...)
}
