package event

import (
	"context"
	"sync"
)

// Handler consumes published events.
type Handler[T any] func(*Event[T])

// Publisher fans events out to subscribed handlers. Delivery is synchronous
// and in subscription order: mint state and notification order stay aligned,
// which an asynchronous queue would not guarantee. Handlers must return
// quickly and must not publish from within a callback.
type Publisher[T any] struct {
	mu       sync.RWMutex
	handlers []Handler[T]
}

// NewPublisher creates an empty publisher.
func NewPublisher[T any]() *Publisher[T] {
	return &Publisher[T]{}
}

// Subscribe attaches handlers invoked on every subsequent publish.
func (p *Publisher[T]) Subscribe(fn ...Handler[T]) {
	if len(fn) == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers = append(p.handlers, fn...)
}

// Publish delivers the event to every subscribed handler. The context is
// consulted for cancellation between handlers.
func (p *Publisher[T]) Publish(ctx context.Context, event *Event[T]) error {
	p.mu.RLock()
	handlers := append([]Handler[T](nil), p.handlers...)
	p.mu.RUnlock()

	for _, fn := range handlers {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(event)
	}
	return nil
}
