package event_test

import (
	"context"
	"testing"
	"time"

	"github.com/manzt/marimo/internal/clock"
	"github.com/manzt/marimo/service/event"
	"github.com/stretchr/testify/assert"
)

func TestPublisherFanOut(t *testing.T) {
	p := event.NewPublisher[string]()
	var first, second []string
	p.Subscribe(func(e *event.Event[string]) { first = append(first, e.Data) })
	p.Subscribe(func(e *event.Event[string]) { second = append(second, e.Data) })

	ctx := context.Background()
	err := p.Publish(ctx, event.NewEvent(&event.Context{EventType: event.TypeCellRegistered}, "a"))
	assert.Nil(t, err)
	err = p.Publish(ctx, event.NewEvent(&event.Context{EventType: event.TypeCellRegistered}, "b"))
	assert.Nil(t, err)

	assert.Equal(t, []string{"a", "b"}, first)
	assert.Equal(t, []string{"a", "b"}, second)
}

func TestPublishCancelledContext(t *testing.T) {
	p := event.NewPublisher[int]()
	called := false
	p.Subscribe(func(*event.Event[int]) { called = true })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.Publish(ctx, event.NewEvent(&event.Context{EventType: event.TypeRegistryReset}, 0))
	assert.NotNil(t, err)
	assert.False(t, called)
}

func TestEventTimestamp(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	defer clock.Stub(fixed)()

	e := event.NewEvent(&event.Context{NotebookID: "nb", CellID: "0", EventType: event.TypeCellRegistered}, "data")
	assert.Equal(t, fixed, e.CreatedAt)
	assert.NotNil(t, e.Metadata)
}
