package event

import (
	"time"

	"github.com/manzt/marimo/internal/clock"
)

// Event types published by the identity core.
const (
	TypeCellRegistered = "cell.registered"
	TypeRegistryReset  = "registry.reset"
)

// Context carries the identity coordinates of an event.
type Context struct {
	NotebookID string `json:"notebookID"`
	CellID     string `json:"cellID,omitempty"`
	EventType  string `json:"eventType"`
}

// Event is a typed lifecycle notification.
type Event[T any] struct {
	Context   *Context               `json:"context"`
	CreatedAt time.Time              `json:"createdAt"`
	Metadata  map[string]interface{} `json:"metadata"`
	Data      T                      `json:"data"`
}

// NewEvent creates an event stamped with the package clock.
func NewEvent[T any](context *Context, data T) *Event[T] {
	return &Event[T]{
		Context:   context,
		CreatedAt: clock.Now(),
		Metadata:  make(map[string]interface{}),
		Data:      data,
	}
}
