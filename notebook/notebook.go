// Package notebook keeps the registration bookkeeping for notebook cells:
// which identifiers exist, the name and code registered under each, and the
// order in which cells were added. Content execution and rendering live
// elsewhere; only identity is modelled here.
package notebook

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/manzt/marimo/cell"
	"github.com/manzt/marimo/registry"
	"github.com/manzt/marimo/service/event"
	"github.com/manzt/marimo/tracing"
)

// unnamedCell is the placeholder name recorded for cells registered without
// a usable name.
const unnamedCell = "__"

// Cell is one registered unit of content. A cell is unparsable when its code
// failed parsing at registration time; such cells keep their identity and
// source but are excluded from anything that requires a parsed form.
type Cell struct {
	ID       cell.ID
	Name     string
	Code     string
	Parsable bool
}

// Notebook owns a registry and the cells registered against it.
type Notebook struct {
	id         string
	registry   *registry.Registry
	cells      *cellStore[cell.ID, Cell]
	publisher  *event.Publisher[Cell]
	mu         sync.RWMutex
	order      []cell.ID
	unparsable bool
}

// Option customises a Notebook.
type Option func(*Notebook)

// WithID sets the notebook identifier used in published event contexts.
func WithID(id string) Option {
	return func(n *Notebook) { n.id = id }
}

// WithRegistry sets the identifier registry. Sharing one registry between
// notebooks keeps their cell identifiers mutually distinct.
func WithRegistry(r *registry.Registry) Option {
	return func(n *Notebook) { n.registry = r }
}

// WithPublisher sets the lifecycle event publisher.
func WithPublisher(p *event.Publisher[Cell]) Option {
	return func(n *Notebook) { n.publisher = p }
}

// New creates a Notebook with the supplied options; missing collaborators
// get default instances.
func New(options ...Option) *Notebook {
	ret := &Notebook{
		cells: newCellStore[cell.ID, Cell](func(c *Cell) cell.ID { return c.ID }),
	}
	for _, option := range options {
		option(ret)
	}
	if ret.id == "" {
		ret.id = uuid.New().String()
	}
	if ret.registry == nil {
		ret.registry = registry.New()
	}
	if ret.publisher == nil {
		ret.publisher = event.NewPublisher[Cell]()
	}
	ret.registry.OnReset(func() {
		_ = ret.publisher.Publish(context.Background(), event.NewEvent(&event.Context{
			NotebookID: ret.id,
			EventType:  event.TypeRegistryReset,
		}, Cell{}))
	})
	return ret
}

// ID returns the notebook identifier.
func (n *Notebook) ID() string { return n.id }

// Registry returns the identifier registry owned by this notebook.
func (n *Notebook) Registry() *registry.Registry { return n.registry }

// Register mints an identifier for a parsed cell and records it. The
// returned Cell is a snapshot; the notebook keeps its own copy.
func (n *Notebook) Register(ctx context.Context, name, code string) *Cell {
	return n.register(ctx, name, code, true)
}

// RegisterUnparsable records a cell whose code failed parsing. The cell
// still receives an identifier so the UI can address it; the notebook is
// marked unparsable. An empty name is recorded as "__".
func (n *Notebook) RegisterUnparsable(ctx context.Context, name, code string) *Cell {
	return n.register(ctx, name, code, false)
}

func (n *Notebook) register(ctx context.Context, name, code string, parsable bool) *Cell {
	ctx, span := tracing.StartSpan(ctx, "notebook.register", "")
	defer tracing.EndSpan(span, nil)

	if name == "" {
		name = unnamedCell
	}
	id := n.registry.Create()
	c := &Cell{ID: id, Name: name, Code: code, Parsable: parsable}

	n.mu.Lock()
	n.order = append(n.order, id)
	if !parsable {
		n.unparsable = true
	}
	n.mu.Unlock()
	n.cells.put(c)

	span.WithAttributes(map[string]string{
		"notebook.id": n.id,
		"cell.id":     id.String(),
		"cell.name":   name,
	})
	_ = n.publisher.Publish(ctx, event.NewEvent(&event.Context{
		NotebookID: n.id,
		CellID:     id.String(),
		EventType:  event.TypeCellRegistered,
	}, *c))
	return c
}

// Cell returns the registered cell with the given identifier.
func (n *Notebook) Cell(id cell.ID) (*Cell, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	c, ok := n.cells.get(id)
	if !ok {
		return nil, ErrCellNotFound
	}
	return c, nil
}

// CellByAnchor resolves a cell through its DOM anchor namespace.
func (n *Notebook) CellByAnchor(anchor cell.DomAnchorID) (*Cell, error) {
	id, ok := cell.ParseAnchorOK(string(anchor))
	if !ok {
		return nil, ErrInvalidID
	}
	return n.Cell(id)
}

// Remove forgets a registered cell. The identifier is not returned to the
// registry; minted identifiers stay unique regardless of removals.
func (n *Notebook) Remove(id cell.ID) error {
	if id == "" {
		return ErrInvalidID
	}
	if _, ok := n.cells.get(id); !ok {
		return ErrCellNotFound
	}
	n.cells.remove(id)

	n.mu.Lock()
	defer n.mu.Unlock()
	for i, candidate := range n.order {
		if candidate == id {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
	return nil
}

// CellIDs returns the identifiers of all registered cells in registration
// order.
func (n *Notebook) CellIDs() []cell.ID {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return append([]cell.ID(nil), n.order...)
}

// Len returns the number of registered cells.
func (n *Notebook) Len() int { return n.cells.size() }

// Unparsable reports whether any registered cell failed parsing.
func (n *Notebook) Unparsable() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.unparsable
}
