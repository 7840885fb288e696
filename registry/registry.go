// Package registry mints cell identifiers. Mint state is held in an explicit
// Registry value rather than package-level globals so that tests and hosts
// can isolate instances.
package registry

import (
	"sync"

	"github.com/manzt/marimo/cell"
)

// MintListener is invoked synchronously after every successful mint.
// Listeners must return quickly and must not call back into the Registry.
type MintListener func(cell.ID)

// ResetListener is invoked synchronously after every Reset.
type ResetListener func()

// Registry mints process-unique cell identifiers. The zero Minter defaults
// to Sequential. A mutex guards mint state so incidental cross-goroutine use
// by hosts is not a data race, though the intended execution model is a
// single thread of control.
type Registry struct {
	mu      sync.Mutex
	minter  Minter
	onMint  []MintListener
	onReset []ResetListener
}

// Option customises a Registry.
type Option func(*Registry)

// WithMinter sets the minting policy.
func WithMinter(m Minter) Option {
	return func(r *Registry) { r.minter = m }
}

// New creates a Registry with the supplied options.
func New(options ...Option) *Registry {
	ret := &Registry{}
	for _, option := range options {
		option(ret)
	}
	if ret.minter == nil {
		ret.minter = Sequential()
	}
	return ret
}

// Create mints a fresh identifier, distinct from every identifier minted
// since the last Reset. It never fails; the only side effect is advancing
// mint state by one.
func (r *Registry) Create() cell.ID {
	r.mu.Lock()
	id := r.minter.Next()
	listeners := r.onMint
	r.mu.Unlock()

	for _, fn := range listeners {
		fn(id)
	}
	return id
}

// Reset restores the fresh-process mint sequence so that subsequent Create
// calls reproduce the identifiers of a never-used Registry. Identifiers
// minted before a Reset may collide in value with identifiers minted after
// it; callers must not compare identifiers across a reset boundary.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.minter.Reset()
	listeners := r.onReset
	r.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// OnMint attaches callbacks invoked after every mint.
func (r *Registry) OnMint(fn ...MintListener) {
	if len(fn) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onMint = append(r.onMint, fn...)
}

// OnReset attaches callbacks invoked after every reset.
func (r *Registry) OnReset(fn ...ResetListener) {
	if len(fn) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onReset = append(r.onReset, fn...)
}
