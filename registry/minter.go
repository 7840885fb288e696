package registry

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/manzt/marimo/cell"
)

// Minter is the identifier minting policy behind a Registry. Implementations
// are not required to be safe for concurrent use; Registry serialises calls.
type Minter interface {
	// Next mints an identifier distinct from every identifier minted since
	// the last Reset.
	Next() cell.ID

	// Reset restores the fresh-process mint sequence, when the policy has
	// one.
	Reset()
}

type sequential struct {
	next uint64
}

// Sequential returns the default minting policy: zero-based decimal
// identifiers ("0", "1", "2", ...). The sequence is deterministic and
// restarts on Reset, which makes it the policy of choice for test fixtures.
func Sequential() Minter { return &sequential{} }

func (s *sequential) Next() cell.ID {
	id := cell.ID(strconv.FormatUint(s.next, 10))
	s.next++
	return id
}

func (s *sequential) Reset() { s.next = 0 }

type random struct{}

// Random returns a minting policy backed by UUIDs for hosts that need
// collision resistance across sessions. The sequence is neither ordered nor
// reproducible; Reset is a no-op.
func Random() Minter { return random{} }

func (random) Next() cell.ID { return cell.ID(uuid.New().String()) }

func (random) Reset() {}
