package registry_test

import (
	"testing"

	"github.com/manzt/marimo/cell"
	"github.com/manzt/marimo/registry"
	"github.com/stretchr/testify/assert"
)

func TestCreateSequence(t *testing.T) {
	r := registry.New()
	assert.Equal(t, cell.ID("0"), r.Create())
	assert.Equal(t, cell.ID("1"), r.Create())
	assert.Equal(t, cell.ID("2"), r.Create())
}

func TestCreateDistinct(t *testing.T) {
	r := registry.New()
	r.Reset()
	seen := map[cell.ID]bool{}
	for i := 0; i < 100; i++ {
		id := r.Create()
		assert.False(t, seen[id], "duplicate id %v", id)
		seen[id] = true
	}
}

func TestResetReproducesSequence(t *testing.T) {
	r := registry.New()
	var first []cell.ID
	for i := 0; i < 5; i++ {
		first = append(first, r.Create())
	}

	r.Reset()
	var second []cell.ID
	for i := 0; i < 5; i++ {
		second = append(second, r.Create())
	}
	assert.Equal(t, first, second)

	fresh := registry.New()
	var third []cell.ID
	for i := 0; i < 5; i++ {
		third = append(third, fresh.Create())
	}
	assert.Equal(t, first, third)
}

func TestAnchorRoundTripOnMintedIDs(t *testing.T) {
	r := registry.New()
	for i := 0; i < 10; i++ {
		id := r.Create()
		assert.Equal(t, id, cell.ParseAnchor(cell.Anchor(id)))
		assert.True(t, cell.IsAnchor(string(cell.Anchor(id))))
	}
}

func TestRandomMinter(t *testing.T) {
	r := registry.New(registry.WithMinter(registry.Random()))
	seen := map[cell.ID]bool{}
	for i := 0; i < 50; i++ {
		id := r.Create()
		assert.False(t, seen[id])
		seen[id] = true
	}
	// Reset is a no-op for the random policy; ids stay unique across it.
	r.Reset()
	id := r.Create()
	assert.False(t, seen[id])
}

func TestListeners(t *testing.T) {
	r := registry.New()
	var minted []cell.ID
	resets := 0
	r.OnMint(func(id cell.ID) { minted = append(minted, id) })
	r.OnReset(func() { resets++ })

	r.Create()
	r.Create()
	r.Reset()
	r.Create()

	assert.Equal(t, []cell.ID{"0", "1", "0"}, minted)
	assert.Equal(t, 1, resets)
}
