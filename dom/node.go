// Package dom locates the cell that owns a rendered UI element. The walk is
// expressed against a minimal capability interface so it can run without a
// real rendering environment.
package dom

import "github.com/manzt/marimo/cell"

// Node is the capability the owning-anchor walk requires from a UI tree:
// an optional element identifier and a parent link. Implementations adapt a
// concrete tree (see WrapHTML); Parent must return nil at the root.
type Node interface {
	// AnchorID returns the element identifier attribute, reporting false
	// when the element carries none.
	AnchorID() (string, bool)

	// Parent returns the enclosing node, or nil when there is none.
	Parent() Node
}

// FindOwningAnchor walks upward from n (inclusive) and returns the identifier
// of the nearest ancestor whose element identifier conforms to the DOM anchor
// format. It reports false when no such ancestor exists or n is nil.
func FindOwningAnchor(n Node) (cell.DomAnchorID, bool) {
	for node := n; node != nil; node = node.Parent() {
		if id, ok := node.AnchorID(); ok && cell.IsAnchor(id) {
			return cell.DomAnchorID(id), true
		}
	}
	return "", false
}

// CellOf returns the ID of the cell owning n, composing FindOwningAnchor with
// anchor parsing.
func CellOf(n Node) (cell.ID, bool) {
	anchor, ok := FindOwningAnchor(n)
	if !ok {
		return "", false
	}
	return cell.ParseAnchor(anchor), true
}
