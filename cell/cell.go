package cell

import "strings"

// ID identifies one cell within a notebook document for the lifetime of a
// running session. Values are opaque: two IDs are equal iff they denote the
// same cell, and callers must not attach meaning to the textual encoding
// beyond uniqueness. New IDs are minted exclusively by registry.Registry.
type ID string

// DomAnchorID identifies the DOM element that visually hosts a cell. It is
// derived from an ID with Anchor and carries no state of its own.
type DomAnchorID string

// AnchorPrefix is the literal tag prepended to a cell ID to form its DOM
// anchor. External tooling inspecting rendered markup may rely on this exact
// prefix to recover cell identity.
const AnchorPrefix = "cell-"

func (i ID) String() string { return string(i) }

func (a DomAnchorID) String() string { return string(a) }

// Anchor derives the DOM anchor for the given cell ID. It is pure and total;
// the result always begins with AnchorPrefix and ends with the ID itself.
func Anchor(id ID) DomAnchorID {
	return DomAnchorID(AnchorPrefix + string(id))
}

// ParseAnchor recovers the cell ID embedded in a DOM anchor. The input must
// have been produced by Anchor (or conform to its format); the result for any
// other input is unspecified. Callers holding anchors of unknown provenance
// should use ParseAnchorOK instead.
func ParseAnchor(a DomAnchorID) ID {
	return ID(strings.TrimPrefix(string(a), AnchorPrefix))
}

// IsAnchor reports whether a raw element identifier conforms to the DOM
// anchor format.
func IsAnchor(s string) bool {
	return strings.HasPrefix(s, AnchorPrefix)
}

// ParseAnchorOK is the checked variant of ParseAnchor for identifiers read
// from untrusted markup. It reports false when s does not carry the anchor
// prefix.
func ParseAnchorOK(s string) (ID, bool) {
	if !IsAnchor(s) {
		return "", false
	}
	return ID(s[len(AnchorPrefix):]), true
}
