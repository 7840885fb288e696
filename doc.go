// Package marimo provides the identity core of a notebook application: it
// mints process-unique cell identifiers, derives the DOM anchor namespace
// used to address rendered cells, and keeps the registration bookkeeping
// (names, codes, order) for a notebook document.
//
// The library is designed to be embedded in host applications. End-users
// typically interact with it via the high-level Service façade exposed by
// the root package:
//
//	srv := marimo.New()
//	nb := srv.Notebook()
//	c := nb.Register(ctx, "imports", "import marimo as mo")
//	anchor := cell.Anchor(c.ID) // "cell-0"
//
// Rendering, execution and persistence of notebook content are out of
// scope; see the individual sub-packages for details.
package marimo
