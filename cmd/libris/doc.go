// Package main hosts the libris CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration, builds the catalog from the
// configured seed file, and either answers one query (books, borrowers,
// search, resolve, stats) or hands the catalog to the interactive desk shell.
// Catalog behaviour lives in internal packages; this package only wires and
// presents it.
package main
