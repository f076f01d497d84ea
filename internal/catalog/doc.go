// Package catalog is the in-memory store of books and borrowers and the
// single source of truth for circulation rules.
//
// A Catalog owns both record maps plus their insertion order, which is the
// order every listing, search, and fuzzy resolution iterates in. Records are
// only ever added. Circulation changes exactly two things: a book's
// availability and the set of book ids a borrower holds. After every
// operation a book is unavailable if and only if exactly one borrower holds
// it.
//
// Each operation either applies fully or returns an error before touching
// state. Errors wrap the sentinels in errors.go and are meant to be tested
// with errors.Is; Kind gives a short classification for logs and JSON.
//
// All methods take the catalog's mutex, so one Catalog may be shared by
// goroutines. Reads return snapshots; callers never hold references into the
// store.
package catalog
