// Package textutil turns free text into the normalized tokens the catalog
// indexes and matches against.
//
// Normalization applies NFKC, lowercases with English casing rules, and
// splits on anything that is not a letter, digit, or an apostrophe inside a
// word. Normalize additionally drops English stopwords (the Snowball list);
// Words keeps them for callers that need negations like "not".
//
// Keyword sets are built once when a record is created and never change.
package textutil
