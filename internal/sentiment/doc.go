// Package sentiment classifies free-text reviews as Positive, Negative, or
// Neutral.
//
// Classification is split in two. A Scorer produces a compound polarity in
// [-1, 1]; Classify turns that score into a Label using a zero-centered
// threshold. Callers can plug in any Scorer; tests typically use ScorerFunc
// stubs.
//
// Vader is the built-in Scorer: the VADER lexicon and rules from
// github.com/jonreiter/govader, with optional per-word overrides loaded from
// a TOML file. A Vader is safe for concurrent use.
package sentiment
