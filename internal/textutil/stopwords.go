package textutil

import "github.com/kljensen/snowball/english"

// IsStopword reports whether token is in the English stopword set. The token
// is expected to be lowercased already.
func IsStopword(token string) bool {
	return english.IsStopWord(token)
}
