package textutil

// KeywordSet is a deduplicated set of tokens that remembers first-seen order
// so iteration and rendering are deterministic.
type KeywordSet struct {
	order []string
	index map[string]struct{}
}

// NewKeywordSet builds a set from the given tokens, keeping the first
// occurrence of each.
func NewKeywordSet(tokens ...string) KeywordSet {
	set := KeywordSet{index: make(map[string]struct{}, len(tokens))}
	for _, token := range tokens {
		set.add(token)
	}
	return set
}

func (s *KeywordSet) add(token string) {
	if token == "" {
		return
	}
	if _, ok := s.index[token]; ok {
		return
	}
	s.index[token] = struct{}{}
	s.order = append(s.order, token)
}

// Contains reports whether token is a member of the set.
func (s KeywordSet) Contains(token string) bool {
	_, ok := s.index[token]
	return ok
}

// Len returns the number of distinct tokens.
func (s KeywordSet) Len() int {
	return len(s.order)
}

// Tokens returns a copy of the members in first-seen order.
func (s KeywordSet) Tokens() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// BuildKeywords derives the searchable keyword set of a book from its title
// and author.
func BuildKeywords(title, author string) KeywordSet {
	tokens := Normalize(title)
	tokens = append(tokens, Normalize(author)...)
	return NewKeywordSet(tokens...)
}

// BuildNameTokens derives the ordered name tokens of a borrower. Duplicates
// are kept.
func BuildNameTokens(name string) []string {
	return Normalize(name)
}
