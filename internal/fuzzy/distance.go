package fuzzy

// Distance returns the Levenshtein distance between a and b: the minimum
// number of single-rune insertions, deletions, and substitutions that turn
// one into the other. Comparison is case-sensitive.
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	// Keep the shorter string on the row axis.
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// MinDistance returns the smallest distance between target and any of the
// terms. The boolean is false when terms is empty.
func MinDistance(target string, terms []string) (int, bool) {
	if len(terms) == 0 {
		return 0, false
	}
	best := -1
	for _, term := range terms {
		d := Distance(term, target)
		if best < 0 || d < best {
			best = d
			if best == 0 {
				break
			}
		}
	}
	return best, true
}
