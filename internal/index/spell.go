package index

// Suggest proposes the closest indexed token to term by Levenshtein distance,
// for "did you mean" on zero-hit searches. Returns ok=false when no token is
// within maxDistance. Ties prefer the token backed by more reviews.
func (b *Builder) Suggest(term string, maxDistance int) (string, bool) {
	if term == "" || maxDistance <= 0 {
		return "", false
	}
	best := ""
	bestDist := maxDistance + 1
	var bestReviews uint64
	for token, bm := range b.search {
		d := levenshteinDistance(term, token)
		if d == 0 || d > maxDistance {
			continue
		}
		if d < bestDist || (d == bestDist && bm.GetCardinality() > bestReviews) {
			best = token
			bestDist = d
			bestReviews = bm.GetCardinality()
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

// levenshteinDistance is the minimum number of single-character edits
// (insertions, deletions, or substitutions) to turn a into b.
func levenshteinDistance(a, b string) int {
	if a == b {
		return 0
	}
	runesA := []rune(a)
	runesB := []rune(b)
	if len(runesA) == 0 {
		return len(runesB)
	}
	if len(runesB) == 0 {
		return len(runesA)
	}

	// Two rolling rows are enough.
	prev := make([]int, len(runesB)+1)
	curr := make([]int, len(runesB)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(runesA); i++ {
		curr[0] = i
		for j := 1; j <= len(runesB); j++ {
			cost := 0
			if runesA[i-1] != runesB[j-1] {
				cost = 1
			}
			curr[j] = minOf(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(runesB)]
}

func minOf(a, b, c int) int {
	if a <= b && a <= c {
		return a
	}
	if b <= c {
		return b
	}
	return c
}
