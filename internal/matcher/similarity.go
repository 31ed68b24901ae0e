package matcher

// Similarity computes a bounded similarity between two names. Both inputs
// are normalized first; identical canonical forms score 1.0, otherwise the
// score is 1 - editDistance/len(longer). Symmetric in its arguments.
func Similarity(a, b string) float64 {
	s1 := []rune(Normalize(a))
	s2 := []rune(Normalize(b))

	if string(s1) == string(s2) {
		return 1
	}

	longer, shorter := s1, s2
	if len(shorter) > len(longer) {
		longer, shorter = shorter, longer
	}
	if len(longer) == 0 {
		return 0
	}

	distance := levenshtein(shorter, longer)
	return float64(len(longer)-distance) / float64(len(longer))
}

// levenshtein computes the unit-cost edit distance between the two rune
// slices using a single rolling row sized by the shorter input. It runs
// inside the matcher's nested loop, so the O(min(m,n)) space matters.
func levenshtein(shorter, longer []rune) int {
	row := make([]int, len(shorter)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(longer); i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= len(shorter); j++ {
			cur := row[j]
			cost := 1
			if longer[i-1] == shorter[j-1] {
				cost = 0
			}
			row[j] = min(row[j]+1, row[j-1]+1, prev+cost)
			prev = cur
		}
	}

	return row[len(shorter)]
}
