package agent

// similarity returns a normalized longest-common-subsequence ratio in
// [0, 1]: 2*LCS(a, b) / (len(a) + len(b)). Two empty strings count as
// identical. Operates on runes, so multi-byte names compare correctly.
func similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra)+len(rb) == 0 {
		return 1
	}
	return 2 * float64(lcsLength(ra, rb)) / float64(len(ra)+len(rb))
}

// lcsLength computes the longest-common-subsequence length with a
// two-row DP table. O(len(a)*len(b)) time, O(len(b)) space.
func lcsLength(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				cur[j] = prev[j-1] + 1
			case prev[j] >= cur[j-1]:
				cur[j] = prev[j]
			default:
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
