package dfs

// Reverse reverses s in place and returns it.
// Time Complexity: O(n).
func Reverse[V any](s []V) []V {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}

	return s
}

// IndexOf returns the first index of val in s, or -1 if not found.
// Time Complexity: O(n).
func IndexOf[V comparable](s []V, val V) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}
