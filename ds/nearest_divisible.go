package ds

// NearestDivisibleByM returns the smallest value >= n that is a multiple of
// m. A non-positive m leaves n unchanged.
func NearestDivisibleByM(n int, m int) int {
	if m <= 0 {
		return n
	}
	remainder := n % m
	if remainder == 0 {
		return n
	}
	if remainder < 0 {
		return n - remainder
	}
	return n + m - remainder
}
