package stabby

// growSlice extends s to length n, reallocating with at least double the
// capacity when it does not fit. Slices already n long or longer are returned
// unchanged.
func growSlice[T any](s []T, n int) []T {
	if n <= len(s) {
		return s
	}
	if n <= cap(s) {
		return s[:n]
	}
	newCap := max(2*cap(s), n, defaultPoolCapacity)
	ns := make([]T, n, newCap)
	copy(ns, s)
	return ns
}
