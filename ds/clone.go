package ds

// Clone copies ts into a new slice with room for extra more elements, so the
// result can be appended to without touching ts.
func Clone[T any](ts []T, extra int) []T {
	tsCopy := make([]T, len(ts), len(ts)+extra)
	copy(tsCopy, ts)
	return tsCopy
}
