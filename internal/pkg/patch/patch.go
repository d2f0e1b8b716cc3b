// Package patch helps with partial updates where an absent JSON field is a nil pointer.
package patch

// Coalesce returns *ptr when the field was sent, fallback otherwise.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// AnySet reports whether at least one field was sent.
func AnySet[T any](ptrs ...*T) bool {
	for _, p := range ptrs {
		if p != nil {
			return true
		}
	}
	return false
}
