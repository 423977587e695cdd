package patch

// Coalesce resolves one field of a partial update: the patched value when
// present, the current value otherwise.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr == nil {
		return fallback
	}
	return *ptr
}
