package pure

// Get returns m[k], or nil when k is absent.
// The nil result lets key extractors tell "missing" apart from a zero value.
func Get[K comparable, V any](m map[K]V, k K) any {
	if v, ok := m[k]; ok {
		return v
	}
	return nil
}

// GetOr returns m[k], or fallback when k is absent.
func GetOr[K comparable, V any](m map[K]V, k K, fallback V) V {
	if v, ok := m[k]; ok {
		return v
	}
	return fallback
}
