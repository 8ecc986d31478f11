package utils

// Returns the value associated to the key in the given map if it exists, or the defaultValue otherwise
func GetOrDefault[K comparable, V any](m map[K]V, key K, defaultValue V) V {
	if val, ok := m[key]; ok {
		return val
	}

	return defaultValue
}
