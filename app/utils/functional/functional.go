package functional

func Map[T, V any](slice []T, f func(T) V) []V {
	result := make([]V, len(slice))
	for i, v := range slice {
		result[i] = f(v)
	}

	return result
}

func ConvertToMap[T any, V comparable](slice []T, f func(T) V) map[V]T {
	result := make(map[V]T, len(slice))
	for _, v := range slice {
		key := f(v)
		result[key] = v
	}
	return result
}
