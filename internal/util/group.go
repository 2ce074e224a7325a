package util

// GroupBy partitions items by the key keyFn derives from each of them.
// keyFn is called exactly once per item. Items keep their input order inside
// each group, and keys that no item produced have no entry in the map.
func GroupBy[T any, K comparable](items []T, keyFn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		key := keyFn(item)
		groups[key] = append(groups[key], item)
	}
	return groups
}
