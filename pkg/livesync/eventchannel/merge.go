package eventchannel

// mergeUnique unions incoming into current without duplicates, preserving
// the order of current and the first-seen order of new elements. It returns
// the merged set and the elements that were not already present.
func mergeUnique[T comparable](current, incoming []T) (merged, added []T) {
	seen := make(map[T]struct{}, len(current))
	merged = make([]T, 0, len(current)+len(incoming))

	for _, v := range current {
		seen[v] = struct{}{}
		merged = append(merged, v)
	}

	for _, v := range incoming {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		merged = append(merged, v)
		added = append(added, v)
	}

	return merged, added
}
