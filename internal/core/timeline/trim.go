package timeline

// inhabitedRange returns the first and last positions of labels that have at
// least one item in groups. ok is false when no position is inhabited.
func inhabitedRange[T any](labels []string, groups map[string][]T) (first, last int, ok bool) {
	first = -1
	for i, label := range labels {
		if len(groups[label]) > 0 {
			first = i
			break
		}
	}
	if first < 0 {
		return 0, 0, false
	}

	last = first
	for i := len(labels) - 1; i > first; i-- {
		if len(groups[labels[i]]) > 0 {
			last = i
			break
		}
	}
	return first, last, true
}

// trimLabels keeps labels between the first and last inhabited positions,
// inclusive. Empty positions inside that span are kept.
func trimLabels[T any](labels []string, groups map[string][]T) []string {
	first, last, ok := inhabitedRange(labels, groups)
	if !ok {
		return nil
	}
	return labels[first : last+1]
}
