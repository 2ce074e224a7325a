package timeline

// Cluster is a fine bucket inside a slot. Items is nil when nothing fell
// into the cluster.
type Cluster[T any] struct {
	Label string `json:"label"`
	Items []T    `json:"items"`
}

// IsEmpty reports whether the cluster holds no item
func (c Cluster[T]) IsEmpty() bool {
	return len(c.Items) == 0
}

// Slot is a coarse bucket of the timeline. It always carries every cluster
// label of its taxonomy, in taxonomy order.
type Slot[T any] struct {
	Label    string       `json:"label"`
	Clusters []Cluster[T] `json:"clusters"`
}

// Count returns the number of items across all clusters of the slot
func (s Slot[T]) Count() int {
	n := 0
	for _, c := range s.Clusters {
		n += len(c.Items)
	}
	return n
}

// IsEmpty reports whether no cluster of the slot holds an item
func (s Slot[T]) IsEmpty() bool {
	return s.Count() == 0
}

// Result is the outcome of Partition: the bucketed slots plus the items
// whose slot or cluster key is not part of the taxonomy.
type Result[T any] struct {
	Slots      []Slot[T] `json:"slots"`
	Unbucketed []T       `json:"unbucketed,omitempty"`
}

// Count returns the number of bucketed items
func (r Result[T]) Count() int {
	n := 0
	for _, s := range r.Slots {
		n += s.Count()
	}
	return n
}
