package timeline

import (
	"github.com/penwyp/go-chronology/internal/util"
)

// KeyFunc maps an item to one label of a taxonomy
type KeyFunc[T any] func(T) string

// Bucketize groups items into slots and clusters.
//
// The returned slots are the span of slotLabels running from the first to
// the last slot holding a bucketed item; slots inside that span are kept even
// when empty. Each slot lists every cluster label in clusterLabels order.
// Items keep their input order within a cluster. An item whose slot or
// cluster key is not in the corresponding label list is left out and does not
// count towards trimming. A label repeated in either list is only used at its
// first position.
func Bucketize[T any](items []T, slotLabels []string, slotKey KeyFunc[T], clusterLabels []string, clusterKey KeyFunc[T]) []Slot[T] {
	return assemble(items, slotLabels, slotKey, clusterLabels, clusterKey).Slots
}

// Partition bucketizes items with tax and also returns, in input order, the
// items Bucketize drops because a key fell outside the taxonomy.
func Partition[T any](items []T, tax Taxonomy[T]) Result[T] {
	return assemble(items, tax.Slots, tax.SlotKey, tax.Clusters, tax.ClusterKey)
}

type keyedItem[T any] struct {
	item    T
	slot    string
	cluster string
}

func (k keyedItem[T]) slotKey() string    { return k.slot }
func (k keyedItem[T]) clusterKey() string { return k.cluster }

// assemble keys every item once, sets aside the items outside the taxonomy,
// then trims and fills the slots from the remaining ones.
func assemble[T any](items []T, slotLabels []string, slotKey KeyFunc[T], clusterLabels []string, clusterKey KeyFunc[T]) Result[T] {
	slotLabels = dedupe(slotLabels)
	clusterLabels = dedupe(clusterLabels)
	slotSet := toSet(slotLabels)
	clusterSet := toSet(clusterLabels)

	keyed := make([]keyedItem[T], 0, len(items))
	var unbucketed []T
	for _, item := range items {
		k := keyedItem[T]{item: item, slot: slotKey(item)}
		if _, ok := slotSet[k.slot]; !ok {
			unbucketed = append(unbucketed, item)
			continue
		}
		k.cluster = clusterKey(item)
		if _, ok := clusterSet[k.cluster]; !ok {
			unbucketed = append(unbucketed, item)
			continue
		}
		keyed = append(keyed, k)
	}

	bySlot := util.GroupBy(keyed, keyedItem[T].slotKey)
	retained := trimLabels(slotLabels, bySlot)

	slots := make([]Slot[T], 0, len(retained))
	for _, label := range retained {
		byCluster := util.GroupBy(bySlot[label], keyedItem[T].clusterKey)

		clusters := make([]Cluster[T], len(clusterLabels))
		for i, clusterLabel := range clusterLabels {
			clusters[i] = Cluster[T]{Label: clusterLabel, Items: unwrap(byCluster[clusterLabel])}
		}
		slots = append(slots, Slot[T]{Label: label, Clusters: clusters})
	}

	return Result[T]{Slots: slots, Unbucketed: unbucketed}
}

func unwrap[T any](keyed []keyedItem[T]) []T {
	if keyed == nil {
		return nil
	}
	items := make([]T, len(keyed))
	for i, k := range keyed {
		items[i] = k.item
	}
	return items
}

func toSet(labels []string) map[string]struct{} {
	set := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		set[label] = struct{}{}
	}
	return set
}

// dedupe drops repeated labels, keeping the first occurrence. The input is
// returned untouched when it holds no duplicate.
func dedupe(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	for i, label := range labels {
		if _, dup := seen[label]; dup {
			out := append([]string(nil), labels[:i]...)
			for _, rest := range labels[i+1:] {
				if _, dup := seen[rest]; !dup {
					seen[rest] = struct{}{}
					out = append(out, rest)
				}
			}
			return out
		}
		seen[label] = struct{}{}
	}
	return labels
}
