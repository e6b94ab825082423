/*
Package pcy holds the data model shared by the PCY miner packages:
items, itemsets and baskets, along with the redis connection plumbing
used by the redis-backed bucket counters and bitmaps.
*/
package pcy

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Item is an item identifier as it appears in a dataset line.
type Item int64

// Itemset is a sorted set of distinct items. Two itemsets holding the
// same members are equal element by element and share the same Key.
type Itemset []Item

// Basket is the set of distinct items of one transaction.
type Basket = Itemset

// NewItemset returns the sorted, deduplicated itemset of _items_.
// The input slice is not modified.
func NewItemset(items ...Item) Itemset {
	set := make(Itemset, len(items))
	copy(set, items)
	slices.Sort(set)
	return slices.Compact(set)
}

// Len returns the number of items in the itemset
func (set Itemset) Len() int {
	return len(set)
}

// Key returns the canonical string form of the itemset, e.g. "1,2,3".
// It is used to key candidate count maps.
func (set Itemset) Key() string {
	var b strings.Builder
	for i, item := range set {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(int64(item), 10))
	}
	return b.String()
}

// String renders the itemset as a tuple, e.g. "(1, 2, 3)".
func (set Itemset) String() string {
	return "(" + strings.ReplaceAll(set.Key(), ",", ", ") + ")"
}

// SubsetOf reports whether every item of _set_ is in _other_.
// Both itemsets must be sorted.
func (set Itemset) SubsetOf(other Itemset) bool {
	if len(set) > len(other) {
		return false
	}
	j := 0
	for _, item := range set {
		for j < len(other) && other[j] < item {
			j++
		}
		if j == len(other) || other[j] != item {
			return false
		}
		j++
	}
	return true
}

// ProperSubsetOf reports whether _set_ is a subset of _other_ and
// _other_ holds at least one more item.
func (set Itemset) ProperSubsetOf(other Itemset) bool {
	return len(set) < len(other) && set.SubsetOf(other)
}

// Compare orders itemsets lexicographically, shorter prefixes first.
func Compare(a, b Itemset) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return len(a) - len(b)
}
