package apriori

import (
	"fmt"

	"github.com/kwertop/pcy"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// JoinPolicy selects how level k candidates are built from level k-1
type JoinPolicy int

const (
	// JoinFlattened takes every k-combination of the items appearing in
	// any level k-1 frequent set. It generates a superset of the Apriori
	// candidates; exact counting removes the extra ones.
	JoinFlattened JoinPolicy = iota
	// JoinApriori merges level k-1 sets sharing their first k-2 items and
	// keeps a candidate only if all of its (k-1)-subsets are frequent.
	// It is not equivalent to JoinFlattened: a pair the bucket bitmap
	// pruned never reaches level 2, so supersets of it are dropped here
	// even when their exact support meets the threshold.
	JoinApriori
)

func (p JoinPolicy) String() string {
	switch p {
	case JoinFlattened:
		return "flattened"
	case JoinApriori:
		return "apriori"
	default:
		return "unknown"
	}
}

// ParseJoinPolicy returns the policy named _name_
func ParseJoinPolicy(name string) (JoinPolicy, error) {
	switch name {
	case "flattened":
		return JoinFlattened, nil
	case "apriori":
		return JoinApriori, nil
	}
	return 0, fmt.Errorf("pcy: unknown join policy %q", name)
}

// Generate returns the level _k_ candidates built from the level k-1
// frequent sets _prev_ under policy _p_. For k == 2 both policies return
// Pairs of the frequent items.
func (p JoinPolicy) Generate(prev []pcy.Itemset, k int) []pcy.Itemset {
	if k == 2 {
		return Pairs(Universe(prev))
	}
	if p == JoinApriori {
		return Join(prev, k)
	}
	return Flattened(prev, k)
}

// Pairs returns every unordered pair of _items_, each pair once.
func Pairs(items []pcy.Item) []pcy.Itemset {
	return combinations(pcy.NewItemset(items...), 2)
}

// Universe returns the sorted distinct items appearing in _sets_
func Universe(sets []pcy.Itemset) []pcy.Item {
	seen := make(map[pcy.Item]struct{})
	for _, set := range sets {
		for _, item := range set {
			seen[item] = struct{}{}
		}
	}
	items := maps.Keys(seen)
	slices.Sort(items)
	return items
}

// Flattened returns every k-combination of the Universe of _prev_.
func Flattened(prev []pcy.Itemset, k int) []pcy.Itemset {
	return combinations(Universe(prev), k)
}

// Join returns the Apriori candidates of size _k_: unions of two sets of
// _prev_ differing only in their last item, kept when every (k-1)-subset
// is in _prev_. Every set of _prev_ must have k-1 items.
func Join(prev []pcy.Itemset, k int) []pcy.Itemset {
	sorted := make([]pcy.Itemset, 0, len(prev))
	known := make(map[string]struct{}, len(prev))
	for _, set := range prev {
		if set.Len() != k-1 {
			continue
		}
		if _, ok := known[set.Key()]; ok {
			continue
		}
		known[set.Key()] = struct{}{}
		sorted = append(sorted, set)
	}
	sortItemsets(sorted)

	var candidates []pcy.Itemset
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			a, b := sorted[i], sorted[j]
			if !slices.Equal(a[:k-2], b[:k-2]) {
				// sorted order groups shared prefixes together
				break
			}
			candidate := make(pcy.Itemset, k)
			copy(candidate, a)
			candidate[k-1] = b[k-2]
			if allSubsetsKnown(candidate, known) {
				candidates = append(candidates, candidate)
			}
		}
	}
	return candidates
}

func allSubsetsKnown(candidate pcy.Itemset, known map[string]struct{}) bool {
	subset := make(pcy.Itemset, 0, candidate.Len()-1)
	for skip := range candidate {
		subset = subset[:0]
		subset = append(subset, candidate[:skip]...)
		subset = append(subset, candidate[skip+1:]...)
		if _, ok := known[subset.Key()]; !ok {
			return false
		}
	}
	return true
}

// combinations returns the k-combinations of the sorted distinct
// _items_ in lexicographic order.
func combinations(items []pcy.Item, k int) []pcy.Itemset {
	n := len(items)
	if k <= 0 || k > n {
		return nil
	}
	var result []pcy.Itemset
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		set := make(pcy.Itemset, k)
		for i, j := range idx {
			set[i] = items[j]
		}
		result = append(result, set)

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return result
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

func sortItemsets(sets []pcy.Itemset) {
	slices.SortFunc(sets, pcy.Compare)
}
