/*
Package count implements exact support counting of candidate itemsets
against the baskets of a dataset, and the threshold filter that keeps the
frequent ones.
*/
package count

import (
	"fmt"

	"github.com/kwertop/pcy"
	"golang.org/x/exp/slices"
)

// SupportSeed is the value every candidate count starts from before the
// baskets are scanned. A reported support is the number of containing
// baskets plus SupportSeed.
const SupportSeed = 1

// Containment selects which baskets count toward a candidate's support
type Containment int

const (
	// ProperSubset counts baskets holding every item of the candidate and
	// at least one more.
	ProperSubset Containment = iota
	// Subset also counts baskets equal to the candidate.
	Subset
)

func (c Containment) String() string {
	switch c {
	case ProperSubset:
		return "proper"
	case Subset:
		return "subset"
	default:
		return "unknown"
	}
}

// ParseContainment returns the containment named _name_
func ParseContainment(name string) (Containment, error) {
	switch name {
	case "proper":
		return ProperSubset, nil
	case "subset":
		return Subset, nil
	}
	return 0, fmt.Errorf("pcy: unknown containment %q", name)
}

// Contains reports whether _basket_ counts toward _candidate_
func (c Containment) Contains(candidate pcy.Itemset, basket pcy.Basket) bool {
	if c == Subset {
		return candidate.SubsetOf(basket)
	}
	return candidate.ProperSubsetOf(basket)
}

// Candidate is an itemset with its support count
type Candidate struct {
	Items   pcy.Itemset
	Support uint64
}

// CandidateCounts maps Itemset.Key() to the counted candidate
type CandidateCounts map[string]Candidate

// Counter counts the support of candidate itemsets
type Counter interface {
	// Count returns the support of every distinct candidate in _candidates_
	Count(candidates []pcy.Itemset) CandidateCounts
}

// seed returns a fresh CandidateCounts holding every distinct candidate
// at SupportSeed
func seed(candidates []pcy.Itemset) CandidateCounts {
	counts := make(CandidateCounts, len(candidates))
	for _, candidate := range candidates {
		counts[candidate.Key()] = Candidate{candidate, SupportSeed}
	}
	return counts
}

// Sorted returns the candidates of _counts_ in lexicographic itemset order
func Sorted(counts CandidateCounts) []Candidate {
	sorted := make([]Candidate, 0, len(counts))
	for _, candidate := range counts {
		sorted = append(sorted, candidate)
	}
	sortCandidates(sorted)
	return sorted
}

// Itemsets returns the itemsets of _candidates_ in the same order
func Itemsets(candidates []Candidate) []pcy.Itemset {
	sets := make([]pcy.Itemset, len(candidates))
	for i, candidate := range candidates {
		sets[i] = candidate.Items
	}
	return sets
}

func sortCandidates(candidates []Candidate) {
	slices.SortFunc(candidates, func(a, b Candidate) int {
		return pcy.Compare(a.Items, b.Items)
	})
}
