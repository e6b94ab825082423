package count

import "github.com/kwertop/pcy"

// Frequent returns a new CandidateCounts holding the candidates of
// _counts_ whose support is at least _threshold_. _counts_ is not
// modified.
func Frequent(counts CandidateCounts, threshold uint64) CandidateCounts {
	frequent := make(CandidateCounts)
	for key, candidate := range counts {
		if candidate.Support >= threshold {
			frequent[key] = candidate
		}
	}
	return frequent
}

// FrequentItems returns, sorted by item, the single items of
// _itemCounts_ occurring at least _threshold_ times. Item counts come
// straight from the dataset pass and carry no SupportSeed.
func FrequentItems(itemCounts map[pcy.Item]uint64, threshold uint64) []Candidate {
	frequent := make([]Candidate, 0, len(itemCounts))
	for item, n := range itemCounts {
		if n >= threshold {
			frequent = append(frequent, Candidate{pcy.Itemset{item}, n})
		}
	}
	sortCandidates(frequent)
	return frequent
}
