package count

import "github.com/kwertop/pcy"

// ScanCounter counts support by testing every candidate against every
// basket, O(baskets x candidates) per call.
type ScanCounter struct {
	Baskets     []pcy.Basket
	Containment Containment
}

// NewScanCounter creates a ScanCounter over _baskets_
func NewScanCounter(baskets []pcy.Basket, containment Containment) *ScanCounter {
	return &ScanCounter{baskets, containment}
}

// Count returns the support of every distinct candidate
func (c *ScanCounter) Count(candidates []pcy.Itemset) CandidateCounts {
	counts := seed(candidates)
	for _, basket := range c.Baskets {
		for key, candidate := range counts {
			if c.Containment.Contains(candidate.Items, basket) {
				candidate.Support++
				counts[key] = candidate
			}
		}
	}
	return counts
}
