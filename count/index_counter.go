package count

import (
	"github.com/RoaringBitmap/roaring"
	"github.com/kwertop/pcy"
)

// IndexCounter counts support from an inverted index: for each item a
// roaring bitmap of the ordinals of the baskets holding it. The support
// of a candidate is the cardinality of the intersection of its items'
// bitmaps. Counts are identical to those of ScanCounter.
type IndexCounter struct {
	items       map[pcy.Item]*roaring.Bitmap
	sizes       map[int]*roaring.Bitmap
	all         *roaring.Bitmap
	containment Containment
}

// NewIndexCounter indexes _baskets_. Basket ordinals are stored as
// uint32, so at most 1<<32 baskets are supported.
func NewIndexCounter(baskets []pcy.Basket, containment Containment) *IndexCounter {
	c := &IndexCounter{
		items:       make(map[pcy.Item]*roaring.Bitmap),
		sizes:       make(map[int]*roaring.Bitmap),
		all:         roaring.New(),
		containment: containment,
	}
	for i, basket := range baskets {
		ordinal := uint32(i)
		c.all.Add(ordinal)
		for _, item := range basket {
			bm, ok := c.items[item]
			if !ok {
				bm = roaring.New()
				c.items[item] = bm
			}
			bm.Add(ordinal)
		}
		bm, ok := c.sizes[len(basket)]
		if !ok {
			bm = roaring.New()
			c.sizes[len(basket)] = bm
		}
		bm.Add(ordinal)
	}
	return c
}

// Count returns the support of every distinct candidate
func (c *IndexCounter) Count(candidates []pcy.Itemset) CandidateCounts {
	counts := seed(candidates)
	for key, candidate := range counts {
		candidate.Support += c.matches(candidate.Items)
		counts[key] = candidate
	}
	return counts
}

// matches returns the number of baskets counting toward _candidate_
func (c *IndexCounter) matches(candidate pcy.Itemset) uint64 {
	var holding *roaring.Bitmap
	if candidate.Len() == 0 {
		holding = c.all
	} else {
		bitmaps := make([]*roaring.Bitmap, 0, candidate.Len())
		for _, item := range candidate {
			bm, ok := c.items[item]
			if !ok {
				return 0
			}
			bitmaps = append(bitmaps, bm)
		}
		holding = roaring.FastAnd(bitmaps...)
	}
	n := holding.GetCardinality()
	if c.containment == ProperSubset {
		if equal, ok := c.sizes[candidate.Len()]; ok {
			n -= holding.AndCardinality(equal)
		}
	}
	return n
}
