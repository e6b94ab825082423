package filters

import (
	"errors"
	"fmt"

	"github.com/kwertop/pcy"
	"github.com/kwertop/pcy/bitmap"
	"github.com/kwertop/pcy/buckets"
)

// ErrNotPair is returned when an itemset of size other than 2 is
// looked up or inserted.
var ErrNotPair = errors.New("pcy: pair filter only accepts itemsets of size 2")

// PairFilter answers whether a pair may be frequent: a pair whose bucket
// bit is 0 cannot reach the threshold. False positives come from bucket
// collisions; there are no false negatives.
type PairFilter struct {
	filter bitmap.Bitmap
}

var _ BaseFilter[pcy.Itemset] = (*PairFilter)(nil)

// NewPairFilter creates a PairFilter over _filter_, which must hold one
// bit per bucket.
func NewPairFilter(filter bitmap.Bitmap) (*PairFilter, error) {
	if filter.Size() != buckets.NumBuckets {
		return nil, fmt.Errorf("pcy: pair filter needs a bitmap of %d bits, got %d", buckets.NumBuckets, filter.Size())
	}
	return &PairFilter{filter}, nil
}

// Insert marks the bucket of _pair_ as frequent
func (f *PairFilter) Insert(pair pcy.Itemset) (bool, error) {
	if pair.Len() != 2 {
		return false, ErrNotPair
	}
	return f.filter.Insert(buckets.Hash(pair[0], pair[1]))
}

// Lookup returns true if the bucket of _pair_ is marked frequent
func (f *PairFilter) Lookup(pair pcy.Itemset) (bool, error) {
	if pair.Len() != 2 {
		return false, ErrNotPair
	}
	return f.filter.Has(buckets.Hash(pair[0], pair[1]))
}

// Prune returns the pairs of _pairs_ whose bucket is marked frequent, in
// their original order. _pairs_ is left untouched.
func (f *PairFilter) Prune(pairs []pcy.Itemset) ([]pcy.Itemset, error) {
	kept := make([]pcy.Itemset, 0, len(pairs))
	for _, pair := range pairs {
		ok, err := f.Lookup(pair)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, pair)
		}
	}
	return kept, nil
}
