package buckets

import "github.com/kwertop/pcy"

// NumBuckets is the number of buckets item pairs are hashed into
const NumBuckets = 1000

// Hash maps the pair (_a_, _b_) to a bucket in [0, NumBuckets).
// It is symmetric, Hash(a, b) == Hash(b, a). Distinct pairs are expected
// to collide.
func Hash(a, b pcy.Item) uint {
	h := int64(a^b) % NumBuckets
	if h < 0 {
		h += NumBuckets
	}
	return uint(h)
}

// PairIndexes returns the bucket of every unordered pair of distinct
// items in _basket_. Baskets with fewer than 2 items produce none.
func PairIndexes(basket pcy.Basket) []uint {
	if len(basket) < 2 {
		return nil
	}
	indexes := make([]uint, 0, len(basket)*(len(basket)-1)/2)
	for i := 0; i < len(basket)-1; i++ {
		for j := i + 1; j < len(basket); j++ {
			indexes = append(indexes, Hash(basket[i], basket[j]))
		}
	}
	return indexes
}
