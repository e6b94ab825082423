package buckets

// BucketMem is an in-memory implementation of Counter.
// _counts_ holds one counter per bucket.
type BucketMem struct {
	counts []uint64
	*AbstractBucket
}

// NewBucketMem creates a BucketMem with NumBuckets buckets
func NewBucketMem() *BucketMem {
	return NewBucketMemWithSize(NumBuckets)
}

// NewBucketMemWithSize creates a BucketMem with _size_ buckets
func NewBucketMemWithSize(size uint) *BucketMem {
	return &BucketMem{make([]uint64, size), &AbstractBucket{size}}
}

// Increment adds one to the bucket at every index in _indexes_
func (bucket *BucketMem) Increment(indexes []uint) error {
	if err := bucket.checkIndexes(indexes); err != nil {
		return err
	}
	for _, index := range indexes {
		bucket.counts[index]++
	}
	return nil
}

// Counts returns a copy of the bucket counts
func (bucket *BucketMem) Counts() ([]uint64, error) {
	counts := make([]uint64, len(bucket.counts))
	copy(counts, bucket.counts)
	return counts, nil
}
