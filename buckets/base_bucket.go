/*
Package buckets implements the PCY bucket table - a fixed number of
counters that item pairs are hashed into while the dataset is loaded.
Two backends are available, an in-memory one and one keeping the
counters in a redis hash.
*/
package buckets

import "fmt"

// Counter is the bucket table filled during the dataset pass
type Counter interface {
	// Size returns the number of buckets
	Size() uint

	// Increment adds one to the bucket at every index in _indexes_.
	// An index may appear more than once.
	Increment(indexes []uint) error

	// Counts returns the count of every bucket, indexed by bucket.
	// Buckets never incremented are reported as 0.
	Counts() ([]uint64, error)
}

type AbstractBucket struct {
	size uint
}

// Size returns the number of buckets in the table
func (bucket *AbstractBucket) Size() uint {
	return bucket.size
}

func (bucket *AbstractBucket) checkIndexes(indexes []uint) error {
	for _, index := range indexes {
		if index >= bucket.size {
			return fmt.Errorf("pcy: bucket index %d out of range [0, %d)", index, bucket.size)
		}
	}
	return nil
}
