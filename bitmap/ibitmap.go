/*
Package bitmap implements the PCY bitmap - one bit per bucket telling
whether the bucket count reached the support threshold - both in-memory
and redis.
For in-memory, https://github.com/bits-and-blooms/bitset is used while
for redis, bitmap operations of redis are used.
*/
package bitmap

import "errors"

// ErrSizeMismatch is returned when bucket counts and bitmap disagree on size
var ErrSizeMismatch = errors.New("pcy: bucket counts and bitmap size differ")

type Bitmap interface {
	// Size returns the number of bits in the bitmap
	Size() uint

	// Has returns true if the bit is set at index, else false
	Has(index uint) (bool, error)

	// Insert sets the bit at index to true
	Insert(index uint) (bool, error)

	// InsertMulti sets the bits at the indices passed in the indexes array
	InsertMulti(indexes []uint) (bool, error)

	// BitCount returns the total number of set bits in the bitmap
	BitCount() (uint, error)

	// Export returns the size of the bitmap and its bits as the JSON
	// encoding of a bits-and-blooms bitset
	Export() (uint, []byte, error)
}

// Build sets bit i of _dst_ iff counts[i] >= _threshold_. Bits of buckets
// below the threshold stay 0, so every index of _dst_ holds an explicit
// value. _dst_ must be freshly created and as long as _counts_.
func Build(dst Bitmap, counts []uint64, threshold uint64) error {
	if uint(len(counts)) != dst.Size() {
		return ErrSizeMismatch
	}
	var frequent []uint
	for index, count := range counts {
		if count >= threshold {
			frequent = append(frequent, uint(index))
		}
	}
	if len(frequent) == 0 {
		return nil
	}
	_, err := dst.InsertMulti(frequent)
	return err
}

// Bits returns every bit of _b_ as 0 or 1
func Bits(b Bitmap) ([]uint8, error) {
	bits := make([]uint8, b.Size())
	for i := range bits {
		ok, err := b.Has(uint(i))
		if err != nil {
			return nil, err
		}
		if ok {
			bits[i] = 1
		}
	}
	return bits, nil
}
