package bitmap

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// BitmapMem is an implementation of Bitmap.
// _size_ is the number of bits in the bitmap
// _set_ is the bitset implementation adopted from https://github.com/bits-and-blooms/bitset
type BitmapMem struct {
	set  *bitset.BitSet
	size uint
}

// NewBitmapMem creates a new BitmapMem of size _size_ with every bit 0
func NewBitmapMem(size uint) *BitmapMem {
	return &BitmapMem{bitset.New(size), size}
}

// Size returns the size of the bitmap
func (b *BitmapMem) Size() uint {
	return b.size
}

// Has checks if the bit at index _index_ is set
func (b *BitmapMem) Has(index uint) (bool, error) {
	if index >= b.size {
		return false, fmt.Errorf("pcy: bit index %d out of range [0, %d)", index, b.size)
	}
	return b.set.Test(index), nil
}

// Insert sets the bit at index specified by _index_
func (b *BitmapMem) Insert(index uint) (bool, error) {
	if index >= b.size {
		return false, fmt.Errorf("pcy: bit index %d out of range [0, %d)", index, b.size)
	}
	b.set.Set(index)
	return true, nil
}

// InsertMulti sets the bits at the indices specified by _indexes_
func (b *BitmapMem) InsertMulti(indexes []uint) (bool, error) {
	for _, index := range indexes {
		if _, err := b.Insert(index); err != nil {
			return false, err
		}
	}
	return true, nil
}

// BitCount returns the total number of set bits in the bitmap
func (b *BitmapMem) BitCount() (uint, error) {
	return b.set.Count(), nil
}

// Export returns the size of the bitmap and the JSON encoded bitset
func (b *BitmapMem) Export() (uint, []byte, error) {
	data, err := b.set.MarshalJSON()
	if err != nil {
		return 0, nil, err
	}
	return b.size, data, nil
}
