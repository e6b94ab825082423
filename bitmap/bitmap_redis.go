package bitmap

import (
	"context"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/kwertop/pcy"
	"github.com/redis/go-redis/v9"
)

// BitmapRedis is an implementation of Bitmap.
// size is the number of bits in the bitmap
// key is the redis key to the bitmap data structure in redis
// Bitmaps are implemented in Redis using string.
// All bit operations are done on the string stored at _key_.
// For more details, please refer https://redis.io/docs/data-types/bitmaps/
type BitmapRedis struct {
	size   uint
	key    string
	client *redis.Client
}

// NewBitmapRedis creates a new BitmapRedis of size _size_ under a freshly
// generated key. The string is zero filled so every bit reads as 0.
func NewBitmapRedis(client *redis.Client, size uint) (*BitmapRedis, error) {
	return NewBitmapRedisWithKey(client, pcy.GenerateKey("bitmap"), size)
}

// NewBitmapRedisWithKey creates a new BitmapRedis of size _size_ at _key_,
// overwriting any value stored there.
func NewBitmapRedisWithKey(client *redis.Client, key string, size uint) (*BitmapRedis, error) {
	bytes := make([]byte, (size+7)/8)
	err := client.Set(context.Background(), key, string(bytes), 0).Err()
	if err != nil {
		return nil, fmt.Errorf("pcy: error while initializing bitmap at %s, error: %v", key, err)
	}
	return &BitmapRedis{size, key, client}, nil
}

// Size returns the size of the bitmap saved in redis
func (b *BitmapRedis) Size() uint {
	return b.size
}

// Key gives the key at which the bitmap is saved in redis
func (b *BitmapRedis) Key() string {
	return b.key
}

// Has checks if the bit at index _index_ is set
func (b *BitmapRedis) Has(index uint) (bool, error) {
	if index >= b.size {
		return false, fmt.Errorf("pcy: bit index %d out of range [0, %d)", index, b.size)
	}
	val, err := b.client.GetBit(context.Background(), b.key, int64(index)).Result()
	if err != nil {
		return false, err
	}
	return val != 0, nil
}

// Insert sets the bit at index specified by _index_
func (b *BitmapRedis) Insert(index uint) (bool, error) {
	if index >= b.size {
		return false, fmt.Errorf("pcy: bit index %d out of range [0, %d)", index, b.size)
	}
	err := b.client.SetBit(context.Background(), b.key, int64(index), 1).Err()
	if err != nil {
		return false, err
	}
	return true, nil
}

// InsertMulti sets the bits at the indices specified by _indexes_
// using a single pipeline
func (b *BitmapRedis) InsertMulti(indexes []uint) (bool, error) {
	if len(indexes) == 0 {
		return false, fmt.Errorf("pcy: at least 1 index is required")
	}
	for _, index := range indexes {
		if index >= b.size {
			return false, fmt.Errorf("pcy: bit index %d out of range [0, %d)", index, b.size)
		}
	}
	ctx := context.Background()
	pipe := b.client.Pipeline()
	for _, index := range indexes {
		pipe.SetBit(ctx, b.key, int64(index), 1)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// BitCount returns the total number of set bits in the bitmap
func (b *BitmapRedis) BitCount() (uint, error) {
	bitRange := &redis.BitCount{Start: 0, End: -1}
	val, err := b.client.BitCount(context.Background(), b.key, bitRange).Result()
	if err != nil {
		return 0, err
	}
	return uint(val), nil
}

// Export reads the redis string at _key_ and returns the size of the
// bitmap and its bits encoded the same way as BitmapMem.Export. Redis
// stores bit 0 as the most significant bit of the first byte.
func (b *BitmapRedis) Export() (uint, []byte, error) {
	val, err := b.client.Get(context.Background(), b.key).Bytes()
	if err != nil {
		return 0, nil, err
	}
	set := bitset.New(b.size)
	for i := uint(0); i < b.size && i/8 < uint(len(val)); i++ {
		if val[i/8]&(0x80>>(i%8)) != 0 {
			set.Set(i)
		}
	}
	data, err := set.MarshalJSON()
	if err != nil {
		return 0, nil, err
	}
	return b.size, data, nil
}

// Delete removes the bitmap from redis
func (b *BitmapRedis) Delete() error {
	return b.client.Del(context.Background(), b.key).Err()
}
