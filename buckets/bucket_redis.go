package buckets

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kwertop/pcy"
	"github.com/redis/go-redis/v9"
)

// BucketRedis is an implementation of Counter keeping the bucket counts
// in a redis hash at _key_. Fields are bucket indexes, values the counts.
// Buckets never incremented have no field and count as 0.
type BucketRedis struct {
	key    string
	client *redis.Client
	*AbstractBucket
}

// NewBucketRedis creates a BucketRedis with NumBuckets buckets under a
// freshly generated key
func NewBucketRedis(client *redis.Client) *BucketRedis {
	return NewBucketRedisWithKey(client, pcy.GenerateKey("buckets"), NumBuckets)
}

// NewBucketRedisWithKey creates a BucketRedis with _size_ buckets at _key_.
// Existing counts at _key_ are kept.
func NewBucketRedisWithKey(client *redis.Client, key string, size uint) *BucketRedis {
	return &BucketRedis{key, client, &AbstractBucket{size}}
}

// Key returns the redis key of the hash holding the counts
func (bucket *BucketRedis) Key() string {
	return bucket.key
}

// Increment adds one to the bucket at every index in _indexes_.
// All increments of one call are sent in a single pipeline.
func (bucket *BucketRedis) Increment(indexes []uint) error {
	if len(indexes) == 0 {
		return nil
	}
	if err := bucket.checkIndexes(indexes); err != nil {
		return err
	}
	ctx := context.Background()
	pipe := bucket.client.Pipeline()
	for _, index := range indexes {
		pipe.HIncrBy(ctx, bucket.key, strconv.FormatUint(uint64(index), 10), 1)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("pcy: error while incrementing buckets at %s, error: %v", bucket.key, err)
	}
	return nil
}

// Counts reads the hash at _key_ and returns the count of every bucket
func (bucket *BucketRedis) Counts() ([]uint64, error) {
	fields, err := bucket.client.HGetAll(context.Background(), bucket.key).Result()
	if err != nil {
		return nil, fmt.Errorf("pcy: error while fetching buckets at %s, error: %v", bucket.key, err)
	}
	counts := make([]uint64, bucket.size)
	for field, value := range fields {
		index, err := strconv.ParseUint(field, 10, 64)
		if err != nil || index >= uint64(bucket.size) {
			return nil, fmt.Errorf("pcy: invalid bucket field %q at %s", field, bucket.key)
		}
		count, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("pcy: invalid count %q for bucket %s at %s", value, field, bucket.key)
		}
		counts[index] = count
	}
	return counts, nil
}

// Delete removes the hash at _key_ from redis
func (bucket *BucketRedis) Delete() error {
	return bucket.client.Del(context.Background(), bucket.key).Err()
}
