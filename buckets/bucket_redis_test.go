package buckets

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/kwertop/pcy"
	"github.com/redis/go-redis/v9"
)

func TestBucketRedisIncrement(t *testing.T) {
	client := initMockRedis(t)
	bucket := NewBucketRedis(client)
	bucket.Increment([]uint{3, 2, 3})
	bucket.Increment([]uint{999})
	counts, err := bucket.Counts()
	if err != nil {
		t.Fatalf("counts should be fetched, got %v", err)
	}
	if len(counts) != NumBuckets {
		t.Fatalf("counts should have %d entries, got %d", NumBuckets, len(counts))
	}
	if counts[3] != 2 || counts[2] != 1 || counts[999] != 1 {
		t.Errorf("unexpected counts %d, %d, %d", counts[3], counts[2], counts[999])
	}
	if counts[0] != 0 {
		t.Errorf("count at 0 should be 0, got %d", counts[0])
	}
}

func TestBucketRedisMatchesMem(t *testing.T) {
	client := initMockRedis(t)
	redisBucket := NewBucketRedis(client)
	memBucket := NewBucketMem()
	baskets := []pcy.Basket{
		pcy.NewItemset(1, 2, 3),
		pcy.NewItemset(1, 2),
		pcy.NewItemset(7),
		pcy.NewItemset(1000, 2000, 3000, 4000),
	}
	for _, basket := range baskets {
		redisBucket.Increment(PairIndexes(basket))
		memBucket.Increment(PairIndexes(basket))
	}
	a, _ := redisBucket.Counts()
	b, _ := memBucket.Counts()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("bucket %d differs, redis %d, mem %d", i, a[i], b[i])
		}
	}
}

func TestBucketRedisOutOfRange(t *testing.T) {
	client := initMockRedis(t)
	bucket := NewBucketRedisWithKey(client, "key", 4)
	if err := bucket.Increment([]uint{4}); err == nil {
		t.Fatal("should error out as index 4 is out of range")
	}
}

func TestBucketRedisInvalidField(t *testing.T) {
	client := initMockRedis(t)
	bucket := NewBucketRedisWithKey(client, "key", 4)
	client.HSet(context.Background(), "key", "foo", "1")
	if _, err := bucket.Counts(); err == nil {
		t.Fatal("should error out as field foo isn't a bucket index")
	}
}

func TestBucketRedisDelete(t *testing.T) {
	client := initMockRedis(t)
	bucket := NewBucketRedis(client)
	bucket.Increment([]uint{1})
	if err := bucket.Delete(); err != nil {
		t.Fatalf("delete should succeed, got %v", err)
	}
	counts, _ := bucket.Counts()
	if counts[1] != 0 {
		t.Errorf("count at 1 should be 0 after delete, got %d", counts[1])
	}
}

func initMockRedis(t *testing.T) *redis.Client {
	mr := miniredis.RunT(t)
	connOptions, err := pcy.ParseRedisURI("redis://" + mr.Addr())
	if err != nil {
		t.Fatalf("redis uri should parse, got %v", err)
	}
	client := pcy.NewRedisClient(*connOptions)
	t.Cleanup(func() { client.Close() })
	return client
}
