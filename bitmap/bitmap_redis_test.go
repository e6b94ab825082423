package bitmap

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/kwertop/pcy"
	"github.com/redis/go-redis/v9"
)

func TestBitmapRedisHas(t *testing.T) {
	client := initMockRedis(t)
	bitmap, err := NewBitmapRedis(client, 8)
	if err != nil {
		t.Fatalf("bitmap should be created, got %v", err)
	}
	bitmap.Insert(1)
	bitmap.Insert(3)
	bitmap.Insert(7)
	if ok, _ := bitmap.Has(1); !ok {
		t.Fatalf("should be true at index 1, got %v", ok)
	}
	if ok, _ := bitmap.Has(4); ok {
		t.Fatalf("should be false at index 4, got %v", ok)
	}
	if _, err := bitmap.Has(8); err == nil {
		t.Fatal("should error out as index 8 is out of range")
	}
}

func TestBitmapRedisBitCount(t *testing.T) {
	client := initMockRedis(t)
	bitmap, _ := NewBitmapRedis(client, 1000)
	bitmap.InsertMulti([]uint{0, 17, 999})
	setBits, _ := bitmap.BitCount()
	if setBits != 3 {
		t.Fatalf("count of set bits should be 3, got %v", setBits)
	}
}

func TestBitmapRedisInsertMultiEmpty(t *testing.T) {
	client := initMockRedis(t)
	bitmap, _ := NewBitmapRedis(client, 10)
	if _, err := bitmap.InsertMulti(nil); err == nil {
		t.Fatal("should error out as no index is passed")
	}
}

func TestBuildRedisMatchesMem(t *testing.T) {
	client := initMockRedis(t)
	counts := make([]uint64, 1000)
	for i := range counts {
		counts[i] = uint64(i % 7)
	}
	redisBitmap, _ := NewBitmapRedis(client, 1000)
	memBitmap := NewBitmapMem(1000)
	if err := Build(redisBitmap, counts, 4); err != nil {
		t.Fatalf("build should succeed, got %v", err)
	}
	Build(memBitmap, counts, 4)
	a, err := Bits(redisBitmap)
	if err != nil {
		t.Fatalf("bits should be read, got %v", err)
	}
	b, _ := Bits(memBitmap)
	if len(a) != 1000 || len(b) != 1000 {
		t.Fatalf("both bitmaps should have 1000 bits, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("bit %d differs, redis %d, mem %d", i, a[i], b[i])
		}
	}
}

func TestNewBitmapRedisWithKey(t *testing.T) {
	client := initMockRedis(t)
	ctx := context.Background()
	client.Set(ctx, "key", "stale value", 0)
	bitmap, err := NewBitmapRedisWithKey(client, "key", 20)
	if err != nil {
		t.Fatalf("bitmap should be created, got %v", err)
	}
	if bitmap.Key() != "key" {
		t.Fatalf("key should be key, got %s", bitmap.Key())
	}
	if n, _ := client.StrLen(ctx, "key").Result(); n != 3 {
		t.Fatalf("20 bits should take 3 bytes, got %d", n)
	}
	if setBits, _ := bitmap.BitCount(); setBits != 0 {
		t.Fatalf("previous value should be overwritten with zeros, got %d set bits", setBits)
	}
}

func TestBitmapRedisExportMatchesMem(t *testing.T) {
	client := initMockRedis(t)
	redisBitmap, _ := NewBitmapRedis(client, 70)
	memBitmap := NewBitmapMem(70)
	indexes := []uint{0, 1, 5, 8, 63, 64, 69}
	redisBitmap.InsertMulti(indexes)
	memBitmap.InsertMulti(indexes)
	redisSize, redisData, err := redisBitmap.Export()
	if err != nil {
		t.Fatalf("export should succeed, got %v", err)
	}
	memSize, memData, _ := memBitmap.Export()
	if redisSize != memSize {
		t.Fatalf("sizes differ, redis %d, mem %d", redisSize, memSize)
	}
	if string(redisData) != string(memData) {
		t.Fatalf("exported data differ, redis %s, mem %s", redisData, memData)
	}
}

func TestBitmapRedisDelete(t *testing.T) {
	client := initMockRedis(t)
	bitmap, _ := NewBitmapRedis(client, 10)
	if err := bitmap.Delete(); err != nil {
		t.Fatalf("delete should succeed, got %v", err)
	}
	if n, _ := client.Exists(context.Background(), bitmap.Key()).Result(); n != 0 {
		t.Fatalf("key %s should be gone", bitmap.Key())
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
