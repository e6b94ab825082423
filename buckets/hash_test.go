package buckets

import (
	"testing"

	"github.com/kwertop/pcy"
)

func TestHashSymmetric(t *testing.T) {
	for a := pcy.Item(0); a < 200; a++ {
		for b := pcy.Item(0); b < 200; b += 7 {
			if Hash(a, b) != Hash(b, a) {
				t.Fatalf("hash of (%d, %d) should equal hash of (%d, %d)", a, b, b, a)
			}
		}
	}
}

func TestHashRange(t *testing.T) {
	items := []pcy.Item{0, 1, 999, 1000, 1001, 123456789, -1, -1000, -123456}
	for _, a := range items {
		for _, b := range items {
			if h := Hash(a, b); h >= NumBuckets {
				t.Fatalf("hash of (%d, %d) should be below %d, got %d", a, b, NumBuckets, h)
			}
		}
	}
}

func TestHashValues(t *testing.T) {
	cases := []struct {
		a, b pcy.Item
		want uint
	}{
		{1, 2, 3},
		{1, 3, 2},
		{2, 3, 1},
		{5, 5, 0},
		{1000, 0, 0},
		{1500, 1, 501},
		{-1, 0, 999},
	}
	for _, c := range cases {
		if got := Hash(c.a, c.b); got != c.want {
			t.Errorf("hash of (%d, %d) should be %d, got %d", c.a, c.b, c.want, got)
		}
	}
}

func TestPairIndexes(t *testing.T) {
	if indexes := PairIndexes(nil); len(indexes) != 0 {
		t.Fatalf("empty basket should produce no pairs, got %v", indexes)
	}
	if indexes := PairIndexes(pcy.NewItemset(4)); len(indexes) != 0 {
		t.Fatalf("single item basket should produce no pairs, got %v", indexes)
	}
	indexes := PairIndexes(pcy.NewItemset(1, 2, 3))
	want := []uint{3, 2, 1}
	if len(indexes) != len(want) {
		t.Fatalf("basket of 3 items should produce 3 pairs, got %v", indexes)
	}
	for i := range want {
		if indexes[i] != want[i] {
			t.Errorf("pair %d should hash to %d, got %d", i, want[i], indexes[i])
		}
	}
}
