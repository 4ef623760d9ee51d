package addrparse

import "testing"

func TestMapCacheRoundTrip(t *testing.T) {
	c := newMapCache()
	if _, ok := c.Get("missing"); ok {
		t.Fatalf("expected a miss on an empty cache")
	}

	entry := cacheEntry{Found: true, Skeleton: &treeSkeleton{Symbol: "simple"}}
	c.Set("key", entry)

	got, ok := c.Get("key")
	if !ok {
		t.Fatalf("expected a hit after Set")
	}
	if got.Skeleton.Symbol != "simple" {
		t.Fatalf("got %+v", got)
	}
}

func TestNewLRUCacheRejectsNonPositiveSize(t *testing.T) {
	if _, err := NewLRUCache(0); err == nil {
		t.Fatalf("expected an error for a non-positive cache size")
	}
}
