package cache

import (
	"fmt"
	"slices"
	"sync"
	"testing"
)

func TestMemoryCache_GetSet(t *testing.T) {
	cache := NewMemoryCache(10)

	val, ok := cache.Get("nonexistent")
	if ok {
		t.Error("Get on empty cache should return ok=false")
	}
	if val != "" {
		t.Error("Get on empty cache should return empty value")
	}

	cache.Set("a b", "a%20b")

	got, ok := cache.Get("a b")
	if !ok {
		t.Error("Get after Set should return ok=true")
	}
	if got != "a%20b" {
		t.Errorf("Get returned %q, want %q", got, "a%20b")
	}

	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cache.Len())
	}
}

func TestMemoryCache_EmptyKey(t *testing.T) {
	cache := NewMemoryCache(2)
	cache.Set("", "")

	if _, ok := cache.Get(""); !ok {
		t.Error("empty key should be cacheable")
	}
}

func TestMemoryCache_FIFOEviction(t *testing.T) {
	cache := NewMemoryCache(3)

	for _, k := range []string{"a", "b", "c"} {
		cache.Set(k, k+"!")
	}

	// A hit must not protect "a" from eviction.
	if _, ok := cache.Get("a"); !ok {
		t.Fatal("a should be cached")
	}

	cache.Set("d", "d!")

	if _, ok := cache.Get("a"); ok {
		t.Error("oldest inserted key should be evicted first, even after a hit")
	}
	for _, k := range []string{"b", "c", "d"} {
		if _, ok := cache.Get(k); !ok {
			t.Errorf("%q should still be cached", k)
		}
	}

	if got, want := cache.Keys(), []string{"b", "c", "d"}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if cache.Stats().Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", cache.Stats().Evictions)
	}
}

func TestMemoryCache_ResetKeepsPosition(t *testing.T) {
	cache := NewMemoryCache(2)
	cache.Set("a", "1")
	cache.Set("b", "2")
	cache.Set("a", "3")

	if got, want := cache.Keys(), []string{"a", "b"}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if cache.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (no duplicate keys)", cache.Len())
	}

	cache.Set("c", "4")
	if _, ok := cache.Get("a"); ok {
		t.Error("a was inserted first and should be evicted")
	}
}

func TestMemoryCache_ManyEvictions(t *testing.T) {
	const capacity = 100
	cache := NewMemoryCache(capacity)

	for i := 0; i < 3*capacity+7; i++ {
		cache.Set(fmt.Sprintf("k%d", i), fmt.Sprintf("v%d", i))
	}

	if cache.Len() != capacity {
		t.Fatalf("Len() = %d, want %d", cache.Len(), capacity)
	}

	keys := cache.Keys()
	if keys[0] != "k207" || keys[len(keys)-1] != "k306" {
		t.Errorf("Keys() spans %s..%s, want k207..k306", keys[0], keys[len(keys)-1])
	}

	for i := 207; i < 307; i++ {
		k := fmt.Sprintf("k%d", i)
		v, ok := cache.Get(k)
		if !ok || v != fmt.Sprintf("v%d", i) {
			t.Errorf("Get(%q) = %q, %v", k, v, ok)
		}
	}
}

func TestMemoryCache_ZeroCapacity(t *testing.T) {
	for _, capacity := range []int{0, -5} {
		cache := NewMemoryCache(capacity)
		cache.Set("a", "b")
		if _, ok := cache.Get("a"); ok {
			t.Errorf("capacity %d cache should store nothing", capacity)
		}
		if cache.Capacity() != 0 {
			t.Errorf("Capacity() = %d, want 0", cache.Capacity())
		}
	}
}

func TestMemoryCache_Stats(t *testing.T) {
	cache := NewMemoryCache(4)
	cache.Set("a", "1")

	cache.Get("a")
	cache.Get("a")
	cache.Get("missing")

	st := cache.Stats()
	if st.Hits != 2 || st.Misses != 1 || st.Evictions != 0 {
		t.Errorf("Stats() = %+v, want 2 hits, 1 miss, 0 evictions", st)
	}
}

func TestMemoryCache_Concurrent(t *testing.T) {
	cache := NewMemoryCache(50)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				k := fmt.Sprintf("k%d", (g*31+i)%200)
				cache.Set(k, k+"v")
				if v, ok := cache.Get(k); ok && v != k+"v" {
					t.Errorf("Get(%q) = %q", k, v)
				}
			}
		}(g)
	}
	wg.Wait()

	if cache.Len() > 50 {
		t.Errorf("Len() = %d exceeds capacity", cache.Len())
	}

	seen := make(map[string]bool)
	for _, k := range cache.Keys() {
		if seen[k] {
			t.Errorf("duplicate key %q in eviction order", k)
		}
		seen[k] = true
	}
}
