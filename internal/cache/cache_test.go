package cache

import "testing"

func TestPutUpdatesExistingEntryWithoutGrowing(t *testing.T) {
	c := NewLRUCache[string, string](2)

	c.Put("alpha", "x")
	c.Put("beta", "value")
	c.Put("alpha", "y")

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if v, ok := c.Get("alpha"); !ok || v != "y" {
		t.Fatalf("Get(alpha) = %q, %v, want y, true", v, ok)
	}
	if v, ok := c.Get("beta"); !ok || v != "value" {
		t.Fatalf("expected beta to remain in cache, got %q, %v", v, ok)
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRUCache[int, string](2)

	c.Put(1, "one")
	c.Put(2, "two")
	c.Get(1)
	c.Put(3, "three")

	if _, ok := c.Get(2); ok {
		t.Fatalf("expected key 2 to be evicted")
	}
	for _, k := range []int{1, 3} {
		if _, ok := c.Get(k); !ok {
			t.Fatalf("expected key %d to remain", k)
		}
	}
}

func TestPurge(t *testing.T) {
	c := NewLRUCache[string, int](4)
	c.Put("a", 1)
	c.Put("b", 2)

	c.Purge()
	if c.Len() != 0 {
		t.Fatalf("Len() after Purge = %d", c.Len())
	}
	if _, ok := c.Get("b"); ok {
		t.Fatalf("Purge left b behind")
	}
}

func TestNonPositiveSizeKeepsOneEntry(t *testing.T) {
	c := NewLRUCache[string, string](0)
	c.Put("a", "1")
	c.Put("b", "2")
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
}
