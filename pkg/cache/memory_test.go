package cache_test

import (
	"testing"
	"time"

	"github.com/shashiranjanraj/barman/pkg/cache"
)

func TestMemorySetGet(t *testing.T) {
	m := cache.NewMemory()

	in := map[string]int{"beer": 2}
	if err := m.Set("order:5", in, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out map[string]int
	if !m.Get("order:5", &out) {
		t.Fatal("expected a hit")
	}
	if out["beer"] != 2 {
		t.Errorf("round-trip lost data: %v", out)
	}
}

func TestMemoryMiss(t *testing.T) {
	m := cache.NewMemory()
	var out string
	if m.Get("nope", &out) {
		t.Error("expected a miss")
	}
}

func TestMemoryExpiry(t *testing.T) {
	m := cache.NewMemory()
	if err := m.Set("k", "v", 10*time.Millisecond); err != nil {
		t.Fatalf("set: %v", err)
	}

	time.Sleep(30 * time.Millisecond)
	var out string
	if m.Get("k", &out) {
		t.Error("expected the entry to have expired")
	}
}

func TestMemoryDel(t *testing.T) {
	m := cache.NewMemory()
	_ = m.Set("a", 1, time.Minute)
	_ = m.Set("b", 2, time.Minute)

	if err := m.Del("a", "b", "missing"); err != nil {
		t.Fatalf("del: %v", err)
	}

	var out int
	if m.Get("a", &out) || m.Get("b", &out) {
		t.Error("deleted keys must miss")
	}
}
