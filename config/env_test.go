package config_test

import (
	"testing"
	"time"

	"github.com/shashiranjanraj/barman/config"
)

func TestDefaults(t *testing.T) {
	if got := config.ServerURL(); got != "http://localhost:3001" {
		t.Errorf("ServerURL = %q", got)
	}
	if got := config.Currency(); got != "₹" {
		t.Errorf("Currency = %q", got)
	}
	if got := config.CacheDriver(); got != "memory" {
		t.Errorf("CacheDriver = %q", got)
	}
	if got := config.SearchDebounce(); got != 300*time.Millisecond {
		t.Errorf("SearchDebounce = %v", got)
	}
}

func TestSetOverrides(t *testing.T) {
	config.Set("SERVER_URL", "http://pos.example:3001/")
	defer config.Set("SERVER_URL", "http://localhost:3001")

	if got := config.ServerURL(); got != "http://pos.example:3001" {
		t.Errorf("ServerURL = %q, want trailing slash trimmed", got)
	}
}

func TestBareDurationReadsAsMilliseconds(t *testing.T) {
	config.Set("SEARCH_DEBOUNCE", "250")
	defer config.Set("SEARCH_DEBOUNCE", "300ms")

	if got := config.SearchDebounce(); got != 250*time.Millisecond {
		t.Errorf("SearchDebounce = %v, want 250ms", got)
	}
}

func TestBadDriverFallsBackToMemory(t *testing.T) {
	config.Set("CACHE_DRIVER", "memcached")
	defer config.Set("CACHE_DRIVER", "memory")

	if got := config.CacheDriver(); got != "memory" {
		t.Errorf("CacheDriver = %q, want memory fallback", got)
	}
}

func TestGetUnknownKeyUsesFallback(t *testing.T) {
	if got := config.Get("RESTAURANT_NAME", "HOTEL BAR SYSTEM"); got != "HOTEL BAR SYSTEM" {
		t.Errorf("Get fallback = %q", got)
	}
}
