package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	defaultServerURL      = "http://localhost:3001"
	defaultAppEnv         = "local"
	defaultCurrency       = "₹"
	defaultCacheDriver    = "memory"
	defaultRedisAddr      = "localhost:6379"
	defaultMetricsAddr    = ""
	defaultHTTPTimeout    = "30s"
	defaultSearchDebounce = "300ms"
	defaultMenuCacheTTL   = "30s"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

// ServerURL is the base URL of the remote POS service, without a trailing
// slash. Every outgoing call is rooted here.
func ServerURL() string {
	_ = Load()
	return strings.TrimRight(get("SERVER_URL", defaultServerURL), "/")
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// Currency is the display symbol prefixed to formatted amounts. The terminal
// never converts units; the remote service owns the currency.
func Currency() string {
	_ = Load()
	return get("CURRENCY", defaultCurrency)
}

func CacheDriver() string {
	_ = Load()

	driver := strings.ToLower(get("CACHE_DRIVER", defaultCacheDriver))
	switch driver {
	case "memory", "redis":
		return driver
	default:
		return defaultCacheDriver
	}
}

func RedisAddr() string {
	_ = Load()
	return get("REDIS_ADDR", defaultRedisAddr)
}

func RedisPassword() string {
	_ = Load()
	return get("REDIS_PASSWORD", "")
}

// MetricsAddr is the listen address for the local metrics/health server in
// session mode. Empty means the server is not started.
func MetricsAddr() string {
	_ = Load()
	return get("METRICS_ADDR", defaultMetricsAddr)
}

func HTTPTimeout() time.Duration {
	_ = Load()
	return duration("HTTP_TIMEOUT", defaultHTTPTimeout)
}

// SearchDebounce is the quiet period before a menu search is sent.
func SearchDebounce() time.Duration {
	_ = Load()
	return duration("SEARCH_DEBOUNCE", defaultSearchDebounce)
}

func MenuCacheTTL() time.Duration {
	_ = Load()
	return duration("MENU_CACHE_TTL", defaultMenuCacheTTL)
}

func defaultValues() map[string]string {
	return map[string]string{
		"SERVER_URL":      defaultServerURL,
		"APP_ENV":         defaultAppEnv,
		"CURRENCY":        defaultCurrency,
		"CACHE_DRIVER":    defaultCacheDriver,
		"REDIS_ADDR":      defaultRedisAddr,
		"REDIS_PASSWORD":  "",
		"METRICS_ADDR":    defaultMetricsAddr,
		"HTTP_TIMEOUT":    defaultHTTPTimeout,
		"SEARCH_DEBOUNCE": defaultSearchDebounce,
		"MENU_CACHE_TTL":  defaultMenuCacheTTL,
	}
}

func duration(key, fallback string) time.Duration {
	raw := get(key, fallback)
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	// Bare numbers are read as milliseconds (SEARCH_DEBOUNCE=300).
	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		return time.Duration(n) * time.Millisecond
	}
	d, _ := time.ParseDuration(fallback)
	return d
}

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

// Get reads any config key by name with an optional fallback.
// Keys from .env and app.json are available after config.Load().
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}

// Set overrides a single key in memory. Used by CLI flags (--server) and
// tests; it never writes back to disk.
func Set(key, value string) {
	_ = Load()
	mu.Lock()
	values[strings.ToUpper(strings.TrimSpace(key))] = strings.TrimSpace(value)
	mu.Unlock()
}
