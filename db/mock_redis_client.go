package db

import (
	"sync"
	"time"
)

// MockRedisClient simulates a Redis client for testing purposes.
type MockRedisClient struct {
	data map[string]mockEntry // Key-value store
	mu   sync.Mutex           // Mutex for thread-safe operations
	now  func() time.Time
}

type mockEntry struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{
		data: make(map[string]mockEntry),
		now:  time.Now,
	}
}

// SetClock replaces the time source used for expiry.
func (m *MockRedisClient) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// Set stores a key-value pair in the mock Redis.
func (m *MockRedisClient) Set(key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry := mockEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}
	m.data[key] = entry
	return nil
}

// Get retrieves a value for a given key from the mock Redis. Expired keys
// are evicted on access.
func (m *MockRedisClient) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, exists := m.data[key]
	if !exists {
		return "", ErrKeyNotFound
	}
	if m.expired(entry) {
		delete(m.data, key)
		return "", ErrKeyNotFound
	}
	return entry.value, nil
}

// Keys returns the live keys matching a Redis glob pattern and evicts the
// expired ones it walks over.
func (m *MockRedisClient) Keys(pattern string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var keys []string
	for key, entry := range m.data {
		if m.expired(entry) {
			delete(m.data, key)
			continue
		}
		if matchPattern(pattern, key) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (m *MockRedisClient) Del(keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

// Ping simulates a Redis Ping operation.
func (m *MockRedisClient) Ping() error {
	return nil
}

func (m *MockRedisClient) expired(entry mockEntry) bool {
	return !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt)
}

// matchPattern follows Redis MATCH semantics for '*', '?' and '\' escapes:
// unlike path.Match, '*' also spans '/'.
func matchPattern(pattern, key string) bool {
	p := []rune(pattern)
	k := []rune(key)
	pi, ki := 0, 0
	starP, starK := -1, 0
	for ki < len(k) {
		switch {
		case pi < len(p) && p[pi] == '*':
			starP, starK = pi, ki
			pi++
			continue
		case pi < len(p) && p[pi] == '\\' && pi+1 < len(p) && p[pi+1] == k[ki]:
			pi += 2
			ki++
			continue
		case pi < len(p) && p[pi] != '\\' && (p[pi] == '?' || p[pi] == k[ki]):
			pi++
			ki++
			continue
		}
		if starP < 0 {
			return false
		}
		starK++
		pi, ki = starP+1, starK
	}
	for pi < len(p) && p[pi] == '*' {
		pi++
	}
	return pi == len(p)
}

var _ RedisClient = (*MockRedisClient)(nil)
