package db

// StoredEntries reports how many entries the mock holds, expired or not.
func (m *MockRedisClient) StoredEntries() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
