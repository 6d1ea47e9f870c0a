package testutil

import (
	"context"
	"lifedash/internal/providers"
	"lifedash/internal/pubsub"
	"sort"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockStore implements storage.KeyValueStore over a map. Failures are injected per key.
type MockStore struct {
	mu          sync.Mutex
	Data        map[string]string
	GetErr      map[string]error
	SetErr      map[string]error
	RemoveErr   map[string]error
	SetCalls    []string
	RemoveCalls []string
}

func NewMockStore() *MockStore {
	return &MockStore{
		Data:      make(map[string]string),
		GetErr:    make(map[string]error),
		SetErr:    make(map[string]error),
		RemoveErr: make(map[string]error),
	}
}

func (m *MockStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.GetErr[key]; err != nil {
		return "", false, err
	}
	v, ok := m.Data[key]
	return v, ok, nil
}

func (m *MockStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls = append(m.SetCalls, key)
	if err := m.SetErr[key]; err != nil {
		return err
	}
	m.Data[key] = value
	return nil
}

func (m *MockStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemoveCalls = append(m.RemoveCalls, key)
	if err := m.RemoveErr[key]; err != nil {
		return err
	}
	delete(m.Data, key)
	return nil
}

func (m *MockStore) Keys() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.Data))
	for k := range m.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MockStore) Close() error { return nil }

// Purge satisfies services.Purger.
func (m *MockStore) Purge() {}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
}

func (m *MockCache) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data = make(map[string][]byte)
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu                  sync.Mutex
	CacheHits           int
	CacheMisses         int
	StoreOps            map[string]int
	PersistenceFailures map[string]int
	SnapshotOps         map[string]int
	Reloads             int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		StoreOps:            make(map[string]int),
		PersistenceFailures: make(map[string]int),
		SnapshotOps:         make(map[string]int),
	}
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) ObserveStoreDuration(op string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StoreOps[op]++
}

func (m *MockMetrics) IncPersistenceFailures(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistenceFailures[op]++
}

// IncSnapshotOperations records under "op:result".
func (m *MockMetrics) IncSnapshotOperations(op, result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SnapshotOps[op+":"+result]++
}

func (m *MockMetrics) IncReloads() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Reloads++
}

// MockReloader implements services.ReloaderInterface and counts reloads.
type MockReloader struct {
	mu    sync.Mutex
	Calls int
}

func (m *MockReloader) Reload() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
}

func (m *MockReloader) Count() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(m.Calls)
}

func (m *MockReloader) Subscribe(_ context.Context) <-chan pubsub.Event[int64] {
	return nil
}

func (m *MockReloader) Close() {}
