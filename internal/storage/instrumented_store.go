package storage

import (
	"lifedash/internal/providers"
	"time"
)

// InstrumentedStore times every store operation.
type InstrumentedStore struct {
	inner   KeyValueStore
	metrics providers.MetricsProviderInterface
}

func NewInstrumentedStore(inner KeyValueStore, metrics providers.MetricsProviderInterface) *InstrumentedStore {
	return &InstrumentedStore{inner: inner, metrics: metrics}
}

func (s *InstrumentedStore) Get(key string) (string, bool, error) {
	defer s.observe("get", time.Now())
	return s.inner.Get(key)
}

func (s *InstrumentedStore) Set(key, value string) error {
	defer s.observe("set", time.Now())
	return s.inner.Set(key, value)
}

func (s *InstrumentedStore) Remove(key string) error {
	defer s.observe("remove", time.Now())
	return s.inner.Remove(key)
}

func (s *InstrumentedStore) Keys() ([]string, error) {
	defer s.observe("keys", time.Now())
	return s.inner.Keys()
}

func (s *InstrumentedStore) Close() error {
	return s.inner.Close()
}

func (s *InstrumentedStore) observe(op string, start time.Time) {
	s.metrics.ObserveStoreDuration(op, time.Since(start))
}
